package application

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

var (
	zaakID      = uuid.MustParse("6a5b1f47-2b5c-4a4e-9d5e-0c2f3a6e1b11")
	hoofdzaakID = uuid.MustParse("0d8f0d6b-7f4a-4b2b-8f55-2a3c9d7e6f10")
	deelzaakID  = uuid.MustParse("5c3f8e2a-1d4b-4f6e-9a7b-8c9d0e1f2a3b")
	rolID       = uuid.MustParse("9e1d2c3b-4a5f-4e6d-8c7b-6a5f4e3d2c1b")
	eigenID     = uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
	zaaktypeID  = uuid.MustParse("3f2e1d0c-9b8a-4765-8432-10fedcba9876")
)

type memSource[T any] struct {
	items []T
	key   func(T) int64
}

func (m *memSource[T]) Count(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memSource[T]) Fetch(ctx context.Context, w pagination.Window) ([]T, error) {
	if w.Seek != nil {
		var after []T
		for _, item := range m.items {
			if m.key(item) < w.Seek.Key && len(after) < w.Limit {
				after = append(after, item)
			}
		}
		return after, nil
	}

	start := min(w.Offset, len(m.items))
	end := min(start+w.Limit, len(m.items))
	return m.items[start:end], nil
}

func testRoutes(t *testing.T) *hyperlink.Routes {
	t.Helper()

	routes := hyperlink.NewRoutes()
	for name, pattern := range map[string]string{
		ZaakDetail:                 "/zaken/api/v1/zaken/{uuid}",
		RolDetail:                  "/zaken/api/v1/rollen/{uuid}",
		ZaakEigenschapDetail:       "/zaken/api/v1/zaken/{zaak_uuid}/zaakeigenschappen/{uuid}",
		StatusDetail:               "/zaken/api/v1/statussen/{uuid}",
		ResultaatDetail:            "/zaken/api/v1/resultaten/{uuid}",
		ZaakObjectDetail:           "/zaken/api/v1/zaakobjecten/{uuid}",
		ZaakInformatieObjectDetail: "/zaken/api/v1/zaakinformatieobjecten/{uuid}",
		ZaakTypeDetail:             "/catalogi/api/v1/zaaktypen/{uuid}",
	} {
		if _, err := routes.Register(name, pattern); err != nil {
			t.Fatal(err)
		}
	}

	return routes
}

func testContext() context.Context {
	base, _ := url.Parse("https://zaken.example.org")
	return hyperlink.WithBaseURL(context.Background(), base)
}

func testZaak() Zaak {
	registratie := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	return Zaak{
		ID:                           42,
		UUID:                         zaakID,
		Identificatie:                &ZaakIdentificatie{Identificatie: "ZAAK-2024-0000000042", Bronorganisatie: "002220647"},
		Zaaktype:                     &Ref{UUID: zaaktypeID},
		Hoofdzaak:                    &Ref{UUID: hoofdzaakID},
		Deelzaken:                    []Ref{{UUID: deelzaakID}},
		Rollen:                       []Ref{{UUID: rolID}},
		Eigenschappen:                []EigenschapRef{{ZaakUUID: zaakID, UUID: eigenID}},
		Omschrijving:                 "Aanvraag parkeervergunning",
		Registratiedatum:             registratie,
		Startdatum:                   registratie,
		VerantwoordelijkeOrganisatie: "002220647",
		Betalingsindicatie:           "geheel",
		Archiefstatus:                "nog_te_archiveren",
		VerlengingReden:              "Advies",
		VerlengingDuur:               &Interval{Days: 14},
		ProcessobjectIdentificatie:   "PO-1",
	}
}

func newTestApp(t *testing.T, reader ZakenReader) App {
	t.Helper()

	a, err := New(reader, testRoutes(t), DefaultLabels())
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestQueryZaken(t *testing.T) {
	is := is.New(t)

	reader := &ZakenReaderMock{
		ZakenFunc: func(conditions ...ConditionFunc) pagination.Source[Zaak] {
			return &memSource[Zaak]{items: []Zaak{testZaak()}}
		},
	}

	page, err := newTestApp(t, reader).QueryZaken(testContext(), map[string][]string{"identificatie": {"ZAAK-2024-0000000042"}})
	is.NoErr(err)
	is.Equal(page.Total, int64(1))
	is.Equal(len(page.Items), 1)

	is.Equal(len(reader.ZakenCalls()), 1)
	c := map[string]any{}
	for _, f := range reader.ZakenCalls()[0].Conditions {
		c = f(c)
	}
	is.Equal(c["identificatie"], "ZAAK-2024-0000000042")

	z := page.Items[0]

	u, _ := z.Get("url")
	is.Equal(*u.(*string), "https://zaken.example.org/zaken/api/v1/zaken/"+zaakID.String())

	id, _ := z.Get("identificatie")
	is.Equal(id, "ZAAK-2024-0000000042")

	weergave, _ := z.Get("betalingsindicatieWeergave")
	is.Equal(weergave, "De met de zaak gemoeide kosten zijn geheel betaald.")

	eigenschappen, _ := z.Get("eigenschappen")
	is.Equal(eigenschappen, []string{
		"https://zaken.example.org/zaken/api/v1/zaken/" + zaakID.String() + "/zaakeigenschappen/" + eigenID.String(),
	})

	hoofdzaak, _ := z.Get("hoofdzaak")
	is.Equal(*hoofdzaak.(*string), "https://zaken.example.org/zaken/api/v1/zaken/"+hoofdzaakID.String())

	status, _ := z.Get("status")
	is.True(status.(*string) == nil)

	_, ok := z.Get("processobjectIdentificatie")
	is.True(!ok)
}

func TestZaakJSON(t *testing.T) {
	is := is.New(t)

	reader := &ZakenReaderMock{
		ZakenFunc: func(conditions ...ConditionFunc) pagination.Source[Zaak] {
			return &memSource[Zaak]{items: []Zaak{testZaak()}}
		},
	}

	r, err := newTestApp(t, reader).RetrieveZaak(testContext(), zaakID)
	is.NoErr(err)

	b, err := json.Marshal(r)
	is.NoErr(err)

	s := string(b)
	is.True(strings.HasPrefix(s, `{"url":"https://zaken.example.org/zaken/api/v1/zaken/`))
	is.True(strings.Contains(s, `"registratiedatum":"2024-05-02"`))
	is.True(strings.Contains(s, `"verlenging":{"reden":"Advies","duur":"P14D"}`))
	is.True(strings.Contains(s, `"opschorting":{"indicatie":false,"reden":"","eerdereOpschorting":false}`))
	is.True(strings.Contains(s, `"zaakgeometrie":null`))
	is.True(strings.Contains(s, `"kenmerken":[]`))
	is.True(strings.Contains(s, `"archiefnominatie":null`))
	is.True(strings.HasSuffix(s, `"processobject":{"datumkenmerk":"","identificatie":"PO-1","objecttype":"","registratie":""}}`))
}

func TestUnknownBetalingsindicatieHasEmptyLabel(t *testing.T) {
	is := is.New(t)

	z := testZaak()
	z.Betalingsindicatie = ""

	reader := &ZakenReaderMock{
		ZakenFunc: func(conditions ...ConditionFunc) pagination.Source[Zaak] {
			return &memSource[Zaak]{items: []Zaak{z}}
		},
	}

	r, err := newTestApp(t, reader).RetrieveZaak(testContext(), zaakID)
	is.NoErr(err)

	weergave, _ := r.Get("betalingsindicatieWeergave")
	is.Equal(weergave, "")
}

func TestRetrieveZaakNotFound(t *testing.T) {
	is := is.New(t)

	reader := &ZakenReaderMock{
		ZakenFunc: func(conditions ...ConditionFunc) pagination.Source[Zaak] {
			return &memSource[Zaak]{}
		},
	}

	_, err := newTestApp(t, reader).RetrieveZaak(testContext(), zaakID)
	is.True(errors.Is(err, ErrNotFound))
}

func TestUnknownCodedFilterIsRejected(t *testing.T) {
	is := is.New(t)

	reader := &ZakenReaderMock{}

	_, err := newTestApp(t, reader).QueryZaken(testContext(), map[string][]string{"archiefstatus": {"weggegooid"}})
	is.True(errors.Is(err, pagination.ErrInvalidParameter))
	is.Equal(len(reader.ZakenCalls()), 0)
}

func TestQueryRollenUsesCursor(t *testing.T) {
	is := is.New(t)

	rollen := []Rol{}
	for id := int64(5); id > 0; id-- {
		rollen = append(rollen, Rol{ID: id, UUID: uuid.New(), Zaak: &Ref{UUID: zaakID}})
	}

	reader := &ZakenReaderMock{
		RollenFunc: func(conditions ...ConditionFunc) pagination.Source[Rol] {
			return &memSource[Rol]{items: rollen, key: func(r Rol) int64 { return r.ID }}
		},
	}

	a := newTestApp(t, reader)

	page, err := a.QueryRollen(testContext(), map[string][]string{"pageSize": {"2"}, "zaak": {zaakID.String()}})
	is.NoErr(err)
	is.Equal(page.Total, int64(5))
	is.Equal(len(page.Items), 2)
	is.True(page.Previous == nil)
	is.True(page.Next.Get("cursor") != "")

	next, err := a.QueryRollen(testContext(), page.Next)
	is.NoErr(err)
	is.Equal(len(next.Items), 2)

	first, _ := next.Items[0].Get("uuid")
	is.Equal(first, rollen[2].UUID)

	zaak, _ := next.Items[0].Get("zaak")
	is.Equal(*zaak.(*string), "https://zaken.example.org/zaken/api/v1/zaken/"+zaakID.String())
}

func TestRollenZaakFilterAcceptsURL(t *testing.T) {
	is := is.New(t)

	conditions, err := RollenParams(map[string][]string{
		"zaak": {"https://zaken.example.org/zaken/api/v1/zaken/" + zaakID.String()},
	})
	is.NoErr(err)

	c := map[string]any{}
	for _, f := range conditions {
		c = f(c)
	}
	is.Equal(c["zaak_uuid"], zaakID)

	_, err = RollenParams(map[string][]string{"zaak": {"not-a-zaak"}})
	is.True(errors.Is(err, pagination.ErrInvalidParameter))
}

func TestZaakEigenschapURLIsNested(t *testing.T) {
	is := is.New(t)

	reader := &ZakenReaderMock{
		ZaakEigenschappenFunc: func(conditions ...ConditionFunc) pagination.Source[ZaakEigenschap] {
			return &memSource[ZaakEigenschap]{items: []ZaakEigenschap{
				{ID: 1, UUID: eigenID, ZaakUUID: zaakID, Naam: "kenteken", Waarde: "AB-123-C"},
				{ID: 2, UUID: uuid.New(), Naam: "zonder zaak"},
			}}
		},
	}

	page, err := newTestApp(t, reader).QueryZaakEigenschappen(testContext(), zaakID, map[string][]string{})
	is.NoErr(err)
	is.Equal(len(page.Items), 2)

	u, _ := page.Items[0].Get("url")
	is.Equal(*u.(*string), "https://zaken.example.org/zaken/api/v1/zaken/"+zaakID.String()+"/zaakeigenschappen/"+eigenID.String())

	// one key missing means no link at all
	u, _ = page.Items[1].Get("url")
	is.True(u.(*string) == nil)
}

func TestNewFailsOnMissingRoute(t *testing.T) {
	is := is.New(t)

	routes := hyperlink.NewRoutes()
	_, err := routes.Register(ZaakDetail, "/zaken/api/v1/zaken/{uuid}")
	is.NoErr(err)

	_, err = New(&ZakenReaderMock{}, routes, DefaultLabels())
	is.True(errors.Is(err, hyperlink.ErrUnknownRoute))
}

func TestIsoDuration(t *testing.T) {
	is := is.New(t)

	is.Equal(isoDuration(Interval{}), "P0D")
	is.Equal(isoDuration(Interval{Days: 14}), "P14D")
	is.Equal(isoDuration(Interval{Months: 14, Days: 3}), "P1Y2M3D")
	is.Equal(isoDuration(Interval{Microseconds: int64(90*time.Minute/time.Microsecond) + 1_500_000}), "PT1H30M1.5S")
}

func TestLabels(t *testing.T) {
	is := is.New(t)

	defaults := DefaultLabels()
	is.Equal(defaults.For("betalingsindicatie")["nvt"], "Er is geen sprake van te betalen, met de zaak gemoeide, kosten.")
	is.Equal(len(defaults.For("unknown")), 0)

	custom, err := LoadLabels(strings.NewReader("labels:\n  betalingsindicatie:\n    nvt: Niet van toepassing\n"))
	is.NoErr(err)

	merged := defaults.Merge(custom)
	is.Equal(merged.For("betalingsindicatie")["nvt"], "Niet van toepassing")
	is.Equal(merged.For("betalingsindicatie")["geheel"], defaults.For("betalingsindicatie")["geheel"])
	is.Equal(defaults.For("betalingsindicatie")["nvt"], "Er is geen sprake van te betalen, met de zaak gemoeide, kosten.")
}
