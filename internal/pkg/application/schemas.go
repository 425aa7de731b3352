package application

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/diwise/zaken-api/internal/pkg/presentation/schema"
)

// Route names the zaken resources link to.
const (
	ZaakList                   = "zaak-list"
	ZaakDetail                 = "zaak-detail"
	RolList                    = "rol-list"
	RolDetail                  = "rol-detail"
	ZaakEigenschapList         = "zaakeigenschap-list"
	ZaakEigenschapDetail       = "zaakeigenschap-detail"
	StatusDetail               = "status-detail"
	ResultaatDetail            = "resultaat-detail"
	ZaakObjectDetail           = "zaakobject-detail"
	ZaakInformatieObjectDetail = "zaakinformatieobject-detail"
	ZaakTypeDetail             = "zaaktype-detail"
)

type schemas struct {
	zaak       *schema.Schema[Zaak]
	rol        *schema.Schema[Rol]
	eigenschap *schema.Schema[ZaakEigenschap]
}

type references struct {
	zaak                 hyperlink.Reference
	rol                  hyperlink.Reference
	eigenschap           hyperlink.Reference
	status               hyperlink.Reference
	resultaat            hyperlink.Reference
	zaakobject           hyperlink.Reference
	zaakinformatieobject hyperlink.Reference
	zaaktype             hyperlink.Reference
}

func newReferences(routes *hyperlink.Routes) (references, error) {
	var refs references
	var err error

	targets := []struct {
		ref    *hyperlink.Reference
		name   string
		lookup []hyperlink.Segment
	}{
		{&refs.zaak, ZaakDetail, nil},
		{&refs.rol, RolDetail, nil},
		{&refs.eigenschap, ZaakEigenschapDetail, []hyperlink.Segment{hyperlink.By("zaak_uuid"), hyperlink.By("uuid")}},
		{&refs.status, StatusDetail, nil},
		{&refs.resultaat, ResultaatDetail, nil},
		{&refs.zaakobject, ZaakObjectDetail, nil},
		{&refs.zaakinformatieobject, ZaakInformatieObjectDetail, nil},
		{&refs.zaaktype, ZaakTypeDetail, nil},
	}

	for _, t := range targets {
		*t.ref, err = routes.Reference(t.name, t.lookup...)
		if err != nil {
			return references{}, err
		}
	}

	return refs, nil
}

func newSchemas(routes *hyperlink.Routes, labels Labels) (*schemas, error) {
	refs, err := newReferences(routes)
	if err != nil {
		return nil, err
	}

	zaak, err := zaakSchema(refs, labels)
	if err != nil {
		return nil, err
	}

	rol, err := schema.New("rol",
		schema.Self[Rol]("url", refs.rol),
		schema.Pass("uuid", func(r Rol) any { return r.UUID }),
		schema.One("zaak", refs.zaak, func(r Rol) hyperlink.Record { return ref(r.Zaak) }),
		schema.Pass("betrokkene", func(r Rol) any { return r.Betrokkene }),
		schema.Pass("betrokkeneType", func(r Rol) any { return r.BetrokkeneType }),
		schema.Pass("omschrijving", func(r Rol) any { return r.Omschrijving }),
		schema.Pass("omschrijvingGeneriek", func(r Rol) any { return r.OmschrijvingGeneriek }),
		schema.Pass("roltoelichting", func(r Rol) any { return r.Roltoelichting }),
		schema.DateTime("registratiedatum", func(r Rol) *time.Time { return r.Registratiedatum }),
		schema.Pass("indicatieMachtiging", func(r Rol) any { return r.IndicatieMachtiging }),
	)
	if err != nil {
		return nil, err
	}

	eigenschap, err := schema.New("zaakeigenschap",
		schema.Self[ZaakEigenschap]("url", refs.eigenschap),
		schema.Pass("uuid", func(e ZaakEigenschap) any { return e.UUID }),
		schema.One("zaak", refs.zaak, func(e ZaakEigenschap) hyperlink.Record { return ref(NewRef(e.ZaakUUID)) }),
		schema.Pass("naam", func(e ZaakEigenschap) any { return e.Naam }),
		schema.Pass("waarde", func(e ZaakEigenschap) any { return e.Waarde }),
	)
	if err != nil {
		return nil, err
	}

	return &schemas{
		zaak:       zaak,
		rol:        rol,
		eigenschap: eigenschap,
	}, nil
}

func zaakSchema(refs references, labels Labels) (*schema.Schema[Zaak], error) {
	processobject, err := schema.New("processobject",
		schema.Pass("datumkenmerk", func(z Zaak) any { return z.ProcessobjectDatumkenmerk }),
		schema.Pass("identificatie", func(z Zaak) any { return z.ProcessobjectIdentificatie }),
		schema.Pass("objecttype", func(z Zaak) any { return z.ProcessobjectObjecttype }),
		schema.Pass("registratie", func(z Zaak) any { return z.ProcessobjectRegistratie }),
	)
	if err != nil {
		return nil, err
	}

	verlenging, err := schema.New("verlenging",
		schema.Pass("reden", func(z Zaak) any { return z.VerlengingReden }),
		schema.Compute("duur", func(z Zaak) any {
			if z.VerlengingDuur == nil {
				return nil
			}
			return isoDuration(*z.VerlengingDuur)
		}),
	)
	if err != nil {
		return nil, err
	}

	opschorting, err := schema.New("opschorting",
		schema.Pass("indicatie", func(z Zaak) any { return z.OpschortingIndicatie }),
		schema.Pass("reden", func(z Zaak) any { return z.OpschortingReden }),
		schema.Pass("eerdereOpschorting", func(z Zaak) any { return z.OpschortingEerdereOpschorting }),
	)
	if err != nil {
		return nil, err
	}

	fields := []schema.Field[Zaak]{
		schema.Exclude[Zaak]("zaakIdentificatie"),
		schema.Exclude[Zaak]("processobjectDatumkenmerk"),
		schema.Exclude[Zaak]("processobjectIdentificatie"),
		schema.Exclude[Zaak]("processobjectObjecttype"),
		schema.Exclude[Zaak]("processobjectRegistratie"),
		schema.Exclude[Zaak]("verlengingReden"),
		schema.Exclude[Zaak]("verlengingDuur"),

		schema.Self[Zaak]("url", refs.zaak),
		schema.Pass("uuid", func(z Zaak) any { return z.UUID }),
	}

	fields = append(fields, schema.IdentityFields[Zaak]()...)

	fields = append(fields,
		schema.Pass("omschrijving", func(z Zaak) any { return z.Omschrijving }),
		schema.Pass("toelichting", func(z Zaak) any { return z.Toelichting }),
		schema.One("zaaktype", refs.zaaktype, func(z Zaak) hyperlink.Record { return ref(z.Zaaktype) }),
		schema.Date("registratiedatum", func(z Zaak) *time.Time { return &z.Registratiedatum }),
		schema.Pass("verantwoordelijkeOrganisatie", func(z Zaak) any { return z.VerantwoordelijkeOrganisatie }),
		schema.Date("startdatum", func(z Zaak) *time.Time { return &z.Startdatum }),
		schema.Date("einddatum", func(z Zaak) *time.Time { return z.Einddatum }),
		schema.Date("einddatumGepland", func(z Zaak) *time.Time { return z.EinddatumGepland }),
		schema.Date("uiterlijkeEinddatumAfdoening", func(z Zaak) *time.Time { return z.UiterlijkeEinddatumAfdoening }),
		schema.Date("publicatiedatum", func(z Zaak) *time.Time { return z.Publicatiedatum }),
		schema.Pass("communicatiekanaal", func(z Zaak) any { return z.Communicatiekanaal }),
		schema.Pass("communicatiekanaalNaam", func(z Zaak) any { return z.CommunicatiekanaalNaam }),
		schema.Compute("productenOfDiensten", func(z Zaak) any { return nonNil(z.ProductenOfDiensten) }),
		schema.Pass("vertrouwelijkheidaanduiding", func(z Zaak) any { return z.Vertrouwelijkheidaanduiding }),
		schema.Pass("betalingsindicatie", func(z Zaak) any { return z.Betalingsindicatie }),
		schema.Label("betalingsindicatieWeergave", labels.For("betalingsindicatie"), func(z Zaak) string { return z.Betalingsindicatie }),
		schema.DateTime("laatsteBetaaldatum", func(z Zaak) *time.Time { return z.LaatsteBetaaldatum }),
		schema.Geometry("zaakgeometrie", func(z Zaak) any { return z.Zaakgeometrie }),
		schema.Object("verlenging", verlenging, func(z Zaak) *Zaak {
			if z.VerlengingReden == "" && z.VerlengingDuur == nil {
				return nil
			}
			return &z
		}),
		schema.Object("opschorting", opschorting, func(z Zaak) *Zaak { return &z }),
		schema.Pass("selectielijstklasse", func(z Zaak) any { return z.Selectielijstklasse }),
	)

	fields = append(fields, schema.HierarchyFields[Zaak]("hoofdzaak", "deelzaken", refs.zaak)...)

	fields = append(fields,
		schema.CollectionField[Zaak](CollectionEigenschappen, refs.eigenschap),
		schema.CollectionField[Zaak](CollectionRollen, refs.rol),
		schema.One("status", refs.status, func(z Zaak) hyperlink.Record { return ref(z.Status) }),
		schema.CollectionField[Zaak](CollectionZaakobjecten, refs.zaakobject),
		schema.CollectionField[Zaak](CollectionZaakinformatieobjecten, refs.zaakinformatieobject),
		schema.Compute("kenmerken", func(z Zaak) any { return nonNil(z.Kenmerken) }),
		schema.Pass("archiefnominatie", func(z Zaak) any { return nullable(z.Archiefnominatie) }),
		schema.Pass("archiefstatus", func(z Zaak) any { return z.Archiefstatus }),
		schema.Date("archiefactiedatum", func(z Zaak) *time.Time { return z.Archiefactiedatum }),
		schema.One("resultaat", refs.resultaat, func(z Zaak) hyperlink.Record { return ref(z.Resultaat) }),
		schema.Pass("opdrachtgevendeOrganisatie", func(z Zaak) any { return z.OpdrachtgevendeOrganisatie }),
		schema.Pass("processobjectaard", func(z Zaak) any { return z.Processobjectaard }),
		schema.Date("startdatumBewaartermijn", func(z Zaak) *time.Time { return z.StartdatumBewaartermijn }),
		schema.Object("processobject", processobject, func(z Zaak) *Zaak { return &z }),
	)

	return schema.New("zaak", fields...)
}

// ref keeps a nil *Ref from turning into a non-nil Record.
func ref(r *Ref) hyperlink.Record {
	if r == nil {
		return nil
	}
	return r
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// isoDuration formats an interval as an ISO 8601 duration, e.g. P1Y2M3DT4H5M.
func isoDuration(i Interval) string {
	var b strings.Builder
	b.WriteString("P")

	years, months := i.Months/12, i.Months%12
	if years != 0 {
		fmt.Fprintf(&b, "%dY", years)
	}
	if months != 0 {
		fmt.Fprintf(&b, "%dM", months)
	}
	if i.Days != 0 {
		fmt.Fprintf(&b, "%dD", i.Days)
	}

	d := time.Duration(i.Microseconds) * time.Microsecond
	if d != 0 {
		b.WriteString("T")

		hours := d / time.Hour
		d -= hours * time.Hour
		minutes := d / time.Minute
		d -= minutes * time.Minute

		if hours != 0 {
			fmt.Fprintf(&b, "%dH", hours)
		}
		if minutes != 0 {
			fmt.Fprintf(&b, "%dM", minutes)
		}
		if d != 0 {
			b.WriteString(strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
			b.WriteString("S")
		}
	}

	if b.Len() == 1 {
		return "P0D"
	}

	return b.String()
}
