package application

import (
	"time"

	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/diwise/zaken-api/internal/pkg/presentation/schema"
	"github.com/google/uuid"
)

// Ref is the key of a related resource that is addressed by its uuid alone.
type Ref struct {
	UUID uuid.UUID
}

func NewRef(id uuid.UUID) *Ref {
	if id == uuid.Nil {
		return nil
	}
	return &Ref{UUID: id}
}

func (r *Ref) LookupField(name string) (string, bool) {
	if r == nil || name != "uuid" || r.UUID == uuid.Nil {
		return "", false
	}
	return r.UUID.String(), true
}

// EigenschapRef is the key of a zaakeigenschap, which is nested under its zaak.
type EigenschapRef struct {
	ZaakUUID uuid.UUID
	UUID     uuid.UUID
}

func (r *EigenschapRef) LookupField(name string) (string, bool) {
	if r == nil {
		return "", false
	}

	var id uuid.UUID
	switch name {
	case "uuid":
		id = r.UUID
	case "zaak_uuid":
		id = r.ZaakUUID
	}

	if id == uuid.Nil {
		return "", false
	}
	return id.String(), true
}

type ZaakIdentificatie struct {
	Identificatie   string
	Bronorganisatie string
}

type Kenmerk struct {
	Kenmerk string `json:"kenmerk"`
	Bron    string `json:"bron"`
}

// Interval is a stored duration as months, days and microseconds, the way
// PostgreSQL keeps it.
type Interval struct {
	Months       int32
	Days         int32
	Microseconds int64
}

const (
	CollectionRollen                 = "rollen"
	CollectionEigenschappen          = "eigenschappen"
	CollectionZaakobjecten           = "zaakobjecten"
	CollectionZaakinformatieobjecten = "zaakinformatieobjecten"
)

type Zaak struct {
	ID            int64
	UUID          uuid.UUID
	Identificatie *ZaakIdentificatie

	Zaaktype  *Ref
	Hoofdzaak *Ref
	Deelzaken []Ref
	Status    *Ref
	Resultaat *Ref

	Rollen                 []Ref
	Eigenschappen          []EigenschapRef
	Zaakobjecten           []Ref
	Zaakinformatieobjecten []Ref
	Kenmerken              []Kenmerk

	Omschrijving                 string
	Toelichting                  string
	Registratiedatum             time.Time
	VerantwoordelijkeOrganisatie string
	ProductenOfDiensten          []string
	Startdatum                   time.Time
	Einddatum                    *time.Time
	EinddatumGepland             *time.Time
	UiterlijkeEinddatumAfdoening *time.Time
	Publicatiedatum              *time.Time
	Communicatiekanaal           string
	CommunicatiekanaalNaam       string
	Vertrouwelijkheidaanduiding  string
	Betalingsindicatie           string
	LaatsteBetaaldatum           *time.Time
	Zaakgeometrie                []byte

	VerlengingReden string
	VerlengingDuur  *Interval

	OpschortingIndicatie          bool
	OpschortingReden              string
	OpschortingEerdereOpschorting bool

	Selectielijstklasse        string
	Archiefnominatie           string
	Archiefstatus              string
	Archiefactiedatum          *time.Time
	OpdrachtgevendeOrganisatie string
	Processobjectaard          string
	StartdatumBewaartermijn    *time.Time

	ProcessobjectDatumkenmerk  string
	ProcessobjectIdentificatie string
	ProcessobjectObjecttype    string
	ProcessobjectRegistratie   string
}

func (z Zaak) LookupField(name string) (string, bool) {
	if name != "uuid" || z.UUID == uuid.Nil {
		return "", false
	}
	return z.UUID.String(), true
}

func (z Zaak) Identity() (schema.Identity, bool) {
	if z.Identificatie == nil {
		return schema.Identity{}, false
	}
	return schema.Identity{
		Identificatie:   z.Identificatie.Identificatie,
		Bronorganisatie: z.Identificatie.Bronorganisatie,
	}, true
}

func (z Zaak) Parent() hyperlink.Record {
	if z.Hoofdzaak == nil {
		return nil
	}
	return z.Hoofdzaak
}

func (z Zaak) Children() []hyperlink.Record {
	return refs(z.Deelzaken)
}

func (z Zaak) Related(collection string) []hyperlink.Record {
	switch collection {
	case CollectionRollen:
		return refs(z.Rollen)
	case CollectionZaakobjecten:
		return refs(z.Zaakobjecten)
	case CollectionZaakinformatieobjecten:
		return refs(z.Zaakinformatieobjecten)
	case CollectionEigenschappen:
		recs := make([]hyperlink.Record, 0, len(z.Eigenschappen))
		for i := range z.Eigenschappen {
			recs = append(recs, &z.Eigenschappen[i])
		}
		return recs
	}
	return []hyperlink.Record{}
}

func refs(rs []Ref) []hyperlink.Record {
	recs := make([]hyperlink.Record, 0, len(rs))
	for i := range rs {
		recs = append(recs, &rs[i])
	}
	return recs
}

type Rol struct {
	ID                   int64
	UUID                 uuid.UUID
	Zaak                 *Ref
	Betrokkene           string
	BetrokkeneType       string
	Omschrijving         string
	OmschrijvingGeneriek string
	Roltoelichting       string
	Registratiedatum     *time.Time
	IndicatieMachtiging  string
}

func (r Rol) LookupField(name string) (string, bool) {
	if name != "uuid" || r.UUID == uuid.Nil {
		return "", false
	}
	return r.UUID.String(), true
}

type ZaakEigenschap struct {
	ID       int64
	UUID     uuid.UUID
	ZaakUUID uuid.UUID
	Naam     string
	Waarde   string
}

func (e ZaakEigenschap) LookupField(name string) (string, bool) {
	return (&EigenschapRef{ZaakUUID: e.ZaakUUID, UUID: e.UUID}).LookupField(name)
}
