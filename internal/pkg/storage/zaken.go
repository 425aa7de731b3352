package storage

import (
	"context"

	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"
)

const zakenFrom = `zaken_zaak z
	LEFT JOIN zaken_zaakidentificatie zi ON zi.id = z.identificatie_ptr_id
	LEFT JOIN catalogi_zaaktype zt ON zt.id = z._zaaktype_id
	LEFT JOIN zaken_zaak hz ON hz.identificatie_ptr_id = z.hoofdzaak_id`

const zakenColumns = `z.identificatie_ptr_id, z.uuid, zi.identificatie, zi.bronorganisatie, zt.uuid, hz.uuid,
	COALESCE(z.omschrijving, ''), COALESCE(z.toelichting, ''), z.registratiedatum, z.verantwoordelijke_organisatie,
	z.producten_of_diensten, z.startdatum, z.einddatum, z.einddatum_gepland, z.uiterlijke_einddatum_afdoening,
	z.publicatiedatum, COALESCE(z.communicatiekanaal, ''), COALESCE(z.communicatiekanaal_naam, ''),
	COALESCE(z.vertrouwelijkheidaanduiding, ''), COALESCE(z.betalingsindicatie, ''), z.laatste_betaaldatum,
	ST_AsEWKB(z.zaakgeometrie), COALESCE(z.verlenging_reden, ''), z.verlenging_duur, z.opschorting_indicatie,
	COALESCE(z.opschorting_reden, ''), z.opschorting_eerdere_opschorting, COALESCE(z.selectielijstklasse, ''),
	COALESCE(z.archiefnominatie, ''), z.archiefstatus, z.archiefactiedatum, COALESCE(z.opdrachtgevende_organisatie, ''),
	COALESCE(z.processobjectaard, ''), z.startdatum_bewaartermijn, COALESCE(z.processobject_datumkenmerk, ''),
	COALESCE(z.processobject_identificatie, ''), COALESCE(z.processobject_objecttype, ''),
	COALESCE(z.processobject_registratie, '')`

const rollenFrom = `zaken_rol r
	LEFT JOIN zaken_zaak z ON z.identificatie_ptr_id = r.zaak_id`

const rollenColumns = `r.id, r.uuid, z.uuid, COALESCE(r.betrokkene, ''), COALESCE(r.betrokkene_type, ''),
	COALESCE(r.omschrijving, ''), COALESCE(r.omschrijving_generiek, ''), COALESCE(r.roltoelichting, ''),
	r.registratiedatum, COALESCE(r.indicatie_machtiging, '')`

const eigenschappenFrom = `zaken_zaakeigenschap e
	LEFT JOIN zaken_zaak z ON z.identificatie_ptr_id = e.zaak_id`

const eigenschappenColumns = `e.id, e.uuid, z.uuid, COALESCE(e._naam, ''), COALESCE(e.waarde, '')`

func (db Db) Zaken(conditions ...application.ConditionFunc) pagination.Source[application.Zaak] {
	where, args := newZakenParams(conditions...)

	return &source[application.Zaak]{
		pool:  db.pool,
		name:  "zaken",
		from:  zakenFrom,
		cols:  zakenColumns,
		where: where,
		args:  args,
		key:   "z.identificatie_ptr_id",
		scan:  scanZaak,
		load:  db.loadZaakRelations,
	}
}

func (db Db) Rollen(conditions ...application.ConditionFunc) pagination.Source[application.Rol] {
	where, args := newRollenParams(conditions...)

	return &source[application.Rol]{
		pool:  db.pool,
		name:  "rollen",
		from:  rollenFrom,
		cols:  rollenColumns,
		where: where,
		args:  args,
		key:   "r.id",
		scan:  scanRol,
	}
}

func (db Db) ZaakEigenschappen(conditions ...application.ConditionFunc) pagination.Source[application.ZaakEigenschap] {
	where, args := newZaakEigenschappenParams(conditions...)

	return &source[application.ZaakEigenschap]{
		pool:  db.pool,
		name:  "zaakeigenschappen",
		from:  eigenschappenFrom,
		cols:  eigenschappenColumns,
		where: where,
		args:  args,
		key:   "e.id",
		scan:  scanZaakEigenschap,
	}
}

func scanZaak(row pgx.CollectableRow) (application.Zaak, error) {
	var z application.Zaak
	var id, zaaktype, hoofdzaak pgtype.UUID
	var identificatie, bronorganisatie pgtype.Text
	var duur pgtype.Interval

	err := row.Scan(
		&z.ID, &id, &identificatie, &bronorganisatie, &zaaktype, &hoofdzaak,
		&z.Omschrijving, &z.Toelichting, &z.Registratiedatum, &z.VerantwoordelijkeOrganisatie,
		&z.ProductenOfDiensten, &z.Startdatum, &z.Einddatum, &z.EinddatumGepland, &z.UiterlijkeEinddatumAfdoening,
		&z.Publicatiedatum, &z.Communicatiekanaal, &z.CommunicatiekanaalNaam,
		&z.Vertrouwelijkheidaanduiding, &z.Betalingsindicatie, &z.LaatsteBetaaldatum,
		&z.Zaakgeometrie, &z.VerlengingReden, &duur, &z.OpschortingIndicatie,
		&z.OpschortingReden, &z.OpschortingEerdereOpschorting, &z.Selectielijstklasse,
		&z.Archiefnominatie, &z.Archiefstatus, &z.Archiefactiedatum, &z.OpdrachtgevendeOrganisatie,
		&z.Processobjectaard, &z.StartdatumBewaartermijn, &z.ProcessobjectDatumkenmerk,
		&z.ProcessobjectIdentificatie, &z.ProcessobjectObjecttype,
		&z.ProcessobjectRegistratie,
	)
	if err != nil {
		return application.Zaak{}, err
	}

	z.UUID = toUUID(id)
	z.Zaaktype = application.NewRef(toUUID(zaaktype))
	z.Hoofdzaak = application.NewRef(toUUID(hoofdzaak))

	if identificatie.Valid || bronorganisatie.Valid {
		z.Identificatie = &application.ZaakIdentificatie{
			Identificatie:   identificatie.String,
			Bronorganisatie: bronorganisatie.String,
		}
	}

	if duur.Valid {
		z.VerlengingDuur = &application.Interval{
			Months:       duur.Months,
			Days:         duur.Days,
			Microseconds: duur.Microseconds,
		}
	}

	return z, nil
}

func scanRol(row pgx.CollectableRow) (application.Rol, error) {
	var r application.Rol
	var id, zaak pgtype.UUID

	err := row.Scan(
		&r.ID, &id, &zaak, &r.Betrokkene, &r.BetrokkeneType,
		&r.Omschrijving, &r.OmschrijvingGeneriek, &r.Roltoelichting,
		&r.Registratiedatum, &r.IndicatieMachtiging,
	)
	if err != nil {
		return application.Rol{}, err
	}

	r.UUID = toUUID(id)
	r.Zaak = application.NewRef(toUUID(zaak))

	return r, nil
}

func scanZaakEigenschap(row pgx.CollectableRow) (application.ZaakEigenschap, error) {
	var e application.ZaakEigenschap
	var id, zaak pgtype.UUID

	err := row.Scan(&e.ID, &id, &zaak, &e.Naam, &e.Waarde)
	if err != nil {
		return application.ZaakEigenschap{}, err
	}

	e.UUID = toUUID(id)
	e.ZaakUUID = toUUID(zaak)

	return e, nil
}

func toUUID(id pgtype.UUID) uuid.UUID {
	if !id.Valid {
		return uuid.Nil
	}
	return uuid.UUID(id.Bytes)
}

type related struct {
	zaakID int64
	uuid   uuid.UUID
}

const (
	rollenQuery                 = `SELECT zaak_id, uuid FROM zaken_rol WHERE zaak_id = ANY(@ids) ORDER BY id`
	eigenschappenQuery          = `SELECT zaak_id, uuid FROM zaken_zaakeigenschap WHERE zaak_id = ANY(@ids) ORDER BY id`
	zaakobjectenQuery           = `SELECT zaak_id, uuid FROM zaken_zaakobject WHERE zaak_id = ANY(@ids) ORDER BY id`
	zaakinformatieobjectenQuery = `SELECT zaak_id, uuid FROM zaken_zaakinformatieobject WHERE zaak_id = ANY(@ids) ORDER BY id`
	resultatenQuery             = `SELECT zaak_id, uuid FROM zaken_resultaat WHERE zaak_id = ANY(@ids) ORDER BY id`
	deelzakenQuery              = `SELECT hoofdzaak_id, uuid FROM zaken_zaak WHERE hoofdzaak_id = ANY(@ids) ORDER BY identificatie_ptr_id`
	statussenQuery              = `SELECT DISTINCT ON (zaak_id) zaak_id, uuid FROM zaken_status WHERE zaak_id = ANY(@ids) ORDER BY zaak_id, datum_status_gezet DESC`
	kenmerkenQuery              = `SELECT zaak_id, kenmerk, bron FROM zaken_zaakkenmerk WHERE zaak_id = ANY(@ids) ORDER BY id`
)

// loadZaakRelations reads the related records of a page of zaken with one query
// per relation.
func (db Db) loadZaakRelations(ctx context.Context, zaken []application.Zaak) error {
	ids := make([]int64, 0, len(zaken))
	for _, z := range zaken {
		ids = append(ids, z.ID)
	}

	var rollen, eigenschappen, zaakobjecten, zaakinformatieobjecten, resultaten, deelzaken, statussen map[int64][]uuid.UUID
	var kenmerken map[int64][]application.Kenmerk

	g, ctx := errgroup.WithContext(ctx)

	relations := []struct {
		query  string
		target *map[int64][]uuid.UUID
	}{
		{rollenQuery, &rollen},
		{eigenschappenQuery, &eigenschappen},
		{zaakobjectenQuery, &zaakobjecten},
		{zaakinformatieobjectenQuery, &zaakinformatieobjecten},
		{resultatenQuery, &resultaten},
		{deelzakenQuery, &deelzaken},
		{statussenQuery, &statussen},
	}

	for _, r := range relations {
		g.Go(func() error {
			m, err := db.related(ctx, r.query, ids)
			*r.target = m
			return err
		})
	}

	g.Go(func() error {
		var err error
		kenmerken, err = db.kenmerken(ctx, ids)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range zaken {
		z := &zaken[i]

		z.Rollen = refs(rollen[z.ID])
		z.Zaakobjecten = refs(zaakobjecten[z.ID])
		z.Zaakinformatieobjecten = refs(zaakinformatieobjecten[z.ID])
		z.Deelzaken = refs(deelzaken[z.ID])
		z.Kenmerken = kenmerken[z.ID]

		z.Eigenschappen = make([]application.EigenschapRef, 0, len(eigenschappen[z.ID]))
		for _, id := range eigenschappen[z.ID] {
			z.Eigenschappen = append(z.Eigenschappen, application.EigenschapRef{ZaakUUID: z.UUID, UUID: id})
		}

		if s := statussen[z.ID]; len(s) > 0 {
			z.Status = application.NewRef(s[0])
		}
		if r := resultaten[z.ID]; len(r) > 0 {
			z.Resultaat = application.NewRef(r[0])
		}
	}

	return nil
}

func (db Db) related(ctx context.Context, query string, ids []int64) (map[int64][]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, err
	}

	rels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (related, error) {
		var r related
		var id pgtype.UUID
		err := row.Scan(&r.zaakID, &id)
		r.uuid = toUUID(id)
		return r, err
	})
	if err != nil {
		return nil, err
	}

	m := make(map[int64][]uuid.UUID, len(ids))
	for _, r := range rels {
		m[r.zaakID] = append(m[r.zaakID], r.uuid)
	}

	return m, nil
}

func (db Db) kenmerken(ctx context.Context, ids []int64) (map[int64][]application.Kenmerk, error) {
	rows, err := db.pool.Query(ctx, kenmerkenQuery, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, err
	}

	m := make(map[int64][]application.Kenmerk, len(ids))

	var zaakID int64
	var k application.Kenmerk
	_, err = pgx.ForEachRow(rows, []any{&zaakID, &k.Kenmerk, &k.Bron}, func() error {
		m[zaakID] = append(m[zaakID], k)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

func refs(ids []uuid.UUID) []application.Ref {
	rs := make([]application.Ref, 0, len(ids))
	for _, id := range ids {
		rs = append(rs, application.Ref{UUID: id})
	}
	return rs
}
