package storage

import (
	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/jackc/pgx/v5"
)

func newConditions(conditions ...application.ConditionFunc) map[string]any {
	m := make(map[string]any)

	for _, f := range conditions {
		m = f(m)
	}

	return m
}

func newZakenParams(conditions ...application.ConditionFunc) (string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["uuid"]; ok {
		query += " AND z.uuid=@uuid"
		args["uuid"] = id
	}

	if identificatie, ok := c["identificatie"]; ok {
		query += " AND zi.identificatie=@identificatie"
		args["identificatie"] = identificatie
	}

	if bronorganisatie, ok := c["bronorganisatie"]; ok {
		query += " AND zi.bronorganisatie=@bronorganisatie"
		args["bronorganisatie"] = bronorganisatie
	}

	if archiefstatus, ok := c["archiefstatus"]; ok {
		query += " AND z.archiefstatus=@archiefstatus"
		args["archiefstatus"] = archiefstatus
	}

	if archiefnominatie, ok := c["archiefnominatie"]; ok {
		query += " AND z.archiefnominatie=@archiefnominatie"
		args["archiefnominatie"] = archiefnominatie
	}

	if v, ok := c["vertrouwelijkheidaanduiding"]; ok {
		query += " AND z.vertrouwelijkheidaanduiding=@vertrouwelijkheidaanduiding"
		args["vertrouwelijkheidaanduiding"] = v
	}

	return query, args
}

func newRollenParams(conditions ...application.ConditionFunc) (string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["uuid"]; ok {
		query += " AND r.uuid=@uuid"
		args["uuid"] = id
	}

	if zaakID, ok := c["zaak_uuid"]; ok {
		query += " AND z.uuid=@zaak_uuid"
		args["zaak_uuid"] = zaakID
	}

	if betrokkeneType, ok := c["betrokkene_type"]; ok {
		query += " AND r.betrokkene_type=@betrokkene_type"
		args["betrokkene_type"] = betrokkeneType
	}

	return query, args
}

func newZaakEigenschappenParams(conditions ...application.ConditionFunc) (string, pgx.NamedArgs) {
	c := newConditions(conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if id, ok := c["uuid"]; ok {
		query += " AND e.uuid=@uuid"
		args["uuid"] = id
	}

	if zaakID, ok := c["zaak_uuid"]; ok {
		query += " AND z.uuid=@zaak_uuid"
		args["zaak_uuid"] = zaakID
	}

	return query, args
}

// newWindowClause returns the seek condition to append to a where clause and
// the ordering and paging clause that follows it. Reverse seeks are read in
// ascending order and must be reversed by the caller.
func newWindowClause(key string, w pagination.Window, args pgx.NamedArgs) (string, string) {
	seek := ""
	tail := " ORDER BY " + key + " DESC"

	if w.Seek != nil {
		args["seek"] = w.Seek.Key
		if w.Seek.Reverse {
			seek = " AND " + key + ">@seek"
			tail = " ORDER BY " + key + " ASC"
		} else {
			seek = " AND " + key + "<@seek"
		}
	}

	if w.Seek == nil && w.Offset > 0 {
		tail += " OFFSET @offset"
		args["offset"] = w.Offset
	}

	if w.Limit > 0 {
		tail += " LIMIT @limit"
		args["limit"] = w.Limit
	}

	return seek, tail
}
