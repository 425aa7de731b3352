package application

import (
	"fmt"
	"maps"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/google/uuid"
)

type ConditionFunc func(map[string]any) map[string]any

func WithUUID(id uuid.UUID) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["uuid"] = id
		return m
	}
}

func WithZaakUUID(id uuid.UUID) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["zaak_uuid"] = id
		return m
	}
}

func WithIdentificatie(identificatie string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["identificatie"] = identificatie
		return m
	}
}

func WithBronorganisatie(bronorganisatie string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["bronorganisatie"] = bronorganisatie
		return m
	}
}

func WithArchiefstatus(archiefstatus string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["archiefstatus"] = archiefstatus
		return m
	}
}

func WithArchiefnominatie(archiefnominatie string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["archiefnominatie"] = archiefnominatie
		return m
	}
}

func WithVertrouwelijkheidaanduiding(v string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["vertrouwelijkheidaanduiding"] = v
		return m
	}
}

func WithBetrokkeneType(betrokkeneType string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["betrokkene_type"] = betrokkeneType
		return m
	}
}

// coded filters only accept values that have a display label
var codedFilters = map[string]func(string) ConditionFunc{
	"archiefstatus":               WithArchiefstatus,
	"archiefnominatie":            WithArchiefnominatie,
	"vertrouwelijkheidaanduiding": WithVertrouwelijkheidaanduiding,
}

// ZakenParams returns the conditions for the zaak filters in query.
func ZakenParams(query map[string][]string, labels Labels) ([]ConditionFunc, error) {
	conditions := make([]ConditionFunc, 0)
	q := url.Values(query)

	if q.Has("identificatie") {
		conditions = append(conditions, WithIdentificatie(q.Get("identificatie")))
	}

	if q.Has("bronorganisatie") {
		conditions = append(conditions, WithBronorganisatie(q.Get("bronorganisatie")))
	}

	for _, param := range slices.Sorted(maps.Keys(codedFilters)) {
		if !q.Has(param) {
			continue
		}

		code := q.Get(param)
		if _, ok := labels.For(param)[code]; !ok {
			return nil, &pagination.ValidationError{Param: param, Reason: fmt.Sprintf("unknown value %q", code)}
		}
		conditions = append(conditions, codedFilters[param](code))
	}

	return conditions, nil
}

// RollenParams returns the conditions for the rol filters in query. The zaak
// filter takes either a uuid or the URL of a zaak.
func RollenParams(query map[string][]string) ([]ConditionFunc, error) {
	conditions := make([]ConditionFunc, 0)
	q := url.Values(query)

	if q.Has("zaak") {
		id, err := zaakUUID(q.Get("zaak"))
		if err != nil {
			return nil, &pagination.ValidationError{Param: "zaak", Reason: "must be a zaak uuid or url"}
		}
		conditions = append(conditions, WithZaakUUID(id))
	}

	if q.Has("betrokkeneType") {
		conditions = append(conditions, WithBetrokkeneType(q.Get("betrokkeneType")))
	}

	return conditions, nil
}

func zaakUUID(v string) (uuid.UUID, error) {
	if id, err := uuid.Parse(v); err == nil {
		return id, nil
	}

	u, err := url.Parse(v)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(path.Base(strings.TrimSuffix(u.Path, "/")))
}
