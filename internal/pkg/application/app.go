package application

import (
	"context"
	"errors"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/diwise/zaken-api/internal/pkg/presentation/schema"
	"github.com/google/uuid"
)

//go:generate moq -rm -out app_mock.go . App
type App interface {
	QueryZaken(ctx context.Context, params map[string][]string) (pagination.Slice[schema.Resource], error)
	RetrieveZaak(ctx context.Context, id uuid.UUID) (schema.Resource, error)

	QueryRollen(ctx context.Context, params map[string][]string) (pagination.Slice[schema.Resource], error)
	RetrieveRol(ctx context.Context, id uuid.UUID) (schema.Resource, error)

	QueryZaakEigenschappen(ctx context.Context, zaakID uuid.UUID, params map[string][]string) (pagination.Slice[schema.Resource], error)
	RetrieveZaakEigenschap(ctx context.Context, zaakID, id uuid.UUID) (schema.Resource, error)
}

//go:generate moq -rm -out reader_mock.go . ZakenReader
type ZakenReader interface {
	Zaken(conditions ...ConditionFunc) pagination.Source[Zaak]
	Rollen(conditions ...ConditionFunc) pagination.Source[Rol]
	ZaakEigenschappen(conditions ...ConditionFunc) pagination.Source[ZaakEigenschap]
}

var ErrNotFound = errors.New("not found")

type app struct {
	reader  ZakenReader
	labels  Labels
	schemas *schemas

	zaken         pagination.Strategy[Zaak]
	rollen        pagination.Strategy[Rol]
	eigenschappen pagination.Strategy[ZaakEigenschap]
}

// New fails when routes lacks any of the detail routes the zaken resources
// link to.
func New(r ZakenReader, routes *hyperlink.Routes, labels Labels) (App, error) {
	s, err := newSchemas(routes, labels)
	if err != nil {
		return nil, err
	}

	return &app{
		reader:        r,
		labels:        labels,
		schemas:       s,
		zaken:         pagination.PageNumber[Zaak]{},
		rollen:        pagination.NewCursor(func(r Rol) int64 { return r.ID }),
		eigenschappen: pagination.LimitOffset[ZaakEigenschap]{},
	}, nil
}

func (a *app) QueryZaken(ctx context.Context, params map[string][]string) (pagination.Slice[schema.Resource], error) {
	conditions, err := ZakenParams(params, a.labels)
	if err != nil {
		return pagination.Slice[schema.Resource]{}, err
	}

	return query(ctx, a.zaken, a.reader.Zaken(conditions...), params, a.schemas.zaak)
}

func (a *app) RetrieveZaak(ctx context.Context, id uuid.UUID) (schema.Resource, error) {
	return retrieve(ctx, a.reader.Zaken(WithUUID(id)), a.schemas.zaak)
}

func (a *app) QueryRollen(ctx context.Context, params map[string][]string) (pagination.Slice[schema.Resource], error) {
	conditions, err := RollenParams(params)
	if err != nil {
		return pagination.Slice[schema.Resource]{}, err
	}

	return query(ctx, a.rollen, a.reader.Rollen(conditions...), params, a.schemas.rol)
}

func (a *app) RetrieveRol(ctx context.Context, id uuid.UUID) (schema.Resource, error) {
	return retrieve(ctx, a.reader.Rollen(WithUUID(id)), a.schemas.rol)
}

func (a *app) QueryZaakEigenschappen(ctx context.Context, zaakID uuid.UUID, params map[string][]string) (pagination.Slice[schema.Resource], error) {
	src := a.reader.ZaakEigenschappen(WithZaakUUID(zaakID))
	return query(ctx, a.eigenschappen, src, params, a.schemas.eigenschap)
}

func (a *app) RetrieveZaakEigenschap(ctx context.Context, zaakID, id uuid.UUID) (schema.Resource, error) {
	return retrieve(ctx, a.reader.ZaakEigenschappen(WithZaakUUID(zaakID), WithUUID(id)), a.schemas.eigenschap)
}

func query[T any](ctx context.Context, strategy pagination.Strategy[T], src pagination.Source[T], params map[string][]string, s *schema.Schema[T]) (pagination.Slice[schema.Resource], error) {
	log := logging.GetFromContext(ctx)

	page, err := strategy.Paginate(ctx, src, url.Values(params))
	if err != nil {
		if !errors.Is(err, pagination.ErrInvalidParameter) && !errors.Is(err, pagination.ErrPageNotFound) {
			log.Error("could not fetch page", "resource", s.Name(), "err", err.Error())
		}
		return pagination.Slice[schema.Resource]{}, err
	}

	return pagination.Project(ctx, page, s.Project)
}

func retrieve[T any](ctx context.Context, src pagination.Source[T], s *schema.Schema[T]) (schema.Resource, error) {
	items, err := src.Fetch(ctx, pagination.Window{Limit: 1})
	if err != nil {
		logging.GetFromContext(ctx).Error("could not retrieve resource", "resource", s.Name(), "err", err.Error())
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrNotFound
	}

	return s.Project(ctx, items[0])
}
