package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/auth"
	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("zaken-api/api")

var ErrUnhandledRoute = errors.New("route without handler")

type options struct {
	trustForwarded bool
}

type Option func(*options)

// WithForwardedHeaders makes generated links follow X-Forwarded-Host and
// X-Forwarded-Proto. Only use it behind a proxy that sets both.
func WithForwardedHeaders(trust bool) Option {
	return func(o *options) {
		o.trustForwarded = trust
	}
}

// Register mounts a handler for every route in routes. Requests other than
// health checks pass the authenticator built from policies, unless policies is nil.
func Register(ctx context.Context, app application.App, routes *hyperlink.Routes, policies io.Reader, opts ...Option) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(hyperlink.Middleware(cfg.trustForwarded))

	authenticator := func(next http.Handler) http.Handler { return next }

	if policies != nil {
		var err error
		authenticator, err = auth.NewAuthenticator(ctx, log, policies)
		if err != nil {
			return nil, fmt.Errorf("failed to create api authenticator: %w", err)
		}
	} else {
		log.Warn("no authz policies loaded, api is open to anyone")
	}

	public := map[string]http.HandlerFunc{
		HealthRoute: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	protected := map[string]http.HandlerFunc{
		application.ZaakList:                   queryZakenHandler(log, app),
		application.ZaakDetail:                 retrieveZaakHandler(log, app),
		application.RolList:                    queryRollenHandler(log, app),
		application.RolDetail:                  retrieveRolHandler(log, app),
		application.ZaakEigenschapList:         queryZaakEigenschappenHandler(log, app),
		application.ZaakEigenschapDetail:       retrieveZaakEigenschapHandler(log, app),
		application.StatusDetail:               notImplementedHandler(log),
		application.ResultaatDetail:            notImplementedHandler(log),
		application.ZaakObjectDetail:           notImplementedHandler(log),
		application.ZaakInformatieObjectDetail: notImplementedHandler(log),
		application.ZaakTypeDetail:             notImplementedHandler(log),
	}

	var err error

	r.Group(func(pr chi.Router) {
		pr.Use(authenticator)
		err = mount(r, pr, routes, public, protected)
	})

	if err != nil {
		return nil, err
	}

	return r, nil
}

// mount fails on a route without handler as well as on a handler for a route
// that is not registered.
func mount(public, protected chi.Router, routes *hyperlink.Routes, publicHandlers, protectedHandlers map[string]http.HandlerFunc) error {
	mounted := map[string]bool{}

	for _, route := range routes.All() {
		if h, ok := protectedHandlers[route.Name]; ok {
			protected.Get(route.Pattern, h)
		} else if h, ok := publicHandlers[route.Name]; ok {
			public.Get(route.Pattern, h)
		} else {
			return fmt.Errorf("%w: %s", ErrUnhandledRoute, route.Name)
		}

		mounted[route.Name] = true
	}

	names := slices.Concat(slices.Sorted(maps.Keys(publicHandlers)), slices.Sorted(maps.Keys(protectedHandlers)))
	for _, name := range names {
		if !mounted[name] {
			return fmt.Errorf("%w: no route for handler %s", hyperlink.ErrUnknownRoute, name)
		}
	}

	return nil
}
