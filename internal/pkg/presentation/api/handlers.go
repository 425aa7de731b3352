package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/diwise/zaken-api/internal/pkg/application"
	"github.com/diwise/zaken-api/internal/pkg/presentation/geometry"
	"github.com/diwise/zaken-api/internal/pkg/presentation/pagination"
	"github.com/diwise/zaken-api/internal/pkg/presentation/schema"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func queryZakenHandler(log *slog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-zaken")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		crs, err := geometry.NegotiateCRS(r.Header.Get("Accept-Crs"))
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		result, err := app.QueryZaken(ctx, r.URL.Query())
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		w.Header().Set("Content-Crs", crs)
		err = writeList(ctx, w, r, result)
	}
}

func retrieveZaakHandler(log *slog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-zaak")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		crs, err := geometry.NegotiateCRS(r.Header.Get("Accept-Crs"))
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		id, err := uuidParam(r, "uuid")
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		zaak, err := app.RetrieveZaak(ctx, id)
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		w.Header().Set("Content-Crs", crs)
		err = writeResource(w, zaak)
	}
}

func queryRollenHandler(log *slog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-rollen")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := app.QueryRollen(ctx, r.URL.Query())
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		err = writeList(ctx, w, r, result)
	}
}

func retrieveRolHandler(log *slog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-rol")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		id, err := uuidParam(r, "uuid")
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		rol, err := app.RetrieveRol(ctx, id)
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		err = writeResource(w, rol)
	}
}

func queryZaakEigenschappenHandler(log *slog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-zaakeigenschappen")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		zaakID, err := uuidParam(r, "zaak_uuid")
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		result, err := app.QueryZaakEigenschappen(ctx, zaakID, r.URL.Query())
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		err = writeList(ctx, w, r, result)
	}
}

func retrieveZaakEigenschapHandler(log *slog.Logger, app application.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "retrieve-zaakeigenschap")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		zaakID, err := uuidParam(r, "zaak_uuid")
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		id, err := uuidParam(r, "uuid")
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		eigenschap, err := app.RetrieveZaakEigenschap(ctx, zaakID, id)
		if err != nil {
			writeProblem(w, logger, err)
			return
		}

		err = writeResource(w, eigenschap)
	}
}

func notImplementedHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, log, fmt.Errorf("%s: %w", r.URL.Path, errNotImplemented))
	}
}

// uuidParam reports a malformed identifier as not found, the same as an
// identifier that matches nothing.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", name, chi.URLParam(r, name), application.ErrNotFound)
	}
	return id, nil
}

func writeList(ctx context.Context, w http.ResponseWriter, r *http.Request, result pagination.Slice[schema.Resource]) error {
	b, err := marshal(pagination.NewEnvelope(ctx, r.URL, result))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("could not marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)

	return nil
}

func writeResource(w http.ResponseWriter, resource schema.Resource) error {
	b, err := marshal(resource)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return fmt.Errorf("could not marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)

	return nil
}

// marshal encodes v without HTML escaping, so links keep their & separators.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
