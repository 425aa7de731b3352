package auth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
)

const policyQuery = "data.zaken.authz.allow"

// NewAuthenticator returns a middleware that asks the rego policy read from
// policies whether a request is allowed. The policy sees the request method,
// the path split into segments and the bearer token, if any.
func NewAuthenticator(ctx context.Context, logger *slog.Logger, policies io.Reader) (func(http.Handler) http.Handler, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %w", err)
	}

	query, err := rego.New(
		rego.Query(policyQuery),
		rego.Module("zaken.rego", string(module)),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare authz policies: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)

			input := map[string]any{
				"method": r.Method,
				"path":   strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
				"token":  token,
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				logger.Error("opa eval failed", "err", err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			if !results.Allowed() {
				if token == "" {
					w.Header().Set("WWW-Authenticate", "Bearer")
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
