package hyperlink

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type baseURLKey struct{}

// WithBaseURL stores the scheme and host that absolute URLs are built from.
func WithBaseURL(ctx context.Context, base *url.URL) context.Context {
	if base == nil {
		return ctx
	}
	b := &url.URL{Scheme: base.Scheme, Host: base.Host}
	return context.WithValue(ctx, baseURLKey{}, b)
}

func BaseURL(ctx context.Context) (*url.URL, bool) {
	b, ok := ctx.Value(baseURLKey{}).(*url.URL)
	if !ok || b == nil {
		return nil, false
	}
	u := *b
	return &u, true
}

// Middleware makes the base URL of the inbound request available to everything
// handling it. The value lives in the request context and goes away with it.
// X-Forwarded-Proto and X-Forwarded-Host are only honoured when trustForwarded
// is set, i.e. when every request passes a proxy that overwrites them.
func Middleware(trustForwarded bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithBaseURL(r.Context(), RequestBaseURL(r, trustForwarded))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequestBaseURL(r *http.Request, trustForwarded bool) *url.URL {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	host := r.Host

	if trustForwarded {
		if proto := strings.ToLower(firstValue(r.Header.Get("X-Forwarded-Proto"))); proto == "http" || proto == "https" {
			scheme = proto
		}
		if fwd := firstValue(r.Header.Get("X-Forwarded-Host")); fwd != "" {
			host = fwd
		}
	}

	return &url.URL{Scheme: scheme, Host: host}
}

// URL returns an absolute URL for path and query, or only the path and query
// when ctx carries no base URL.
func URL(ctx context.Context, path string, query url.Values) string {
	u := url.URL{Path: path}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	if base, ok := BaseURL(ctx); ok {
		u.Scheme = base.Scheme
		u.Host = base.Host
	}

	return u.String()
}

func firstValue(header string) string {
	v, _, _ := strings.Cut(header, ",")
	return strings.TrimSpace(v)
}
