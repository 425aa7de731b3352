package pagination

import (
	"context"
	"net/url"

	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
)

// Envelope is the response body of every list endpoint, whatever strategy
// produced the page.
type Envelope[R any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []R     `json:"results"`
}

// NewEnvelope wraps a page and turns its neighbour parameters into absolute
// links to the path of the current request.
func NewEnvelope[R any](ctx context.Context, u *url.URL, s Slice[R]) Envelope[R] {
	results := s.Items
	if results == nil {
		results = []R{}
	}

	return Envelope[R]{
		Count:    s.Total,
		Next:     link(ctx, u, s.Next),
		Previous: link(ctx, u, s.Previous),
		Results:  results,
	}
}

func link(ctx context.Context, u *url.URL, q url.Values) *string {
	if q == nil {
		return nil
	}
	l := hyperlink.URL(ctx, u.Path, q)
	return &l
}
