package schema

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/zaken-api/internal/pkg/presentation/geometry"
	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
)

type Kind int

const (
	Passthrough Kind = iota
	Excluded
	Computed
	Reference
)

func (k Kind) String() string {
	switch k {
	case Passthrough:
		return "passthrough"
	case Excluded:
		return "excluded"
	case Computed:
		return "computed"
	case Reference:
		return "reference"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Projector produces the external value of one field of v.
type Projector[T any] func(ctx context.Context, v T) (any, error)

// Field describes one external field of a resource. Fields are created with the
// constructors in this package.
type Field[T any] struct {
	Name    string
	Kind    Kind
	project Projector[T]
}

func Pass[T any](name string, get func(T) any) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Passthrough,
		project: func(_ context.Context, v T) (any, error) {
			return get(v), nil
		},
	}
}

// Date emits a calendar date as YYYY-MM-DD, or null.
func Date[T any](name string, get func(T) *time.Time) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Passthrough,
		project: func(_ context.Context, v T) (any, error) {
			if t := get(v); t != nil {
				return t.Format(time.DateOnly), nil
			}
			return nil, nil
		},
	}
}

// DateTime emits a timestamp in RFC 3339 format, or null.
func DateTime[T any](name string, get func(T) *time.Time) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Passthrough,
		project: func(_ context.Context, v T) (any, error) {
			if t := get(v); t != nil {
				return t.UTC().Format(time.RFC3339), nil
			}
			return nil, nil
		},
	}
}

// Exclude declares a stored field that is never emitted.
func Exclude[T any](name string) Field[T] {
	return Field[T]{Name: name, Kind: Excluded}
}

func Compute[T any](name string, fn func(T) any) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Computed,
		project: func(_ context.Context, v T) (any, error) {
			return fn(v), nil
		},
	}
}

// Label emits the display label of a coded value. Unset or unknown codes
// give an empty string.
func Label[T any](name string, labels map[string]string, code func(T) string) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Computed,
		project: func(_ context.Context, v T) (any, error) {
			return labels[code(v)], nil
		},
	}
}

// Object composes a nested object with its own schema. A nil sub value is
// emitted as null.
func Object[T, S any](name string, sub *Schema[S], get func(T) *S) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Computed,
		project: func(ctx context.Context, v T) (any, error) {
			s := get(v)
			if s == nil || sub == nil {
				return nil, nil
			}
			return sub.Project(ctx, *s)
		},
	}
}

// Geometry emits a stored geometry as GeoJSON. Invalid geometries fail the
// projection.
func Geometry[T any](name string, get func(T) any) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Computed,
		project: func(_ context.Context, v T) (any, error) {
			g, err := geometry.Decode(get(v))
			if err != nil {
				return nil, err
			}
			if g == nil {
				return nil, nil
			}
			return g, nil
		},
	}
}

// One emits the URL of a related record, or null.
func One[T any](name string, ref hyperlink.Reference, get func(T) hyperlink.Record) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Reference,
		project: func(ctx context.Context, v T) (any, error) {
			return ref.Resolve(ctx, get(v)), nil
		},
	}
}

// Many emits the URLs of related records. The list is empty, never null.
func Many[T any](name string, ref hyperlink.Reference, get func(T) []hyperlink.Record) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Reference,
		project: func(ctx context.Context, v T) (any, error) {
			return ref.ResolveAll(ctx, get(v)), nil
		},
	}
}

// Self emits the URL of the projected record itself.
func Self[T hyperlink.Record](name string, ref hyperlink.Reference) Field[T] {
	return Field[T]{
		Name: name,
		Kind: Reference,
		project: func(ctx context.Context, v T) (any, error) {
			return ref.Resolve(ctx, v), nil
		},
	}
}
