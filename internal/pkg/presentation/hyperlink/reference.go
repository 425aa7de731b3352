package hyperlink

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidLookup = errors.New("invalid lookup")

// Record is anything a reference can be resolved against, typically a related
// entity or a trimmed down key of one.
type Record interface {
	LookupField(name string) (string, bool)
}

// Fields is a Record backed by a map.
type Fields map[string]string

func (f Fields) LookupField(name string) (string, bool) {
	v, ok := f[name]
	return v, ok && v != ""
}

// Segment binds a path parameter of a route to a field of a record.
type Segment struct {
	Param string
	Field string
}

// By binds the path parameter and the record field of the same name.
func By(field string) Segment {
	return Segment{Param: field, Field: field}
}

// Reference produces URLs to the route it was created for. The zero value
// resolves nothing.
type Reference struct {
	route  Route
	lookup []Segment
}

// Reference creates a Reference to the named route. Every path parameter of the
// route must be bound by exactly one segment; with no segments a single uuid
// lookup is assumed.
func (rs *Routes) Reference(name string, lookup ...Segment) (Reference, error) {
	route, ok := rs.Lookup(name)
	if !ok {
		return Reference{}, fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	if len(lookup) == 0 {
		lookup = []Segment{By("uuid")}
	}

	params := route.Params()
	if len(params) != len(lookup) {
		return Reference{}, fmt.Errorf("%w: route %s has parameters %v", ErrInvalidLookup, name, params)
	}

	for _, s := range lookup {
		if s.Field == "" || !slices.Contains(params, s.Param) {
			return Reference{}, fmt.Errorf("%w: route %s has no parameter %q", ErrInvalidLookup, name, s.Param)
		}
	}

	return Reference{route: route, lookup: slices.Clone(lookup)}, nil
}

func (r Reference) Route() Route {
	return r.route
}

// Resolve returns the URL for rec, or nil when rec is absent or any of the
// looked up fields is missing or empty. A partial path is never produced.
func (r Reference) Resolve(ctx context.Context, rec Record) *string {
	if rec == nil || len(r.lookup) == 0 {
		return nil
	}

	values := make(map[string]string, len(r.lookup))
	for _, s := range r.lookup {
		v, ok := rec.LookupField(s.Field)
		if !ok || v == "" {
			return nil
		}
		values[s.Param] = v
	}

	path, ok := r.route.Path(values)
	if !ok {
		return nil
	}

	u := absolute(ctx, path)
	return &u
}

// ResolveAll resolves every record and skips the ones without a complete key.
// The result is never nil.
func (r Reference) ResolveAll(ctx context.Context, recs []Record) []string {
	urls := make([]string, 0, len(recs))
	for _, rec := range recs {
		if u := r.Resolve(ctx, rec); u != nil {
			urls = append(urls, *u)
		}
	}
	return urls
}

func absolute(ctx context.Context, escapedPath string) string {
	base, ok := BaseURL(ctx)
	if !ok {
		return escapedPath
	}
	return base.Scheme + "://" + base.Host + escapedPath
}
