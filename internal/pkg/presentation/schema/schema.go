package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSchema = errors.New("invalid schema")

// Schema is the ordered table of fields that maps an entity onto its external
// representation.
type Schema[T any] struct {
	name   string
	fields []Field[T]
}

func New[T any](name string, fields ...Field[T]) (*Schema[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: schema has no name", ErrInvalidSchema)
	}

	seen := make(map[string]struct{}, len(fields))

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s: field %d has no name", ErrInvalidSchema, name, i)
		}
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("%w: %s: duplicate field %s", ErrInvalidSchema, name, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Kind != Excluded && f.project == nil {
			return nil, fmt.Errorf("%w: %s: %s field %s cannot be projected", ErrInvalidSchema, name, f.Kind, f.Name)
		}
	}

	return &Schema[T]{
		name:   name,
		fields: append([]Field[T](nil), fields...),
	}, nil
}

func Must[T any](s *Schema[T], err error) *Schema[T] {
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[T]) Name() string {
	return s.name
}

// Names returns the emitted field names in output order.
func (s *Schema[T]) Names() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if f.Kind != Excluded {
			names = append(names, f.Name)
		}
	}
	return names
}

func (s *Schema[T]) Project(ctx context.Context, v T) (Resource, error) {
	r := make(Resource, 0, len(s.fields))

	for _, f := range s.fields {
		if f.Kind == Excluded {
			continue
		}

		value, err := f.project(ctx, v)
		if err != nil {
			return nil, fmt.Errorf("could not project %s.%s: %w", s.name, f.Name, err)
		}

		r = append(r, Member{Key: f.Name, Value: value})
	}

	return r, nil
}

type Member struct {
	Key   string
	Value any
}

// Resource is a projected entity. It marshals to a JSON object with the members
// in schema order.
type Resource []Member

func (r Resource) Get(key string) (any, bool) {
	for _, m := range r {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// MarshalJSON leaves characters such as & in links unescaped. Encoders that
// embed a Resource must also have SetEscapeHTML(false) to keep them that way.
func (r Resource) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')

	for i, m := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := enc.Encode(m.Key); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')

		if err := enc.Encode(m.Value); err != nil {
			return nil, fmt.Errorf("could not marshal %s: %w", m.Key, err)
		}
		trimNewline(&buf)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encoder.Encode terminates every value with a newline
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
