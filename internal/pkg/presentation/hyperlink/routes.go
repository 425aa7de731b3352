package hyperlink

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
)

var (
	ErrEmptyName      = errors.New("empty route name")
	ErrDuplicateRoute = errors.New("route already registered")
	ErrUnknownRoute   = errors.New("unknown route")
	ErrInvalidPattern = errors.New("invalid route pattern")
)

// Route is a named path template such as /zaken/api/v1/zaken/{uuid}.
type Route struct {
	Name    string
	Pattern string
	params  []string
}

// Params returns the names of the path parameters in the order they appear in the pattern.
func (r Route) Params() []string {
	return slices.Clone(r.params)
}

// Path substitutes path escaped values into the pattern. It reports false if any
// parameter is missing or empty.
func (r Route) Path(values map[string]string) (string, bool) {
	path := r.Pattern

	for _, p := range r.params {
		v, ok := values[p]
		if !ok || v == "" {
			return "", false
		}
		path = strings.Replace(path, "{"+p+"}", url.PathEscape(v), 1)
	}

	return path, true
}

type Routes struct {
	mu     sync.RWMutex
	routes map[string]Route
	order  []string
}

func NewRoutes() *Routes {
	return &Routes{
		routes: make(map[string]Route),
	}
}

func (rs *Routes) Register(name, pattern string) (Route, error) {
	if name == "" {
		return Route{}, ErrEmptyName
	}

	params, err := parsePattern(pattern)
	if err != nil {
		return Route{}, fmt.Errorf("route %s: %w", name, err)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if existing, ok := rs.routes[name]; ok {
		if existing.Pattern == pattern {
			return existing, nil
		}
		return Route{}, fmt.Errorf("%w: %s", ErrDuplicateRoute, name)
	}

	r := Route{Name: name, Pattern: pattern, params: params}
	rs.routes[name] = r
	rs.order = append(rs.order, name)

	return r, nil
}

func (rs *Routes) Lookup(name string) (Route, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	r, ok := rs.routes[name]
	return r, ok
}

// All returns the registered routes in registration order.
func (rs *Routes) All() []Route {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	all := make([]Route, 0, len(rs.order))
	for _, name := range rs.order {
		all = append(all, rs.routes[name])
	}
	return all
}

func parsePattern(pattern string) ([]string, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}

	params := []string{}
	rest := pattern

	for {
		start := strings.Index(rest, "{")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidPattern, pattern)
		}

		name := rest[start+1 : start+end]
		if name == "" || strings.ContainsAny(name, "{:/") {
			return nil, fmt.Errorf("%w: bad parameter %q in %q", ErrInvalidPattern, name, pattern)
		}
		if slices.Contains(params, name) {
			return nil, fmt.Errorf("%w: parameter %q used twice in %q", ErrInvalidPattern, name, pattern)
		}

		params = append(params, name)
		rest = rest[start+end+1:]
	}

	if strings.Contains(rest, "}") {
		return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidPattern, pattern)
	}

	return params, nil
}
