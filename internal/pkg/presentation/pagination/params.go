package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

const (
	PageSizeParam = "pageSize"
	PageParam     = "page"
	OffsetParam   = "offset"
	CursorParam   = "cursor"

	DefaultPageSize = 100
	MinPageSize     = 1
	MaxPageSize     = 1000
)

var (
	ErrInvalidParameter = errors.New("invalid query parameter")
	ErrPageNotFound     = errors.New("invalid page")
)

// ValidationError describes a rejected query parameter. Out of range values are
// rejected, never clamped.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

// Params lists the query parameters used for pagination, so that domain
// filters can tell them apart from their own.
var Params = []string{PageSizeParam, PageParam, OffsetParam, CursorParam}

func pageSize(q url.Values) (int, error) {
	if !q.Has(PageSizeParam) {
		return DefaultPageSize, nil
	}

	size, err := strconv.Atoi(q.Get(PageSizeParam))
	if err != nil {
		return 0, &ValidationError{Param: PageSizeParam, Reason: "must be an integer"}
	}
	if size < MinPageSize || size > MaxPageSize {
		return 0, &ValidationError{
			Param:  PageSizeParam,
			Reason: fmt.Sprintf("must be between %d and %d", MinPageSize, MaxPageSize),
		}
	}

	return size, nil
}

func pageNumber(q url.Values) (int, error) {
	if !q.Has(PageParam) {
		return 1, nil
	}

	page, err := strconv.Atoi(q.Get(PageParam))
	if err != nil {
		return 0, &ValidationError{Param: PageParam, Reason: "must be an integer"}
	}
	if page < 1 {
		return 0, &ValidationError{Param: PageParam, Reason: "must be greater than or equal to 1"}
	}

	return page, nil
}

func offset(q url.Values) (int, error) {
	if !q.Has(OffsetParam) {
		return 0, nil
	}

	o, err := strconv.Atoi(q.Get(OffsetParam))
	if err != nil {
		return 0, &ValidationError{Param: OffsetParam, Reason: "must be an integer"}
	}
	if o < 0 {
		return 0, &ValidationError{Param: OffsetParam, Reason: "must be greater than or equal to 0"}
	}

	return o, nil
}

func with(q url.Values, key, value string) url.Values {
	c := clone(q)
	c.Set(key, value)
	return c
}

func without(q url.Values, key string) url.Values {
	c := clone(q)
	c.Del(key)
	return c
}

func clone(q url.Values) url.Values {
	c := make(url.Values, len(q))
	for k, v := range q {
		c[k] = append([]string(nil), v...)
	}
	return c
}
