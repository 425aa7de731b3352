package pagination

import (
	"context"
	"net/url"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Window selects a part of an ordered result set. Either Offset or Seek is
// used, never both.
type Window struct {
	Offset int
	Limit  int
	Seek   *Seek
}

// Seek positions a window directly after (or, when Reverse is set, directly
// before) the item with the given key in the canonical order of a source.
type Seek struct {
	Key     int64
	Reverse bool
}

// Source is a filtered, ordered result set. Fetch always returns items in the
// canonical order of the source, also for reverse seeks. Count reports the size
// of the whole filtered set regardless of any window.
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, w Window) ([]T, error)
}

// Slice is one page of a source together with the query parameters of the
// neighbouring pages. A nil Previous or Next means there is no such page.
type Slice[T any] struct {
	Items    []T
	Total    int64
	Previous url.Values
	Next     url.Values
}

// Strategy turns request query parameters into a page of a source.
type Strategy[T any] interface {
	Paginate(ctx context.Context, src Source[T], q url.Values) (Slice[T], error)
}

// fetch counts and fetches concurrently and returns once both are done.
func fetch[T any](ctx context.Context, src Source[T], w Window) ([]T, int64, error) {
	var items []T
	var total int64

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = src.Count(ctx)
		return err
	})

	g.Go(func() error {
		var err error
		items, err = src.Fetch(ctx, w)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// PageNumber paginates with a 1-based page parameter.
type PageNumber[T any] struct{}

func (PageNumber[T]) Paginate(ctx context.Context, src Source[T], q url.Values) (Slice[T], error) {
	size, err := pageSize(q)
	if err != nil {
		return Slice[T]{}, err
	}

	page, err := pageNumber(q)
	if err != nil {
		return Slice[T]{}, err
	}

	skip := (page - 1) * size

	items, total, err := fetch(ctx, src, Window{Offset: skip, Limit: size})
	if err != nil {
		return Slice[T]{}, err
	}

	if page > 1 && int64(skip) >= total {
		return Slice[T]{}, ErrPageNotFound
	}

	s := Slice[T]{Items: items, Total: total}

	if page > 1 {
		s.Previous = with(q, PageParam, strconv.Itoa(page-1))
	}
	if int64(skip+size) < total {
		s.Next = with(q, PageParam, strconv.Itoa(page+1))
	}

	return s, nil
}

// LimitOffset paginates with an offset parameter and pageSize as limit.
type LimitOffset[T any] struct{}

func (LimitOffset[T]) Paginate(ctx context.Context, src Source[T], q url.Values) (Slice[T], error) {
	size, err := pageSize(q)
	if err != nil {
		return Slice[T]{}, err
	}

	skip, err := offset(q)
	if err != nil {
		return Slice[T]{}, err
	}

	items, total, err := fetch(ctx, src, Window{Offset: skip, Limit: size})
	if err != nil {
		return Slice[T]{}, err
	}

	if skip > 0 && int64(skip) >= total {
		return Slice[T]{}, ErrPageNotFound
	}

	s := Slice[T]{Items: items, Total: total}

	if skip > 0 {
		prev := max(skip-size, 0)
		if prev == 0 {
			s.Previous = without(q, OffsetParam)
		} else {
			s.Previous = with(q, OffsetParam, strconv.Itoa(prev))
		}
	}
	if int64(skip+size) < total {
		s.Next = with(q, OffsetParam, strconv.Itoa(skip+size))
	}

	return s, nil
}

// Cursor paginates with an opaque token holding the key of the item next to
// the page boundary. Key must return the value the source orders by.
type Cursor[T any] struct {
	Key func(T) int64
}

func NewCursor[T any](key func(T) int64) Cursor[T] {
	return Cursor[T]{Key: key}
}

func (c Cursor[T]) Paginate(ctx context.Context, src Source[T], q url.Values) (Slice[T], error) {
	size, err := pageSize(q)
	if err != nil {
		return Slice[T]{}, err
	}

	var seek *Seek
	if token := q.Get(CursorParam); token != "" {
		seek, err = decodeCursor(token)
		if err != nil {
			return Slice[T]{}, err
		}
	}

	// one extra item tells whether there is more beyond the page
	items, total, err := fetch(ctx, src, Window{Limit: size + 1, Seek: seek})
	if err != nil {
		return Slice[T]{}, err
	}

	reverse := seek != nil && seek.Reverse
	more := len(items) > size

	if more {
		if reverse {
			items = items[len(items)-size:]
		} else {
			items = items[:size]
		}
	}

	s := Slice[T]{Items: slices.Clip(items), Total: total}

	// a stale or crafted cursor can land outside the rows, the links still
	// lead back into the collection
	if len(items) == 0 {
		if seek != nil && !seek.Reverse {
			s.Previous = with(q, CursorParam, encodeCursor(Seek{Key: seek.Key, Reverse: true}))
		}
		if reverse {
			s.Next = without(q, CursorParam)
		}
		return s, nil
	}

	first := Seek{Key: c.Key(items[0]), Reverse: true}
	last := Seek{Key: c.Key(items[len(items)-1])}

	if reverse {
		if more {
			s.Previous = with(q, CursorParam, encodeCursor(first))
		}
		s.Next = with(q, CursorParam, encodeCursor(last))
	} else {
		if seek != nil {
			s.Previous = with(q, CursorParam, encodeCursor(first))
		}
		if more {
			s.Next = with(q, CursorParam, encodeCursor(last))
		}
	}

	return s, nil
}

// Project maps the items of a slice, for instance onto their external
// representation. It stops early when ctx is done.
func Project[T, R any](ctx context.Context, s Slice[T], fn func(context.Context, T) (R, error)) (Slice[R], error) {
	items := make([]R, 0, len(s.Items))

	for _, item := range s.Items {
		if err := ctx.Err(); err != nil {
			return Slice[R]{}, err
		}

		r, err := fn(ctx, item)
		if err != nil {
			return Slice[R]{}, err
		}
		items = append(items, r)
	}

	return Slice[R]{
		Items:    items,
		Total:    s.Total,
		Previous: s.Previous,
		Next:     s.Next,
	}, nil
}
