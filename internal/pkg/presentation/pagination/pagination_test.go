package pagination

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"slices"
	"testing"

	"github.com/diwise/zaken-api/internal/pkg/presentation/hyperlink"
	"github.com/matryer/is"
)

// memSource orders items by descending key, like the database sources do.
type memSource struct {
	items []int64
}

func newMemSource(n int) *memSource {
	items := make([]int64, 0, n)
	for i := n; i > 0; i-- {
		items = append(items, int64(i))
	}
	return &memSource{items: items}
}

func (m *memSource) Count(ctx context.Context) (int64, error) {
	return int64(len(m.items)), nil
}

func (m *memSource) Fetch(ctx context.Context, w Window) ([]int64, error) {
	if w.Seek == nil {
		start := min(w.Offset, len(m.items))
		end := min(start+w.Limit, len(m.items))
		return slices.Clone(m.items[start:end]), nil
	}

	if w.Seek.Reverse {
		var before []int64
		for _, k := range m.items {
			if k > w.Seek.Key {
				before = append(before, k)
			}
		}
		start := max(len(before)-w.Limit, 0)
		return before[start:], nil
	}

	var after []int64
	for _, k := range m.items {
		if k < w.Seek.Key && len(after) < w.Limit {
			after = append(after, k)
		}
	}
	return after, nil
}

type failingSource struct{}

var errBoom = errors.New("boom")

func (failingSource) Count(ctx context.Context) (int64, error)            { return 0, errBoom }
func (failingSource) Fetch(ctx context.Context, w Window) ([]int64, error) { return nil, nil }

func identity(k int64) int64 { return k }

// walk follows next links from the first page and returns every item seen.
func walk(t *testing.T, s Strategy[int64], src Source[int64], q url.Values) ([]int64, []Slice[int64]) {
	t.Helper()

	var seen []int64
	var pages []Slice[int64]

	for range 100 {
		page, err := s.Paginate(context.Background(), src, q)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		seen = append(seen, page.Items...)
		pages = append(pages, page)
		if page.Next == nil {
			return seen, pages
		}
		q = page.Next
	}

	t.Fatal("pagination did not terminate")
	return nil, nil
}

func TestFollowingNextVisitsEveryItemOnce(t *testing.T) {
	strategies := map[string]Strategy[int64]{
		"page":   PageNumber[int64]{},
		"offset": LimitOffset[int64]{},
		"cursor": NewCursor(identity),
	}

	for name, s := range strategies {
		for _, n := range []int{0, 1, 2, 3, 7, 10} {
			t.Run(name, func(t *testing.T) {
				is := is.New(t)
				src := newMemSource(n)

				seen, pages := walk(t, s, src, url.Values{PageSizeParam: {"3"}})

				is.Equal(len(seen), n)
				is.True(slices.Equal(seen, src.items) || (n == 0 && len(seen) == 0))
				is.True(pages[0].Previous == nil)

				for _, p := range pages {
					is.Equal(p.Total, int64(n))
				}
			})
		}
	}
}

func TestFollowingPreviousReturnsToTheFirstPage(t *testing.T) {
	strategies := map[string]Strategy[int64]{
		"page":   PageNumber[int64]{},
		"offset": LimitOffset[int64]{},
		"cursor": NewCursor(identity),
	}

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			src := newMemSource(10)

			_, pages := walk(t, s, src, url.Values{PageSizeParam: {"3"}})
			is.Equal(len(pages), 4)

			q := pages[len(pages)-1].Previous
			var back [][]int64
			for q != nil {
				page, err := s.Paginate(context.Background(), src, q)
				is.NoErr(err)
				back = append(back, page.Items)
				q = page.Previous
			}

			is.Equal(len(back), 3)
			is.Equal(back[0], pages[2].Items)
			is.Equal(back[1], pages[1].Items)
			is.Equal(back[2], pages[0].Items)
		})
	}
}

func TestPageNumberLinks(t *testing.T) {
	is := is.New(t)

	page, err := PageNumber[int64]{}.Paginate(context.Background(), newMemSource(10), url.Values{
		PageParam:     {"2"},
		PageSizeParam: {"3"},
		"status":      {"open"},
	})
	is.NoErr(err)

	is.Equal(page.Items, []int64{7, 6, 5})
	is.Equal(page.Previous.Get(PageParam), "1")
	is.Equal(page.Next.Get(PageParam), "3")
	is.Equal(page.Next.Get("status"), "open")
	is.Equal(page.Next.Get(PageSizeParam), "3")
}

func TestPageNumberPastTheEndIsNotFound(t *testing.T) {
	is := is.New(t)

	_, err := PageNumber[int64]{}.Paginate(context.Background(), newMemSource(4), url.Values{
		PageParam:     {"3"},
		PageSizeParam: {"2"},
	})
	is.True(errors.Is(err, ErrPageNotFound))
}

func TestFirstPageOfEmptySetIsNotAnError(t *testing.T) {
	is := is.New(t)

	page, err := PageNumber[int64]{}.Paginate(context.Background(), newMemSource(0), url.Values{})
	is.NoErr(err)
	is.Equal(page.Total, int64(0))
	is.True(page.Next == nil)
	is.True(page.Previous == nil)
}

func TestLimitOffsetDropsOffsetWhenBackAtTheStart(t *testing.T) {
	is := is.New(t)

	page, err := LimitOffset[int64]{}.Paginate(context.Background(), newMemSource(10), url.Values{
		OffsetParam:   {"2"},
		PageSizeParam: {"3"},
	})
	is.NoErr(err)

	is.Equal(page.Items, []int64{8, 7, 6})
	is.True(page.Previous != nil)
	is.True(!page.Previous.Has(OffsetParam))
	is.Equal(page.Next.Get(OffsetParam), "5")
}

func TestLimitOffsetPastTheEndIsNotFound(t *testing.T) {
	is := is.New(t)

	for _, off := range []string{"4", "9"} {
		_, err := LimitOffset[int64]{}.Paginate(context.Background(), newMemSource(4), url.Values{
			OffsetParam:   {off},
			PageSizeParam: {"2"},
		})
		is.True(errors.Is(err, ErrPageNotFound))
	}

	page, err := LimitOffset[int64]{}.Paginate(context.Background(), newMemSource(0), url.Values{})
	is.NoErr(err)
	is.Equal(len(page.Items), 0)
}

func TestCursorPastTheLastRowLeadsBack(t *testing.T) {
	is := is.New(t)

	s := NewCursor(identity)
	src := newMemSource(5)

	stale := url.Values{PageSizeParam: {"2"}, CursorParam: {encodeCursor(Seek{Key: 1})}}
	page, err := s.Paginate(context.Background(), src, stale)
	is.NoErr(err)
	is.Equal(len(page.Items), 0)
	is.True(page.Next == nil)
	is.True(page.Previous != nil)

	back, err := s.Paginate(context.Background(), src, page.Previous)
	is.NoErr(err)
	is.Equal(back.Items, []int64{3, 2})
	is.True(back.Next != nil)
}

func TestCursorBeforeTheFirstRowLeadsToTheFirstPage(t *testing.T) {
	is := is.New(t)

	s := NewCursor(identity)
	src := newMemSource(5)

	stale := url.Values{PageSizeParam: {"2"}, CursorParam: {encodeCursor(Seek{Key: 5, Reverse: true})}}
	page, err := s.Paginate(context.Background(), src, stale)
	is.NoErr(err)
	is.Equal(len(page.Items), 0)
	is.True(page.Previous == nil)
	is.True(page.Next != nil)
	is.True(!page.Next.Has(CursorParam))

	first, err := s.Paginate(context.Background(), src, page.Next)
	is.NoErr(err)
	is.Equal(first.Items, []int64{5, 4})
	is.True(first.Previous == nil)
}

func TestDefaultPageSize(t *testing.T) {
	is := is.New(t)

	page, err := LimitOffset[int64]{}.Paginate(context.Background(), newMemSource(250), url.Values{})
	is.NoErr(err)
	is.Equal(len(page.Items), DefaultPageSize)
	is.Equal(page.Next.Get(OffsetParam), "100")
}

func TestInvalidParametersAreRejected(t *testing.T) {
	cases := []struct {
		s     Strategy[int64]
		q     url.Values
		param string
	}{
		{PageNumber[int64]{}, url.Values{PageSizeParam: {"0"}}, PageSizeParam},
		{PageNumber[int64]{}, url.Values{PageSizeParam: {"1001"}}, PageSizeParam},
		{PageNumber[int64]{}, url.Values{PageSizeParam: {"many"}}, PageSizeParam},
		{PageNumber[int64]{}, url.Values{PageParam: {"0"}}, PageParam},
		{PageNumber[int64]{}, url.Values{PageParam: {"last"}}, PageParam},
		{LimitOffset[int64]{}, url.Values{OffsetParam: {"-1"}}, OffsetParam},
		{NewCursor(identity), url.Values{CursorParam: {"not a cursor!"}}, CursorParam},
		{NewCursor(identity), url.Values{CursorParam: {"bm90IGpzb24"}}, CursorParam},
	}

	for _, c := range cases {
		is := is.New(t)

		_, err := c.s.Paginate(context.Background(), newMemSource(3), c.q)
		is.True(errors.Is(err, ErrInvalidParameter))

		var verr *ValidationError
		is.True(errors.As(err, &verr))
		is.Equal(verr.Param, c.param)
	}
}

func TestPageSizeBoundsAreAccepted(t *testing.T) {
	is := is.New(t)

	for _, size := range []string{"1", "1000"} {
		_, err := PageNumber[int64]{}.Paginate(context.Background(), newMemSource(3), url.Values{PageSizeParam: {size}})
		is.NoErr(err)
	}
}

func TestSourceErrorsPropagate(t *testing.T) {
	is := is.New(t)

	_, err := PageNumber[int64]{}.Paginate(context.Background(), failingSource{}, url.Values{})
	is.True(errors.Is(err, errBoom))
}

func TestCursorIsOpaque(t *testing.T) {
	is := is.New(t)

	page, err := NewCursor(identity).Paginate(context.Background(), newMemSource(5), url.Values{PageSizeParam: {"2"}})
	is.NoErr(err)

	token := page.Next.Get(CursorParam)
	is.True(token != "")

	seek, err := decodeCursor(token)
	is.NoErr(err)
	is.Equal(*seek, Seek{Key: 4})
}

func TestProject(t *testing.T) {
	is := is.New(t)

	s := Slice[int64]{Items: []int64{1, 2}, Total: 5, Next: url.Values{PageParam: {"2"}}}

	r, err := Project(context.Background(), s, func(ctx context.Context, k int64) (string, error) {
		return string(rune('a' + k)), nil
	})
	is.NoErr(err)
	is.Equal(r.Items, []string{"b", "c"})
	is.Equal(r.Total, int64(5))
	is.Equal(r.Next.Get(PageParam), "2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Project(ctx, s, func(ctx context.Context, k int64) (string, error) { return "", nil })
	is.True(errors.Is(err, context.Canceled))
}

func TestEnvelopeJSON(t *testing.T) {
	is := is.New(t)

	base, _ := url.Parse("https://zaken.example.org")
	ctx := hyperlink.WithBaseURL(context.Background(), base)
	u, _ := url.Parse("/zaken/api/v1/zaken?page=2&pageSize=2")

	env := NewEnvelope(ctx, u, Slice[string]{
		Items:    []string{"x"},
		Total:    5,
		Previous: url.Values{PageParam: {"1"}, PageSizeParam: {"2"}},
		Next:     url.Values{PageParam: {"3"}, PageSizeParam: {"2"}},
	})

	b, err := encode(env)
	is.NoErr(err)
	is.Equal(string(b), `{"count":5,"next":"https://zaken.example.org/zaken/api/v1/zaken?page=3&pageSize=2","previous":"https://zaken.example.org/zaken/api/v1/zaken?page=1&pageSize=2","results":["x"]}`)
}

func TestEmptyEnvelopeJSON(t *testing.T) {
	is := is.New(t)

	u, _ := url.Parse("/zaken/api/v1/rollen")
	env := NewEnvelope(context.Background(), u, Slice[string]{})

	b, err := encode(env)
	is.NoErr(err)
	is.Equal(string(b), `{"count":0,"next":null,"previous":null,"results":[]}`)
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
