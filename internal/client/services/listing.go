package services

import (
	"slices"
	"strings"
	"sync"

	"github.com/stylocoin/dashboard/internal/client/models"
)

// DefaultPageSize is used when neither the query nor the service sets one.
const DefaultPageSize = 10

// ListQuery is what a page asks for. Filter and Status are sent to the
// backend; Search only narrows the fetched page locally.
type ListQuery struct {
	Page   int
	Size   int
	Status string
	Filter string
	Search string
	UserID int64
}

func (q ListQuery) normalize(defaultSize int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = defaultSize
	}
	if q.Size < 1 {
		q.Size = DefaultPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func (q ListQuery) request() models.PageRequest {
	return models.PageRequest{Page: q.Page, Size: q.Size, FilterBy: q.Filter, UserID: q.UserID, Status: q.Status}
}

// Filter keeps the items with a search field containing search, ignoring case.
func Filter[T models.Searchable](items []T, search string) []T {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if slices.ContainsFunc(it.SearchFields(), func(f string) bool {
			return strings.Contains(strings.ToLower(f), search)
		}) {
			out = append(out, it)
		}
	}
	return out
}

// Paginate cuts the one-based page of size items out of a complete list.
func Paginate[T any](items []T, page, size int) models.Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))
	return models.Page[T]{
		Items: slices.Clone(items[start:end]),
		Total: int64(len(items)),
		Page:  page,
		Size:  size,
	}
}

// refine applies the local part of q to a page fetched with q.request().
// A backend that ignored size returns everything, which is then paginated
// here. A search narrows the page and its total to what matched.
func refine[T models.Searchable](page models.Page[T], q ListQuery) models.Page[T] {
	if page.Items == nil {
		page.Items = []T{}
	}
	if len(page.Items) > q.Size {
		page = Paginate(page.Items, q.Page, q.Size)
	}
	if q.Search != "" {
		page.Items = Filter(page.Items, q.Search)
		page.Total = int64(len(page.Items))
	}
	page.Page, page.Size = q.Page, q.Size
	return page
}

// pageCache remembers the last page a service showed so that mutations can
// be applied to it before the backend confirms them.
type pageCache[T any] struct {
	mu   sync.Mutex
	page models.Page[T]
}

func (c *pageCache[T]) set(p models.Page[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = clonePage(p)
}

func (c *pageCache[T]) get() models.Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clonePage(c.page)
}

// update applies fn to the cached items and returns the page as it was before.
// ok is false when fn reports that nothing matched.
func (c *pageCache[T]) update(fn func(items []T) ([]T, bool)) (prev models.Page[T], ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev = clonePage(c.page)
	items, ok := fn(slices.Clone(c.page.Items))
	if !ok {
		return prev, false
	}
	removed := len(c.page.Items) - len(items)
	c.page.Items = items
	c.page.Total -= int64(removed)
	return prev, true
}

// find returns the first cached item matching match.
func (c *pageCache[T]) find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := slices.IndexFunc(c.page.Items, match); i >= 0 {
		return c.page.Items[i], true
	}
	var zero T
	return zero, false
}

func (c *pageCache[T]) restore(prev models.Page[T]) {
	c.set(prev)
}

func clonePage[T any](p models.Page[T]) models.Page[T] {
	p.Items = slices.Clone(p.Items)
	if p.Items == nil {
		p.Items = []T{}
	}
	return p
}

// replaceWhere swaps the first item matching match for with.
func replaceWhere[T any](items []T, match func(T) bool, with func(T) T) ([]T, bool) {
	i := slices.IndexFunc(items, match)
	if i < 0 {
		return items, false
	}
	items[i] = with(items[i])
	return items, true
}
