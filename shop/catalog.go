package shop

import (
	"context"
	"errors"
	"sync"

	"ecofinds/model"
)

// CategoryAll is the sentinel "show all" category.
const CategoryAll = "All"

// ErrSuperseded means a newer search was issued while this one was in
// flight; its response was discarded and visible state was not touched.
var ErrSuperseded = errors.New("search superseded by a newer request")

// CatalogAPI is the slice of the REST client the catalog needs.
type CatalogAPI interface {
	Items(ctx context.Context, category, search string) ([]model.Item, error)
}

// Catalog fetches and filters the item listing. Every filter change
// re-fetches from the backend; nothing is filtered client-side from a
// stale cache. Requests are tagged with a sequence number so an
// out-of-order response from an earlier request can never overwrite the
// result of a later one.
type Catalog struct {
	api CatalogAPI

	mu       sync.Mutex
	seq      uint64
	items    []model.Item
	category string
	query    string
}

func NewCatalog(api CatalogAPI) *Catalog {
	return &Catalog{api: api}
}

// Search fetches items for the given filters. Category CategoryAll or ""
// means no category filter; an empty query means no text filter. Only
// Available items are returned, even if the backend includes sold ones.
// A superseded request returns ErrSuperseded.
func (c *Catalog) Search(ctx context.Context, category, query string) ([]model.Item, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	filter := category
	if filter == CategoryAll {
		filter = ""
	}
	fetched, err := c.api.Items(ctx, filter, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	available := make([]model.Item, 0, len(fetched))
	for _, item := range fetched {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	c.items = available
	c.category = category
	c.query = query

	out := make([]model.Item, len(available))
	copy(out, available)
	return out, nil
}

// Items returns the result of the latest applied search.
func (c *Catalog) Items() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Filter returns the last applied category and query.
func (c *Catalog) Filter() (category, query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category, c.query
}
