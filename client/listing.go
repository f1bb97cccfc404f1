package client

import (
	"context"
	"sync"
)

// Listing is one table session: it owns a QueryState, fetches pages through
// the Client, and keeps the last successful page visible when a later fetch
// fails or is superseded.
type Listing struct {
	Client   *Client
	Resource string
	Query    *QueryState

	mu      sync.Mutex
	records []Record
	meta    Pagination
	loading bool
	loaded  bool
	lastErr error
}

func NewListing(c *Client, resource string) *Listing {
	return &Listing{Client: c, Resource: resource, Query: NewQueryState()}
}

// Reload fetches the page described by the current query. If the query
// changes while the request is in flight, the stale response is discarded
// and the state is left for the newer reload to fill in.
func (l *Listing) Reload(ctx context.Context) error {
	key := l.Query.Key()
	params := l.Query.Params()

	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	result, err := l.Client.List(ctx, l.Resource, params)

	l.mu.Lock()
	defer l.mu.Unlock()

	if key != l.Query.Key() {
		// superseded; a newer reload owns the state now
		return nil
	}
	l.loading = false

	if err != nil {
		l.lastErr = err
		return err
	}
	l.records = result.Records
	l.meta = result.Meta
	l.loaded = true
	l.lastErr = nil
	return nil
}

// Records returns the rows of the last successful fetch.
func (l *Listing) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Meta returns the pagination block of the last successful fetch.
func (l *Listing) Meta() Pagination {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.meta
}

// Loading reports whether a fetch is in flight.
func (l *Listing) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the error of the last fetch, nil after a success.
func (l *Listing) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Empty reports whether a completed fetch returned zero matching rows.
// It is false before the first successful load so callers can show a
// loading state instead of "no data".
func (l *Listing) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && l.meta.Total == 0
}

// HasNext reports whether a later page exists.
func (l *Listing) HasNext() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && l.meta.Page < l.meta.PageCount
}

// HasPrev reports whether an earlier page exists.
func (l *Listing) HasPrev() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && l.meta.Page > 1
}

// NextPage advances one page and reloads. Out of range is a no-op.
func (l *Listing) NextPage(ctx context.Context) error {
	if !l.HasNext() {
		return nil
	}
	l.Query.SetPage(l.Query.Page() + 1)
	return l.Reload(ctx)
}

// PrevPage goes back one page and reloads. Out of range is a no-op.
func (l *Listing) PrevPage(ctx context.Context) error {
	if !l.HasPrev() {
		return nil
	}
	l.Query.SetPage(l.Query.Page() - 1)
	return l.Reload(ctx)
}

// Search applies a contains filter on the given field and reloads from
// page 1.
func (l *Listing) Search(ctx context.Context, field, value string) error {
	l.Query.SetFilter(field, value)
	return l.Reload(ctx)
}
