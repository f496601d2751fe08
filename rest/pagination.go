package rest

import (
	"context"
	"errors"
)

// PageFunc fetches one page of results. It receives the zero-based page
// index and reports whether more pages remain.
type PageFunc func(ctx context.Context, page int) (more bool, err error)

// Paginator walks a paged list endpoint, invoking fetch for each page
// until the endpoint reports no further pages.
type Paginator struct {
	fetch PageFunc
}

// NewPaginator creates a paginator over the given fetch function.
func NewPaginator(fetch PageFunc) *Paginator {
	return &Paginator{fetch: fetch}
}

// All fetches every page, honoring context cancellation between pages.
func (p *Paginator) All(ctx context.Context) error {
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		more, err := p.fetch(ctx, page)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// CursorFunc fetches one batch of a cursor-based list. It receives the
// cursor token ("" for the first batch) and returns the token for the next
// batch, or ErrNoNextPage when the listing is exhausted.
type CursorFunc func(ctx context.Context, cursor string) (next string, err error)

// Cursor walks a cursor-based list endpoint, following next-cursor tokens
// returned by the API.
type Cursor struct {
	fetch CursorFunc
}

// NewCursor creates a cursor iterator over the given fetch function.
func NewCursor(fetch CursorFunc) *Cursor {
	return &Cursor{fetch: fetch}
}

// All follows cursors until the endpoint reports the end of the listing.
func (c *Cursor) All(ctx context.Context) error {
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		next, err := c.fetch(ctx, cursor)
		if errors.Is(err, ErrNoNextPage) {
			return nil
		}
		if err != nil {
			return err
		}
		if next == "" || next == cursor {
			return nil
		}
		cursor = next
	}
}
