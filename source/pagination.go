package source

import (
	"context"
	"fmt"
)

// FetchPage requests one page of records starting at offset, at most count
// records. Pages are requested strictly sequentially.
type FetchPage func(ctx context.Context, offset, count int) ([]Record, error)

// PageWalker drives repeated page requests with an increasing offset until a
// response page yields fewer records than the page size. A page exactly
// equal to the page size never terminates the walk: one more request is made
// even if it comes back empty, so a result set that is an exact multiple of
// the page size is not truncated.
type PageWalker struct {
	PageSize int
	Fetch    FetchPage
}

// Records returns a lazy iterator over all pages.
func (p PageWalker) Records(ctx context.Context) (RecordIterator, error) {
	if p.PageSize < 1 {
		return nil, fmt.Errorf("page size must be >= 1, got %d", p.PageSize)
	}
	w := &pageIterator{walker: p, ctx: ctx}
	return w, nil
}

type pageIterator struct {
	walker PageWalker
	ctx    context.Context

	page   []Record
	pos    int
	offset int
	done   bool
}

func (it *pageIterator) Next() (Record, error) {
	for it.pos >= len(it.page) {
		if it.done {
			return nil, ErrEndOfStream
		}
		if err := it.ctx.Err(); err != nil {
			return nil, err
		}
		page, err := it.walker.Fetch(it.ctx, it.offset, it.walker.PageSize)
		if err != nil {
			return nil, err
		}
		if len(page) < it.walker.PageSize {
			it.done = true
		}
		it.offset += len(page)
		it.page = page
		it.pos = 0
		if len(page) == 0 && it.done {
			return nil, ErrEndOfStream
		}
	}
	rec := it.page[it.pos]
	it.pos++
	return rec, nil
}
