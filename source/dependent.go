package source

import (
	"context"
	"errors"
	"sync"
)

// SharedContext caches the records of an upstream stream so that every
// dependent stream can iterate them without repeating the upstream
// extraction. The upstream loader runs at most once per Source lifetime; the
// cached collection is exposed read-only to dependents.
type SharedContext struct {
	mu      sync.Mutex
	loaded  bool
	parents []Record
	loader  func(ctx context.Context) ([]Record, error)
}

// NewSharedContext creates a context whose parent collection is produced by
// loader on first use.
func NewSharedContext(loader func(ctx context.Context) ([]Record, error)) *SharedContext {
	return &SharedContext{loader: loader}
}

// Parents returns the cached upstream records, invoking the loader exactly
// once. A failed load is not cached so a later caller can retry.
func (c *SharedContext) Parents(ctx context.Context) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		parents, err := c.loader(ctx)
		if err != nil {
			return nil, err
		}
		c.parents = parents
		c.loaded = true
	}
	return c.parents, nil
}

// ParentFilter restricts which upstream records a dependent stream iterates
// over. A nil filter keeps every record.
type ParentFilter func(parent Record) bool

// ChildExtraction produces the record iterator of one parent's
// sub-extraction.
type ChildExtraction func(ctx context.Context, parent Record) (RecordIterator, error)

// DependentIterator yields, for each (filtered) upstream record, the full
// output of one child extraction. Total output size is the sum of per-parent
// extraction sizes. Parents are materialized lazily on the first Next call
// so constructing the iterator performs no I/O.
type DependentIterator struct {
	Shared *SharedContext
	Filter ParentFilter
	Child  ChildExtraction

	ctx      context.Context
	parents  []Record
	idx      int
	current  RecordIterator
	prepared bool
}

// NewDependentIterator builds the iterator; extraction starts on first Next.
func NewDependentIterator(ctx context.Context, shared *SharedContext, filter ParentFilter, child ChildExtraction) *DependentIterator {
	return &DependentIterator{Shared: shared, Filter: filter, Child: child, ctx: ctx}
}

func (d *DependentIterator) Next() (Record, error) {
	if !d.prepared {
		parents, err := d.Shared.Parents(d.ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range parents {
			if d.Filter == nil || d.Filter(p) {
				d.parents = append(d.parents, p)
			}
		}
		d.prepared = true
	}
	for {
		if d.current == nil {
			if d.idx >= len(d.parents) {
				return nil, ErrEndOfStream
			}
			current, err := d.Child(d.ctx, d.parents[d.idx])
			if err != nil {
				return nil, err
			}
			d.idx++
			d.current = current
		}
		rec, err := d.current.Next()
		if errors.Is(err, ErrEndOfStream) {
			d.current = nil
			continue
		}
		return rec, err
	}
}
