package source

import (
	"context"
	"errors"

	"github.com/apify/airbyte/protocol"
)

// ErrEndOfStream is returned by RecordIterator.Next when the sequence is
// exhausted.
var ErrEndOfStream = errors.New("end of stream")

// Stream is one logical dataset extractable from a source.
type Stream interface {
	// Name is a stable identifier, unique within a Source.
	Name() string
	// JSONSchema describes the record shape for catalog discovery.
	JSONSchema() protocol.Properties
	// ReadRecords produces a finite, non-restartable sequence of records
	// reflecting upstream state at call time. Records are pulled one at a
	// time; nothing is buffered beyond the current page.
	ReadRecords(ctx context.Context, syncMode protocol.SyncMode) (RecordIterator, error)
}

// PrimaryKeyed is implemented by streams that declare a source-defined
// primary key for the catalog.
type PrimaryKeyed interface {
	PrimaryKey() [][]string
}

// RecordIterator is the pull contract for record production: each Next call
// yields one record or ErrEndOfStream. Iterators are not safe for concurrent
// use and cannot be restarted.
type RecordIterator interface {
	Next() (Record, error)
}

// FuncIterator adapts a function to RecordIterator.
type FuncIterator func() (Record, error)

func (f FuncIterator) Next() (Record, error) {
	return f()
}

type sliceIterator struct {
	records []Record
	pos     int
}

// NewSliceIterator iterates over an in-memory record slice.
func NewSliceIterator(records []Record) RecordIterator {
	return &sliceIterator{records: records}
}

func (s *sliceIterator) Next() (Record, error) {
	if s.pos >= len(s.records) {
		return nil, ErrEndOfStream
	}
	rec := s.records[s.pos]
	s.pos++
	return rec, nil
}

// Collect drains an iterator into a slice. Meant for tests and small
// bounded sequences, never for the read path.
func Collect(it RecordIterator) ([]Record, error) {
	var out []Record
	for {
		rec, err := it.Next()
		if errors.Is(err, ErrEndOfStream) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
