package source

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func parentRecords(n int, accountType string) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{
			"profileId":   i + 1,
			"accountInfo": map[string]any{"type": accountType},
		}
	}
	return records
}

func accountTypeIs(tp string) ParentFilter {
	return func(parent Record) bool {
		info, _ := parent["accountInfo"].(map[string]any)
		return info["type"] == tp
	}
}

func TestDependentIteratorFanOut(t *testing.T) {
	loads := 0
	shared := NewSharedContext(func(context.Context) ([]Record, error) {
		loads++
		return parentRecords(4, "vendor"), nil
	})
	childExtractions := 0
	it := NewDependentIterator(context.Background(), shared, accountTypeIs("vendor"),
		func(_ context.Context, parent Record) (RecordIterator, error) {
			childExtractions++
			children := make([]Record, 4)
			for i := range children {
				children[i] = Record{"campaignId": i, "profileId": parent["profileId"]}
			}
			return NewSliceIterator(children), nil
		})

	records, err := Collect(it)
	require.NoError(t, err)
	require.Len(t, records, 16, "4 filtered parents x 4 children each")
	require.Equal(t, 4, childExtractions)
	require.Equal(t, 1, loads)

	// children of one parent are contiguous and in parent order
	require.Equal(t, 1, records[0]["profileId"])
	require.Equal(t, 1, records[3]["profileId"])
	require.Equal(t, 4, records[15]["profileId"])
}

func TestDependentIteratorFilter(t *testing.T) {
	parents := parentRecords(4, "seller")
	parents[2]["accountInfo"] = map[string]any{"type": "vendor"}
	shared := NewSharedContext(func(context.Context) ([]Record, error) {
		return parents, nil
	})
	it := NewDependentIterator(context.Background(), shared, accountTypeIs("vendor"),
		func(_ context.Context, parent Record) (RecordIterator, error) {
			return NewSliceIterator([]Record{{"parent": parent["profileId"]}}), nil
		})
	records, err := Collect(it)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 3, records[0]["parent"])
}

func TestSharedContextSingleRead(t *testing.T) {
	loads := 0
	shared := NewSharedContext(func(context.Context) ([]Record, error) {
		loads++
		return parentRecords(2, "vendor"), nil
	})

	child := func(_ context.Context, parent Record) (RecordIterator, error) {
		return NewSliceIterator([]Record{{"parent": parent["profileId"]}}), nil
	}

	// two dependent streams plus a direct consumer share one upstream read
	first, err := Collect(NewDependentIterator(context.Background(), shared, nil, child))
	require.NoError(t, err)
	second, err := Collect(NewDependentIterator(context.Background(), shared, nil, child))
	require.NoError(t, err)
	direct, err := shared.Parents(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	require.Len(t, direct, 2)
	require.Equal(t, 1, loads, "upstream must be read at most once per source lifetime")
}

func TestSharedContextRetriesFailedLoad(t *testing.T) {
	loads := 0
	shared := NewSharedContext(func(context.Context) ([]Record, error) {
		loads++
		if loads == 1 {
			return nil, fmt.Errorf("transient failure")
		}
		return parentRecords(1, "vendor"), nil
	})
	_, err := shared.Parents(context.Background())
	require.Error(t, err)
	records, err := shared.Parents(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 2, loads)
}

func TestDependentIteratorLazyConstruction(t *testing.T) {
	loaded := false
	shared := NewSharedContext(func(context.Context) ([]Record, error) {
		loaded = true
		return nil, nil
	})
	it := NewDependentIterator(context.Background(), shared, nil,
		func(context.Context, Record) (RecordIterator, error) {
			t.Fatal("no parents, child extraction must not run")
			return nil, nil
		})
	require.False(t, loaded, "constructing the iterator must not load the upstream")
	_, err := it.Next()
	require.ErrorIs(t, err, ErrEndOfStream)
	require.True(t, loaded)
}
