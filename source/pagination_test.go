package source

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func dataset(k int) []Record {
	records := make([]Record, k)
	for i := range records {
		records[i] = Record{"id": i}
	}
	return records
}

func TestPageWalkerCompleteness(t *testing.T) {
	cases := []struct {
		total            int
		pageSize         int
		expectedRequests int
	}{
		{total: 0, pageSize: 1, expectedRequests: 1},
		{total: 0, pageSize: 100, expectedRequests: 1},
		{total: 1, pageSize: 1, expectedRequests: 2},
		{total: 3, pageSize: 2, expectedRequests: 2},
		{total: 4, pageSize: 1, expectedRequests: 5},
		{total: 4, pageSize: 2, expectedRequests: 3},
		{total: 4, pageSize: 5, expectedRequests: 1},
		{total: 4, pageSize: 100, expectedRequests: 1},
		{total: 100, pageSize: 100, expectedRequests: 2},
		{total: 101, pageSize: 100, expectedRequests: 2},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d/pageSize=%d", tc.total, tc.pageSize), func(t *testing.T) {
			all := dataset(tc.total)
			requests := 0
			walker := PageWalker{
				PageSize: tc.pageSize,
				Fetch: func(_ context.Context, offset, count int) ([]Record, error) {
					requests++
					require.Equal(t, tc.pageSize, count)
					end := offset + count
					if end > len(all) {
						end = len(all)
					}
					if offset > len(all) {
						offset = len(all)
					}
					return all[offset:end], nil
				},
			}
			it, err := walker.Records(context.Background())
			require.NoError(t, err)
			records, err := Collect(it)
			require.NoError(t, err)
			require.Len(t, records, tc.total, "every upstream record must be yielded exactly once")
			require.Equal(t, tc.expectedRequests, requests)
		})
	}
}

func TestPageWalkerExactMultipleDoesNotTruncate(t *testing.T) {
	// a page exactly equal to the page size must trigger one more request
	all := dataset(4)
	requests := 0
	walker := PageWalker{
		PageSize: 2,
		Fetch: func(_ context.Context, offset, count int) ([]Record, error) {
			requests++
			end := offset + count
			if end > len(all) {
				end = len(all)
			}
			return all[offset:end], nil
		},
	}
	it, err := walker.Records(context.Background())
	require.NoError(t, err)
	records, err := Collect(it)
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, 3, requests)
}

func TestPageWalkerRejectsInvalidPageSize(t *testing.T) {
	walker := PageWalker{PageSize: 0, Fetch: func(context.Context, int, int) ([]Record, error) {
		t.Fatal("fetch must not be called")
		return nil, nil
	}}
	_, err := walker.Records(context.Background())
	require.Error(t, err)
}

func TestPageWalkerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	walker := PageWalker{
		PageSize: 1,
		Fetch: func(_ context.Context, offset, count int) ([]Record, error) {
			return dataset(1), nil
		},
	}
	it, err := walker.Records(ctx)
	require.NoError(t, err)
	_, err = it.Next()
	require.NoError(t, err)
	cancel()
	_, err = it.Next()
	require.ErrorIs(t, err, context.Canceled)
}
