package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/apify/airbyte/protocol"
)

// FullRefreshRead is the generic read driver used by connectors that only
// support full refresh. It walks the source's streams in their declared
// order, extracts the ones selected by the catalog and emits every record
// through the tracker as soon as it is produced. Nothing is buffered beyond
// the current page of the current stream.
func FullRefreshRead(ctx context.Context, src Source, config *ConfigContainer, catalog *protocol.ConfiguredCatalog, tracker protocol.MessageTracker) error {
	streams, err := src.Streams(config)
	if err != nil {
		return err
	}

	byName := make(map[string]Stream, len(streams))
	for _, s := range streams {
		byName[s.Name()] = s
	}
	selected := make(map[string]protocol.SyncMode, len(catalog.Streams))
	for _, cs := range catalog.Streams {
		if _, ok := byName[cs.Stream.Name]; !ok {
			return ExtractionError.New("catalog selects unknown stream %q", cs.Stream.Name)
		}
		selected[cs.Stream.Name] = cs.SyncMode
	}

	for _, stream := range streams {
		syncMode, ok := selected[stream.Name()]
		if !ok {
			continue
		}
		if syncMode == "" {
			syncMode = protocol.SyncModeFullRefresh
		}
		if err := readStream(ctx, stream, syncMode, tracker); err != nil {
			return ExtractionError.Wrap(err, "stream %s failed", stream.Name())
		}
	}
	return nil
}

func readStream(ctx context.Context, stream Stream, syncMode protocol.SyncMode, tracker protocol.MessageTracker) error {
	_ = tracker.Log(protocol.LogLevelInfo, fmt.Sprintf("Syncing stream: %s", stream.Name()))
	it, err := stream.ReadRecords(ctx, syncMode)
	if err != nil {
		return err
	}
	count := 0
	for {
		rec, err := it.Next()
		if errors.Is(err, ErrEndOfStream) {
			break
		}
		if err != nil {
			return err
		}
		if err := tracker.Record(rec, stream.Name(), ""); err != nil {
			return err
		}
		count++
	}
	_ = tracker.Log(protocol.LogLevelInfo, fmt.Sprintf("Read %d records from %s stream", count, stream.Name()))
	return nil
}

// ValidateStreams checks the declared stream set has unique names.
func ValidateStreams(streams []Stream) error {
	seen := make(map[string]bool, len(streams))
	for _, s := range streams {
		if s.Name() == "" {
			return fmt.Errorf("stream with empty name")
		}
		if seen[s.Name()] {
			return fmt.Errorf("duplicate stream name: %s", s.Name())
		}
		seen[s.Name()] = true
	}
	return nil
}
