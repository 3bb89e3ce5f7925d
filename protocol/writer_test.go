package protocol

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMessageTrackerOneLinePerMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	tracker := NewMessageTracker(buf)

	require.NoError(t, tracker.Record(map[string]any{"id": 1}, "profiles", ""))
	require.NoError(t, tracker.Log(LogLevelInfo, "reading"))
	require.NoError(t, tracker.State(map[string]any{"cursor": "x"}))

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)

	var rec Message
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	require.Equal(t, MessageTypeRecord, rec.Type)
	require.Equal(t, "profiles", rec.Record.Stream)
	require.InDelta(t, time.Now().UnixMilli(), rec.Record.EmittedAt, float64(10*time.Second.Milliseconds()))

	var lg Message
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &lg))
	require.Equal(t, MessageTypeLog, lg.Type)
	require.Equal(t, "reading", lg.Log.Message)

	var st Message
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &st))
	require.Equal(t, MessageTypeState, st.Type)
}

func TestConfiguredCatalogValidate(t *testing.T) {
	empty := &ConfiguredCatalog{}
	require.Error(t, empty.Validate())

	dup := &ConfiguredCatalog{Streams: []ConfiguredStream{
		{Stream: Stream{Name: "profiles"}, SyncMode: SyncModeFullRefresh},
		{Stream: Stream{Name: "profiles"}, SyncMode: SyncModeFullRefresh},
		{Stream: Stream{}, SyncMode: SyncModeFullRefresh},
	}}
	err := dup.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "selected more than once")
	require.Contains(t, err.Error(), "has no name")

	ok := &ConfiguredCatalog{Streams: []ConfiguredStream{
		{Stream: Stream{Name: "profiles"}, SyncMode: SyncModeFullRefresh},
		{Stream: Stream{Name: "campaigns"}, SyncMode: SyncModeFullRefresh},
	}}
	require.NoError(t, ok.Validate())
	require.Equal(t, []string{"profiles", "campaigns"}, ok.StreamNames())
}
