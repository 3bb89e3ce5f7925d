package protocol

import (
	"io"
	"sync"
	"time"
)

// Write emits one serialized message followed by a newline.
func Write(w io.Writer, m *Message) error {
	return json.NewEncoder(w).Encode(m)
}

// LogWriter emits LOG messages. Only use it through LogTracker or
// MessageTracker to keep writes serialized.
type LogWriter func(level LogLevel, s string) error

// StateWriter emits STATE messages.
type StateWriter func(v any) error

// RecordWriter emits RECORD messages stamped with the emission time.
type RecordWriter func(data map[string]any, streamName string, namespace string) error

// MessageTracker bundles the record, state and log writers handed to a
// source during read. It is safe for concurrent use.
type MessageTracker struct {
	Record RecordWriter
	State  StateWriter
	Log    LogWriter
}

// LogTracker carries just the log writer for operations that must not emit
// records or state.
type LogTracker struct {
	Log LogWriter
}

// NewMessageTracker builds a tracker whose writers share one mutex-guarded
// output writer.
func NewMessageTracker(w io.Writer) MessageTracker {
	w = NewSafeWriter(w)
	return MessageTracker{
		Record: newRecordWriter(w),
		State:  newStateWriter(w),
		Log:    newLogWriter(w),
	}
}

func newLogWriter(w io.Writer) LogWriter {
	return func(lvl LogLevel, s string) error {
		return Write(w, &Message{
			Type: MessageTypeLog,
			Log: &LogMessage{
				Level:   lvl,
				Message: s,
			},
		})
	}
}

func newStateWriter(w io.Writer) StateWriter {
	return func(s any) error {
		return Write(w, &Message{
			Type:  MessageTypeState,
			State: &State{Data: s},
		})
	}
}

func newRecordWriter(w io.Writer) RecordWriter {
	return func(data map[string]any, stream string, namespace string) error {
		return Write(w, &Message{
			Type: MessageTypeRecord,
			Record: &Record{
				EmittedAt: time.Now().UnixMilli(),
				Data:      data,
				Namespace: namespace,
				Stream:    stream,
			},
		})
	}
}

type safeWriter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewSafeWriter serializes concurrent writes so emitted lines never
// interleave.
func NewSafeWriter(w io.Writer) io.Writer {
	return &safeWriter{w: w}
}

func (sw *safeWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}
