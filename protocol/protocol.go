// Package protocol implements the wire contract between a connector process
// and the orchestrating platform: newline-delimited JSON messages on stdout.
// Message layout conforms to
// https://github.com/airbytehq/airbyte/blob/master/airbyte-protocol/models/src/main/resources/airbyte_protocol/airbyte_protocol.yaml
package protocol

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MessageType discriminates the Message union.
type MessageType string

const (
	MessageTypeRecord           MessageType = "RECORD"
	MessageTypeState            MessageType = "STATE"
	MessageTypeLog              MessageType = "LOG"
	MessageTypeConnectionStatus MessageType = "CONNECTION_STATUS"
	MessageTypeCatalog          MessageType = "CATALOG"
	MessageTypeSpec             MessageType = "SPEC"
)

var ErrInvalidTypePayload = errors.New("message type and payload are invalid")

// Message is the discriminated union emitted on the output channel. Exactly
// one payload field must be populated, matching Type. Unset fields are
// omitted from serialization.
type Message struct {
	Type             MessageType             `json:"type"`
	Record           *Record                 `json:"record,omitempty"`
	State            *State                  `json:"state,omitempty"`
	Log              *LogMessage             `json:"log,omitempty"`
	Spec             *ConnectorSpecification `json:"spec,omitempty"`
	ConnectionStatus *ConnectionStatus       `json:"connectionStatus,omitempty"`
	Catalog          *Catalog                `json:"catalog,omitempty"`
}

// MarshalJSON validates that the populated payload matches the type tag
// before serializing.
func (m *Message) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	type alias Message
	return json.Marshal((*alias)(m))
}

// Validate enforces the one-payload-per-type invariant.
func (m *Message) Validate() error {
	populated := 0
	var matching bool
	present := []struct {
		tp  MessageType
		set bool
	}{
		{MessageTypeRecord, m.Record != nil},
		{MessageTypeState, m.State != nil},
		{MessageTypeLog, m.Log != nil},
		{MessageTypeSpec, m.Spec != nil},
		{MessageTypeConnectionStatus, m.ConnectionStatus != nil},
		{MessageTypeCatalog, m.Catalog != nil},
	}
	for _, p := range present {
		if p.set {
			populated++
			if p.tp == m.Type {
				matching = true
			}
		}
	}
	if populated != 1 || !matching {
		return ErrInvalidTypePayload
	}
	return nil
}

// Record is a single extracted data point.
type Record struct {
	Stream    string         `json:"stream"`
	Namespace string         `json:"namespace,omitempty"`
	EmittedAt int64          `json:"emitted_at"`
	Data      map[string]any `json:"data"`
}

// State is an arbitrary checkpoint blob persisted between syncs.
type State struct {
	Data any `json:"data"`
}

// LogLevel defines the levels a LOG message can carry.
type LogLevel string

const (
	LogLevelFatal LogLevel = "FATAL"
	LogLevelError LogLevel = "ERROR"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelTrace LogLevel = "TRACE"
)

type LogMessage struct {
	Level   LogLevel `json:"level"`
	Message string   `json:"message"`
}

// CheckStatus is the outcome of a connectivity check.
type CheckStatus string

const (
	CheckStatusSucceeded CheckStatus = "SUCCEEDED"
	CheckStatusFailed    CheckStatus = "FAILED"
)

// ConnectionStatus reports whether configuration is usable for an actual
// read. A FAILED status is a regular message, not a process error.
type ConnectionStatus struct {
	Status  CheckStatus `json:"status"`
	Message string      `json:"message,omitempty"`
}

// SyncMode defines the modes a stream can sync in.
type SyncMode string

const (
	// SyncModeFullRefresh re-extracts the entire dataset on each run
	SyncModeFullRefresh SyncMode = "full_refresh"
	// SyncModeIncremental extracts only new or changed data using persisted state
	SyncModeIncremental SyncMode = "incremental"
)

// DestinationSyncMode tells the destination how to interpret the data.
type DestinationSyncMode string

const (
	DestinationSyncModeAppend    DestinationSyncMode = "append"
	DestinationSyncModeOverwrite DestinationSyncMode = "overwrite"
)
