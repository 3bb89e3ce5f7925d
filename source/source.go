// Package source is the connector SDK: the Source and Stream contracts plus
// composable strategies for pagination and parent-child stream dependencies.
package source

import (
	"context"

	"github.com/apify/airbyte/protocol"
)

// Record is a single extracted data point in its raw map form.
type Record = map[string]any

// Source is the contract every connector implements. All methods that touch
// the network take a context.
type Source interface {
	// Spec returns the configuration schema and connector metadata. Pure,
	// deterministic, no network access.
	Spec(logTracker protocol.LogTracker) (*protocol.ConnectorSpecification, error)
	// Check probes connectivity with the given configuration. Connectivity
	// and credential problems are reported via a FAILED status, not an
	// error; the error return is reserved for malformed configuration.
	Check(ctx context.Context, config *ConfigContainer, logTracker protocol.LogTracker) (*protocol.ConnectionStatus, error)
	// Discover enumerates streams and their schemas without yielding bulk
	// data.
	Discover(ctx context.Context, config *ConfigContainer, logTracker protocol.LogTracker) (*protocol.Catalog, error)
	// Streams builds the concrete stream objects for this configuration in
	// a stable order with unique names. Pure construction, no network I/O.
	Streams(config *ConfigContainer) ([]Stream, error)
	// Read extracts records for every stream selected by the catalog,
	// emitting them through the tracker one at a time as they are produced.
	// statePath may be empty; its contents are opaque to the SDK.
	Read(ctx context.Context, config *ConfigContainer, catalog *protocol.ConfiguredCatalog, statePath string, tracker protocol.MessageTracker) error
}

// ConfigTransformer is optionally implemented by sources whose raw
// configuration needs rendering (e.g. deriving endpoint URLs) before use.
// The rendered form is what gets written to the scoped temporary area.
type ConfigTransformer interface {
	TransformConfig(raw map[string]any) (map[string]any, error)
}

// ConfigContainer is an immutable holder of raw and rendered connector
// configuration plus their file locations. The rendered file lives in a
// temporary working area owned by the dispatcher.
type ConfigContainer struct {
	raw          map[string]any
	rendered     map[string]any
	rawPath      string
	renderedPath string
}

func NewConfigContainer(raw, rendered map[string]any, rawPath, renderedPath string) *ConfigContainer {
	return &ConfigContainer{
		raw:          raw,
		rendered:     rendered,
		rawPath:      rawPath,
		renderedPath: renderedPath,
	}
}

func (c *ConfigContainer) Raw() map[string]any { return c.raw }

func (c *ConfigContainer) Rendered() map[string]any { return c.rendered }

func (c *ConfigContainer) RawPath() string { return c.rawPath }

func (c *ConfigContainer) RenderedPath() string { return c.renderedPath }
