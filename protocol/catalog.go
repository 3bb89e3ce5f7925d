package protocol

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Catalog is the complete set of streams a source can extract. Not to be
// confused with ConfiguredCatalog which is the subset selected for a run.
type Catalog struct {
	Streams []Stream `json:"streams"`
}

// Stream describes one extractable dataset: its name, record schema and
// supported sync modes.
type Stream struct {
	Name                    string     `json:"name"`
	JSONSchema              Properties `json:"json_schema"`
	SupportedSyncModes      []SyncMode `json:"supported_sync_modes,omitempty"`
	SourceDefinedCursor     bool       `json:"source_defined_cursor,omitempty"`
	DefaultCursorField      []string   `json:"default_cursor_field,omitempty"`
	SourceDefinedPrimaryKey [][]string `json:"source_defined_primary_key,omitempty"`
	Namespace               string     `json:"namespace,omitempty"`
}

// ConfiguredCatalog is the selection of streams and sync modes chosen by the
// caller for one read.
type ConfiguredCatalog struct {
	Streams []ConfiguredStream `json:"streams"`
}

// ConfiguredStream is a single selected stream.
type ConfiguredStream struct {
	Stream              Stream              `json:"stream"`
	SyncMode            SyncMode            `json:"sync_mode"`
	CursorField         []string            `json:"cursor_field,omitempty"`
	DestinationSyncMode DestinationSyncMode `json:"destination_sync_mode,omitempty"`
	PrimaryKey          [][]string          `json:"primary_key,omitempty"`
}

// Validate checks the selection is non-empty and stream names are unique.
// All problems are reported at once.
func (c *ConfiguredCatalog) Validate() error {
	var result *multierror.Error
	if len(c.Streams) == 0 {
		result = multierror.Append(result, fmt.Errorf("catalog selects no streams"))
	}
	seen := map[string]bool{}
	for i, cs := range c.Streams {
		name := cs.Stream.Name
		if name == "" {
			result = multierror.Append(result, fmt.Errorf("stream #%d has no name", i))
			continue
		}
		if seen[name] {
			result = multierror.Append(result, fmt.Errorf("stream %q selected more than once", name))
		}
		seen[name] = true
	}
	return result.ErrorOrNil()
}

// StreamNames returns selected stream names in catalog order.
func (c *ConfiguredCatalog) StreamNames() []string {
	names := make([]string, 0, len(c.Streams))
	for _, cs := range c.Streams {
		names = append(names, cs.Stream.Name)
	}
	return names
}
