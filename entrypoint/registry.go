package entrypoint

import (
	"sort"

	"github.com/apify/airbyte/appbase"
	"github.com/apify/airbyte/source"
)

// SourceFactory creates a source implementation instance.
type SourceFactory func(settings *appbase.Settings) source.Source

// sourceRegistry maps connector identifiers to factories. Used by
// CreateSource; implementations register themselves in init().
var sourceRegistry = make(map[string]SourceFactory)

// RegisterSource registers a factory under a connector identifier.
func RegisterSource(id string, factory SourceFactory) {
	sourceRegistry[id] = factory
}

// CreateSource resolves an identifier to a constructed source. An empty id
// is allowed when exactly one implementation is registered: connector
// binaries usually ship a single source and need no explicit selection.
func CreateSource(id string, settings *appbase.Settings) (source.Source, error) {
	if id == "" {
		if len(sourceRegistry) == 1 {
			for _, factory := range sourceRegistry {
				return factory(settings), nil
			}
		}
		return nil, source.ConfigError.New("no source implementation selected, registered: %v", RegisteredSources())
	}
	factory, ok := sourceRegistry[id]
	if !ok {
		return nil, source.ConfigError.New("unknown source implementation: %s, registered: %v", id, RegisteredSources())
	}
	return factory(settings), nil
}

// RegisteredSources lists registered identifiers in stable order.
func RegisteredSources() []string {
	ids := make([]string, 0, len(sourceRegistry))
	for id := range sourceRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
