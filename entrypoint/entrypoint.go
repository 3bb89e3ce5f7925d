// Package entrypoint dispatches the four protocol commands (spec, check,
// discover, read) to a source implementation and serializes results onto the
// output channel.
package entrypoint

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/joomcode/errorx"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"

	"github.com/apify/airbyte/appbase"
	"github.com/apify/airbyte/logging"
	"github.com/apify/airbyte/protocol"
	"github.com/apify/airbyte/source"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Exit codes. Note that a FAILED check still exits 0: orchestrators parse
// the CONNECTION_STATUS payload, not the exit code.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type command string

const (
	cmdSpec     command = "spec"
	cmdCheck    command = "check"
	cmdDiscover command = "discover"
	cmdRead     command = "read"
)

// Entrypoint parses a command, validates its arguments, invokes the
// corresponding source operation and writes protocol messages to out.
type Entrypoint struct {
	appbase.Service
	src     source.Source
	out     io.Writer
	tracker protocol.MessageTracker
}

// NewEntrypoint builds a dispatcher around an already-constructed source.
// Message output goes to out (stdout in a connector binary).
func NewEntrypoint(src source.Source, out io.Writer) *Entrypoint {
	out = protocol.NewSafeWriter(out)
	return &Entrypoint{
		Service: appbase.NewServiceBase("entrypoint"),
		src:     src,
		out:     out,
		tracker: protocol.NewMessageTracker(out),
	}
}

// Run executes one command and returns the process exit code.
func (e *Entrypoint) Run(ctx context.Context, args []string) int {
	err := e.run(ctx, args)
	if err == nil {
		return ExitOK
	}
	if errorx.IsOfType(err, source.UsageError) {
		e.Errorf("%s", err)
		return ExitUsage
	}
	e.Errorf("%s", err)
	return ExitError
}

func (e *Entrypoint) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return source.UsageError.New("no command passed, expected one of: spec, check, discover, read")
	}
	cmd := command(args[0])

	var configPath, catalogPath, statePath string
	flags := pflag.NewFlagSet(string(cmd), pflag.ContinueOnError)
	switch cmd {
	case cmdSpec:
	case cmdCheck, cmdDiscover:
		flags.StringVar(&configPath, "config", "", "path to the json configuration file")
	case cmdRead:
		flags.StringVar(&configPath, "config", "", "path to the json configuration file")
		flags.StringVar(&catalogPath, "catalog", "", "path to the catalog used to determine which data to read")
		flags.StringVar(&statePath, "state", "", "path to the json-encoded state file")
	default:
		return source.UsageError.New("unrecognized command: %s", cmd)
	}
	if err := flags.Parse(args[1:]); err != nil {
		return source.UsageError.Wrap(err, "invalid arguments for %s", cmd)
	}

	logTracker := protocol.LogTracker{Log: e.tracker.Log}

	if cmd == cmdSpec {
		spec, err := e.src.Spec(logTracker)
		if err != nil {
			return err
		}
		return protocol.Write(e.out, &protocol.Message{
			Type: protocol.MessageTypeSpec,
			Spec: spec,
		})
	}

	if configPath == "" {
		return source.UsageError.New("--config is required for %s", cmd)
	}
	if cmd == cmdRead && catalogPath == "" {
		return source.UsageError.New("--catalog is required for read")
	}

	// Rendered configuration lives in a scoped temporary working area that
	// is released on every exit path.
	tempDir, err := os.MkdirTemp("", "connector-"+uuid.NewString())
	if err != nil {
		return fmt.Errorf("failed to create temporary working area: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			e.Warnf("failed to clean up temporary working area %s: %s", tempDir, err)
		}
	}()

	container, err := e.buildConfigContainer(configPath, tempDir)
	if err != nil {
		return err
	}

	switch cmd {
	case cmdCheck:
		status, err := e.src.Check(ctx, container, logTracker)
		if err != nil {
			return err
		}
		if status.Status == protocol.CheckStatusSucceeded {
			logging.Info("Check succeeded")
		} else {
			logging.Error("Check failed")
		}
		return protocol.Write(e.out, &protocol.Message{
			Type:             protocol.MessageTypeConnectionStatus,
			ConnectionStatus: status,
		})
	case cmdDiscover:
		catalog, err := e.src.Discover(ctx, container, logTracker)
		if err != nil {
			return err
		}
		return protocol.Write(e.out, &protocol.Message{
			Type:    protocol.MessageTypeCatalog,
			Catalog: catalog,
		})
	case cmdRead:
		catalog := &protocol.ConfiguredCatalog{}
		if err := unmarshalFromPath(catalogPath, catalog); err != nil {
			return source.ConfigError.Wrap(err, "failed to read catalog %s", catalogPath)
		}
		if err := catalog.Validate(); err != nil {
			return source.ConfigError.Wrap(err, "invalid catalog %s", catalogPath)
		}
		return e.src.Read(ctx, container, catalog, statePath, e.tracker)
	}
	return nil
}

// buildConfigContainer loads the raw configuration, renders it through the
// source's transform (identity when the source declares none) and writes the
// rendered form into the temporary working area.
func (e *Entrypoint) buildConfigContainer(configPath, tempDir string) (*source.ConfigContainer, error) {
	raw := map[string]any{}
	if err := unmarshalFromPath(configPath, &raw); err != nil {
		return nil, source.ConfigError.Wrap(err, "failed to read config %s", configPath)
	}

	rendered := raw
	if transformer, ok := e.src.(source.ConfigTransformer); ok {
		var err error
		rendered, err = transformer.TransformConfig(raw)
		if err != nil {
			return nil, source.ConfigError.Wrap(err, "failed to transform config")
		}
	}

	renderedPath := filepath.Join(tempDir, "config.json")
	b, err := json.Marshal(rendered)
	if err != nil {
		return nil, source.ConfigError.Wrap(err, "failed to serialize rendered config")
	}
	if err := os.WriteFile(renderedPath, b, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write rendered config: %w", err)
	}

	return source.NewConfigContainer(raw, rendered, configPath, renderedPath), nil
}

func unmarshalFromPath(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
