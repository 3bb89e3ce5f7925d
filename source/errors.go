package source

import "github.com/joomcode/errorx"

// Errors classifies failures crossing the dispatcher boundary. Connectivity
// problems during check are never errors of any of these types: they are
// reported as a FAILED connection status message.
var (
	Errors = errorx.NewNamespace("source")

	// UsageError covers malformed command lines: missing subcommand or flags.
	UsageError = Errors.NewType("usage")
	// ConfigError covers unreadable or malformed configuration and catalog
	// files, and unknown connector implementations.
	ConfigError = Errors.NewType("config")
	// ExtractionError covers failures while producing records mid-read.
	ExtractionError = Errors.NewType("extraction")
)
