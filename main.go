package main

import (
	"context"
	"os"

	_ "github.com/apify/airbyte/connectors/amazonads"

	"github.com/apify/airbyte/appbase"
	"github.com/apify/airbyte/entrypoint"
	"github.com/apify/airbyte/logging"
)

func main() {
	settings, err := appbase.LoadSettings()
	if err != nil {
		logging.Fatalf("failed to load settings: %s", err)
	}
	logging.Init(settings.LogLevel, settings.LogFormat, logging.Config{FilePath: settings.LogFile})

	src, err := entrypoint.CreateSource(settings.Impl(), settings)
	if err != nil {
		logging.Fatalf("failed to create source: %s", err)
	}

	e := entrypoint.NewEntrypoint(src, os.Stdout)
	os.Exit(e.Run(context.Background(), os.Args[1:]))
}
