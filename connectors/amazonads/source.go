// Package amazonads implements the Amazon Advertising API source connector:
// the profiles stream plus the sponsored-display resources scoped to vendor
// profiles.
package amazonads

import (
	"context"
	"time"

	"github.com/apify/airbyte/appbase"
	"github.com/apify/airbyte/entrypoint"
	"github.com/apify/airbyte/protocol"
	"github.com/apify/airbyte/source"
)

const SourceType = "amazon-ads"

func init() {
	entrypoint.RegisterSource(SourceType, func(settings *appbase.Settings) source.Source { return NewAmazonAdsSource(settings) })
}

type AmazonAdsSource struct {
	appbase.Service
	httpTimeout time.Duration
}

// NewAmazonAdsSource builds the source. settings may be nil; defaults apply.
func NewAmazonAdsSource(settings *appbase.Settings) *AmazonAdsSource {
	timeout := 30 * time.Second
	if settings != nil && settings.HTTPTimeoutSeconds > 0 {
		timeout = time.Duration(settings.HTTPTimeoutSeconds) * time.Second
	}
	return &AmazonAdsSource{
		Service:     appbase.NewServiceBase(SourceType),
		httpTimeout: timeout,
	}
}

func (a *AmazonAdsSource) Spec(_ protocol.LogTracker) (*protocol.ConnectorSpecification, error) {
	return &protocol.ConnectorSpecification{
		DocumentationURL: "https://docs.airbyte.io/integrations/sources/amazon-ads",
		SupportedDestinationSyncModes: []protocol.DestinationSyncMode{
			protocol.DestinationSyncModeOverwrite,
			protocol.DestinationSyncModeAppend,
		},
		ConnectionSpecification: protocol.ConnectionSpecification{
			Title:    "Amazon Ads",
			Type:     "object",
			Required: []protocol.PropertyName{"client_id", "client_secret", "refresh_token"},
			Properties: protocol.Properties{
				Properties: map[protocol.PropertyName]protocol.PropertySpec{
					"client_id": {
						Description:  "Client ID of your Amazon Ads developer application",
						PropertyType: protocol.PropertyType{Type: protocol.TypeString},
					},
					"client_secret": {
						Description:  "Client secret of your Amazon Ads developer application",
						PropertyType: protocol.PropertyType{Type: protocol.TypeString},
						IsSecret:     true,
					},
					"refresh_token": {
						Description:  "Login with Amazon refresh token",
						PropertyType: protocol.PropertyType{Type: protocol.TypeString},
						IsSecret:     true,
					},
					"region": {
						Description:  "Region of the Advertising API endpoint",
						PropertyType: protocol.PropertyType{Type: protocol.TypeString},
						Enum:         []string{"NA", "EU", "FE"},
						Default:      "NA",
					},
					"profile_ids": {
						Description:  "Optional list of profile ids (as strings) to extract; all vendor profiles when empty",
						PropertyType: protocol.PropertyType{Type: protocol.TypeArray},
						Items:        map[string]any{"type": "string"},
					},
					"page_size": {
						Description:  "Number of records per page for paginated resources",
						PropertyType: protocol.PropertyType{Type: protocol.TypeInteger},
						Default:      defaultPageSize,
					},
				},
			},
		},
		AuthSpecification: &protocol.AuthSpecification{
			AuthType: "oauth2.0",
			OAuth2: &protocol.OAuth2Specification{
				OAuthFlowInitParameters:   [][]string{{"client_id"}, {"client_secret"}},
				OAuthFlowOutputParameters: [][]string{{"refresh_token"}},
			},
		},
	}, nil
}

// TransformConfig resolves region shortcuts into explicit endpoint URLs; the
// rendered form is what the HTTP client consumes.
func (a *AmazonAdsSource) TransformConfig(raw map[string]any) (map[string]any, error) {
	return renderConfig(raw), nil
}

// Check probes the profiles endpoint. Connectivity and credential problems
// come back as a FAILED status, not an error.
func (a *AmazonAdsSource) Check(ctx context.Context, config *source.ConfigContainer, _ protocol.LogTracker) (*protocol.ConnectionStatus, error) {
	cfg, err := parseConfig(config.Rendered())
	if err != nil {
		return nil, source.ConfigError.Wrap(err, "invalid configuration")
	}
	client := NewClient(cfg, a.httpTimeout)
	if _, err := client.GetRecords(ctx, "v2/profiles", "", nil); err != nil {
		a.Errorf("connection check failed: %s", err)
		return &protocol.ConnectionStatus{
			Status:  protocol.CheckStatusFailed,
			Message: err.Error(),
		}, nil
	}
	return &protocol.ConnectionStatus{Status: protocol.CheckStatusSucceeded}, nil
}

func (a *AmazonAdsSource) Discover(_ context.Context, config *source.ConfigContainer, _ protocol.LogTracker) (*protocol.Catalog, error) {
	streams, err := a.Streams(config)
	if err != nil {
		return nil, err
	}
	catalog := &protocol.Catalog{Streams: make([]protocol.Stream, 0, len(streams))}
	for _, s := range streams {
		descriptor := protocol.Stream{
			Name:               s.Name(),
			JSONSchema:         s.JSONSchema(),
			SupportedSyncModes: []protocol.SyncMode{protocol.SyncModeFullRefresh},
		}
		if pk, ok := s.(source.PrimaryKeyed); ok {
			descriptor.SourceDefinedPrimaryKey = pk.PrimaryKey()
		}
		catalog.Streams = append(catalog.Streams, descriptor)
	}
	return catalog, nil
}

func (a *AmazonAdsSource) Streams(config *source.ConfigContainer) ([]source.Stream, error) {
	cfg, err := parseConfig(config.Rendered())
	if err != nil {
		return nil, source.ConfigError.Wrap(err, "invalid configuration")
	}
	streams := buildStreams(cfg, NewClient(cfg, a.httpTimeout))
	if err := source.ValidateStreams(streams); err != nil {
		return nil, err
	}
	return streams, nil
}

func (a *AmazonAdsSource) Read(ctx context.Context, config *source.ConfigContainer, catalog *protocol.ConfiguredCatalog, _ string, tracker protocol.MessageTracker) error {
	return source.FullRefreshRead(ctx, a, config, catalog, tracker)
}
