package amazonads

import (
	"fmt"

	"github.com/apify/airbyte/utils"
)

const defaultPageSize = 100

// endpoints per Amazon Advertising region,
// https://advertising.amazon.com/API/docs/en-us/info/api-overview#api-endpoints
var apiEndpoints = map[string]string{
	"NA": "https://advertising-api.amazon.com",
	"EU": "https://advertising-api-eu.amazon.com",
	"FE": "https://advertising-api-fe.amazon.com",
}

var tokenEndpoints = map[string]string{
	"NA": "https://api.amazon.com/auth/o2/token",
	"EU": "https://api.amazon.co.uk/auth/o2/token",
	"FE": "https://api.amazon.co.jp/auth/o2/token",
}

// Config is the connector configuration. Endpoint and TokenEndpoint are
// normally derived from Region by TransformConfig; explicit values win,
// which also lets tests point the connector at a fake API.
type Config struct {
	ClientID      string `mapstructure:"client_id" json:"client_id"`
	ClientSecret  string `mapstructure:"client_secret" json:"client_secret"`
	RefreshToken  string `mapstructure:"refresh_token" json:"refresh_token"`
	Region        string `mapstructure:"region" json:"region"`
	Endpoint      string `mapstructure:"endpoint" json:"endpoint"`
	TokenEndpoint string `mapstructure:"token_endpoint" json:"token_endpoint"`
	PageSize      int    `mapstructure:"page_size" json:"page_size"`

	// ProfileIDs narrows the scoped streams to the listed profiles. Ids are
	// strings to keep their full precision in json. Empty means all vendor
	// profiles.
	ProfileIDs []string `mapstructure:"profile_ids" json:"profile_ids,omitempty"`
}

func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("client_id is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client_secret is required")
	}
	if c.RefreshToken == "" {
		return fmt.Errorf("refresh_token is required")
	}
	if c.Endpoint == "" {
		return fmt.Errorf("no endpoint for region %q", c.Region)
	}
	if c.TokenEndpoint == "" {
		return fmt.Errorf("no token endpoint for region %q", c.Region)
	}
	return nil
}

// parseConfig decodes a rendered configuration map.
func parseConfig(rendered map[string]any) (*Config, error) {
	cfg := &Config{}
	if err := utils.ParseObject(rendered, cfg); err != nil {
		return nil, err
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// renderConfig resolves region-dependent endpoints into an explicit form.
// The rendered map is what gets persisted to the scoped working area and
// consumed by the HTTP client.
func renderConfig(raw map[string]any) map[string]any {
	rendered := make(map[string]any, len(raw)+2)
	for k, v := range raw {
		rendered[k] = v
	}
	region, _ := rendered["region"].(string)
	region = utils.Nvl(region, "NA")
	rendered["region"] = region
	if _, ok := rendered["endpoint"]; !ok {
		if endpoint, ok := apiEndpoints[region]; ok {
			rendered["endpoint"] = endpoint
		}
	}
	if _, ok := rendered["token_endpoint"]; !ok {
		if endpoint, ok := tokenEndpoints[region]; ok {
			rendered["token_endpoint"] = endpoint
		}
	}
	return rendered
}
