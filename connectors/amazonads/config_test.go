package amazonads

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderConfigRegionDefaults(t *testing.T) {
	rendered := renderConfig(map[string]any{
		"client_id":     "id",
		"client_secret": "secret",
		"refresh_token": "token",
	})
	require.Equal(t, "NA", rendered["region"])
	require.Equal(t, "https://advertising-api.amazon.com", rendered["endpoint"])
	require.Equal(t, "https://api.amazon.com/auth/o2/token", rendered["token_endpoint"])

	rendered = renderConfig(map[string]any{"region": "EU"})
	require.Equal(t, "https://advertising-api-eu.amazon.com", rendered["endpoint"])
	require.Equal(t, "https://api.amazon.co.uk/auth/o2/token", rendered["token_endpoint"])
}

func TestRenderConfigExplicitEndpointsWin(t *testing.T) {
	rendered := renderConfig(map[string]any{
		"region":         "EU",
		"endpoint":       "http://localhost:1234",
		"token_endpoint": "http://localhost:1234/auth/o2/token",
	})
	require.Equal(t, "http://localhost:1234", rendered["endpoint"])
	require.Equal(t, "http://localhost:1234/auth/o2/token", rendered["token_endpoint"])
}

func TestRenderConfigDoesNotMutateInput(t *testing.T) {
	raw := map[string]any{"client_id": "id"}
	_ = renderConfig(raw)
	require.Equal(t, map[string]any{"client_id": "id"}, raw)
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(renderConfig(map[string]any{
		"client_id":     "id",
		"client_secret": "secret",
		"refresh_token": "token",
	}))
	require.NoError(t, err)
	require.Equal(t, defaultPageSize, cfg.PageSize)
	require.Equal(t, "https://advertising-api.amazon.com", cfg.Endpoint)

	cfg, err = parseConfig(renderConfig(map[string]any{
		"client_id":     "id",
		"client_secret": "secret",
		"refresh_token": "token",
		"page_size":     25,
	}))
	require.NoError(t, err)
	require.Equal(t, 25, cfg.PageSize)
}

func TestParseConfigRequiredFields(t *testing.T) {
	for _, missing := range []string{"client_id", "client_secret", "refresh_token"} {
		raw := map[string]any{
			"client_id":     "id",
			"client_secret": "secret",
			"refresh_token": "token",
		}
		delete(raw, missing)
		_, err := parseConfig(renderConfig(raw))
		require.Error(t, err, "missing %s must be rejected", missing)
		require.Contains(t, err.Error(), missing)
	}
}
