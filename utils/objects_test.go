package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`
}

func TestParseObject(t *testing.T) {
	expected := testConfig{Host: "localhost", Port: 9092}

	cfg := testConfig{}
	require.NoError(t, ParseObject(map[string]any{"host": "localhost", "port": 9092}, &cfg))
	require.Equal(t, expected, cfg)

	cfg = testConfig{}
	require.NoError(t, ParseObject(`{"host":"localhost","port":9092}`, &cfg))
	require.Equal(t, expected, cfg)

	cfg = testConfig{}
	require.NoError(t, ParseObject([]byte(`{"host":"localhost","port":9092}`), &cfg))
	require.Equal(t, expected, cfg)

	cfg = testConfig{}
	require.NoError(t, ParseObject(&expected, &cfg))
	require.Equal(t, expected, cfg)

	require.Error(t, ParseObject("", &cfg))
	require.Error(t, ParseObject(42, &cfg))
}

func TestNvl(t *testing.T) {
	require.Equal(t, "a", Nvl("", "a", "b"))
	require.Equal(t, "", Nvl("", ""))
	require.Equal(t, 5, Nvl(0, 5))
}

func TestMapValue(t *testing.T) {
	rec := map[string]any{
		"accountInfo": map[string]any{"type": "vendor"},
		"countryCode": "US",
	}
	require.Equal(t, "vendor", MapValue(rec, "accountInfo", "type"))
	require.Equal(t, "US", MapValue(rec, "countryCode"))
	require.Nil(t, MapValue(rec, "accountInfo", "missing"))
	require.Nil(t, MapValue(rec, "countryCode", "type"))
	require.Nil(t, MapValue(nil, "anything"))
}
