package appbase

import (
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// EnvPrefix for all process-level settings, e.g. AIRBYTE_IMPL_MODULE.
const EnvPrefix = "AIRBYTE"

// Settings are process-level knobs of a connector binary. Connector data
// configuration never comes from the environment: it arrives through the
// --config file. These settings only select the implementation and tune
// logging and networking.
type Settings struct {
	// ImplModule and ImplPath select the registered source implementation.
	// They are kept as two variables for compatibility with existing
	// orchestrator deployments; ImplPath alone is enough for Go connectors.
	ImplModule string `mapstructure:"IMPL_MODULE"`
	ImplPath   string `mapstructure:"IMPL_PATH"`

	LogLevel  string `mapstructure:"LOG_LEVEL" default:"info"`
	LogFormat string `mapstructure:"LOG_FORMAT" default:"text"`
	LogFile   string `mapstructure:"LOG_FILE"`

	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"30"`
}

// Impl returns the registry identifier of the selected implementation or ""
// when none was requested.
func (s *Settings) Impl() string {
	if s.ImplPath != "" {
		return s.ImplPath
	}
	return s.ImplModule
}

// LoadSettings reads Settings from AIRBYTE_* environment variables.
func LoadSettings() (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	initViperVariables(v, &Settings{})
	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshalling settings: %w", err)
	}
	return settings, nil
}

func initViperVariables(v *viper.Viper, settings *Settings) {
	tp := reflect.ValueOf(settings).Elem().Type()
	for i := 0; i < tp.NumField(); i++ {
		field := tp.Field(i)
		variable := field.Tag.Get("mapstructure")
		if variable == "" {
			continue
		}
		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(variable, defaultValue)
		}
		_ = v.BindEnv(variable)
	}
}
