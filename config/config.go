package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the demo program. Precedence: environment
// variables over the YAML file over built-in defaults.
type Config struct {
	AppName        string  `envconfig:"APP_NAME" yaml:"app_name"`
	AppEnv         string  `envconfig:"APP_ENV" yaml:"app_env"`
	APIKey         string  `envconfig:"FORECAST_API_KEY" yaml:"api_key"`
	Latitude       float64 `envconfig:"FORECAST_LATITUDE" yaml:"latitude"`
	Longitude      float64 `envconfig:"FORECAST_LONGITUDE" yaml:"longitude"`
	Lang           string  `envconfig:"FORECAST_LANG" yaml:"lang"`
	Units          string  `envconfig:"FORECAST_UNITS" yaml:"units"`
	RequestTimeout int     `envconfig:"REQUEST_TIMEOUT" yaml:"request_timeout"`
	SentryDSN      string  `envconfig:"SENTRY_DSN" yaml:"sentry_dsn"`
}

// Load reads the YAML file at path (a missing file is fine) and then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cnf := Config{
		AppName:        "forecast-demo",
		AppEnv:         "development",
		Latitude:       59.9139, // Oslo
		Longitude:      10.7522,
		RequestTimeout: 30,
	}

	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML config")
		}
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, errors.Wrap(err, "failed to process environment variables")
	}

	return &cnf, nil
}
