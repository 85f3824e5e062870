package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config is built once at the CLI boundary and passed by value everywhere
// else. The zero timeout means no timeout at all, matching the upstream API
// client behaviour.
type Config struct {
	BaseURL       string `yaml:"baseURL" validate:"required,url"`
	APIKey        string `yaml:"apiKey" validate:"omitempty"`
	TimeoutMS     int    `yaml:"timeoutMS" validate:"gte=0"`
	DefaultFilter string `yaml:"defaultFilter" validate:"omitempty"`
}

func Default() Config {
	return Config{
		BaseURL: "https://api-v3.mbta.com",
		// The original client only cares about the subway by default
		DefaultFilter: "0,1",
	}
}

// Load returns the default configuration overlaid with an optional yaml file
// and the MBTA_API_KEY environment variable.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		log.Debug().Str("path", path).Msg("Loading config file")

		configYaml, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}

		if err := yaml.Unmarshal(configYaml, &cfg); err != nil {
			return Config{}, err
		}
	}

	if apiKey := os.Getenv("MBTA_API_KEY"); apiKey != "" {
		cfg.APIKey = apiKey
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
