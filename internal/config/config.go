// Package config loads staggrid CLI settings from defaults, an optional YAML
// file, STAGGRID_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STAGGRID_LOG_LEVEL
// or STAGGRID_PLOT_FORMAT.
const EnvPrefix = "STAGGRID"

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	// LogFormat is console or json.
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`

	Output struct {
		// Format of describe/generate output: text, json or yaml.
		Format string `mapstructure:"format" validate:"oneof=text json yaml"`
		// Color enables ANSI colors in text output.
		Color bool `mapstructure:"color"`
	} `mapstructure:"output"`

	Plot struct {
		WidthCM  float64 `mapstructure:"width_cm" validate:"gt=0"`
		HeightCM float64 `mapstructure:"height_cm" validate:"gt=0"`
		Format   string  `mapstructure:"format" validate:"oneof=png svg pdf jpg"`
	} `mapstructure:"plot"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-format": "log_format",
	"format":     "output.format",
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("plot.width_cm", 16.0)
	v.SetDefault("plot.height_cm", 5.0)
	v.SetDefault("plot.format", "png")
}

// Load resolves the configuration. path may be empty; flags may be nil.
// Only flags the user actually set override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
		if f := flags.Lookup("no-color"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("output.color", false)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
