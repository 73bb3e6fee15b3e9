// Package config loads server configuration from an optional pomolit.env
// file in the config directory and POMOLIT_* environment variables.
// Environment variables win over the file.
package config

import (
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/utils"
)

type Config struct {
	Addr                  string        `mapstructure:"POMOLIT_ADDR"`
	Environment           string        `mapstructure:"POMOLIT_ENVIRONMENT"`
	Timezone              string        `mapstructure:"POMOLIT_TIMEZONE"`
	AllowedOrigins        string        `mapstructure:"POMOLIT_ALLOWED_ORIGINS"`
	EvaluateInterval      time.Duration `mapstructure:"POMOLIT_EVALUATE_INTERVAL"`
	GuardDoubleCompletion bool          `mapstructure:"POMOLIT_GUARD_DOUBLE_COMPLETION"`
	DBConnection          string        `mapstructure:"POMOLIT_DB_CONNECTION"`
}

// Load reads dir/pomolit.env if present and overlays the environment. A
// missing file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetDefault(constants.ConfigAddr, constants.DefaultAddr)
	v.SetDefault(constants.ConfigEnvironment, constants.DefaultEnvironment)
	v.SetDefault(constants.ConfigTimezone, constants.DefaultTimezone)
	v.SetDefault(constants.ConfigAllowedOrigins, "")
	v.SetDefault(constants.ConfigEvaluateInterval, "0s")
	v.SetDefault(constants.ConfigGuardDoubleCompletion, false)
	v.SetDefault(constants.ConfigDBConnection, "")

	if dir != "" {
		v.AddConfigPath(dir)
		v.SetConfigName(constants.ConfigFileName)
		v.SetConfigType("env")
	}
	v.AutomaticEnv()

	if dir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !goerrors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.EvaluateInterval < 0 {
		return fmt.Errorf("%s must not be negative", constants.ConfigEvaluateInterval)
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("%s: unknown timezone %q", constants.ConfigTimezone, c.Timezone)
	}
	return nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}

func (c Config) IsProduction() bool {
	return c.Environment == constants.EnvironmentProduction
}

// Origins splits the comma separated CORS origin list.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
