// Package config loads runtime settings for the report pipeline.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds everything an operator can tune without a rebuild.
// Classifier rules and eligibility sets are deliberately not here;
// they are business contracts, compiled in.
type Settings struct {
	Server struct {
		Host string `mapstructure:"host"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Pricing struct {
		ProfilePath string `mapstructure:"profile_path"`
		Profile     string `mapstructure:"profile"`
	} `mapstructure:"pricing"`
	Mode string `mapstructure:"mode"`
}

// Load reads settings from an optional config file, layered over
// defaults and SERVER_HOST/SERVER_PORT environment variables. An empty
// path yields pure defaults.
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("pricing.profile", "default")
	v.SetDefault("mode", "multi")

	_ = v.BindEnv("server.host", "SERVER_HOST")
	_ = v.BindEnv("server.port", "SERVER_PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if settings.Mode != "simple" && settings.Mode != "multi" {
		return nil, fmt.Errorf("invalid mode %q: expected \"simple\" or \"multi\"", settings.Mode)
	}

	return &settings, nil
}
