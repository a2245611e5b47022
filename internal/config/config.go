// Package config provides configuration management for udt using Viper.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/udtoolkit/udt/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "udt"

// Config is the top-level configuration structure.
type Config struct {
	Version int         `mapstructure:"version" yaml:"version"`
	Dir     string      `mapstructure:"dir" yaml:"dir"`
	Guard   GuardConfig `mapstructure:"guard" yaml:"guard"`
}

// GuardConfig configures the path guard.
type GuardConfig struct {
	// RulesFile points at a YAML or TOML rules file. Empty means the
	// built-in default table.
	RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
}

// Init initializes Viper with defaults and search paths. Call once at
// startup before reading config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search order: working directory, then XDG config home.
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("UDT")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("dir", "")
	viper.SetDefault("guard.rules_file", "")
}

// Load reads the configuration. With a non-empty path it reads that file
// and a missing file is an error; with an empty path it searches the
// default locations and falls back to defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
