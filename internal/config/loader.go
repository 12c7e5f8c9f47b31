package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rileyhilliard/cb/internal/errors"
)

const (
	// ConfigDir is the directory under the user config root.
	ConfigDir = "cb"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. CB_CLIPBOARD_FALLBACK.
	EnvPrefix = "CB"
)

// DefaultPath returns $XDG_CONFIG_HOME/cb/config.yaml, or
// ~/.config/cb/config.yaml when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, ConfigDir, ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set XDG_CONFIG_HOME or pass --config")
	}
	return filepath.Join(home, ".config", ConfigDir, ConfigFileName), nil
}

// Find locates the config file:
// 1. Explicit path (from --config flag), which must exist
// 2. The default path, if it exists
//
// Returns an empty string if no config file is present.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct, or run 'cb init --config "+explicit+"'")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

// Load reads config from the specified path. Environment overrides apply.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'cb init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// LoadOrDefault loads the config found by Find, or the defaults (with
// environment overrides) when there is none.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		cfg, err := parseConfig(newViper(), "environment")
		return cfg, "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

// newViper returns a viper instance with defaults and CB_* overrides.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// parseConfig converts viper config to our Config struct. Defaults come from
// setDefaults, so decoding starts from an empty struct and list values replace
// rather than merge.
func parseConfig(v *viper.Viper, source string) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("clipboard.enabled", def.Clipboard.Enabled)
	v.SetDefault("clipboard.fallback", def.Clipboard.Fallback)
	v.SetDefault("clipboard.osc52", def.Clipboard.OSC52)
	v.SetDefault("clipboard.remote_env", def.Clipboard.RemoteEnv)
	v.SetDefault("output.color", def.Output.Color)
}
