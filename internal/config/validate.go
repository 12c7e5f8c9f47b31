package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/cb/internal/errors"
)

var validColorModes = []string{"auto", "always", "never"}

// Validate checks a loaded config for values cb cannot act on.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Config version %d is newer than this cb understands (%d)", cfg.Version, CurrentConfigVersion),
			"Upgrade cb, or regenerate the file with 'cb init --force'")
	}

	valid := false
	for _, m := range validColorModes {
		if cfg.Output.Color == m {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown output.color %q", cfg.Output.Color),
			"Use one of: "+strings.Join(validColorModes, ", "))
	}

	for _, name := range cfg.Clipboard.RemoteEnv {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, "= \t") {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Invalid variable name %q in clipboard.remote_env", name),
				"List bare variable names, e.g. SSH_CLIENT")
		}
	}

	return nil
}
