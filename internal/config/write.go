package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/cb/internal/errors"
)

const fileHeader = `# cb configuration
#
# clipboard.enabled     copy to the clipboard (false: only print the character)
# clipboard.fallback    try the desktop session clipboard when the first attempt is inconclusive
# clipboard.osc52       over SSH, ask the local terminal to set its clipboard
# clipboard.remote_env  variables whose presence means "remote session"
# output.color          auto, always or never
#
# Every key can be overridden from the environment, e.g. CB_CLIPBOARD_FALLBACK=false.
`

// Marshal renders cfg as YAML with the explanatory header.
func Marshal(cfg *Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Couldn't encode config", "")
	}
	return append([]byte(fileHeader+"\n"), body...), nil
}

// Write saves cfg to path, creating parent directories.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory",
			"Check permissions on "+filepath.Dir(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file",
			"Check permissions on "+path)
	}
	return nil
}
