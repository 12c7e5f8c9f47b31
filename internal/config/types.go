package config

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Config represents the cb configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Clipboard ClipboardConfig `yaml:"clipboard" mapstructure:"clipboard"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// ClipboardConfig controls the delivery engine.
type ClipboardConfig struct {
	// Enabled toggles clipboard delivery. When false cb only prints the character.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Fallback allows the desktop-session backend when the primary result is inconclusive.
	Fallback bool `yaml:"fallback" mapstructure:"fallback"`

	// OSC52 lets remote sessions set the local terminal's clipboard with an escape sequence.
	OSC52 bool `yaml:"osc52" mapstructure:"osc52"`

	// RemoteEnv lists environment variables whose presence marks a remote session.
	RemoteEnv []string `yaml:"remote_env" mapstructure:"remote_env"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	// Color is auto, always or never.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Clipboard: ClipboardConfig{
			Enabled:   true,
			Fallback:  true,
			OSC52:     true,
			RemoteEnv: []string{"SSH_CLIENT"},
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}
