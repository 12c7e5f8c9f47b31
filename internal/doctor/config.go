package doctor

import (
	"github.com/rileyhilliard/cb/internal/config"
)

// ConfigFileCheck verifies the config file, if any, loads cleanly.
type ConfigFileCheck struct {
	Explicit string
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run() CheckResult {
	_, path, err := config.LoadOrDefault(c.Explicit)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Config file has problems",
			Suggestion: err.Error(),
		}
	}

	if path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No config file, using defaults",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config loaded from " + path,
	}
}
