package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/cb/internal/clipboard"
)

func TestSessionKindCheck(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		vars    map[string]string
		contain string
	}{
		{"local", "linux", map[string]string{}, "Local session (linux)"},
		{"remote", "linux", map[string]string{"SSH_CLIENT": "10.0.0.1 5000 22"}, "Remote session (SSH_CLIENT set)"},
		{"wsl", "linux", map[string]string{"WSL_DISTRO_NAME": "Ubuntu", "SSH_CLIENT": "x"}, "WSL session"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &SessionKindCheck{Env: clipboard.StaticEnvironment(tt.goos, tt.vars)}
			result := check.Run()

			assert.Equal(t, StatusPass, result.Status)
			assert.Contains(t, result.Message, tt.contain)
			assert.Equal(t, CategorySession, check.Category())
		})
	}
}

func TestDisplayCheck(t *testing.T) {
	t.Run("no display warns", func(t *testing.T) {
		check := &DisplayCheck{Env: clipboard.StaticEnvironment("linux", nil)}
		result := check.Run()

		assert.Equal(t, StatusWarn, result.Status)
		assert.NotEmpty(t, result.Suggestion)
	})

	t.Run("both displays", func(t *testing.T) {
		check := &DisplayCheck{Env: clipboard.StaticEnvironment("linux", map[string]string{
			"DISPLAY":         ":0",
			"WAYLAND_DISPLAY": "wayland-0",
		})}
		result := check.Run()

		assert.Equal(t, StatusPass, result.Status)
		assert.Equal(t, "Display: Wayland, X11", result.Message)
	})

	t.Run("macOS needs no display", func(t *testing.T) {
		check := &DisplayCheck{Env: clipboard.StaticEnvironment("darwin", nil)}
		assert.Equal(t, StatusPass, check.Run().Status)
	})
}
