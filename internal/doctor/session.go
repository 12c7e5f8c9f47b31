package doctor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/cb/internal/clipboard"
)

// SessionKindCheck reports how cb sees the current session.
type SessionKindCheck struct {
	Env *clipboard.Environment
}

func (c *SessionKindCheck) Name() string     { return "session_kind" }
func (c *SessionKindCheck) Category() string { return CategorySession }

func (c *SessionKindCheck) Run() CheckResult {
	switch c.Env.Kind() {
	case clipboard.SessionWSL:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "WSL session (Windows clipboard via clip.exe)",
		}
	case clipboard.SessionRemote:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("Remote session (%s set)", strings.Join(c.presentRemoteVars(), ", ")),
		}
	default:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("Local session (%s)", c.Env.GOOS),
		}
	}
}

func (c *SessionKindCheck) presentRemoteVars() []string {
	var present []string
	for _, key := range c.Env.RemoteEnv {
		if _, ok := c.Env.LookupEnv(key); ok {
			present = append(present, key)
		}
	}
	return present
}

// DisplayCheck verifies a desktop session is reachable for the fallback tier.
type DisplayCheck struct {
	Env *clipboard.Environment
}

func (c *DisplayCheck) Name() string     { return "display" }
func (c *DisplayCheck) Category() string { return CategorySession }

func (c *DisplayCheck) Run() CheckResult {
	switch c.Env.GOOS {
	case "darwin", "windows":
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "System clipboard available",
		}
	}

	var displays []string
	if c.Env.HasWayland() {
		displays = append(displays, "Wayland")
	}
	if c.Env.HasX11() {
		displays = append(displays, "X11")
	}

	if len(displays) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No desktop display (DISPLAY and WAYLAND_DISPLAY unset)",
			Suggestion: "The session fallback is unavailable; cb still prints the character",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Display: " + strings.Join(displays, ", "),
	}
}
