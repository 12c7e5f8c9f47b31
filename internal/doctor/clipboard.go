package doctor

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/rileyhilliard/cb/internal/clipboard"
	cbexec "github.com/rileyhilliard/cb/internal/exec"
	"github.com/rileyhilliard/cb/internal/util"
)

// wslTools are needed by the primary backend inside WSL.
var wslTools = []string{"clip.exe", "powershell.exe"}

// HelperToolsCheck looks for the programs the backends shell out to.
type HelperToolsCheck struct {
	Env    *clipboard.Environment
	Runner cbexec.Runner
}

func (c *HelperToolsCheck) Name() string     { return "helper_tools" }
func (c *HelperToolsCheck) Category() string { return CategoryClipboard }

func (c *HelperToolsCheck) Run() CheckResult {
	if c.Env.GOOS == "darwin" || c.Env.GOOS == "windows" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No helper programs needed on " + c.Env.GOOS,
		}
	}

	if c.Env.IsWSL() {
		found, missing := c.lookup(wslTools)
		if len(missing) > 0 {
			return CheckResult{
				Name:       c.Name(),
				Status:     StatusFail,
				Message:    "Missing Windows interop helpers: " + util.JoinOrNone(missing),
				Suggestion: "Make sure WSL interop is enabled and /mnt/c/Windows/System32 is on PATH",
			}
		}
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Found " + util.JoinOrNone(found),
		}
	}

	found, _ := c.lookup(clipboard.SessionToolNames())
	if len(found) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "No clipboard helper found (" + util.JoinOrNone(clipboard.SessionToolNames()) + ")",
			Suggestion: "Install wl-clipboard (Wayland) or xclip (X11)",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Found " + util.JoinOrNone(found),
	}
}

func (c *HelperToolsCheck) lookup(names []string) (found, missing []string) {
	for _, name := range names {
		if _, err := c.Runner.LookPath(name); err == nil {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	return found, missing
}

// PrimaryReadCheck probes the primary backend with a read. It never writes.
type PrimaryReadCheck struct {
	Primary clipboard.Primary
	Remote  bool
}

func (c *PrimaryReadCheck) Name() string     { return "primary_read" }
func (c *PrimaryReadCheck) Category() string { return CategoryClipboard }

func (c *PrimaryReadCheck) Run() CheckResult {
	_, err := c.Primary.Get()
	switch {
	case err == nil:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s can read the clipboard", c.Primary.Name()),
		}
	case stderrors.Is(err, clipboard.ErrReadUnsupported) || c.Remote:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s cannot read back in a remote session (expected)", c.Primary.Name()),
		}
	default:
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s cannot read the clipboard; copies will use the session fallback", c.Primary.Name()),
			Suggestion: firstLine(err.Error()),
		}
	}
}

// SessionBackendCheck builds the fallback backend without writing to it.
type SessionBackendCheck struct {
	Factory  clipboard.SessionFactory
	Disabled bool
}

func (c *SessionBackendCheck) Name() string     { return "session_backend" }
func (c *SessionBackendCheck) Category() string { return CategoryClipboard }

func (c *SessionBackendCheck) Run() CheckResult {
	if c.Disabled {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Session fallback disabled in config",
		}
	}

	var name string
	err := clipboard.Isolate(func() error {
		w, err := c.Factory()
		if err != nil {
			return err
		}
		name = w.Name()
		return nil
	})
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Session fallback unavailable",
			Suggestion: firstLine(err.Error()),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Session fallback ready (" + name + ")",
	}
}

// firstLine strips the structured error layout down to its message.
func firstLine(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "✗ ")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
