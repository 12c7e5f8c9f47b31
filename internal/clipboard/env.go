package clipboard

import (
	"os"
	"runtime"
	"strings"
)

// DefaultRemoteEnv lists the variables whose presence marks a remote session.
var DefaultRemoteEnv = []string{"SSH_CLIENT"}

// SessionKind describes where cb is running, as far as the clipboard cares.
type SessionKind string

const (
	SessionLocal  SessionKind = "local"
	SessionRemote SessionKind = "remote"
	SessionWSL    SessionKind = "wsl"
)

// Environment answers the questions the backends ask about the process
// environment. Fields are swappable so tests never read the real one.
type Environment struct {
	// GOOS is the target OS, normally runtime.GOOS.
	GOOS string

	// RemoteEnv names the remote-session indicator variables.
	RemoteEnv []string

	LookupEnv func(key string) (string, bool)
	ReadFile  func(name string) ([]byte, error)
}

// NewEnvironment returns an Environment backed by the real process.
// An empty remoteEnv falls back to DefaultRemoteEnv.
func NewEnvironment(remoteEnv []string) *Environment {
	if len(remoteEnv) == 0 {
		remoteEnv = DefaultRemoteEnv
	}
	return &Environment{
		GOOS:      runtime.GOOS,
		RemoteEnv: remoteEnv,
		LookupEnv: os.LookupEnv,
		ReadFile:  os.ReadFile,
	}
}

// StaticEnvironment builds an Environment from a fixed variable map.
func StaticEnvironment(goos string, vars map[string]string) *Environment {
	return &Environment{
		GOOS:      goos,
		RemoteEnv: DefaultRemoteEnv,
		LookupEnv: func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		},
		ReadFile: func(string) ([]byte, error) {
			return nil, os.ErrNotExist
		},
	}
}

// IsRemote reports whether any remote indicator variable is set.
// Presence counts, even with an empty value.
func (e *Environment) IsRemote() bool {
	for _, key := range e.RemoteEnv {
		if _, ok := e.LookupEnv(key); ok {
			return true
		}
	}
	return false
}

// IsWSL reports whether we are inside Windows Subsystem for Linux.
func (e *Environment) IsWSL() bool {
	if e.GOOS != "linux" {
		return false
	}
	for _, key := range []string{"WSL_DISTRO_NAME", "WSL_INTEROP"} {
		if v, ok := e.LookupEnv(key); ok && v != "" {
			return true
		}
	}
	data, err := e.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// Kind classifies the session. WSL wins over remote: an SSH login into a WSL
// distro still has clip.exe.
func (e *Environment) Kind() SessionKind {
	switch {
	case e.IsWSL():
		return SessionWSL
	case e.IsRemote():
		return SessionRemote
	default:
		return SessionLocal
	}
}

// HasX11 reports whether an X display is configured.
func (e *Environment) HasX11() bool {
	v, ok := e.LookupEnv("DISPLAY")
	return ok && v != ""
}

// HasWayland reports whether a Wayland display is configured.
func (e *Environment) HasWayland() bool {
	v, ok := e.LookupEnv("WAYLAND_DISPLAY")
	return ok && v != ""
}

// Multiplexer returns "tmux", "screen" or "" for the terminal multiplexer in use.
func (e *Environment) Multiplexer() string {
	if v, ok := e.LookupEnv("TMUX"); ok && v != "" {
		return "tmux"
	}
	if v, ok := e.LookupEnv("TERM"); ok && strings.HasPrefix(v, "screen") {
		return "screen"
	}
	return ""
}
