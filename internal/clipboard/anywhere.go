package clipboard

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/text/encoding/unicode"

	"github.com/rileyhilliard/cb/internal/errors"
	cbexec "github.com/rileyhilliard/cb/internal/exec"
)

// Helper programs reachable from WSL through Windows interop.
const (
	wslClipExe       = "clip.exe"
	wslPowerShellExe = "powershell.exe"
)

// wslGetScript forces UTF-8 output so non-ASCII characters survive the trip.
const wslGetScript = "[Console]::OutputEncoding = [System.Text.Encoding]::UTF8; Get-Clipboard -Raw"

// TTYOpener opens the controlling terminal for OSC 52 output.
type TTYOpener func() (io.WriteCloser, error)

// OpenTTY opens /dev/tty for writing.
func OpenTTY() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// Anywhere is the primary backend. It picks a transport per call from the
// session kind:
//
//	wsl     clip.exe to set, powershell.exe Get-Clipboard to read
//	remote  OSC 52 escape to the controlling terminal, read unsupported
//	local   the native clipboard (atotto/clipboard)
type Anywhere struct {
	Env    *Environment
	Runner cbexec.Runner
	Native Native
	TTY    TTYOpener

	// OSC52 enables the terminal escape path for remote sessions.
	// When false, remote sessions use the native clipboard.
	OSC52 bool
}

// NewAnywhere returns the primary backend wired to the real system.
func NewAnywhere(env *Environment, osc52Enabled bool) *Anywhere {
	return &Anywhere{
		Env:    env,
		Runner: cbexec.NewLocalRunner(),
		Native: SystemClipboard(),
		TTY:    OpenTTY,
		OSC52:  osc52Enabled,
	}
}

// Name identifies the transport that would be used right now.
func (a *Anywhere) Name() string {
	switch a.transport() {
	case SessionWSL:
		return "anywhere/wsl"
	case SessionRemote:
		return "anywhere/osc52"
	default:
		return "anywhere/native"
	}
}

func (a *Anywhere) transport() SessionKind {
	kind := a.Env.Kind()
	if kind == SessionRemote && !a.OSC52 {
		return SessionLocal
	}
	return kind
}

// Set writes content through the selected transport.
func (a *Anywhere) Set(content string) error {
	switch a.transport() {
	case SessionWSL:
		return a.setWSL(content)
	case SessionRemote:
		return a.setOSC52(content)
	default:
		if err := a.Native.WriteAll(content); err != nil {
			return errors.WrapWithCode(err, errors.ErrClipboard,
				"Native clipboard write failed",
				"Install xclip, xsel or wl-clipboard, or run 'cb doctor'")
		}
		return nil
	}
}

// Get reads the clipboard back through the selected transport.
func (a *Anywhere) Get() (string, error) {
	switch a.transport() {
	case SessionWSL:
		return a.getWSL()
	case SessionRemote:
		return "", ErrReadUnsupported
	default:
		s, err := a.Native.ReadAll()
		if err != nil {
			return "", errors.WrapWithCode(err, errors.ErrClipboard,
				"Native clipboard read failed",
				"")
		}
		return s, nil
	}
}

// setWSL pipes UTF-16LE with a byte order mark into clip.exe; plain UTF-8
// would be decoded with the console code page.
func (a *Anywhere) setWSL(content string) error {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	payload, err := enc.Bytes([]byte(content))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrClipboard, "Couldn't encode text for clip.exe", "")
	}
	_, err = cbexec.RunChecked(a.Runner, wslClipExe, nil, bytes.NewReader(payload))
	return err
}

func (a *Anywhere) getWSL() (string, error) {
	out, err := cbexec.RunChecked(a.Runner, wslPowerShellExe,
		[]string{"-NoProfile", "-NonInteractive", "-Command", wslGetScript}, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\r\n"), nil
}

func (a *Anywhere) setOSC52(content string) error {
	tty, err := a.TTY()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrClipboard,
			"Couldn't open the terminal for OSC 52",
			"Run cb from an interactive terminal")
	}
	defer func() { _ = tty.Close() }()

	seq := osc52.New(content)
	switch a.Env.Multiplexer() {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(tty); err != nil {
		return errors.WrapWithCode(err, errors.ErrClipboard, "Couldn't write OSC 52 sequence", "")
	}
	return nil
}
