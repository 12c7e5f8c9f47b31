package clipboard

import (
	"fmt"
	"strings"
	"sync"

	gclip "golang.design/x/clipboard"

	"github.com/rileyhilliard/cb/internal/errors"
	cbexec "github.com/rileyhilliard/cb/internal/exec"
)

// sessionTool is a helper program that owns the desktop selection.
// These fork and keep serving the selection after cb exits.
type sessionTool struct {
	name    string
	args    []string
	wayland bool
}

// sessionTools in preference order.
var sessionTools = []sessionTool{
	{name: "wl-copy", args: []string{"--type", "text/plain;charset=utf-8"}, wayland: true},
	{name: "xclip", args: []string{"-selection", "clipboard", "-in"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
}

// SessionToolNames lists the helper programs the session backend looks for.
func SessionToolNames() []string {
	names := make([]string, len(sessionTools))
	for i, t := range sessionTools {
		names[i] = t.name
	}
	return names
}

type toolWriter struct {
	tool   sessionTool
	runner cbexec.Runner
}

func (w *toolWriter) Name() string { return "session/" + w.tool.name }

func (w *toolWriter) Set(content string) error {
	_, err := cbexec.RunChecked(w.runner, w.tool.name, w.tool.args, strings.NewReader(content))
	return err
}

// nativeSessionWriter uses golang.design/x/clipboard, where the OS keeps the
// clipboard contents after the process exits (macOS, Windows).
type nativeSessionWriter struct{}

func (nativeSessionWriter) Name() string { return "session/native" }

func (nativeSessionWriter) Set(content string) error {
	if changed := gclip.Write(gclip.FmtText, []byte(content)); changed == nil {
		return errors.New(errors.ErrClipboard, "Session clipboard rejected the write", "")
	}
	return nil
}

var (
	gclipOnce sync.Once
	gclipErr  error
)

func initNativeSession() error {
	gclipOnce.Do(func() {
		gclipErr = gclip.Init()
	})
	return gclipErr
}

// NewSessionFactory returns the fallback backend constructor for env.
//
// On Linux and the BSDs it needs a display and one of wl-copy, xclip or xsel.
// Elsewhere it initialises golang.design/x/clipboard.
func NewSessionFactory(env *Environment, runner cbexec.Runner) SessionFactory {
	return func() (Writer, error) {
		switch env.GOOS {
		case "darwin", "windows":
			if err := initNativeSession(); err != nil {
				return nil, errors.WrapWithCode(fmt.Errorf("%w: %v", ErrNoSession, err), errors.ErrClipboard,
					"Couldn't initialise the system clipboard", "")
			}
			return nativeSessionWriter{}, nil
		}
		return newToolWriter(env, runner)
	}
}

func newToolWriter(env *Environment, runner cbexec.Runner) (Writer, error) {
	x11, wayland := env.HasX11(), env.HasWayland()
	if !x11 && !wayland {
		return nil, errors.WrapWithCode(ErrNoSession, errors.ErrClipboard,
			"No desktop session found",
			"Neither DISPLAY nor WAYLAND_DISPLAY is set")
	}

	for _, tool := range sessionTools {
		if tool.wayland && !wayland {
			continue
		}
		if !tool.wayland && !x11 {
			continue
		}
		if _, err := runner.LookPath(tool.name); err == nil {
			return &toolWriter{tool: tool, runner: runner}, nil
		}
	}

	return nil, errors.WrapWithCode(ErrNoSession, errors.ErrClipboard,
		"No clipboard helper installed",
		"Install wl-clipboard (Wayland) or xclip/xsel (X11)")
}
