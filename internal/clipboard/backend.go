package clipboard

import (
	stderrors "errors"

	"github.com/atotto/clipboard"
)

var (
	// ErrReadUnsupported is returned by Get when the backend can only write,
	// as with OSC 52 over a remote session.
	ErrReadUnsupported = stderrors.New("clipboard read is not supported in this session")

	// ErrNoSession is the cause when no desktop session clipboard can be built.
	ErrNoSession = stderrors.New("no desktop session clipboard available")
)

// Writer places text on a clipboard.
type Writer interface {
	Name() string
	Set(content string) error
}

// Primary is the first-tier backend. It must support a read-back probe.
type Primary interface {
	Writer
	Get() (string, error)
}

// SessionFactory builds the fallback backend. Construction is allowed to fail;
// the engine treats a construction error exactly like a failed write.
type SessionFactory func() (Writer, error)

// Native is the OS clipboard as seen by github.com/atotto/clipboard.
type Native interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

type atottoClipboard struct{}

func (atottoClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (atottoClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }

// SystemClipboard returns the atotto-backed native clipboard.
func SystemClipboard() Native {
	return atottoClipboard{}
}

// NativeUnsupported reports whether atotto found no usable clipboard at init.
func NativeUnsupported() bool {
	return clipboard.Unsupported
}
