// Package clipboard places text on the system clipboard.
//
// Delivery is two-tier. The primary "anywhere" backend is tried first and
// immediately read back. Its result is classified with three signals:
//
//	unresponsive      set and get both failed
//	localGetMismatch  no remote indicator, and get failed
//	emptyAfterSet     get succeeded but returned nothing
//
// If any signal is raised the desktop-session backend is tried once. Its
// write is trusted without a read-back, so success there is reported as
// DeliveredUnconfirmed. If it fails too, a warning is printed and the
// outcome is Failed. Deliver never returns an error.
package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/cb/internal/errors"
	"github.com/rileyhilliard/cb/internal/logger"
	"github.com/rileyhilliard/cb/internal/ui"
)

// WarningMessage is printed when no backend could place the content.
const WarningMessage = "clipboard could not be populated"

// Outcome is the result of one delivery.
type Outcome int

const (
	// Delivered means the primary write was confirmed by a read-back
	// (or a read-back is not expected, as in a remote session).
	Delivered Outcome = iota
	// DeliveredUnconfirmed means the fallback write reported success.
	DeliveredUnconfirmed
	// Failed means no backend placed the content.
	Failed
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case DeliveredUnconfirmed:
		return "delivered (unconfirmed)"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Copied reports whether the content is believed to be on the clipboard.
func (o Outcome) Copied() bool {
	return o == Delivered || o == DeliveredUnconfirmed
}

// Signals are the independent predicates computed from the primary attempt.
type Signals struct {
	Unresponsive     bool
	LocalGetMismatch bool
	EmptyAfterSet    bool
}

// Ambiguous is true when any signal is raised.
func (s Signals) Ambiguous() bool {
	return s.Unresponsive || s.LocalGetMismatch || s.EmptyAfterSet
}

// Classify derives the signals from already captured results. All three are
// computed unconditionally.
func Classify(setErr error, got string, getErr error, remote bool) Signals {
	return Signals{
		Unresponsive:     setErr != nil && getErr != nil,
		LocalGetMismatch: !remote && getErr != nil,
		EmptyAfterSet:    getErr == nil && got == "",
	}
}

// Report is the full record of one delivery.
type Report struct {
	Outcome Outcome
	Signals Signals
	Remote  bool

	Primary  string
	SetErr   error
	GetErr   error
	ReadBack string

	FallbackTried bool
	Fallback      string
	FallbackErr   error
}

// Engine runs the delivery procedure.
type Engine struct {
	Primary Primary
	Session SessionFactory
	Env     *Environment

	// DisableFallback skips the session tier; ambiguous results become Failed.
	DisableFallback bool

	Log      logger.Logger
	Warnings io.Writer
}

// NewEngine wires an engine with logging to the default logger and warnings
// to stderr.
func NewEngine(primary Primary, session SessionFactory, env *Environment) *Engine {
	return &Engine{
		Primary:  primary,
		Session:  session,
		Env:      env,
		Log:      logger.NewEnvLogger("[clipboard]"),
		Warnings: os.Stderr,
	}
}

// Deliver places content on the clipboard and returns the outcome.
func (e *Engine) Deliver(content string) Outcome {
	return e.DeliverWithReport(content).Outcome
}

// DeliverWithReport is Deliver with the full record of what happened.
func (e *Engine) DeliverWithReport(content string) Report {
	log := e.log()

	// Both calls run unconditionally; classification needs both signals.
	rep := Report{Primary: e.Primary.Name(), Remote: e.Env.IsRemote()}
	rep.SetErr = e.Primary.Set(content)
	rep.ReadBack, rep.GetErr = e.Primary.Get()
	rep.Signals = Classify(rep.SetErr, rep.ReadBack, rep.GetErr, rep.Remote)

	log.Debug("%s: set err=%v, get err=%v, read back %d bytes, remote=%t",
		rep.Primary, rep.SetErr, rep.GetErr, len(rep.ReadBack), rep.Remote)

	if !rep.Signals.Ambiguous() {
		rep.Outcome = Delivered
		log.Debug("outcome: %s", rep.Outcome)
		return rep
	}

	log.Debug("primary inconclusive: unresponsive=%t localGetMismatch=%t emptyAfterSet=%t",
		rep.Signals.Unresponsive, rep.Signals.LocalGetMismatch, rep.Signals.EmptyAfterSet)

	if e.DisableFallback {
		rep.FallbackErr = errors.New(errors.ErrClipboard, "Session fallback disabled", "")
	} else {
		rep.FallbackTried = true
		rep.Fallback, rep.FallbackErr = e.trySession(content)
	}

	if rep.FallbackErr != nil {
		log.Debug("fallback %s failed: %v", rep.Fallback, rep.FallbackErr)
		e.warn()
		rep.Outcome = Failed
		return rep
	}

	rep.Outcome = DeliveredUnconfirmed
	log.Debug("outcome: %s via %s", rep.Outcome, rep.Fallback)
	return rep
}

// trySession builds the session backend and writes once. Any construction
// error or panic is returned as an error.
func (e *Engine) trySession(content string) (name string, err error) {
	err = Isolate(func() error {
		if e.Session == nil {
			return errors.WrapWithCode(ErrNoSession, errors.ErrClipboard, "No session backend configured", "")
		}
		w, err := e.Session()
		if err != nil {
			return err
		}
		name = w.Name()
		return w.Set(content)
	})
	return name, err
}

// Isolate runs fn and converts a panic into an ErrClipboard error.
func Isolate(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.WrapWithCode(fmt.Errorf("%v", r), errors.ErrClipboard,
				"Session clipboard aborted", "")
		}
	}()
	return fn()
}

func (e *Engine) warn() {
	w := e.Warnings
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, ui.RenderWarning(WarningMessage))
}

func (e *Engine) log() logger.Logger {
	if e.Log == nil {
		return logger.Noop()
	}
	return e.Log
}
