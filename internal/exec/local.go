// Package exec runs the helper programs cb uses to reach the clipboard
// (clip.exe, powershell.exe, xclip, xsel, wl-copy).
package exec

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/rileyhilliard/cb/internal/errors"
)

// Result holds the captured output of a helper run.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner starts helper programs. LocalRunner is the real implementation;
// tests substitute exec/testing.FakeRunner.
type Runner interface {
	// Run starts name with args, feeding stdin (may be nil), and waits for it.
	// A non-zero exit is reported in Result.ExitCode, not as an error.
	Run(name string, args []string, stdin io.Reader) (*Result, error)

	// LookPath reports where name is found in PATH.
	LookPath(name string) (string, error)
}

// HelperWaitDelay bounds how long Run keeps reading a helper's output after
// the helper itself has exited. xclip, xsel and wl-copy fork a child that
// owns the selection and inherits stdout/stderr until another program takes
// the clipboard.
const HelperWaitDelay = 200 * time.Millisecond

// LocalRunner runs programs on this machine.
type LocalRunner struct{}

// NewLocalRunner returns the default runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run executes the program directly, without a shell.
func (LocalRunner) Run(name string, args []string, stdin io.Reader) (*Result, error) {
	command := exec.Command(name, args...)

	var stdout, stderr bytes.Buffer
	command.Stdin = stdin
	command.Stdout = &stdout
	command.Stderr = &stderr
	command.WaitDelay = HelperWaitDelay

	runErr := command.Run()
	if stderrors.Is(runErr, exec.ErrWaitDelay) {
		// The helper exited cleanly; a forked child still holds the pipes.
		runErr = nil
	}
	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr != nil {
		// Command ran but returned non-zero
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run "+name,
			"Make sure "+name+" is installed and on your PATH.")
	}

	return res, nil
}

// LookPath wraps os/exec.LookPath.
func (LocalRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// RunChecked runs a helper and converts a non-zero exit into an ErrExec error
// carrying the helper's stderr.
func RunChecked(r Runner, name string, args []string, stdin io.Reader) ([]byte, error) {
	res, err := r.Run(name, args, stdin)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		msg := string(bytes.TrimSpace(res.Stderr))
		if msg == "" {
			msg = "no error output"
		}
		return res.Stdout, errors.WrapWithCode(&exitStatusError{code: res.ExitCode, stderr: msg}, errors.ErrExec,
			name+" exited with an error",
			"")
	}
	return res.Stdout, nil
}

type exitStatusError struct {
	code   int
	stderr string
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d: %s", e.code, e.stderr)
}
