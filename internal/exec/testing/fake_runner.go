// Package testing provides test doubles for the exec package.
package testing

import (
	"io"
	"os/exec"
	"sync"

	cbexec "github.com/rileyhilliard/cb/internal/exec"
)

// RunCall records a call to Run.
type RunCall struct {
	Name  string
	Args  []string
	Stdin string
}

// Response is the canned reply for one program.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// FakeRunner simulates helper programs. Programs not listed in Installed are
// reported missing by LookPath and fail to start in Run.
type FakeRunner struct {
	mu sync.Mutex

	Installed map[string]bool
	Responses map[string]Response

	Calls []RunCall
}

// NewFakeRunner creates a runner where the given programs are installed and
// exit 0 with no output.
func NewFakeRunner(installed ...string) *FakeRunner {
	f := &FakeRunner{
		Installed: make(map[string]bool),
		Responses: make(map[string]Response),
	}
	for _, name := range installed {
		f.Installed[name] = true
	}
	return f
}

// Respond sets the canned response for a program and marks it installed.
func (f *FakeRunner) Respond(name string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Installed[name] = true
	f.Responses[name] = resp
	return f
}

// Run records the call and returns the canned response.
func (f *FakeRunner) Run(name string, args []string, stdin io.Reader) (*cbexec.Result, error) {
	var in string
	if stdin != nil {
		data, _ := io.ReadAll(stdin)
		in = string(data)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, RunCall{Name: name, Args: append([]string(nil), args...), Stdin: in})

	if !f.Installed[name] {
		return &cbexec.Result{ExitCode: -1}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}

	resp := f.Responses[name]
	if resp.Err != nil {
		return &cbexec.Result{ExitCode: -1}, resp.Err
	}
	return &cbexec.Result{
		Stdout:   []byte(resp.Stdout),
		Stderr:   []byte(resp.Stderr),
		ExitCode: resp.ExitCode,
	}, nil
}

// LookPath reports installed programs under /usr/bin.
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// CallsTo returns the recorded calls for one program.
func (f *FakeRunner) CallsTo(name string) []RunCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []RunCall
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
