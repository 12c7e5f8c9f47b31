// Package testing provides test doubles for the clipboard package.
package testing

import (
	"sync"

	"github.com/rileyhilliard/cb/internal/clipboard"
)

// FakePrimary is a scripted primary backend. By default Set stores the
// content and Get returns it.
type FakePrimary struct {
	mu sync.Mutex

	SetErr error
	GetErr error
	// GetOverride, when non-nil, is returned by Get instead of the stored content.
	GetOverride *string

	Content  string
	SetCalls []string
	GetCalls int
}

// NewFakePrimary returns a primary backend that works.
func NewFakePrimary() *FakePrimary {
	return &FakePrimary{}
}

// ReturnEmpty makes Get succeed with an empty string.
func (f *FakePrimary) ReturnEmpty() *FakePrimary {
	empty := ""
	f.GetOverride = &empty
	return f
}

func (f *FakePrimary) Name() string { return "fake/primary" }

func (f *FakePrimary) Set(content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCalls = append(f.SetCalls, content)
	if f.SetErr != nil {
		return f.SetErr
	}
	f.Content = content
	return nil
}

func (f *FakePrimary) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls++
	if f.GetErr != nil {
		return "", f.GetErr
	}
	if f.GetOverride != nil {
		return *f.GetOverride, nil
	}
	return f.Content, nil
}

// FakeSession counts constructions and writes of the fallback backend.
type FakeSession struct {
	mu sync.Mutex

	BuildErr error
	SetErr   error
	// Panic, when set, is raised during construction.
	Panic interface{}

	Builds   int
	SetCalls []string
}

// NewFakeSession returns a fallback backend that works.
func NewFakeSession() *FakeSession {
	return &FakeSession{}
}

// Factory returns a clipboard.SessionFactory bound to this fake.
func (f *FakeSession) Factory() clipboard.SessionFactory {
	return func() (clipboard.Writer, error) {
		f.mu.Lock()
		f.Builds++
		p, buildErr := f.Panic, f.BuildErr
		f.mu.Unlock()

		if p != nil {
			panic(p)
		}
		if buildErr != nil {
			return nil, buildErr
		}
		return f, nil
	}
}

func (f *FakeSession) Name() string { return "fake/session" }

func (f *FakeSession) Set(content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCalls = append(f.SetCalls, content)
	return f.SetErr
}

// Invocations returns how many times the fallback tier was entered.
func (f *FakeSession) Invocations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Builds
}
