package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrInput,
		ErrClipboard,
		ErrConfig,
		ErrExec,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "input error",
			code:       ErrInput,
			message:    "'mnus' is not a known character name",
			suggestion: "Run 'cb list' to see every name cb understands",
		},
		{
			name:       "clipboard error",
			code:       ErrClipboard,
			message:    "No desktop session clipboard available",
			suggestion: "Install xclip or xsel",
		},
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid config format",
			suggestion: "Check the YAML syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name:          "message and suggestion",
			err:           New(ErrConfig, "Invalid configuration", "Check config.yaml syntax"),
			expectedParts: []string{"✗ Invalid configuration", "Check config.yaml syntax"},
		},
		{
			name:          "with cause",
			err:           WrapWithCode(errors.New("exit status 1"), ErrExec, "xclip failed", ""),
			expectedParts: []string{"xclip failed", "exit status 1"},
		},
		{
			name:          "without suggestion",
			err:           New(ErrClipboard, "Clipboard write failed", ""),
			expectedParts: []string{"Clipboard write failed"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrExec, "Execution failed", "")

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())

	var cbErr *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", wrapped), &cbErr))
	assert.Equal(t, ErrExec, cbErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "Config error", "")

	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrInput))
	assert.False(t, IsCode(errors.New("standard error"), ErrConfig))
	assert.False(t, IsCode(nil, ErrConfig))
}

func TestNewUnknownSymbol(t *testing.T) {
	err := NewUnknownSymbol("zzz", nil)

	assert.Equal(t, ErrInput, err.Code)
	assert.Contains(t, err.Message, "zzz")
	assert.Contains(t, err.Suggestion, "cb list")
	assert.NotContains(t, err.Suggestion, "Did you mean")

	lines := strings.Split(err.Error(), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "✗"))
}

func TestNewUnknownSymbol_Similar(t *testing.T) {
	err := NewUnknownSymbol("subsete", []string{"subset", "subseteq"})

	assert.Equal(t, "Did you mean 'subset', 'subseteq'? Run 'cb list' to see every name cb understands", err.Suggestion)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOk   bool
	}{
		{name: "exit error", err: NewExitError(42), wantCode: 42, wantOk: true},
		{name: "wrapped exit error", err: fmt.Errorf("wrap: %w", NewExitError(2)), wantCode: 2, wantOk: true},
		{name: "standard error", err: errors.New("boom"), wantOk: false},
		{name: "nil", err: nil, wantOk: false},
		{name: "structured error", err: New(ErrInput, "bad", ""), wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := GetExitCode(tt.err)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}

	assert.Equal(t, "exit code 42", NewExitError(42).Error())
}
