package cli

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/cb/internal/clipboard"
	cbtesting "github.com/rileyhilliard/cb/internal/clipboard/testing"
	"github.com/rileyhilliard/cb/internal/config"
	"github.com/rileyhilliard/cb/internal/logger"
)

// cbResult captures one invocation of the command tree.
type cbResult struct {
	code   int
	stdout string
	stderr string
}

// harness holds the fakes behind the delivery engine.
type harness struct {
	primary *cbtesting.FakePrimary
	session *cbtesting.FakeSession
	vars    map[string]string
	builds  int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	h := &harness{
		primary: cbtesting.NewFakePrimary(),
		session: cbtesting.NewFakeSession(),
		vars:    map[string]string{},
	}

	origEngine := newEngine
	newEngine = func(cfg *config.Config) *clipboard.Engine {
		h.builds++
		env := clipboard.StaticEnvironment("linux", h.vars)
		return &clipboard.Engine{
			Primary:         h.primary,
			Session:         h.session.Factory(),
			Env:             env,
			DisableFallback: !cfg.Clipboard.Fallback,
			Log:             logger.Noop(),
		}
	}
	t.Cleanup(func() {
		newEngine = origEngine
		resetFlags()
	})
	return h
}

func (h *harness) run(args ...string) cbResult {
	var out, errOut bytes.Buffer
	code := run(append([]string{}, args...), &out, &errOut)
	return cbResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

// resetFlags restores flag variables, which cobra keeps between executions.
func resetFlags() {
	cfgFile = ""
	verbose = false
	noColor = false
	printOnly = false
	pickPrintOnly = false
	listFormat = formatTable
	doctorJSON = false
	initForce = false
	versionShort = false
	logger.SetVerbose(false)

	// cobra adds these lazily and never clears them
	for _, name := range []string{"help", "version"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
		}
	}
}

func TestCopy_PrimaryConfirmed(t *testing.T) {
	h := newHarness(t)

	res := h.run("minus")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "−\n", res.stdout)
	assert.Empty(t, res.stderr)
	assert.Equal(t, []string{"−"}, h.primary.SetCalls)
	assert.Equal(t, 1, h.primary.GetCalls)
	assert.Zero(t, h.session.Invocations(), "confirmed primary must not touch the fallback")
}

func TestCopy_EveryName(t *testing.T) {
	want := map[string]string{
		"en-dash": "–", "em-dash": "—", "minus": "−", "times": "×", "div": "÷",
		"sim": "∼", "approx": "≈", "gte": "≥", "lte": "≤",
		"in": "∈", "ni": "∋", "union": "∪", "intersection": "∩",
		"subset": "⊂", "subseteq": "⊆", "subset-eq": "⊆", "supset": "⊃", "supseteq": "⊇", "supset-eq": "⊇",
		"right-arrow": "⟶", "maps-to": "⟼", "left-arrow": "⟵", "maps-from": "⟻",
		"prime": "′", "plus-minus": "±", "degree": "°", "trade-mark": "™",
	}

	for name, char := range want {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			res := h.run(name)

			assert.Equal(t, 0, res.code)
			assert.Equal(t, char+"\n", res.stdout)
			assert.Equal(t, []string{char}, h.primary.SetCalls)
		})
	}
}

func TestCopy_EmptyReadBackUsesFallbackOnce(t *testing.T) {
	h := newHarness(t)
	h.primary.ReturnEmpty()

	res := h.run("approx")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "≈\n", res.stdout)
	assert.Equal(t, 1, h.session.Invocations())
	assert.Equal(t, []string{"≈"}, h.session.SetCalls)
	assert.Empty(t, res.stderr)
}

func TestCopy_UnresponsiveLocalUsesFallback(t *testing.T) {
	h := newHarness(t)
	h.primary.SetErr = stderrors.New("set failed")
	h.primary.GetErr = stderrors.New("get failed")

	res := h.run("union")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "∪\n", res.stdout)
	assert.Equal(t, 1, h.session.Invocations())
}

func TestCopy_RemoteWithoutReadBackIsDelivered(t *testing.T) {
	h := newHarness(t)
	h.vars["SSH_CLIENT"] = "10.0.0.2 51000 22"
	h.primary.GetErr = clipboard.ErrReadUnsupported

	res := h.run("gte")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "≥\n", res.stdout)
	assert.Zero(t, h.session.Invocations())
	assert.Empty(t, res.stderr)
}

func TestCopy_BothTiersFailStillPrints(t *testing.T) {
	h := newHarness(t)
	h.primary.SetErr = stderrors.New("set failed")
	h.primary.GetErr = stderrors.New("get failed")
	h.session.BuildErr = stderrors.New("no display")

	res := h.run("right-arrow")

	assert.Equal(t, 0, res.code, "clipboard failure never changes the exit status")
	assert.Equal(t, "⟶\n", res.stdout)
	assert.Contains(t, res.stderr, clipboard.WarningMessage)
}

func TestCopy_FallbackPanicStillPrints(t *testing.T) {
	h := newHarness(t)
	h.primary.ReturnEmpty()
	h.session.Panic = "display connection lost"

	res := h.run("degree")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "°\n", res.stdout)
	assert.Contains(t, res.stderr, clipboard.WarningMessage)
}

func TestCopy_UnknownName(t *testing.T) {
	h := newHarness(t)

	res := h.run("mnus")

	assert.NotEqual(t, 0, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "'mnus' is not a known character name")
	assert.Contains(t, res.stderr, "Did you mean 'minus'?")
	assert.Contains(t, res.stderr, "Usage:")
	assert.Zero(t, h.builds, "no backend may be built for an unknown name")
	assert.Empty(t, h.primary.SetCalls)
	assert.Zero(t, h.primary.GetCalls)
	assert.Zero(t, h.session.Invocations())
}

func TestCopy_NamesAreCaseSensitive(t *testing.T) {
	h := newHarness(t)

	res := h.run("Minus")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Zero(t, h.builds)
}

func TestCopy_WrongArgCount(t *testing.T) {
	h := newHarness(t)

	for _, args := range [][]string{{}, {"minus", "times"}} {
		res := h.run(args...)
		assert.Equal(t, 1, res.code, "args %v", args)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "Expected one character name")
	}
	assert.Zero(t, h.builds)
}

func TestCopy_UnknownFlag(t *testing.T) {
	h := newHarness(t)

	res := h.run("--bogus", "minus")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Invalid flag")
	assert.Zero(t, h.builds)
}

func TestCopy_PrintOnly(t *testing.T) {
	h := newHarness(t)

	res := h.run("-p", "times")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "×\n", res.stdout)
	assert.Zero(t, h.builds)
}

func TestCopy_ClipboardDisabledByEnv(t *testing.T) {
	h := newHarness(t)
	t.Setenv("CB_CLIPBOARD_ENABLED", "false")

	res := h.run("div")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "÷\n", res.stdout)
	assert.Zero(t, h.builds)
}

func TestCopy_FallbackDisabledByConfig(t *testing.T) {
	h := newHarness(t)
	h.primary.ReturnEmpty()

	path := filepath.Join(t.TempDir(), "cb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clipboard:\n  fallback: false\n"), 0o644))

	res := h.run("--config", path, "sim")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "∼\n", res.stdout)
	assert.Zero(t, h.session.Invocations())
	assert.Contains(t, res.stderr, clipboard.WarningMessage)
}

func TestCopy_BrokenConfig(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(t.TempDir(), "cb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  color: purple\n"), 0o644))

	res := h.run("--config", path, "minus")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "−\n", res.stdout)
	assert.Contains(t, res.stderr, "Ignoring config, using defaults")
	assert.Contains(t, res.stderr, "purple")
	assert.NotContains(t, res.stderr, "Usage:")
	assert.Equal(t, 1, h.builds, "defaults still deliver to the clipboard")
	assert.Equal(t, []string{"−"}, h.primary.SetCalls)
}

func TestCopy_BadEnvOverride(t *testing.T) {
	h := newHarness(t)
	t.Setenv("CB_CLIPBOARD_FALLBACK", "maybe")

	res := h.run("minus")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "−\n", res.stdout)
	assert.Contains(t, res.stderr, "clipboard.fallback")
}

func TestCopy_MissingExplicitConfig(t *testing.T) {
	h := newHarness(t)

	res := h.run("--config", filepath.Join(t.TempDir(), "missing.yaml"), "minus")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "−\n", res.stdout)
	assert.Contains(t, res.stderr, "Specified config file not found")
}

func TestCopy_BrokenConfigStillRejectsUnknownName(t *testing.T) {
	h := newHarness(t)
	t.Setenv("CB_CLIPBOARD_FALLBACK", "maybe")

	res := h.run("minsu")

	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Zero(t, h.builds)
}

func TestRootCommand_ValidArgs(t *testing.T) {
	assert.Contains(t, rootCmd.ValidArgs, "minus")
	assert.Contains(t, rootCmd.ValidArgs, "trade-mark")
	assert.NotContains(t, rootCmd.ValidArgs, "subset-eq")
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}

	flag := rootCmd.Flags().Lookup("print-only")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}
