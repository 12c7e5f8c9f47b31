package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cb/internal/clipboard"
	"github.com/rileyhilliard/cb/internal/config"
	"github.com/rileyhilliard/cb/internal/errors"
	cbexec "github.com/rileyhilliard/cb/internal/exec"
	"github.com/rileyhilliard/cb/internal/logger"
	"github.com/rileyhilliard/cb/internal/symbol"
	"github.com/rileyhilliard/cb/internal/ui"
)

// Global flags
var (
	cfgFile   string
	verbose   bool
	noColor   bool
	printOnly bool
)

var cliLog = logger.NewEnvLogger("[cli]")

// newEngine builds the delivery engine for cfg. Tests swap in fakes.
var newEngine = func(cfg *config.Config) *clipboard.Engine {
	env := clipboard.NewEnvironment(cfg.Clipboard.RemoteEnv)
	session := clipboard.NewSessionFactory(env, cbexec.NewLocalRunner())

	engine := clipboard.NewEngine(clipboard.NewAnywhere(env, cfg.Clipboard.OSC52), session, env)
	engine.DisableFallback = !cfg.Clipboard.Fallback
	return engine
}

var rootCmd = &cobra.Command{
	Use:   "cb <name>",
	Short: "Copy a Unicode character to the clipboard",
	Long: `Copy a hard-to-type Unicode character to the clipboard and print it.

cb works locally, over SSH (via OSC 52) and inside WSL. If the first attempt
can't be confirmed it tries the desktop session clipboard once. The character
is always printed, even when the clipboard can't be reached.

Examples:
  cb minus          # −
  cb right-arrow    # ⟶
  cb subseteq       # ⊆
  cb -p em-dash     # print only, leave the clipboard alone
  cb list           # every name cb understands`,
	Args:          symbolArg,
	ValidArgs:     symbol.Names(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return copyCommand(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/cb/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log what the clipboard engine does")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().BoolVarP(&printOnly, "print-only", "p", false, "print the character without touching the clipboard")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.ErrInput,
			"Invalid flag",
			"Run '"+cmd.CommandPath()+" --help' for usage")
	})
	rootCmd.SetVersionTemplate("cb {{.Version}}\n")
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	reportError(cmd, stderr, err)
	return 1
}

// reportError prints err, followed by usage when the user typed something
// cb doesn't understand.
func reportError(cmd *cobra.Command, w io.Writer, err error) {
	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(w, msg)

	if errors.IsCode(err, errors.ErrInput) {
		fmt.Fprintln(w)
		fmt.Fprint(w, cmd.UsageString())
	}
}

// symbolArg accepts exactly one known character name.
func symbolArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Expected one character name, got %d", len(args)),
			"Run 'cb list' to see every name cb understands")
	}
	_, err := symbol.Parse(args[0])
	return err
}

// copyCommand implements `cb <name>`.
func copyCommand(cmd *cobra.Command, name string) error {
	s, err := symbol.Parse(name)
	if err != nil {
		return err
	}

	deliverAndPrint(cmd, loadConfigOrDefault(cmd), symbol.Resolve(s), printOnly)
	return nil
}

// deliverAndPrint copies char to the clipboard, then prints it. The delivery
// outcome is logged and never turned into an error.
func deliverAndPrint(cmd *cobra.Command, cfg *config.Config, char string, skipClipboard bool) {
	switch {
	case skipClipboard:
		cliLog.Debug("--print-only given, skipping clipboard")
	case !cfg.Clipboard.Enabled:
		cliLog.Debug("clipboard.enabled is false, skipping clipboard")
	default:
		engine := newEngine(cfg)
		engine.Warnings = cmd.ErrOrStderr()
		outcome := engine.Deliver(char)
		cliLog.Debug("clipboard outcome: %s", outcome)
	}

	fmt.Fprintln(cmd.OutOrStdout(), char)
}

// loadConfig loads the config file (or defaults) and applies output settings.
func loadConfig() (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		cliLog.Debug("config loaded from %s", path)
	}
	if !noColor {
		ui.SetColorMode(cfg.Output.Color)
	}
	return cfg, nil
}

// loadConfigOrDefault is loadConfig for the copy paths, where the character
// is printed no matter what. A config error becomes a warning on stderr and
// the defaults are used.
func loadConfigOrDefault(cmd *cobra.Command) *config.Config {
	cfg, err := loadConfig()
	if err == nil {
		return cfg
	}
	cliLog.Debug("config failed to load, using defaults: %v", err)
	fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderWarning(configWarning(err)))
	return config.DefaultConfig()
}

// configWarning reduces a config error to a single line.
func configWarning(err error) string {
	msg := strings.TrimSpace(err.Error())
	var cbErr *errors.Error
	if stderrors.As(err, &cbErr) {
		msg = cbErr.Message
		if cbErr.Cause != nil {
			msg += ": " + cbErr.Cause.Error()
		}
	}
	return "Ignoring config, using defaults: " + strings.Join(strings.Fields(msg), " ")
}
