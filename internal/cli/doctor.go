package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cb/internal/clipboard"
	"github.com/rileyhilliard/cb/internal/config"
	"github.com/rileyhilliard/cb/internal/doctor"
	"github.com/rileyhilliard/cb/internal/errors"
	cbexec "github.com/rileyhilliard/cb/internal/exec"
	"github.com/rileyhilliard/cb/internal/ui"
)

var doctorJSON bool

// doctorCmd diagnoses clipboard access
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose clipboard access",
	Long: `Run diagnostic checks to find out why cb can't reach the clipboard.

Checks:
  - Config file validity
  - Session kind (local, SSH, WSL) and desktop display
  - Clipboard helper programs (xclip, xsel, wl-copy, clip.exe)
  - Whether the clipboard can be read back
  - Whether the session fallback can be started

doctor never writes to the clipboard.

Examples:
  cb doctor
  cb doctor --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand(cmd.OutOrStdout(), doctorJSON)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorInputs wires the checks to the real system. Swapped in tests.
var doctorInputs = func(cfg *config.Config) doctor.Inputs {
	env := clipboard.NewEnvironment(cfg.Clipboard.RemoteEnv)
	runner := cbexec.NewLocalRunner()
	return doctor.Inputs{
		ConfigPath:      cfgFile,
		Env:             env,
		Runner:          runner,
		Primary:         clipboard.NewAnywhere(env, cfg.Clipboard.OSC52),
		Session:         clipboard.NewSessionFactory(env, runner),
		FallbackEnabled: cfg.Clipboard.Fallback,
	}
}

// doctorCommand implements the doctor command logic.
func doctorCommand(w io.Writer, asJSON bool) error {
	// A broken config is reported by the config check; the others run on defaults.
	cfg, err := loadConfig()
	if err != nil {
		cliLog.Debug("doctor: config failed to load, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	checks := doctor.Collect(doctorInputs(cfg))
	results := doctor.RunAll(checks)

	if asJSON {
		err = outputDoctorJSON(w, checks, results)
	} else {
		outputDoctorText(w, checks, results)
	}
	if err != nil {
		return err
	}

	if doctor.HasFailures(results) {
		return errors.NewExitError(1)
	}
	return nil
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := doctor.GroupByCategory(checks)

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(grouped)),
	}

	for _, cat := range doctor.CategoryOrder {
		indices := grouped[cat]
		if len(indices) == 0 {
			continue
		}
		catResults := make([]doctor.CheckResult, len(indices))
		for i, idx := range indices {
			catResults[i] = results[idx]
		}
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: catResults,
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("cb Clipboard Report"))
	fmt.Fprintln(w)

	grouped := doctor.GroupByCategory(checks)

	for _, category := range doctor.CategoryOrder {
		indices, ok := grouped[category]
		if !ok || len(indices) == 0 {
			continue
		}

		fmt.Fprintln(w, headerStyle.Render(category))
		for _, idx := range indices {
			renderCheckResult(w, results[idx], successStyle, errorStyle, warnStyle, mutedStyle)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	} else {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  cb still prints every character; run with %s to watch a copy attempt.\n",
			mutedStyle.Render("--verbose"))
	}

	fmt.Fprintln(w)
}

// renderCheckResult renders a single check result.
func renderCheckResult(w io.Writer, result doctor.CheckResult, successStyle, errorStyle, warnStyle, mutedStyle lipgloss.Style) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolComplete
		style = successStyle
	case doctor.StatusWarn:
		symbol = ui.SymbolWarning
		style = warnStyle
	case doctor.StatusFail:
		symbol = ui.SymbolFail
		style = errorStyle
	}

	fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(line))
		}
	}
}
