package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rileyhilliard/cb/internal/config"
	"github.com/rileyhilliard/cb/internal/errors"
	"github.com/rileyhilliard/cb/internal/ui"
)

var initForce bool

// initCmd writes a default config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a config file with every setting at its default, ready to edit.

The file goes to ~/.config/cb/config.yaml ($XDG_CONFIG_HOME is honoured),
or to the path given with --config.

Examples:
  cb init
  cb init --force
  cb init --config ./cb.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Path:           cfgFile,
			Overwrite:      initForce,
			NonInteractive: !stdinIsTerminal(),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Target file; empty means the default location
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Never prompt
}

// confirmOverwrite asks before replacing an existing file. Swapped in tests.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// Init writes the default config file.
func Init(w io.Writer, opts InitOptions) error {
	path := opts.Path
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		overwrite, err := confirmOverwrite(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintln(w, ui.RenderSuccess("Wrote "+path))
	return nil
}
