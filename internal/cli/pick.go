package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/cb/internal/errors"
	"github.com/rileyhilliard/cb/internal/symbol"
	"github.com/rileyhilliard/cb/internal/ui"
)

var pickPrintOnly bool

// Swapped in tests.
var (
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	pickSymbol      = ui.PickSymbol
)

// pickCmd lets the user search for a character
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a character interactively",
	Long: `Open a searchable list of every character and copy the one you pick.

The picker draws on stderr, so only the chosen character reaches stdout.

Examples:
  cb pick
  cb pick -p > symbol.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return pickCommand(cmd, pickPrintOnly)
	},
}

func init() {
	pickCmd.Flags().BoolVarP(&pickPrintOnly, "print-only", "p", false, "print the character without touching the clipboard")
	rootCmd.AddCommand(pickCmd)
}

// pickCommand implements the pick command logic.
func pickCommand(cmd *cobra.Command, skipClipboard bool) error {
	if !stdinIsTerminal() {
		return errors.New(errors.ErrInput,
			"cb pick needs an interactive terminal",
			"Pass the name directly instead, e.g. 'cb minus'")
	}

	cfg := loadConfigOrDefault(cmd)

	chosen, err := pickSymbol(symbolInfos())
	if err != nil {
		return err
	}
	if chosen == nil {
		cliLog.Debug("picker cancelled")
		return nil
	}

	s, err := symbol.Parse(chosen.Name)
	if err != nil {
		return err
	}

	deliverAndPrint(cmd, cfg, symbol.Resolve(s), skipClipboard)
	return nil
}
