package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/cb/internal/errors"
	"github.com/rileyhilliard/cb/internal/symbol"
	"github.com/rileyhilliard/cb/internal/ui"
)

// Output formats for cb list.
const (
	formatTable = "table"
	formatPlain = "plain"
	formatYAML  = "yaml"
)

var listFormat string

// listCmd shows the symbol table
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show every character cb can copy",
	Long: `List every character name cb understands, with its codepoint and
Unicode name.

Examples:
  cb list
  cb list --format plain | fzf
  cb list --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand(cmd.OutOrStdout(), listFormat)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", formatTable, "output format: table, plain or yaml")
	_ = listCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{formatTable, formatPlain, formatYAML}, cobra.ShellCompDirectiveNoFileComp))
	rootCmd.AddCommand(listCmd)
}

// listEntry is one symbol in YAML output.
type listEntry struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases,omitempty"`
	Char        string   `yaml:"char"`
	Codepoint   string   `yaml:"codepoint"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
}

// listCommand implements the list command logic.
func listCommand(w io.Writer, format string) error {
	infos := symbolInfos()

	switch format {
	case formatTable:
		fmt.Fprintln(w, ui.RenderSymbolTable(infos))
	case formatPlain:
		for _, s := range infos {
			fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Char)
		}
	case formatYAML:
		entries := make([]listEntry, len(infos))
		for i, s := range infos {
			entries[i] = listEntry(s)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrInput,
			fmt.Sprintf("Unknown format %q", format),
			"Use one of: "+strings.Join([]string{formatTable, formatPlain, formatYAML}, ", "))
	}
	return nil
}

// symbolInfos describes the whole table for display.
func symbolInfos() []ui.SymbolInfo {
	all := symbol.All()
	infos := make([]ui.SymbolInfo, len(all))
	for i, s := range all {
		infos[i] = ui.SymbolInfo{
			Name:        s.Name(),
			Aliases:     s.Aliases(),
			Char:        symbol.Resolve(s),
			Codepoint:   symbol.FormatCodepoint(s.Codepoint()),
			Category:    string(s.Category()),
			Description: s.Description(),
		}
	}
	return infos
}
