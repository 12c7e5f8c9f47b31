package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// SymbolInfo is one row of the symbol table and one item of the picker.
type SymbolInfo struct {
	Name        string // canonical name, e.g. "minus"
	Aliases     []string
	Char        string // rendered character
	Codepoint   string // U+XXXX
	Category    string
	Description string // Unicode character name
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// symbolColumns are sized for the longest name ("intersection") and
// description ("LONG RIGHTWARDS ARROW FROM BAR").
var symbolColumns = []TableColumn{
	{Title: "NAME", Width: 14},
	{Title: "CHAR", Width: 4},
	{Title: "CODE", Width: 7},
	{Title: "CATEGORY", Width: 11},
	{Title: "DESCRIPTION", Width: 32},
}

// NewTable creates a bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is focused, so the selected row must look like any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSymbolTable renders the symbol table for CLI output.
func RenderSymbolTable(symbols []SymbolInfo) string {
	if len(symbols) == 0 {
		return ""
	}

	rows := make([]table.Row, len(symbols))
	for i, s := range symbols {
		rows[i] = table.Row{s.Name, s.Char, s.Codepoint, s.Category, s.Description}
	}

	return NewTable(symbolColumns, rows).View()
}
