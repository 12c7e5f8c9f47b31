package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/cb/internal/errors"
)

// symbolItem implements list.Item for the bubbles list.
type symbolItem struct {
	symbol SymbolInfo
}

func (i symbolItem) Title() string {
	return fmt.Sprintf("%s  %s", i.symbol.Char, i.symbol.Name)
}

func (i symbolItem) Description() string {
	parts := []string{i.symbol.Codepoint}
	if i.symbol.Description != "" {
		parts = append(parts, i.symbol.Description)
	}
	if i.symbol.Category != "" {
		parts = append(parts, "["+i.symbol.Category+"]")
	}
	return strings.Join(parts, " | ")
}

func (i symbolItem) FilterValue() string {
	// Search by name, aliases, description and category
	values := []string{i.symbol.Name}
	values = append(values, i.symbol.Aliases...)
	values = append(values, i.symbol.Description, i.symbol.Category)
	return strings.Join(values, " ")
}

// SymbolPickerModel is a Bubble Tea model for choosing a symbol.
type SymbolPickerModel struct {
	list     list.Model
	symbols  []SymbolInfo
	selected *SymbolInfo
	quitting bool
}

type symbolPickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var symbolPickerKeys = symbolPickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// NewSymbolPickerModel creates a picker over symbols.
func NewSymbolPickerModel(symbols []SymbolInfo) SymbolPickerModel {
	items := make([]list.Item, len(symbols))
	for i, s := range symbols {
		items[i] = symbolItem{symbol: s}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderForeground(ColorSecondary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorMuted)

	l := list.New(items, delegate, 80, 20)
	l.Title = "Copy a character"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	return SymbolPickerModel{
		list:    l,
		symbols: symbols,
	}
}

// Init implements tea.Model.
func (m SymbolPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SymbolPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While filtering, enter and esc belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, symbolPickerKeys.Enter):
			if item, ok := m.list.SelectedItem().(symbolItem); ok {
				m.selected = &item.symbol
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, symbolPickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SymbolPickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selected returns the chosen symbol, or nil if cancelled.
func (m SymbolPickerModel) Selected() *SymbolInfo {
	return m.selected
}

// PickSymbol runs the picker on the terminal. Returns nil if the user cancels.
func PickSymbol(symbols []SymbolInfo) (*SymbolInfo, error) {
	return PickSymbolWithIO(symbols, os.Stderr, os.Stdin)
}

// PickSymbolWithIO runs the picker with custom I/O. The picker draws on
// stderr by default so stdout carries only the chosen character.
func PickSymbolWithIO(symbols []SymbolInfo, output io.Writer, input io.Reader) (*SymbolInfo, error) {
	if len(symbols) == 0 {
		return nil, errors.New(errors.ErrInput, "No characters to pick from", "")
	}

	p := tea.NewProgram(
		NewSymbolPickerModel(symbols),
		tea.WithOutput(output),
		tea.WithInput(input),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Character picker failed",
			"Pass the name directly instead, e.g. 'cb minus'")
	}

	if m, ok := finalModel.(SymbolPickerModel); ok {
		return m.Selected(), nil
	}
	return nil, nil
}
