package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/cb/internal/errors"
)

var pickerSymbols = []SymbolInfo{
	{Name: "subseteq", Aliases: []string{"subset-eq"}, Char: "⊆", Codepoint: "U+2286", Category: "Set Theory", Description: "SUBSET OF OR EQUAL TO"},
	{Name: "degree", Char: "°", Codepoint: "U+00B0", Category: "Other", Description: "DEGREE SIGN"},
}

func TestSymbolItem(t *testing.T) {
	item := symbolItem{symbol: pickerSymbols[0]}

	assert.Equal(t, "⊆  subseteq", item.Title())

	desc := item.Description()
	assert.Contains(t, desc, "U+2286")
	assert.Contains(t, desc, "SUBSET OF OR EQUAL TO")
	assert.Contains(t, desc, "[Set Theory]")

	filter := item.FilterValue()
	assert.Contains(t, filter, "subseteq")
	assert.Contains(t, filter, "subset-eq")
	assert.Contains(t, filter, "Set Theory")
}

func TestSymbolItem_NoDescription(t *testing.T) {
	item := symbolItem{symbol: SymbolInfo{Name: "x", Codepoint: "U+0078"}}
	assert.Equal(t, "U+0078", item.Description())
}

func TestSymbolPickerModel_Select(t *testing.T) {
	m := NewSymbolPickerModel(pickerSymbols)
	assert.Nil(t, m.Selected())

	// Move down then select
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})

	picker := updated.(SymbolPickerModel)
	require.NotNil(t, picker.Selected())
	assert.Equal(t, "degree", picker.Selected().Name)
	assert.NotNil(t, cmd, "selecting should quit the program")
	assert.Empty(t, picker.View())
}

func TestSymbolPickerModel_Cancel(t *testing.T) {
	m := NewSymbolPickerModel(pickerSymbols)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	picker := updated.(SymbolPickerModel)
	assert.Nil(t, picker.Selected())
	assert.NotNil(t, cmd)
}

func TestSymbolPickerModel_View(t *testing.T) {
	m := NewSymbolPickerModel(pickerSymbols)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := updated.View()
	assert.Contains(t, view, "Copy a character")
	assert.Contains(t, view, "subseteq")
}

func TestPickSymbol_Empty(t *testing.T) {
	_, err := PickSymbolWithIO(nil, nil, nil)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}
