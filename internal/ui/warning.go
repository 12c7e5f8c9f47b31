package ui

import "github.com/charmbracelet/lipgloss"

// RenderWarning formats a non-fatal warning line for stderr.
func RenderWarning(msg string) string {
	style := lipgloss.NewStyle().Foreground(ColorWarning)
	return style.Render(SymbolWarning+" Warning: ") + msg
}

// RenderError formats a failure line.
func RenderError(msg string) string {
	style := lipgloss.NewStyle().Foreground(ColorError)
	return style.Render(SymbolFail) + " " + msg
}

// RenderSuccess formats a success line.
func RenderSuccess(msg string) string {
	style := lipgloss.NewStyle().Foreground(ColorSuccess)
	return style.Render(SymbolSuccess) + " " + msg
}

// Muted renders secondary text.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(s)
}
