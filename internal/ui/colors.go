package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// SetColorMode sets the lipgloss color profile. "auto" keeps the detected
// profile, which already honours NO_COLOR and non-terminal output.
func SetColorMode(mode string) {
	switch mode {
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// DisableColors switches to monochrome output.
func DisableColors() {
	SetColorMode(ColorNever)
}
