// Package ui provides the styled terminal output used by cb.
//
// Colors are ANSI codes so they follow the terminal theme:
//
//	ColorSuccess   (green)  - copied
//	ColorError     (red)    - failures
//	ColorWarning   (yellow) - clipboard warnings
//	ColorInfo      (cyan)   - informational text
//	ColorMuted     (gray)   - codepoints, descriptions, suggestions
//
// SetColorMode applies the --no-color flag and the output.color setting.
//
// The symbol table (RenderSymbolTable) is a bubbles table rendered once, and
// the symbol picker (PickSymbol) is a bubbles list run in a Bubble Tea program.
package ui
