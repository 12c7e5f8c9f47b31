package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Copied
	SymbolFail     = "✗" // Failed
	SymbolWarning  = "⚠" // Degraded
	SymbolComplete = "●" // Check done
	SymbolSkipped  = "⊘" // Check skipped
)
