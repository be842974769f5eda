package ui

// Status symbols. SymbolFail matches the prefix of structured errors.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "!"
)
