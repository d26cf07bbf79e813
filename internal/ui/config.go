package ui

// DisplayConfig holds configuration for UI rendering
type DisplayConfig struct {
	// Truncation limits
	MaxTitleLength    int
	MaxPreviewCommits int

	// Display lengths
	CommitHashDisplayLength int
	DefaultTerminalWidth    int
}

// DefaultConfig returns the default display configuration
func DefaultConfig() DisplayConfig {
	return DisplayConfig{
		MaxTitleLength:    60,
		MaxPreviewCommits: 10,

		CommitHashDisplayLength: 12,
		DefaultTerminalWidth:    120,
	}
}

// Global display configuration (can be overridden)
var Display = DefaultConfig()
