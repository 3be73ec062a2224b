package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes JSON snapshots instead of the text board
	JSONFormat bool

	// Glyphs draws pieces as Unicode chess symbols instead of letters
	Glyphs bool

	// ShowFEN prints the FEN string under the board
	ShowFEN bool

	// TUI draws the board on a full screen terminal UI
	TUI bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs: true,
	}
}
