package config

// UIConfig holds display settings.
type UIConfig struct {
	// Highlight is the highlight color: an ANSI color name, a #rrggbb
	// hex color, or raw SGR parameters.
	Highlight string `toml:"highlight"`

	// Backend selects the terminal backend ("tcell" or "ansi").
	Backend string `toml:"backend"`

	// ShowHelp shows the key help line under the table.
	ShowHelp bool `toml:"showHelp"`
}

// SourceConfig holds grid source settings.
type SourceConfig struct {
	// Path is the grid file. Empty means the built-in demo grid.
	Path string `toml:"path"`

	// Watch reloads the grid when the file changes.
	Watch bool `toml:"watch"`

	// DebounceMs is the quiet period before a change triggers a reload.
	DebounceMs int `toml:"debounceMs"`

	// FormatScript is a Lua script defining format(value, row, col).
	FormatScript string `toml:"formatScript"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// File receives log output. Logging is disabled when empty.
	File string `toml:"file"`
}
