package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/gridview/internal/config/loader"
	"github.com/dshills/gridview/internal/input/keymap"
	"github.com/dshills/gridview/internal/renderer/core"
	"github.com/dshills/gridview/internal/table"
)

// Allowed values for enumerated settings.
var (
	backends  = []string{"tcell", "ansi"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// maxDebounceMs bounds source.debounceMs.
const maxDebounceMs = 10000

// Config is the complete gridview configuration.
type Config struct {
	UI      UIConfig            `toml:"ui"`
	Keys    map[string][]string `toml:"keys"`
	Source  SourceConfig        `toml:"source"`
	Logging LoggingConfig       `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Highlight: "green",
			Backend:   "tcell",
			ShowHelp:  true,
		},
		Source: SourceConfig{
			DebounceMs: 200,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gridview", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gridview", "config.toml")
}

// Load reads the TOML file at path (a missing file is not an error),
// applies GRIDVIEW_* environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	return LoadFrom(loader.NewTOMLLoader(path), loader.NewEnvLoader(loader.EnvPrefix))
}

// LoadFrom merges the maps produced by loaders, later loaders winning,
// decodes them over Default, and validates the result.
func LoadFrom(loaders ...loader.Loader) (*Config, error) {
	merged := make(map[string]any)
	for _, l := range loaders {
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg, err := FromMap(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromMap decodes a generic settings map over the defaults. Settings
// gridview does not define are rejected.
func FromMap(m map[string]any) (*Config, error) {
	cfg := Default()
	if len(m) == 0 {
		return cfg, nil
	}

	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, unknownSettings(strict)
		}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			return nil, &ValidationError{
				Path:    keyPath(de.Key()),
				Message: de.Error(),
				Code:    ErrCodeTypeMismatch,
			}
		}
		return nil, fmt.Errorf("decoding settings: %w", err)
	}

	return cfg, nil
}

// unknownSettings converts go-toml's strict-mode error into validation errors.
func unknownSettings(strict *toml.StrictMissingError) error {
	errs := make([]error, 0, len(strict.Errors))
	for _, de := range strict.Errors {
		errs = append(errs, &ValidationError{
			Path:    keyPath(de.Key()),
			Message: "unknown setting",
			Code:    ErrCodeUnknownSetting,
		})
	}
	return errors.Join(errs...)
}

func keyPath(key toml.Key) string {
	path := ""
	for i, k := range key {
		if i > 0 {
			path += "."
		}
		path += k
	}
	return path
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if !contains(backends, c.UI.Backend) {
		errs = append(errs, &ValidationError{
			Path:    "ui.backend",
			Message: fmt.Sprintf("must be one of %v", backends),
			Value:   c.UI.Backend,
			Code:    ErrCodeInvalidEnum,
		})
	}

	if _, err := core.ParseColorSpec(c.UI.Highlight); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "ui.highlight",
			Message: err.Error(),
			Value:   c.UI.Highlight,
			Code:    ErrCodePatternMismatch,
		})
	}

	if c.Source.DebounceMs < 0 || c.Source.DebounceMs > maxDebounceMs {
		errs = append(errs, &ValidationError{
			Path:    "source.debounceMs",
			Message: fmt.Sprintf("must be between 0 and %d", maxDebounceMs),
			Value:   c.Source.DebounceMs,
			Code:    ErrCodeOutOfRange,
		})
	}

	if !contains(logLevels, c.Logging.Level) {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v", logLevels),
			Value:   c.Logging.Level,
			Code:    ErrCodeInvalidEnum,
		})
	}

	if _, err := keymap.FromConfig(c.Keys); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "keys",
			Message: err.Error(),
			Value:   sortedKeys(c.Keys),
			Code:    ErrCodeInvalidEnum,
		})
	}

	return errors.Join(errs...)
}

// Markers returns the highlight markers for the configured color.
func (c *Config) Markers() (table.Markers, error) {
	params, err := core.ParseColorSpec(c.UI.Highlight)
	if err != nil {
		return table.Markers{}, err
	}
	return table.Markers{Start: core.SGR(params), End: core.SGRReset}, nil
}

// Keymap returns the key bindings with configured overrides applied.
func (c *Config) Keymap() (*keymap.Keymap, error) {
	return keymap.FromConfig(c.Keys)
}

// DebounceDelay returns source.debounceMs as a duration.
func (c *Config) DebounceDelay() time.Duration {
	return time.Duration(c.Source.DebounceMs) * time.Millisecond
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
