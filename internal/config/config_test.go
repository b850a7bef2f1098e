package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/gridview/internal/config/loader"
	"github.com/dshills/gridview/internal/input/keymap"
	"github.com/dshills/gridview/internal/table"
)

// mapLoader is a Loader returning a fixed map.
type mapLoader map[string]any

func (m mapLoader) Load() (map[string]any, error) { return loader.Clone(m), nil }

// errLoader is a Loader that always fails.
type errLoader struct{ err error }

func (e errLoader) Load() (map[string]any, error) { return nil, e.err }

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	m, err := cfg.Markers()
	if err != nil {
		t.Fatal(err)
	}
	if m != table.DefaultMarkers() {
		t.Errorf("default markers = %q, want %q", m, table.DefaultMarkers())
	}
	if cfg.DebounceDelay() != 200*time.Millisecond {
		t.Errorf("DebounceDelay = %v", cfg.DebounceDelay())
	}
}

func TestLoadFromLayers(t *testing.T) {
	file := mapLoader{
		"ui":     map[string]any{"highlight": "#ff0000", "backend": "ansi"},
		"keys":   map[string]any{"up": []any{"w"}},
		"source": map[string]any{"path": "grid.csv", "debounceMs": int64(50)},
	}
	env := mapLoader{
		"ui":      map[string]any{"backend": "tcell"},
		"logging": map[string]any{"level": "debug"},
	}

	cfg, err := LoadFrom(file, env)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.UI.Backend != "tcell" {
		t.Errorf("env should override file: backend = %q", cfg.UI.Backend)
	}
	if cfg.UI.Highlight != "#ff0000" {
		t.Errorf("highlight = %q", cfg.UI.Highlight)
	}
	if !cfg.UI.ShowHelp {
		t.Error("unset settings keep their defaults")
	}
	if cfg.Source.Path != "grid.csv" || cfg.Source.DebounceMs != 50 {
		t.Errorf("source = %+v", cfg.Source)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q", cfg.Logging.Level)
	}

	m, err := cfg.Markers()
	if err != nil {
		t.Fatal(err)
	}
	if m.Start != "\x1b[38;2;255;0;0m" || m.End != "\x1b[0m" {
		t.Errorf("markers = %q", m)
	}

	km, err := cfg.Keymap()
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := km.Lookup("w"); !ok || b.Action != keymap.ActionMoveUp {
		t.Errorf("configured key not bound: %+v %v", b, ok)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, `
[ui]
highlight = "1;34"
showHelp = false

[keys]
quit = ["x"]
`)

	cfg, err := LoadFrom(loader.NewTOMLLoader(path))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.UI.ShowHelp {
		t.Error("showHelp should be false")
	}
	if got := cfg.Keys["quit"]; len(got) != 1 || got[0] != "x" {
		t.Errorf("keys.quit = %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFrom(loader.NewTOMLLoader(filepath.Join(t.TempDir(), "none.toml")))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.UI.Backend != "tcell" {
		t.Errorf("expected defaults, got %+v", cfg.UI)
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	writeFile(t, path, "[ui\n")

	_, err := LoadFrom(loader.NewTOMLLoader(path))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if pe.Path != path {
		t.Errorf("Path = %q, want %q", pe.Path, path)
	}
}

func TestLoadLoaderError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := LoadFrom(errLoader{boom}); !errors.Is(err, boom) {
		t.Errorf("expected loader error, got %v", err)
	}
}

func TestUnknownSetting(t *testing.T) {
	_, err := FromMap(map[string]any{
		"ui": map[string]any{"theme": "dark"},
	})
	if !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Path != "ui.theme" {
		t.Errorf("expected path ui.theme, got %+v", ve)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
		code   ValidationErrorCode
	}{
		{"bad backend", func(c *Config) { c.UI.Backend = "gtk" }, "ui.backend", ErrCodeInvalidEnum},
		{"bad color", func(c *Config) { c.UI.Highlight = "chartreuse" }, "ui.highlight", ErrCodePatternMismatch},
		{"negative debounce", func(c *Config) { c.Source.DebounceMs = -1 }, "source.debounceMs", ErrCodeOutOfRange},
		{"huge debounce", func(c *Config) { c.Source.DebounceMs = maxDebounceMs + 1 }, "source.debounceMs", ErrCodeOutOfRange},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level", ErrCodeInvalidEnum},
		{"unknown action", func(c *Config) { c.Keys = map[string][]string{"jump": {"g"}} }, "keys", ErrCodeInvalidEnum},
		{"key conflict", func(c *Config) { c.Keys = map[string][]string{"up": {"j"}} }, "keys", ErrCodeInvalidEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected validation failure, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Path != tt.path || ve.Code != tt.code {
				t.Errorf("got %s/%s, want %s/%s", ve.Path, ve.Code, tt.path, tt.code)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.Backend = "gtk"
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined errors, got %T", err)
	}
	if n := len(joined.Unwrap()); n != 2 {
		t.Errorf("expected 2 errors, got %d: %v", n, err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := DefaultPath(); got != filepath.Join("/xdg", "gridview", "config.toml") {
		t.Errorf("DefaultPath = %q", got)
	}
}

func TestValidationErrorCodeString(t *testing.T) {
	if ErrCodeOutOfRange.String() != "out_of_range" {
		t.Errorf("String() = %q", ErrCodeOutOfRange.String())
	}
	if ValidationErrorCode(200).String() != "unknown" {
		t.Error("unknown codes should print as unknown")
	}
}
