package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[ui]
highlight = "#00ff88"
showHelp = true

[keys]
up = ["k", "up"]

[source]
debounceMs = 250
`)

	loader := NewTOMLLoaderWithFS(memfs, "/config.toml")
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ui, ok := config["ui"].(map[string]any)
	if !ok {
		t.Fatal("expected ui to be a map")
	}
	if ui["highlight"] != "#00ff88" {
		t.Errorf("highlight = %v", ui["highlight"])
	}
	if ui["showHelp"] != true {
		t.Errorf("showHelp = %v", ui["showHelp"])
	}

	if val, ok := getByPath(config, "source.debounceMs"); !ok || val != int64(250) {
		t.Errorf("debounceMs = %v (%T), want 250", val, val)
	}

	up, ok := getByPath(config, "keys.up")
	if !ok {
		t.Fatal("keys.up missing")
	}
	if list, ok := up.([]any); !ok || len(list) != 2 || list[0] != "k" {
		t.Errorf("keys.up = %#v", up)
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	memfs := NewMemFS()
	loader := NewTOMLLoaderWithFS(memfs, "/nonexistent.toml")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_EmptyPath(t *testing.T) {
	loader := NewTOMLLoaderWithFS(NewMemFS(), "")

	config, err := loader.Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
	if loader.Path() != "" {
		t.Errorf("Path() = %q", loader.Path())
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", `
[ui
highlight = "green"
`)

	loader := NewTOMLLoaderWithFS(memfs, "/invalid.toml")
	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line < 2 {
		t.Errorf("Line = %d, want the position of the broken header", parseErr.Line)
	}
	if !strings.Contains(parseErr.Error(), "/invalid.toml at line") {
		t.Errorf("Error() = %q", parseErr.Error())
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	loader := &TOMLLoader{}

	content := `
backend = "ansi"
debounceMs = 100
`
	config, err := loader.LoadFromReader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if config["backend"] != "ansi" {
		t.Errorf("backend = %v, want 'ansi'", config["backend"])
	}
	if config["debounceMs"] != int64(100) {
		t.Errorf("debounceMs = %v, want 100", config["debounceMs"])
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a", Message: "bad"}, "parse error in a: bad"},
		{&ParseError{Path: "a", Line: 3, Message: "bad"}, "parse error in a at line 3: bad"},
		{&ParseError{Path: "a", Line: 3, Column: 7, Message: "bad"}, "parse error in a at line 3, column 7: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	inner := errors.New("inner")
	if !errors.Is(&ParseError{Err: inner}, inner) {
		t.Error("ParseError should unwrap to its cause")
	}
}

// getByPath reads a value from a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := data

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		current, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}
