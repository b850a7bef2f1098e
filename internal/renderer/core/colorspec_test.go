package core

import (
	"errors"
	"testing"
)

func TestParseColorSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    string
		wantErr bool
	}{
		{"green", "32", false},
		{"  Green ", "32", false},
		{"bright-cyan", "96", false},
		{"grey", "90", false},
		{"#ff8040", "38;2;255;128;64", false},
		{"#FFF", "38;2;255;255;255", false},
		{"1;32", "1;32", false},
		{"7", "7", false},
		{"", "", true},
		{"chartreuse", "", true},
		{"#GGG", "", true},
		{"1;;2", "", true},
		{"300", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseColorSpec(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColorSpec(%q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseColorSpecRoundTripsThroughDecoder(t *testing.T) {
	params, err := ParseColorSpec("#102030")
	if err != nil {
		t.Fatal(err)
	}

	cells := DecodeANSI(SGR(params)+"x"+SGRReset, DefaultStyle())
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if !cells[0].Style.Foreground.Equals(ColorFromRGB(0x10, 0x20, 0x30)) {
		t.Errorf("foreground = %v", cells[0].Style.Foreground)
	}
}
