package core

import (
	"testing"
)

func TestDecodeANSIPlain(t *testing.T) {
	cells := DecodeANSI("+---+", DefaultStyle())

	if got := StringFromCells(cells); got != "+---+" {
		t.Errorf("text = %q", got)
	}
	for i, c := range cells {
		if !c.Style.IsDefault() {
			t.Errorf("cell %d should have default style", i)
		}
	}
}

func TestDecodeANSIHighlight(t *testing.T) {
	line := "| 1 \x1b[32m| 2 |\x1b[0m 3 |"
	cells := DecodeANSI(line, DefaultStyle())

	if got := StringFromCells(cells); got != "| 1 | 2 | 3 |" {
		t.Fatalf("text = %q", got)
	}

	green := ColorFromIndex(2)
	for i, c := range cells {
		inside := i >= 4 && i <= 8
		if inside && !c.Style.Foreground.Equals(green) {
			t.Errorf("cell %d (%q) should be green, got %v", i, c.Rune, c.Style.Foreground)
		}
		if !inside && !c.Style.IsDefault() {
			t.Errorf("cell %d (%q) should be default, got %+v", i, c.Rune, c.Style)
		}
	}
}

func TestDecodeANSIDropsOtherSequences(t *testing.T) {
	cells := DecodeANSI("a\x1b[2Kb\x1b[1;1Hc", DefaultStyle())
	if got := StringFromCells(cells); got != "abc" {
		t.Errorf("text = %q, want abc", got)
	}
}

func TestDecodeANSITruncated(t *testing.T) {
	cells := DecodeANSI("ab\x1b[3", DefaultStyle())
	if got := StringFromCells(cells); got != "ab" {
		t.Errorf("text = %q, want ab", got)
	}
}

func TestStripANSI(t *testing.T) {
	if got := StripANSI("\x1b[1;32mhi\x1b[0m"); got != "hi" {
		t.Errorf("StripANSI = %q", got)
	}
}

func TestApplySGR(t *testing.T) {
	base := DefaultStyle()

	tests := []struct {
		name   string
		params string
		check  func(Style) bool
	}{
		{"empty resets", "", func(s Style) bool { return s.IsDefault() }},
		{"bold", "1", func(s Style) bool { return s.Attributes.Has(AttrBold) }},
		{"reverse", "7", func(s Style) bool { return s.Attributes.Has(AttrReverse) }},
		{"basic fg", "31", func(s Style) bool { return s.Foreground.Equals(ColorFromIndex(1)) }},
		{"bright fg", "92", func(s Style) bool { return s.Foreground.Equals(ColorFromIndex(10)) }},
		{"basic bg", "44", func(s Style) bool { return s.Background.Equals(ColorFromIndex(4)) }},
		{"palette fg", "38;5;200", func(s Style) bool { return s.Foreground.Equals(ColorFromIndex(200)) }},
		{"true color fg", "38;2;1;2;3", func(s Style) bool { return s.Foreground.Equals(ColorFromRGB(1, 2, 3)) }},
		{"true color bg then bold", "48;2;9;8;7;1", func(s Style) bool {
			return s.Background.Equals(ColorFromRGB(9, 8, 7)) && s.Attributes.Has(AttrBold)
		}},
		{"bold then reset", "1;0", func(s Style) bool { return s.IsDefault() }},
		{"default fg", "32;39", func(s Style) bool { return s.Foreground.IsDefault() }},
		{"malformed extended", "38;5", func(s Style) bool { return s.Foreground.IsDefault() }},
		{"garbage ignored", "x;4", func(s Style) bool { return s.Attributes.Has(AttrUnderline) }},
		{"bold cleared", "22", func(s Style) bool { return !s.Attributes.Has(AttrBold) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplySGR(base.Bold(), base, tt.params)
			if !tt.check(got) {
				t.Errorf("ApplySGR(%q) = %+v", tt.params, got)
			}
		})
	}
}

func TestSGR(t *testing.T) {
	if got := SGR("1;32"); got != "\x1b[1;32m" {
		t.Errorf("SGR = %q", got)
	}
}
