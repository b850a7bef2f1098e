package table

import (
	"reflect"
	"testing"
)

func TestLine_InsertRemove(t *testing.T) {
	l := NewLine("| 1 | 2 |")

	if err := l.insert(4, segmentStart, "<"); err != nil {
		t.Fatalf("insert start: %v", err)
	}
	if err := l.insert(10, segmentEnd, ">"); err != nil {
		t.Fatalf("insert end: %v", err)
	}
	if got, want := l.String(), "| 1 <| 2 |>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := l.Plain(), "| 1 | 2 |"; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
	if got := l.Len(); got != 11 {
		t.Errorf("Len() = %d, want 11", got)
	}

	if err := l.remove(10, segmentEnd, ">"); err != nil {
		t.Fatalf("remove end: %v", err)
	}
	if err := l.remove(4, segmentStart, "<"); err != nil {
		t.Fatalf("remove start: %v", err)
	}
	if got, want := l.String(), "| 1 | 2 |"; got != want {
		t.Errorf("String() after remove = %q, want %q", got, want)
	}
	if len(l.segs) != 1 {
		t.Errorf("segments after remove = %d, want 1 merged segment", len(l.segs))
	}
	if l.Marked() {
		t.Error("Marked() = true after removing all markers")
	}
}

func TestLine_InsertAtEdges(t *testing.T) {
	l := NewLine("abc")

	if err := l.insert(0, segmentStart, "["); err != nil {
		t.Fatalf("insert at 0: %v", err)
	}
	if err := l.insert(4, segmentEnd, "]"); err != nil {
		t.Fatalf("insert at end: %v", err)
	}
	if got := l.String(); got != "[abc]" {
		t.Errorf("String() = %q, want %q", got, "[abc]")
	}
}

func TestLine_InsertInsideMarkerFails(t *testing.T) {
	l := NewLine("abc")
	if err := l.insert(1, segmentStart, "<<<"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := l.insert(2, segmentEnd, ">"); err == nil {
		t.Error("insert inside marker succeeded, want error")
	}
	if err := l.insert(99, segmentEnd, ">"); err == nil {
		t.Error("insert past end succeeded, want error")
	}
}

func TestLine_RemoveMissingFails(t *testing.T) {
	l := NewLine("abc")
	if err := l.insert(1, segmentStart, "<"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	tests := []struct {
		name string
		at   int
		kind segmentKind
		text string
	}{
		{"wrong offset", 2, segmentStart, "<"},
		{"wrong kind", 1, segmentEnd, "<"},
		{"wrong text", 1, segmentStart, ">"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.remove(tt.at, tt.kind, tt.text); err == nil {
				t.Error("remove succeeded, want error")
			}
		})
	}
}

func TestLine_OffsetOf(t *testing.T) {
	l := NewLine("+---+---+")
	if err := l.insert(0, segmentStart, "SS"); err != nil {
		t.Fatal(err)
	}
	if err := l.insert(2+4+1, segmentEnd, "E"); err != nil {
		t.Fatal(err)
	}
	// SS+---+E---+

	tests := []struct {
		plain, want int
	}{
		{0, 0},
		{4, 6},
		{5, 7},
		{8, 11},
	}
	for _, tt := range tests {
		if got := l.offsetOf(tt.plain); got != tt.want {
			t.Errorf("offsetOf(%d) = %d, want %d", tt.plain, got, tt.want)
		}
	}

	want := []anchor{{kind: segmentStart, at: 0}, {kind: segmentEnd, at: 5}}
	if got := l.anchors(); !reflect.DeepEqual(got, want) {
		t.Errorf("anchors() = %+v, want %+v", got, want)
	}
}

func TestNewLine_Empty(t *testing.T) {
	l := NewLine("")
	if l.String() != "" || l.Len() != 0 {
		t.Errorf("empty line = %q (len %d)", l.String(), l.Len())
	}
	if err := l.insert(0, segmentStart, "x"); err != nil {
		t.Errorf("insert into empty line: %v", err)
	}
}
