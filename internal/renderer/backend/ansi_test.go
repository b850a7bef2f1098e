package backend

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dshills/gridview/internal/renderer/core"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []Event
		consumed int
	}{
		{"printable", "hj", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'h'},
			{Type: EventKey, Key: KeyRune, Rune: 'j'},
		}, 2},
		{"arrows", "\x1b[A\x1b[B\x1bOC\x1b[D", []Event{
			{Type: EventKey, Key: KeyUp},
			{Type: EventKey, Key: KeyDown},
			{Type: EventKey, Key: KeyRight},
			{Type: EventKey, Key: KeyLeft},
		}, 12},
		{"enter and ctrl-c", "\r\x03", []Event{
			{Type: EventKey, Key: KeyEnter},
			{Type: EventKey, Key: KeyCtrlC},
		}, 2},
		{"tilde keys", "\x1b[5~\x1b[3~", []Event{
			{Type: EventKey, Key: KeyPageUp},
			{Type: EventKey, Key: KeyDelete},
		}, 8},
		{"alt rune", "\x1bx", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'x', Mod: ModAlt},
		}, 2},
		{"utf8", "é", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'é'},
		}, 2},
		{"incomplete csi", "a\x1b[", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'a'},
		}, 1},
		{"lone esc waits", "\x1b", nil, 0},
		{"unknown csi swallowed", "\x1b[99zq", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'q'},
		}, 6},
		{"partial utf8", "\xc3", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed := decodeKeys([]byte(tt.input))
			if consumed != tt.consumed {
				t.Errorf("consumed = %d, want %d", consumed, tt.consumed)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %+v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRenderFrame(t *testing.T) {
	out := renderFrame(testFrame())

	if !strings.HasPrefix(out, core.ClearScreen) {
		t.Errorf("frame should start by clearing the screen: %q", out)
	}
	body := strings.Join(testFrame().Body, "\r\n")
	if !strings.Contains(out, body) {
		t.Errorf("body lines should be written verbatim with CRLF: %q", out)
	}
	if !strings.Contains(out, "Selected: 1") || !strings.Contains(out, "q to quit") {
		t.Errorf("footer text missing: %q", out)
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Errorf("bare LF in raw-mode output: %q", out)
	}
}

func TestANSIBackendRoundTrip(t *testing.T) {
	pr, pw := io.Pipe()
	var out bytes.Buffer

	a := NewANSI(pr, &out)
	if err := a.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := a.Size()
	if w != defaultWidth || h != defaultHeight {
		t.Errorf("Size = (%d, %d), want fallback", w, h)
	}

	go func() { _, _ = pw.Write([]byte("\x1b[Bq")) }()

	first := a.PollEvent()
	if first.Key != KeyDown {
		t.Errorf("first event = %+v, want down", first)
	}
	second := a.PollEvent()
	if second.Key != KeyRune || second.Rune != 'q' {
		t.Errorf("second event = %+v, want q", second)
	}

	a.Draw(core.Frame{Body: []string{"| 1 |"}})

	a.PostEvent(Event{Type: EventInterrupt, Data: "reload"})
	if ev := a.PollEvent(); ev.Type != EventInterrupt || ev.Data != "reload" {
		t.Errorf("posted event = %+v", ev)
	}

	pw.Close()
	a.Shutdown()

	done := make(chan Event)
	go func() { done <- a.PollEvent() }()
	select {
	case ev := <-done:
		if ev.Type != EventNone {
			t.Errorf("expected EventNone after Shutdown, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent blocked after Shutdown")
	}

	s := out.String()
	if !strings.Contains(s, enterAltScreen) || !strings.Contains(s, exitAltScreen) {
		t.Errorf("alternate screen not entered and left: %q", s)
	}
	if !strings.Contains(s, "| 1 |") {
		t.Errorf("drawn frame missing: %q", s)
	}
}

func TestANSIInputEOF(t *testing.T) {
	var out bytes.Buffer
	a := NewANSI(strings.NewReader("l"), &out)
	if err := a.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer a.Shutdown()

	events := make(chan Event, 2)
	go func() {
		events <- a.PollEvent()
		events <- a.PollEvent()
	}()

	want := []Event{
		{Type: EventKey, Key: KeyRune, Rune: 'l'},
		{Type: EventNone},
	}
	for i, w := range want {
		select {
		case ev := <-events:
			if ev.Type != w.Type || ev.Key != w.Key || ev.Rune != w.Rune {
				t.Errorf("event %d = %+v, want %+v", i, ev, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("PollEvent blocked waiting for event %d after input ended", i)
		}
	}
}
