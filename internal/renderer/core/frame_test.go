package core

import "testing"

func TestFrameEquals(t *testing.T) {
	a := Frame{
		Body:   []string{"+---+", "| 1 |", "+---+"},
		Footer: []FooterLine{{Text: "Selected: 1", Kind: FooterEmphasis}},
	}
	b := Frame{
		Body:   []string{"+---+", "| 1 |", "+---+"},
		Footer: []FooterLine{{Text: "Selected: 1", Kind: FooterEmphasis}},
	}

	if !a.Equals(b) {
		t.Error("identical frames should be equal")
	}

	b.Footer[0].Kind = FooterError
	if a.Equals(b) {
		t.Error("footer kind should matter")
	}

	if a.Equals(Frame{Body: a.Body}) {
		t.Error("missing footer should differ")
	}
}
