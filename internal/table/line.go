package table

import (
	"fmt"
	"slices"
	"strings"
)

// segmentKind distinguishes plain text from highlight markup.
type segmentKind uint8

const (
	segmentText segmentKind = iota
	segmentStart
	segmentEnd
)

// String returns the string representation of the segment kind.
func (k segmentKind) String() string {
	switch k {
	case segmentText:
		return "text"
	case segmentStart:
		return "start"
	case segmentEnd:
		return "end"
	default:
		return "unknown"
	}
}

// segment is an immutable run of bytes within a line.
type segment struct {
	kind segmentKind
	text string
}

// Line is a rendered line held as a list of segments. Markers are inserted
// and removed as whole segments, so plain text is never spliced through.
// Adjacent text segments are merged after every removal.
type Line struct {
	segs []segment
}

// NewLine creates a line holding plain text s.
func NewLine(s string) *Line {
	l := &Line{}
	if s != "" {
		l.segs = []segment{{kind: segmentText, text: s}}
	}
	return l
}

// String returns the rendered line including markup.
func (l *Line) String() string {
	if len(l.segs) == 1 {
		return l.segs[0].text
	}
	var b strings.Builder
	b.Grow(l.Len())
	for _, seg := range l.segs {
		b.WriteString(seg.text)
	}
	return b.String()
}

// Plain returns the line without markup.
func (l *Line) Plain() string {
	var b strings.Builder
	for _, seg := range l.segs {
		if seg.kind == segmentText {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// Len returns the rendered byte length including markup.
func (l *Line) Len() int {
	n := 0
	for _, seg := range l.segs {
		n += len(seg.text)
	}
	return n
}

// Marked returns true if the line carries any markup.
func (l *Line) Marked() bool {
	for _, seg := range l.segs {
		if seg.kind != segmentText {
			return true
		}
	}
	return false
}

// offsetOf maps a plain byte position to its rendered byte position.
// A marker anchored at plain position a counts toward every p > a.
func (l *Line) offsetOf(p int) int {
	seen, extra := 0, 0
	for _, seg := range l.segs {
		if seg.kind == segmentText {
			seen += len(seg.text)
			continue
		}
		if seen < p {
			extra += len(seg.text)
		}
	}
	return p + extra
}

// anchor is a marker located by its plain byte position.
type anchor struct {
	kind segmentKind
	at   int
}

// anchors lists the markers of the line in order.
func (l *Line) anchors() []anchor {
	var out []anchor
	seen := 0
	for _, seg := range l.segs {
		if seg.kind == segmentText {
			seen += len(seg.text)
			continue
		}
		out = append(out, anchor{kind: seg.kind, at: seen})
	}
	return out
}

// insert places a marker at rendered byte offset at, splitting a text
// segment if needed. Offsets inside an existing marker are rejected.
func (l *Line) insert(at int, kind segmentKind, text string) error {
	mark := segment{kind: kind, text: text}
	pos := 0
	for i, seg := range l.segs {
		if at == pos {
			l.segs = slices.Insert(l.segs, i, mark)
			return nil
		}
		end := pos + len(seg.text)
		if at < end {
			if seg.kind != segmentText {
				return fmt.Errorf("insert %s marker at %d: inside %s marker at %d", kind, at, seg.kind, pos)
			}
			k := at - pos
			l.segs = slices.Replace(l.segs, i, i+1,
				segment{kind: segmentText, text: seg.text[:k]},
				mark,
				segment{kind: segmentText, text: seg.text[k:]},
			)
			return nil
		}
		pos = end
	}
	if at == pos {
		l.segs = append(l.segs, mark)
		return nil
	}
	return fmt.Errorf("insert %s marker at %d: line is %d bytes", kind, at, pos)
}

// remove deletes the marker of the given kind and text starting at rendered
// byte offset at.
func (l *Line) remove(at int, kind segmentKind, text string) error {
	pos := 0
	for i, seg := range l.segs {
		if pos == at && seg.kind == kind && seg.text == text {
			l.segs = slices.Delete(l.segs, i, i+1)
			l.mergeAround(i)
			return nil
		}
		if pos > at {
			break
		}
		pos += len(seg.text)
	}
	return fmt.Errorf("remove %s marker at %d: not found in %q", kind, at, l.String())
}

// mergeAround joins the text segments on either side of index i.
func (l *Line) mergeAround(i int) {
	if i <= 0 || i >= len(l.segs) {
		return
	}
	prev, next := l.segs[i-1], l.segs[i]
	if prev.kind != segmentText || next.kind != segmentText {
		return
	}
	l.segs[i-1] = segment{kind: segmentText, text: prev.text + next.text}
	l.segs = slices.Delete(l.segs, i, i+1)
}
