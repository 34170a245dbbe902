package buffer

import (
	"strings"

	"github.com/iw2rmb/markcmd/internal/grapheme"
)

// Document is an ordered sequence of lines, each split into grapheme
// clusters. The zero value is a document with one empty line.
type Document struct {
	lines [][]string
}

// NewDocument splits text on '\n' into lines.
func NewDocument(text string) Document {
	return Document{lines: splitLines(text)}
}

// FromLines builds a document from already separated lines.
func FromLines(lines ...string) Document {
	if len(lines) == 0 {
		return Document{}
	}
	out := make([][]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, grapheme.Split(l))
	}
	return Document{lines: out}
}

func (d Document) rows() [][]string {
	if len(d.lines) == 0 {
		return [][]string{nil}
	}
	return d.lines
}

// LineCount is always at least 1.
func (d Document) LineCount() int { return len(d.rows()) }

// Line returns the text of line i, or "" when i is out of range.
func (d Document) Line(i int) string {
	rows := d.rows()
	if i < 0 || i >= len(rows) {
		return ""
	}
	return grapheme.Join(rows[i])
}

// LineLen returns the grapheme length of line i, or 0 when i is out of range.
func (d Document) LineLen(i int) int {
	rows := d.rows()
	if i < 0 || i >= len(rows) {
		return 0
	}
	return len(rows[i])
}

// Lines returns a copy of every line's text.
func (d Document) Lines() []string {
	rows := d.rows()
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = grapheme.Join(r)
	}
	return out
}

func (d Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

// End is the position after the last grapheme of the last line.
func (d Document) End() Pos {
	last := d.LineCount() - 1
	return Pos{Line: last, Col: d.LineLen(last)}
}

// Validate fails with a *RangeError when p is outside the document.
func (d Document) Validate(p Pos) error {
	n := d.LineCount()
	if p.Line < 0 || p.Line >= n {
		return &RangeError{Pos: p, LineCount: n}
	}
	l := d.LineLen(p.Line)
	if p.Col < 0 || p.Col > l {
		return &RangeError{Pos: p, LineCount: n, LineLen: l}
	}
	return nil
}

// ValidateRange validates both ends of r.
func (d Document) ValidateRange(r Range) error {
	if err := d.Validate(r.Start); err != nil {
		return err
	}
	return d.Validate(r.End)
}

// Clamp moves p into document bounds. Hosts use it for caret movement; the
// command engine validates instead.
//
// The returned Pos always satisfies:
// - 0 <= Line < LineCount()
// - 0 <= Col <= LineLen(Line)
func (d Document) Clamp(p Pos) Pos {
	line := clampInt(p.Line, 0, d.LineCount()-1)
	return Pos{Line: line, Col: clampInt(p.Col, 0, d.LineLen(line))}
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
