package buffer

import (
	"strings"

	"github.com/iw2rmb/markcmd/internal/grapheme"
)

// Slice returns the text spanned by r. Whole intervening lines are joined with
// '\n'.
func (d Document) Slice(r Range) (string, error) {
	r = NormalizeRange(r)
	if err := d.ValidateRange(r); err != nil {
		return "", err
	}
	return textForLinesRange(d.rows(), r), nil
}

// Replace returns a copy of d with r replaced by text, and the range text now
// occupies. The start of that range is r's start; its end is derived from the
// line breaks in text and the length of its last line, clamped to the row.
func (d Document) Replace(r Range, text string) (Document, Range, error) {
	r = NormalizeRange(r)
	if err := d.ValidateRange(r); err != nil {
		return d, Range{}, err
	}

	rows := d.rows()
	startLine, startCol := r.Start.Line, r.Start.Col
	endLine, endCol := r.End.Line, r.End.Col

	prefix := grapheme.Join(rows[startLine][:startCol])
	suffix := grapheme.Join(rows[endLine][endCol:])
	parts := strings.Split(text, "\n")

	// Edited rows are re-split as whole strings so clusters that straddle
	// the splice points (a combining mark after an inserted marker) come out
	// as NewDocument would read them.
	repl := make([][]string, 0, len(parts))
	var end Pos
	if len(parts) == 1 {
		repl = append(repl, grapheme.Split(prefix+parts[0]+suffix))
		end = Pos{Line: startLine, Col: grapheme.Count(prefix + parts[0])}
	} else {
		repl = append(repl, grapheme.Split(prefix+parts[0]))
		for _, p := range parts[1 : len(parts)-1] {
			repl = append(repl, grapheme.Split(p))
		}
		lastPart := parts[len(parts)-1]
		repl = append(repl, grapheme.Split(lastPart+suffix))
		end = Pos{Line: startLine + len(parts) - 1, Col: grapheme.Count(lastPart)}
	}
	// A cluster merged across the end splice shortens the row.
	end.Col = min(end.Col, len(repl[len(repl)-1]))

	// Untouched rows are shared with d; rows are never written in place.
	before := rows[:startLine]
	after := rows[endLine+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)

	return Document{lines: out}, Range{Start: r.Start, End: end}, nil
}

// Apply is Replace for a TextEdit.
func (d Document) Apply(e TextEdit) (Document, Range, error) {
	return d.Replace(e.Range, e.Text)
}

// Expand widens r by n columns on each side. The start moves left on its own
// line and the end moves right on its own line; ok is false when either would
// leave its line.
func (d Document) Expand(r Range, n int) (Range, bool) {
	r = NormalizeRange(r)
	if n < 0 || d.ValidateRange(r) != nil {
		return Range{}, false
	}
	start := Pos{Line: r.Start.Line, Col: r.Start.Col - n}
	end := Pos{Line: r.End.Line, Col: r.End.Col + n}
	if start.Col < 0 || end.Col > d.LineLen(end.Line) {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

func textForLinesRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}

	startLine := r.Start.Line
	endLine := r.End.Line
	startCol := r.Start.Col
	endCol := r.End.Col

	if startLine == endLine {
		return grapheme.Join(lines[startLine][startCol:endCol])
	}

	var sb strings.Builder
	for line := startLine; line <= endLine; line++ {
		if line > startLine {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[line])
		if line == startLine {
			partStart = startCol
		}
		if line == endLine {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[line][partStart:partEnd]))
	}
	return sb.String()
}
