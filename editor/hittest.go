package editor

import (
	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/internal/grapheme"
)

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the visible content region.
// Gutter clicks map to column 0; clicks past the end of a line map to its
// end, and a click inside a wide grapheme lands before it.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	doc := m.buf.Document()
	row := clampInt(m.viewport.YOffset+y, 0, doc.LineCount()-1)

	x -= m.gutterWidth()
	if x <= 0 {
		return buffer.Pos{Line: row}
	}

	cell := 0
	for i, c := range grapheme.Split(doc.Line(row)) {
		w := cellWidth(c)
		if x < cell+w {
			return buffer.Pos{Line: row, Col: i}
		}
		cell += w
	}
	return buffer.Pos{Line: row, Col: doc.LineLen(row)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
