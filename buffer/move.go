package buffer

import "unicode"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // keep the anchor and move only the head
}

func (b *Buffer) Move(m Move) {
	head := b.doc.Clamp(b.moveCursor(b.sel.Head, m))
	anchor := head
	if m.Extend {
		anchor = b.sel.Anchor
	}
	b.setSelection(Selection{Anchor: anchor, Head: head})
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	default:
		return p
	}
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Col
	last := b.doc.LineCount() - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Line: line, Col: col - 1}
		}
		if line == 0 {
			return p
		}
		return Pos{Line: line - 1, Col: b.doc.LineLen(line - 1)}
	case DirRight:
		if col < b.doc.LineLen(line) {
			return Pos{Line: line, Col: col + 1}
		}
		if line == last {
			return p
		}
		return Pos{Line: line + 1, Col: 0}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.doc.rows()[p.Line]

	switch dir {
	case DirLeft:
		return Pos{Line: p.Line, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		return Pos{Line: p.Line, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	line, col := p.Line, p.Col
	last := b.doc.LineCount() - 1

	switch dir {
	case DirHome:
		return Pos{Line: line, Col: 0}
	case DirEnd:
		return Pos{Line: line, Col: b.doc.LineLen(line)}
	case DirUp:
		if line == 0 {
			return p
		}
		return Pos{Line: line - 1, Col: min(col, b.doc.LineLen(line-1))}
	case DirDown:
		if line == last {
			return p
		}
		return Pos{Line: line + 1, Col: min(col, b.doc.LineLen(line+1))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return b.doc.End()
	default:
		return p
	}
}

// Word boundaries skip whitespace, then non-whitespace, and never cross a
// line break.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && isSpace(line[i-1]) {
		i--
	}
	for i > 0 && !isSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	return i
}

func isSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
