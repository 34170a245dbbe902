package buffer

// Pos points into the document by (line, col) in grapheme clusters.
// Line and Col are 0-based.
type Pos struct {
	Line int
	Col  int
}

// Range is a half-open span in document coordinates: [Start, End).
// Start <= End in document order once normalized.
type Range struct {
	Start Pos
	End   Pos
}

// Selection is the host's raw selection. Anchor may sit after Head; use Range
// to get document order.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// TextEdit replaces the text in Range with Text (which may contain '\n').
type TextEdit struct {
	Range Range
	Text  string
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// SingleLine reports whether the normalized range starts and ends on one line.
func (r Range) SingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Caret returns a collapsed selection at p.
func Caret(p Pos) Selection {
	return Selection{Anchor: p, Head: p}
}

// Select returns a forward selection covering r.
func Select(r Range) Selection {
	r = NormalizeRange(r)
	return Selection{Anchor: r.Start, Head: r.End}
}

// Range returns the selection in document order.
func (s Selection) Range() Range {
	return NormalizeRange(Range{Start: s.Anchor, End: s.Head})
}

// IsCaret reports whether the selection covers no text.
func (s Selection) IsCaret() bool {
	return s.Anchor == s.Head
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
