package buffer

// Buffer is a host editing session: one Document plus the caret/selection.
//
// A Buffer has a single writer. Commands read a snapshot with Document and
// Selection, and the result is committed back with Apply.
type Buffer struct {
	doc     Document
	sel     Selection
	version uint64

	lastChange    Change
	hasLastChange bool
}

func New(text string) *Buffer {
	return &Buffer{doc: NewDocument(text)}
}

func (b *Buffer) Text() string { return b.doc.Text() }

func (b *Buffer) Document() Document { return b.doc }

func (b *Buffer) Version() uint64 { return b.version }

// Cursor is the selection head.
func (b *Buffer) Cursor() Pos { return b.sel.Head }

// Selection returns the raw anchor/head pair, preserving direction.
func (b *Buffer) Selection() Selection { return b.sel }

// SelectedRange returns the normalized selection and whether it covers text.
func (b *Buffer) SelectedRange() (Range, bool) {
	r := b.sel.Range()
	return r, !r.IsEmpty()
}

func (b *Buffer) SetCursor(p Pos) {
	b.setSelection(Caret(b.doc.Clamp(p)))
}

func (b *Buffer) SetSelection(s Selection) {
	b.setSelection(Selection{Anchor: b.doc.Clamp(s.Anchor), Head: b.doc.Clamp(s.Head)})
}

func (b *Buffer) setSelection(next Selection) {
	if next == b.sel {
		return
	}
	b.sel = next
	b.version++
}

// Apply replaces e.Range with e.Text and then places the selection at next,
// which is interpreted against the edited document. Nothing changes when
// either step fails validation.
func (b *Buffer) Apply(e TextEdit, next Selection) error {
	deleted, err := b.doc.Slice(e.Range)
	if err != nil {
		return err
	}
	doc, after, err := b.doc.Replace(e.Range, e.Text)
	if err != nil {
		return err
	}
	if err := doc.ValidateRange(Range{Start: next.Anchor, End: next.Head}); err != nil {
		return err
	}

	change := b.beginChange()
	b.doc = doc
	b.sel = next
	b.version++
	change.edit = AppliedEdit{
		RangeBefore: NormalizeRange(e.Range),
		RangeAfter:  after,
		InsertText:  e.Text,
		DeletedText: deleted,
	}
	b.commitChange(change)
	return nil
}

// InsertText inserts s at the cursor, or replaces the active selection, and
// leaves a caret after the inserted text.
func (b *Buffer) InsertText(s string) {
	r := b.sel.Range()
	if r.IsEmpty() && s == "" {
		return
	}
	b.replace(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.SelectedRange(); ok {
		b.replace(r, "")
		return
	}

	p := b.sel.Head
	switch {
	case p.Col > 0:
		b.replace(Range{Start: Pos{Line: p.Line, Col: p.Col - 1}, End: p}, "")
	case p.Line > 0:
		// Join with previous line.
		prev := p.Line - 1
		b.replace(Range{Start: Pos{Line: prev, Col: b.doc.LineLen(prev)}, End: p}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.SelectedRange(); ok {
		b.replace(r, "")
		return
	}

	p := b.sel.Head
	switch {
	case p.Col < b.doc.LineLen(p.Line):
		b.replace(Range{Start: p, End: Pos{Line: p.Line, Col: p.Col + 1}}, "")
	case p.Line < b.doc.LineCount()-1:
		// Join with next line.
		b.replace(Range{Start: p, End: Pos{Line: p.Line + 1}}, "")
	}
}

func (b *Buffer) replace(r Range, s string) {
	doc, after, err := b.doc.Replace(r, s)
	if err != nil {
		return
	}
	deleted, _ := b.doc.Slice(r)

	change := b.beginChange()
	b.doc = doc
	b.sel = Caret(after.End)
	b.version++
	change.edit = AppliedEdit{RangeBefore: r, RangeAfter: after, InsertText: s, DeletedText: deleted}
	b.commitChange(change)
}
