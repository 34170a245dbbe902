package command

import (
	"strings"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/internal/grapheme"
)

// EditResult is one command's effect: Text replaces Range (in the coordinates
// of the document the command ran on) and Selection is placed afterwards.
type EditResult struct {
	Range     buffer.Range
	Text      string
	Selection buffer.Selection

	// OpenLinkPopover is set by the Link command. Its edit is the identity;
	// the host opens the URL prompt and later calls ConfirmLink.
	OpenLinkPopover bool
}

// Edit returns the text edit part of r.
func (r EditResult) Edit() buffer.TextEdit {
	return buffer.TextEdit{Range: r.Range, Text: r.Text}
}

// ApplyTo replaces Range in doc and checks that Selection fits the result.
func (r EditResult) ApplyTo(doc buffer.Document) (buffer.Document, error) {
	next, _, err := doc.Replace(r.Range, r.Text)
	if err != nil {
		return doc, err
	}
	if err := next.ValidateRange(r.Selection.Range()); err != nil {
		return doc, err
	}
	return next, nil
}

// replaceSelecting replaces r with text and selects the inserted text.
func replaceSelecting(doc buffer.Document, r buffer.Range, text string) (EditResult, error) {
	_, after, err := doc.Replace(r, text)
	if err != nil {
		return EditResult{}, err
	}
	return EditResult{Range: r, Text: text, Selection: buffer.Select(after)}, nil
}

// replaceCaretAfter replaces r with text and leaves a caret after it.
func replaceCaretAfter(doc buffer.Document, r buffer.Range, text string) (EditResult, error) {
	_, after, err := doc.Replace(r, text)
	if err != nil {
		return EditResult{}, err
	}
	return EditResult{Range: r, Text: text, Selection: buffer.Caret(after.End)}, nil
}

// insertPlaceholder replaces r with prefix+placeholder+suffix and selects
// just the placeholder.
func insertPlaceholder(doc buffer.Document, r buffer.Range, prefix, placeholder, suffix string) (EditResult, error) {
	text := prefix + placeholder + suffix
	if _, _, err := doc.Replace(r, text); err != nil {
		return EditResult{}, err
	}
	start := advance(r.Start, prefix)
	end := advance(start, placeholder)
	return EditResult{Range: r, Text: text, Selection: buffer.Selection{Anchor: start, Head: end}}, nil
}

// advance returns the position reached after inserting text at p.
func advance(p buffer.Pos, text string) buffer.Pos {
	i := strings.LastIndexByte(text, '\n')
	if i < 0 {
		return buffer.Pos{Line: p.Line, Col: p.Col + grapheme.Count(text)}
	}
	return buffer.Pos{
		Line: p.Line + strings.Count(text, "\n"),
		Col:  grapheme.Count(text[i+1:]),
	}
}
