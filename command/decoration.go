package command

import (
	"strings"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/internal/grapheme"
)

// decoration is a symmetric inline marker pair.
type decoration struct {
	marker      string
	width       int // marker length in graphemes
	placeholder string
}

func newDecoration(marker, placeholder string) decoration {
	return decoration{marker: marker, width: grapheme.Count(marker), placeholder: placeholder}
}

func (e Engine) decorationFor(cmd Command) decoration {
	switch cmd {
	case Bold:
		return newDecoration("**", e.ph.Bold)
	case Italic:
		return newDecoration("_", e.ph.Italic)
	default:
		return newDecoration("~~", e.ph.Strike)
	}
}

// strip removes one marker from each end of s when s is wrapped.
func (d decoration) strip(s string) (string, bool) {
	if len(s) < 2*len(d.marker) || !strings.HasPrefix(s, d.marker) || !strings.HasSuffix(s, d.marker) {
		return "", false
	}
	return s[len(d.marker) : len(s)-len(d.marker)], true
}

// toggleDecoration flips d on the selection:
//   - caret: insert marker+placeholder+marker, placeholder selected
//   - placeholder fenced just outside the selection: drop the fences
//   - selection wrapped by the markers: strip them, inner text selected
//   - selection fenced just outside: drop the fences, text stays selected
//   - anything else: wrap, wrapped text selected
//
// An exact placeholder selection checks its outside fences first, so a
// second toggle undoes an empty toggle even though the word could also be
// literal text.
func toggleDecoration(doc buffer.Document, sel buffer.Selection, d decoration) (EditResult, error) {
	r := sel.Range()
	selected, err := doc.Slice(r)
	if err != nil {
		return EditResult{}, err
	}

	if selected == "" {
		return insertPlaceholder(doc, r, d.marker, d.placeholder, d.marker)
	}

	isPlaceholder := selected == d.placeholder
	if isPlaceholder {
		if res, ok, err := unwrapOutside(doc, r, selected, d); ok || err != nil {
			return res, err
		}
	}
	if inner, ok := d.strip(selected); ok {
		return replaceSelecting(doc, r, inner)
	}
	if !isPlaceholder {
		if res, ok, err := unwrapOutside(doc, r, selected, d); ok || err != nil {
			return res, err
		}
	}
	return replaceSelecting(doc, r, d.marker+selected+d.marker)
}

// unwrapOutside removes markers sitting immediately before and after r. The
// look-around is a bounded slice on each side compared literally.
func unwrapOutside(doc buffer.Document, r buffer.Range, selected string, d decoration) (EditResult, bool, error) {
	outer, ok := doc.Expand(r, d.width)
	if !ok {
		return EditResult{}, false, nil
	}
	left, err := doc.Slice(buffer.Range{Start: outer.Start, End: r.Start})
	if err != nil {
		return EditResult{}, false, err
	}
	right, err := doc.Slice(buffer.Range{Start: r.End, End: outer.End})
	if err != nil {
		return EditResult{}, false, err
	}
	if left != d.marker || right != d.marker {
		return EditResult{}, false, nil
	}
	res, err := replaceSelecting(doc, outer, selected)
	return res, true, err
}
