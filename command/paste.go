package command

import (
	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/embed"
)

// Paste turns a recognized embed paste into its directive, replacing the
// selection (or inserting at the caret) with the caret after it.
//
// When the decision has no match the result is empty and the host follows
// decision.Suppress: skip the paste, or run its own.
func (e Engine) Paste(doc buffer.Document, sel buffer.Selection, p embed.Payload) (EditResult, embed.Decision, error) {
	r := sel.Range()
	if err := doc.ValidateRange(r); err != nil {
		return EditResult{}, embed.Decision{}, err
	}
	d := embed.Decide(p)
	if !d.Matched {
		return EditResult{}, d, nil
	}
	res, err := replaceCaretAfter(doc, r, d.Match.Directive())
	return res, d, err
}
