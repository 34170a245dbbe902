package command

import "github.com/iw2rmb/markcmd/buffer"

// openLink is the Link command: no mutation yet, just a request for the URL
// prompt. The edit rewrites the selection with itself.
func openLink(doc buffer.Document, sel buffer.Selection) (EditResult, error) {
	r := sel.Range()
	selected, err := doc.Slice(r)
	if err != nil {
		return EditResult{}, err
	}
	return EditResult{Range: r, Text: selected, Selection: sel, OpenLinkPopover: true}, nil
}

// ConfirmLink inserts a markdown link to url. With no selection it inserts
// the link placeholder and selects it for renaming; otherwise the selection
// becomes the link text and the caret lands after the closing paren.
//
// Cancelling the prompt needs no call: the host drops its pending state.
func (e Engine) ConfirmLink(doc buffer.Document, sel buffer.Selection, url string) (EditResult, error) {
	r := sel.Range()
	selected, err := doc.Slice(r)
	if err != nil {
		return EditResult{}, err
	}
	if selected == "" {
		return insertPlaceholder(doc, r, "[", e.ph.Link, "]("+url+")")
	}
	return replaceCaretAfter(doc, r, "["+selected+"]("+url+")")
}
