package command

import (
	"strings"

	"github.com/iw2rmb/markcmd/buffer"
)

// InsertImage replaces the selection with an image reference to url, as the
// upload path does once the file is stored. The caret lands after it.
func (e Engine) InsertImage(doc buffer.Document, sel buffer.Selection, url string) (EditResult, error) {
	r := sel.Range()
	if err := doc.ValidateRange(r); err != nil {
		return EditResult{}, err
	}
	return replaceCaretAfter(doc, r, "![]("+encodeURI(url)+")")
}

// Characters left alone when escaping a whole URI: unreserved marks plus the
// reserved set, so an already well-formed URL passes through unchanged.
const uriSafe = "-_.!~*'();/?:@&=+$,#"

func encodeURI(s string) string {
	const hex = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.IndexByte(uriSafe, c) >= 0 {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&15])
	}
	return sb.String()
}
