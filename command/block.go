package command

import (
	"strings"

	"github.com/iw2rmb/markcmd/buffer"
)

const (
	quotePrefix = "> "
	fence       = "```"
)

func lineRange(doc buffer.Document, line int) buffer.Range {
	return buffer.Range{
		Start: buffer.Pos{Line: line},
		End:   buffer.Pos{Line: line, Col: doc.LineLen(line)},
	}
}

// stripHeading drops a leading run of one to six '#' followed by a space.
func stripHeading(line string) string {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(line) || line[n] != ' ' {
		return line
	}
	return line[n+1:]
}

// headingTransform rewrites the cursor line as a level-n heading and puts
// the caret at the end of the line.
func headingTransform(doc buffer.Document, sel buffer.Selection, level int) (EditResult, error) {
	line := sel.Head.Line
	text := strings.Repeat("#", level) + " " + stripHeading(doc.Line(line))
	return replaceCaretAfter(doc, lineRange(doc, line), text)
}

// toggleBlockquote adds or removes "> " on the cursor line. The caret keeps
// its place relative to the line's text.
func toggleBlockquote(doc buffer.Document, sel buffer.Selection) (EditResult, error) {
	head := sel.Head
	r := lineRange(doc, head.Line)
	line := doc.Line(head.Line)

	text := quotePrefix + line
	col := head.Col + 2
	if rest, ok := strings.CutPrefix(line, quotePrefix); ok {
		text = rest
		col = max(head.Col-2, 0)
	}

	if _, _, err := doc.Replace(r, text); err != nil {
		return EditResult{}, err
	}
	return EditResult{
		Range:     r,
		Text:      text,
		Selection: buffer.Caret(buffer.Pos{Line: head.Line, Col: col}),
	}, nil
}

// codeBlock fences the selection, or inserts a fenced placeholder line and
// selects it.
func codeBlock(doc buffer.Document, sel buffer.Selection, placeholder string) (EditResult, error) {
	r := sel.Range()
	selected, err := doc.Slice(r)
	if err != nil {
		return EditResult{}, err
	}
	if selected == "" {
		return insertPlaceholder(doc, r, fence+"\n", placeholder, "\n"+fence)
	}
	return replaceCaretAfter(doc, r, fence+"\n"+selected+"\n"+fence)
}
