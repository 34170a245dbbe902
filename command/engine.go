package command

import (
	"fmt"

	"github.com/iw2rmb/markcmd/buffer"
)

type Options struct {
	// Placeholders overrides the inserted words; empty fields fall back to
	// the DefaultLocale set.
	Placeholders Placeholders
}

// Engine runs formatting commands. It keeps no state between calls and is
// safe to share; callers must still serialize commits to one buffer.
type Engine struct {
	ph Placeholders
}

func New(opt Options) Engine {
	def, _ := PlaceholdersFor(DefaultLocale)
	return Engine{ph: opt.Placeholders.Merge(def)}
}

// Placeholders returns the resolved placeholder words.
func (e Engine) Placeholders() Placeholders { return e.ph }

// Apply runs cmd against doc and sel.
func (e Engine) Apply(doc buffer.Document, sel buffer.Selection, cmd Command) (EditResult, error) {
	if err := doc.ValidateRange(sel.Range()); err != nil {
		return EditResult{}, err
	}

	switch cmd {
	case Heading1, Heading2, Heading3, Heading4:
		level, _ := cmd.headingLevel()
		return headingTransform(doc, sel, level)
	case Bold, Italic, Strike:
		return toggleDecoration(doc, sel, e.decorationFor(cmd))
	case Blockquote:
		return toggleBlockquote(doc, sel)
	case Link:
		return openLink(doc, sel)
	case Codeblock:
		return codeBlock(doc, sel, e.ph.Code)
	default:
		return EditResult{}, fmt.Errorf("%w: %v", ErrEmptyCommand, cmd)
	}
}
