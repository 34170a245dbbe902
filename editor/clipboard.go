package editor

import "github.com/iw2rmb/markcmd/embed"

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// ItemClipboard is implemented by clipboards that can list the data
// representations of their content. Paste uses it to defer file pastes to
// the host's upload path.
type ItemClipboard interface {
	Clipboard
	ReadItems() ([]embed.Item, error)
}

func readPayload(c Clipboard) (embed.Payload, bool) {
	s, err := c.ReadText()
	if err != nil {
		return embed.Payload{}, false
	}
	p := embed.Payload{Text: s}
	if ic, ok := c.(ItemClipboard); ok {
		if items, err := ic.ReadItems(); err == nil {
			p.Items = items
		}
	}
	return p, p.Text != "" || len(p.Items) > 0
}
