package embed

// ItemKind is the kind of one clipboard data representation.
type ItemKind uint8

const (
	ItemString ItemKind = iota
	ItemFile
)

// Item is one representation carried by a paste, such as text/plain or an
// image file.
type Item struct {
	Kind ItemKind
	Type string
}

// Payload is what the host read from the clipboard.
type Payload struct {
	Text  string
	Items []Item
}

// Decision tells the host what to do with a paste.
type Decision struct {
	Match   Match
	Matched bool

	// Suppress means the host must skip its default paste. It is set for a
	// match, and for payloads that carry a file after their first item,
	// which the upload path handles instead.
	Suppress bool
}

// Decide inspects a paste.
func Decide(p Payload) Decision {
	if m, ok := Detect(p.Text); ok {
		return Decision{Match: m, Matched: true, Suppress: true}
	}
	if len(p.Items) > 1 {
		for _, it := range p.Items[1:] {
			if it.Kind == ItemFile {
				return Decision{Suppress: true}
			}
		}
	}
	return Decision{}
}
