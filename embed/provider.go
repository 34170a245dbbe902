package embed

import "fmt"

type Provider uint8

const (
	YouTube Provider = iota
	Twitter
	CodeSandbox
	CodePen
)

var providerNames = [...]string{
	YouTube:     "youtube",
	Twitter:     "twitter",
	CodeSandbox: "codesandbox",
	CodePen:     "codepen",
}

func (p Provider) String() string {
	if int(p) < len(providerNames) {
		return providerNames[p]
	}
	return fmt.Sprintf("provider(%d)", uint8(p))
}

// Match is a recognized embed.
type Match struct {
	Provider Provider
	ID       string
}

// Directive renders m as !provider[id].
func (m Match) Directive() string {
	return "!" + m.Provider.String() + "[" + m.ID + "]"
}
