package command

import (
	"fmt"
	"strings"
)

// Command identifies a toolbar action.
type Command uint8

const (
	CommandNone Command = iota
	Heading1
	Heading2
	Heading3
	Heading4
	Bold
	Italic
	Strike
	Blockquote
	Link
	Codeblock
)

var commandNames = [...]string{
	CommandNone: "",
	Heading1:    "heading1",
	Heading2:    "heading2",
	Heading3:    "heading3",
	Heading4:    "heading4",
	Bold:        "bold",
	Italic:      "italic",
	Strike:      "strike",
	Blockquote:  "blockquote",
	Link:        "link",
	Codeblock:   "codeblock",
}

func (c Command) String() string {
	if int(c) < len(commandNames) && commandNames[c] != "" {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// Commands lists every recognized command in toolbar order.
func Commands() []Command {
	return []Command{Heading1, Heading2, Heading3, Heading4, Bold, Italic, Strike, Blockquote, Link, Codeblock}
}

// ParseCommand maps a tag such as "heading2" or "bold" to its Command.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Commands() {
		if commandNames[c] == name {
			return c, nil
		}
	}
	return CommandNone, fmt.Errorf("%w: %q", ErrEmptyCommand, name)
}

func (c Command) headingLevel() (int, bool) {
	if c >= Heading1 && c <= Heading4 {
		return int(c-Heading1) + 1, true
	}
	return 0, false
}
