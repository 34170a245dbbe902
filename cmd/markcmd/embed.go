package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/markcmd/embed"
)

var errNoEmbed = errors.New("no embed snippet recognized")

func runEmbed(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("embed")
	var fromClipboard bool
	fs.BoolVar(&fromClipboard, "clipboard", false, "Read the snippet from the system clipboard instead of stdin")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var text string
	if fromClipboard {
		s, err := clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("read clipboard: %w", err)
		}
		text = s
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}

	d := embed.Decide(embed.Payload{Text: trimTrailingNewline(text)})
	if !d.Matched {
		return errNoEmbed
	}
	_, err := fmt.Fprintln(stdout, d.Match.Directive())
	return err
}

// trimTrailingNewline drops the single line break that shells and editors
// append, since the end-anchored patterns would reject it.
func trimTrailingNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s
}
