package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/command"
	"github.com/iw2rmb/markcmd/config"
)

func runApply(args []string, stdout io.Writer) error {
	fs := newFlagSet("apply")
	var (
		cmdName   string
		selRaw    string
		linkURL   string
		imageURL  string
		showDiff  bool
		write     bool
		configDir string
	)
	fs.StringVar(&cmdName, "cmd", "", "Formatting command (heading1..4, bold, italic, strike, blockquote, link, codeblock)")
	fs.StringVar(&selRaw, "sel", "0:0", "Selection as line:col or line:col-line:col (zero-based, grapheme columns)")
	fs.StringVar(&linkURL, "url", "", "URL for the link command")
	fs.StringVar(&imageURL, "image", "", "Insert an image reference to this URL instead of running -cmd")
	fs.BoolVar(&showDiff, "diff", false, "Print a unified diff instead of the new text")
	fs.BoolVar(&write, "w", false, "Write the result back to the file")
	fs.StringVar(&configDir, "config", config.Dir(), "Settings directory")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: apply needs exactly one file", errUsage)
	}
	path := fs.Arg(0)

	settings, _, err := config.LoadSettings(configDir)
	if err != nil {
		return err
	}
	sel, err := parseSelection(selRaw)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	before := string(data)
	after, err := applyCommand(command.New(settings.EngineOptions()), before, sel, cmdName, linkURL, imageURL)
	if err != nil {
		return err
	}

	switch {
	case write:
		if err := os.WriteFile(path, []byte(after), 0o644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		return nil
	case showDiff:
		_, err := io.WriteString(stdout, udiff.Unified(path, path, before, after))
		return err
	default:
		_, err := io.WriteString(stdout, after)
		return err
	}
}

// applyCommand runs one command and returns the new text. The link command
// needs a URL since there is no prompt to open.
func applyCommand(e command.Engine, text string, sel buffer.Selection, name, linkURL, imageURL string) (string, error) {
	doc := buffer.NewDocument(text)

	var (
		res command.EditResult
		err error
	)
	switch {
	case imageURL != "":
		res, err = e.InsertImage(doc, sel, imageURL)
	default:
		var c command.Command
		c, err = command.ParseCommand(name)
		if err != nil {
			return "", err
		}
		res, err = e.Apply(doc, sel, c)
		if err == nil && res.OpenLinkPopover {
			if linkURL == "" {
				return "", errors.New("link needs -url")
			}
			res, err = e.ConfirmLink(doc, sel, linkURL)
		}
	}
	if err != nil {
		return "", err
	}

	next, err := res.ApplyTo(doc)
	if err != nil {
		return "", err
	}
	return next.Text(), nil
}

// parseSelection reads "line:col" or "line:col-line:col".
func parseSelection(s string) (buffer.Selection, error) {
	from, to, isRange := strings.Cut(strings.TrimSpace(s), "-")
	anchor, err := parsePos(from)
	if err != nil {
		return buffer.Selection{}, err
	}
	if !isRange {
		return buffer.Caret(anchor), nil
	}
	head, err := parsePos(to)
	if err != nil {
		return buffer.Selection{}, err
	}
	return buffer.Selection{Anchor: anchor, Head: head}, nil
}

func parsePos(s string) (buffer.Pos, error) {
	l, c, ok := strings.Cut(s, ":")
	if !ok {
		return buffer.Pos{}, fmt.Errorf("invalid position %q: want line:col", s)
	}
	line, err := strconv.Atoi(l)
	if err != nil {
		return buffer.Pos{}, fmt.Errorf("invalid line in %q: %w", s, err)
	}
	col, err := strconv.Atoi(c)
	if err != nil {
		return buffer.Pos{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}
	return buffer.Pos{Line: line, Col: col}, nil
}
