package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"

	"github.com/iw2rmb/markcmd"
	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/command"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		in   string
		want buffer.Selection
	}{
		{in: "0:0", want: buffer.Caret(buffer.Pos{})},
		{in: "2:5", want: buffer.Caret(buffer.Pos{Line: 2, Col: 5})},
		{in: "0:2-0:4", want: buffer.Selection{Anchor: buffer.Pos{Col: 2}, Head: buffer.Pos{Col: 4}}},
		{in: "1:3-0:1", want: buffer.Selection{Anchor: buffer.Pos{Line: 1, Col: 3}, Head: buffer.Pos{Col: 1}}},
	}
	for _, tc := range cases {
		got, err := parseSelection(tc.in)
		if err != nil {
			t.Fatalf("parseSelection(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseSelection(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "1", "a:1", "1:b", "0:0-1"} {
		if _, err := parseSelection(bad); err == nil {
			t.Fatalf("parseSelection(%q): expected error", bad)
		}
	}
}

func TestApplyCommand(t *testing.T) {
	e := command.New(command.Options{})
	sel := buffer.Selection{Anchor: buffer.Pos{Col: 2}, Head: buffer.Pos{Col: 4}}

	got, err := applyCommand(e, "**hi**", sel, "bold", "", "")
	if err != nil || got != "hi" {
		t.Fatalf("bold: got %q, %v", got, err)
	}

	got, err = applyCommand(e, "see docs", buffer.Selection{Anchor: buffer.Pos{Col: 4}, Head: buffer.Pos{Col: 8}}, "link", "https://x.io", "")
	if err != nil || got != "see [docs](https://x.io)" {
		t.Fatalf("link: got %q, %v", got, err)
	}

	if _, err := applyCommand(e, "x", buffer.Caret(buffer.Pos{}), "link", "", ""); err == nil {
		t.Fatalf("link without url: expected error")
	}

	got, err = applyCommand(e, "", buffer.Caret(buffer.Pos{}), "", "", "a b.png")
	if err != nil || got != "![](a%20b.png)" {
		t.Fatalf("image: got %q, %v", got, err)
	}

	if _, err := applyCommand(e, "x", buffer.Caret(buffer.Pos{}), "underline", "", ""); !errors.Is(err, command.ErrEmptyCommand) {
		t.Fatalf("unknown command: err=%v", err)
	}
	if _, err := applyCommand(e, "x", buffer.Caret(buffer.Pos{Line: 4}), "bold", "", ""); !errors.Is(err, command.ErrInvalidRange) {
		t.Fatalf("bad selection: err=%v", err)
	}
}

func TestRunApply_DiffAndWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	src := heredoc.Doc(`
		title
		body
	`)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := run([]string{"apply", "-config", dir, "-cmd", "heading1", "-diff", path}, nil, &out); err != nil {
		t.Fatalf("apply -diff: %v", err)
	}
	diff := out.String()
	if !strings.Contains(diff, "-title\n") || !strings.Contains(diff, "+# title\n") {
		t.Fatalf("diff=%q", diff)
	}

	if err := run([]string{"apply", "-config", dir, "-cmd", "blockquote", "-sel", "1:0", "-w", path}, nil, &out); err != nil {
		t.Fatalf("apply -w: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(data); got != "title\n> body\n" {
		t.Fatalf("file=%q", got)
	}
}

func TestRunApply_UsesSettingsPlaceholders(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte("locale = \"ko\"\n"), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := run([]string{"apply", "-config", dir, "-cmd", "bold", path}, nil, &out); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := out.String(); got != "**굵은 텍스트**" {
		t.Fatalf("out=%q", got)
	}
}

func TestRunEmbed(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`<iframe src="https://www.youtube.com/embed/abc123"></iframe>` + "\n")
	if err := run([]string{"embed"}, in, &out); err != nil {
		t.Fatalf("embed: %v", err)
	}
	if got := out.String(); got != "!youtube[abc123]\n" {
		t.Fatalf("out=%q", got)
	}

	err := run([]string{"embed"}, strings.NewReader("plain text"), &out)
	if !errors.Is(err, errNoEmbed) {
		t.Fatalf("err=%v, want errNoEmbed", err)
	}
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{nil, {"frobnicate"}, {"apply"}, {"apply", "-nope", "x"}} {
		if err := run(args, nil, &bytes.Buffer{}); !errors.Is(err, errUsage) {
			t.Fatalf("run(%q) err=%v, want usage error", args, err)
		}
	}
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"version"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run version: %v", err)
	}
	if want := "markcmd " + markcmd.Version(version) + "\n"; !strings.HasPrefix(out.String(), want) {
		t.Fatalf("output=%q, want prefix %q", out.String(), want)
	}
}
