package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/iw2rmb/markcmd/buffer"
)

// Command output must stay valid CommonMark/GFM, so each result is rendered
// and checked for the element it is meant to produce.
func TestCommandsRenderAsMarkdown(t *testing.T) {
	e := New(Options{})
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	cases := []struct {
		name string
		cmd  Command
		line string
		sel  buffer.Selection
		want string
	}{
		{name: "bold", cmd: Bold, line: "say hi", sel: sel(0, 4, 6), want: "<strong>hi</strong>"},
		{name: "italic", cmd: Italic, line: "say hi", sel: sel(0, 4, 6), want: "<em>hi</em>"},
		{name: "strike", cmd: Strike, line: "say hi", sel: sel(0, 4, 6), want: "<del>hi</del>"},
		{name: "heading", cmd: Heading2, line: "title", sel: caret(0, 0), want: "<h2>title</h2>"},
		{name: "blockquote", cmd: Blockquote, line: "quoted", sel: caret(0, 0), want: "<blockquote>"},
		{name: "codeblock", cmd: Codeblock, line: "x := 1", sel: sel(0, 0, 6), want: "<pre><code>x := 1\n</code></pre>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := buffer.FromLines(tc.line)
			res, err := e.Apply(doc, tc.sel, tc.cmd)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			html := render(t, md, apply(t, doc, res).Text())
			if !strings.Contains(html, tc.want) {
				t.Fatalf("html=%q, want it to contain %q", html, tc.want)
			}
		})
	}
}

func TestConfirmLinkAndImageRender(t *testing.T) {
	e := New(Options{})
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := buffer.FromLines("see docs")

	res, err := e.ConfirmLink(doc, sel(0, 4, 8), "https://x.io")
	if err != nil {
		t.Fatalf("ConfirmLink: %v", err)
	}
	if html := render(t, md, apply(t, doc, res).Text()); !strings.Contains(html, `<a href="https://x.io">docs</a>`) {
		t.Fatalf("html=%q", html)
	}

	img, err := e.InsertImage(buffer.FromLines(""), caret(0, 0), "https://x.io/my pic.png")
	if err != nil {
		t.Fatalf("InsertImage: %v", err)
	}
	if html := render(t, md, img.Text); !strings.Contains(html, `<img src="https://x.io/my%20pic.png" alt="">`) {
		t.Fatalf("html=%q", html)
	}
}

func render(t *testing.T, md goldmark.Markdown, src string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		t.Fatalf("render %q: %v", src, err)
	}
	return buf.String()
}
