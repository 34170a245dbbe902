package buffer

import (
	"errors"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/google/go-cmp/cmp"
)

func TestDocument_ZeroValueHasOneEmptyLine(t *testing.T) {
	var d Document
	if got := d.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got := d.Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if got, want := d.End(), (Pos{}); got != want {
		t.Fatalf("end=%v, want %v", got, want)
	}
}

func TestDocument_LinesAreGraphemeIndexed(t *testing.T) {
	d := FromLines("**텍스트**", "éx")
	if got, want := d.LineLen(0), 7; got != want {
		t.Fatalf("len(0)=%d, want %d", got, want)
	}
	if got, want := d.LineLen(1), 2; got != want {
		t.Fatalf("len(1)=%d, want %d", got, want)
	}
	if got := d.Line(5); got != "" {
		t.Fatalf("line out of range=%q, want empty", got)
	}
}

func TestDocument_Validate(t *testing.T) {
	d := FromLines("ab", "")
	cases := []struct {
		name string
		pos  Pos
		ok   bool
	}{
		{name: "origin", pos: Pos{}, ok: true},
		{name: "end of line", pos: Pos{Line: 0, Col: 2}, ok: true},
		{name: "empty line", pos: Pos{Line: 1, Col: 0}, ok: true},
		{name: "col past end", pos: Pos{Line: 0, Col: 3}},
		{name: "negative col", pos: Pos{Line: 0, Col: -1}},
		{name: "negative line", pos: Pos{Line: -1}},
		{name: "line past end", pos: Pos{Line: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := d.Validate(tc.pos)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("err=%v, want ErrInvalidRange", err)
			}
			var re *RangeError
			if !errors.As(err, &re) || re.Pos != tc.pos {
				t.Fatalf("range error=%#v, want pos %v", re, tc.pos)
			}
		})
	}
}

func TestDocument_SliceSpanningLines(t *testing.T) {
	d := NewDocument(heredoc.Doc(`
		alpha
		beta
		gamma`))

	got, err := d.Slice(Range{Start: Pos{Line: 2, Col: 2}, End: Pos{Line: 0, Col: 3}})
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if want := "ha\nbeta\nga"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
}

func TestDocument_ReplaceSingleLine(t *testing.T) {
	d := FromLines("hello world")
	next, r, err := d.Replace(Range{Start: Pos{Col: 6}, End: Pos{Col: 11}}, "go")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := next.Text(), "hello go"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r, (Range{Start: Pos{Col: 6}, End: Pos{Col: 8}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if got := d.Text(); got != "hello world" {
		t.Fatalf("receiver mutated: %q", got)
	}
}

func TestDocument_ReplaceRemovesInterveningLines(t *testing.T) {
	d := FromLines("ab", "cd", "ef")
	next, r, err := d.Replace(Range{Start: Pos{Line: 0, Col: 1}, End: Pos{Line: 2, Col: 1}}, "X\nYZ")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if diff := cmp.Diff([]string{"aX", "YZf"}, next.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if got, want := r, (Range{Start: Pos{Line: 0, Col: 1}, End: Pos{Line: 1, Col: 2}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
}

func TestDocument_ReplaceRejectsInvalidRange(t *testing.T) {
	d := FromLines("ab")
	next, _, err := d.Replace(Range{Start: Pos{Col: 1}, End: Pos{Col: 9}}, "x")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err=%v, want ErrInvalidRange", err)
	}
	if got := next.Text(); got != "ab" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestDocument_Expand(t *testing.T) {
	d := FromLines("**hi**", "x")

	r, ok := d.Expand(Range{Start: Pos{Col: 2}, End: Pos{Col: 4}}, 2)
	if !ok {
		t.Fatalf("expected expand to succeed")
	}
	if got, want := r, (Range{Start: Pos{Col: 0}, End: Pos{Col: 6}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}

	if _, ok := d.Expand(Range{Start: Pos{Col: 1}, End: Pos{Col: 4}}, 2); ok {
		t.Fatalf("expected expand past line start to fail")
	}
	if _, ok := d.Expand(Range{Start: Pos{Col: 2}, End: Pos{Line: 1, Col: 0}}, 2); ok {
		t.Fatalf("expected expand past line end to fail")
	}
}

func TestDocument_ReplaceResplitsAcrossSplicePoints(t *testing.T) {
	cases := []struct {
		name string
		line string
		r    Range
		text string
		end  Pos
	}{
		{name: "marker before combining mark", line: "\u0301abc", r: Range{}, text: "_x_", end: Pos{Col: 3}},
		{name: "combining mark after prefix", line: "e", r: Range{Start: Pos{Col: 1}, End: Pos{Col: 1}}, text: "\u0301z", end: Pos{Col: 2}},
		{name: "multi-line tail", line: "\u0301abc", r: Range{}, text: "x\n_", end: Pos{Line: 1, Col: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, got, err := FromLines(tc.line).Replace(tc.r, tc.text)
			if err != nil {
				t.Fatalf("Replace: %v", err)
			}
			reread := NewDocument(next.Text())
			if next.LineCount() != reread.LineCount() {
				t.Fatalf("line count=%d, reread %d", next.LineCount(), reread.LineCount())
			}
			for i := 0; i < next.LineCount(); i++ {
				if next.LineLen(i) != reread.LineLen(i) {
					t.Fatalf("line %d len=%d, reread %d", i, next.LineLen(i), reread.LineLen(i))
				}
			}
			if got.End != tc.end {
				t.Fatalf("end=%v, want %v", got.End, tc.end)
			}
			if err := next.ValidateRange(got); err != nil {
				t.Fatalf("returned range invalid: %v", err)
			}
		})
	}
}
