package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/internal/grapheme"
)

const tabWidth = 4

// cellWidth is the terminal width of one grapheme cluster. Tabs take a fixed
// tabWidth cells.
func cellWidth(cluster string) int {
	if cluster == "\t" {
		return tabWidth
	}
	return grapheme.Width(cluster)
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.Document().LineCount()) + 1
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	doc := m.buf.Document()
	n := doc.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.SelectedRange()
	digits := gutterDigits(n)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Line {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(renderLine(m.cfg.Style, grapheme.Split(doc.Line(row)), row, cursor, m.focused, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

type spanKind uint8

const (
	spanText spanKind = iota
	spanSelected
	spanCursor
)

// renderLine styles one line. Runs of clusters with the same role are
// rendered together; a cursor at end of line is a one-cell blank.
func renderLine(st Style, clusters []string, row int, cursor buffer.Pos, focused bool, sel buffer.Range, selOK bool) string {
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(clusters))
	hasCursor := focused && row == cursor.Line

	kindAt := func(col int) spanKind {
		switch {
		case hasCursor && col == cursor.Col:
			return spanCursor
		case hasSel && col >= selStart && col < selEnd:
			return spanSelected
		default:
			return spanText
		}
	}
	styleFor := func(k spanKind) lipgloss.Style {
		switch k {
		case spanCursor:
			return st.Cursor
		case spanSelected:
			return st.Selection
		default:
			return st.Text
		}
	}

	var sb strings.Builder
	var run strings.Builder
	runKind := spanText
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(styleFor(runKind).Render(run.String()))
			run.Reset()
		}
	}

	for i, c := range clusters {
		k := kindAt(i)
		if k != runKind {
			flush()
			runKind = k
		}
		if c == "\t" {
			c = strings.Repeat(" ", tabWidth)
		}
		run.WriteString(c)
	}
	flush()

	if hasCursor && cursor.Col >= len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok || row < sel.Start.Line || row > sel.End.Line {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Line {
		start = sel.Start.Col
	}
	if row == sel.End.Line {
		end = sel.End.Col
	}
	return start, end, start < end
}
