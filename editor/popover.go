package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/command"
	"github.com/iw2rmb/markcmd/internal/grapheme"
)

type popoverKind uint8

const (
	popoverLink popoverKind = iota
	popoverImage
)

const popoverInputWidth = 32

// popover is the pending URL prompt. The selection is captured when it
// opens; confirming applies the edit against that selection.
type popover struct {
	active bool
	kind   popoverKind
	sel    buffer.Selection
	input  textinput.Model
}

func (k popoverKind) title() string {
	if k == popoverImage {
		return "Image URL"
	}
	return "Link URL"
}

func (m Model) openPopover(kind popoverKind) (Model, tea.Cmd) {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "https://"
	in.Width = popoverInputWidth
	if m.cfg.Footprint.Width > 0 {
		in.Width = max(int(m.cfg.Footprint.Width)-m.cfg.Style.Popover.GetHorizontalFrameSize()-lipgloss.Width(in.Prompt)-1, 1)
	}
	cmd := in.Focus()

	m.popover = popover{active: true, kind: kind, sel: m.buf.Selection(), input: in}
	return m, cmd
}

func (m Model) closePopover() Model {
	m.popover = popover{}
	return m
}

func (m Model) updatePopover(msg tea.Msg) (Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.cfg.KeyMap.Cancel):
			return m.closePopover(), nil
		case key.Matches(km, m.cfg.KeyMap.Confirm):
			return m.confirmPopover(), nil
		}
	}
	var cmd tea.Cmd
	m.popover.input, cmd = m.popover.input.Update(msg)
	return m, cmd
}

// confirmPopover inserts the link or image. An empty URL cancels, and so
// does a captured selection that no longer fits the document.
func (m Model) confirmPopover() Model {
	p := m.popover
	m = m.closePopover()

	url := strings.TrimSpace(p.input.Value())
	if url == "" {
		return m
	}

	doc := m.buf.Document()
	var (
		res command.EditResult
		err error
	)
	switch p.kind {
	case popoverImage:
		res, err = m.engine.InsertImage(doc, p.sel, url)
	default:
		res, err = m.engine.ConfirmLink(doc, p.sel, url)
		m.lastCommand = command.Link
	}
	if err == nil {
		err = m.buf.Apply(res.Edit(), res.Selection)
	}
	if err != nil {
		m.reportErr(err)
	}
	return m
}

func (m Model) renderPopover() string {
	st := m.cfg.Style
	body := st.PopoverTitle.Render(m.popover.kind.title()) + "\n" + m.popover.input.View()
	return st.Popover.Render(body)
}

// popoverFootprint fills unset footprint fields from the rendered box.
func (m Model) popoverFootprint(box string) command.Footprint {
	f := m.cfg.Footprint
	w, h := lipgloss.Size(box)
	if f.Width <= 0 {
		f.Width = float64(w)
	}
	if f.Height <= 0 {
		f.Height = float64(h)
	}
	if f.BottomOffset <= 0 {
		f.BottomOffset = 1
	}
	return f
}

// cursorCell is the cursor's cell position inside the visible viewport.
func (m Model) cursorCell() (x, y int) {
	cur := m.buf.Cursor()
	line := grapheme.Split(m.buf.Document().Line(cur.Line))
	x = m.gutterWidth()
	for _, c := range line[:min(cur.Col, len(line))] {
		x += cellWidth(c)
	}
	return x, cur.Line - m.viewport.YOffset
}

// popoverOrigin places the box with the shared placement rules, using one
// cell per unit and one row as the line height.
func (m Model) popoverOrigin(box string) (x, y int) {
	f := m.popoverFootprint(box)
	cx, cy := m.cursorCell()
	metrics := command.ContainerMetrics{
		ClientWidth:  float64(m.viewport.Width),
		ClientHeight: float64(m.viewport.Height),
		LineHeight:   1,
	}
	p := command.PlacePopover(command.CursorCoords{Left: float64(cx), Top: float64(cy)}, metrics, f)
	r := p.Bounds(metrics, f)
	// A view narrower or shorter than the box pins it to the top left.
	return max(int(r.Left), 0), max(int(r.Top), 0)
}

func (m Model) composePopover(base string) string {
	box := m.renderPopover()
	x, y := m.popoverOrigin(box)
	return overlay.Composite(box, base, overlay.Left, overlay.Top, x, y)
}
