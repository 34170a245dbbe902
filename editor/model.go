package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/command"
)

// Model is a Bubble Tea component that edits markdown in a buffer.
type Model struct {
	cfg    Config
	buf    *buffer.Buffer
	engine command.Engine

	focused bool

	viewport viewport.Model
	popover  popover

	mouseAnchor   buffer.Pos
	mouseDragging bool

	// lastCommand is the formatting command run by the current update.
	lastCommand command.Command

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		engine:   command.New(cfg.Options),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Engine() command.Engine { return m.engine }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// PopoverOpen reports whether the URL prompt is showing.
func (m Model) PopoverOpen() bool { return m.popover.active }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m.lastCommand = command.CommandNone

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.popover.active {
			m, cmd = m.updatePopover(msg)
		}
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string {
	base := m.viewport.View()
	if !m.popover.active {
		return base
	}
	return m.composePopover(base)
}

// syncFromBuffer rebuilds the content after any buffer change, including
// ones made by the host, and reports change events. It returns whether the
// cursor moved.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	versionChanged := ver != m.lastBufVersion
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()

	if versionChanged && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.lastCommand))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Line < y {
		m.viewport.SetYOffset(cur.Line)
		return
	}
	if cur.Line >= y+h {
		m.viewport.SetYOffset(cur.Line - h + 1)
	}
}
