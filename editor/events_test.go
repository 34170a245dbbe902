package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markcmd/buffer"
	"github.com/iw2rmb/markcmd/command"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m = keys(m, tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if events[0].Change != nil {
		t.Fatalf("move reported a text change: %+v", events[0].Change)
	}
	if got := events[0].Cursor; got != (buffer.Pos{Col: 1}) {
		t.Fatalf("event cursor after move: got %v", got)
	}

	m = keys(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}) // second is a no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m = keys(m, runes("X"))
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if ev.Text != "abX" || ev.Command != command.CommandNone {
		t.Fatalf("event after insert: %+v", ev)
	}
	if ev.Change == nil || ev.Change.Edit.InsertText != "X" {
		t.Fatalf("event change after insert: %+v", ev.Change)
	}
}

func TestOnChange_CommandEmitsExactlyOneEvent(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "**hi**",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m.buf.SetSelection(buffer.Selection{Anchor: buffer.Pos{Col: 2}, Head: buffer.Pos{Col: 4}})
	m, _ = m.Update(nil)
	events = nil

	m = keys(m, tea.KeyMsg{Type: tea.KeyCtrlB})

	if len(events) != 1 {
		t.Fatalf("events: got %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Command != command.Bold {
		t.Fatalf("command=%v, want bold", ev.Command)
	}
	if ev.Text != "hi" {
		t.Fatalf("text=%q", ev.Text)
	}
	if !ev.Selection.Active || ev.Selection.Range != (buffer.Range{End: buffer.Pos{Col: 2}}) {
		t.Fatalf("selection=%+v", ev.Selection)
	}
	if ev.Change == nil || ev.Change.Edit.DeletedText != "**hi**" {
		t.Fatalf("change=%+v", ev.Change)
	}
}

func TestOnChange_HostCommandCall(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "title",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m, _ = m.RunCommand(command.Heading1)
	m, _ = m.Update(nil)
	if len(events) != 1 || events[0].Command != command.Heading1 {
		t.Fatalf("events=%+v", events)
	}
	if got := m.Buffer().Text(); got != "# title" {
		t.Fatalf("text=%q", got)
	}
}

func TestOnError_ReportsRejectedCommand(t *testing.T) {
	var (
		errs   []error
		events int
	)
	m := New(Config{
		Text:     "ab",
		OnChange: func(ChangeEvent) { events++ },
		OnError:  func(err error) { errs = append(errs, err) },
	})

	m, _ = m.RunCommand(command.CommandNone)
	if len(errs) != 1 || !errors.Is(errs[0], command.ErrEmptyCommand) {
		t.Fatalf("errors=%v, want one ErrEmptyCommand", errs)
	}
	if events != 0 {
		t.Fatalf("rejected command emitted %d events", events)
	}
	if got := m.Buffer().Text(); got != "ab" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}
