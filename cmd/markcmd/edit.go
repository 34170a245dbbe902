package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markcmd/config"
	"github.com/iw2rmb/markcmd/editor"
)

func runEdit(args []string) error {
	flags := newFlagSet("edit")
	var (
		configDir string
		lineNums  bool
	)
	flags.StringVar(&configDir, "config", config.Dir(), "Settings directory")
	flags.BoolVar(&lineNums, "line-numbers", true, "Show line numbers")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: edit needs exactly one file", errUsage)
	}
	path := flags.Arg(0)

	if logPath := os.Getenv("MARKCMD_LOG"); logPath != "" {
		f, err := tea.LogToFile(logPath, "markcmd")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	settings, handle, err := config.LoadSettings(configDir)
	if err != nil {
		return err
	}
	log.Printf("settings: %s (%s)", handle.Path, handle.Format)

	text := ""
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		text = string(data)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("read file: %w", err)
	}

	km, err := editor.KeyMapFromActions(settings.Keys)
	if err != nil {
		return err
	}
	m := newEditModel(path, editor.Config{
		Text:         text,
		ShowLineNums: lineNums,
		Style:        editor.DefaultStyle(),
		KeyMap:       km,
		Options:      settings.EngineOptions(),
		Footprint:    settings.Popover.Footprint(),
		Clipboard:    systemClipboard{},
		OnError: func(err error) {
			log.Printf("edit rejected: %v", err)
		},
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type editModel struct {
	path   string
	editor editor.Model
	saved  uint64
	status string
}

func newEditModel(path string, cfg editor.Config) editModel {
	m := editModel{path: path, editor: editor.New(cfg)}
	m.saved = m.editor.Buffer().Version()
	m.status = path
	return m
}

func (m editModel) Init() tea.Cmd { return m.editor.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// One row for the status line.
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if !m.editor.PopoverOpen() {
			switch msg.String() {
			case "ctrl+q":
				return m, tea.Quit
			case "ctrl+s":
				m.save()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *editModel) save() {
	b := m.editor.Buffer()
	if err := os.WriteFile(m.path, []byte(b.Text()), 0o644); err != nil {
		log.Printf("save %q: %v", m.path, err)
		m.status = "save failed: " + err.Error()
		return
	}
	m.saved = b.Version()
	m.status = "saved " + m.path
}

func (m editModel) View() string {
	status := m.status
	if m.editor.Buffer().Version() != m.saved {
		status += " [+]"
	}
	return m.editor.View() + "\n" + statusStyle.Render(status+"  ctrl+s save · ctrl+q quit")
}
