// Package ui provides an optional terminal interface over the task file.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/taskline/internal/config"
	"github.com/nibzard/taskline/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

// RunTUI starts the TUI over the configured task file. An absent file
// starts an empty session, like the repl does.
func RunTUI(ctx context.Context, cfg *config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	model := newTUIModel(cfg, store)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}

func loadStore(cfg *config.Config) (*task.Store, error) {
	load := task.Load
	if cfg.SchemaValidation {
		load = task.LoadValidated
	}
	store, err := load(cfg.TaskFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return task.NewStore(), nil
		}
		return nil, err
	}
	return store, nil
}

type tuiModel struct {
	cfg     *config.Config
	store   *task.Store
	cursor  int
	mode    mode
	input   textinput.Model
	filter  task.Status
	status  string
	saveErr error
}

func newTUIModel(cfg *config.Config, store *task.Store) *tuiModel {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.CharLimit = 256
	ti.Width = 48

	return &tuiModel{
		cfg:    cfg,
		store:  store,
		input:  ti,
		status: "a add | space toggle | d delete | c clear done | 1-3 filter | q save and quit",
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == modeAdd {
		return m.updateAdd(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m *tuiModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := m.store.Add(m.input.Value()); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = "Task added."
		}
		m.input.Reset()
		m.input.Blur()
		m.mode = modeList
		return m, nil
	case "esc":
		m.input.Reset()
		m.input.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.visibleEntries()

	switch msg.String() {
	case "ctrl+c", "q":
		m.saveErr = m.store.Save(m.cfg.TaskFile)
		return m, tea.Quit
	case "a":
		m.mode = modeAdd
		m.input.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case " ", "x":
		if e, ok := entryAt(entries, m.cursor); ok {
			next := task.StatusDone
			if e.Task.Done() {
				next = task.StatusTodo
			}
			if err := m.store.UpdateStatus(e.Index, next); err != nil {
				m.status = "Error: " + err.Error()
			}
		}
	case "d":
		if e, ok := entryAt(entries, m.cursor); ok {
			removed, err := m.store.Remove(e.Index)
			if err != nil {
				m.status = "Error: " + err.Error()
			} else {
				m.status = "Removed: " + removed.Description
			}
		}
	case "c":
		count := m.store.ClearDone()
		m.status = fmt.Sprintf("Cleared %d completed task(s).", count)
	case "s":
		if err := m.store.Save(m.cfg.TaskFile); err != nil {
			m.status = "Error: " + err.Error()
		} else {
			m.status = "Tasks saved."
		}
	case "1":
		m.filter = task.StatusTodo
	case "2":
		m.filter = task.StatusInProgress
	case "3":
		m.filter = task.StatusDone
	case "0":
		m.filter = ""
	}

	m.clampCursor()
	return m, nil
}

func (m *tuiModel) visibleEntries() []task.Entry {
	if m.filter == "" {
		return m.store.List()
	}
	return m.store.FilterByStatus(m.filter)
}

func entryAt(entries []task.Entry, cursor int) (task.Entry, bool) {
	if cursor < 0 || cursor >= len(entries) {
		return task.Entry{}, false
	}
	return entries[cursor], true
}

func (m *tuiModel) clampCursor() {
	max := len(m.visibleEntries()) - 1
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b)
	writeCounts(&b, m.store)

	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", m.filter))
	}

	entries := m.visibleEntries()
	if len(entries) == 0 {
		b.WriteString("  No tasks.\n")
	}
	for i, e := range entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %d. %s\n", cursor, iconFor(e.Task.Status), e.Index, e.Task))
	}
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString("New task: " + m.input.View() + "\n")
		b.WriteString("enter to add, esc to cancel\n")
	} else {
		b.WriteString(m.status + "\n")
	}

	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Taskline"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeCounts(b *strings.Builder, store *task.Store) {
	counts := map[task.Status]int{}
	for _, e := range store.List() {
		counts[e.Task.Status]++
	}
	b.WriteString(fmt.Sprintf("  Todo: %d  In progress: %d  Done: %d\n\n",
		counts[task.StatusTodo],
		counts[task.StatusInProgress],
		counts[task.StatusDone],
	))
}

func iconFor(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return "[>]"
	case task.StatusDone:
		return "[x]"
	default:
		return "[ ]"
	}
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
