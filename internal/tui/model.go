// Package tui is the terminal host: a bubbletea program that renders the
// page model and runs controller flows from key presses.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasksync/internal/controller"
	"tasksync/internal/metrics"
	"tasksync/internal/output"
	"tasksync/internal/page"
	"tasksync/internal/prompt"
	"tasksync/internal/service"
)

type mode int

const (
	modeBrowse mode = iota
	modeInput
	modeConfirm
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// flowDoneMsg reports a finished controller flow.
type flowDoneMsg struct {
	flow   string
	err    error
	alerts []string
}

// Model is the bubbletea model.
type Model struct {
	ctl   *controller.Controller
	ctx   context.Context
	input textinput.Model

	mode      mode
	cursor    int
	confirmID string
	busy      bool
	status    string
	quitting  bool
}

// New creates a model driving ctl. ctx is passed to every flow.
func New(ctx context.Context, ctl *controller.Controller) *Model {
	in := textinput.New()
	in.Placeholder = "Add a new task..."
	in.CharLimit = 500
	return &Model{ctl: ctl, ctx: ctx, input: in}
}

// Run starts the program on the given terminal streams and blocks until it exits.
func Run(ctx context.Context, ctl *controller.Controller, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(New(ctx, ctl),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Init runs the startup load.
func (m *Model) Init() tea.Cmd {
	m.busy = true
	return m.run(metrics.FlowLoad, func(ctx context.Context) ([]string, error) {
		return nil, m.ctl.Load(ctx)
	})
}

// run wraps fn as a command that reports a flowDoneMsg.
func (m *Model) run(flow string, fn func(ctx context.Context) ([]string, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		alerts, err := fn(ctx)
		return flowDoneMsg{flow: flow, err: err, alerts: alerts}
	}
}

// Update handles key presses and flow results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flowDoneMsg:
		m.busy = false
		m.status = statusFor(msg)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "a":
		m.mode = modeInput
		m.status = ""
		m.input.SetValue(m.ctl.Document().InputValue())
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor >= len(rows) {
			return m, nil
		}
		row := rows[m.cursor]
		m.busy = true
		return m, m.run(metrics.FlowToggle, func(ctx context.Context) ([]string, error) {
			return nil, row.Toggle(ctx, !row.Completed)
		})
	case "d":
		if m.cursor >= len(rows) {
			return m, nil
		}
		m.mode = modeConfirm
		m.confirmID = rows[m.cursor].TaskID
	case "r":
		m.busy = true
		return m, m.run(metrics.FlowLoad, func(ctx context.Context) ([]string, error) {
			return nil, m.ctl.Load(ctx)
		})
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		text := m.input.Value()
		m.mode = modeBrowse
		m.input.Blur()
		m.busy = true
		ctl := m.ctl
		return m, m.run(metrics.FlowAdd, func(ctx context.Context) ([]string, error) {
			p := prompt.No()
			err := ctl.WithPrompter(p).Submit(ctx, text)
			return p.Alerts(), err
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := service.TaskID(m.confirmID)
	m.mode = modeBrowse
	m.confirmID = ""

	var p prompt.Prompter = prompt.No()
	if msg.String() == "y" {
		p = prompt.Yes()
	}
	m.busy = true
	ctl := m.ctl.WithPrompter(p)
	return m, m.run(metrics.FlowDelete, func(ctx context.Context) ([]string, error) {
		return nil, ctl.Delete(ctx, id)
	})
}

func (m *Model) rows() []page.Row {
	return m.ctl.Document().Snapshot().List.Rows
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func statusFor(msg flowDoneMsg) string {
	if len(msg.alerts) > 0 {
		return msg.alerts[len(msg.alerts)-1]
	}
	switch {
	case msg.err == nil:
		return ""
	case errors.Is(msg.err, controller.ErrCancelled):
		return "Delete cancelled"
	default:
		return fmt.Sprintf("Could not %s: %v", msg.flow, msg.err)
	}
}

// View draws the page from a document snapshot.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.ctl.Document().Snapshot()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Task Manager"))
	b.WriteString("\n")

	if m.mode == modeInput {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(mutedStyle.Render("press a to add a task"))
	}
	b.WriteString("\n\n")

	if v.List.Hidden {
		b.WriteString(mutedStyle.Render("No tasks yet. Add one above!"))
		b.WriteString("\n")
	} else {
		for i, row := range v.List.Rows {
			b.WriteString(m.renderRow(i, row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.Total.Content + "  " + v.Completed.Content)
	b.WriteString("\n")

	switch {
	case m.mode == modeConfirm:
		b.WriteString(alertStyle.Render(controller.MsgConfirmDelete + " (y/N)"))
	case m.busy:
		b.WriteString(mutedStyle.Render("syncing..."))
	case m.status != "":
		b.WriteString(alertStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("a add • space toggle • d delete • r reload • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderRow(i int, row page.Row) string {
	marker := "  "
	if i == m.cursor && m.mode != modeInput {
		marker = cursorStyle.Render("> ")
	}
	box := "[ ]"
	title := output.NormalizeTitle(row.Title)
	if row.Completed {
		box = "[x]"
		title = doneStyle.Render(title)
	}
	return marker + box + " " + title
}
