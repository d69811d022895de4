package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hullo.dev/hullo/internal/actions"
	"hullo.dev/hullo/internal/git"
	"hullo.dev/hullo/internal/greeting"
	"hullo.dev/hullo/internal/output"
	"hullo.dev/hullo/internal/roster"
)

const (
	focusName = iota
	focusMessage
)

type resultKind int

const (
	resultNone resultKind = iota
	resultPlain
	resultOK
	resultError
)

// commitDoneMsg is sent when the commit and push sequence completes
type commitDoneMsg struct {
	err error
}

// GuiOptions configures the interactive window
type GuiOptions struct {
	Figures *roster.Roster
	Runner  git.Runner
	Splog   *output.Splog
}

// GuiModel is the bubbletea model for the interactive hullo window
type GuiModel struct {
	nameInput    textinput.Model
	messageInput textinput.Model
	focus        int
	spinner      spinner.Model
	busy         bool
	result       string
	resultKind   resultKind
	quitting     bool
	styles       guiStyles

	figures *roster.Roster
	runner  git.Runner
	splog   *output.Splog
}

type guiStyles struct {
	titleStyle   lipgloss.Style
	labelStyle   lipgloss.Style
	spinnerStyle lipgloss.Style
	okStyle      lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
}

// NewGuiModel creates a new GUI model
func NewGuiModel(opts GuiOptions) GuiModel {
	name := textinput.New()
	name.Placeholder = "World"
	name.Focus()
	name.CharLimit = 120
	name.Width = 40

	message := textinput.New()
	message.CharLimit = 500
	message.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return GuiModel{
		nameInput:    name,
		messageInput: message,
		spinner:      s,
		figures:      opts.Figures,
		runner:       opts.Runner,
		splog:        opts.Splog,
		styles: guiStyles{
			titleStyle:   lipgloss.NewStyle().Bold(true),
			labelStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			spinnerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			okStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			dimStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m GuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			if m.busy {
				return m, nil
			}
			return m.toggleFocus()

		case tea.KeyCtrlR:
			if m.busy {
				return m, nil
			}
			m.result = greeting.GreetRandomFigure(m.figures)
			m.resultKind = resultPlain
			return m, nil

		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			if m.focus == focusName {
				m.result = greeting.Greet(strings.TrimSpace(m.nameInput.Value()))
				m.resultKind = resultPlain
				return m, nil
			}
			return m.dispatchCommit()
		}

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commitDoneMsg:
		m.busy = false
		if msg.err != nil {
			// Console output is quieted while the window is up, so point at
			// the log file when one exists.
			if path := m.splog.LogPath(); path != "" {
				m.result = fmt.Sprintf("Git operation failed. See %s for details.", path)
			} else {
				m.result = "Git operation failed: " + firstLine(msg.err.Error())
			}
			m.resultKind = resultError
			return m, nil
		}
		m.result = "Changes committed and pushed"
		m.resultKind = resultOK
		m.messageInput.SetValue("")
		return m, nil
	}

	return m.updateInputs(msg)
}

// toggleFocus moves the cursor between the name and message fields.
func (m GuiModel) toggleFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusName {
		m.focus = focusMessage
		m.nameInput.Blur()
		cmd = m.messageInput.Focus()
	} else {
		m.focus = focusName
		m.messageInput.Blur()
		cmd = m.nameInput.Focus()
	}
	return m, cmd
}

// dispatchCommit validates the message field and starts the commit sequence.
func (m GuiModel) dispatchCommit() (tea.Model, tea.Cmd) {
	message := strings.TrimSpace(m.messageInput.Value())
	if message == "" {
		m.result = "Commit message cannot be empty"
		m.resultKind = resultError
		return m, nil
	}

	m.busy = true
	m.result = ""
	m.resultKind = resultNone
	return m, tea.Batch(m.spinner.Tick, m.commitCmd(message))
}

// commitCmd runs the commit and push sequence off the UI loop.
func (m GuiModel) commitCmd(message string) tea.Cmd {
	return func() tea.Msg {
		err := actions.CommitAndPushAction(context.Background(), actions.CommitAndPushOptions{
			Message: message,
			Runner:  m.runner,
			Splog:   m.splog,
		})
		if err != nil {
			m.splog.Error("%v", err)
		}
		return commitDoneMsg{err: err}
	}
}

// firstLine trims a message to what fits on the single result line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (m GuiModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.messageInput, cmd = m.messageInput.Update(msg)
	}
	return m, cmd
}

func (m GuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + m.styles.titleStyle.Render("hullo") + "\n\n")

	b.WriteString("  " + m.styles.labelStyle.Render("Name") + "\n")
	b.WriteString("  " + m.nameInput.View() + "\n\n")

	b.WriteString("  " + m.styles.labelStyle.Render("Commit message") + "\n")
	b.WriteString("  " + m.messageInput.View() + "\n\n")

	switch {
	case m.busy:
		b.WriteString("  " + m.spinner.View() + m.styles.spinnerStyle.Render("Committing and pushing...") + "\n")
	case m.resultKind == resultOK:
		b.WriteString("  " + m.styles.okStyle.Render("✓ "+m.result) + "\n")
	case m.resultKind == resultError:
		b.WriteString("  " + m.styles.errorStyle.Render("✗ "+m.result) + "\n")
	case m.resultKind == resultPlain:
		b.WriteString("  " + m.result + "\n")
	}

	b.WriteString("\n  " + m.styles.dimStyle.Render("enter: greet/commit • ctrl+r: random figure • tab: switch field • esc: quit") + "\n")

	return b.String()
}

// RunGUI runs the interactive window and returns when the user quits.
func RunGUI(opts GuiOptions) error {
	m := NewGuiModel(opts)
	// Use WithInput/WithOutput to avoid TTY requirement in non-interactive environments
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	_, err := p.Run()
	return err
}
