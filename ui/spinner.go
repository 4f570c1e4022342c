// Package ui implements the interactive terminal surfaces of the CLI:
// the fetch spinner, the download option menu, and the transfer progress bar.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/preniv-cli/preniv/color"
	"github.com/preniv-cli/preniv/style"
)

// spinDoneMsg ends the spinner program, carrying the task outcome.
type spinDoneMsg struct {
	err error
}

type spinModel struct {
	spinner spinner.Model
	text    string
	err     error
	aborted bool
}

func (m spinModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinModel) View() string {
	return m.spinner.View() + " " + m.text
}

// Spin displays a spinner with the given text while the task runs, returning
// the task's error. Ctrl+C leaves the task running in the background and
// returns ErrAborted.
func Spin(text string, task func() error) error {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.Colored(color.Purple, "")

	p := tea.NewProgram(spinModel{spinner: s, text: text})
	go func() {
		p.Send(spinDoneMsg{err: task()})
	}()

	out, err := p.Run()
	if err != nil {
		return err
	}

	model := out.(spinModel)
	if model.aborted {
		return ErrAborted
	}
	return model.err
}
