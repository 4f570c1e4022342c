package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/preniv-cli/preniv/util"
)

// progressMsg reports transfer advancement in bytes.
type progressMsg struct {
	done  int64
	total int64
}

// progressDoneMsg ends the progress program, carrying the transfer outcome.
type progressDoneMsg struct {
	err error
}

type progressModel struct {
	bar   progress.Model
	label string
	done  int64
	total int64
	err   error
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total = msg.done, msg.total
		if m.total > 0 {
			return m, m.bar.SetPercent(float64(m.done) / float64(m.total))
		}
		return m, nil
	case progressDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	status := util.FormatBytes(m.done)
	if m.total > 0 {
		status = fmt.Sprintf("%s / %s", util.FormatBytes(m.done), util.FormatBytes(m.total))
	}
	return fmt.Sprintf("%s\n%s %s\n", m.label, m.bar.View(), status)
}

// Transfer displays a progress bar while run executes. The run callback
// receives a report function suitable for download.Request.Progress.
func Transfer(label string, run func(report func(done, total int64)) error) error {
	m := progressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		label: label,
	}

	p := tea.NewProgram(m)
	go func() {
		err := run(func(done, total int64) {
			p.Send(progressMsg{done: done, total: total})
		})
		p.Send(progressDoneMsg{err: err})
	}()

	out, err := p.Run()
	if err != nil {
		return err
	}
	return out.(progressModel).err
}
