// Package progress renders a terminal progress bar while a capture file is
// decoded in batch mode, shown only when stdout is a TTY.
package progress

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Bold(true)
)

const barWidth = 40

// TickMsg carries a progress update: cycles decoded so far out of total.
type TickMsg struct {
	Done, Total int64
}

// DoneMsg signals decoding finished, successfully or not.
type DoneMsg struct {
	Err error
}

// Model is a bubbletea model tracking one capture decode run.
type Model struct {
	done, total int64
	err         error
	finished    bool
}

// NewModel returns a fresh progress model for a run expected to produce
// total cycle records (0 if unknown in advance).
func NewModel(total int64) Model {
	return Model{total: total}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.done, m.total = msg.Done, msg.Total
		return m, nil
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.finished {
		if m.err != nil {
			return fmt.Sprintf("decode failed: %v\n", m.err)
		}
		return fmt.Sprintf("decoded %d cycles\n", m.done)
	}

	frac := 0.0
	if m.total > 0 {
		frac = float64(m.done) / float64(m.total)
	}
	filled := int(frac * barWidth)
	if filled > barWidth {
		filled = barWidth
	}

	bar := barStyle.Render(repeat("█", filled)) + emptyStyle.Render(repeat("░", barWidth-filled))
	return fmt.Sprintf("%s %s %d/%d\n", labelStyle.Render("decoding"), bar, m.done, m.total)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
