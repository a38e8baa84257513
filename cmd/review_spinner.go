package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reviewDoneMsg struct {
	err error
}

type reviewSpinnerModel struct {
	spinner spinner.Model
	label   string
	review  tea.Cmd
	err     error
	done    bool
}

func newReviewSpinnerModel(label string, review tea.Cmd) reviewSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return reviewSpinnerModel{
		spinner: s,
		label:   label,
		review:  review,
	}
}

func (m reviewSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.review)
}

func (m reviewSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case reviewDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m reviewSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

func runReviewSpinner(ctx context.Context, output io.Writer, review func(context.Context) error) error {
	reviewCmd := func() tea.Msg {
		return reviewDoneMsg{err: review(ctx)}
	}

	p := tea.NewProgram(
		newReviewSpinnerModel("Running review...", reviewCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(reviewSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
