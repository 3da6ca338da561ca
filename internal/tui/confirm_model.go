package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MnFeN/Triggernometry/internal/tui/components"
	"github.com/MnFeN/Triggernometry/internal/tui/ui"
)

// confirmModel shows a profile's preconditions and waits for an answer.
type confirmModel struct {
	title     string
	confirm   components.Confirm
	styles    ui.Styles
	answered  bool
	confirmed bool
}

func newConfirmModel(title, message string) confirmModel {
	return confirmModel{
		title:   title,
		confirm: components.NewConfirm(message),
		styles:  ui.DefaultStyles(),
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.confirm = m.confirm.WithWidth(min(msg.Width-4, ui.DefaultWidth*2))
		}
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd

	case components.ConfirmResultMsg:
		m.answered = true
		m.confirmed = msg.Confirmed
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	return m.styles.Title.Render(m.title) + "\n" + m.confirm.View() + "\n"
}
