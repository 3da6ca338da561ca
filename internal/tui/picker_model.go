package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MnFeN/Triggernometry/internal/tui/components"
	"github.com/MnFeN/Triggernometry/internal/tui/ui"
)

// pickerModel is a single-choice prompt.
type pickerModel struct {
	title    string
	list     components.List
	styles   ui.Styles
	keys     ui.KeyMap
	chosen   *components.ListItem
	canceled bool
}

func newPickerModel(title string, items []components.ListItem, preselect string) pickerModel {
	styles := ui.DefaultStyles()
	return pickerModel{
		title:  title,
		list:   components.NewList(items).WithStyles(styles).SelectID(preselect),
		styles: styles,
		keys:   ui.DefaultKeyMap(),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.IsAbort(msg) {
			m.canceled = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case components.ListSelectedMsg:
		item := msg.Item
		m.chosen = &item
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen != nil {
		return m.styles.Success.Render("✓ "+m.title+": "+m.chosen.Title) + "\n"
	}
	if m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.HelpKey.Render("↑/↓"))
	b.WriteString(m.styles.Help.Render(" move  "))
	b.WriteString(m.styles.HelpKey.Render("enter/1-9"))
	b.WriteString(m.styles.Help.Render(" choose  "))
	b.WriteString(m.styles.HelpKey.Render("esc"))
	b.WriteString(m.styles.Help.Render(" cancel"))
	b.WriteString("\n")
	return b.String()
}
