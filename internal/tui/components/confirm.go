package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MnFeN/Triggernometry/internal/tui/ui"
)

// ConfirmResultMsg is sent when the user answers.
type ConfirmResultMsg struct {
	Confirmed bool
}

// Confirm is a yes/no question.
type Confirm struct {
	message  string
	yesLabel string
	noLabel  string
	focused  bool // true = yes
	width    int
	keys     ui.KeyMap
	styles   ui.Styles
}

// NewConfirm creates a confirmation with "Continue" focused.
func NewConfirm(message string) Confirm {
	return Confirm{
		message:  message,
		yesLabel: "Continue",
		noLabel:  "Cancel",
		focused:  true,
		width:    ui.DefaultWidth,
		keys:     ui.DefaultKeyMap(),
		styles:   ui.DefaultStyles(),
	}
}

// Message returns the question.
func (c Confirm) Message() string {
	return c.message
}

// Focused returns true if yes is focused.
func (c Confirm) Focused() bool {
	return c.focused
}

// WithLabels sets the button labels.
func (c Confirm) WithLabels(yes, no string) Confirm {
	c.yesLabel = yes
	c.noLabel = no
	return c
}

// WithWidth sets the render width.
func (c Confirm) WithWidth(width int) Confirm {
	c.width = width
	return c
}

// Update handles focus and answer keys.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case c.keys.IsLeft(keyMsg):
		c.focused = true
	case c.keys.IsRight(keyMsg):
		c.focused = false
	case keyMsg.Type == tea.KeyTab:
		c.focused = !c.focused
	case key.Matches(keyMsg, c.keys.Select):
		return c, answer(c.focused)
	case key.Matches(keyMsg, c.keys.Accept):
		return c, answer(true)
	case key.Matches(keyMsg, c.keys.Reject), c.keys.IsAbort(keyMsg):
		return c, answer(false)
	}
	return c, nil
}

func answer(confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return ConfirmResultMsg{Confirmed: confirmed}
	}
}

// View renders the question above the two buttons.
func (c Confirm) View() string {
	yesStyle := c.styles.Button
	noStyle := c.styles.Button
	if c.focused {
		yesStyle = c.styles.ButtonActive
	} else {
		noStyle = c.styles.ButtonActive
	}

	message := c.styles.Paragraph.Width(c.width).Render(c.message)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render(c.yesLabel), "  ", noStyle.Render(c.noLabel))
	row := lipgloss.NewStyle().Width(c.width).Align(lipgloss.Center).Render(buttons)

	return lipgloss.JoinVertical(lipgloss.Left, message, "", row)
}
