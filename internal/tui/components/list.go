// Package components provides the Bubble Tea widgets the installer prompts
// are built from.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MnFeN/Triggernometry/internal/tui/ui"
)

// ListItem represents a single choice.
type ListItem struct {
	ID          string
	Title       string
	Description string
}

// ListSelectedMsg is sent when an item is chosen.
type ListSelectedMsg struct {
	Item  ListItem
	Index int
}

// List is a numbered, navigable list. Items can be chosen with enter or by
// typing their number.
type List struct {
	items    []ListItem
	selected int
	keys     ui.KeyMap
	styles   ui.Styles
}

// NewList creates a new list with the given items.
func NewList(items []ListItem) List {
	return List{
		items:  items,
		keys:   ui.DefaultKeyMap(),
		styles: ui.DefaultStyles(),
	}
}

// Items returns all items in the list.
func (l List) Items() []ListItem {
	result := make([]ListItem, len(l.items))
	copy(result, l.items)
	return result
}

// SelectedIndex returns the currently highlighted index.
func (l List) SelectedIndex() int {
	return l.selected
}

// SelectedItem returns the highlighted item, or nil if the list is empty.
func (l List) SelectedItem() *ListItem {
	if len(l.items) == 0 {
		return nil
	}
	item := l.items[l.selected]
	return &item
}

// SetSelected highlights index, clamped to the valid range.
func (l List) SetSelected(index int) List {
	if index >= len(l.items) {
		index = len(l.items) - 1
	}
	if index < 0 {
		index = 0
	}
	l.selected = index
	return l
}

// SelectID highlights the first item with the given ID, if any.
func (l List) SelectID(id string) List {
	for i, item := range l.items {
		if item.ID == id {
			l.selected = i
			break
		}
	}
	return l
}

// WithStyles returns the list with custom styles.
func (l List) WithStyles(styles ui.Styles) List {
	l.styles = styles
	return l
}

// Update handles navigation and selection keys.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.items) == 0 {
		return l, nil
	}

	if n := ui.Digit(keyMsg); n > 0 {
		if n > len(l.items) {
			return l, nil
		}
		l.selected = n - 1
		return l, l.selectCmd()
	}

	switch {
	case l.keys.IsUp(keyMsg):
		if l.selected > 0 {
			l.selected--
		}
	case l.keys.IsDown(keyMsg):
		if l.selected < len(l.items)-1 {
			l.selected++
		}
	case key.Matches(keyMsg, l.keys.Home):
		l.selected = 0
	case key.Matches(keyMsg, l.keys.End):
		l.selected = len(l.items) - 1
	case key.Matches(keyMsg, l.keys.Select):
		return l, l.selectCmd()
	}

	return l, nil
}

func (l List) selectCmd() tea.Cmd {
	item := l.items[l.selected]
	index := l.selected
	return func() tea.Msg {
		return ListSelectedMsg{Item: item, Index: index}
	}
}

// View renders every item with its number; the highlighted item also shows
// its description.
func (l List) View() string {
	if len(l.items) == 0 {
		return l.styles.Help.Render("No items")
	}

	var b strings.Builder
	for i, item := range l.items {
		number := l.styles.ListNumber.Render(fmt.Sprintf("%d.", i+1))
		if i == l.selected {
			b.WriteString(l.styles.ListItemActive.Render("▸ " + number + " " + item.Title))
			if item.Description != "" {
				b.WriteString("\n")
				b.WriteString(l.styles.Help.Render("      " + item.Description))
			}
		} else {
			b.WriteString(l.styles.ListItem.Render("  " + number + " " + item.Title))
		}
		if i < len(l.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
