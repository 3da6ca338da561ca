package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileItems() []ListItem {
	return []ListItem{
		{ID: "original", Title: "Original ACT", Description: `%APPDATA%\Advanced Combat Tracker`},
		{ID: "dmmod", Title: "DM integrated bundle"},
		{ID: "cafeact", Title: "CafeACT"},
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func selected(t *testing.T, cmd tea.Cmd) ListSelectedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ListSelectedMsg)
	require.True(t, ok)
	return msg
}

func TestNewList(t *testing.T) {
	t.Parallel()

	list := NewList(profileItems())

	assert.Len(t, list.Items(), 3)
	assert.Equal(t, 0, list.SelectedIndex())
	assert.Equal(t, "original", list.SelectedItem().ID)
}

func TestList_Empty(t *testing.T) {
	t.Parallel()

	list := NewList(nil)

	assert.Nil(t, list.SelectedItem())
	list, cmd := list.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, list.View(), "No items")
}

func TestList_Navigation(t *testing.T) {
	t.Parallel()

	list := NewList(profileItems())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.SelectedIndex())

	list, _ = list.Update(keyRune('j'))
	assert.Equal(t, 2, list.SelectedIndex())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, list.SelectedIndex(), "stays at end")

	list, _ = list.Update(keyRune('k'))
	assert.Equal(t, 1, list.SelectedIndex())

	list, _ = list.Update(keyRune('g'))
	assert.Equal(t, 0, list.SelectedIndex())

	list, _ = list.Update(keyRune('G'))
	assert.Equal(t, 2, list.SelectedIndex())
}

func TestList_SelectWithEnter(t *testing.T) {
	t.Parallel()

	list := NewList(profileItems())
	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := list.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := selected(t, cmd)
	assert.Equal(t, "dmmod", msg.Item.ID)
	assert.Equal(t, 1, msg.Index)
}

func TestList_SelectWithNumber(t *testing.T) {
	t.Parallel()

	list := NewList(profileItems())

	list, cmd := list.Update(keyRune('3'))
	msg := selected(t, cmd)
	assert.Equal(t, "cafeact", msg.Item.ID)
	assert.Equal(t, 2, list.SelectedIndex())

	list, cmd = list.Update(keyRune('4'))
	assert.Nil(t, cmd, "out of range number is ignored")
	assert.Equal(t, 2, list.SelectedIndex())
}

func TestList_SetSelected(t *testing.T) {
	t.Parallel()

	list := NewList(profileItems())

	assert.Equal(t, 2, list.SetSelected(2).SelectedIndex())
	assert.Equal(t, 2, list.SetSelected(10).SelectedIndex())
	assert.Equal(t, 0, list.SetSelected(-1).SelectedIndex())
	assert.Equal(t, 0, NewList(nil).SetSelected(3).SelectedIndex())
}

func TestList_SelectID(t *testing.T) {
	t.Parallel()

	list := NewList(profileItems())

	assert.Equal(t, 2, list.SelectID("cafeact").SelectedIndex())
	assert.Equal(t, 0, list.SelectID("missing").SelectedIndex())
}

func TestList_View(t *testing.T) {
	t.Parallel()

	view := NewList(profileItems()).View()

	assert.Contains(t, view, "1.")
	assert.Contains(t, view, "Original ACT")
	assert.Contains(t, view, "3.")
	assert.Contains(t, view, "CafeACT")
	assert.Contains(t, view, "Advanced Combat Tracker", "highlighted item shows its description")
}
