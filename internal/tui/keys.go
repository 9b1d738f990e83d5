package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
)

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Enter    key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next row")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.ShiftTab, k.Enter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Up, k.Down}, {k.Tab, k.ShiftTab, k.Enter, k.Quit}}
}

// navKey maps a key press to the navigation key it is bound to.
func (k keyMap) navKey(msg tea.KeyMsg) (models.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return models.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return models.KeyArrowRight, true
	case key.Matches(msg, k.Up):
		return models.KeyArrowUp, true
	case key.Matches(msg, k.Down):
		return models.KeyArrowDown, true
	case key.Matches(msg, k.Tab):
		return models.KeyTab, true
	case key.Matches(msg, k.ShiftTab):
		return models.KeyShiftTab, true
	case key.Matches(msg, k.Enter):
		return models.KeyEnter, true
	}
	return models.KeyOther, false
}
