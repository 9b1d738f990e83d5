package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridnav-go/pkg/gridnav"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/parser"
)

func newTestModel() Model {
	p := parser.NewProtection(true)
	for _, ref := range []string{"C6", "E6", "G6"} {
		p.SetCellLocked(models.MustParseAddress(ref), false)
	}
	p.UnlockRange(models.Range{R1: 6, C1: 2, R2: 6, C2: 6})
	rows := []models.CellRow{{R: 5, C: map[int]string{1: "Week 1"}}}
	wb := gridnav.NewWorkbook("form.xlsx", "Form", p, rows, gridnav.DefaultOptions())
	return New(wb, models.MustParseAddress("C6"), 8)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModelEnterAfterTab(t *testing.T) {
	m := send(t, newTestModel(),
		tea.WindowSizeMsg{Width: 100, Height: 30},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	assert.Equal(t, models.MustParseAddress("G6"), m.Cursor())
	assert.Contains(t, m.View(), "span C6:G6")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.MustParseAddress("C7"), m.Cursor())
	assert.Contains(t, m.View(), "enter: G6 -> C7")
}

func TestModelShiftTab(t *testing.T) {
	m := send(t, newTestModel(), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, models.MustParseAddress("C6"), m.Cursor())
}

func TestModelQuit(t *testing.T) {
	_, cmd := newTestModel().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelScrollsToCursor(t *testing.T) {
	m := send(t, newTestModel(), tea.WindowSizeMsg{Width: 40, Height: 10})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, models.MustParseAddress("C9"), m.Cursor())

	view := m.View()
	assert.Contains(t, view, "Form!C9")
	header := strings.SplitN(view, "\n", 2)[0]
	assert.Contains(t, header, "C")
	assert.Greater(t, m.top, 0)
}
