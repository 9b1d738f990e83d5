// Package tui is an interactive terminal grid for trying navigation on a
// loaded sheet.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/gridnav-go/pkg/gridnav"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/grid"
	"github.com/ukaji3/gridnav-go/pkg/gridnav/models"
	"github.com/xuri/excelize/v2"
)

const (
	rowGutter   = 6
	chromeLines = 4 // column header, status, last step, help
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	lockedStyle = lipgloss.NewStyle().Faint(true)
	spanStyle   = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// Model is the bubbletea model of the grid.
type Model struct {
	wb       *gridnav.Workbook
	view     *grid.View
	keys     keyMap
	help     help.Model
	colWidth int
	width    int
	height   int
	top      int
	left     int
	last     *models.Step
}

// New returns a grid model over wb with the cursor at start.
func New(wb *gridnav.Workbook, start models.Address, colWidth int) Model {
	if colWidth < 3 {
		colWidth = 3
	}
	return Model{
		wb:       wb,
		view:     wb.NewView(start),
		keys:     newKeyMap(),
		help:     help.New(),
		colWidth: colWidth,
		width:    80,
		height:   24,
	}
}

// Cursor returns the focused cell.
func (m Model) Cursor() models.Address {
	return m.view.Cursor()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if k, ok := m.keys.navKey(msg); ok {
			step := m.view.Press(k)
			m.last = &step
			m.scrollToCursor()
		}
	}
	return m, nil
}

func (m Model) visibleCols() int {
	return max(1, (m.width-rowGutter)/m.colWidth)
}

func (m Model) visibleRows() int {
	return max(1, m.height-chromeLines)
}

// scrollToCursor moves the viewport origin so the cursor is on screen.
func (m *Model) scrollToCursor() {
	c := m.view.Cursor()
	if c.Row < m.top {
		m.top = c.Row
	}
	if rows := m.visibleRows(); c.Row >= m.top+rows {
		m.top = c.Row - rows + 1
	}
	if c.Col < m.left {
		m.left = c.Col
	}
	if cols := m.visibleCols(); c.Col >= m.left+cols {
		m.left = c.Col - cols + 1
	}
}

func (m Model) View() string {
	var b strings.Builder
	bounds := m.view.Bounds()
	lastCol := min(m.left+m.visibleCols(), bounds.Cols)
	lastRow := min(m.top+m.visibleRows(), bounds.Rows)

	cell := lipgloss.NewStyle().Width(m.colWidth).MaxWidth(m.colWidth)
	gutter := lipgloss.NewStyle().Width(rowGutter).MaxWidth(rowGutter)

	b.WriteString(gutter.Render(""))
	for col := m.left; col < lastCol; col++ {
		name, _ := excelize.ColumnNumberToName(col + 1)
		b.WriteString(headerStyle.Inherit(cell).Render(name))
	}
	b.WriteString("\n")

	cursor := m.view.Cursor()
	span, hasSpan := m.view.Span()
	for row := m.top; row < lastRow; row++ {
		b.WriteString(headerStyle.Inherit(gutter).Render(strconv.Itoa(row + 1)))
		for col := m.left; col < lastCol; col++ {
			a := models.Address{Row: row, Col: col}
			style := cell
			switch {
			case a == cursor:
				style = cursorStyle.Inherit(cell)
			case hasSpan && row == span.StartRow && span.Contains(col):
				style = spanStyle.Inherit(cell)
			case !m.view.Enterable(a):
				style = lockedStyle.Inherit(cell)
			}
			b.WriteString(style.Render(" " + m.wb.Value(a)))
		}
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.lastStep())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status() string {
	c := m.view.Cursor()
	protection := "unprotected"
	if m.wb.SheetProtected() {
		protection = "protected"
	}
	s := fmt.Sprintf("%s!%s = %q  [%s]", m.wb.SheetName, c, m.wb.Value(c), protection)
	if span, ok := m.view.Span(); ok {
		s += fmt.Sprintf("  span %s", models.Range{R1: span.StartRow, C1: span.StartCol, R2: span.StartRow, C2: span.EndCol})
	}
	return s
}

func (m Model) lastStep() string {
	if m.last == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s -> %s", m.last.Key, m.last.From, m.last.To)
}
