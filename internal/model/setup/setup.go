package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/marsrover/internal/navigator"
	"github.com/vinser/marsrover/internal/render"
	"github.com/vinser/marsrover/internal/style"
)

const (
	width  = 60
	height = 12
)

// ErrGridFormat is returned for grid input that is not two integers.
var ErrGridFormat = errors.New("setup: enter the upper-right corner as two integers, e.g. 5 3")

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	textInput textinput.Model
	err       error
}

// GridReadyMsg carries a fresh navigator for the bounds the user entered.
type GridReadyMsg struct {
	Navigator  *navigator.Navigator
	MaxX, MaxY int
}

func gridReadyCmd(nav *navigator.Navigator, maxX, maxY int) tea.Cmd {
	return func() tea.Msg {
		return GridReadyMsg{Navigator: nav, MaxX: maxX, MaxY: maxY}
	}
}

// New returns the grid size screen prefilled with the last used bounds.
func New(maxX, maxY int) Model {
	ti := textinput.New()
	ti.Prompt = "Plateau: "
	ti.Placeholder = "x y"
	ti.CharLimit = 16
	ti.Width = 20
	ti.SetValue(fmt.Sprintf("%d %d", maxX, maxY))
	ti.Focus()

	return Model{
		width:     width,
		height:    height,
		textInput: ti,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

// Err returns the last validation error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		maxX, maxY, err := ParseGrid(m.textInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		nav, err := navigator.New(maxX, maxY)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		return m, gridReadyCmd(nav, maxX, maxY)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// ParseGrid reads "x y" into the plateau's upper-right corner.
func ParseGrid(s string) (maxX, maxY int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, ErrGridFormat
	}
	if maxX, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrGridFormat, fields[0])
	}
	if maxY, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrGridFormat, fields[1])
	}
	return maxX, maxY, nil
}

const footer = "enter — land, ? — help, ctrl+c — quit"

func (m Model) View() string {
	return render.Page("Mars Rover", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	lines := []string{
		style.SetupTitle.Render("Where is the upper-right corner of the plateau?"),
		"",
		m.textInput.View(),
		"",
	}
	if m.err != nil {
		lines = append(lines, style.ErrorText.Render(m.err.Error()))
	} else {
		lines = append(lines, style.Placeholder.Render(fmt.Sprintf("bounds up to %d", navigator.MaxGridBound)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
