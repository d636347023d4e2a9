package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/marsrover/internal/render"
	"github.com/vinser/marsrover/internal/style"
	"github.com/vinser/marsrover/internal/tally"
)

const (
	quitPeriod = 3 * time.Second
	width      = 40
	height     = 11
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	quitUntil time.Time
	robots    int
	delivered int
	lost      int
	saved     int
	scents    int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New returns the farewell screen with the session summary.
func New(t *tally.Tally, scents int) Model {
	return Model{
		width:     width,
		height:    height,
		quitUntil: time.Now().Add(quitPeriod),
		robots:    t.Robots(),
		delivered: t.Delivered(),
		lost:      t.Lost(),
		saved:     t.Saved(),
		scents:    scents,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, timedoutCmd()
	}
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

const footer = "any key — leave now"

func (m Model) View() string {
	return render.Page("Mission over", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	if m.robots == 0 {
		return "No robots were sent.\nBye!"
	}
	lines := []string{
		style.LogText.Render(fmt.Sprintf("Robots sent: %d", m.robots)),
		style.Delivered.Render(fmt.Sprintf("Delivered: %d", m.delivered)),
		style.Lost.Render(fmt.Sprintf("Lost:      %d", m.lost)),
		style.LogText.Render(fmt.Sprintf("Saved by a scent: %d", m.saved)),
		style.LogText.Render(fmt.Sprintf("Scents left: %d", m.scents)),
		"",
		"Bye!",
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
