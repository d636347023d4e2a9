package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/marsrover/internal/style"
)

const roverSprite = `
   ▄▄█▄▄
 ▄█▀▀▀▀▀█▄
▐█▄▄▄▄▄▄▄█▌
 ◉   ◉   ◉
`

const (
	spriteWidth  = 12
	spriteHeight = 4

	width  = 60
	height = 11

	middlePause      = 2 * time.Second
	moveTickDuration = 60 * time.Millisecond

	title = "M A R S   R O V E R"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	pos        int // left edge of the sprite
	paused     bool
	pauseUntil time.Time
	track      []bool // ground cells the rover has rolled over

	grid [][]rune
	sb   *strings.Builder
}

type MoveMsg struct{}

func moveCmd() tea.Cmd {
	return tea.Tick(moveTickDuration, func(t time.Time) tea.Msg {
		return MoveMsg{}
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New() Model {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
	}
	return Model{
		width:  width,
		height: height,
		pos:    -spriteWidth,
		track:  make([]bool, width),
		grid:   grid,
		sb:     &strings.Builder{},
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return moveCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MoveMsg:
		return m.updateRover(time.Now())
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

func (m Model) updateRover(now time.Time) (Model, tea.Cmd) {
	if m.paused {
		if now.Before(m.pauseUntil) {
			return m, moveCmd()
		}
		m.paused = false
	} else if m.pos == m.center() && m.pauseUntil.IsZero() {
		m.paused = true
		m.pauseUntil = now.Add(middlePause)
		return m, moveCmd()
	}

	m.pos++
	// Rear wheel leaves the track.
	if rear := m.pos; rear >= 0 && rear < len(m.track) {
		m.track[rear] = true
	}
	if m.pos >= m.width {
		return m, timedoutCmd()
	}
	return m, moveCmd()
}

func (m Model) center() int {
	return m.width/2 - spriteWidth/2
}

func (m Model) groundY() int {
	return (m.height-spriteHeight)/2 + spriteHeight
}

func (m Model) View() string {
	m.clearGrid()
	m.drawGround()
	m.drawRover()
	view := m.renderGrid()
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m *Model) clearGrid() {
	for i := range m.grid {
		for j := range m.grid[i] {
			m.grid[i][j] = ' '
		}
	}
}

func (m *Model) drawGround() {
	y := m.groundY()
	for x := 0; x < m.width; x++ {
		if m.track[x] {
			m.grid[y][x] = '∙'
		} else if x%2 == 0 {
			m.grid[y][x] = '·'
		}
	}
}

func (m *Model) drawRover() {
	top := (m.height - spriteHeight) / 2
	lines := strings.Split(strings.Trim(roverSprite, "\n"), "\n")
	for dy, line := range lines {
		for dx, r := range []rune(line) {
			x := m.pos + dx
			if r == ' ' || x < 0 || x >= m.width {
				continue
			}
			m.grid[top+dy][x] = r
		}
	}
}

func (m *Model) renderGrid() string {
	m.sb.Reset()
	titleRow := 1
	groundRow := m.groundY()
	for y, row := range m.grid {
		switch {
		case y == titleRow && m.paused:
			pad := (m.width - lipgloss.Width(title)) / 2
			m.sb.WriteString(strings.Repeat(" ", pad) + style.Title.Render(title))
		case y == groundRow:
			m.sb.WriteString(style.Trail.Render(string(row)))
		default:
			m.sb.WriteString(style.Rover.Render(string(row)))
		}
		if y < len(m.grid)-1 {
			m.sb.WriteByte('\n')
		}
	}
	return m.sb.String()
}
