package motd

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/marsrover/internal/embeddata"
)

// Model scrolls mission control tips through a fixed-width frame.
type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   []rune
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type motdMessages struct {
	Tips []string `json:"tips"`
}

const fallback = "Mission control standing by."

// New shows each tip repeats times, then waits interval before the next one.
func New(frameWidth, repeats int, interval time.Duration, seed int64) Model {
	rng := rand.New(rand.NewSource(seed))

	var msgs []string
	if data, err := embeddata.ReadTips(); err == nil {
		var tips motdMessages
		if json.Unmarshal(data, &tips) == nil {
			msgs = tips.Tips
		}
	}
	if len(msgs) == 0 {
		msgs = []string{fallback}
	}

	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("180")).Italic(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    []rune(msgs[rng.Intn(len(msgs))]),
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if m.doneCount >= m.repeats {
		if time.Since(m.lastShown) >= m.interval {
			m.current = []rune(m.msgs[m.rng.Intn(len(m.msgs))])
			m.lastShown = time.Now()
			m.doneCount = 0
			m.offset = 0
		}
		return m, Tick()
	}
	m.offset++
	if m.offset >= len(m.current)+m.frameWidth {
		m.offset = 0
		m.doneCount++
		m.lastShown = time.Now()
	}
	return m, Tick()
}

// Current returns the tip on display.
func (m Model) Current() string {
	return string(m.current)
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}
	spaces := []rune(strings.Repeat(" ", m.frameWidth))
	text := make([]rune, 0, 2*m.frameWidth+len(m.current))
	text = append(append(append(text, spaces...), m.current...), spaces...)

	start := min(m.offset, len(text))
	end := min(start+m.frameWidth, len(text))
	return m.style.Render(string(text[start:end]))
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
