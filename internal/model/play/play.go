package play

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/marsrover/internal/model/motd"
	"github.com/vinser/marsrover/internal/navigator"
	"github.com/vinser/marsrover/internal/render"
	"github.com/vinser/marsrover/internal/rover"
	"github.com/vinser/marsrover/internal/sound"
	"github.com/vinser/marsrover/internal/style"
	"github.com/vinser/marsrover/internal/tally"
)

const (
	minWidth = 60
	logSize  = 8

	tipRepeats  = 2
	tipInterval = 20 * time.Second
)

// ErrPoseFormat is returned for pose input that is not "x y O".
var ErrPoseFormat = errors.New("play: enter a pose as x y O, e.g. 1 1 E")

type stage int

const (
	stagePose stage = iota
	stageCommands
)

type entry struct {
	pose   string
	result navigator.Result
}

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	nav          *navigator.Navigator
	tally        *tally.Tally
	soundManager *sound.Manager

	stage     stage
	textInput textinput.Model
	pose      string            // pose of the robot awaiting commands
	shown     *rover.Position   // robot drawn on the plateau
	last      *navigator.Result // outcome of the latest robot
	err       error
	history   []entry // newest first
	motd      motd.Model
}

// EndSessionMsg is sent when the user submits an empty pose.
type EndSessionMsg struct{}

func endSessionCmd() tea.Cmd {
	return func() tea.Msg {
		return EndSessionMsg{}
	}
}

// New returns the mission screen for nav. soundManager may be nil.
func New(nav *navigator.Navigator, t *tally.Tally, soundManager *sound.Manager) Model {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	maxX, maxY := nav.Bounds()
	w, h := plateauSize(maxX, maxY)
	width := max(minWidth, w+30)
	m := Model{
		width:        width,
		height:       max(h, logSize) + 12,
		nav:          nav,
		tally:        t,
		soundManager: soundManager,
		textInput:    ti,
		motd:         motd.New(width, tipRepeats, tipInterval, time.Now().UnixNano()),
	}
	m.toPose()
	return m
}

// plateauSize returns the rendered plateau dimensions.
func plateauSize(maxX, maxY int) (w, h int) {
	label := len(strconv.Itoa(maxY)) + 1
	return label + 2*(maxX+1), maxY + 2
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m *Model) toPose() {
	m.stage = stagePose
	m.textInput.Prompt = "Pose: "
	m.textInput.Placeholder = "x y O, empty to finish"
	m.textInput.SetValue("")
}

func (m *Model) toCommands() {
	m.stage = stageCommands
	m.textInput.Prompt = "Commands: "
	m.textInput.Placeholder = "L R F"
	m.textInput.SetValue("")
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.motd.Init())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(motd.TickMsg); ok {
		var cmd tea.Cmd
		m.motd, cmd = m.motd.Update(msg)
		return m, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if m.stage == stagePose {
				return m.submitPose()
			}
			return m.submitCommands()
		case tea.KeyEsc:
			if m.stage == stageCommands {
				m.err = nil
				m.toPose()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) submitPose() (Model, tea.Cmd) {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return m, endSessionCmd()
	}
	x, y, heading, err := ParsePose(value)
	if err == nil {
		err = m.nav.Setup(x, y, heading)
	}
	if err != nil {
		m.err = err
		m.cue(sound.INVALID)
		return m, nil
	}

	pos, _ := m.nav.Robot().Position()
	m.shown = &pos
	m.last = nil
	m.err = nil
	m.pose = pos.String()
	m.toCommands()
	return m, nil
}

func (m Model) submitCommands() (Model, tea.Cmd) {
	commands := strings.TrimSpace(m.textInput.Value())
	// Reject the whole line before the robot moves so it can be retried.
	if _, err := navigator.ParseCommands(commands); err != nil {
		m.err = err
		m.cue(sound.INVALID)
		return m, nil
	}
	res, err := m.nav.Navigate(commands)
	if err != nil {
		m.err = err
		m.shown = nil
		m.cue(sound.INVALID)
		m.toPose()
		return m, nil
	}

	saved := m.nav.Suppressed() > 0
	m.tally.Record(res, saved)
	switch {
	case res.Lost:
		m.cue(sound.LOST)
	case saved:
		m.cue(sound.SCENT)
	default:
		m.cue(sound.DELIVERED)
	}
	log.Printf("robot %s %q -> %s", m.pose, commands, res)

	m.history = append([]entry{{pose: m.pose, result: res}}, m.history...)
	if len(m.history) > logSize {
		m.history = m.history[:logSize]
	}
	pos := res.Position
	m.shown = &pos
	m.last = &res
	m.err = nil
	m.toPose()
	return m, nil
}

func (m Model) cue(name string) {
	if m.soundManager == nil {
		return
	}
	if err := m.soundManager.Play(name); err != nil {
		log.Printf("sound %s: %v", name, err)
	}
}

// ParsePose reads "x y O". The heading is left for the navigator to check.
func ParsePose(s string) (x, y int, heading string, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, "", ErrPoseFormat
	}
	if x, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, "", fmt.Errorf("%w: %q", ErrPoseFormat, fields[0])
	}
	if y, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, "", fmt.Errorf("%w: %q", ErrPoseFormat, fields[1])
	}
	return x, y, fields[2], nil
}

// Last returns the outcome of the latest robot, or nil.
func (m Model) Last() *navigator.Result {
	return m.last
}

// Err returns the error of the latest input, if any.
func (m Model) Err() error {
	return m.err
}

const footer = "enter — confirm, esc — back to pose, ? — help, ctrl+s — sound, ctrl+c — quit"

func (m Model) View() string {
	maxX, maxY := m.nav.Bounds()
	title := fmt.Sprintf("Plateau %d × %d", maxX, maxY)
	return render.Page(title, m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	maxX, maxY := m.nav.Bounds()
	plateau := render.PlateauView(render.Plateau{
		MaxX:   maxX,
		MaxY:   maxY,
		Scents: m.nav.Scents(),
		Trail:  m.trail(),
		Robot:  m.shown,
		Lost:   m.last != nil && m.last.Lost,
	})
	board := lipgloss.JoinHorizontal(lipgloss.Top, plateau, "    ", m.renderHistory())

	lines := []string{m.renderTally(), "", board, "", m.renderStatus(), m.textInput.View(), "", m.motd.View()}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) trail() []rover.Position {
	if m.shown == nil {
		return nil
	}
	return m.nav.Trail()
}

func (m Model) renderTally() string {
	header := style.PlayHeader.Render(fmt.Sprintf(
		"Delivered: %d  Lost: %d  Scents: %d",
		m.tally.Delivered(), m.tally.Lost(), len(m.nav.Scents()),
	))
	if streak := m.tally.LostStreak(); streak > 1 {
		header += "  " + style.Lost.Render(fmt.Sprintf("%d lost in a row", streak))
	}
	return header
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return style.Placeholder.Render("no robots yet")
	}
	lines := make([]string, 0, len(m.history))
	for age, e := range m.history {
		color := "sand"
		if e.result.Lost {
			color = "pink"
		}
		lines = append(lines, style.Faded(color, age).Render(e.pose+" → "+e.result.String()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderStatus() string {
	switch {
	case m.err != nil:
		return style.ErrorText.Render(m.err.Error())
	case m.last != nil && m.last.Lost:
		return style.Lost.Render(m.last.String())
	case m.last != nil:
		return style.Delivered.Render(m.last.String())
	case m.stage == stageCommands:
		return style.LogText.Render("robot " + m.pose + " awaiting commands")
	}
	return ""
}
