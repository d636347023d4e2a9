package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/marsrover/internal/model/about"
	"github.com/vinser/marsrover/internal/model/play"
	"github.com/vinser/marsrover/internal/model/quit"
	"github.com/vinser/marsrover/internal/model/setup"
	"github.com/vinser/marsrover/internal/model/splash"
	"github.com/vinser/marsrover/internal/navigator"
	"github.com/vinser/marsrover/internal/state"
	"github.com/vinser/marsrover/internal/tally"
)

type status uint

const (
	statusSplash status = iota
	statusSetup
	statusMission
	statusAbout
	statusQuitting
)

const (
	aboutWidth  = 64
	aboutHeight = 24
)

type Model struct {
	status     status
	prevStatus status // screen to return to from about
	state      *state.State
	nav        *navigator.Navigator
	tally      *tally.Tally
	// models
	splash splash.Model
	setup  setup.Model
	play   play.Model
	about  about.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

// New returns the root model starting at the splash screen.
func New(st *state.State) Model {
	return Model{
		status: statusSplash,
		state:  st,
		tally:  tally.New(),
		splash: splash.New(),
		setup:  setup.New(st.LastMaxX, st.LastMaxY),
	}
}

func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.status == statusQuitting {
				return m, tea.Quit
			}
			return m.startQuitting()
		case "ctrl+s": // mute/unmute
			m.state.SetMute(!m.state.Mute)
			if err := m.state.Save(); err != nil {
				log.Printf("save settings: %v", err)
			}
			return m, nil
		case "?":
			if m.status == statusSetup || m.status == statusMission {
				m.prevStatus = m.status
				m.status = statusAbout
				m.about = about.New(aboutWidth, aboutHeight)
				m.about.SetSize(m.termWidth, m.termHeight)
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.splash.SetSize(msg.Width, msg.Height)
		m.setup.SetSize(msg.Width, msg.Height)
		m.play.SetSize(msg.Width, msg.Height)
		m.about.SetSize(msg.Width, msg.Height)
		m.quit.SetSize(msg.Width, msg.Height)
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusSplash:
		switch msg.(type) {
		case splash.TimedoutMsg:
			m.status = statusSetup
			return m, m.setup.Init()
		default:
			m.splash, cmd = m.splash.Update(msg)
		}
	case statusSetup:
		switch msg := msg.(type) {
		case setup.GridReadyMsg:
			return m.startMission(msg)
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
	case statusMission:
		switch msg.(type) {
		case play.EndSessionMsg:
			return m.startQuitting()
		default:
			m.play, cmd = m.play.Update(msg)
		}
	case statusAbout:
		switch msg.(type) {
		case about.CloseAboutMsg:
			m.status = m.prevStatus
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusQuitting:
		switch msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) startMission(msg setup.GridReadyMsg) (tea.Model, tea.Cmd) {
	if err := m.state.RememberGrid(msg.MaxX, msg.MaxY); err != nil {
		log.Printf("save settings: %v", err)
	}
	m.nav = msg.Navigator
	m.play = play.New(m.nav, m.tally, m.state.SoundManager)
	m.play.SetSize(m.termWidth, m.termHeight)
	m.status = statusMission
	log.Printf("plateau %d x %d ready", msg.MaxX, msg.MaxY)
	return m, m.play.Init()
}

func (m Model) startQuitting() (tea.Model, tea.Cmd) {
	m.state.SoundManager.StopAll()
	scents := 0
	if m.nav != nil {
		scents = len(m.nav.Scents())
	}
	m.quit = quit.New(m.tally, scents)
	m.quit.SetSize(m.termWidth, m.termHeight)
	m.status = statusQuitting
	return m, m.quit.Init()
}

func (m Model) View() string {
	switch m.status {
	case statusSplash:
		return m.splash.View()
	case statusSetup:
		return m.setup.View()
	case statusMission:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
