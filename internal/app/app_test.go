package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinser/marsrover/internal/model/about"
	"github.com/vinser/marsrover/internal/model/play"
	"github.com/vinser/marsrover/internal/model/quit"
	"github.com/vinser/marsrover/internal/model/setup"
	"github.com/vinser/marsrover/internal/model/splash"
	"github.com/vinser/marsrover/internal/state"
)

// newApp returns the app past the splash screen.
func newApp(t *testing.T) Model {
	t.Helper()
	// Keep settings writes inside the test sandbox.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	m := New(&state.State{LastMaxX: 5, LastMaxY: 3})
	require.Equal(t, statusSplash, m.status)
	m, _ = update(t, m, splash.TimedoutMsg{})
	require.Equal(t, statusSetup, m.status)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(Model)
	require.True(t, ok)
	return am, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// landed drives the app past the setup screen with the default 5 x 3 grid.
func landed(t *testing.T) Model {
	t.Helper()
	m := newApp(t)
	m, cmd := update(t, m, enter())
	require.NotNil(t, cmd)
	ready, ok := cmd().(setup.GridReadyMsg)
	require.True(t, ok)
	m, _ = update(t, m, ready)
	require.Equal(t, statusMission, m.status)
	return m
}

func TestSetupToMission(t *testing.T) {
	m := landed(t)
	assert.Equal(t, 5, m.state.LastMaxX)
	assert.Equal(t, 3, m.state.LastMaxY)
	assert.Contains(t, m.View(), "Plateau 5 × 3")
}

func TestMissionRun(t *testing.T) {
	m := landed(t)
	for _, in := range []string{"3 2 N", "FRRFLLFFRRFLL"} {
		m, _ = update(t, m, key(in))
		m, _ = update(t, m, enter())
	}
	assert.Equal(t, 1, m.tally.Lost())
	assert.Len(t, m.nav.Scents(), 1)
}

func TestEndSessionShowsSummary(t *testing.T) {
	m := landed(t)
	m, cmd := update(t, m, play.EndSessionMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, statusQuitting, m.status)
	assert.Contains(t, m.View(), "No robots were sent.")

	_, cmd = update(t, m, quit.TimedoutMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSplashSkip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	m := New(&state.State{LastMaxX: 5, LastMaxY: 3})
	m, cmd := update(t, m, enter())
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, statusSetup, m.status)
	assert.Contains(t, m.View(), "5 3")
}

func TestCtrlC(t *testing.T) {
	m := newApp(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, statusQuitting, m.status)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAboutRoundTrip(t *testing.T) {
	m := landed(t)
	m, _ = update(t, m, key("?"))
	require.Equal(t, statusAbout, m.status)
	assert.Contains(t, m.View(), "About")

	m, _ = update(t, m, about.CloseAboutMsg{})
	assert.Equal(t, statusMission, m.status)
}

func TestToggleMute(t *testing.T) {
	m := newApp(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.state.Mute)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.state.Mute)
}

func TestWindowSize(t *testing.T) {
	m := newApp(t)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.NotNil(t, cmd)
	assert.Equal(t, 120, m.termWidth)
	assert.Equal(t, 40, m.termHeight)
}
