package navigator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinser/marsrover/internal/navigator"
	"github.com/vinser/marsrover/internal/rover"
)

func pos(x, y int, o rover.Orientation) rover.Position {
	return rover.Position{X: x, Y: y, Orientation: o}
}

func mustNavigator(t *testing.T, maxX, maxY int) *navigator.Navigator {
	t.Helper()
	nav, err := navigator.New(maxX, maxY)
	require.NoError(t, err)
	return nav
}

func run(t *testing.T, nav *navigator.Navigator, x, y int, heading, commands string) navigator.Result {
	t.Helper()
	require.NoError(t, nav.Setup(x, y, heading))
	res, err := nav.Navigate(commands)
	require.NoError(t, err)
	return res
}

//----------------------------------------------------------------------------//
// Construction and setup
//----------------------------------------------------------------------------//

func TestNew_GridTooLarge(t *testing.T) {
	cases := []struct {
		name       string
		maxX, maxY int
	}{
		{"X", 51, 3},
		{"Y", 3, 51},
		{"Both", 100, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := navigator.New(tc.maxX, tc.maxY)
			assert.ErrorIs(t, err, navigator.ErrGridTooLarge)
		})
	}
}

func TestNew_PermissiveBounds(t *testing.T) {
	for _, b := range [][2]int{{50, 50}, {0, 0}, {-1, 5}} {
		nav, err := navigator.New(b[0], b[1])
		require.NoError(t, err, "bounds %v", b)
		maxX, maxY := nav.Bounds()
		assert.Equal(t, b[0], maxX)
		assert.Equal(t, b[1], maxY)
		assert.Empty(t, nav.Scents())
	}
}

func TestNavigatorsDoNotShareScents(t *testing.T) {
	a := mustNavigator(t, 1, 1)
	b := mustNavigator(t, 1, 1)

	res := run(t, a, 0, 0, "N", "FF")
	require.True(t, res.Lost)

	assert.Len(t, a.Scents(), 1)
	assert.Empty(t, b.Scents())
	res = run(t, b, 0, 0, "N", "FF")
	assert.True(t, res.Lost)
}

func TestSetup(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	assert.Nil(t, nav.Robot())

	require.NoError(t, nav.Setup(0, 0, "N"))
	require.NotNil(t, nav.Robot())
	p, err := nav.Robot().Position()
	require.NoError(t, err)
	assert.Equal(t, pos(0, 0, rover.North), p)
}

func TestSetup_BadHeadingKeepsState(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	run(t, nav, 0, 0, "N", "FF")
	require.NoError(t, nav.Setup(1, 1, "S"))
	prev := nav.Robot()

	assert.ErrorIs(t, nav.Setup(0, 0, 7), rover.ErrOrientationType)
	assert.ErrorIs(t, nav.Setup(0, 0, "NW"), rover.ErrOrientationValue)

	assert.Same(t, prev, nav.Robot())
	assert.Equal(t, []rover.Position{pos(0, 1, rover.North)}, nav.Scents())
}

func TestSetup_OffGridIsAllowed(t *testing.T) {
	nav := mustNavigator(t, 2, 2)
	require.NoError(t, nav.Setup(7, -3, "E"))

	// no bounds check until a command has been applied
	res, err := nav.Navigate("")
	require.NoError(t, err)
	assert.Equal(t, navigator.Result{Position: pos(7, -3, rover.East)}, res)

	res, err = nav.Navigate("L")
	require.NoError(t, err)
	assert.Equal(t, navigator.Result{Position: pos(7, -3, rover.East), Lost: true}, res)
}

func TestSetup_OnScentIsAllowed(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	run(t, nav, 0, 0, "N", "FF")

	require.NoError(t, nav.Setup(0, 1, "N"))
	res, err := nav.Navigate("F")
	require.NoError(t, err)
	assert.Equal(t, navigator.Result{Position: pos(0, 1, rover.North)}, res)
}

//----------------------------------------------------------------------------//
// Navigate
//----------------------------------------------------------------------------//

func TestNavigate_NoRobot(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	_, err := nav.Navigate("F")
	assert.ErrorIs(t, err, navigator.ErrNoRobot)
}

func TestNavigate_FollowsCommands(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	require.NoError(t, nav.Setup(0, 0, "N"))

	res, err := nav.Navigate("F")
	require.NoError(t, err)
	assert.Equal(t, navigator.Result{Position: pos(0, 1, rover.North)}, res)

	// the same robot keeps going
	res, err = nav.Navigate("RF")
	require.NoError(t, err)
	assert.Equal(t, navigator.Result{Position: pos(1, 1, rover.East)}, res)
}

func TestNavigate_EmptyCommands(t *testing.T) {
	nav := mustNavigator(t, 3, 3)
	res := run(t, nav, 2, 1, "W", "")
	assert.Equal(t, navigator.Result{Position: pos(2, 1, rover.West)}, res)
}

func TestNavigate_MaxBoundary(t *testing.T) {
	nav := mustNavigator(t, 1, 1)

	res := run(t, nav, 0, 0, "N", "FF")
	assert.Equal(t, navigator.Result{Position: pos(0, 1, rover.North), Lost: true}, res)

	res = run(t, nav, 0, 0, "E", "FF")
	assert.Equal(t, navigator.Result{Position: pos(1, 0, rover.East), Lost: true}, res)
}

func TestNavigate_MinBoundary(t *testing.T) {
	nav := mustNavigator(t, 1, 1)

	res := run(t, nav, 0, 1, "S", "FF")
	assert.Equal(t, navigator.Result{Position: pos(0, 0, rover.South), Lost: true}, res)

	res = run(t, nav, 1, 0, "W", "FF")
	assert.Equal(t, navigator.Result{Position: pos(0, 0, rover.West), Lost: true}, res)
}

func TestNavigate_LostStopsProcessing(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	require.NoError(t, nav.Setup(0, 0, "N"))

	// X would be invalid, but the robot is lost before reaching it
	res, err := nav.Navigate("FFX")
	require.NoError(t, err)
	assert.True(t, res.Lost)

	p, err := nav.Robot().Position()
	require.NoError(t, err)
	assert.Equal(t, pos(0, 2, rover.North), p, "the robot object itself is left where it fell")
}

func TestNavigate_InvalidCommand(t *testing.T) {
	nav := mustNavigator(t, 5, 5)
	require.NoError(t, nav.Setup(1, 1, "N"))

	_, err := nav.Navigate("FRX")
	require.ErrorIs(t, err, navigator.ErrInvalidCommand)
	assert.Contains(t, err.Error(), `'X' at offset 2`)

	for _, bad := range []string{"f", "l", " ", "F F", "Ж"} {
		require.NoError(t, nav.Setup(1, 1, "N"))
		_, err := nav.Navigate(bad)
		assert.ErrorIs(t, err, navigator.ErrInvalidCommand, "commands %q", bad)
	}

	// scents and bounds stay usable
	assert.Empty(t, nav.Scents())
	res := run(t, nav, 1, 1, "N", "F")
	assert.False(t, res.Lost)
}

func TestNavigate_Scent(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	first := run(t, nav, 0, 0, "N", "FF")
	require.True(t, first.Lost)

	second := run(t, nav, 0, 0, "N", "FF")
	assert.Equal(t, navigator.Result{Position: pos(0, 1, rover.North)}, second)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 1, nav.Suppressed())

	require.NoError(t, nav.Setup(0, 0, "E"))
	assert.Zero(t, nav.Suppressed())
}

func TestNavigate_ScentOnlyMatchesHeading(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	run(t, nav, 0, 0, "N", "FF")

	// same cell, facing west: still falls off
	res := run(t, nav, 0, 1, "W", "F")
	assert.Equal(t, navigator.Result{Position: pos(0, 1, rover.West), Lost: true}, res)
	assert.Len(t, nav.Scents(), 2)
}

func TestNavigate_ScentsAreNotDeduplicated(t *testing.T) {
	nav := mustNavigator(t, 1, 1)
	require.NoError(t, nav.Setup(0, 0, "N"))
	_, err := nav.Navigate("FF")
	require.NoError(t, err)

	// robots set up off the grid are lost on their first turn, leaving the
	// same mark each time
	for i := 0; i < 2; i++ {
		require.NoError(t, nav.Setup(0, 2, "N"))
		res, err := nav.Navigate("L")
		require.NoError(t, err)
		require.True(t, res.Lost)
	}

	want := []rover.Position{pos(0, 1, rover.North), pos(0, 2, rover.North), pos(0, 2, rover.North)}
	assert.Equal(t, want, nav.Scents())
}

func TestNavigate_Trail(t *testing.T) {
	nav := mustNavigator(t, 5, 3)
	run(t, nav, 1, 1, "E", "FLF")

	want := []rover.Position{
		pos(1, 1, rover.East),
		pos(2, 1, rover.East),
		pos(2, 1, rover.North),
		pos(2, 2, rover.North),
	}
	if diff := cmp.Diff(want, nav.Trail()); diff != "" {
		t.Errorf("Trail() mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigate_NeverReportsOffGrid(t *testing.T) {
	nav := mustNavigator(t, 3, 2)
	commands := []string{"FFFFF", "RFFFFF", "LFFFF", "RRFFFF", "FRFRFRFLLFFFFF", "LLFFLFFFRF"}
	for _, h := range []string{"N", "E", "S", "W"} {
		for x := 0; x <= 3; x++ {
			for y := 0; y <= 2; y++ {
				for _, c := range commands {
					res := run(t, nav, x, y, h, c)
					assert.True(t, nav.InBounds(res.Position.X, res.Position.Y),
						"start %d %d %s cmds %s -> %s", x, y, h, c, res)
				}
			}
		}
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "3 3 N LOST", navigator.Result{Position: pos(3, 3, rover.North), Lost: true}.String())
	assert.Equal(t, "1 1 E", navigator.Result{Position: pos(1, 1, rover.East)}.String())
}

//----------------------------------------------------------------------------//
// Sample missions
//----------------------------------------------------------------------------//

func TestSampleMissions(t *testing.T) {
	nav := mustNavigator(t, 5, 3)

	cases := []struct {
		x, y     int
		heading  string
		commands string
		want     navigator.Result
	}{
		{1, 1, "E", "RFRFRFRF", navigator.Result{Position: pos(1, 1, rover.East)}},
		{3, 2, "N", "FRRFLLFFRRFLL", navigator.Result{Position: pos(3, 3, rover.North), Lost: true}},
		{0, 3, "W", "LLFFFLFLFL", navigator.Result{Position: pos(2, 3, rover.South)}},
	}
	// order matters: the third robot survives thanks to the second's scent
	for _, tc := range cases {
		got := run(t, nav, tc.x, tc.y, tc.heading, tc.commands)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%d %d %s %s mismatch (-want +got):\n%s", tc.x, tc.y, tc.heading, tc.commands, diff)
		}
	}
	assert.Equal(t, []rover.Position{pos(3, 3, rover.North)}, nav.Scents())
}

func TestSampleMissions_WithoutScent(t *testing.T) {
	nav := mustNavigator(t, 5, 3)
	res := run(t, nav, 0, 3, "W", "LLFFFLFLFL")
	assert.Equal(t, navigator.Result{Position: pos(3, 3, rover.North), Lost: true}, res)
}

//----------------------------------------------------------------------------//
// ParseCommands
//----------------------------------------------------------------------------//

func TestParseCommands(t *testing.T) {
	cmds, err := navigator.ParseCommands("LRF")
	require.NoError(t, err)
	assert.Equal(t, []navigator.Command{navigator.Left, navigator.Right, navigator.Forward}, cmds)

	cmds, err = navigator.ParseCommands("")
	require.NoError(t, err)
	assert.Empty(t, cmds)

	_, err = navigator.ParseCommands("LRB")
	assert.ErrorIs(t, err, navigator.ErrInvalidCommand)
}
