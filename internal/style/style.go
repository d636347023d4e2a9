package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Plateau cells
	Ground = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))             // Rust
	Trail  = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))            // Sand
	Scent  = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))            // Pink
	Rover  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")) // Bright yellow
	Wreck  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))   // Bright red
	Axis   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	SetupTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	PlayHeader  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))  // Green
	Delivered   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))             // Green
	Lost        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))   // Bright red
	ErrorText   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	LogText     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("166"))            // Mars orange
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"rust":  {183, 65, 14},
	"sand":  {194, 178, 128},
	"pink":  {255, 135, 215},
	"white": {255, 255, 255},
}

// GenerateHexColor generates hexadecimal string for a given RGB values. r, g, b should be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

const (
	fadeMin  = 96
	fadeStep = 24
)

// FadeShift dims a color channel by age steps, never below fadeMin.
// Age 0 is the newest item.
func FadeShift(colorNum, age int) int {
	if colorNum == 0 {
		return 0
	}
	faded := colorNum - age*fadeStep
	if faded < fadeMin {
		faded = fadeMin
	}
	if faded > colorNum {
		faded = colorNum
	}
	return faded
}

// Faded returns a foreground style for the named color aged by age steps.
func Faded(name string, age int) lipgloss.Style {
	c := RGBColor[name]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(
		FadeShift(c.R, age), FadeShift(c.G, age), FadeShift(c.B, age),
	)))
}
