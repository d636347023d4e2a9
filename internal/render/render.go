package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/marsrover/internal/rover"
	"github.com/vinser/marsrover/internal/style"
)

// Page renders page with title at the top, content block and footer at the bottom
// Style of content leave intact
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	// Place content vertically centered within the available height
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Plateau is everything needed to draw the grid.
type Plateau struct {
	MaxX, MaxY int
	Scents     []rover.Position
	Trail      []rover.Position
	Robot      *rover.Position // nil when no robot is on the plateau
	Lost       bool
}

// Glyphs
const (
	groundGlyph = "·"
	trailGlyph  = "∙"
	scentGlyph  = "≈"
	wreckGlyph  = "✗"
)

func roverGlyph(o rover.Orientation) string {
	switch o {
	case rover.North:
		return "▲"
	case rover.East:
		return "►"
	case rover.South:
		return "▼"
	case rover.West:
		return "◄"
	}
	return "?"
}

type cell struct{ x, y int }

// PlateauView draws the grid with north up. Every cell is two columns wide.
func PlateauView(p Plateau) string {
	if p.MaxX < 0 || p.MaxY < 0 {
		return style.Axis.Render("(empty plateau)")
	}

	scents := make(map[cell]bool, len(p.Scents))
	for _, s := range p.Scents {
		scents[cell{s.X, s.Y}] = true
	}
	trail := make(map[cell]bool, len(p.Trail))
	for _, t := range p.Trail {
		trail[cell{t.X, t.Y}] = true
	}

	labelWidth := len(strconv.Itoa(p.MaxY))
	var b strings.Builder
	for y := p.MaxY; y >= 0; y-- {
		b.WriteString(style.Axis.Render(padLeft(strconv.Itoa(y), labelWidth)))
		b.WriteByte(' ')
		for x := 0; x <= p.MaxX; x++ {
			b.WriteString(renderCell(p, cell{x, y}, scents, trail))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", labelWidth+1))
	for x := 0; x <= p.MaxX; x++ {
		b.WriteString(style.Axis.Render(strconv.Itoa(x % 10)))
		b.WriteByte(' ')
	}
	if p.Robot != nil && !inside(p, p.Robot.X, p.Robot.Y) {
		b.WriteString("\n" + style.ErrorText.Render("robot at "+p.Robot.String()+" is off the plateau"))
	}
	return b.String()
}

func renderCell(p Plateau, c cell, scents, trail map[cell]bool) string {
	if p.Robot != nil && p.Robot.X == c.x && p.Robot.Y == c.y {
		if p.Lost {
			return style.Wreck.Render(wreckGlyph)
		}
		return style.Rover.Render(roverGlyph(p.Robot.Orientation))
	}
	switch {
	case scents[c]:
		return style.Scent.Render(scentGlyph)
	case trail[c]:
		return style.Trail.Render(trailGlyph)
	}
	return style.Ground.Render(groundGlyph)
}

func inside(p Plateau, x, y int) bool {
	return x >= 0 && x <= p.MaxX && y >= 0 && y <= p.MaxY
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
