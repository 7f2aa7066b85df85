// Package render draws cube faces as colored terminal grids.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubetwin/rubik"
)

// Gridder is the face projection both cube representations expose.
type Gridder interface {
	FaceGrid(rubik.Face) [3][3]rubik.Face
}

var cellStyles = map[rubik.Face]lipgloss.Style{
	rubik.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	rubik.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
	rubik.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	rubik.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	rubik.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
	rubik.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
}

func cell(f rubik.Face) string {
	style, ok := cellStyles[f]
	if !ok {
		return " ? "
	}
	return style.Render(" " + f.String() + " ")
}

// FaceBlock renders one face as three lines of colored cells.
func FaceBlock(g Gridder, f rubik.Face) string {
	grid := g.FaceGrid(f)
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			b.WriteString(cell(grid[r][c]))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

// Net renders the unfolded cube: white on top, the red-blue-orange-green
// band in the middle, yellow on the bottom.
func Net(g Gridder) string {
	indent := strings.Repeat(" ", 9)

	var b strings.Builder

	top := g.FaceGrid(rubik.White)
	for r := 0; r < 3; r++ {
		b.WriteString(indent)
		for c := 0; c < 3; c++ {
			b.WriteString(cell(top[r][c]))
		}
		b.WriteString("\n")
	}

	band := [4][3][3]rubik.Face{
		g.FaceGrid(rubik.Red),
		g.FaceGrid(rubik.Blue),
		g.FaceGrid(rubik.Orange),
		g.FaceGrid(rubik.Green),
	}
	for r := 0; r < 3; r++ {
		for _, grid := range band {
			for c := 0; c < 3; c++ {
				b.WriteString(cell(grid[r][c]))
			}
		}
		b.WriteString("\n")
	}

	bottom := g.FaceGrid(rubik.Yellow)
	for r := 0; r < 3; r++ {
		b.WriteString(indent)
		for c := 0; c < 3; c++ {
			b.WriteString(cell(bottom[r][c]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
