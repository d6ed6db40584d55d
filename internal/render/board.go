// Package render draws puzzle boards for terminal front-ends.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sahib855/8-puzzle/puzzle"
)

var (
	tileStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("229")).
			Bold(true)

	blankStyle = tileStyle.
			Foreground(lipgloss.Color("238")).
			BorderForeground(lipgloss.Color("236"))
)

// Board renders the 3x3 grid with bordered tiles, the blank drawn empty.
func Board(s puzzle.State) string {
	rows := make([]string, 0, puzzle.GridSize)
	for r := 0; r < puzzle.GridSize; r++ {
		cells := make([]string, 0, puzzle.GridSize)
		for c := 0; c < puzzle.GridSize; c++ {
			v := s[r*puzzle.GridSize+c]
			if v == puzzle.BlankTile {
				cells = append(cells, blankStyle.Render(" "))
			} else {
				cells = append(cells, tileStyle.Render(strconv.Itoa(v)))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Line renders the comma-separated form accepted by puzzle.Parse.
func Line(s puzzle.State) string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
