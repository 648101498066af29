package img2ascii

import "strings"

// Grid is the rendered character art, indexed [row][col].
type Grid [][]rune

// NewGrid allocates a rows x cols grid filled with zero runes.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]rune, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Lines returns each row as a string.
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for i, row := range g {
		lines[i] = string(row)
	}
	return lines
}

// String joins the rows with newlines. There is no trailing newline.
func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Equal reports whether g and other hold the same characters.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if string(g[i]) != string(other[i]) {
			return false
		}
	}
	return true
}
