package output

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/wbrown/img2ascii"
)

// Console writes one line per grid row.
type Console struct {
	w     io.Writer
	style *lipgloss.Style
}

// NewConsole returns a console output writing to w, or to stdout if w is
// nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{w: w}
}

// WithStyle renders every row through style.
func (c *Console) WithStyle(style lipgloss.Style) *Console {
	c.style = &style
	return c
}

// Output implements Output.
func (c *Console) Output(grid img2ascii.Grid) error {
	bw := bufio.NewWriter(c.w)
	for _, line := range grid.Lines() {
		if c.style != nil {
			line = c.style.Render(line)
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
