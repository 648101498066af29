package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/imageutil"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>img2ascii</title>
</head>
<body style="margin:0;background:#000;color:#fff">
<pre style="font-family:'{{.Family}}',monospace;font-size:{{.FontSize}}px;line-height:1">
{{range .Lines}}{{.}}
{{end}}</pre>
</body>
</html>
`))

// HTML writes the grid as a standalone page, light text on a dark
// background to match how glyph brightness is measured.
type HTML struct {
	path     string
	font     string
	FontSize int
}

// NewHTML returns an HTML output writing to path.
func NewHTML(path, font string) *HTML {
	return &HTML{path: path, font: font, FontSize: 6}
}

// Path returns the destination file.
func (h *HTML) Path() string {
	return h.path
}

// Output implements Output.
func (h *HTML) Output(grid img2ascii.Grid) error {
	data := struct {
		Family   string
		FontSize int
		Lines    []string
	}{
		Family:   FontFamily(h.font),
		FontSize: h.FontSize,
		Lines:    grid.Lines(),
	}
	return imageutil.WriteFile(h.path, func(w io.Writer) error {
		if err := pageTemplate.Execute(w, data); err != nil {
			return fmt.Errorf("failed to write html output: %w", err)
		}
		return nil
	})
}
