// Package shell implements the interactive command language for editing
// the character set and resolution and rendering the current image.
//
// # Commands
//
//	chars                      list the current characters
//	add all | space | c | a-b  add characters
//	remove all | space | c | a-b
//	res up | res down          double or halve the characters per row
//	console                    render to the terminal
//	html [file]                render to an HTML file
//	png [file]                 render to a PNG file
//	render                     render with the current settings
//	exit                       leave the shell
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/config"
	"github.com/wbrown/img2ascii/output"
)

const (
	// Prompt is printed before every command.
	Prompt = ">>> "

	resFactor = 2

	usageMessage = "USAGE: chars/[add/remove (all/space/<char>/<char>-<char>)]/" +
		"res (up/down)/console/html [file]/png [file]/render/exit"
)

var (
	singleCharPattern = regexp.MustCompile(`^(add|remove) ([ -~])$`)
	charRangePattern  = regexp.MustCompile(`^(add|remove) ([ -~])-([ -~])$`)
	outputPattern     = regexp.MustCompile(`^(console|html|png)(?: (\S+))?$`)
)

// ErrExit is returned by Exec for the exit command.
var ErrExit = errors.New("exit")

// Shell holds the editable render settings for one image.
type Shell struct {
	matcher *img2ascii.BrightnessMatcher
	chars   img2ascii.CharSet

	charsInRow    int
	minCharsInRow int
	maxCharsInRow int

	kind    output.Kind
	path    string
	pngSize int
	color   string

	w      io.Writer
	logger *log.Logger
}

// New creates a shell rendering through matcher with the starting values
// from cfg. Messages and console output go to w.
//
// The characters per row are kept between max(1, width/height) and
// width/cfg.MinPixelsPerChar.
func New(matcher *img2ascii.BrightnessMatcher, cfg *config.Config, w io.Writer, logger *log.Logger) *Shell {
	img := matcher.Image()
	minChars := max(1, img.Width()/max(img.Height(), 1))
	maxChars := img.Width() / cfg.MinPixelsPerChar

	s := &Shell{
		matcher:       matcher,
		chars:         cfg.CharSet(),
		minCharsInRow: minChars,
		maxCharsInRow: maxChars,
		kind:          cfg.Kind(),
		path:          cfg.OutputFile,
		pngSize:       cfg.PNGScale,
		color:         cfg.ConsoleColor,
		w:             w,
		logger:        logger,
	}
	s.charsInRow = s.clamp(cfg.CharsInRow)
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// clamp keeps n inside the allowed resolution range. The lower bound wins
// when the range is empty.
func (s *Shell) clamp(n int) int {
	return max(min(n, s.maxCharsInRow), s.minCharsInRow)
}

// CharsInRow returns the current resolution.
func (s *Shell) CharsInRow() int {
	return s.charsInRow
}

// Chars returns a copy of the current character set.
func (s *Shell) Chars() img2ascii.CharSet {
	return s.chars.Clone()
}

// Output returns the current output kind and file path.
func (s *Shell) Output() (output.Kind, string) {
	return s.kind, s.path
}

// Exec runs one command line. It returns ErrExit for exit, render
// failures as errors, and prints the usage message for anything it does
// not understand.
func (s *Shell) Exec(line string) error {
	cmd := strings.TrimSpace(line)
	switch {
	case cmd == "":
		return nil
	case cmd == "exit":
		return ErrExit
	case cmd == "chars":
		fmt.Fprintln(s.w, s.chars.String())
		return nil
	case cmd == "render":
		return s.render()
	case s.editChars(cmd):
		return nil
	case s.changeResolution(cmd):
		return nil
	case s.changeOutput(cmd):
		return nil
	}
	fmt.Fprintln(s.w, usageMessage)
	return nil
}

// Run reads commands line by line from r until exit or end of input,
// printing the prompt before each one. Render failures are reported and
// the loop continues.
func (s *Shell) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.w, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.w)
			return scanner.Err()
		}
		if err := s.Exec(scanner.Text()); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			fmt.Fprintf(s.w, "Error: %v\n", err)
		}
	}
}

// editChars handles the add and remove commands.
func (s *Shell) editChars(cmd string) bool {
	switch cmd {
	case "add all":
		s.chars.AddRange(img2ascii.FirstPrintable, img2ascii.LastPrintable)
		return true
	case "remove all":
		s.chars.Clear()
		return true
	case "add space":
		s.chars.Add(' ')
		return true
	case "remove space":
		s.chars.Remove(' ')
		return true
	}

	if m := singleCharPattern.FindStringSubmatch(cmd); m != nil {
		r := rune(m[2][0])
		if m[1] == "add" {
			s.chars.Add(r)
		} else {
			s.chars.Remove(r)
		}
		return true
	}
	if m := charRangePattern.FindStringSubmatch(cmd); m != nil {
		a, b := rune(m[2][0]), rune(m[3][0])
		if m[1] == "add" {
			s.chars.AddRange(a, b)
		} else {
			s.chars.RemoveRange(a, b)
		}
		return true
	}
	return false
}

// changeResolution handles res up and res down.
func (s *Shell) changeResolution(cmd string) bool {
	switch cmd {
	case "res up":
		s.charsInRow = s.clamp(s.charsInRow * resFactor)
	case "res down":
		s.charsInRow = s.clamp(s.charsInRow / resFactor)
	default:
		return false
	}
	fmt.Fprintf(s.w, "Width set to %d\n", s.charsInRow)
	return true
}

// changeOutput handles console, html and png.
func (s *Shell) changeOutput(cmd string) bool {
	m := outputPattern.FindStringSubmatch(cmd)
	if m == nil {
		return false
	}
	s.kind = output.Kind(m[1])
	s.path = m[2]
	return true
}

func (s *Shell) render() error {
	grid, err := s.matcher.Render(s.charsInRow, s.chars)
	if err != nil {
		return err
	}
	out, err := output.New(s.kind, output.Options{
		Path:       s.path,
		Font:       s.matcher.Font(),
		Writer:     s.w,
		Rasterizer: s.matcher.Rasterizer(),
		Scale:      s.pngSize,
		Color:      s.color,
	})
	if err != nil {
		return err
	}
	if err := out.Output(grid); err != nil {
		return err
	}

	stats := s.matcher.Stats()
	s.logger.Debug("render complete", "output", s.kind, "chars_in_row", s.charsInRow,
		"cache_entries", stats.Entries, "cache_hits", stats.Hits)
	if p, ok := out.(interface{ Path() string }); ok {
		fmt.Fprintf(s.w, "Wrote %s\n", p.Path())
	}
	return nil
}
