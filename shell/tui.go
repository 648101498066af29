package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")
	colorRed  = lipgloss.Color("167")
	colorDim  = lipgloss.Color("240")

	stylePrompt = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleError  = lipgloss.NewStyle().Foreground(colorRed)
	styleEcho   = lipgloss.NewStyle().Foreground(colorDim)
)

// model is the bubbletea front end. Command output is collected in buf
// and printed above the prompt after every command.
type model struct {
	shell *Shell
	input textinput.Model
	buf   *bytes.Buffer
}

func newModel(s *Shell, buf *bytes.Buffer) model {
	ti := textinput.New()
	ti.Prompt = Prompt
	ti.PromptStyle = stylePrompt
	ti.Placeholder = "render"
	ti.Focus()
	return model{shell: s, input: ti, buf: buf}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the typed command and prints its output.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	cmds := []tea.Cmd{tea.Println(styleEcho.Render(Prompt + line))}
	err := m.shell.Exec(line)
	if out := strings.TrimRight(m.buf.String(), "\n"); out != "" {
		cmds = append(cmds, tea.Println(out))
	}
	m.buf.Reset()

	switch {
	case errors.Is(err, ErrExit):
		cmds = append(cmds, tea.Quit)
	case err != nil:
		cmds = append(cmds, tea.Println(styleError.Render("Error: "+err.Error())))
	}
	return m, tea.Sequence(cmds...)
}

func (m model) View() string {
	return m.input.View()
}

// RunTUI runs the shell as an interactive terminal program reading keys
// from in and drawing to out. Shell output is redirected through the
// program while it runs.
func (s *Shell) RunTUI(in io.Reader, out io.Writer) error {
	var buf bytes.Buffer
	prev := s.w
	s.w = &buf
	defer func() { s.w = prev }()

	p := tea.NewProgram(newModel(s, &buf), tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
