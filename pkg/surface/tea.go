package surface

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TeaOption configures the full-screen surface.
type TeaOption func(*teaSurface)

// WithTeaIO routes the program through the given streams.
func WithTeaIO(in io.Reader, out io.Writer) TeaOption {
	return func(s *teaSurface) {
		s.programOpts = append(s.programOpts, tea.WithInput(in), tea.WithOutput(out))
	}
}

type teaSurface struct {
	programOpts []tea.ProgramOption
}

// NewTea returns a Surface backed by a bubbletea textarea. ctrl+s submits,
// esc aborts.
func NewTea(options ...TeaOption) Surface {
	s := &teaSurface{}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *teaSurface) Read(ctx context.Context, prompt Prompt) (string, error) {
	final, err := s.run(ctx, newEditorModel(prompt))
	if err != nil {
		return "", err
	}
	m := final.(editorModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.area.Value(), nil
}

func (s *teaSurface) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	final, err := s.run(ctx, confirmModel{message: message, answer: def})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

func (s *teaSurface) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, s.programOpts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return final, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type editorModel struct {
	prompt  Prompt
	area    textarea.Model
	done    bool
	aborted bool
}

func newEditorModel(prompt Prompt) editorModel {
	area := textarea.New()
	area.Placeholder = prompt.Help
	area.ShowLineNumbers = true
	area.CharLimit = 0
	area.SetWidth(80)
	area.SetHeight(16)
	area.SetValue(prompt.Default)
	area.Focus()
	return editorModel{prompt: prompt, area: area}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.area.SetWidth(msg.Width - 2)
		}
		if msg.Height > 6 {
			m.area.SetHeight(msg.Height - 4)
		}
	}
	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return strings.Join([]string{
		titleStyle.Render(m.prompt.Message),
		m.area.View(),
		helpStyle.Render("ctrl+s: render  esc: quit"),
	}, "\n") + "\n"
}

type confirmModel struct {
	message string
	answer  bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.answer, m.done = true, true
	case "n":
		m.answer, m.done = false, true
	case "enter":
		m.done = true
	case "esc", "ctrl+c":
		m.aborted = true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	hint := "y/N"
	if m.answer {
		hint = "Y/n"
	}
	return titleStyle.Render(m.message) + " " + helpStyle.Render("("+hint+")") + "\n"
}
