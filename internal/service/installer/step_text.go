package installer

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextStep asks for a single value with a text input. When the input is
// left empty the placeholder is used as the default, unless the value is
// a secret, in which case it is required.
type TextStep struct {
	prompt  string
	envKey  string
	secret  bool
	input   textinput.Model
	started bool
}

func NewTextStep(prompt, envKey, placeholder string, secret bool) *TextStep {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 60
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}

	return &TextStep{
		prompt: prompt,
		envKey: envKey,
		secret: secret,
		input:  ti,
	}
}

func (s *TextStep) Init() tea.Cmd {
	s.started = true
	s.input.Focus()
	return textinput.Blink
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if !s.started {
		s.started = true
		s.input.Focus()
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter {
		value := strings.TrimSpace(s.input.Value())
		if value == "" {
			if s.secret {
				return s, nil
			}
			value = s.input.Placeholder
		}
		state.EnvVars[s.envKey] = value
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	return s.prompt + "\n\n" + s.input.View() + "\n\n(enter to continue)\n"
}
