package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

type storageChoice struct {
	label string
	value string
}

// StorageStep selects where conversation memory is persisted.
type StorageStep struct {
	choices []storageChoice
	cursor  int
}

func NewStorageStep() *StorageStep {
	return &StorageStep{
		choices: []storageChoice{
			{label: "JSON file (simple, single file in the runtime dir)", value: "false"},
			{label: "SQLite database (recommended)", value: "true"},
		},
	}
}

func (s *StorageStep) Init() tea.Cmd {
	return nil
}

func (s *StorageStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.choices)-1 {
			s.cursor++
		}
	case "enter":
		state.EnvVars["USE_DATABASE"] = s.choices[s.cursor].value
		return nil, nil
	}

	return s, nil
}

func (s *StorageStep) View(state *InstallState) string {
	out := "Where should conversation history be stored?\n\n"
	for i, choice := range s.choices {
		if i == s.cursor {
			out += selStyle.Render("> "+choice.label) + "\n"
		} else {
			out += itemStyle.Render(choice.label) + "\n"
		}
	}
	out += "\n(up/down to move, enter to select)\n"
	return out
}
