package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernvale/parley/internal/config"
)

// SaveEnvStep writes the collected values to the runtime .env file.
type SaveEnvStep struct {
	saved bool
	path  string
}

func NewSaveEnvStep() *SaveEnvStep {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case nextMsg:
		path, err := saveEnvFile(state)
		if err != nil {
			return s, func() tea.Msg { return errMsg(err) }
		}
		s.saved = true
		s.path = path
		return s, nil
	case tea.KeyMsg:
		if s.saved && msg.Type == tea.KeyEnter {
			return nil, nil
		}
	}
	return s, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if !s.saved {
		return "Saving configuration...\n"
	}
	return fmt.Sprintf("Configuration written to %s\n\nRun `parley start` to launch the bot.\n\n(enter to finish)\n", s.path)
}

func saveEnvFile(state *InstallState) (string, error) {
	runtimePath := config.GetRuntimePath()
	if err := os.MkdirAll(runtimePath, 0o755); err != nil {
		return "", fmt.Errorf("create runtime dir: %w", err)
	}

	keys := make([]string, 0, len(state.EnvVars))
	for k := range state.EnvVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, state.EnvVars[k])
	}

	path := filepath.Join(runtimePath, ".env")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", fmt.Errorf("write env file: %w", err)
	}

	return path, nil
}
