package command

import "github.com/fernvale/parley/internal/core"

// NewCommands returns the command table in match-priority order. The
// router checks prefixes in this order and only the first match runs.
func NewCommands(
	mem core.Memory,
	gw core.Gateway,
	website ArticleSource,
	youtube TranscriptSource,
) []core.Command {
	return []core.Command{
		NewHelpCommand(),
		NewSystemCommand(mem),
		NewClearCommand(mem),
		NewImageCommand(mem, gw),
		NewChatCommand(mem, gw, website, youtube),
	}
}
