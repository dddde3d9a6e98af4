package command

import (
	"context"

	"github.com/fernvale/parley/internal/core"
)

type HelpCommand struct{}

func NewHelpCommand() *HelpCommand {
	return &HelpCommand{}
}

func (c *HelpCommand) Prefix() string {
	return "/help"
}

func (c *HelpCommand) Description() string {
	return "Show the available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, userID, payload string) (core.Reply, error) {
	return core.TextReply(helpText), nil
}
