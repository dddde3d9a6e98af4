package command

import (
	"context"

	"github.com/fernvale/parley/internal/core"
)

type SystemCommand struct {
	memory core.Memory
}

func NewSystemCommand(mem core.Memory) *SystemCommand {
	return &SystemCommand{memory: mem}
}

func (c *SystemCommand) Prefix() string {
	return "/system"
}

func (c *SystemCommand) Description() string {
	return "Set the system message"
}

func (c *SystemCommand) Execute(ctx context.Context, userID, payload string) (core.Reply, error) {
	if payload == "" {
		return core.TextReply(msgPromptRequired), nil
	}

	if err := c.memory.SetSystemMessage(ctx, userID, payload); err != nil {
		return core.Reply{}, err
	}
	return core.TextReply(msgSystemUpdated), nil
}
