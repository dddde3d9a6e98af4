package command

import (
	"context"

	"github.com/fernvale/parley/internal/core"
)

type ClearCommand struct {
	memory core.Memory
}

func NewClearCommand(mem core.Memory) *ClearCommand {
	return &ClearCommand{memory: mem}
}

func (c *ClearCommand) Prefix() string {
	return "/clear"
}

func (c *ClearCommand) Description() string {
	return "Forget the conversation history"
}

func (c *ClearCommand) Execute(ctx context.Context, userID, payload string) (core.Reply, error) {
	// Trailing text after /clear is ignored; the prefix already matched.
	if err := c.memory.Clear(ctx, userID); err != nil {
		return core.Reply{}, err
	}
	return core.TextReply(msgHistoryCleared), nil
}
