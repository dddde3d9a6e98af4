package command

import (
	"context"

	"github.com/fernvale/parley/internal/core"
)

type ImageCommand struct {
	memory core.Memory
	gw     core.Gateway
}

func NewImageCommand(mem core.Memory, gw core.Gateway) *ImageCommand {
	return &ImageCommand{memory: mem, gw: gw}
}

func (c *ImageCommand) Prefix() string {
	return "/image"
}

func (c *ImageCommand) Description() string {
	return "Generate an image from a prompt"
}

func (c *ImageCommand) Execute(ctx context.Context, userID, payload string) (core.Reply, error) {
	if payload == "" {
		return core.TextReply(msgPromptRequired), nil
	}

	// The user turn is recorded before the call; the assistant turn only
	// after success. The router clears the whole history on failure.
	if err := c.memory.Append(ctx, userID, core.RoleUser, payload); err != nil {
		return core.Reply{}, err
	}

	url, err := c.gw.GenerateImage(ctx, payload)
	if err != nil {
		return core.Reply{}, err
	}

	if err := c.memory.Append(ctx, userID, core.RoleAssistant, url); err != nil {
		return core.Reply{}, err
	}
	return core.ImageReply(url, url), nil
}
