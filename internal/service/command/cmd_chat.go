package command

import (
	"context"

	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/internal/providers/content"
)

// ArticleSource extracts readable text chunks from a web page.
type ArticleSource interface {
	FetchChunks(ctx context.Context, url string) ([]string, error)
}

// TranscriptSource extracts transcript text chunks from a hosted video.
type TranscriptSource interface {
	TranscriptChunks(ctx context.Context, videoID string) ([]string, error)
}

type ChatCommand struct {
	memory  core.Memory
	gw      core.Gateway
	website ArticleSource
	youtube TranscriptSource
}

func NewChatCommand(mem core.Memory, gw core.Gateway, website ArticleSource, youtube TranscriptSource) *ChatCommand {
	return &ChatCommand{
		memory:  mem,
		gw:      gw,
		website: website,
		youtube: youtube,
	}
}

func (c *ChatCommand) Prefix() string {
	return "/chat"
}

func (c *ChatCommand) Description() string {
	return "Chat with the model, or summarize a pasted link"
}

func (c *ChatCommand) Execute(ctx context.Context, userID, payload string) (core.Reply, error) {
	if payload == "" {
		return core.TextReply(msgPromptRequired), nil
	}

	if err := c.memory.Append(ctx, userID, core.RoleUser, payload); err != nil {
		return core.Reply{}, err
	}

	answer, err := c.answer(ctx, userID, payload)
	if err != nil {
		return core.Reply{}, err
	}

	if err := c.memory.Append(ctx, userID, core.RoleAssistant, answer); err != nil {
		return core.Reply{}, err
	}
	return core.TextReply(answer), nil
}

// answer picks the flow for the prompt: video transcript summary, web
// page summary, or a plain completion over the bounded history.
func (c *ChatCommand) answer(ctx context.Context, userID, payload string) (string, error) {
	url := content.FindURL(payload)
	if url == "" {
		history, err := c.memory.Get(ctx, userID)
		if err != nil {
			return "", err
		}
		return c.gw.ChatCompletion(ctx, history)
	}

	var (
		chunks []string
		err    error
	)
	if videoID := content.VideoID(payload); videoID != "" {
		chunks, err = c.youtube.TranscriptChunks(ctx, videoID)
	} else {
		chunks, err = c.website.FetchChunks(ctx, url)
	}
	if err != nil {
		return "", err
	}

	return c.gw.Summarize(ctx, chunks)
}
