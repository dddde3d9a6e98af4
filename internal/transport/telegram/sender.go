package telegram

import (
	"context"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/pkg/conv"
	"github.com/fernvale/parley/pkg/log"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	bot *tele.Bot
}

func newSender(bot *tele.Bot) *sender {
	return &sender{bot: bot}
}

// send delivers a router reply: nothing for a no-op, chunked HTML for
// text, a photo for images.
func (s *sender) send(ctx context.Context, to tele.Recipient, reply core.Reply) error {
	switch reply.Kind {
	case core.ReplyNone:
		return nil
	case core.ReplyImage:
		photo := &tele.Photo{File: tele.FromURL(reply.ImageURL)}
		if _, err := s.bot.Send(to, photo); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("failed to send telegram photo")
			return err
		}
		return nil
	default:
		return s.sendMarkdown(ctx, to, reply.Text)
	}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks
// if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)

	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		if _, err := s.bot.Send(to, chunk, tele.ModeHTML); err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// splitHTML splits text into chunks respecting Telegram's limit,
// preferring newline break points.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
