// Package telegram is the event adapter: it translates platform events
// (text, voice) into router calls and router replies into Telegram
// messages. No command or capability logic lives here.
package telegram

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v3"

	"github.com/fernvale/parley/internal/config"
	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot    *tele.Bot
	cfg    *config.TelegramConfig
	router core.CmdRouter
	gw     core.Gateway
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	router core.CmdRouter,
	gw core.Gateway,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		cfg:    cfg,
		router: router,
		gw:     gw,
		sender: newSender(b),
	}

	// Carry the signal-aware base context with logger into handlers.
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Optional single-owner gate: everyone else is silently ignored.
	if cfg.OwnerID != 0 {
		b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
			return func(c tele.Context) error {
				if c.Sender().ID != cfg.OwnerID {
					return nil
				}
				return next(c)
			}
		})
	}

	b.Handle(tele.OnText, bot.handleText)
	b.Handle(tele.OnVoice, bot.handleVoice)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	userID := senderID(c)

	log.FromCtx(ctx).Info().Str("user", userID).Msg("text message received")
	_ = c.Notify(tele.Typing)

	reply := b.router.Route(ctx, userID, c.Text())
	return b.sender.send(ctx, c.Recipient(), reply)
}

func (b *Bot) handleVoice(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	userID := senderID(c)

	logger.Info().Str("user", userID).Msg("voice message received")
	_ = c.Notify(tele.Typing)

	audioPath, err := b.downloadVoice(c)
	if err != nil {
		logger.Error().Err(err).Msg("failed to download voice note")
		return b.sender.send(ctx, c.Recipient(), b.router.FailureReply(ctx, userID, err))
	}
	defer os.Remove(audioPath)

	text, err := b.gw.Transcribe(ctx, audioPath)
	if err != nil {
		return b.sender.send(ctx, c.Recipient(), b.router.FailureReply(ctx, userID, err))
	}

	// Transcribed speech always runs the direct chat flow, never the
	// command table or URL detection.
	reply := b.router.Converse(ctx, userID, text)
	return b.sender.send(ctx, c.Recipient(), reply)
}

// downloadVoice stores the voice note under a throwaway name for the
// transcription upload.
func (b *Bot) downloadVoice(c tele.Context) (string, error) {
	voice := c.Message().Voice
	rc, err := b.bot.File(&voice.File)
	if err != nil {
		return "", fmt.Errorf("fetch voice file: %w", err)
	}
	defer rc.Close()

	path := filepath.Join(os.TempDir(), uuid.NewString()+".oga")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp audio file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write temp audio file: %w", err)
	}
	return path, nil
}

func senderID(c tele.Context) string {
	return fmt.Sprintf("telegram-%d", c.Sender().ID)
}
