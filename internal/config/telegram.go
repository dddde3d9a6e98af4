package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/fernvale/parley/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"TELEGRAM_TOKEN,required,notEmpty"`

	// When non-zero, messages from anyone else are silently ignored.
	OwnerID int64 `env:"TELEGRAM_OWNER_ID"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
