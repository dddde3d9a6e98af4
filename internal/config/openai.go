package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/fernvale/parley/pkg/log"
)

type OpenAIConfig struct {
	APIKey       string `env:"OPENAI_API_KEY,required,notEmpty"`
	ModelEngine  string `env:"OPENAI_MODEL_ENGINE" envDefault:"gpt-3.5-turbo"`
	WhisperModel string `env:"OPENAI_WHISPER_MODEL" envDefault:"whisper-1"`
	ImageSize    string `env:"OPENAI_IMAGE_SIZE" envDefault:"512x512"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
