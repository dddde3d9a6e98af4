package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fernvale/parley/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"PARLEY_RUNTIME_PATH" envDefault:".parley"`

	// Conversation state
	SystemMessage string `env:"SYSTEM_MESSAGE" envDefault:"You are a helpful assistant."`
	MaxTurns      int    `env:"MEMORY_MAX_TURNS" envDefault:"2"`

	// Storage backend selection: sqlite when set, JSON document file otherwise.
	UseDatabase bool `env:"USE_DATABASE" envDefault:"false"`

	// Upper bound for a single blocking capability call. A hung upstream
	// request fails as a capability error instead of stalling the user
	// handler forever.
	CapabilityTimeout time.Duration `env:"CAPABILITY_TIMEOUT" envDefault:"120s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	// Relative runtime paths live under the user's home dir, same as
	// GetRuntimePath.
	if !filepath.IsAbs(c.RuntimePath) {
		home, _ := os.UserHomeDir()
		c.RuntimePath = filepath.Join(home, c.RuntimePath)
	}
	return c
}

func (c AppConfig) GetMemoryFilePath() string {
	return filepath.Join(c.RuntimePath, "memory.json")
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "parley.db")
}
