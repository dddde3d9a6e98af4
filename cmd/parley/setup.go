package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/fernvale/parley/internal/config"
	"github.com/fernvale/parley/internal/core"
	"github.com/fernvale/parley/internal/providers/content"
	"github.com/fernvale/parley/internal/providers/openai"
	"github.com/fernvale/parley/internal/service/command"
	"github.com/fernvale/parley/internal/service/gateway"
	"github.com/fernvale/parley/internal/service/memory"
	"github.com/fernvale/parley/internal/storage/file"
	"github.com/fernvale/parley/internal/storage/sqlite"
	"github.com/fernvale/parley/internal/transport/telegram"
	"github.com/fernvale/parley/pkg/log"
	"github.com/fernvale/parley/pkg/srv"
)

// NewServices wires configuration, storage, the OpenAI gateway, the
// command router and the Telegram transport into the service list that
// start runs.
func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	openaiCfg := config.NewOpenAIConfig(ctx)
	tgCfg := config.NewTelegramConfig(ctx)

	// 2. Storage
	store, cleanup, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	if cleanup != nil {
		services = append(services, cleanup)
	}

	// 3. OpenAI gateway
	client := openai.NewClient(openaiCfg.APIKey, appCfg.CapabilityTimeout)
	gw := gateway.New(client, openaiCfg)

	// 4. Conversation memory
	mem := memory.New(store, appCfg.SystemMessage, appCfg.MaxTurns)

	// 5. Command router
	commands := command.NewCommands(mem, gw, content.NewWebsite(), content.NewYouTube())
	router := command.New(commands, mem, gw)

	// 6. Telegram transport
	bot, err := telegram.NewBot(ctx, tgCfg, router, gw)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	services = append(services, bot)

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (core.Store, srv.Service, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0o755); err != nil {
		return nil, nil, err
	}

	if cfg.UseDatabase {
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRecordStore(db), srv.NewCleanup(db.Close), nil
	}

	store, err := file.NewDocumentStore(cfg.GetMemoryFilePath())
	if err != nil {
		return nil, nil, err
	}
	return store, nil, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
