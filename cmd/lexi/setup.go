package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/lexibot/internal/config"
	"github.com/sandevgo/lexibot/internal/core"
	"github.com/sandevgo/lexibot/internal/providers/calendar"
	"github.com/sandevgo/lexibot/internal/providers/llm"
	"github.com/sandevgo/lexibot/internal/service/intake"
	"github.com/sandevgo/lexibot/internal/session"
	"github.com/sandevgo/lexibot/internal/transport/cli"
	"github.com/sandevgo/lexibot/internal/transport/httpapi"
	"github.com/sandevgo/lexibot/pkg/log"
	"github.com/sandevgo/lexibot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)
	calCfg := config.NewCalendarConfig(ctx)

	// 2. Completion provider
	completion, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 3. Availability provider. A missing or broken credential only disables
	// the calendar capability: conversation keeps running and booking
	// replies carry an error line instead of slots.
	availability := initCalendar(ctx, calCfg, appCfg.RuntimePath)

	// 4. Session store + turn processor
	sessions := session.NewStore(intake.SystemInstruction)
	processor := intake.NewProcessor(sessions, completion, availability, calCfg.WindowHours)

	// 5. Delivery shells
	transports, err := initTransports(ctx, appCfg, processor)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initCalendar(ctx context.Context, cfg *config.CalendarConfig, runtimePath string) core.AvailabilityProvider {
	logger := log.FromCtx(ctx)

	provider, err := calendar.NewProvider(ctx, cfg, runtimePath)
	if err != nil {
		if errors.Is(err, core.ErrCredentialMissing) {
			logger.Warn().Msg("no calendar credential found, booking runs in degraded mode")
		} else {
			logger.Error().Err(err).Msg("calendar initialization failed, booking runs in degraded mode")
		}
		return nil
	}
	return provider
}

func initTransports(ctx context.Context, cfg *config.AppConfig, processor *intake.Processor) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsHTTPSelected() {
		srvCfg := config.NewServerConfig(ctx)
		services = append(services, httpapi.NewServer(srvCfg, processor))
	}

	if cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(processor, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
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
