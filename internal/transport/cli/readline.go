package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/lexibot/internal/config"
	"github.com/sandevgo/lexibot/internal/core"
	"github.com/sandevgo/lexibot/internal/service/ui"
	"github.com/sandevgo/lexibot/pkg/log"
)

// The terminal shell is a single conversation, so the session id is constant.
const defaultSessionID = "cli-local"

// TurnHandler is the slice of the intake processor the terminal shell needs.
type TurnHandler interface {
	HandleTurn(ctx context.Context, sessionID, userText string) (string, error)
}

type ReadLine struct {
	cfg     *config.AppConfig
	handler TurnHandler
	rl      *readline.Instance
}

func NewReadLine(handler TurnHandler, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "Client: ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:     cfg,
		handler: handler,
		rl:      rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msgf("%s intake chat started. Type 'exit' to quit.", core.LexiName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		reply, err := r.handler.HandleTurn(ctx, defaultSessionID, line)
		if err != nil {
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(r.rl.Stdout(), "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s %s\n", ui.SpeakerStyle.Render(core.LexiName+":"), reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
