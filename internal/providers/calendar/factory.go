package calendar

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/sandevgo/lexibot/internal/config"
	"github.com/sandevgo/lexibot/internal/core"
	"github.com/sandevgo/lexibot/pkg/log"
)

const queryTimeout = 30 * time.Second

// NewProvider builds the AvailabilityProvider selected by CALENDAR_MODE.
// The two strategies are mutually exclusive configuration, never mixed.
// A missing credential is an error here; the caller decides to run without
// calendar capability rather than crash the conversational path.
func NewProvider(ctx context.Context, cfg *config.CalendarConfig, runtimePath string) (core.AvailabilityProvider, error) {
	log.FromCtx(ctx).Info().
		Str("mode", cfg.Mode).
		Str("calendar_id", cfg.CalendarID).
		Msg("starting calendar provider")

	ts, err := resolveTokenSource(ctx, cfg.Token, runtimePath, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	switch cfg.Mode {
	case "events":
		return &EventsProvider{svc: svc, calendarID: cfg.CalendarID, maxLines: cfg.MaxLines}, nil
	case "freebusy":
		return &FreeBusyProvider{svc: svc, calendarID: cfg.CalendarID, maxLines: cfg.MaxLines}, nil
	default:
		return nil, fmt.Errorf("unknown calendar mode: %s", cfg.Mode)
	}
}
