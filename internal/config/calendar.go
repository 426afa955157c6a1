package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/lexibot/pkg/log"
)

type CalendarConfig struct {
	// Token is the authorized-user JSON for the Google Calendar API,
	// supplied out-of-band. When empty, the resolver falls back to
	// token.json in the runtime directory.
	Token      string `env:"GOOGLE_CALENDAR_TOKEN"`
	CalendarID string `env:"GOOGLE_CALENDAR_ID" envDefault:"primary"`

	// Mode selects the query strategy: "events" or "freebusy".
	Mode string `env:"CALENDAR_MODE" envDefault:"freebusy"`

	// MaxLines caps the slot lines spliced into a reply.
	MaxLines int `env:"CALENDAR_MAX_LINES" envDefault:"3"`

	// WindowHours is how far ahead the availability lookup reaches.
	WindowHours int `env:"BOOKING_WINDOW_HOURS" envDefault:"48"`
}

func NewCalendarConfig(ctx context.Context) *CalendarConfig {
	c := &CalendarConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Calendar config")
	}
	return c
}
