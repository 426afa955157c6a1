package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/lexibot/pkg/log"
)

type ServerConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":5000"`

	// AllowedOrigin is sent back as Access-Control-Allow-Origin. The intake
	// widget is embedded on the firm's site, so the default stays permissive.
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
}

func NewServerConfig(ctx context.Context) *ServerConfig {
	c := &ServerConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Server config")
	}
	return c
}
