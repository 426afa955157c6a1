package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/lexibot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"LEXI_RUNTIME_PATH" envDefault:".lexibot"`

	// Transport flags
	EnableHTTP bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableCLI  bool `env:"ENABLE_CLI" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = absRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) IsHTTPSelected() bool {
	return c.EnableHTTP
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}
