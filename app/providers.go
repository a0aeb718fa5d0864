package app

import (
	"github.com/km-arc/go-spring/framework/config"
	"github.com/km-arc/go-spring/framework/container"
	"github.com/km-arc/go-spring/framework/routing"
)

// ── ConfigServiceProvider ────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// registers it as the "config" bean.
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.Container) error {
	return c.RegisterNamed("config", config.Load(p.EnvFiles...))
}

// ── RoutingServiceProvider ───────────────────────────────────────────────────

// RoutingServiceProvider registers the chi-backed HTTP router as the "router"
// bean.
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(c *container.Container) error {
	return c.RegisterNamed("router", routing.New())
}
