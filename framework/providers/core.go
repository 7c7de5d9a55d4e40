package providers

import (
	"go.uber.org/zap"

	"github.com/brendanbates89/dot/framework/cache"
	"github.com/brendanbates89/dot/framework/config"
	"github.com/brendanbates89/dot/framework/container"
	"github.com/brendanbates89/dot/framework/logging"
	"github.com/brendanbates89/dot/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads configuration from .env and registers the
// resulting *config.Config.
type ConfigServiceProvider struct {
	BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.Container) error {
	return container.Register(c, config.Load(p.EnvFiles...))
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider wires the zap logger. Register installs a factory
// for (*zap.Logger, config.Config) so callers can also Generate one-off
// loggers with a tweaked config; Boot materializes the shared instance
// from the loaded configuration.
type LoggingServiceProvider struct {
	BaseProvider
}

func (p *LoggingServiceProvider) Register(c *container.Container) error {
	return container.RegisterGenerator(c, func(cfg config.Config) (*zap.Logger, error) {
		return logging.New(&cfg)
	})
}

func (p *LoggingServiceProvider) Boot(c *container.Container) error {
	cfg, err := container.Get[config.Config](c)
	if err != nil {
		return err
	}
	return container.RegisterByFactory[zap.Logger](c, *cfg)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
type RoutingServiceProvider struct {
	BaseProvider
}

func (p *RoutingServiceProvider) Register(c *container.Container) error {
	return container.Register(c, routing.New())
}

// ── CacheServiceProvider ──────────────────────────────────────────────────────

// CacheServiceProvider registers the in-memory cache store. The store is
// sized from the loaded configuration, so it is built in Boot, after the
// config provider's Register phase has run.
type CacheServiceProvider struct{}

func (p *CacheServiceProvider) Register(*container.Container) error { return nil }

func (p *CacheServiceProvider) Boot(c *container.Container) error {
	cfg, err := container.Get[config.Config](c)
	if err != nil {
		return err
	}
	return container.Register(c, cache.New(cfg.Cache.TTL, cfg.Cache.Cleanup))
}
