// Package app assembles the container, the core providers and the HTTP
// server into a runnable application.
package app

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/brendanbates89/dot/framework/cache"
	"github.com/brendanbates89/dot/framework/config"
	"github.com/brendanbates89/dot/framework/container"
	dothttp "github.com/brendanbates89/dot/framework/http"
	"github.com/brendanbates89/dot/framework/providers"
	"github.com/brendanbates89/dot/framework/routing"
)

// Application is the top-level composition point. It embeds the root
// container so user code can pass it anywhere a *container.Container is
// expected, and carries the provider registry that populates it.
type Application struct {
	*container.Container
	Providers *providers.Registry
}

// New creates the application and registers the core providers
// (config, logging, routing, cache). Call Register for user providers,
// then Boot or Run.
func New(envFiles ...string) (*Application, error) {
	c := container.New()
	reg := providers.NewRegistry(c)

	app := &Application{
		Container: c,
		Providers: reg,
	}

	core := []providers.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LoggingServiceProvider{},
		&providers.RoutingServiceProvider{},
		&providers.CacheServiceProvider{},
	}
	for _, p := range core {
		if err := reg.Register(p); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(p providers.ServiceProvider) error {
	return a.Providers.Register(p)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves the application configuration.
func (a *Application) Config() (*config.Config, error) {
	return container.Get[config.Config](a.Container)
}

// Logger resolves the shared logger.
func (a *Application) Logger() (*zap.Logger, error) {
	return container.Get[zap.Logger](a.Container)
}

// Router resolves the HTTP router.
func (a *Application) Router() (*routing.Router, error) {
	return container.Get[routing.Router](a.Container)
}

// Cache resolves the cache store.
func (a *Application) Cache() (*cache.Store, error) {
	return container.Get[cache.Store](a.Container)
}

// Run boots the application (if needed), installs the request-scope
// middleware and serves HTTP on APP_PORT. It blocks until the server
// stops.
func (a *Application) Run() error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	cfg, err := a.Config()
	if err != nil {
		return err
	}
	logger, err := a.Logger()
	if err != nil {
		return err
	}
	router, err := a.Router()
	if err != nil {
		return err
	}

	addr := ":" + cfg.App.Port
	logger.Info("listening",
		zap.String("app", cfg.App.Name),
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
	)
	return http.ListenAndServe(addr, router)
}

// ScopeMiddleware returns the middleware opening a per-request child scope
// of this application's container.
func (a *Application) ScopeMiddleware() func(http.Handler) http.Handler {
	return dothttp.ScopeMiddleware(a.Container)
}

// Environment helpers.
func (a *Application) Environment() string {
	cfg, err := a.Config()
	if err != nil {
		return ""
	}
	return cfg.App.Env
}

func (a *Application) IsLocal() bool      { return a.Environment() == "local" }
func (a *Application) IsProduction() bool { return a.Environment() == "production" }
func (a *Application) IsTesting() bool    { return a.Environment() == "testing" }
