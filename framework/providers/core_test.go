package providers_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/brendanbates89/dot/framework/cache"
	"github.com/brendanbates89/dot/framework/config"
	"github.com/brendanbates89/dot/framework/container"
	"github.com/brendanbates89/dot/framework/providers"
	"github.com/brendanbates89/dot/framework/routing"
)

func bootCore(t *testing.T) *container.Container {
	t.Helper()
	c := container.New()
	reg := providers.NewRegistry(c)

	for _, p := range []providers.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: []string{"testdata/absent.env"}},
		&providers.LoggingServiceProvider{},
		&providers.RoutingServiceProvider{},
		&providers.CacheServiceProvider{},
	} {
		if err := reg.Register(p); err != nil {
			t.Fatalf("Register %T: %v", p, err)
		}
	}
	if err := reg.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	return c
}

func TestCoreProviders_WireEverything(t *testing.T) {
	c := bootCore(t)

	if _, err := container.Get[config.Config](c); err != nil {
		t.Errorf("config: %v", err)
	}
	if _, err := container.Get[zap.Logger](c); err != nil {
		t.Errorf("logger: %v", err)
	}
	if _, err := container.Get[routing.Router](c); err != nil {
		t.Errorf("router: %v", err)
	}
	if _, err := container.Get[cache.Store](c); err != nil {
		t.Errorf("cache: %v", err)
	}
}

func TestLoggingProvider_FactoryIsReusable(t *testing.T) {
	c := bootCore(t)

	// The installed factory also serves ad-hoc generation with a custom
	// config, without disturbing the registered logger.
	cfg := config.Load("testdata/absent.env")
	cfg.Log.Level = "error"

	oneOff, err := container.Generate[zap.Logger](c, *cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	shared, err := container.Get[zap.Logger](c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if oneOff == shared {
		t.Error("Generate should build a fresh logger, not hand back the registered one")
	}
}
