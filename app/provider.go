package app

import (
	"github.com/brendanbates89/dot/framework/config"
	"github.com/brendanbates89/dot/framework/container"
	"github.com/brendanbates89/dot/framework/providers"
)

// AppServiceProvider wires the demo services: a shared UserStore and a
// mailer factory. The mailer itself is materialized in Boot from the
// loaded mail configuration.
type AppServiceProvider struct {
	providers.BaseProvider
}

func (p *AppServiceProvider) Register(c *container.Container) error {
	if err := container.Register(c, NewUserStore()); err != nil {
		return err
	}
	return container.RegisterGenerator(c, func(cfg MailerConfig) (*Mailer, error) {
		return NewMailer(cfg)
	})
}

func (p *AppServiceProvider) Boot(c *container.Container) error {
	cfg, err := container.Get[config.Config](c)
	if err != nil {
		return err
	}
	return container.RegisterByFactory[Mailer](c, MailerConfig{
		Host: cfg.Mail.Host,
		Port: cfg.Mail.Port,
		From: cfg.Mail.From,
	})
}
