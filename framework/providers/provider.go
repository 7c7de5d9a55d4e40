// Package providers defines the two-phase service provider lifecycle that
// populates a container at application boot.
package providers

import (
	"github.com/brendanbates89/dot/framework/container"
)

// ServiceProvider registers services into a container during boot.
//
// Register must only bind: it runs before other providers have had their
// turn, so resolving anything there is an ordering bug waiting to happen.
// Boot runs after every provider has registered and may resolve freely.
type ServiceProvider interface {
	Register(c *container.Container) error
	Boot(c *container.Container) error
}

// BaseProvider is an embeddable no-op Boot. Embed it and override what you
// need.
//
//	type AppServiceProvider struct{ providers.BaseProvider }
//	func (p *AppServiceProvider) Register(c *container.Container) error { ... }
type BaseProvider struct{}

func (BaseProvider) Boot(*container.Container) error { return nil }

// Registry drives registration and booting of ServiceProviders against one
// container.
type Registry struct {
	target     *container.Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewRegistry creates a Registry bound to c.
func NewRegistry(c *container.Container) *Registry {
	return &Registry{
		target:     c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and runs its Register phase. Registering the
// same provider twice is a no-op. If the registry has already booted, the
// provider's Boot phase runs immediately after.
func (r *Registry) Register(p ServiceProvider) error {
	if r.registered[p] {
		return nil
	}
	r.registered[p] = true

	if err := p.Register(r.target); err != nil {
		return err
	}
	r.providers = append(r.providers, p)

	if r.booted {
		return p.Boot(r.target)
	}
	return nil
}

// Boot runs the Boot phase on every registered provider, in registration
// order. Must be called after ALL providers have been registered; calling
// it twice is a no-op.
func (r *Registry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true

	for _, p := range r.providers {
		if err := p.Boot(r.target); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true once Boot has run.
func (r *Registry) Booted() bool { return r.booted }

// Providers returns the registered providers.
func (r *Registry) Providers() []ServiceProvider { return r.providers }
