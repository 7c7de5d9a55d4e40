// Package container provides a type-keyed, hierarchical service registry.
//
// # Overview
//
// The container stores and hands out services by their static Go type,
// optionally disambiguated by an integer id. Callers never name a concrete
// instance; they register one under a type and request it back by that
// type. Construction can be delegated to factories bound to a
// (service, config) type pair, and child scopes inherit their ancestors'
// services while isolating their own registrations.
//
// Because Go methods cannot introduce type parameters, the typed
// operations are package-level generic functions taking a *Container as
// their first argument.
//
// # Registering and resolving
//
//	c := container.New()
//
//	if err := container.Register(c, &Database{DSN: dsn}); err != nil { ... }
//
//	db, err := container.Get[Database](c)
//
//	// Several services of one type, told apart by id:
//	container.Register(c, primary, container.WithID(1))
//	container.Register(c, replica, container.WithID(2))
//
//	// Replacing requires an explicit opt-in:
//	container.Register(c, other, container.WithOverwrite())
//
// # Factories
//
// A factory builds instances of one service type from one configuration
// type. Factories are installed once per scope tree; every scope, parent
// and sibling reads the same table.
//
//	container.RegisterGenerator(c, func(cfg MailerConfig) (*Mailer, error) {
//	    return &Mailer{Host: cfg.Host}, nil
//	})
//
//	// Build and store:
//	container.RegisterByFactory[Mailer](c, MailerConfig{Host: "smtp.local"})
//
//	// Build without storing:
//	m, err := container.Generate[Mailer](c, MailerConfig{Host: "smtp.dev"})
//
// # Scopes
//
//	scope := c.Scope()
//
// A scope starts empty, resolves misses through its parent chain, and
// shadows (never mutates) ancestor entries when it registers under a key
// an ancestor also holds. Dropping the last reference to a scope releases
// its local registrations; the parent is unaffected.
//
// # Errors
//
// Every operation returns an error wrapping one of the sentinel kinds
// ErrAlreadyRegistered, ErrNotFound, ErrFactoryNotFound or ErrCastFailure.
// Branch with errors.Is:
//
//	if _, err := container.Get[Database](c); errors.Is(err, container.ErrNotFound) { ... }
package container
