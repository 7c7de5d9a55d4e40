package container

import (
	"fmt"
	"sync"
)

// serviceKey identifies one registered service within a node.
type serviceKey struct {
	typ TypeIndex
	id  int
}

func (k serviceKey) String() string {
	return fmt.Sprintf("%s (id %d)", k.typ, k.id)
}

// Container is one node of a scope tree: a local service table, a factory
// table shared with every other node of the tree, and an optional parent
// consulted on lookup misses.
//
// The mutex guards only this node's local table. A lookup that falls
// through to the parent releases this node's lock first, so lock
// acquisition always runs strictly child→ancestor on distinct mutexes.
type Container struct {
	mu        sync.Mutex
	services  map[serviceKey]*slot
	factories *factoryTable
	parent    *Container
}

// New creates a root container with an empty service table and a fresh
// factory table.
func New() *Container {
	return &Container{
		services:  make(map[serviceKey]*slot),
		factories: newFactoryTable(),
	}
}

// Scope derives a child container. The child starts with no services of
// its own, resolves misses through this node, and reads the same factory
// table as the rest of the tree. Dropping the last reference to the child
// releases its local registrations without touching this node.
func (c *Container) Scope() *Container {
	return &Container{
		services:  make(map[serviceKey]*slot),
		factories: c.factories,
		parent:    c,
	}
}

// ── Options ──────────────────────────────────────────────────────────────────

type settings struct {
	id        int
	overwrite bool
}

// Option adjusts a single registry operation.
type Option func(*settings)

// WithID disambiguates between several services of the same type.
// Operations default to id 0.
func WithID(id int) Option {
	return func(s *settings) { s.id = id }
}

// WithOverwrite lets Register and RegisterByFactory replace an existing
// entry instead of failing with ErrAlreadyRegistered.
func WithOverwrite() Option {
	return func(s *settings) { s.overwrite = true }
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	return s
}

// ── Services ─────────────────────────────────────────────────────────────────

// Register stores instance in this node under (T, id). Ownership of the
// instance is shared: the table and every handle Get returns point at the
// same value. Fails with ErrAlreadyRegistered if the key is taken and
// WithOverwrite was not passed; the table is untouched on failure.
func Register[T any](c *Container, instance *T, opts ...Option) error {
	set := applyOptions(opts)
	key := serviceKey{typ: IndexFor[T](), id: set.id}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.services[key]; exists && !set.overwrite {
		return fmt.Errorf("%w: service %s", ErrAlreadyRegistered, key)
	}
	c.services[key] = newSlot(instance)
	return nil
}

// RegisterByFactory builds an instance of T through the tree's factory for
// (T, C) and registers it in this node, subject to the same key rules as
// Register. Factory resolution fails with ErrFactoryNotFound or
// ErrCastFailure exactly as Generate does. Nothing is stored on any
// failure.
func RegisterByFactory[T, C any](c *Container, cfg C, opts ...Option) error {
	set := applyOptions(opts)
	key := serviceKey{typ: IndexFor[T](), id: set.id}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.services[key]; exists && !set.overwrite {
		return fmt.Errorf("%w: service %s", ErrAlreadyRegistered, key)
	}

	f, err := resolveFactory[T, C](c.factories)
	if err != nil {
		return err
	}
	instance, err := f.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate %s: %w", key.typ, err)
	}

	c.services[key] = newSlot(instance)
	return nil
}

// Get returns the service registered under (T, id). A miss in this node
// falls through to the parent chain; only when the root also misses does
// it fail with ErrNotFound. The returned pointer is the registered
// instance itself, shared with all other holders.
func Get[T any](c *Container, opts ...Option) (*T, error) {
	set := applyOptions(opts)
	key := serviceKey{typ: IndexFor[T](), id: set.id}

	for node := c; node != nil; node = node.parent {
		node.mu.Lock()
		s, ok := node.services[key]
		node.mu.Unlock()

		if ok {
			return recoverSlot[T](s)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// Has reports whether (T, id) is visible from this node, locally or
// through an ancestor.
func Has[T any](c *Container, opts ...Option) bool {
	set := applyOptions(opts)
	key := serviceKey{typ: IndexFor[T](), id: set.id}

	for node := c; node != nil; node = node.parent {
		node.mu.Lock()
		_, ok := node.services[key]
		node.mu.Unlock()

		if ok {
			return true
		}
	}
	return false
}

// Unregister removes this node's entry under (T, id). Removal is strictly
// scope-local: it fails with ErrNotFound when the key is absent here, even
// if an ancestor holds it, and an ancestor's same-keyed entry stays
// visible afterwards.
func Unregister[T any](c *Container, opts ...Option) error {
	set := applyOptions(opts)
	key := serviceKey{typ: IndexFor[T](), id: set.id}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.services[key]; !exists {
		return fmt.Errorf("%w: %s in this scope", ErrNotFound, key)
	}
	delete(c.services, key)
	return nil
}

// ── Factories ────────────────────────────────────────────────────────────────

// RegisterFactory installs factory for T in the tree-wide table. Factories
// are never per-scope: installing from any node makes the factory visible
// to ancestors and siblings alike, and a second installation for T fails
// with ErrAlreadyRegistered no matter which node attempts it.
func RegisterFactory[T, C any](c *Container, factory Factory[T, C]) error {
	return c.factories.install(&factoryEntry{
		typ:     IndexFor[T](),
		cfg:     IndexFor[C](),
		factory: factory,
	})
}

// RegisterGenerator is RegisterFactory for an inline generator function.
func RegisterGenerator[T, C any](c *Container, fn func(cfg C) (*T, error)) error {
	return RegisterFactory[T, C](c, GeneratorFunc[T, C](fn))
}

// Generate builds a fresh T through the tree's factory for (T, C) and
// returns it to the caller without registering it anywhere. Fails with
// ErrFactoryNotFound when no factory exists for T and ErrCastFailure when
// the installed factory is bound to a different config type.
func Generate[T, C any](c *Container, cfg C) (*T, error) {
	f, err := resolveFactory[T, C](c.factories)
	if err != nil {
		return nil, err
	}
	instance, err := f.Generate(cfg)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", IndexFor[T](), err)
	}
	return instance, nil
}
