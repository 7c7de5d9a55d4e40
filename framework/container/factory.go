package container

import (
	"fmt"
	"sync"
)

// EmptyConfig is the configuration type for factories that need none.
type EmptyConfig struct{}

// Factory builds instances of T from a C configuration value.
//
// A factory installed in a scope tree may be invoked concurrently from any
// node of that tree; implementations must be stateless or synchronize
// internally. The registry only serializes table lookup and installation.
type Factory[T, C any] interface {
	Generate(cfg C) (*T, error)
}

// GeneratorFunc adapts a plain function to Factory.
type GeneratorFunc[T, C any] func(cfg C) (*T, error)

func (f GeneratorFunc[T, C]) Generate(cfg C) (*T, error) { return f(cfg) }

// BasicFactory produces zero values of T from an EmptyConfig.
type BasicFactory[T any] struct{}

func (BasicFactory[T]) Generate(EmptyConfig) (*T, error) { return new(T), nil }

// factoryEntry is the erased form stored in the shared table. factory is
// always a Factory[T, C] where typ and cfg index T and C.
type factoryEntry struct {
	typ     TypeIndex
	cfg     TypeIndex
	factory any
}

// factoryTable holds one factory per service type and is shared by pointer
// across an entire scope tree. It carries its own lock: node mutexes guard
// only node-local service tables, and sibling scopes mutating this table
// must still exclude each other.
type factoryTable struct {
	mu      sync.Mutex
	entries map[TypeIndex]*factoryEntry
}

func newFactoryTable() *factoryTable {
	return &factoryTable{entries: make(map[TypeIndex]*factoryEntry)}
}

// install adds a factory for its type, failing if any scope in the tree
// already installed one.
func (ft *factoryTable) install(e *factoryEntry) error {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if _, exists := ft.entries[e.typ]; exists {
		return fmt.Errorf("%w: factory for type %s", ErrAlreadyRegistered, e.typ)
	}
	ft.entries[e.typ] = e
	return nil
}

func (ft *factoryTable) lookup(typ TypeIndex) (*factoryEntry, bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	e, ok := ft.entries[typ]
	return e, ok
}

// resolveFactory fetches the entry for T and narrows it to the requested
// (T, C) pair. The returned factory is invoked outside the table lock.
func resolveFactory[T, C any](ft *factoryTable) (Factory[T, C], error) {
	typ := IndexFor[T]()

	e, ok := ft.lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: type %s", ErrFactoryNotFound, typ)
	}

	f, ok := e.factory.(Factory[T, C])
	if !ok {
		return nil, fmt.Errorf("%w: factory for %s takes config %s, requested %s",
			ErrCastFailure, typ, e.cfg, IndexFor[C]())
	}
	return f, nil
}
