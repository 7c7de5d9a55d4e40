package container

import "sync"

var defaultContainer = sync.OnceValue(New)

// Default returns the process-wide root container, constructed on first
// use and stable for the life of the process. Code that needs an isolated
// registry (tests above all) should accept a *Container and be handed a
// fresh New() instead of reaching for Default.
func Default() *Container {
	return defaultContainer()
}
