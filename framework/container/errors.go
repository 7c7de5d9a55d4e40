package container

import "errors"

// Error kinds returned by registry operations. Operations wrap these with
// the offending type and id; callers branch with errors.Is.
var (
	// ErrAlreadyRegistered: a service or factory is already present under
	// the requested key and no overwrite was asked for.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotFound: no service under the requested (type, id) anywhere in
	// the visible scope chain (for Get), or in this scope (for Unregister).
	ErrNotFound = errors.New("service not found")

	// ErrFactoryNotFound: no factory installed for the requested type.
	ErrFactoryNotFound = errors.New("factory not found")

	// ErrCastFailure: an erased slot or factory could not be narrowed to
	// the statically requested type pair. This signals a broken invariant,
	// not ordinary absence.
	ErrCastFailure = errors.New("invalid cast")
)
