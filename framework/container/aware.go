package container

// Aware is an embeddable base for types that carry a container reference
// and forward to it. The zero value is usable and resolves against
// Default() until SetContainer replaces it.
//
//	type Worker struct {
//	    container.Aware
//	}
//
//	w := &Worker{}
//	w.MakeScope() // work in a private child of the current container
//	db, err := container.Get[Database](w.Container())
//
// Aware itself is not synchronized; confine a value to one goroutine or
// guard it externally.
type Aware struct {
	container *Container
}

// NewAware returns an Aware bound to c.
func NewAware(c *Container) Aware {
	return Aware{container: c}
}

// Container returns the held container, falling back to Default().
func (a *Aware) Container() *Container {
	if a.container == nil {
		a.container = Default()
	}
	return a.container
}

// SetContainer replaces the held container.
func (a *Aware) SetContainer(c *Container) {
	a.container = c
}

// MakeScope swaps the held container for a child scope of it, isolating
// this value's registrations from the container it was handed.
func (a *Aware) MakeScope() {
	a.container = a.Container().Scope()
}

// Inject resolves (T, opts) from c and assigns the handle to *dst.
func Inject[T any](c *Container, dst **T, opts ...Option) error {
	v, err := Get[T](c, opts...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// InjectDefault is Inject against the Default container.
func InjectDefault[T any](dst **T, opts ...Option) error {
	return Inject(Default(), dst, opts...)
}
