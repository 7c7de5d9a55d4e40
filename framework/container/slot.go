package container

import "fmt"

// slot is an immutable type-erased holder for one registered service.
// value is always a *T for which typ == IndexFor[T](); the pointer is
// shared between the table and every caller Get has handed it to.
type slot struct {
	typ   TypeIndex
	value any
}

func newSlot[T any](v *T) *slot {
	return &slot{typ: IndexFor[T](), value: v}
}

// recoverSlot narrows the erased value back to *T. The assertion is the
// checked downcast: a mismatch reports ErrCastFailure instead of panicking.
func recoverSlot[T any](s *slot) (*T, error) {
	v, ok := s.value.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: slot holds %s, requested %s", ErrCastFailure, s.typ, IndexFor[T]())
	}
	return v, nil
}
