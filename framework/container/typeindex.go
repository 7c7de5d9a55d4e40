package container

import "reflect"

// TypeIndex identifies one concrete Go type for the lifetime of the
// process. Two values are equal iff they were produced for the same static
// type, across every package that asks. It is comparable and usable as a
// map key.
type TypeIndex struct {
	t reflect.Type
}

// IndexFor returns the TypeIndex for T.
func IndexFor[T any]() TypeIndex {
	return TypeIndex{t: reflect.TypeOf((*T)(nil)).Elem()}
}

// String returns a readable name for the indexed type, for error messages.
func (ti TypeIndex) String() string {
	if ti.t == nil {
		return "<none>"
	}
	return ti.t.String()
}
