package assoc

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'assoc'.
func tracer() tracing.Trace {
	return tracing.Select("assoc")
}

// --- Associations ----------------------------------------------------------

// Association is an immutable pairing of two values. It is the unit stored by
// all two-dimensional containers of this module.
//
//    a := assoc.Associate(1, "x")
//    a.A()                           // 1
//    a.B()                           // "x"
//    a == assoc.Associate(1, "x")    // true, equality is component-wise
//
// Associations are never mutated; containers replace them wholesale.
type Association[A, B comparable] struct {
	a A
	b B
}

// Associate creates an association of a and b.
func Associate[A, B comparable](a A, b B) Association[A, B] {
	return Association[A, B]{a: a, b: b}
}

// A returns the first component.
func (x Association[A, B]) A() A {
	return x.a
}

// B returns the second component.
func (x Association[A, B]) B() B {
	return x.b
}

// Equals is true if both components are equal.
func (x Association[A, B]) Equals(other Association[A, B]) bool {
	return x == other
}

// Hash combines the hashes of both components with XOR.
func (x Association[A, B]) Hash() uint64 {
	return hashOf(x.a) ^ hashOf(x.b)
}

func (x Association[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", x.a, x.b)
}

func hashOf(v any) uint64 {
	if IsNil(v) {
		return 0
	}
	h := structhash.Sha1(v, 1)
	if len(h) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(h[:8])
}

// --- Helpers ---------------------------------------------------------------

// IsNil is true for a nil interface and for typed nil pointers, maps, slices,
// channels and functions. Containers reject those as invalid arguments.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// PanicOnInconsistency reports whether the configuration asks for consistency
// faults to panic instead of being returned. Reads as false if no
// configuration has been initialized.
func PanicOnInconsistency() bool {
	return gconf.GetBool("panic-on-inconsistency")
}
