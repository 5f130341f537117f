package pairs

import (
	"iter"

	"github.com/npillmayer/assoc"
)

// Source is a positional sequence of associations. List, dual.Set and
// dual.UniqueSet are sources.
type Source[A, B comparable] interface {
	Count() int
	At(i int) assoc.Association[A, B]
}

// Sources with an index for one of the columns may offer it to views.
type (
	indexOfA[A comparable] interface{ IndexOfA(A) int }
	indexOfB[B comparable] interface{ IndexOfB(B) int }
)

// === Column A ==============================================================

// ListA is a read-only view of the first components of a source. It holds no
// state besides the source; every access is forwarded.
type ListA[A, B comparable] struct {
	src Source[A, B]
}

// ColumnA creates a view of the first components of src.
func ColumnA[A, B comparable](src Source[A, B]) *ListA[A, B] {
	return &ListA[A, B]{src: src}
}

// Count returns the number of entries in the underlying source.
func (v *ListA[A, B]) Count() int {
	return v.src.Count()
}

// IsEmpty is true if the underlying source is empty.
func (v *ListA[A, B]) IsEmpty() bool {
	return v.src.Count() == 0
}

// IsReadOnly is always true.
func (v *ListA[A, B]) IsReadOnly() bool {
	return true
}

// At returns the first component at position i.
func (v *ListA[A, B]) At(i int) A {
	return v.src.At(i).A()
}

// IndexOf returns the position of a, or -1. Uses the source's index if the
// source has one, otherwise scans linearly.
func (v *ListA[A, B]) IndexOf(a A) int {
	if ix, ok := v.src.(indexOfA[A]); ok {
		return ix.IndexOfA(a)
	}
	for i := 0; i < v.src.Count(); i++ {
		if v.src.At(i).A() == a {
			return i
		}
	}
	return -1
}

// Contains is true if a occurs in the column.
func (v *ListA[A, B]) Contains(a A) bool {
	return v.IndexOf(a) >= 0
}

// Values returns a snapshot of the column.
func (v *ListA[A, B]) Values() []A {
	as := make([]A, v.src.Count())
	for i := range as {
		as[i] = v.src.At(i).A()
	}
	return as
}

// All iterates over positions and first components.
func (v *ListA[A, B]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		for i := 0; i < v.src.Count(); i++ {
			if !yield(i, v.src.At(i).A()) {
				return
			}
		}
	}
}

// Add is rejected with a read-only violation.
func (v *ListA[A, B]) Add(A) error { return assoc.ReadOnlyViolation("ListA.Add") }

// Insert is rejected with a read-only violation.
func (v *ListA[A, B]) Insert(int, A) error { return assoc.ReadOnlyViolation("ListA.Insert") }

// Set is rejected with a read-only violation.
func (v *ListA[A, B]) Set(int, A) error { return assoc.ReadOnlyViolation("ListA.Set") }

// RemoveAt is rejected with a read-only violation.
func (v *ListA[A, B]) RemoveAt(int) error { return assoc.ReadOnlyViolation("ListA.RemoveAt") }

// Clear is rejected with a read-only violation.
func (v *ListA[A, B]) Clear() error { return assoc.ReadOnlyViolation("ListA.Clear") }

// === Column B ==============================================================

// ListB is a read-only view of the second components of a source.
type ListB[A, B comparable] struct {
	src Source[A, B]
}

// ColumnB creates a view of the second components of src.
func ColumnB[A, B comparable](src Source[A, B]) *ListB[A, B] {
	return &ListB[A, B]{src: src}
}

// Count returns the number of entries in the underlying source.
func (v *ListB[A, B]) Count() int {
	return v.src.Count()
}

// IsEmpty is true if the underlying source is empty.
func (v *ListB[A, B]) IsEmpty() bool {
	return v.src.Count() == 0
}

// IsReadOnly is always true.
func (v *ListB[A, B]) IsReadOnly() bool {
	return true
}

// At returns the second component at position i.
func (v *ListB[A, B]) At(i int) B {
	return v.src.At(i).B()
}

// IndexOf returns the position of b, or -1.
func (v *ListB[A, B]) IndexOf(b B) int {
	if ix, ok := v.src.(indexOfB[B]); ok {
		return ix.IndexOfB(b)
	}
	for i := 0; i < v.src.Count(); i++ {
		if v.src.At(i).B() == b {
			return i
		}
	}
	return -1
}

// Contains is true if b occurs in the column.
func (v *ListB[A, B]) Contains(b B) bool {
	return v.IndexOf(b) >= 0
}

// Values returns a snapshot of the column.
func (v *ListB[A, B]) Values() []B {
	bs := make([]B, v.src.Count())
	for i := range bs {
		bs[i] = v.src.At(i).B()
	}
	return bs
}

// All iterates over positions and second components.
func (v *ListB[A, B]) All() iter.Seq2[int, B] {
	return func(yield func(int, B) bool) {
		for i := 0; i < v.src.Count(); i++ {
			if !yield(i, v.src.At(i).B()) {
				return
			}
		}
	}
}

// Add is rejected with a read-only violation.
func (v *ListB[A, B]) Add(B) error { return assoc.ReadOnlyViolation("ListB.Add") }

// Insert is rejected with a read-only violation.
func (v *ListB[A, B]) Insert(int, B) error { return assoc.ReadOnlyViolation("ListB.Insert") }

// Set is rejected with a read-only violation.
func (v *ListB[A, B]) Set(int, B) error { return assoc.ReadOnlyViolation("ListB.Set") }

// RemoveAt is rejected with a read-only violation.
func (v *ListB[A, B]) RemoveAt(int) error { return assoc.ReadOnlyViolation("ListB.RemoveAt") }

// Clear is rejected with a read-only violation.
func (v *ListB[A, B]) Clear() error { return assoc.ReadOnlyViolation("ListB.Clear") }
