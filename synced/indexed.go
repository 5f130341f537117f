package synced

import (
	"iter"
	"slices"

	"github.com/npillmayer/assoc/indexed"
)

// IndexedSet is an indexed.IndexedSet safe for concurrent use.
type IndexedSet[T comparable] struct {
	*Guard[*indexed.IndexedSet[T]]
}

// NewIndexedSet creates an empty synchronized IndexedSet.
func NewIndexedSet[T comparable](opts ...indexed.Option) *IndexedSet[T] {
	return WrapIndexedSet(indexed.New[T](opts...))
}

// WrapIndexedSet puts s under the control of a guard.
func WrapIndexedSet[T comparable](s *indexed.IndexedSet[T]) *IndexedSet[T] {
	return &IndexedSet[T]{NewGuard(s)}
}

// Count returns the number of elements.
func (s *IndexedSet[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Count()
}

// IsEmpty is true if the container has no elements.
func (s *IndexedSet[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.IsEmpty()
}

// At returns the value at position i. Panics if i is out of range.
func (s *IndexedSet[T]) At(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.At(i)
}

// IndexOf returns the position of item, or -1.
func (s *IndexedSet[T]) IndexOf(item T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.IndexOf(item)
}

// Contains is true if item is in the set.
func (s *IndexedSet[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Contains(item)
}

// Values returns a copy of the values in order.
func (s *IndexedSet[T]) Values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Values()
}

// All iterates over a snapshot of the set, taken when All is called.
func (s *IndexedSet[T]) All() iter.Seq2[int, T] {
	return slices.All(s.Values())
}

// Snapshot returns an unsynchronized copy of the set.
func (s *IndexedSet[T]) Snapshot() *indexed.IndexedSet[T] {
	return With(s.Guard, (*indexed.IndexedSet[T]).Copy)
}

// Add appends item. See indexed.IndexedSet.Add for the errors returned.
func (s *IndexedSet[T]) Add(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Add(item)
}

// AddRange adds values one by one, stopping at the first error.
func (s *IndexedSet[T]) AddRange(items ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.AddRange(items...)
}

// Insert puts item at position i.
func (s *IndexedSet[T]) Insert(i int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Insert(i, item)
}

// Set replaces the element at position i.
func (s *IndexedSet[T]) Set(i int, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Set(i, item)
}

// Remove removes item from the set.
func (s *IndexedSet[T]) Remove(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Remove(item)
}

// RemoveAt removes the element at position i.
func (s *IndexedSet[T]) RemoveAt(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveAt(i)
}

// Reverse reverses the order of the elements.
func (s *IndexedSet[T]) Reverse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Reverse()
}

// Clear removes all elements.
func (s *IndexedSet[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Clear()
}

// CheckIntegrity verifies the invariants of the wrapped container.
func (s *IndexedSet[T]) CheckIntegrity() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.CheckIntegrity()
}

// String formats the wrapped container.
func (s *IndexedSet[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.String()
}
