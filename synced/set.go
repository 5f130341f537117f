package synced

import (
	"iter"
	"slices"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/dual"
)

// Set is a dual.Set safe for concurrent use.
type Set[K, V comparable] struct {
	*Guard[*dual.Set[K, V]]
}

// NewSet creates an empty synchronized Set.
func NewSet[K, V comparable]() *Set[K, V] {
	return WrapSet(dual.New[K, V]())
}

// WrapSet puts s under the control of a guard.
func WrapSet[K, V comparable](s *dual.Set[K, V]) *Set[K, V] {
	return &Set[K, V]{NewGuard(s)}
}

// Count returns the number of elements.
func (s *Set[K, V]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Count()
}

// IsEmpty is true if the container has no elements.
func (s *Set[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.IsEmpty()
}

// At returns the association at position i. Panics if i is out of range.
func (s *Set[K, V]) At(i int) assoc.Association[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.At(i)
}

// IndexOfA returns the position of the association with first component k, or -1.
func (s *Set[K, V]) IndexOfA(k K) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.IndexOfA(k)
}

// ContainsA is true if k is used as a first component.
func (s *Set[K, V]) ContainsA(k K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.ContainsA(k)
}

// LookupA returns the second component linked to k.
func (s *Set[K, V]) LookupA(k K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.LookupA(k)
}

// LookupB is not supported, see dual.Set.
func (s *Set[K, V]) LookupB(v V) (K, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.LookupB(v)
}

// Values returns a copy of the associations in order.
func (s *Set[K, V]) Values() []assoc.Association[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Values()
}

// All iterates over a snapshot of the set, taken when All is called.
func (s *Set[K, V]) All() iter.Seq2[int, assoc.Association[K, V]] {
	return slices.All(s.Values())
}

// Snapshot returns an unsynchronized copy of the set.
func (s *Set[K, V]) Snapshot() *dual.Set[K, V] {
	return With(s.Guard, (*dual.Set[K, V]).Copy)
}

// Add appends an association of k and v. See dual.Set.Add for the errors returned.
func (s *Set[K, V]) Add(k K, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Add(k, v)
}

// Insert puts an association of k and v at position i.
func (s *Set[K, V]) Insert(i int, k K, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Insert(i, k, v)
}

// Set replaces the element at position i.
func (s *Set[K, V]) Set(i int, k K, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Set(i, k, v)
}

// SetB changes the second component of the association with first component k.
func (s *Set[K, V]) SetB(k K, v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.SetB(k, v)
}

// RemoveAt removes the element at position i.
func (s *Set[K, V]) RemoveAt(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveAt(i)
}

// RemoveA removes the association with first component k.
func (s *Set[K, V]) RemoveA(k K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveA(k)
}

// RemoveB is not supported, see dual.Set.
func (s *Set[K, V]) RemoveB(v V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.RemoveB(v)
}

// Reverse reverses the order of the elements.
func (s *Set[K, V]) Reverse() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Reverse()
}

// Clear removes all elements.
func (s *Set[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Clear()
}

// CheckIntegrity verifies the invariants of the wrapped container.
func (s *Set[K, V]) CheckIntegrity() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.CheckIntegrity()
}

// String formats the wrapped container.
func (s *Set[K, V]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.String()
}
