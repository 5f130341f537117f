package indexed

import (
	"bytes"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/npillmayer/assoc"
)

// IndexedSet is an ordered, duplicate-free sequence of values. Construct with
//
//     S := indexed.New[int]()
//
// The zero value is not usable.
type IndexedSet[T comparable] struct {
	items []T       // backing list, authoritative order
	index map[T]int // value → position in items
}

// Option configures a new IndexedSet.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-allocates room for n values.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates an empty IndexedSet.
func New[T comparable](opts ...Option) *IndexedSet[T] {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return &IndexedSet[T]{
		items: make([]T, 0, c.capacity),
		index: make(map[T]int, c.capacity),
	}
}

// From creates an IndexedSet from a list of values, adding them one by one.
// Bulk construction is not atomic: if a value is rejected, From returns the
// set built so far together with the error.
func From[T comparable](items ...T) (*IndexedSet[T], error) {
	S := New[T](WithCapacity(len(items)))
	return S, S.AddRange(items...)
}

// FromSeq creates an IndexedSet from an iterator. Same semantics as From.
func FromSeq[T comparable](seq iter.Seq[T]) (*IndexedSet[T], error) {
	S := New[T]()
	for item := range seq {
		if err := S.Add(item); err != nil {
			return S, err
		}
	}
	return S, nil
}

// --- Queries ---------------------------------------------------------------

// Count returns the number of values in the set.
func (s *IndexedSet[T]) Count() int {
	return len(s.items)
}

// IsEmpty is true for a set without values.
func (s *IndexedSet[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the value at position i. As with slices, At panics if i is out
// of range.
func (s *IndexedSet[T]) At(i int) T {
	return s.items[i]
}

// IndexOf returns the position of item, or -1.
func (s *IndexedSet[T]) IndexOf(item T) int {
	if pos, ok := s.index[item]; ok {
		return pos
	}
	return -1
}

// Contains is true if item is in the set.
func (s *IndexedSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Values returns a copy of the values in order.
func (s *IndexedSet[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over positions and values. The set must not be modified during
// iteration.
func (s *IndexedSet[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Copy returns an independent copy of s.
func (s *IndexedSet[T]) Copy() *IndexedSet[T] {
	return &IndexedSet[T]{
		items: slices.Clone(s.items),
		index: maps.Clone(s.index),
	}
}

func (s *IndexedSet[T]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, item := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteString("}")
	return b.String()
}

// --- Mutations -------------------------------------------------------------

// Add appends item at the end of the list. Adding a nil value is an invalid
// argument, adding a value already present is a duplicate key error. In both
// cases the set is unchanged.
func (s *IndexedSet[T]) Add(item T) (err error) {
	const op = "IndexedSet.Add"
	if assoc.IsNil(item) {
		return assoc.Invalid(op, "cannot add nil value")
	}
	defer s.recoverFault(op, &err)
	if _, found := s.index[item]; found {
		return assoc.Duplicate(op, item)
	}
	s.items = append(s.items, item)
	s.index[item] = len(s.items) - 1
	return nil
}

// AddRange adds values one by one, stopping at the first error. Values added
// before the error remain in the set.
func (s *IndexedSet[T]) AddRange(items ...T) error {
	for _, item := range items {
		if err := s.Add(item); err != nil {
			return err
		}
	}
	return nil
}

// Insert puts item at position i, shifting all following values one position
// to the right. i may be equal to Count(), which appends.
func (s *IndexedSet[T]) Insert(i int, item T) (err error) {
	const op = "IndexedSet.Insert"
	if i < 0 || i > len(s.items) {
		return assoc.IndexOutOfRange(op, i, len(s.items)+1)
	}
	if assoc.IsNil(item) {
		return assoc.Invalid(op, "cannot insert nil value")
	}
	defer s.recoverFault(op, &err)
	if _, found := s.index[item]; found {
		return assoc.Duplicate(op, item)
	}
	s.items = slices.Insert(s.items, i, item)
	s.index[item] = i
	s.reindex(i + 1)
	return nil
}

// Set replaces the value at position i. Setting a value to itself is a no-op.
func (s *IndexedSet[T]) Set(i int, item T) (err error) {
	const op = "IndexedSet.Set"
	if i < 0 || i >= len(s.items) {
		return assoc.IndexOutOfRange(op, i, len(s.items))
	}
	if assoc.IsNil(item) {
		return assoc.Invalid(op, "cannot set nil value")
	}
	defer s.recoverFault(op, &err)
	old := s.items[i]
	if old == item {
		return nil
	}
	if _, found := s.index[item]; found {
		return assoc.Duplicate(op, item)
	}
	if pos, ok := s.index[old]; !ok || pos != i {
		return s.repair(op, fmt.Errorf("value %v at position %d not indexed there", old, i))
	}
	delete(s.index, old)
	s.index[item] = i
	s.items[i] = item
	return nil
}

// RemoveAt removes the value at position i, shifting all following values one
// position to the left.
func (s *IndexedSet[T]) RemoveAt(i int) error {
	return s.removeAt("IndexedSet.RemoveAt", i)
}

// Remove removes item from the set. It is a key-not-found error if item is
// not present.
func (s *IndexedSet[T]) Remove(item T) error {
	const op = "IndexedSet.Remove"
	pos, ok := s.index[item]
	if !ok {
		return assoc.NotFound(op, item)
	}
	return s.removeAt(op, pos)
}

func (s *IndexedSet[T]) removeAt(op string, i int) (err error) {
	if i < 0 || i >= len(s.items) {
		return assoc.IndexOutOfRange(op, i, len(s.items))
	}
	defer s.recoverFault(op, &err)
	item := s.items[i]
	if pos, ok := s.index[item]; !ok || pos != i {
		return s.repair(op, fmt.Errorf("value %v at position %d not indexed there", item, i))
	}
	delete(s.index, item)
	s.items = slices.Delete(s.items, i, i+1)
	s.reindex(i)
	return nil
}

// Swap exchanges the values at positions i and j.
func (s *IndexedSet[T]) Swap(i, j int) (err error) {
	const op = "IndexedSet.Swap"
	n := len(s.items)
	if i < 0 || i >= n {
		return assoc.IndexOutOfRange(op, i, n)
	}
	if j < 0 || j >= n {
		return assoc.IndexOutOfRange(op, j, n)
	}
	defer s.recoverFault(op, &err)
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.index[s.items[i]] = i
	s.index[s.items[j]] = j
	return nil
}

// Reverse reverses the order of the values in place.
func (s *IndexedSet[T]) Reverse() {
	slices.Reverse(s.items)
	s.reindex(0)
}

// Clear removes all values.
func (s *IndexedSet[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.index = make(map[T]int)
}

// reindex updates the lookup entries of all values from position i onwards.
func (s *IndexedSet[T]) reindex(i int) {
	for ; i < len(s.items); i++ {
		s.index[s.items[i]] = i
	}
}

// push appends an item known to be absent, without any checks.
func (s *IndexedSet[T]) push(item T) {
	s.items = append(s.items, item)
	s.index[item] = len(s.items) - 1
}

// --- Consistency -----------------------------------------------------------

// CheckIntegrity verifies that the lookup table and the backing list form a
// bijection. It returns an error of kind assoc.ConsistencyFault describing the
// first violation found, or nil.
func (s *IndexedSet[T]) CheckIntegrity() error {
	const op = "IndexedSet.CheckIntegrity"
	if len(s.index) != len(s.items) {
		return assoc.Violation(op, "%d lookup entries for %d values", len(s.index), len(s.items))
	}
	for i, item := range s.items {
		if pos, ok := s.index[item]; !ok || pos != i {
			return assoc.Violation(op, "value %v at position %d resolves to %d", item, i, pos)
		}
	}
	return nil
}

func (s *IndexedSet[T]) recoverFault(op string, err *error) {
	if r := recover(); r != nil {
		if assoc.IsFaultPanic(r) {
			panic(r)
		}
		*err = s.repair(op, assoc.Recovered(r))
	}
}

// repair restores the invariants after a fault has been detected and returns
// the fault.
func (s *IndexedSet[T]) repair(op string, cause error) error {
	s.rebuild()
	return assoc.Fault(op, cause)
}

// rebuild re-creates the lookup table from the backing list. If the list
// itself holds duplicates (or values which cannot be hashed), there is no
// bijection to rebuild and the set is cleared.
func (s *IndexedSet[T]) rebuild() {
	tracer().Debugf("IndexedSet: rebuilding lookup table for %d values", len(s.items))
	if index, ok := buildIndex(s.items); ok {
		s.index = index
		return
	}
	tracer().Errorf("IndexedSet: backing list not unique, clearing set")
	s.Clear()
}

func buildIndex[T comparable](items []T) (index map[T]int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			index, ok = nil, false
		}
	}()
	index = make(map[T]int, len(items))
	for i, item := range items {
		if _, dup := index[item]; dup {
			return nil, false
		}
		index[item] = i
	}
	return index, true
}
