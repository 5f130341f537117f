package dual

import (
	"fmt"
	"iter"
	"maps"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/pairs"
)

const useUniqueSet = "lookup by second component requires dual.UniqueSet"

// Set is an ordered sequence of associations, unique by first component.
// Second components may repeat.
type Set[K, V comparable] struct {
	list  *pairs.List[K, V]
	index map[K]int // first component → position
}

// New creates an empty Set.
func New[K, V comparable]() *Set[K, V] {
	return &Set[K, V]{
		list:  pairs.New[K, V](),
		index: make(map[K]int),
	}
}

// From creates a Set from a list of associations, adding them one by one.
// Bulk construction is not atomic: on error From returns the set built so far
// together with the error.
func From[K, V comparable](xs ...assoc.Association[K, V]) (*Set[K, V], error) {
	s := New[K, V]()
	return s, s.AddRange(xs...)
}

// --- Queries ---------------------------------------------------------------

// Count returns the number of associations.
func (s *Set[K, V]) Count() int {
	return s.list.Count()
}

// IsEmpty is true if the set has no associations.
func (s *Set[K, V]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// At returns the association at position i. Panics if i is out of range.
func (s *Set[K, V]) At(i int) assoc.Association[K, V] {
	return s.list.At(i)
}

// IndexOfA returns the position of the association with first component k,
// or -1.
func (s *Set[K, V]) IndexOfA(k K) int {
	if pos, ok := s.index[k]; ok {
		return pos
	}
	return -1
}

// ContainsA is true if there is an association with first component k.
func (s *Set[K, V]) ContainsA(k K) bool {
	_, ok := s.index[k]
	return ok
}

// Contains is true if x is contained in the set.
func (s *Set[K, V]) Contains(x assoc.Association[K, V]) bool {
	pos, ok := s.index[x.A()]
	return ok && s.list.BAt(pos) == x.B()
}

// LookupA returns the second component associated with k.
func (s *Set[K, V]) LookupA(k K) (V, bool) {
	if pos, ok := s.index[k]; ok {
		return s.list.BAt(pos), true
	}
	var zero V
	return zero, false
}

// IndexOfB is not supported by Set.
func (s *Set[K, V]) IndexOfB(V) (int, error) {
	return -1, assoc.NotSupported("Set.IndexOfB", useUniqueSet)
}

// ContainsB is not supported by Set.
func (s *Set[K, V]) ContainsB(V) (bool, error) {
	return false, assoc.NotSupported("Set.ContainsB", useUniqueSet)
}

// LookupB is not supported by Set.
func (s *Set[K, V]) LookupB(V) (K, bool, error) {
	var zero K
	return zero, false, assoc.NotSupported("Set.LookupB", useUniqueSet)
}

// Values returns a snapshot of all associations in order.
func (s *Set[K, V]) Values() []assoc.Association[K, V] {
	return s.list.Values()
}

// All iterates over positions and associations.
func (s *Set[K, V]) All() iter.Seq2[int, assoc.Association[K, V]] {
	return s.list.All()
}

// ColumnA returns a read-only view of the first components. Lookups through
// the view use the set's index.
func (s *Set[K, V]) ColumnA() *pairs.ListA[K, V] {
	return pairs.ColumnA[K, V](s)
}

// ColumnB returns a read-only view of the second components. Lookups through
// the view are linear scans.
func (s *Set[K, V]) ColumnB() *pairs.ListB[K, V] {
	return pairs.ColumnB[K, V](s)
}

// Copy returns an independent copy of s.
func (s *Set[K, V]) Copy() *Set[K, V] {
	return &Set[K, V]{
		list:  s.list.Copy(),
		index: maps.Clone(s.index),
	}
}

func (s *Set[K, V]) String() string {
	return s.list.String()
}

// --- Mutations -------------------------------------------------------------

// Add appends an association of k and v. k must not be nil and must not
// already be present.
func (s *Set[K, V]) Add(k K, v V) (err error) {
	const op = "Set.Add"
	if assoc.IsNil(k) {
		return assoc.Invalid(op, "nil key")
	}
	defer s.recoverFault(op, &err)
	if _, found := s.index[k]; found {
		return assoc.Duplicate(op, k)
	}
	s.index[k] = s.list.Count()
	if err := s.list.Add(k, v); err != nil {
		return s.repair(op, err)
	}
	return nil
}

// AddAssociation appends x.
func (s *Set[K, V]) AddAssociation(x assoc.Association[K, V]) error {
	return s.Add(x.A(), x.B())
}

// AddRange adds associations one by one, stopping at the first error.
func (s *Set[K, V]) AddRange(xs ...assoc.Association[K, V]) error {
	for _, x := range xs {
		if err := s.Add(x.A(), x.B()); err != nil {
			return err
		}
	}
	return nil
}

// Insert puts an association of k and v at position i, shifting the following
// associations. i may be equal to Count(), which appends.
func (s *Set[K, V]) Insert(i int, k K, v V) (err error) {
	const op = "Set.Insert"
	if i < 0 || i > s.Count() {
		return assoc.IndexOutOfRange(op, i, s.Count()+1)
	}
	if assoc.IsNil(k) {
		return assoc.Invalid(op, "nil key")
	}
	defer s.recoverFault(op, &err)
	if _, found := s.index[k]; found {
		return assoc.Duplicate(op, k)
	}
	if err := s.list.Insert(i, k, v); err != nil {
		return s.repair(op, err)
	}
	s.index[k] = i
	s.reindex(i + 1)
	return nil
}

// Set replaces the association at position i. The old first component is
// released before the new one is claimed; if the new one is taken by another
// association, the old entry is restored and a duplicate key error is
// returned. The list is touched only after the table change succeeded.
func (s *Set[K, V]) Set(i int, k K, v V) (err error) {
	const op = "Set.Set"
	if i < 0 || i >= s.Count() {
		return assoc.IndexOutOfRange(op, i, s.Count())
	}
	if assoc.IsNil(k) {
		return assoc.Invalid(op, "nil key")
	}
	defer s.recoverFault(op, &err)
	old := s.list.AAt(i)
	if pos, ok := s.index[old]; !ok || pos != i {
		return s.repair(op, fmt.Errorf("key %v at position %d not indexed there", old, i))
	}
	if k != old {
		delete(s.index, old)
		if _, found := s.index[k]; found {
			s.index[old] = i
			return assoc.Duplicate(op, k)
		}
		s.index[k] = i
	}
	if err := s.list.Set(i, k, v); err != nil {
		return s.repair(op, err)
	}
	return nil
}

// SetB changes the second component of the association with first component k.
func (s *Set[K, V]) SetB(k K, v V) error {
	pos, ok := s.index[k]
	if !ok {
		return assoc.NotFound("Set.SetB", k)
	}
	return s.Set(pos, k, v)
}

// RemoveAt removes the association at position i.
func (s *Set[K, V]) RemoveAt(i int) error {
	return s.removeAt("Set.RemoveAt", i)
}

// RemoveA removes the association with first component k.
func (s *Set[K, V]) RemoveA(k K) error {
	const op = "Set.RemoveA"
	pos, ok := s.index[k]
	if !ok {
		return assoc.NotFound(op, k)
	}
	return s.removeAt(op, pos)
}

// RemoveB is not supported by Set.
func (s *Set[K, V]) RemoveB(V) error {
	return assoc.NotSupported("Set.RemoveB", useUniqueSet)
}

func (s *Set[K, V]) removeAt(op string, i int) (err error) {
	if i < 0 || i >= s.Count() {
		return assoc.IndexOutOfRange(op, i, s.Count())
	}
	defer s.recoverFault(op, &err)
	k := s.list.AAt(i)
	if pos, ok := s.index[k]; !ok || pos != i {
		return s.repair(op, fmt.Errorf("key %v at position %d not indexed there", k, i))
	}
	delete(s.index, k)
	if err := s.list.RemoveAt(i); err != nil {
		return s.repair(op, err)
	}
	s.reindex(i)
	return nil
}

// Reverse reverses the order of the associations in place.
func (s *Set[K, V]) Reverse() error {
	if err := s.list.Reverse(); err != nil {
		return s.repair("Set.Reverse", err)
	}
	s.reindex(0)
	return nil
}

// Clear removes all associations.
func (s *Set[K, V]) Clear() {
	s.list = pairs.New[K, V]()
	s.index = make(map[K]int)
}

func (s *Set[K, V]) reindex(from int) {
	for i := from; i < s.list.Count(); i++ {
		s.index[s.list.AAt(i)] = i
	}
}

// --- Consistency -----------------------------------------------------------

// CheckIntegrity verifies that the index of first components and the list form
// a bijection.
func (s *Set[K, V]) CheckIntegrity() error {
	const op = "Set.CheckIntegrity"
	if err := s.list.CheckIntegrity(); err != nil {
		return err
	}
	if len(s.index) != s.list.Count() {
		return assoc.Violation(op, "%d index entries for %d associations", len(s.index), s.list.Count())
	}
	for i := 0; i < s.list.Count(); i++ {
		k := s.list.AAt(i)
		if pos, ok := s.index[k]; !ok || pos != i {
			return assoc.Violation(op, "key %v at position %d resolves to %d", k, i, pos)
		}
	}
	return nil
}

func (s *Set[K, V]) recoverFault(op string, err *error) {
	if r := recover(); r != nil {
		if assoc.IsFaultPanic(r) {
			panic(r)
		}
		*err = s.repair(op, assoc.Recovered(r))
	}
}

func (s *Set[K, V]) repair(op string, cause error) error {
	s.rebuild()
	return assoc.Fault(op, cause)
}

// rebuild re-creates the index from the list, or clears the set if the list
// holds a first component twice.
func (s *Set[K, V]) rebuild() {
	tracer().Debugf("Set: rebuilding index for %d associations", s.list.Count())
	if index, ok := buildIndex(s.list.Count(), s.list.AAt); ok {
		s.index = index
		return
	}
	tracer().Errorf("Set: first components not unique, clearing set")
	s.Clear()
}

// buildIndex maps keys to positions for n keys. It fails if a key occurs
// twice or cannot be hashed.
func buildIndex[K comparable](n int, key func(int) K) (index map[K]int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			index, ok = nil, false
		}
	}()
	index = make(map[K]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if _, dup := index[k]; dup {
			return nil, false
		}
		index[k] = i
	}
	return index, true
}
