package synced

import (
	"iter"
	"slices"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/dual"
)

// UniqueSet is a dual.UniqueSet safe for concurrent use.
type UniqueSet[A, B comparable] struct {
	*Guard[*dual.UniqueSet[A, B]]
}

// NewUniqueSet creates an empty synchronized UniqueSet.
func NewUniqueSet[A, B comparable]() *UniqueSet[A, B] {
	return WrapUniqueSet(dual.NewUniqueSet[A, B]())
}

// WrapUniqueSet puts u under the control of a guard.
func WrapUniqueSet[A, B comparable](u *dual.UniqueSet[A, B]) *UniqueSet[A, B] {
	return &UniqueSet[A, B]{NewGuard(u)}
}

// Count returns the number of elements.
func (u *UniqueSet[A, B]) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Count()
}

// IsEmpty is true if the container has no elements.
func (u *UniqueSet[A, B]) IsEmpty() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.IsEmpty()
}

// At returns the association at position i. Panics if i is out of range.
func (u *UniqueSet[A, B]) At(i int) assoc.Association[A, B] {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.At(i)
}

// IndexOfA returns the position of the association with first component a, or -1.
func (u *UniqueSet[A, B]) IndexOfA(a A) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.IndexOfA(a)
}

// IndexOfB returns the position of the association with second component b, or -1.
func (u *UniqueSet[A, B]) IndexOfB(b B) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.IndexOfB(b)
}

// ContainsA is true if a is used as a first component.
func (u *UniqueSet[A, B]) ContainsA(a A) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.ContainsA(a)
}

// ContainsB is true if b is used as a second component.
func (u *UniqueSet[A, B]) ContainsB(b B) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.ContainsB(b)
}

// LookupA returns the second component linked to a.
func (u *UniqueSet[A, B]) LookupA(a A) (B, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.LookupA(a)
}

// LookupB returns the first component linked to b.
func (u *UniqueSet[A, B]) LookupB(b B) (A, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.LookupB(b)
}

// Values returns a copy of the associations in order.
func (u *UniqueSet[A, B]) Values() []assoc.Association[A, B] {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Values()
}

// All iterates over a snapshot of the set, taken when All is called.
func (u *UniqueSet[A, B]) All() iter.Seq2[int, assoc.Association[A, B]] {
	return slices.All(u.Values())
}

// Snapshot returns an unsynchronized copy of the set.
func (u *UniqueSet[A, B]) Snapshot() *dual.UniqueSet[A, B] {
	return With(u.Guard, (*dual.UniqueSet[A, B]).Copy)
}

// Add appends an association of a and b. See dual.UniqueSet.Add for the errors returned.
func (u *UniqueSet[A, B]) Add(a A, b B) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Add(a, b)
}

// Insert puts an association of a and b at position i.
func (u *UniqueSet[A, B]) Insert(i int, a A, b B) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Insert(i, a, b)
}

// Set replaces the element at position i.
func (u *UniqueSet[A, B]) Set(i int, a A, b B) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Set(i, a, b)
}

// ReplaceB links a to a new second component b.
func (u *UniqueSet[A, B]) ReplaceB(a A, b B) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.ReplaceB(a, b)
}

// ReplaceA links b to a new first component a.
func (u *UniqueSet[A, B]) ReplaceA(b B, a A) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.ReplaceA(b, a)
}

// RemoveAt removes the element at position i.
func (u *UniqueSet[A, B]) RemoveAt(i int) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.RemoveAt(i)
}

// RemoveA removes the association with first component a.
func (u *UniqueSet[A, B]) RemoveA(a A) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.RemoveA(a)
}

// RemoveB removes the association with second component b.
func (u *UniqueSet[A, B]) RemoveB(b B) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.RemoveB(b)
}

// Reverse reverses the order of the elements.
func (u *UniqueSet[A, B]) Reverse() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.Reverse()
}

// Clear removes all elements.
func (u *UniqueSet[A, B]) Clear() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.c.Clear()
}

// CheckIntegrity verifies the invariants of the wrapped container.
func (u *UniqueSet[A, B]) CheckIntegrity() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.CheckIntegrity()
}

// String formats the wrapped container.
func (u *UniqueSet[A, B]) String() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.c.String()
}
