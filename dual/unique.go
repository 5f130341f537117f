package dual

import (
	"fmt"
	"iter"
	"maps"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/pairs"
)

// UniqueSet is an ordered sequence of associations where both components are
// unique, each within its own column. A first component and a second component
// are linked by exactly one association.
type UniqueSet[A, B comparable] struct {
	list *pairs.List[A, B]
	idxA map[A]int // first component → position
	idxB map[B]int // second component → position
}

// NewUniqueSet creates an empty UniqueSet.
func NewUniqueSet[A, B comparable]() *UniqueSet[A, B] {
	return &UniqueSet[A, B]{
		list: pairs.New[A, B](),
		idxA: make(map[A]int),
		idxB: make(map[B]int),
	}
}

// UniqueFrom creates a UniqueSet from a list of associations, adding them one
// by one. On error the set built so far is returned together with the error.
func UniqueFrom[A, B comparable](xs ...assoc.Association[A, B]) (*UniqueSet[A, B], error) {
	u := NewUniqueSet[A, B]()
	return u, u.AddRange(xs...)
}

// --- Queries ---------------------------------------------------------------

// Count returns the number of associations.
func (u *UniqueSet[A, B]) Count() int {
	return u.list.Count()
}

// IsEmpty is true if the set has no associations.
func (u *UniqueSet[A, B]) IsEmpty() bool {
	return u.list.IsEmpty()
}

// At returns the association at position i. Panics if i is out of range.
func (u *UniqueSet[A, B]) At(i int) assoc.Association[A, B] {
	return u.list.At(i)
}

// IndexOfA returns the position of the association with first component a,
// or -1.
func (u *UniqueSet[A, B]) IndexOfA(a A) int {
	if pos, ok := u.idxA[a]; ok {
		return pos
	}
	return -1
}

// IndexOfB returns the position of the association with second component b,
// or -1.
func (u *UniqueSet[A, B]) IndexOfB(b B) int {
	if pos, ok := u.idxB[b]; ok {
		return pos
	}
	return -1
}

// ContainsA is true if a is used as a first component.
func (u *UniqueSet[A, B]) ContainsA(a A) bool {
	_, ok := u.idxA[a]
	return ok
}

// ContainsB is true if b is used as a second component.
func (u *UniqueSet[A, B]) ContainsB(b B) bool {
	_, ok := u.idxB[b]
	return ok
}

// Contains is true if x is contained in the set.
func (u *UniqueSet[A, B]) Contains(x assoc.Association[A, B]) bool {
	pos, ok := u.idxA[x.A()]
	return ok && u.list.BAt(pos) == x.B()
}

// LookupA returns the second component linked to a. On a miss it returns the
// zero value and false.
func (u *UniqueSet[A, B]) LookupA(a A) (B, bool) {
	if pos, ok := u.idxA[a]; ok {
		return u.list.BAt(pos), true
	}
	var zero B
	return zero, false
}

// LookupB returns the first component linked to b.
func (u *UniqueSet[A, B]) LookupB(b B) (A, bool) {
	if pos, ok := u.idxB[b]; ok {
		return u.list.AAt(pos), true
	}
	var zero A
	return zero, false
}

// Values returns a snapshot of all associations in order.
func (u *UniqueSet[A, B]) Values() []assoc.Association[A, B] {
	return u.list.Values()
}

// All iterates over positions and associations.
func (u *UniqueSet[A, B]) All() iter.Seq2[int, assoc.Association[A, B]] {
	return u.list.All()
}

// ColumnA returns a read-only view of the first components.
func (u *UniqueSet[A, B]) ColumnA() *pairs.ListA[A, B] {
	return pairs.ColumnA[A, B](u)
}

// ColumnB returns a read-only view of the second components.
func (u *UniqueSet[A, B]) ColumnB() *pairs.ListB[A, B] {
	return pairs.ColumnB[A, B](u)
}

// Copy returns an independent copy of u.
func (u *UniqueSet[A, B]) Copy() *UniqueSet[A, B] {
	return &UniqueSet[A, B]{
		list: u.list.Copy(),
		idxA: maps.Clone(u.idxA),
		idxB: maps.Clone(u.idxB),
	}
}

func (u *UniqueSet[A, B]) String() string {
	return u.list.String()
}

// --- Mutations -------------------------------------------------------------

// Add appends an association of a and b. Neither a nor b may be nil or in use.
func (u *UniqueSet[A, B]) Add(a A, b B) error {
	return u.insert("UniqueSet.Add", u.Count(), a, b)
}

// AddAssociation appends x.
func (u *UniqueSet[A, B]) AddAssociation(x assoc.Association[A, B]) error {
	return u.Add(x.A(), x.B())
}

// AddRange adds associations one by one, stopping at the first error.
func (u *UniqueSet[A, B]) AddRange(xs ...assoc.Association[A, B]) error {
	for _, x := range xs {
		if err := u.Add(x.A(), x.B()); err != nil {
			return err
		}
	}
	return nil
}

// Insert puts an association of a and b at position i, shifting the following
// associations. i may be equal to Count(), which appends.
func (u *UniqueSet[A, B]) Insert(i int, a A, b B) error {
	return u.insert("UniqueSet.Insert", i, a, b)
}

// insert claims a in table A, then b in table B. If b is taken, the claim on
// a is undone before the duplicate is reported. The list is changed last.
func (u *UniqueSet[A, B]) insert(op string, i int, a A, b B) (err error) {
	if i < 0 || i > u.Count() {
		return assoc.IndexOutOfRange(op, i, u.Count()+1)
	}
	if assoc.IsNil(a) || assoc.IsNil(b) {
		return assoc.Invalid(op, "nil component in (%v,%v)", a, b)
	}
	defer u.recoverFault(op, &err)
	var undo undoList
	if _, found := u.idxA[a]; found {
		return assoc.Duplicate(op, a)
	}
	undo.apply(func() { u.idxA[a] = i }, func() { delete(u.idxA, a) })
	if _, found := u.idxB[b]; found {
		undo.rollback()
		return assoc.Duplicate(op, b)
	}
	u.idxB[b] = i
	if err := u.list.Insert(i, a, b); err != nil {
		return u.repair(op, err)
	}
	u.reindex(i + 1)
	return nil
}

// Set replaces the association at position i. Each changed component is
// released and re-claimed in its table; if a claim collides with another
// association, all table changes are undone and a duplicate key error is
// returned.
func (u *UniqueSet[A, B]) Set(i int, a A, b B) (err error) {
	const op = "UniqueSet.Set"
	if i < 0 || i >= u.Count() {
		return assoc.IndexOutOfRange(op, i, u.Count())
	}
	if assoc.IsNil(a) || assoc.IsNil(b) {
		return assoc.Invalid(op, "nil component in (%v,%v)", a, b)
	}
	defer u.recoverFault(op, &err)
	oldA, oldB := u.list.AAt(i), u.list.BAt(i)
	if verr := u.verifyAt(i, oldA, oldB); verr != nil {
		return u.repair(op, verr)
	}
	var undo undoList
	if a != oldA {
		if _, found := u.idxA[a]; found {
			return assoc.Duplicate(op, a)
		}
		undo.apply(
			func() { delete(u.idxA, oldA); u.idxA[a] = i },
			func() { delete(u.idxA, a); u.idxA[oldA] = i },
		)
	}
	if b != oldB {
		if _, found := u.idxB[b]; found {
			undo.rollback()
			return assoc.Duplicate(op, b)
		}
		undo.apply(
			func() { delete(u.idxB, oldB); u.idxB[b] = i },
			func() { delete(u.idxB, b); u.idxB[oldB] = i },
		)
	}
	if err := u.list.Set(i, a, b); err != nil {
		return u.repair(op, err)
	}
	return nil
}

// ReplaceB links a to a new second component b.
func (u *UniqueSet[A, B]) ReplaceB(a A, b B) error {
	pos, ok := u.idxA[a]
	if !ok {
		return assoc.NotFound("UniqueSet.ReplaceB", a)
	}
	return u.Set(pos, a, b)
}

// ReplaceA links b to a new first component a.
func (u *UniqueSet[A, B]) ReplaceA(b B, a A) error {
	pos, ok := u.idxB[b]
	if !ok {
		return assoc.NotFound("UniqueSet.ReplaceA", b)
	}
	return u.Set(pos, a, b)
}

// RemoveAt removes the association at position i.
func (u *UniqueSet[A, B]) RemoveAt(i int) error {
	return u.removeAt("UniqueSet.RemoveAt", i)
}

// RemoveA removes the association with first component a.
func (u *UniqueSet[A, B]) RemoveA(a A) error {
	const op = "UniqueSet.RemoveA"
	pos, ok := u.idxA[a]
	if !ok {
		return assoc.NotFound(op, a)
	}
	return u.removeAt(op, pos)
}

// RemoveB removes the association with second component b.
func (u *UniqueSet[A, B]) RemoveB(b B) error {
	const op = "UniqueSet.RemoveB"
	pos, ok := u.idxB[b]
	if !ok {
		return assoc.NotFound(op, b)
	}
	return u.removeAt(op, pos)
}

func (u *UniqueSet[A, B]) removeAt(op string, i int) (err error) {
	if i < 0 || i >= u.Count() {
		return assoc.IndexOutOfRange(op, i, u.Count())
	}
	defer u.recoverFault(op, &err)
	a, b := u.list.AAt(i), u.list.BAt(i)
	if verr := u.verifyAt(i, a, b); verr != nil {
		return u.repair(op, verr)
	}
	delete(u.idxA, a)
	delete(u.idxB, b)
	if err := u.list.RemoveAt(i); err != nil {
		return u.repair(op, err)
	}
	u.reindex(i)
	return nil
}

// Reverse reverses the order of the associations and rebuilds both tables.
func (u *UniqueSet[A, B]) Reverse() error {
	if err := u.list.Reverse(); err != nil {
		return u.repair("UniqueSet.Reverse", err)
	}
	u.rebuild()
	return nil
}

// Clear removes all associations.
func (u *UniqueSet[A, B]) Clear() {
	u.list = pairs.New[A, B]()
	u.idxA = make(map[A]int)
	u.idxB = make(map[B]int)
}

func (u *UniqueSet[A, B]) reindex(from int) {
	for i := from; i < u.list.Count(); i++ {
		u.idxA[u.list.AAt(i)] = i
		u.idxB[u.list.BAt(i)] = i
	}
}

// --- Consistency -----------------------------------------------------------

// CheckIntegrity verifies that both tables form a bijection with the list.
func (u *UniqueSet[A, B]) CheckIntegrity() error {
	const op = "UniqueSet.CheckIntegrity"
	if err := u.list.CheckIntegrity(); err != nil {
		return err
	}
	n := u.list.Count()
	if len(u.idxA) != n || len(u.idxB) != n {
		return assoc.Violation(op, "%d/%d index entries for %d associations", len(u.idxA), len(u.idxB), n)
	}
	for i := 0; i < n; i++ {
		if err := u.verifyAt(i, u.list.AAt(i), u.list.BAt(i)); err != nil {
			return assoc.Violation(op, "%s", err.Error())
		}
	}
	return nil
}

func (u *UniqueSet[A, B]) verifyAt(i int, a A, b B) error {
	if pos, ok := u.idxA[a]; !ok || pos != i {
		return fmt.Errorf("first component %v at position %d resolves to %d", a, i, pos)
	}
	if pos, ok := u.idxB[b]; !ok || pos != i {
		return fmt.Errorf("second component %v at position %d resolves to %d", b, i, pos)
	}
	return nil
}

func (u *UniqueSet[A, B]) recoverFault(op string, err *error) {
	if r := recover(); r != nil {
		if assoc.IsFaultPanic(r) {
			panic(r)
		}
		*err = u.repair(op, assoc.Recovered(r))
	}
}

func (u *UniqueSet[A, B]) repair(op string, cause error) error {
	u.rebuild()
	return assoc.Fault(op, cause)
}

// rebuild re-creates both tables from the list, or clears the set if either
// column of the list holds a value twice.
func (u *UniqueSet[A, B]) rebuild() {
	n := u.list.Count()
	tracer().Debugf("UniqueSet: rebuilding tables for %d associations", n)
	idxA, okA := buildIndex(n, u.list.AAt)
	idxB, okB := buildIndex(n, u.list.BAt)
	if okA && okB {
		u.idxA, u.idxB = idxA, idxB
		return
	}
	tracer().Errorf("UniqueSet: components not unique, clearing set")
	u.Clear()
}
