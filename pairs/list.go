package pairs

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/assoc"
)

// List is an ordered list of associations. Column A and column B are kept in
// two parallel array lists; position i of both lists together form the
// association at position i.
type List[A, B comparable] struct {
	as       *arraylist.List
	bs       *arraylist.List
	readOnly bool
}

// New creates an empty, writable list.
func New[A, B comparable]() *List[A, B] {
	return &List[A, B]{
		as: arraylist.New(),
		bs: arraylist.New(),
	}
}

// From creates a list holding the given associations in order.
func From[A, B comparable](xs ...assoc.Association[A, B]) *List[A, B] {
	l := New[A, B]()
	for _, x := range xs {
		l.push(x.A(), x.B())
	}
	return l
}

// --- Queries ---------------------------------------------------------------

// Count returns the number of associations.
func (l *List[A, B]) Count() int {
	return l.as.Size()
}

// IsEmpty is true for a list without associations.
func (l *List[A, B]) IsEmpty() bool {
	return l.as.Empty()
}

// IsReadOnly is true after MakeReadOnly has been called.
func (l *List[A, B]) IsReadOnly() bool {
	return l.readOnly
}

// At returns the association at position i. At panics if i is out of range.
func (l *List[A, B]) At(i int) assoc.Association[A, B] {
	return assoc.Associate(l.a(i), l.b(i))
}

// AAt returns the first component at position i. Panics if i is out of range.
func (l *List[A, B]) AAt(i int) A {
	return l.a(i)
}

// BAt returns the second component at position i. Panics if i is out of range.
func (l *List[A, B]) BAt(i int) B {
	return l.b(i)
}

// IndexOfA returns the position of the first association with first
// component a, or -1.
func (l *List[A, B]) IndexOfA(a A) int {
	return l.as.IndexOf(a)
}

// IndexOfB returns the position of the first association with second
// component b, or -1.
func (l *List[A, B]) IndexOfB(b B) int {
	return l.bs.IndexOf(b)
}

// IndexOf returns the position of the first association equal to x, or -1.
func (l *List[A, B]) IndexOf(x assoc.Association[A, B]) int {
	for i := 0; i < l.Count(); i++ {
		if l.a(i) == x.A() && l.b(i) == x.B() {
			return i
		}
	}
	return -1
}

// ContainsA is true if some association has first component a.
func (l *List[A, B]) ContainsA(a A) bool {
	return l.IndexOfA(a) >= 0
}

// ContainsB is true if some association has second component b.
func (l *List[A, B]) ContainsB(b B) bool {
	return l.IndexOfB(b) >= 0
}

// Contains is true if x is contained in the list.
func (l *List[A, B]) Contains(x assoc.Association[A, B]) bool {
	return l.IndexOf(x) >= 0
}

// LookupA returns the second component of the first association with first
// component a.
func (l *List[A, B]) LookupA(a A) (B, bool) {
	if i := l.IndexOfA(a); i >= 0 {
		return l.b(i), true
	}
	var zero B
	return zero, false
}

// LookupB returns the first component of the first association with second
// component b.
func (l *List[A, B]) LookupB(b B) (A, bool) {
	if i := l.IndexOfB(b); i >= 0 {
		return l.a(i), true
	}
	var zero A
	return zero, false
}

// Values returns a snapshot of all associations in order.
func (l *List[A, B]) Values() []assoc.Association[A, B] {
	xs := make([]assoc.Association[A, B], l.Count())
	for i := range xs {
		xs[i] = l.At(i)
	}
	return xs
}

// All iterates over positions and associations. The list must not be modified
// during iteration.
func (l *List[A, B]) All() iter.Seq2[int, assoc.Association[A, B]] {
	return func(yield func(int, assoc.Association[A, B]) bool) {
		for i := 0; i < l.Count(); i++ {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// ColumnA returns a read-only view of the first components.
func (l *List[A, B]) ColumnA() *ListA[A, B] {
	return ColumnA[A, B](l)
}

// ColumnB returns a read-only view of the second components.
func (l *List[A, B]) ColumnB() *ListB[A, B] {
	return ColumnB[A, B](l)
}

// Copy returns a writable copy of l, even if l is read-only.
func (l *List[A, B]) Copy() *List[A, B] {
	return From(l.Values()...)
}

func (l *List[A, B]) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i := 0; i < l.Count(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(l.At(i).String())
	}
	b.WriteString("]")
	return b.String()
}

// --- Mutations -------------------------------------------------------------

// MakeReadOnly turns the list read-only. There is no way back.
func (l *List[A, B]) MakeReadOnly() {
	l.readOnly = true
}

// Add appends an association of a and b.
func (l *List[A, B]) Add(a A, b B) error {
	if l.readOnly {
		return assoc.ReadOnlyViolation("List.Add")
	}
	l.push(a, b)
	return nil
}

// AddAssociation appends x.
func (l *List[A, B]) AddAssociation(x assoc.Association[A, B]) error {
	return l.Add(x.A(), x.B())
}

// AddRange appends all associations of xs.
func (l *List[A, B]) AddRange(xs ...assoc.Association[A, B]) error {
	if l.readOnly {
		return assoc.ReadOnlyViolation("List.AddRange")
	}
	for _, x := range xs {
		l.push(x.A(), x.B())
	}
	return nil
}

// Insert puts an association of a and b at position i. i may be equal to
// Count(), which appends.
func (l *List[A, B]) Insert(i int, a A, b B) error {
	const op = "List.Insert"
	if l.readOnly {
		return assoc.ReadOnlyViolation(op)
	}
	if i < 0 || i > l.Count() {
		return assoc.IndexOutOfRange(op, i, l.Count()+1)
	}
	if i == l.Count() {
		l.push(a, b)
		return nil
	}
	l.as.Insert(i, a)
	l.bs.Insert(i, b)
	return nil
}

// Set replaces the association at position i.
func (l *List[A, B]) Set(i int, a A, b B) error {
	const op = "List.Set"
	if l.readOnly {
		return assoc.ReadOnlyViolation(op)
	}
	if i < 0 || i >= l.Count() {
		return assoc.IndexOutOfRange(op, i, l.Count())
	}
	l.as.Set(i, a)
	l.bs.Set(i, b)
	return nil
}

// RemoveAt removes the association at position i.
func (l *List[A, B]) RemoveAt(i int) error {
	const op = "List.RemoveAt"
	if l.readOnly {
		return assoc.ReadOnlyViolation(op)
	}
	if i < 0 || i >= l.Count() {
		return assoc.IndexOutOfRange(op, i, l.Count())
	}
	l.as.Remove(i)
	l.bs.Remove(i)
	return nil
}

// RemoveFirstMatch removes the first association equal to x.
func (l *List[A, B]) RemoveFirstMatch(x assoc.Association[A, B]) error {
	const op = "List.RemoveFirstMatch"
	if l.readOnly {
		return assoc.ReadOnlyViolation(op)
	}
	i := l.IndexOf(x)
	if i < 0 {
		return assoc.NotFound(op, x)
	}
	l.as.Remove(i)
	l.bs.Remove(i)
	return nil
}

// Swap exchanges the associations at positions i and j.
func (l *List[A, B]) Swap(i, j int) error {
	const op = "List.Swap"
	if l.readOnly {
		return assoc.ReadOnlyViolation(op)
	}
	n := l.Count()
	if i < 0 || i >= n {
		return assoc.IndexOutOfRange(op, i, n)
	}
	if j < 0 || j >= n {
		return assoc.IndexOutOfRange(op, j, n)
	}
	l.as.Swap(i, j)
	l.bs.Swap(i, j)
	return nil
}

// Reverse reverses the order of the associations in place.
func (l *List[A, B]) Reverse() error {
	if l.readOnly {
		return assoc.ReadOnlyViolation("List.Reverse")
	}
	for i, j := 0, l.Count()-1; i < j; i, j = i+1, j-1 {
		l.as.Swap(i, j)
		l.bs.Swap(i, j)
	}
	return nil
}

// SortBy sorts the associations using cmp, which has to return a negative
// number for x < y, zero for x = y and a positive number for x > y.
// The sort is not guaranteed to be stable.
func (l *List[A, B]) SortBy(cmp func(x, y assoc.Association[A, B]) int) error {
	if l.readOnly {
		return assoc.ReadOnlyViolation("List.SortBy")
	}
	n := l.Count()
	perm := make([]interface{}, n) // positions, sorted by the associations they denote
	for i := range perm {
		perm[i] = i
	}
	var byPosition utils.Comparator = func(p, q interface{}) int {
		return cmp(l.At(p.(int)), l.At(q.(int)))
	}
	utils.Sort(perm, byPosition)
	as, bs := arraylist.New(), arraylist.New()
	for _, p := range perm {
		v, _ := l.as.Get(p.(int))
		w, _ := l.bs.Get(p.(int))
		as.Add(v)
		bs.Add(w)
	}
	l.as, l.bs = as, bs
	tracer().Debugf("List: sorted %d associations", n)
	return nil
}

// Clear removes all associations.
func (l *List[A, B]) Clear() error {
	if l.readOnly {
		return assoc.ReadOnlyViolation("List.Clear")
	}
	l.as.Clear()
	l.bs.Clear()
	return nil
}

// CheckIntegrity verifies that both columns have the same length.
func (l *List[A, B]) CheckIntegrity() error {
	if l.as.Size() != l.bs.Size() {
		return assoc.Violation("List.CheckIntegrity", "column A has %d entries, column B has %d",
			l.as.Size(), l.bs.Size())
	}
	return nil
}

// ---------------------------------------------------------------------------

func (l *List[A, B]) push(a A, b B) {
	l.as.Add(a)
	l.bs.Add(b)
}

func (l *List[A, B]) a(i int) A {
	v, ok := l.as.Get(i)
	if !ok {
		panic(assoc.IndexOutOfRange("List.At", i, l.Count()))
	}
	a, _ := v.(A) // comma-ok: nil interface values map to the zero value
	return a
}

func (l *List[A, B]) b(i int) B {
	v, ok := l.bs.Get(i)
	if !ok {
		panic(assoc.IndexOutOfRange("List.At", i, l.Count()))
	}
	b, _ := v.(B)
	return b
}

var _ fmt.Stringer = (*List[int, int])(nil)
