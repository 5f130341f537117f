package indexed

// --- Set algebra -----------------------------------------------------------
//
// All operations are non-destructive and return a new set. A nil operand is
// treated as the empty set. Where the operation is symmetric, the larger
// operand provides the base of the result and the smaller one is iterated,
// so the cost is bounded by membership tests for the smaller set.

// Union returns a set with all values of x and y.
//
// The result starts with the values of the larger operand in their order,
// followed by the values of the smaller operand which are not already present.
func Union[T comparable](x, y *IndexedSet[T]) *IndexedSet[T] {
	large, small := bySize(x, y)
	u := large.Copy()
	for _, item := range small.items {
		if !u.Contains(item) {
			u.push(item)
		}
	}
	return u
}

// Intersect returns a set with the values contained in both x and y, in the
// order of the smaller operand.
func Intersect[T comparable](x, y *IndexedSet[T]) *IndexedSet[T] {
	large, small := bySize(x, y)
	r := New[T](WithCapacity(small.Count()))
	for _, item := range small.items {
		if large.Contains(item) {
			r.push(item)
		}
	}
	return r
}

// Subtract returns a set with the values of x which are not contained in y,
// in the order of x.
func Subtract[T comparable](x, y *IndexedSet[T]) *IndexedSet[T] {
	x, y = orEmpty(x), orEmpty(y)
	r := New[T]()
	for _, item := range x.items {
		if !y.Contains(item) {
			r.push(item)
		}
	}
	return r
}

// ExclusiveOr returns a set with the values contained in exactly one of x and
// y: first those of x (in order of x), then those of y (in order of y).
func ExclusiveOr[T comparable](x, y *IndexedSet[T]) *IndexedSet[T] {
	x, y = orEmpty(x), orEmpty(y)
	r := Subtract(x, y)
	for _, item := range y.items {
		if !x.Contains(item) {
			r.push(item)
		}
	}
	return r
}

// Union is the method form of the package function Union.
func (s *IndexedSet[T]) Union(other *IndexedSet[T]) *IndexedSet[T] {
	return Union(s, other)
}

// Intersect is the method form of the package function Intersect.
func (s *IndexedSet[T]) Intersect(other *IndexedSet[T]) *IndexedSet[T] {
	return Intersect(s, other)
}

// Subtract is the method form of the package function Subtract.
func (s *IndexedSet[T]) Subtract(other *IndexedSet[T]) *IndexedSet[T] {
	return Subtract(s, other)
}

// ExclusiveOr is the method form of the package function ExclusiveOr.
func (s *IndexedSet[T]) ExclusiveOr(other *IndexedSet[T]) *IndexedSet[T] {
	return ExclusiveOr(s, other)
}

// --- Comparison ------------------------------------------------------------

// Equals is true if s and other contain the same values, regardless of order.
// As duplicates are not allowed, equal counts plus containment suffice.
func (s *IndexedSet[T]) Equals(other *IndexedSet[T]) bool {
	s, other = orEmpty(s), orEmpty(other)
	if s.Count() != other.Count() {
		return false
	}
	return s.IsSubsetOf(other)
}

// IsSubsetOf is true if every value of s is contained in other.
func (s *IndexedSet[T]) IsSubsetOf(other *IndexedSet[T]) bool {
	s, other = orEmpty(s), orEmpty(other)
	if s.Count() > other.Count() {
		return false
	}
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IsSupersetOf is true if every value of other is contained in s.
func (s *IndexedSet[T]) IsSupersetOf(other *IndexedSet[T]) bool {
	return orEmpty(other).IsSubsetOf(s)
}

// ---------------------------------------------------------------------------

func orEmpty[T comparable](s *IndexedSet[T]) *IndexedSet[T] {
	if s == nil {
		return New[T]()
	}
	return s
}

// bySize returns the larger operand first. On equal size x counts as larger.
func bySize[T comparable](x, y *IndexedSet[T]) (*IndexedSet[T], *IndexedSet[T]) {
	x, y = orEmpty(x), orEmpty(y)
	if y.Count() > x.Count() {
		return y, x
	}
	return x, y
}
