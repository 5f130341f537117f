/*
Package indexed implements IndexedSet, an ordered sequence of unique values
with O(1) positional access and O(1) value→position lookup.

An IndexedSet keeps a backing list and a lookup table mapping each value to
its position. Every mutating operation leaves both in sync:

    S := indexed.New[string]()
    S.Add("a")                  // [a]
    S.Add("c")                  // [a c]
    S.Insert(1, "b")            // [a b c]
    S.IndexOf("c")              // 2
    err := S.Add("b")           // errors.Is(err, assoc.ErrDuplicateKey)

Insertions and removals in the middle shift the positions of all following
elements, which costs O(n) in the distance to the end of the list.

Set algebra (Union, Intersect, Subtract, ExclusiveOr) is non-destructive;
each operation allocates a new result set.

Should an operation detect that list and lookup table have diverged, or should
it panic half-way, the set re-creates its lookup table from the backing list
and returns an error of kind assoc.ConsistencyFault. If the list itself
contains duplicates the set is cleared instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package indexed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'assoc'.
func tracer() tracing.Trace {
	return tracing.Select("assoc")
}
