/*
Package dual implements ordered containers of associations indexed by one or
both of their components.

Set is unique by the first component and offers O(1) lookup by it. Looking up
or removing by the second component is not supported by Set and reported as
an error of kind assoc.Unsupported; use UniqueSet for this.

UniqueSet is unique by both components, independently, and offers O(1) lookup
in both directions:

    U := dual.NewUniqueSet[int, string]()
    U.Add(1, "a")
    U.Add(2, "b")
    err := U.Add(3, "b")        // duplicate key "b", U is unchanged
    U.LookupB("a")              // 1, true
    U.IndexOfA(2)               // 1

Both containers keep their associations in a pairs.List and map keys to
positions. Mutations validate every table change before touching the list;
speculative changes to the lookup tables are undone in reverse order if a later
step fails, so a duplicate key leaves the container exactly as before.

If an operation detects that tables and list have diverged (or panics
half-way), the container rebuilds its tables from the list and returns an
error of kind assoc.ConsistencyFault. Should the list itself violate the
uniqueness constraints, the container is cleared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dual

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'assoc'.
func tracer() tracing.Trace {
	return tracing.Select("assoc")
}

// undoList collects compensating actions for speculative mutations of lookup
// tables.
type undoList []func()

// apply performs a mutation and records how to revert it.
func (u *undoList) apply(do, undo func()) {
	do()
	*u = append(*u, undo)
}

// rollback reverts all recorded mutations, latest first.
func (u undoList) rollback() {
	for i := len(u) - 1; i >= 0; i-- {
		u[i]()
	}
}
