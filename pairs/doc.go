/*
Package pairs implements List, an ordered list of associations without
uniqueness constraints, and read-only projections onto one of its columns.

A List stores its associations in two parallel positional lists, one per
column. All lookups are linear scans with first-match semantics:

    L := pairs.New[string, int]()
    L.Add("x", 1)
    L.Add("y", 2)
    L.Add("x", 3)
    L.IndexOfA("x")             // 0
    L.LookupA("x")              // 1, true
    L.MakeReadOnly()
    err := L.Add("z", 4)        // errors.Is(err, assoc.ErrReadOnly)

Making a list read-only is a one-way transition.

ListA and ListB are views exposing only the first or the second component of
any positional source of associations, including the dual sets of package
dual. Views hold no state of their own and reject all mutations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pairs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'assoc'.
func tracer() tracing.Trace {
	return tracing.Select("assoc")
}
