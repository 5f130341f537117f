/*
Package assoc is a toolbox of keyed, ordered in-memory containers.

The containers combine positional (slice-like) access with one or two O(1)
key lookups over the same backing elements. They guarantee that list order,
lookup tables and positions never diverge, even if an operation fails half-way
through. Package structure is as follows:

■ indexed: Package indexed implements IndexedSet, an ordered sequence of unique
values with O(1) value→position lookup and set algebra.

■ pairs: Package pairs implements List, an ordered list of associations without
uniqueness constraints, backed by two parallel column lists, together with
read-only column views.

■ dual: Package dual implements Set (unique by first component) and UniqueSet
(unique by both components).

■ synced: Package synced wraps containers behind a single lock.

■ params: Package params builds ordered name/value parameter tables on top of
pairs.List, chained in a tree of scopes.

■ drepl: D.REPL is an interactive sandbox command for experiments with the
containers.

The base package contains the Association type and the error taxonomy shared
by all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package assoc
