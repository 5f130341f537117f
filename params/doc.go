/*
Package params implements ordered parameter tables and scopes of parameters.

A parameter table holds name/value pairs in the order they have been defined.
Names may repeat; lookups return the first match. Tables are typically filled
from command-line style arguments and frozen afterwards:

    P, err := params.ParseArgs([]string{"mode=unique", "trace=Debug", "v"})
    P.Get("trace")              // "Debug", true
    P.Get("v")                  // "true", true
    P.Freeze()
    err = P.Add("x", "y")       // errors.Is(err, assoc.ErrReadOnly)

Scopes give a parameter table a name and nest it in an enclosing scope. Lookup
searches a scope first, then the scopes enclosing it. Visible collects what a
scope can see into a dual.Set, inner definitions shadowing outer ones:

    st := params.NewStack()             // holds the "globals" scope
    st.Globals().Define("trace", "Info")
    sc, _ := st.Push("local")
    sc.Define("trace", "Debug")
    sc.Visible()                        // [(trace,Debug)]
    st.Pop()                            // back to globals

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package params

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'assoc'.
func tracer() tracing.Trace {
	return tracing.Select("assoc")
}
