/*
Package drepl/main provides an interactive command line tool (D.REPL) for
experiments with the dual-keyed containers of module assoc. D.REPL holds a
single container of string associations, either a one-sided dual.Set or a
two-sided dual.UniqueSet, and accepts commands to modify and inspect it:

    drepl> add de Germany
    drepl> add fr France
    drepl> insert 1 at Austria
    drepl> get at
      >>  Austria
    drepl> getb France
      >>  fr
    drepl> tree

Arguments of the form name=value given on the command line become global
parameters and are loaded into the container on start-up. Parameters live in
nested scopes: 'scope NAME' opens a scope, 'def NAME VALUE' defines a
parameter in it, 'pop' closes it. 'load' replaces the associations by the
parameters visible in the current scope:

    drepl> def lang de
    drepl> scope local
    drepl> def lang fr
    drepl> load
    drepl> get lang
      >>  fr

An init file with commands, one per line, may be loaded with flag -init.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'assoc'
func tracer() tracing.Trace {
	return tracing.Select("assoc")
}
