package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/dual"
)

// Scope is a named block of parameter definitions. Scopes nest: a scope sees
// the definitions of all scopes enclosing it, unless it defines the same name
// itself.
type Scope struct {
	name  string
	outer *Scope
	defs  *Table
	depth int // 0 for an outermost scope
}

// NewScope creates an empty scope nested in outer, which may be nil.
func NewScope(name string, outer *Scope) *Scope {
	sc := &Scope{name: name, outer: outer, defs: NewTable()}
	if outer != nil {
		sc.depth = outer.depth + 1
	}
	return sc
}

// Name returns the name the scope has been created with.
func (sc *Scope) Name() string {
	return sc.name
}

// Outer returns the enclosing scope, or nil for an outermost scope.
func (sc *Scope) Outer() *Scope {
	return sc.outer
}

// Params returns the definitions made in this scope only.
func (sc *Scope) Params() *Table {
	return sc.defs
}

func (sc *Scope) String() string {
	return fmt.Sprintf("<scope %s>", sc.name)
}

// Define binds name to value in sc. A previous binding in sc is replaced,
// bindings in enclosing scopes are shadowed.
func (sc *Scope) Define(name, value string) error {
	return sc.defs.Set(name, value)
}

// Lookup searches name from sc outwards and reports the scope holding the
// binding. where is nil if name is not bound.
func (sc *Scope) Lookup(name string) (value string, where *Scope) {
	for where = sc; where != nil; where = where.outer {
		if v, ok := where.defs.Get(name); ok {
			return v, where
		}
	}
	return "", nil
}

// Visible collects the bindings visible in sc, one per name. Bindings of sc
// come first, then those of the enclosing scopes, innermost first. A shadowed
// binding is left out.
func (sc *Scope) Visible() (*dual.Set[string, string], error) {
	visible := dual.New[string, string]()
	for s := sc; s != nil; s = s.outer {
		for _, x := range s.defs.list.All() {
			err := visible.Add(x.A(), x.B())
			if err != nil && !errors.Is(err, assoc.ErrDuplicateKey) {
				return visible, err
			}
		}
	}
	return visible, nil
}

// --- Scope stack -----------------------------------------------------------

// Stack is a stack of nested scopes. Its bottom is a scope for global
// parameters, which cannot be popped. Each pushed scope is nested in the
// scope below it.
type Stack struct {
	top    *Scope
	bottom *Scope
}

// NewStack creates a stack holding a single scope named "globals".
func NewStack() *Stack {
	g := NewScope("globals", nil)
	return &Stack{top: g, bottom: g}
}

// Top returns the innermost scope.
func (st *Stack) Top() *Scope {
	return st.top
}

// Globals returns the outermost scope.
func (st *Stack) Globals() *Scope {
	return st.bottom
}

// Depth is the number of scopes on the stack, counting the globals.
func (st *Stack) Depth() int {
	return st.top.depth + 1
}

// Push opens a new scope inside the current top scope.
func (st *Stack) Push(name string) (*Scope, error) {
	if strings.TrimSpace(name) == "" {
		return nil, assoc.Invalid("Stack.Push", "empty scope name")
	}
	st.top = NewScope(name, st.top)
	tracer().P("scope", name).Debugf("open, depth %d", st.Depth())
	return st.top, nil
}

// Pop closes the top scope and returns it. The global scope stays.
func (st *Stack) Pop() (*Scope, error) {
	if st.top == st.bottom {
		return nil, assoc.Invalid("Stack.Pop", "cannot close scope %s", st.bottom.name)
	}
	sc := st.top
	st.top = sc.outer
	tracer().P("scope", sc.name).Debugf("closed, depth %d", st.Depth())
	return sc, nil
}

// Path lists the scope names from the globals to the top, separated by '/'.
func (st *Stack) Path() string {
	names := make([]string, st.Depth())
	for sc := st.top; sc != nil; sc = sc.outer {
		names[sc.depth] = sc.name
	}
	return strings.Join(names, "/")
}
