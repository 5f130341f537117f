package params

import (
	"errors"
	"strings"

	"github.com/npillmayer/assoc"
	"github.com/npillmayer/assoc/indexed"
	"github.com/npillmayer/assoc/pairs"
)

// Table is an ordered table of named parameters. A name may occur more than
// once; lookups by name return the first occurrence.
type Table struct {
	list *pairs.List[string, string]
}

// NewTable creates an empty parameter table.
func NewTable() *Table {
	return &Table{list: pairs.New[string, string]()}
}

// ParseArgs creates a table from arguments of the form "name=value". An
// argument without '=' defines a parameter with value "true". Names must not
// be empty. Surrounding white space of names is ignored.
func ParseArgs(args []string) (*Table, error) {
	t := NewTable()
	for _, arg := range args {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			value = "true"
		}
		if err := t.Add(strings.TrimSpace(name), value); err != nil {
			return t, err
		}
	}
	return t, nil
}

// Len returns the number of parameters, counting repeated names.
func (t *Table) Len() int {
	return t.list.Count()
}

// Add appends a parameter. The name must not be empty.
func (t *Table) Add(name, value string) error {
	if name == "" {
		return assoc.Invalid("Table.Add", "empty parameter name")
	}
	return t.list.Add(name, value)
}

// Set replaces the value of the first parameter with the given name, or
// appends a new parameter if there is none.
func (t *Table) Set(name, value string) error {
	if name == "" {
		return assoc.Invalid("Table.Set", "empty parameter name")
	}
	if i := t.list.IndexOfA(name); i >= 0 {
		return t.list.Set(i, name, value)
	}
	return t.list.Add(name, value)
}

// Get returns the value of the first parameter with the given name.
func (t *Table) Get(name string) (string, bool) {
	return t.list.LookupA(name)
}

// GetAll returns the values of all parameters with the given name, in order.
func (t *Table) GetAll(name string) []string {
	var values []string
	for _, x := range t.list.All() {
		if x.A() == name {
			values = append(values, x.B())
		}
	}
	return values
}

// Has is true if a parameter with the given name exists.
func (t *Table) Has(name string) bool {
	return t.list.ContainsA(name)
}

// Names returns the distinct parameter names in order of their first
// occurrence.
func (t *Table) Names() (*indexed.IndexedSet[string], error) {
	names := indexed.New[string](indexed.WithCapacity(t.list.Count()))
	for _, name := range t.list.ColumnA().All() {
		if err := names.Add(name); err != nil && !errors.Is(err, assoc.ErrDuplicateKey) {
			return names, err
		}
	}
	return names, nil
}

// Values returns a read-only view of the parameter values.
func (t *Table) Values() *pairs.ListB[string, string] {
	return t.list.ColumnB()
}

// Remove removes the first parameter with the given name.
func (t *Table) Remove(name string) error {
	i := t.list.IndexOfA(name)
	if i < 0 {
		return assoc.NotFound("Table.Remove", name)
	}
	return t.list.RemoveAt(i)
}

// Each calls f for every parameter, in order.
func (t *Table) Each(f func(name, value string)) {
	for _, x := range t.list.All() {
		f(x.A(), x.B())
	}
}

// Freeze makes the table read-only. There is no way back.
func (t *Table) Freeze() {
	t.list.MakeReadOnly()
}

// IsFrozen is true after Freeze has been called.
func (t *Table) IsFrozen() bool {
	return t.list.IsReadOnly()
}

func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("[")
	t.Each(func(name, value string) {
		if b.Len() > 1 {
			b.WriteString(" ")
		}
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(value)
	})
	b.WriteString("]")
	return b.String()
}
