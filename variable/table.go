// Package variable implements the variable table of the formula engine:
// interning of named variables, allocation of auxiliary variables, and
// dense id assignment starting at 1 so ids can be emitted as DIMACS
// literals directly (spec §4.1).
package variable

import "fmt"

// Kind distinguishes a Named variable (interned by string) from an
// Auxiliary one (interned by nothing — every NewAux call is fresh).
type Kind int

const (
	Named Kind = iota
	Auxiliary
)

// Variable is one entry of the table. ID is strictly positive and dense
// within its table. Disc is the auxiliary discriminator; zero for Named.
type Variable struct {
	ID   int
	Kind Kind
	Name string
	Disc int
}

// Table interns variable identities and hands out dense positive ids.
// A Table is owned by exactly one arena for its lifetime (spec §5); it is
// not safe for concurrent use.
type Table struct {
	vars    []Variable // index 0 unused; ids are 1-based
	byName  map[string]int
	nextAux int
}

// New returns an empty variable table.
func New() *Table {
	return &Table{
		vars:   make([]Variable, 1),
		byName: make(map[string]int),
	}
}

// InternNamed returns the id for name, creating one if this is the first
// time name is seen. Idempotent and side-effect-free on re-intern.
func (t *Table) InternNamed(name string) int {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := len(t.vars)
	t.vars = append(t.vars, Variable{ID: id, Kind: Named, Name: name})
	t.byName[name] = id
	return id
}

// NewAux always allocates a fresh auxiliary variable; discriminators are
// monotonically increasing starting at 1.
func (t *Table) NewAux() int {
	t.nextAux++
	id := len(t.vars)
	t.vars = append(t.vars, Variable{ID: id, Kind: Auxiliary, Disc: t.nextAux})
	return id
}

// LookupNamed returns the id for name without creating it.
func (t *Table) LookupNamed(name string) (int, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Get returns the variable for id.
func (t *Table) Get(id int) (Variable, bool) {
	if id <= 0 || id >= len(t.vars) {
		return Variable{}, false
	}
	return t.vars[id], true
}

// Valid reports whether id resolves to a live variable.
func (t *Table) Valid(id int) bool {
	_, ok := t.Get(id)
	return ok
}

// Display formats a variable for output: its name if Named, or
// auxPrefix+discriminator if Auxiliary.
func (t *Table) Display(id int, auxPrefix string) string {
	v, ok := t.Get(id)
	if !ok {
		return fmt.Sprintf("?%d", id)
	}
	if v.Kind == Named {
		return v.Name
	}
	return fmt.Sprintf("%s%d", auxPrefix, v.Disc)
}

// Len returns the number of live variables (max id).
func (t *Table) Len() int { return len(t.vars) - 1 }

// Named returns all Named variables in id order.
func (t *Table) Named() []Variable {
	out := make([]Variable, 0, len(t.vars))
	for _, v := range t.vars[1:] {
		if v.Kind == Named {
			out = append(out, v)
		}
	}
	return out
}
