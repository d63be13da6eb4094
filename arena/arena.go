// Package arena implements the hash-consed expression DAG (spec §4.2): a
// store of Var/Not/And/Or nodes addressed by dense positive expression
// ids, where structurally equal nodes always share one id.
package arena

import (
	"strconv"
	"strings"

	"github.com/boolforge/cnfkit/core"
	"github.com/boolforge/cnfkit/variable"
)

// Kind is the tag of an Expr's sum type.
type Kind int

const (
	KindVar Kind = iota
	KindNot
	KindAnd
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	default:
		return "?"
	}
}

// Expr is one node of the arena. Var is meaningful only for KindVar, Child
// only for KindNot, Children only for KindAnd/KindOr. An empty Children on
// KindAnd is the canonical constant true; on KindOr, the canonical
// constant false.
type Expr struct {
	Kind     Kind
	Var      int
	Child    int
	Children []int
}

// Arena is the hash-consed expression store. It is owned by a single
// thread of control for its lifetime (spec §5); it is not safe for
// concurrent use. Ids are never reused.
type Arena struct {
	vars     *variable.Table
	exprs    []Expr // index 0 is an unused sentinel; ids are 1-based
	index    map[string]int
	auxCache map[int]int // eid -> auxiliary variable literal, see AuxCache
}

// New creates an empty arena bound to vars.
func New(vars *variable.Table) *Arena {
	return &Arena{
		vars:  vars,
		exprs: make([]Expr, 1),
		index: make(map[string]int),
	}
}

// AuxCache returns the arena's auxiliary-variable cache: a map from a
// compound subexpression's eid to the auxiliary variable literal already
// minted to define it. Rewrite passes that introduce Tseitin-style
// auxiliaries (spec §9 open question (a): auxiliaries are shared across
// formulas in the same arena) share one such cache so that two
// independent top-level calls reaching the same subexpression reuse its
// auxiliary rather than each minting a fresh one. Scoped to the arena
// itself rather than a package-level global, since no state outside an
// arena survives past it (spec §9 Design Notes).
func (a *Arena) AuxCache() map[int]int {
	if a.auxCache == nil {
		a.auxCache = make(map[int]int)
	}
	return a.auxCache
}

// Vars returns the variable table this arena is bound to.
func (a *Arena) Vars() *variable.Table { return a.vars }

// Len returns the number of live expressions (max eid).
func (a *Arena) Len() int { return len(a.exprs) - 1 }

// True returns the canonical id of the constant true (empty And).
func (a *Arena) True() int { return a.nary(KindAnd, nil) }

// False returns the canonical id of the constant false (empty Or).
func (a *Arena) False() int { return a.nary(KindOr, nil) }

// Var returns the (canonical, hash-consed) id of the literal Var(vid).
func (a *Arena) Var(vid int) int {
	if !a.vars.Valid(vid) {
		panic(core.NewReferentialError("arena", "Var", "unknown vid "+strconv.Itoa(vid)))
	}
	return a.intern(Expr{Kind: KindVar, Var: vid})
}

// Not returns the id of the negation of eid, collapsing Not(Not x) to x.
func (a *Arena) Not(eid int) int {
	e := a.Get(eid)
	if e.Kind == KindNot {
		return e.Child
	}
	return a.intern(Expr{Kind: KindNot, Child: eid})
}

// And returns the id of the (flattened, canonicalized) conjunction of
// children: And() is true, And(x) is x, nested And children are spliced
// into the parent.
func (a *Arena) And(children ...int) int { return a.nary(KindAnd, children) }

// Or returns the id of the (flattened, canonicalized) disjunction of
// children: Or() is false, Or(x) is x, nested Or children are spliced
// into the parent.
func (a *Arena) Or(children ...int) int { return a.nary(KindOr, children) }

// Get returns the value stored at eid. A dangling eid is an implementation
// bug (spec §4.2, §7 ReferentialError), so Get panics rather than
// returning an error.
func (a *Arena) Get(eid int) Expr {
	if eid <= 0 || eid >= len(a.exprs) {
		panic(core.NewReferentialError("arena", "Get", "invalid eid "+strconv.Itoa(eid)))
	}
	return a.exprs[eid]
}

// Children returns the child eids of eid: none for Var, one for Not, the
// full slice for And/Or.
func (a *Arena) Children(eid int) []int {
	e := a.Get(eid)
	switch e.Kind {
	case KindNot:
		return []int{e.Child}
	case KindAnd, KindOr:
		return e.Children
	default:
		return nil
	}
}

// Set overwrites the value at an existing eid in place, for rewrites that
// prefer identity preservation over rebuilding parents (spec §4.2 "Set +
// revalidate"). The caller must invoke Revalidate(eid) afterward. Set
// fails if value references a nonexistent eid or vid.
func (a *Arena) Set(eid int, value Expr) error {
	if eid <= 0 || eid >= len(a.exprs) {
		return core.NewReferentialError("arena", "Set", "invalid eid "+strconv.Itoa(eid))
	}
	switch value.Kind {
	case KindVar:
		if !a.vars.Valid(value.Var) {
			return core.NewReferentialError("arena", "Set", "unknown vid "+strconv.Itoa(value.Var))
		}
	case KindNot:
		if value.Child <= 0 || value.Child >= len(a.exprs) {
			return core.NewReferentialError("arena", "Set", "invalid child eid "+strconv.Itoa(value.Child))
		}
	case KindAnd, KindOr:
		for _, c := range value.Children {
			if c <= 0 || c >= len(a.exprs) {
				return core.NewReferentialError("arena", "Set", "invalid child eid "+strconv.Itoa(c))
			}
		}
	}
	a.exprs[eid] = value
	return nil
}

// Revalidate rehashes eid's current value and, if a structurally equal
// node already exists under a different eid, leaves the hash index
// pointing at that earlier canonical id — so future calls to And/Or/Not/
// Var return the canonical eid rather than constructing a duplicate.
func (a *Arena) Revalidate(eid int) {
	key := hashKey(a.exprs[eid])
	if _, ok := a.index[key]; ok {
		return
	}
	a.index[key] = eid
}

// Negate returns, for each input eid, the canonical eid of its syntactic
// negation: Var -> Not Var; Not x -> x; And -> Or(negated children);
// Or -> And(negated children). Used by the NNF rewrite and by
// rewrite.TseitinRoot.
func (a *Arena) Negate(eids []int) []int {
	memo := make(map[int]int, len(eids))
	out := make([]int, len(eids))
	for i, e := range eids {
		out[i] = a.negateOne(e, memo)
	}
	return out
}

func (a *Arena) negateOne(eid int, memo map[int]int) int {
	if v, ok := memo[eid]; ok {
		return v
	}
	e := a.Get(eid)
	var result int
	switch e.Kind {
	case KindVar:
		result = a.Not(eid)
	case KindNot:
		result = e.Child
	case KindAnd:
		neg := make([]int, len(e.Children))
		for i, c := range e.Children {
			neg[i] = a.negateOne(c, memo)
		}
		result = a.Or(neg...)
	case KindOr:
		neg := make([]int, len(e.Children))
		for i, c := range e.Children {
			neg[i] = a.negateOne(c, memo)
		}
		result = a.And(neg...)
	}
	memo[eid] = result
	return result
}

// nary builds a flattened, canonicalized And/Or node.
func (a *Arena) nary(kind Kind, children []int) int {
	flat := a.flatten(kind, children)
	switch len(flat) {
	case 0:
		return a.intern(Expr{Kind: kind, Children: []int{}})
	case 1:
		return flat[0]
	default:
		return a.intern(Expr{Kind: kind, Children: flat})
	}
}

// flatten splices same-kind children into their parent (associativity),
// so And(a, And(b,c), d) becomes And(a,b,c,d) on construction.
func (a *Arena) flatten(kind Kind, children []int) []int {
	out := make([]int, 0, len(children))
	for _, c := range children {
		e := a.Get(c)
		if e.Kind == kind {
			out = append(out, e.Children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func (a *Arena) intern(v Expr) int {
	key := hashKey(v)
	if id, ok := a.index[key]; ok {
		return id
	}
	a.exprs = append(a.exprs, v)
	id := len(a.exprs) - 1
	a.index[key] = id
	return id
}

func hashKey(v Expr) string {
	var b strings.Builder
	switch v.Kind {
	case KindVar:
		b.WriteByte('V')
		b.WriteString(strconv.Itoa(v.Var))
	case KindNot:
		b.WriteByte('N')
		b.WriteString(strconv.Itoa(v.Child))
	case KindAnd:
		b.WriteByte('A')
		for _, c := range v.Children {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c))
		}
	case KindOr:
		b.WriteByte('O')
		for _, c := range v.Children {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c))
		}
	}
	return b.String()
}

// IsLiteral reports whether eid is a Var or a Not directly wrapping a Var.
func (a *Arena) IsLiteral(eid int) bool {
	e := a.Get(eid)
	if e.Kind == KindVar {
		return true
	}
	if e.Kind == KindNot {
		return a.Get(e.Child).Kind == KindVar
	}
	return false
}
