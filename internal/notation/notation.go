// Package notation implements user-defined notations: the record installed
// by a `notation` command, and the pure functions that
// derive a grammar rule, trie keywords, and a constant's curried type from
// it. Notation values are built by internal/core's `notation` command
// handler; a YAML bootstrap prelude reaches them through that same command
// path.
package notation

import (
	"github.com/minihol/minihol/internal/kernel"
	"github.com/minihol/minihol/internal/syntax"
)

// Descr is one element of a notation's surface pattern: either a literal
// keyword atom, or a term slot with its expected type and the precedence at
// which the term nonterminal is recursed into for that slot.
type Descr struct {
	Atom bool
	Lit  string

	Ty   kernel.Ty
	Prec int
}

// AtomDescr builds a literal-keyword descriptor.
func AtomDescr(lit string) Descr { return Descr{Atom: true, Lit: lit} }

// TermDescr builds a term-slot descriptor.
func TermDescr(ty kernel.Ty, prec int) Descr { return Descr{Ty: ty, Prec: prec} }

// Notation is the installed record for one `notation` command: the constant
// name it declares, the surface pattern that elaborates to it, the rule
// precedence it parses at, and the result type of the declared constant
// once every term slot is applied.
type Notation struct {
	Name   string
	Prec   int
	BaseTy kernel.Ty
	Descrs []Descr
}

// New builds a Notation from its parsed descriptors.
func New(name string, prec int, baseTy kernel.Ty, descrs []Descr) Notation {
	return Notation{Name: name, Prec: prec, BaseTy: baseTy, Descrs: descrs}
}

// ParserRule derives the grammar rule a notation installs into the `term`
// nonterminal: each atom becomes symbol(lit), each term slot becomes
// recurse(term, slotPrec).
func (n Notation) ParserRule() syntax.Rule {
	descr := make([]syntax.ParserDescr, len(n.Descrs))
	for i, d := range n.Descrs {
		if d.Atom {
			descr[i] = syntax.Symbol(d.Lit)
		} else {
			descr[i] = syntax.Recurse("term", d.Prec)
		}
	}
	return syntax.Rule{Prec: n.Prec, Descr: descr}
}

// Keywords returns the literal atoms a notation introduces as new separator
// keywords in the lexer's trie.
func (n Notation) Keywords() []string {
	var kws []string
	for _, d := range n.Descrs {
		if d.Atom {
			kws = append(kws, d.Lit)
		}
	}
	return kws
}

// ConstType returns the curried arrow type of the constant a notation
// declares: its term slots in source order, ending in BaseTy.
func (n Notation) ConstType() kernel.Ty {
	var slots []kernel.Ty
	for _, d := range n.Descrs {
		if !d.Atom {
			slots = append(slots, d.Ty)
		}
	}
	ty := n.BaseTy
	for i := len(slots) - 1; i >= 0; i-- {
		ty = kernel.Arrow{Left: slots[i], Right: ty}
	}
	return ty
}

// Match reports whether stx (a Syntax node parsed against the `term`
// nonterminal) was produced by n's rule: same arity, atoms equal in
// position. On success it returns the child Syntax values in the slots
// corresponding to each term descriptor, in source order, ready for the
// caller to elaborate.
func (n Notation) Match(stx syntax.Syntax) ([]syntax.Syntax, bool) {
	if stx.Kind != syntax.KindNode || len(stx.Args) != len(n.Descrs) {
		return nil, false
	}
	var slots []syntax.Syntax
	for i, d := range n.Descrs {
		child := stx.Args[i]
		if d.Atom {
			if child.Kind != syntax.KindAtom || child.Text != d.Lit {
				return nil, false
			}
			continue
		}
		slots = append(slots, child)
	}
	return slots, true
}
