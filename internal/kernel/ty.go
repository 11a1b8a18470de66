// Package kernel implements the trusted logical core: simple types, terms
// with separate bound/free/meta indices, metavariable contexts,
// propositions ("rules"), and proof checking. Every operation here is
// purely functional: a Ty, Term, Rule, Proof, or MCtx value is never
// mutated after construction.
package kernel

import "fmt"

// Ty is a simple type: either a base type or an arrow type.
type Ty interface {
	String() string
	isTy()
}

// Base is an uninterpreted base type named by an identifier, e.g. a type
// declared by a `notation ... : ty := name` command.
type Base struct {
	Name string
}

func (Base) isTy() {}
func (b Base) String() string {
	return b.Name
}

// Arrow is a function type Left -> Right.
type Arrow struct {
	Left, Right Ty
}

func (Arrow) isTy() {}
func (a Arrow) String() string {
	left := a.Left.String()
	if _, ok := a.Left.(Arrow); ok {
		left = "(" + left + ")"
	}
	return left + " -> " + a.Right.String()
}

// EqTy reports whether two types are structurally equal.
func EqTy(a, b Ty) bool {
	switch a := a.(type) {
	case Base:
		bb, ok := b.(Base)
		return ok && a.Name == bb.Name
	case Arrow:
		bb, ok := b.(Arrow)
		return ok && EqTy(a.Left, bb.Left) && EqTy(a.Right, bb.Right)
	default:
		panic(fmt.Sprintf("kernel: unknown Ty implementation %T", a))
	}
}
