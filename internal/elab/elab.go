// Package elab implements the elaborator: it bridges the parser's Syntax
// trees into kernel Ty/Term/Rule objects, interpreting user-defined
// notations and resolving binder scopes by name.
package elab

import (
	"fmt"

	"github.com/minihol/minihol/internal/kernel"
	"github.com/minihol/minihol/internal/notation"
	"github.com/minihol/minihol/internal/syntax"
)

// Error is raised when a Syntax tree does not match any built-in shape or
// registered notation.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func isAtom(s syntax.Syntax, lit string) bool {
	return s.Kind == syntax.KindAtom && s.Text == lit
}

// Ty elaborates a `ty` Syntax node: an identifier becomes a base type, a
// parenthesized node passes through, and a binary node becomes an arrow.
func Ty(stx syntax.Syntax) (kernel.Ty, error) {
	switch stx.Kind {
	case syntax.KindIdent:
		return kernel.Base{Name: stx.Text}, nil
	case syntax.KindNode:
		switch {
		case len(stx.Args) == 1:
			return Ty(stx.Args[0])
		case len(stx.Args) == 3 && isAtom(stx.Args[0], "(") && isAtom(stx.Args[2], ")"):
			return Ty(stx.Args[1])
		case len(stx.Args) == 3 && isAtom(stx.Args[1], "->"):
			left, err := Ty(stx.Args[0])
			if err != nil {
				return nil, err
			}
			right, err := Ty(stx.Args[2])
			if err != nil {
				return nil, err
			}
			return kernel.Arrow{Left: left, Right: right}, nil
		}
	}
	return nil, errf("cannot elaborate type from %v", stx)
}

// Scope carries the name resolution context Term needs: the names bound by
// enclosing lambdas and the free variables of the current goal, both
// innermost-last, plus the notations in effect (tried in registration
// order).
type Scope struct {
	BVars     []string
	FVars     []string
	Notations []notation.Notation
}

// Term elaborates a `term` Syntax node.
func Term(sc Scope, stx syntax.Syntax) (kernel.Term, error) {
	switch stx.Kind {
	case syntax.KindIdent:
		return resolveIdent(sc, stx.Text), nil

	case syntax.KindNode:
		switch {
		case len(stx.Args) == 1 && stx.Args[0].Kind != syntax.KindAtom:
			return Term(sc, stx.Args[0])
		case isParenTerm(stx):
			return Term(sc, stx.Args[1])
		case isLambdaTerm(stx):
			return elabLambda(sc, stx)
		case isApplicationTerm(stx):
			fn, err := Term(sc, stx.Args[0])
			if err != nil {
				return nil, err
			}
			arg, err := Term(sc, stx.Args[1])
			if err != nil {
				return nil, err
			}
			return kernel.App{Fn: fn, Arg: arg}, nil
		default:
			return elabNotationTerm(sc, stx)
		}

	default:
		return nil, errf("cannot elaborate term from %v", stx)
	}
}

func isParenTerm(stx syntax.Syntax) bool {
	return len(stx.Args) == 3 && isAtom(stx.Args[0], "(") && isAtom(stx.Args[2], ")")
}

func isLambdaTerm(stx syntax.Syntax) bool {
	return len(stx.Args) == 6 && isAtom(stx.Args[0], "\\")
}

func isApplicationTerm(stx syntax.Syntax) bool {
	return len(stx.Args) == 2 && stx.Args[0].Kind != syntax.KindAtom && stx.Args[1].Kind != syntax.KindAtom
}

func elabLambda(sc Scope, stx syntax.Syntax) (kernel.Term, error) {
	name := stx.Args[1].Text
	ty, err := Ty(stx.Args[3])
	if err != nil {
		return nil, err
	}
	inner := sc
	inner.BVars = append(append([]string{}, sc.BVars...), name)
	body, err := Term(inner, stx.Args[5])
	if err != nil {
		return nil, err
	}
	return kernel.Lam{Hint: name, Ty: ty, Body: body}, nil
}

func resolveIdent(sc Scope, name string) kernel.Term {
	for i := len(sc.BVars) - 1; i >= 0; i-- {
		if sc.BVars[i] == name {
			return kernel.BVar{Idx: len(sc.BVars) - 1 - i}
		}
	}
	for i := len(sc.FVars) - 1; i >= 0; i-- {
		if sc.FVars[i] == name {
			return kernel.FVar{Idx: len(sc.FVars) - 1 - i}
		}
	}
	return kernel.Const{Name: name}
}

func elabNotationTerm(sc Scope, stx syntax.Syntax) (kernel.Term, error) {
	for _, n := range sc.Notations {
		slots, ok := n.Match(stx)
		if !ok {
			continue
		}
		var t kernel.Term = kernel.Const{Name: n.Name}
		for _, slot := range slots {
			arg, err := Term(sc, slot)
			if err != nil {
				return nil, err
			}
			t = kernel.App{Fn: t, Arg: arg}
		}
		return t, nil
	}
	return nil, errf("no notation matches %v", stx)
}

// Rule elaborates a `rule` Syntax node: a bare term becomes `proves`, `!!`
// binders expand to nested `all`, and `=>` becomes `implies`.
func Rule(sc Scope, stx syntax.Syntax) (kernel.Rule, error) {
	if stx.Kind != syntax.KindNode {
		t, err := Term(sc, stx)
		if err != nil {
			return nil, err
		}
		return kernel.Proves{P: t}, nil
	}

	switch {
	case len(stx.Args) == 1 && stx.Args[0].Kind != syntax.KindAtom:
		return Rule(sc, stx.Args[0])
	case len(stx.Args) == 3 && isAtom(stx.Args[0], "(") && isAtom(stx.Args[2], ")"):
		return Rule(sc, stx.Args[1])
	case len(stx.Args) == 3 && isAtom(stx.Args[1], "=>"):
		p, err := Rule(sc, stx.Args[0])
		if err != nil {
			return nil, err
		}
		q, err := Rule(sc, stx.Args[2])
		if err != nil {
			return nil, err
		}
		return kernel.Implies{P: p, Q: q}, nil
	case len(stx.Args) == 6 && isAtom(stx.Args[0], "!!"):
		return elabAll(sc, stx)
	default:
		t, err := Term(sc, stx)
		if err != nil {
			return nil, err
		}
		return kernel.Proves{P: t}, nil
	}
}

func elabAll(sc Scope, stx syntax.Syntax) (kernel.Rule, error) {
	// [`!!`, many(ident), `:`, ty, `,`, rule]
	var names []string
	for _, n := range stx.Args[1].Args {
		names = append(names, n.Text)
	}
	if len(names) == 0 {
		return nil, errf("!! requires at least one bound name")
	}
	ty, err := Ty(stx.Args[3])
	if err != nil {
		return nil, err
	}

	inner := sc
	inner.FVars = append(append([]string{}, sc.FVars...), names...)
	body, err := Rule(inner, stx.Args[5])
	if err != nil {
		return nil, err
	}
	for i := len(names) - 1; i >= 0; i-- {
		body = kernel.All{Name: names[i], S: ty, P: body}
	}
	return body, nil
}
