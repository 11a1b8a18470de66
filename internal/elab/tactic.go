package elab

import (
	"github.com/minihol/minihol/internal/kernel"
	"github.com/minihol/minihol/internal/syntax"
	"github.com/minihol/minihol/internal/tactic"
)

// TacticCall is one elaborated tactic invocation, ready for internal/core's
// driver to dispatch against a
// tactic.State without any further Syntax inspection.
type TacticCall struct {
	Kind string // "assum", "intro", "apply", "have"

	IntroNames []string

	ApplyName string
	ApplyArgs []tactic.Arg

	HaveName string
	HaveRule kernel.Rule
}

// FVarNames reorders a tactic Goal's free-variable context (innermost-first,
// per tactic.Goal.FCtx) into the innermost-last order Scope.FVars expects.
func FVarNames(fctx []tactic.FVarEntry) []string {
	names := make([]string, len(fctx))
	for i, fv := range fctx {
		names[len(fctx)-1-i] = fv.Name
	}
	return names
}

// Tactic elaborates one `tactic` Syntax node.
func Tactic(sc Scope, stx syntax.Syntax) (TacticCall, error) {
	if stx.Kind != syntax.KindNode || len(stx.Args) == 0 {
		return TacticCall{}, errf("cannot elaborate tactic from %v", stx)
	}
	switch stx.Args[0].Text {
	case "assum":
		return TacticCall{Kind: "assum"}, nil

	case "intro":
		var names []string
		for _, n := range stx.Args[1].Args {
			names = append(names, n.Text)
		}
		return TacticCall{Kind: "intro", IntroNames: names}, nil

	case "apply":
		name := stx.Args[1].Text
		var args []tactic.Arg
		for _, a := range stx.Args[2].Args {
			child := a.Args[0]
			if child.Kind == syntax.KindIdent {
				args = append(args, tactic.ArgName{Name: child.Text})
				continue
			}
			t, err := Term(sc, child)
			if err != nil {
				return TacticCall{}, err
			}
			args = append(args, tactic.ArgTerm{Term: t})
		}
		return TacticCall{Kind: "apply", ApplyName: name, ApplyArgs: args}, nil

	case "have":
		name := stx.Args[1].Text
		r, err := Rule(sc, stx.Args[3])
		if err != nil {
			return TacticCall{}, err
		}
		return TacticCall{Kind: "have", HaveName: name, HaveRule: r}, nil

	default:
		return TacticCall{}, errf("unknown tactic %q", stx.Args[0].Text)
	}
}
