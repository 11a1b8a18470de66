package core

import (
	"fmt"
	"log/slog"

	"github.com/minihol/minihol/internal/elab"
	"github.com/minihol/minihol/internal/kernel"
	"github.com/minihol/minihol/internal/notation"
	"github.com/minihol/minihol/internal/syntax"
	"github.com/minihol/minihol/internal/tactic"
)

// elabCommand dispatches a `command` Syntax node to its shape-specific
// handler and returns the updated State.
func elabCommand(s State, stx syntax.Syntax, logger *slog.Logger) (State, error) {
	if stx.Kind != syntax.KindNode || len(stx.Args) == 0 {
		return s, fmt.Errorf("malformed command")
	}
	switch stx.Args[0].Text {
	case "notation":
		return elabNotationCommand(s, stx, logger)
	case "axiom":
		return elabAxiomCommand(s, stx, logger)
	case "prove":
		return elabProveCommand(s, stx, logger)
	default:
		return s, fmt.Errorf("unknown command %q", stx.Args[0].Text)
	}
}

func elabNotationCommand(s State, stx syntax.Syntax, logger *slog.Logger) (State, error) {
	prec := stx.Args[2].Num
	notationStxs := stx.Args[3].Args
	baseTyStx := stx.Args[5]
	name := stx.Args[7].Text

	if _, exists := s.Constants[name]; exists {
		return s, fmt.Errorf("constant already declared: %s", name)
	}
	baseTy, err := elab.Ty(baseTyStx)
	if err != nil {
		return s, err
	}
	descrs, err := elab.NotationDescrs(notationStxs)
	if err != nil {
		return s, err
	}
	n := notation.New(name, prec, baseTy, descrs)

	next := s
	next.Parsers = s.Parsers.Insert("term", n.ParserRule())
	next.Trie = s.Trie.InsertAll(n.Keywords())
	next.Notations = append(append([]notation.Notation{}, s.Notations...), n)
	next.Constants = cloneTys(s.Constants)
	next.Constants[name] = n.ConstType()

	logger.Debug("installed notation", "name", name, "prec", prec, "type", n.ConstType())
	return next, nil
}

func elabAxiomCommand(s State, stx syntax.Syntax, logger *slog.Logger) (State, error) {
	name := stx.Args[1].Text
	if _, exists := s.Axioms[name]; exists {
		return s, fmt.Errorf("axiom already declared: %s", name)
	}
	r, err := elab.Rule(s.scope(), stx.Args[3])
	if err != nil {
		return s, err
	}
	if err := kernel.RuleIsWF(s.MCtx, s.Constants, nil, r); err != nil {
		return s, err
	}

	next := s
	next.Axioms = cloneRules(s.Axioms)
	next.Axioms[name] = r

	logger.Debug("installed axiom", "name", name, "rule", kernel.PrintRule(r))
	return next, nil
}

func elabProveCommand(s State, stx syntax.Syntax, logger *slog.Logger) (State, error) {
	name := stx.Args[1].Text
	if _, exists := s.Axioms[name]; exists {
		return s, fmt.Errorf("axiom already declared: %s", name)
	}
	r, err := elab.Rule(s.scope(), stx.Args[3])
	if err != nil {
		return s, err
	}
	if err := kernel.RuleIsWF(s.MCtx, s.Constants, nil, r); err != nil {
		return s, err
	}

	mctx, rootHole := s.MCtx.FreshName()
	ts := tactic.NewState(s.Axioms, s.Constants, mctx, rootHole, r)

	for _, tacticStx := range stx.Args[5].Args {
		if len(ts.Goals) == 0 {
			return s, tactic.NoGoalsError{}
		}
		sc := elab.Scope{FVars: elab.FVarNames(ts.Goals[0].FCtx), Notations: s.Notations}
		call, err := elab.Tactic(sc, tacticStx)
		if err != nil {
			return s, err
		}
		ts, err = dispatchTactic(ts, call)
		if err != nil {
			return s, err
		}
		logger.Debug("tactic dispatched", "theorem", name, "kind", call.Kind, "goals", len(ts.Goals))
	}

	if !ts.Solved() {
		return s, tactic.UnsolvedGoalsError{Goals: ts.Goals}
	}

	closed := kernel.InstHole(ts.Proofs[rootHole], ts.Proofs)
	if _, _, err := kernel.Check(ts.MCtx, s.Constants, s.Axioms, nil, nil, closed); err != nil {
		return s, fmt.Errorf("internal: closed proof of %s failed to check: %w", name, err)
	}

	next := s
	next.Axioms = cloneRules(s.Axioms)
	next.Axioms[name] = r
	next.Theorems = cloneProofs(s.Theorems)
	next.Theorems[name] = closed
	next.MCtx = ts.MCtx

	logger.Debug("proved theorem", "name", name)
	return next, nil
}

func dispatchTactic(ts tactic.State, call elab.TacticCall) (tactic.State, error) {
	switch call.Kind {
	case "assum":
		return tactic.Assumption(ts)
	case "intro":
		var err error
		for _, name := range call.IntroNames {
			ts, err = tactic.Intro(ts, name)
			if err != nil {
				return ts, err
			}
		}
		return ts, nil
	case "apply":
		return tactic.Apply(ts, call.ApplyName, call.ApplyArgs)
	case "have":
		return tactic.Have(ts, call.HaveName, call.HaveRule)
	default:
		return ts, fmt.Errorf("unknown tactic kind %q", call.Kind)
	}
}

func cloneTys(m map[string]kernel.Ty) map[string]kernel.Ty {
	next := make(map[string]kernel.Ty, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}

func cloneRules(m map[string]kernel.Rule) map[string]kernel.Rule {
	next := make(map[string]kernel.Rule, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}

func cloneProofs(m map[string]kernel.Proof) map[string]kernel.Proof {
	next := make(map[string]kernel.Proof, len(m)+1)
	for k, v := range m {
		next[k] = v
	}
	return next
}
