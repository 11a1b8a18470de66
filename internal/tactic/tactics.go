package tactic

import "github.com/minihol/minihol/internal/kernel"

// Arg is one argument to the `apply` tactic: either a bare identifier
// (resolved against fctx/cctx/hypotheses depending on the current rule
// shape) or an already-elaborated term.
type Arg interface{ isArg() }

// ArgName is a string argument to apply.
type ArgName struct{ Name string }

func (ArgName) isArg() {}

// ArgTerm is an elaborated term argument to apply.
type ArgTerm struct{ Term kernel.Term }

func (ArgTerm) isArg() {}

// Assumption scans the head goal's hypothesis context for any entry whose
// rule is definitionally equal to the target, installing the matching
// hypothesis (or its deferred `have` proof) and closing the goal.
func Assumption(ts State) (State, error) {
	if len(ts.Goals) == 0 {
		return ts, NoGoalsError{}
	}
	goal := ts.Goals[0]
	for i, h := range goal.Ctx {
		mctx2, ok := kernel.RuleIsDefEq(ts.MCtx, h.R, goal.Target)
		if !ok {
			continue
		}
		ts.MCtx = mctx2
		var proof kernel.Proof = kernel.Hyp{Idx: i}
		if h.Proof != nil {
			proof = h.Proof
		}
		ts = AssignProof(ts, goal.HoleID, proof)
		return ReplaceGoal(ts, nil), nil
	}
	return ts, AssumptionError{Target: goal.Target}
}

// Intro discharges one implication assumption or introduces one universal
// binder, naming the new hypothesis/free variable name.
func Intro(ts State, name string) (State, error) {
	if len(ts.Goals) == 0 {
		return ts, NoGoalsError{}
	}
	goal := ts.Goals[0]
	switch target := goal.Target.(type) {
	case kernel.Implies:
		newCtx := append([]HypEntry{{Name: name, R: target.P}}, goal.Ctx...)
		ts2, qHole, qGoal := MkHole(ts, target.Q, newCtx, goal.FCtx)
		ts2 = AssignProof(ts2, goal.HoleID, kernel.ImpI{P: target.P, Hq: qHole})
		return ReplaceGoal(ts2, []Goal{qGoal}), nil
	case kernel.All:
		newFCtx := append([]FVarEntry{{Name: name, S: target.S}}, goal.FCtx...)
		ts2, pHole, pGoal := MkHole(ts, target.P, goal.Ctx, newFCtx)
		ts2 = AssignProof(ts2, goal.HoleID, kernel.AllI{Name: name, S: target.S, H: pHole})
		return ReplaceGoal(ts2, []Goal{pGoal}), nil
	default:
		return ts, IntroError{Target: goal.Target}
	}
}

// Have mints a lemma goal for r and, once it is solved, makes it available
// as hypothesis name at the tail of the current goal's context, so that
// hyp(0) continues to refer to the most recently introduced binder.
func Have(ts State, name string, r kernel.Rule) (State, error) {
	if len(ts.Goals) == 0 {
		return ts, NoGoalsError{}
	}
	goal := ts.Goals[0]
	ts2, hHole, lemmaGoal := MkHole(ts, r, goal.Ctx, goal.FCtx)
	newCtx := make([]HypEntry, len(goal.Ctx), len(goal.Ctx)+1)
	copy(newCtx, goal.Ctx)
	newCtx = append(newCtx, HypEntry{Name: name, R: r, Proof: hHole})
	orig := Goal{HoleID: goal.HoleID, Target: goal.Target, Ctx: newCtx, FCtx: goal.FCtx}
	return ReplaceGoal(ts2, []Goal{lemmaGoal, orig}), nil
}

// Apply resolves name to a hypothesis or axiom, threads args through it
// (each either discharging an implication's assumption, instantiating a
// universal, or failing), then hands the result to applyCore to close the
// goal or open further goals automatically.
func Apply(ts State, name string, args []Arg) (State, error) {
	if len(ts.Goals) == 0 {
		return ts, NoGoalsError{}
	}
	goal := ts.Goals[0]

	var proof kernel.Proof
	var rule kernel.Rule
	resolved := false
	for i, h := range goal.Ctx {
		if h.Name == name {
			proof = kernel.Hyp{Idx: i}
			if h.Proof != nil {
				proof = h.Proof
			}
			rule = h.R
			resolved = true
			break
		}
	}
	if !resolved {
		if r, ok := ts.Axioms[name]; ok {
			proof = kernel.Ax{Name: name}
			rule = r
			resolved = true
		}
	}
	if !resolved {
		return ts, UnknownIdError{Name: name}
	}

	for _, rawArg := range args {
		switch a := rawArg.(type) {
		case ArgName:
			switch cur := rule.(type) {
			case kernel.Implies:
				idx := -1
				for i, h := range goal.Ctx {
					if h.Name == a.Name {
						idx = i
						break
					}
				}
				var argProof kernel.Proof
				var argRule kernel.Rule
				if idx != -1 {
					argProof = kernel.Hyp{Idx: idx}
					if goal.Ctx[idx].Proof != nil {
						argProof = goal.Ctx[idx].Proof
					}
					argRule = goal.Ctx[idx].R
				} else if r, ok := ts.Axioms[a.Name]; ok {
					argProof = kernel.Ax{Name: a.Name}
					argRule = r
				} else {
					return ts, UnknownIdError{Name: a.Name}
				}
				mctx2, ok := kernel.RuleIsDefEq(ts.MCtx, cur.P, argRule)
				if !ok {
					return ts, NotDefEqError{Lhs: cur.P, Rhs: argRule}
				}
				ts.MCtx = mctx2
				proof = kernel.ImpE{Hpq: proof, Hp: argProof}
				rule = cur.Q
			case kernel.All:
				fidx := -1
				for i, fv := range goal.FCtx {
					if fv.Name == a.Name {
						fidx = i
						break
					}
				}
				if fidx != -1 {
					fv := goal.FCtx[fidx]
					if !kernel.EqTy(fv.S, cur.S) {
						return ts, TypeMismatchError{Term: kernel.FVar{Idx: fidx}, Have: fv.S, Expected: cur.S}
					}
					proof = kernel.AllE{H: proof, T: kernel.FVar{Idx: fidx}}
					rule = kernel.RuleSubstF(cur.P, kernel.FVar{Idx: fidx}, 0)
					break
				}
				cty, ok := ts.Cctx[a.Name]
				if !ok {
					return ts, UnknownIdError{Name: a.Name}
				}
				if !kernel.EqTy(cty, cur.S) {
					return ts, TypeMismatchError{Term: kernel.Const{Name: a.Name}, Have: cty, Expected: cur.S}
				}
				proof = kernel.AllE{H: proof, T: kernel.Const{Name: a.Name}}
				rule = kernel.RuleSubstF(cur.P, kernel.Const{Name: a.Name}, 0)
			case kernel.Proves:
				return ts, ApplyExcessArgumentError{}
			}

		case ArgTerm:
			cur, ok := rule.(kernel.All)
			if !ok {
				return ts, NotApplicableError{Target: rule}
			}
			ty, err := kernel.InferType(ts.MCtx, ts.Cctx, goal.RuleFCtx(), nil, a.Term)
			if err != nil {
				return ts, err
			}
			if !kernel.EqTy(ty, cur.S) {
				return ts, TypeMismatchError{Term: a.Term, Have: ty, Expected: cur.S}
			}
			proof = kernel.AllE{H: proof, T: a.Term}
			rule = kernel.RuleSubstF(cur.P, a.Term, 0)
		}
	}

	return applyCore(ts, proof, rule, nil)
}

// applyCore closes the head goal with proof if rule already matches the
// target, otherwise opens further meta/hole structure: an implication gets
// a fresh hole for its assumption, a universal gets a fresh metavariable.
func applyCore(ts State, proof kernel.Proof, rule kernel.Rule, newGoals []Goal) (State, error) {
	goal := ts.Goals[0]
	if mctx2, ok := kernel.RuleIsDefEq(ts.MCtx, rule, goal.Target); ok {
		ts.MCtx = mctx2
		ts = AssignProof(ts, goal.HoleID, proof)
		return ReplaceGoal(ts, newGoals), nil
	}

	switch cur := rule.(type) {
	case kernel.Implies:
		ts2, pHole, pGoal := MkHole(ts, cur.P, goal.Ctx, goal.FCtx)
		return applyCore(ts2, kernel.ImpE{Hpq: proof, Hp: pHole}, cur.Q, append(newGoals, pGoal))
	case kernel.All:
		mctx2, mv := ts.MCtx.Fresh(cur.S)
		ts.MCtx = mctx2
		nextRule := kernel.RuleSubstF(cur.P, kernel.MVar{Name: mv}, 0)
		return applyCore(ts, kernel.AllE{H: proof, T: kernel.MVar{Name: mv}}, nextRule, newGoals)
	default:
		return ts, NotDefEqError{Lhs: rule, Rhs: goal.Target}
	}
}
