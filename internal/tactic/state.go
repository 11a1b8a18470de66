package tactic

import "github.com/minihol/minihol/internal/kernel"

// HypEntry is one hypothesis in a Goal's context. Proof is non-nil only when
// `have` installed this hypothesis with a deferred proof to be substituted
// in place of Hyp{Idx} at solve time.
type HypEntry struct {
	Name  string
	R     kernel.Rule
	Proof kernel.Proof
}

// FVarEntry is one free-variable binding in a Goal's fctx.
type FVarEntry struct {
	Name string
	S    kernel.Ty
}

// Goal is one open hole: the rule it must prove, and the hypothesis/free
// variable contexts available while proving it. intro extends Ctx or FCtx
// at the head, so index 0 is the most recent intro; have appends its
// hypothesis at the tail of Ctx.
type Goal struct {
	HoleID string
	Target kernel.Rule
	Ctx    []HypEntry
	FCtx   []FVarEntry
}

// RuleFCtx projects a Goal's FCtx down to the []kernel.Ty InferType and
// RuleIsWF expect.
func (g Goal) RuleFCtx() []kernel.Ty {
	tys := make([]kernel.Ty, len(g.FCtx))
	for i, fv := range g.FCtx {
		tys[i] = fv.S
	}
	return tys
}

// RuleCtx projects a Goal's Ctx down to the []kernel.Rule Check expects.
func (g Goal) RuleCtx() []kernel.Rule {
	rules := make([]kernel.Rule, len(g.Ctx))
	for i, h := range g.Ctx {
		rules[i] = h.R
	}
	return rules
}

// State is the incremental proof state: an ordered list of open goals
// (tactics always act on the head), the holes solved so far, and the
// ambient axioms/constants/metavariable context shared by every goal.
type State struct {
	Goals  []Goal
	Proofs map[string]kernel.Proof
	Axioms map[string]kernel.Rule
	Cctx   map[string]kernel.Ty
	MCtx   kernel.MCtx
}

// NewState builds the initial proof state for a single top-level goal whose
// root hole is rootHole.
func NewState(axioms map[string]kernel.Rule, cctx map[string]kernel.Ty, mctx kernel.MCtx, rootHole string, target kernel.Rule) State {
	return State{
		Goals:  []Goal{{HoleID: rootHole, Target: target}},
		Proofs: map[string]kernel.Proof{},
		Axioms: axioms,
		Cctx:   cctx,
		MCtx:   mctx,
	}
}

// MkHole mints a fresh hole id from the shared MCtx counter, builds the
// corresponding Goal, and returns the updated state, a Hole proof for that
// id, and the new Goal. The new goal is not enqueued; the caller decides
// where it belongs via ReplaceGoal.
func MkHole(ts State, target kernel.Rule, ctx []HypEntry, fctx []FVarEntry) (State, kernel.Proof, Goal) {
	mctx2, id := ts.MCtx.FreshName()
	ts.MCtx = mctx2
	goal := Goal{HoleID: id, Target: target, Ctx: ctx, FCtx: fctx}
	return ts, kernel.Hole{Name: id}, goal
}

// ReplaceGoal removes the head goal and prepends newGoals, then re-instantiates
// every remaining goal's target and hypothesis rules against the current
// MCtx so metavariable progress from the just-completed step is immediately
// visible to every other open goal.
func ReplaceGoal(ts State, newGoals []Goal) State {
	rest := ts.Goals[1:]
	goals := make([]Goal, 0, len(newGoals)+len(rest))
	goals = append(goals, newGoals...)
	goals = append(goals, rest...)
	for i := range goals {
		goals[i].Target = kernel.RuleInstM(ts.MCtx, goals[i].Target)
		ctx := make([]HypEntry, len(goals[i].Ctx))
		for j, h := range goals[i].Ctx {
			h.R = kernel.RuleInstM(ts.MCtx, h.R)
			ctx[j] = h
		}
		goals[i].Ctx = ctx
	}
	ts.Goals = goals
	return ts
}

// AssignProof records holeId's solution.
func AssignProof(ts State, holeID string, p kernel.Proof) State {
	next := make(map[string]kernel.Proof, len(ts.Proofs)+1)
	for k, v := range ts.Proofs {
		next[k] = v
	}
	next[holeID] = p
	ts.Proofs = next
	return ts
}

// Solved reports whether no goals remain.
func (ts State) Solved() bool {
	return len(ts.Goals) == 0
}
