package tactic

import (
	"testing"

	"github.com/minihol/minihol/internal/kernel"
)

var prop = kernel.Base{Name: "Prop"}

func TestNewStateStartsWithOneGoal(t *testing.T) {
	target := kernel.Proves{P: kernel.Const{Name: "p"}}
	ts := NewState(nil, nil, kernel.NewMCtx(), "h0", target)
	if ts.Solved() {
		t.Fatalf("a freshly built state should not report Solved")
	}
	if len(ts.Goals) != 1 || ts.Goals[0].HoleID != "h0" {
		t.Errorf("NewState goals = %v, want a single goal named h0", ts.Goals)
	}
}

func TestMkHoleDoesNotEnqueue(t *testing.T) {
	ts := NewState(nil, nil, kernel.NewMCtx(), "h0", kernel.Proves{P: kernel.Const{Name: "p"}})
	before := len(ts.Goals)
	ts2, proof, goal := MkHole(ts, kernel.Proves{P: kernel.Const{Name: "q"}}, nil, nil)
	if len(ts2.Goals) != before {
		t.Errorf("MkHole should not enqueue the new goal, got %d goals, want %d", len(ts2.Goals), before)
	}
	if _, ok := proof.(kernel.Hole); !ok {
		t.Errorf("MkHole should return a Hole proof, got %v", proof)
	}
	if goal.HoleID == "" {
		t.Errorf("MkHole goal has an empty HoleID")
	}
}

func TestReplaceGoalPrependsAndDropsHead(t *testing.T) {
	g1 := Goal{HoleID: "h1", Target: kernel.Proves{P: kernel.Const{Name: "p"}}}
	g2 := Goal{HoleID: "h2", Target: kernel.Proves{P: kernel.Const{Name: "q"}}}
	ts := State{Goals: []Goal{g1, g2}, MCtx: kernel.NewMCtx()}

	g0 := Goal{HoleID: "h0", Target: kernel.Proves{P: kernel.Const{Name: "r"}}}
	got := ReplaceGoal(ts, []Goal{g0})
	if len(got.Goals) != 2 || got.Goals[0].HoleID != "h0" || got.Goals[1].HoleID != "h2" {
		t.Errorf("ReplaceGoal result = %v, want [h0 h2]", got.Goals)
	}
}

func TestReplaceGoalInstantiatesRemainingGoals(t *testing.T) {
	mctx, name := kernel.NewMCtx().Fresh(prop)
	mctx = mctx.Assign(name, kernel.Const{Name: "c"})
	remaining := Goal{
		HoleID: "h2",
		Target: kernel.Proves{P: kernel.MVar{Name: name}},
		Ctx:    []HypEntry{{Name: "hp", R: kernel.Proves{P: kernel.MVar{Name: name}}}},
	}
	ts := State{Goals: []Goal{{HoleID: "h1"}, remaining}, MCtx: mctx}

	got := ReplaceGoal(ts, nil)
	if len(got.Goals) != 1 {
		t.Fatalf("expected one remaining goal, got %d", len(got.Goals))
	}
	target, ok := got.Goals[0].Target.(kernel.Proves)
	if !ok {
		t.Fatalf("expected Proves target, got %v", got.Goals[0].Target)
	}
	if _, ok := target.P.(kernel.Const); !ok {
		t.Errorf("ReplaceGoal did not instantiate the remaining goal's target: %v", target.P)
	}
	hyp := got.Goals[0].Ctx[0].R.(kernel.Proves)
	if _, ok := hyp.P.(kernel.Const); !ok {
		t.Errorf("ReplaceGoal did not instantiate the remaining goal's hypothesis: %v", hyp.P)
	}
}

func TestAssignProofIsPersistent(t *testing.T) {
	base := State{Proofs: map[string]kernel.Proof{}}
	extended := AssignProof(base, "h0", kernel.Ax{Name: "foo"})
	if _, ok := base.Proofs["h0"]; ok {
		t.Errorf("AssignProof mutated the base state's Proofs map")
	}
	if _, ok := extended.Proofs["h0"]; !ok {
		t.Errorf("extended state is missing its assignment")
	}
}

func TestSolved(t *testing.T) {
	if !(State{}).Solved() {
		t.Errorf("a state with no goals should report Solved")
	}
	if (State{Goals: []Goal{{}}}).Solved() {
		t.Errorf("a state with a goal should not report Solved")
	}
}
