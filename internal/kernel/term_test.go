package kernel

import "testing"

var prop = Base{Name: "Prop"}

func TestWhnfBetaReduces(t *testing.T) {
	// (\x:Prop, x) y  ~~>  y
	lam := Lam{Ty: prop, Body: BVar{Idx: 0}}
	app := App{Fn: lam, Arg: Const{Name: "y"}}
	got := Whnf(NewMCtx(), app)
	if _, ok := got.(Const); !ok {
		t.Fatalf("Whnf(%v) = %v, want Const", app, got)
	}
}

func TestWhnfFollowsAssignedMeta(t *testing.T) {
	mctx, name := NewMCtx().Fresh(prop)
	mctx = mctx.Assign(name, Const{Name: "c"})
	got := Whnf(mctx, MVar{Name: name})
	c, ok := got.(Const)
	if !ok || c.Name != "c" {
		t.Fatalf("Whnf(assigned meta) = %v, want Const{c}", got)
	}
}

func TestIsDefEqStructural(t *testing.T) {
	tests := []struct {
		name string
		t1   Term
		t2   Term
		want bool
	}{
		{"same const", Const{Name: "a"}, Const{Name: "a"}, true},
		{"different const", Const{Name: "a"}, Const{Name: "b"}, false},
		{"same bvar", BVar{Idx: 0}, BVar{Idx: 0}, true},
		{"different bvar", BVar{Idx: 0}, BVar{Idx: 1}, false},
		{"app both sides", App{Fn: Const{Name: "f"}, Arg: Const{Name: "x"}}, App{Fn: Const{Name: "f"}, Arg: Const{Name: "x"}}, true},
		{"app mismatched arg", App{Fn: Const{Name: "f"}, Arg: Const{Name: "x"}}, App{Fn: Const{Name: "f"}, Arg: Const{Name: "y"}}, false},
		{"const vs app", Const{Name: "f"}, App{Fn: Const{Name: "f"}, Arg: Const{Name: "x"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := IsDefEq(NewMCtx(), tt.t1, tt.t2)
			if ok != tt.want {
				t.Errorf("IsDefEq(%v, %v) = %v, want %v", tt.t1, tt.t2, ok, tt.want)
			}
		})
	}
}

func TestIsDefEqAssignsMeta(t *testing.T) {
	mctx, name := NewMCtx().Fresh(prop)
	next, ok := IsDefEq(mctx, MVar{Name: name}, Const{Name: "c"})
	if !ok {
		t.Fatalf("expected an unassigned meta to unify with a term")
	}
	v, ok := next.Lookup(name)
	if !ok {
		t.Fatalf("expected %s to be assigned", name)
	}
	c, ok := v.(Const)
	if !ok || c.Name != "c" {
		t.Errorf("assigned value = %v, want Const{c}", v)
	}
}

func TestIsDefEqOccursCheckFails(t *testing.T) {
	mctx, name := NewMCtx().Fresh(prop)
	self := App{Fn: MVar{Name: name}, Arg: Const{Name: "x"}}
	_, ok := IsDefEq(mctx, MVar{Name: name}, self)
	if ok {
		t.Errorf("expected occurs check to reject ?%s =?= (?%s x)", name, name)
	}
}

func TestIsDefEqFailureLeavesMCtxUnchanged(t *testing.T) {
	mctx, name := NewMCtx().Fresh(prop)
	// A failing branch after a meta-assignment must not leak the assignment:
	// App{?m, a} =?= App{b, c} assigns ?m := b while unifying Fn, then fails
	// unifying Arg (a vs c), so the caller must see the mctx from before Fn ran.
	lhs := App{Fn: MVar{Name: name}, Arg: Const{Name: "a"}}
	rhs := App{Fn: Const{Name: "b"}, Arg: Const{Name: "c"}}
	result, ok := IsDefEq(mctx, lhs, rhs)
	if ok {
		t.Fatalf("expected mismatched Arg to fail unification")
	}
	if _, assigned := result.Lookup(name); assigned {
		t.Errorf("failed IsDefEq leaked a partial metavariable assignment")
	}
}

func TestSubstBUnderLambda(t *testing.T) {
	// (\x:Prop, \y:Prop, x) applied to z at depth 0 from outside should
	// leave the inner BVar(1) (referring to the outer binder) replaced, and
	// shift nothing else under the remaining lambda.
	body := Lam{Ty: prop, Body: BVar{Idx: 1}}
	got := SubstB(body, Const{Name: "z"}, 0)
	lam, ok := got.(Lam)
	if !ok {
		t.Fatalf("SubstB under Lam should still be a Lam, got %v", got)
	}
	c, ok := lam.Body.(Const)
	if !ok || c.Name != "z" {
		t.Errorf("SubstB body = %v, want Const{z}", lam.Body)
	}
}

func TestSubstFShiftsRemainingFreeVars(t *testing.T) {
	// FVar(1) substituted at k=0 should become FVar(0) (shifted down).
	got := SubstF(FVar{Idx: 1}, Const{Name: "c"}, 0)
	fv, ok := got.(FVar)
	if !ok || fv.Idx != 0 {
		t.Errorf("SubstF(FVar(1), c, 0) = %v, want FVar(0)", got)
	}
}

func TestInferTypeApp(t *testing.T) {
	cctx := map[string]Ty{"f": Arrow{Left: prop, Right: prop}, "x": prop}
	term := App{Fn: Const{Name: "f"}, Arg: Const{Name: "x"}}
	ty, err := InferType(NewMCtx(), cctx, nil, nil, term)
	if err != nil {
		t.Fatalf("InferType failed: %v", err)
	}
	if !EqTy(ty, prop) {
		t.Errorf("InferType(f x) = %v, want Prop", ty)
	}
}

func TestInferTypeArrowMismatchErrors(t *testing.T) {
	cctx := map[string]Ty{"f": Arrow{Left: Base{Name: "Nat"}, Right: prop}, "x": prop}
	term := App{Fn: Const{Name: "f"}, Arg: Const{Name: "x"}}
	if _, err := InferType(NewMCtx(), cctx, nil, nil, term); err == nil {
		t.Errorf("expected a type mismatch error applying f to the wrong argument type")
	}
}

func TestInferTypeUnknownConstErrors(t *testing.T) {
	if _, err := InferType(NewMCtx(), map[string]Ty{}, nil, nil, Const{Name: "nope"}); err == nil {
		t.Errorf("expected an error for an undeclared constant")
	}
}

func TestInferTypeLambda(t *testing.T) {
	term := Lam{Ty: prop, Body: BVar{Idx: 0}}
	ty, err := InferType(NewMCtx(), nil, nil, nil, term)
	if err != nil {
		t.Fatalf("InferType failed: %v", err)
	}
	arrow, ok := ty.(Arrow)
	if !ok || !EqTy(arrow.Left, prop) || !EqTy(arrow.Right, prop) {
		t.Errorf("InferType(\\x:Prop, x) = %v, want Prop -> Prop", ty)
	}
}
