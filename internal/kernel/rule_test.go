package kernel

import "testing"

func TestRuleIsWF(t *testing.T) {
	cctx := map[string]Ty{"p": prop, "q": prop}
	tests := []struct {
		name    string
		fctx    []Ty
		r       Rule
		wantErr bool
	}{
		{"proves base type", nil, Proves{P: Const{Name: "p"}}, false},
		{"proves non-base type errors", nil, Proves{P: Lam{Ty: prop, Body: BVar{Idx: 0}}}, true},
		{"implies both sides wf", nil, Implies{P: Proves{P: Const{Name: "p"}}, Q: Proves{P: Const{Name: "q"}}}, false},
		{"implies left side ill-typed", nil, Implies{P: Proves{P: Const{Name: "nope"}}, Q: Proves{P: Const{Name: "q"}}}, true},
		{"all extends fctx for its body", nil, All{Name: "x", S: prop, P: Proves{P: FVar{Idx: 0}}}, false},
		{"all body with wrong fvar index errors", nil, All{Name: "x", S: prop, P: Proves{P: FVar{Idx: 1}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RuleIsWF(NewMCtx(), cctx, tt.fctx, tt.r)
			if (err != nil) != tt.wantErr {
				t.Errorf("RuleIsWF() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRuleIsDefEq(t *testing.T) {
	p := Proves{P: Const{Name: "p"}}
	q := Proves{P: Const{Name: "q"}}
	tests := []struct {
		name string
		r1   Rule
		r2   Rule
		want bool
	}{
		{"same proves", p, p, true},
		{"different proves", p, q, false},
		{"same implies", Implies{P: p, Q: q}, Implies{P: p, Q: q}, true},
		{"implies vs proves", Implies{P: p, Q: q}, p, false},
		{"same all", All{Name: "x", S: prop, P: p}, All{Name: "y", S: prop, P: p}, true},
		{"all with different bound type", All{Name: "x", S: prop, P: p}, All{Name: "x", S: Base{Name: "Nat"}, P: p}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := RuleIsDefEq(NewMCtx(), tt.r1, tt.r2)
			if ok != tt.want {
				t.Errorf("RuleIsDefEq(%v, %v) = %v, want %v", tt.r1, tt.r2, ok, tt.want)
			}
		})
	}
}

func TestRuleSubstFInstantiatesAllBody(t *testing.T) {
	// AllE's usage: strip the All binder, then substitute fvar(0) in its
	// body at k=0 with the instantiating term.
	body := Proves{P: FVar{Idx: 0}}
	got := RuleSubstF(body, Const{Name: "c"}, 0)
	proves, ok := got.(Proves)
	if !ok {
		t.Fatalf("expected Proves, got %v", got)
	}
	c, ok := proves.P.(Const)
	if !ok || c.Name != "c" {
		t.Errorf("RuleSubstF(fvar(0), c, 0) = %v, want Const{c}", proves.P)
	}
}

func TestRuleSubstFThreadsDepthUnderAll(t *testing.T) {
	// Substituting at the outer k=0 must not disturb a nested All's own
	// fvar(0), which RuleSubstF reaches at k=1 after the binder increment.
	r := All{Name: "x", S: prop, P: Proves{P: FVar{Idx: 0}}}
	got := RuleSubstF(r, Const{Name: "c"}, 0)
	all, ok := got.(All)
	if !ok {
		t.Fatalf("RuleSubstF should not change the All shape, got %v", got)
	}
	proves, ok := all.P.(Proves)
	if !ok {
		t.Fatalf("expected Proves body, got %v", all.P)
	}
	if _, ok := proves.P.(FVar); !ok {
		t.Errorf("the All's own fvar(0) should be left alone by an outer substitution, got %v", proves.P)
	}
}

func TestRuleInstMInstantiatesNestedMeta(t *testing.T) {
	mctx, name := NewMCtx().Fresh(prop)
	mctx = mctx.Assign(name, Const{Name: "c"})
	r := Proves{P: MVar{Name: name}}
	got := RuleInstM(mctx, r)
	proves, ok := got.(Proves)
	if !ok {
		t.Fatalf("expected Proves, got %v", got)
	}
	c, ok := proves.P.(Const)
	if !ok || c.Name != "c" {
		t.Errorf("RuleInstM did not resolve the metavariable: %v", proves.P)
	}
}
