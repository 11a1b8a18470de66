package kernel

import "testing"

func TestFreshNamesAreUnique(t *testing.T) {
	mctx := NewMCtx()
	mctx, n1 := mctx.Fresh(prop)
	mctx, n2 := mctx.Fresh(prop)
	if n1 == n2 {
		t.Errorf("Fresh produced the same name twice: %q", n1)
	}
	ty, ok := mctx.TypeOf(n1)
	if !ok || !EqTy(ty, prop) {
		t.Errorf("TypeOf(%s) = %v, %v, want Prop, true", n1, ty, ok)
	}
}

func TestFreshNameSharesCounterWithFresh(t *testing.T) {
	mctx := NewMCtx()
	mctx, metaName := mctx.Fresh(prop)
	_, holeName := mctx.FreshName()
	if metaName == holeName {
		t.Errorf("Fresh and FreshName produced colliding names: %q", metaName)
	}
}

func TestAssignIsWriteOnce(t *testing.T) {
	mctx := NewMCtx()
	mctx, name := mctx.Fresh(prop)
	mctx = mctx.Assign(name, Const{Name: "first"})
	mctx = mctx.Assign(name, Const{Name: "second"})

	v, _ := mctx.Lookup(name)
	c, ok := v.(Const)
	if !ok || c.Name != "first" {
		t.Errorf("second Assign overwrote the first: got %v", v)
	}
}

func TestAssignIsPersistent(t *testing.T) {
	base := NewMCtx()
	base, name := base.Fresh(prop)
	extended := base.Assign(name, Const{Name: "c"})

	if _, ok := base.Lookup(name); ok {
		t.Errorf("Assign mutated the base MCtx")
	}
	if _, ok := extended.Lookup(name); !ok {
		t.Errorf("extended MCtx missing its assignment")
	}
}

func TestLookupUnknownMeta(t *testing.T) {
	if _, ok := NewMCtx().Lookup("nope"); ok {
		t.Errorf("expected Lookup on an unminted name to fail")
	}
}
