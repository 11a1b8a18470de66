package kernel

import "strconv"

// Term is the kernel's term ADT: bound variables, free variables,
// metavariables, application, lambda, and constants, each carrying only the
// minimum structure the kernel algorithms need.
type Term interface {
	String() string
	isTerm()
}

// BVar is a de Bruijn index into the surrounding lambda-binder stack; 0 is
// the innermost binder.
type BVar struct{ Idx int }

func (BVar) isTerm() {}

// FVar indexes the ambient free-variable context (a tactic goal's fctx),
// counted from its head: 0 is the most recently introduced free variable.
type FVar struct{ Idx int }

func (FVar) isTerm() {}

// MVar names a metavariable resolved through an MCtx.
type MVar struct{ Name string }

func (MVar) isTerm() {}

// App is function application.
type App struct{ Fn, Arg Term }

func (App) isTerm() {}

// Lam is a lambda abstraction. Hint is a display name only; binding
// identity is positional (de Bruijn), never by Hint.
type Lam struct {
	Hint string
	Ty   Ty
	Body Term
}

func (Lam) isTerm() {}

// Const refers to the constants table by name.
type Const struct{ Name string }

func (Const) isTerm() {}

func (t BVar) String() string  { return PrintTerm(t) }
func (t FVar) String() string  { return PrintTerm(t) }
func (t MVar) String() string  { return PrintTerm(t) }
func (t App) String() string   { return PrintTerm(t) }
func (t Lam) String() string   { return PrintTerm(t) }
func (t Const) String() string { return PrintTerm(t) }

// LiftB adds n to every BVar with index >= k, threading k+1 under each Lam.
func LiftB(t Term, n, k int) Term {
	switch t := t.(type) {
	case BVar:
		if t.Idx >= k {
			return BVar{Idx: t.Idx + n}
		}
		return t
	case FVar, MVar, Const:
		return t
	case App:
		return App{Fn: LiftB(t.Fn, n, k), Arg: LiftB(t.Arg, n, k)}
	case Lam:
		return Lam{Hint: t.Hint, Ty: t.Ty, Body: LiftB(t.Body, n, k+1)}
	default:
		panic("kernel: unknown Term implementation")
	}
}

// SubstB replaces BVar(k) with u (lifted to account for the k binders
// already crossed), shifting every BVar index greater than k down by one.
func SubstB(t Term, u Term, k int) Term {
	switch t := t.(type) {
	case BVar:
		switch {
		case t.Idx == k:
			return LiftB(u, k, 0)
		case t.Idx > k:
			return BVar{Idx: t.Idx - 1}
		default:
			return t
		}
	case FVar, MVar, Const:
		return t
	case App:
		return App{Fn: SubstB(t.Fn, u, k), Arg: SubstB(t.Arg, u, k)}
	case Lam:
		return Lam{Hint: t.Hint, Ty: t.Ty, Body: SubstB(t.Body, u, k+1)}
	default:
		panic("kernel: unknown Term implementation")
	}
}

// LiftF adds n to every FVar with index >= k. Lam does not alter free-index
// depth: free variables are flat with respect to lambda binders.
func LiftF(t Term, n, k int) Term {
	switch t := t.(type) {
	case FVar:
		if t.Idx >= k {
			return FVar{Idx: t.Idx + n}
		}
		return t
	case BVar, MVar, Const:
		return t
	case App:
		return App{Fn: LiftF(t.Fn, n, k), Arg: LiftF(t.Arg, n, k)}
	case Lam:
		return Lam{Hint: t.Hint, Ty: t.Ty, Body: LiftF(t.Body, n, k)}
	default:
		panic("kernel: unknown Term implementation")
	}
}

// SubstF replaces FVar(k) with u, shifting remaining free indices down by
// one. Because Lam does not shift free-variable depth, u's own bound
// variables are lifted by the count of lambda binders crossed so far so
// they remain correctly scoped at the insertion point.
func SubstF(t Term, u Term, k int) Term {
	return substF(t, u, k, 0)
}

func substF(t Term, u Term, k, bd int) Term {
	switch t := t.(type) {
	case FVar:
		switch {
		case t.Idx == k:
			return LiftB(u, bd, 0)
		case t.Idx > k:
			return FVar{Idx: t.Idx - 1}
		default:
			return t
		}
	case BVar, MVar, Const:
		return t
	case App:
		return App{Fn: substF(t.Fn, u, k, bd), Arg: substF(t.Arg, u, k, bd)}
	case Lam:
		return Lam{Hint: t.Hint, Ty: t.Ty, Body: substF(t.Body, u, k, bd+1)}
	default:
		panic("kernel: unknown Term implementation")
	}
}

// InstM recursively replaces assigned metavariables by their definitions.
// Cycles are impossible because IsDefEq always occurs-checks before
// assigning.
func InstM(mctx MCtx, t Term) Term {
	switch t := t.(type) {
	case MVar:
		if v, ok := mctx.Lookup(t.Name); ok {
			return InstM(mctx, v)
		}
		return t
	case BVar, FVar, Const:
		return t
	case App:
		return App{Fn: InstM(mctx, t.Fn), Arg: InstM(mctx, t.Arg)}
	case Lam:
		return Lam{Hint: t.Hint, Ty: t.Ty, Body: InstM(mctx, t.Body)}
	default:
		panic("kernel: unknown Term implementation")
	}
}

// OccursM reports whether metavariable m appears in t, following existing
// assignments transitively.
func OccursM(mctx MCtx, t Term, m string) bool {
	switch t := t.(type) {
	case MVar:
		if t.Name == m {
			return true
		}
		if v, ok := mctx.Lookup(t.Name); ok {
			return OccursM(mctx, v, m)
		}
		return false
	case BVar, FVar, Const:
		return false
	case App:
		return OccursM(mctx, t.Fn, m) || OccursM(mctx, t.Arg, m)
	case Lam:
		return OccursM(mctx, t.Body, m)
	default:
		panic("kernel: unknown Term implementation")
	}
}

// Whnf reduces t to weak-head normal form: beta-reduce at the head and
// follow metavariable assignments, without unfolding constants or
// reducing under binders.
func Whnf(mctx MCtx, t Term) Term {
	switch t := t.(type) {
	case App:
		fn := Whnf(mctx, t.Fn)
		if lam, ok := fn.(Lam); ok {
			return Whnf(mctx, SubstB(lam.Body, t.Arg, 0))
		}
		return App{Fn: fn, Arg: t.Arg}
	case MVar:
		if v, ok := mctx.Lookup(t.Name); ok {
			return Whnf(mctx, v)
		}
		return t
	default:
		return t
	}
}

// IsDefEq decides definitional equality up to whnf and metavariable
// assignment. On failure it returns the original mctx unchanged: no
// partial assignment from an abandoned branch is observable by the caller.
func IsDefEq(mctx MCtx, t1, t2 Term) (MCtx, bool) {
	w1 := Whnf(mctx, t1)
	w2 := Whnf(mctx, t2)

	if mv1, ok := w1.(MVar); ok {
		if mv2, ok2 := w2.(MVar); ok2 && mv1.Name == mv2.Name {
			return mctx, true
		}
		if OccursM(mctx, w2, mv1.Name) {
			return mctx, false
		}
		return mctx.Assign(mv1.Name, w2), true
	}
	if mv2, ok := w2.(MVar); ok {
		if OccursM(mctx, w1, mv2.Name) {
			return mctx, false
		}
		return mctx.Assign(mv2.Name, w1), true
	}

	switch a := w1.(type) {
	case BVar:
		b, ok := w2.(BVar)
		return mctx, ok && a.Idx == b.Idx
	case FVar:
		b, ok := w2.(FVar)
		return mctx, ok && a.Idx == b.Idx
	case Const:
		b, ok := w2.(Const)
		return mctx, ok && a.Name == b.Name
	case Lam:
		b, ok := w2.(Lam)
		if !ok || !EqTy(a.Ty, b.Ty) {
			return mctx, false
		}
		return IsDefEq(mctx, a.Body, b.Body)
	case App:
		b, ok := w2.(App)
		if !ok {
			return mctx, false
		}
		mctx2, ok1 := IsDefEq(mctx, a.Fn, b.Fn)
		if !ok1 {
			return mctx, false
		}
		mctx3, ok2 := IsDefEq(mctx2, a.Arg, b.Arg)
		if !ok2 {
			return mctx, false
		}
		return mctx3, true
	default:
		panic("kernel: unknown Term implementation")
	}
}

// InferType computes t's simple type under the constants table cctx, free
// variable context fctx (head-indexed, innermost first), and bound
// variable context bctx (head-indexed, innermost first).
func InferType(mctx MCtx, cctx map[string]Ty, fctx []Ty, bctx []Ty, t Term) (Ty, error) {
	switch t := t.(type) {
	case BVar:
		if t.Idx < 0 || t.Idx >= len(bctx) {
			return nil, errInvalidIndex("bound", t.Idx, len(bctx))
		}
		return bctx[t.Idx], nil
	case FVar:
		if t.Idx < 0 || t.Idx >= len(fctx) {
			return nil, errInvalidIndex("free", t.Idx, len(fctx))
		}
		return fctx[t.Idx], nil
	case MVar:
		ty, ok := mctx.TypeOf(t.Name)
		if !ok {
			return nil, &Error{Kind: "unknown-meta", Message: "unknown metavariable: ?" + t.Name}
		}
		return ty, nil
	case Const:
		ty, ok := cctx[t.Name]
		if !ok {
			return nil, errUnknownConst(t.Name)
		}
		return ty, nil
	case Lam:
		bodyTy, err := InferType(mctx, cctx, fctx, append([]Ty{t.Ty}, bctx...), t.Body)
		if err != nil {
			return nil, err
		}
		return Arrow{Left: t.Ty, Right: bodyTy}, nil
	case App:
		fnTy, err := InferType(mctx, cctx, fctx, bctx, t.Fn)
		if err != nil {
			return nil, err
		}
		arrow, ok := fnTy.(Arrow)
		if !ok {
			return nil, errArrowExpected(fnTy)
		}
		argTy, err := InferType(mctx, cctx, fctx, bctx, t.Arg)
		if err != nil {
			return nil, err
		}
		if !EqTy(argTy, arrow.Left) {
			return nil, errTypeMismatch(argTy, arrow.Left)
		}
		return arrow.Right, nil
	default:
		panic("kernel: unknown Term implementation")
	}
}

// PrintTerm renders a term for diagnostics. It does not attempt to recover
// source-level binder names: BVar and FVar print their positional index.
func PrintTerm(t Term) string {
	switch t := t.(type) {
	case BVar:
		return "#" + strconv.Itoa(t.Idx)
	case FVar:
		return "$" + strconv.Itoa(t.Idx)
	case MVar:
		return "?" + t.Name
	case Const:
		return t.Name
	case App:
		return "(" + PrintTerm(t.Fn) + " " + PrintTerm(t.Arg) + ")"
	case Lam:
		return "(\\_:" + t.Ty.String() + ", " + PrintTerm(t.Body) + ")"
	default:
		return "<term>"
	}
}
