package kernel

// Rule is the proposition/judgement layer: `⊢ p`, `P ⇒ Q`, and `∀ x:τ. P`.
type Rule interface {
	String() string
	isRule()
}

// Proves asserts that P (a base-typed term) holds.
type Proves struct{ P Term }

func (Proves) isRule() {}

// Implies is P ⇒ Q.
type Implies struct{ P, Q Rule }

func (Implies) isRule() {}

// All is ∀ name:S. P, binding a free variable at fvar(0) inside P. Name is
// a display hint only, like Lam.Hint on terms.
type All struct {
	Name string
	S    Ty
	P    Rule
}

func (All) isRule() {}

func (r Proves) String() string  { return PrintRule(r) }
func (r Implies) String() string { return PrintRule(r) }
func (r All) String() string     { return PrintRule(r) }

// RuleSubstF pushes a free-variable substitution through a Rule, matching
// Term's SubstF but incrementing k under each All binder (mirroring how
// SubstB threads its index under Lam).
func RuleSubstF(r Rule, u Term, k int) Rule {
	switch r := r.(type) {
	case Proves:
		return Proves{P: SubstF(r.P, u, k)}
	case Implies:
		return Implies{P: RuleSubstF(r.P, u, k), Q: RuleSubstF(r.Q, u, k)}
	case All:
		return All{Name: r.Name, S: r.S, P: RuleSubstF(r.P, u, k+1)}
	default:
		panic("kernel: unknown Rule implementation")
	}
}

// RuleInstM maps InstM over every term inside r.
func RuleInstM(mctx MCtx, r Rule) Rule {
	switch r := r.(type) {
	case Proves:
		return Proves{P: InstM(mctx, r.P)}
	case Implies:
		return Implies{P: RuleInstM(mctx, r.P), Q: RuleInstM(mctx, r.Q)}
	case All:
		return All{Name: r.Name, S: r.S, P: RuleInstM(mctx, r.P)}
	default:
		panic("kernel: unknown Rule implementation")
	}
}

// RuleIsDefEq decides definitional equality of two rules: same shape,
// matching type annotations on All, and componentwise def-eq of terms and
// sub-rules, threading mctx the same way Term's IsDefEq does.
func RuleIsDefEq(mctx MCtx, r1, r2 Rule) (MCtx, bool) {
	switch a := r1.(type) {
	case Proves:
		b, ok := r2.(Proves)
		if !ok {
			return mctx, false
		}
		return IsDefEq(mctx, a.P, b.P)
	case Implies:
		b, ok := r2.(Implies)
		if !ok {
			return mctx, false
		}
		mctx2, ok1 := RuleIsDefEq(mctx, a.P, b.P)
		if !ok1 {
			return mctx, false
		}
		mctx3, ok2 := RuleIsDefEq(mctx2, a.Q, b.Q)
		if !ok2 {
			return mctx, false
		}
		return mctx3, true
	case All:
		b, ok := r2.(All)
		if !ok || !EqTy(a.S, b.S) {
			return mctx, false
		}
		return RuleIsDefEq(mctx, a.P, b.P)
	default:
		panic("kernel: unknown Rule implementation")
	}
}

// RuleIsWF checks well-formedness: every Proves term must have a base type
// under the ambient contexts, and every All extends fctx
// with its bound type at the head before recursing.
func RuleIsWF(mctx MCtx, cctx map[string]Ty, fctx []Ty, r Rule) error {
	switch r := r.(type) {
	case Proves:
		ty, err := InferType(mctx, cctx, fctx, nil, r.P)
		if err != nil {
			return err
		}
		if _, ok := ty.(Base); !ok {
			return errNotWellFormed("proposition must have base type, got " + ty.String())
		}
		return nil
	case Implies:
		if err := RuleIsWF(mctx, cctx, fctx, r.P); err != nil {
			return err
		}
		return RuleIsWF(mctx, cctx, fctx, r.Q)
	case All:
		return RuleIsWF(mctx, cctx, append([]Ty{r.S}, fctx...), r.P)
	default:
		panic("kernel: unknown Rule implementation")
	}
}

// PrintRule renders a rule for diagnostics.
func PrintRule(r Rule) string {
	switch r := r.(type) {
	case Proves:
		return PrintTerm(r.P)
	case Implies:
		left := PrintRule(r.P)
		if _, ok := r.P.(Implies); ok {
			left = "(" + left + ")"
		}
		return left + " => " + PrintRule(r.Q)
	case All:
		return "!! " + r.Name + " : " + r.S.String() + ", " + PrintRule(r.P)
	default:
		return "<rule>"
	}
}
