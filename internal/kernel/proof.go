package kernel

// Proof is the kernel's proof-term ADT.
type Proof interface {
	isProof()
}

// Hole is an unfilled placeholder, resolved by InstHole before Check.
type Hole struct{ Name string }

func (Hole) isProof() {}

// Ax refers to a named axiom.
type Ax struct{ Name string }

func (Ax) isProof() {}

// Hyp indexes the goal's hypothesis context (0 is innermost).
type Hyp struct{ Idx int }

func (Hyp) isProof() {}

// ImpI discharges assumption P to prove P ⇒ Q.
type ImpI struct {
	P  Rule
	Hq Proof
}

func (ImpI) isProof() {}

// ImpE is implication elimination (modus ponens).
type ImpE struct {
	Hpq, Hp Proof
}

func (ImpE) isProof() {}

// AllI introduces a universal by extending the free-variable context.
type AllI struct {
	Name string
	S    Ty
	H    Proof
}

func (AllI) isProof() {}

// AllE eliminates a universal by instantiating it with term T.
type AllE struct {
	H Proof
	T Term
}

func (AllE) isProof() {}

// Check verifies proof p under axioms ax, constants cctx, hypothesis
// context ctx, and free-variable context fctx, returning the Rule it
// proves. It threads mctx through def-eq checks (impE requires the
// argument's type to be definitionally equal to the expected assumption,
// which may assign metavariables still present in p).
func Check(mctx MCtx, cctx map[string]Ty, ax map[string]Rule, ctx []Rule, fctx []Ty, p Proof) (Rule, MCtx, error) {
	switch p := p.(type) {
	case Hole:
		return nil, mctx, errHoleInProof()

	case Ax:
		r, ok := ax[p.Name]
		if !ok {
			return nil, mctx, errUnknownAxiom(p.Name)
		}
		return r, mctx, nil

	case Hyp:
		if p.Idx < 0 || p.Idx >= len(ctx) {
			return nil, mctx, errInvalidIndex("hypothesis", p.Idx, len(ctx))
		}
		return ctx[p.Idx], mctx, nil

	case ImpI:
		q, mctx2, err := Check(mctx, cctx, ax, append([]Rule{p.P}, ctx...), fctx, p.Hq)
		if err != nil {
			return nil, mctx, err
		}
		return Implies{P: p.P, Q: q}, mctx2, nil

	case ImpE:
		rpq, mctx2, err := Check(mctx, cctx, ax, ctx, fctx, p.Hpq)
		if err != nil {
			return nil, mctx, err
		}
		impl, ok := rpq.(Implies)
		if !ok {
			return nil, mctx, errNotImplies(rpq)
		}
		rp, mctx3, err := Check(mctx2, cctx, ax, ctx, fctx, p.Hp)
		if err != nil {
			return nil, mctx, err
		}
		mctx4, ok := RuleIsDefEq(mctx3, rp, impl.P)
		if !ok {
			return nil, mctx, errNotDefEq(rp, impl.P)
		}
		return impl.Q, mctx4, nil

	case AllI:
		p2, mctx2, err := Check(mctx, cctx, ax, ctx, append([]Ty{p.S}, fctx...), p.H)
		if err != nil {
			return nil, mctx, err
		}
		return All{Name: p.Name, S: p.S, P: p2}, mctx2, nil

	case AllE:
		rAll, mctx2, err := Check(mctx, cctx, ax, ctx, fctx, p.H)
		if err != nil {
			return nil, mctx, err
		}
		all, ok := rAll.(All)
		if !ok {
			return nil, mctx, errNotAll(rAll)
		}
		ty, err := InferType(mctx2, cctx, fctx, nil, p.T)
		if err != nil {
			return nil, mctx, err
		}
		if !EqTy(ty, all.S) {
			return nil, mctx, errTypeMismatch(ty, all.S)
		}
		return RuleSubstF(all.P, p.T, 0), mctx2, nil

	default:
		panic("kernel: unknown Proof implementation")
	}
}

// InstHole recursively replaces Hole(name) leaves with proofs[name],
// continuing through the substituted proof in case it is itself an
// as-yet-unresolved hole, until no further substitution applies.
func InstHole(p Proof, proofs map[string]Proof) Proof {
	switch p := p.(type) {
	case Hole:
		if sub, ok := proofs[p.Name]; ok {
			return InstHole(sub, proofs)
		}
		return p
	case Ax, Hyp:
		return p
	case ImpI:
		return ImpI{P: p.P, Hq: InstHole(p.Hq, proofs)}
	case ImpE:
		return ImpE{Hpq: InstHole(p.Hpq, proofs), Hp: InstHole(p.Hp, proofs)}
	case AllI:
		return AllI{Name: p.Name, S: p.S, H: InstHole(p.H, proofs)}
	case AllE:
		return AllE{H: InstHole(p.H, proofs), T: p.T}
	default:
		panic("kernel: unknown Proof implementation")
	}
}
