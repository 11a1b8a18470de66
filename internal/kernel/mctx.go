package kernel

import "strconv"

// MCtx is the metavariable context: a write-once assignment map, the
// declared type of each metavariable, and a shared fresh-name counter.
// Values are persistent: every method returns a new MCtx rather than
// mutating the receiver.
type MCtx struct {
	assign  map[string]Term
	types   map[string]Ty
	counter int
}

// NewMCtx returns the empty metavariable context.
func NewMCtx() MCtx {
	return MCtx{}
}

// Lookup returns the term assigned to metavariable name, if any.
func (m MCtx) Lookup(name string) (Term, bool) {
	v, ok := m.assign[name]
	return v, ok
}

// TypeOf returns the declared type of metavariable name, if it has been
// minted via Fresh.
func (m MCtx) TypeOf(name string) (Ty, bool) {
	ty, ok := m.types[name]
	return ty, ok
}

// Assign returns a new MCtx with name bound to t. Callers must have already
// performed the occurs check; Assign itself never reassigns a name that
// already has a binding (a no-op copy is returned instead, since the
// kernel's invariant is that this path is never taken twice for the same
// name in a well-formed tactic script).
func (m MCtx) Assign(name string, t Term) MCtx {
	if _, ok := m.assign[name]; ok {
		return m
	}
	next := m.clone()
	next.assign[name] = t
	return next
}

// Fresh mints a new metavariable name of declared type ty, sharing the
// counter with hole-id minting in the tactic engine so meta and hole names
// never collide.
func (m MCtx) Fresh(ty Ty) (MCtx, string) {
	next := m.clone()
	next.counter++
	name := "m" + strconv.Itoa(next.counter)
	if next.types == nil {
		next.types = make(map[string]Ty)
	}
	next.types[name] = ty
	return next, name
}

// FreshName mints a name from the shared counter without declaring a
// metavariable type, used by the tactic engine to mint hole ids.
func (m MCtx) FreshName() (MCtx, string) {
	next := m.clone()
	next.counter++
	return next, "h" + strconv.Itoa(next.counter)
}

func (m MCtx) clone() MCtx {
	next := MCtx{counter: m.counter}
	next.assign = make(map[string]Term, len(m.assign))
	for k, v := range m.assign {
		next.assign[k] = v
	}
	next.types = make(map[string]Ty, len(m.types))
	for k, v := range m.types {
		next.types[k] = v
	}
	return next
}
