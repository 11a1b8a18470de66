package notation

import (
	"testing"

	"github.com/minihol/minihol/internal/kernel"
	"github.com/minihol/minihol/internal/syntax"
)

var prop = kernel.Base{Name: "Prop"}

func ifNotation() Notation {
	return New("ifThenElse", 10, prop, []Descr{
		AtomDescr("if"),
		TermDescr(prop, 11),
		AtomDescr("then"),
		TermDescr(prop, 11),
		AtomDescr("else"),
		TermDescr(prop, 10),
	})
}

func TestParserRule(t *testing.T) {
	n := ifNotation()
	rule := n.ParserRule()
	if rule.Prec != 10 {
		t.Errorf("ParserRule().Prec = %d, want 10", rule.Prec)
	}
	if len(rule.Descr) != 6 {
		t.Fatalf("ParserRule().Descr has %d elements, want 6", len(rule.Descr))
	}
}

func TestKeywords(t *testing.T) {
	kws := ifNotation().Keywords()
	want := []string{"if", "then", "else"}
	if len(kws) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", kws, want)
	}
	for i, w := range want {
		if kws[i] != w {
			t.Errorf("Keywords()[%d] = %q, want %q", i, kws[i], w)
		}
	}
}

func TestConstType(t *testing.T) {
	ty := ifNotation().ConstType()
	arrow1, ok := ty.(kernel.Arrow)
	if !ok {
		t.Fatalf("ConstType() = %v, want Arrow chain", ty)
	}
	if !kernel.EqTy(arrow1.Left, prop) {
		t.Errorf("first slot type = %v, want Prop", arrow1.Left)
	}
	arrow2, ok := arrow1.Right.(kernel.Arrow)
	if !ok {
		t.Fatalf("expected a second Arrow, got %v", arrow1.Right)
	}
	arrow3, ok := arrow2.Right.(kernel.Arrow)
	if !ok {
		t.Fatalf("expected a third Arrow, got %v", arrow2.Right)
	}
	if !kernel.EqTy(arrow3.Right, prop) {
		t.Errorf("final result type = %v, want Prop", arrow3.Right)
	}
}

func TestConstTypeNoSlotsIsBaseTy(t *testing.T) {
	n := New("truth", 0, prop, []Descr{AtomDescr("true")})
	if !kernel.EqTy(n.ConstType(), prop) {
		t.Errorf("ConstType() with no term slots = %v, want Prop", n.ConstType())
	}
}

func TestMatchSucceeds(t *testing.T) {
	n := ifNotation()
	stx := syntax.Node("term",
		syntax.Atom("if"),
		syntax.Ident("a"),
		syntax.Atom("then"),
		syntax.Ident("b"),
		syntax.Atom("else"),
		syntax.Ident("c"),
	)
	slots, ok := n.Match(stx)
	if !ok {
		t.Fatalf("Match failed on a well-formed if-then-else node")
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	if slots[0].Text != "a" || slots[1].Text != "b" || slots[2].Text != "c" {
		t.Errorf("slots = %v, want [a b c]", slots)
	}
}

func TestMatchRejectsWrongArity(t *testing.T) {
	n := ifNotation()
	stx := syntax.Node("term", syntax.Ident("a"))
	if _, ok := n.Match(stx); ok {
		t.Errorf("Match should reject a node with the wrong arity")
	}
}

func TestMatchRejectsMismatchedAtom(t *testing.T) {
	n := ifNotation()
	stx := syntax.Node("term",
		syntax.Atom("unless"),
		syntax.Ident("a"),
		syntax.Atom("then"),
		syntax.Ident("b"),
		syntax.Atom("else"),
		syntax.Ident("c"),
	)
	if _, ok := n.Match(stx); ok {
		t.Errorf("Match should reject a node whose atom doesn't match the descriptor's literal")
	}
}
