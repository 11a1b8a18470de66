// Package syntax defines the output of the parser and the data-driven
// grammar table the Pratt parser (internal/parser) walks.
package syntax

import "fmt"

// Kind tags a Syntax value.
type Kind int

const (
	KindIdent Kind = iota
	KindAtom
	KindStr
	KindNum
	KindNode
)

// Syntax is the parser's output tree: either a leaf (identifier, matched
// literal, string, or number) or a node tagged by a nonterminal name
// carrying an ordered sequence of children.
type Syntax struct {
	Kind Kind
	// Text holds the lexeme for Ident/Atom and, for Str, the literal's
	// contents with quotes removed and escapes already decoded by the
	// parser. Num values are held in Num, not Text.
	Text string
	Num  int
	// Type is the nonterminal name for a KindNode value.
	Type string
	Args []Syntax
}

func Ident(text string) Syntax { return Syntax{Kind: KindIdent, Text: text} }
func Atom(text string) Syntax  { return Syntax{Kind: KindAtom, Text: text} }
func Str(text string) Syntax   { return Syntax{Kind: KindStr, Text: text} }
func Num(n int) Syntax         { return Syntax{Kind: KindNum, Num: n} }
func Node(typ string, args ...Syntax) Syntax {
	return Syntax{Kind: KindNode, Type: typ, Args: args}
}

func (s Syntax) String() string {
	switch s.Kind {
	case KindIdent:
		return s.Text
	case KindAtom:
		return s.Text
	case KindStr:
		return s.Text
	case KindNum:
		return fmt.Sprintf("%d", s.Num)
	default:
		return fmt.Sprintf("%s%v", s.Type, s.Args)
	}
}

// DescrKind tags a ParserDescr.
type DescrKind int

const (
	DescrRecurse DescrKind = iota
	DescrIdent
	DescrStr
	DescrNum
	DescrSymbol
	DescrMany
	DescrMany1
)

// ParserDescr is one element of a grammar rule's body.
type ParserDescr struct {
	Kind DescrKind

	// DescrRecurse
	Nonterminal string
	MinPrec     int

	// DescrSymbol
	Literal string

	// DescrMany / DescrMany1
	Inner *ParserDescr
}

func Recurse(nonterminal string, minPrec int) ParserDescr {
	return ParserDescr{Kind: DescrRecurse, Nonterminal: nonterminal, MinPrec: minPrec}
}
func Ident_() ParserDescr { return ParserDescr{Kind: DescrIdent} }
func Str_() ParserDescr   { return ParserDescr{Kind: DescrStr} }
func Num_() ParserDescr   { return ParserDescr{Kind: DescrNum} }
func Symbol(lit string) ParserDescr {
	return ParserDescr{Kind: DescrSymbol, Literal: lit}
}
func Many(inner ParserDescr) ParserDescr {
	return ParserDescr{Kind: DescrMany, Inner: &inner}
}
func Many1(inner ParserDescr) ParserDescr {
	return ParserDescr{Kind: DescrMany1, Inner: &inner}
}

// Rule is one grammar production for a nonterminal: a precedence and an
// ordered sequence of descriptors.
type Rule struct {
	Prec  int
	Descr []ParserDescr
}

// IsInfix reports whether r is an infix/postfix rule for nonterminal nt:
// its first descriptor recurses into nt itself.
func (r Rule) IsInfix(nt string) bool {
	if len(r.Descr) == 0 {
		return false
	}
	d := r.Descr[0]
	return d.Kind == DescrRecurse && d.Nonterminal == nt
}

// Table is the grammar: an ordered list of rules per nonterminal. Table
// values are treated as persistent: Insert returns a new Table rather than
// mutating the receiver, so a notation extension can hand the caller a
// fresh CoreState without invalidating any previously observed Table
// value.
type Table map[string][]Rule

// Insert returns a new Table with rule added to nonterminal nt, inserted so
// that rules for nt remain sorted by descending precedence, ties broken by
// original insertion order.
func (t Table) Insert(nt string, rule Rule) Table {
	next := make(Table, len(t)+1)
	for k, v := range t {
		cp := make([]Rule, len(v))
		copy(cp, v)
		next[k] = cp
	}
	rules := next[nt]
	pos := len(rules)
	for i, r := range rules {
		if rule.Prec > r.Prec {
			pos = i
			break
		}
	}
	rules = append(rules, Rule{})
	copy(rules[pos+1:], rules[pos:])
	rules[pos] = rule
	next[nt] = rules
	return next
}

// Rules returns the rules registered for nonterminal nt, or nil.
func (t Table) Rules(nt string) []Rule {
	return t[nt]
}
