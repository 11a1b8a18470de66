// Package parser implements a generic Pratt-style parser: a
// precedence-climbing engine driven entirely by a runtime grammar table
// (internal/syntax.Table), with no nonterminal hardcoded into the engine
// itself.
package parser

import (
	"fmt"
	"strconv"

	"github.com/minihol/minihol/internal/lexer"
	"github.com/minihol/minihol/internal/syntax"
	"github.com/minihol/minihol/internal/token"
	"github.com/minihol/minihol/internal/trie"
)

// Failure is a parse failure: a human-readable reason and a fatal flag.
// Non-fatal failures are tried against sibling alternatives or terminate a
// many/many1 loop; fatal failures abort the enclosing Parse call and
// propagate to the caller unchanged.
type Failure struct {
	Reason string
	Fatal  bool
}

func (f *Failure) Error() string { return f.Reason }

func fail(format string, args ...any) *Failure {
	return &Failure{Reason: fmt.Sprintf(format, args...)}
}

func fatal(format string, args ...any) *Failure {
	return &Failure{Reason: fmt.Sprintf(format, args...), Fatal: true}
}

// Parse parses one value of nonterminal nt from s, requiring any infix
// continuation to have precedence at least minPrec, using the rules
// registered in tbl and the separator trie tr.
func Parse(tbl syntax.Table, tr *trie.Trie, nt string, minPrec int, s lexer.Stream) (syntax.Syntax, lexer.Stream, *Failure) {
	rules := tbl.Rules(nt)
	var prefixRules, infixRules []syntax.Rule
	for _, r := range rules {
		if r.IsInfix(nt) {
			infixRules = append(infixRules, r)
		} else {
			prefixRules = append(prefixRules, r)
		}
	}

	ruleStart := s.Index()
	var left syntax.Syntax
	var cur lexer.Stream
	var lastFailure *Failure
	matched := false

	for _, r := range prefixRules {
		args, next, failure := parseRuleBody(tbl, tr, r, 0, nil, ruleStart, s)
		if failure == nil {
			left = syntax.Node(nt, args...)
			cur = next
			matched = true
			break
		}
		if failure.Fatal {
			return syntax.Syntax{}, s, failure
		}
		lastFailure = failure
	}
	if !matched {
		if lastFailure == nil {
			lastFailure = fail("no rule matches %s", nt)
		}
		return syntax.Syntax{}, s, lastFailure
	}

	for {
		tok := cur.Peek(tr)
		if !tok.Valid() {
			break
		}
		var chosen *syntax.Rule
		for i := range infixRules {
			r := infixRules[i]
			if r.Prec < minPrec {
				continue
			}
			if matchesLookahead(r.Descr[1], tok) {
				chosen = &infixRules[i]
				break
			}
		}
		if chosen == nil {
			break
		}
		infixStart := cur.Index()
		args, next, failure := parseRuleBody(tbl, tr, *chosen, 1, []syntax.Syntax{left}, infixStart, cur)
		if failure != nil {
			if failure.Fatal {
				return syntax.Syntax{}, s, failure
			}
			break
		}
		left = syntax.Node(nt, args...)
		cur = next
	}
	return left, cur, nil
}

func matchesLookahead(d syntax.ParserDescr, tok token.Token) bool {
	if d.Kind == syntax.DescrSymbol {
		return tok.Text == d.Literal
	}
	return true
}

// parseRuleBody walks rule.Descr[startIdx:], appending each descriptor's
// parsed Syntax to args, applying the committed-choice rule: once the
// stream has advanced past ruleStart, any subsequent sub-parse failure is
// promoted to fatal.
func parseRuleBody(tbl syntax.Table, tr *trie.Trie, rule syntax.Rule, startIdx int, args []syntax.Syntax, ruleStart int, s lexer.Stream) ([]syntax.Syntax, lexer.Stream, *Failure) {
	cur := s
	for i := startIdx; i < len(rule.Descr); i++ {
		before := cur.Index()
		res, next, failure := parseArg(tbl, tr, rule.Descr[i], cur)
		if failure != nil {
			if failure.Fatal || before > ruleStart {
				return nil, cur, &Failure{Reason: failure.Reason, Fatal: true}
			}
			return nil, cur, failure
		}
		args = append(args, res)
		cur = next
	}
	return args, cur, nil
}

func parseArg(tbl syntax.Table, tr *trie.Trie, d syntax.ParserDescr, s lexer.Stream) (syntax.Syntax, lexer.Stream, *Failure) {
	switch d.Kind {
	case syntax.DescrSymbol:
		tok := s.Peek(tr)
		if tok.Valid() && tok.Text == d.Literal {
			return syntax.Atom(d.Literal), s.Next(tr), nil
		}
		return syntax.Syntax{}, s, fail("expected %q", d.Literal)

	case syntax.DescrIdent:
		tok := s.Peek(tr)
		if tok.Valid() && tok.Kind == token.Ident {
			return syntax.Ident(tok.Text), s.Next(tr), nil
		}
		return syntax.Syntax{}, s, fail("expected identifier")

	case syntax.DescrStr:
		tok := s.Peek(tr)
		if tok.Valid() && tok.Kind == token.Str {
			if lexer.UnterminatedString(tok.Text) {
				return syntax.Syntax{}, s, fatal("unterminated string literal")
			}
			return syntax.Str(lexer.DecodeString(tok.Text)), s.Next(tr), nil
		}
		return syntax.Syntax{}, s, fail("expected string literal")

	case syntax.DescrNum:
		tok := s.Peek(tr)
		if tok.Valid() && tok.Kind == token.Num {
			n, err := strconv.Atoi(tok.Text)
			if err != nil {
				return syntax.Syntax{}, s, fatal("invalid numeral %q", tok.Text)
			}
			return syntax.Num(n), s.Next(tr), nil
		}
		return syntax.Syntax{}, s, fail("expected number")

	case syntax.DescrRecurse:
		return Parse(tbl, tr, d.Nonterminal, d.MinPrec, s)

	case syntax.DescrMany:
		var items []syntax.Syntax
		cur := s
		for {
			res, next, failure := parseArg(tbl, tr, *d.Inner, cur)
			if failure != nil {
				if failure.Fatal {
					return syntax.Syntax{}, s, failure
				}
				break
			}
			items = append(items, res)
			cur = next
		}
		return syntax.Node("many", items...), cur, nil

	case syntax.DescrMany1:
		first, next, failure := parseArg(tbl, tr, *d.Inner, s)
		if failure != nil {
			return syntax.Syntax{}, s, failure
		}
		items := []syntax.Syntax{first}
		cur := next
		for {
			res, next2, failure := parseArg(tbl, tr, *d.Inner, cur)
			if failure != nil {
				if failure.Fatal {
					return syntax.Syntax{}, s, failure
				}
				break
			}
			items = append(items, res)
			cur = next2
		}
		return syntax.Node("many", items...), cur, nil

	default:
		return syntax.Syntax{}, s, fatal("unknown parser descriptor")
	}
}
