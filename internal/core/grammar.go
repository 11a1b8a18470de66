package core

import "github.com/minihol/minihol/internal/syntax"

// defaultGrammar builds the fixed grammar: command, notation, rule, term,
// ty, tactic, and applyArg, exactly as the BNF states it. User
// `notation` commands extend only the `term` nonterminal afterward.
func defaultGrammar() syntax.Table {
	tbl := syntax.Table{}

	tbl["ty"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{syntax.Symbol("("), syntax.Recurse("ty", 0), syntax.Symbol(")")}},
		{Descr: []syntax.ParserDescr{syntax.Ident_()}},
		{Prec: 30, Descr: []syntax.ParserDescr{syntax.Recurse("ty", 31), syntax.Symbol("->"), syntax.Recurse("ty", 30)}},
	}

	tbl["term"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{syntax.Symbol("("), syntax.Recurse("term", 0), syntax.Symbol(")")}},
		{Descr: []syntax.ParserDescr{syntax.Ident_()}},
		{Descr: []syntax.ParserDescr{
			syntax.Symbol("\\"), syntax.Ident_(), syntax.Symbol(":"), syntax.Recurse("ty", 0),
			syntax.Symbol(","), syntax.Recurse("term", 0),
		}},
		{Prec: 0, Descr: []syntax.ParserDescr{syntax.Recurse("term", 0), syntax.Recurse("term", 1)}},
	}

	tbl["rule"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{syntax.Symbol("("), syntax.Recurse("rule", 0), syntax.Symbol(")")}},
		{Descr: []syntax.ParserDescr{syntax.Recurse("term", 0)}},
		{Descr: []syntax.ParserDescr{
			syntax.Symbol("!!"), syntax.Many1(syntax.Ident_()), syntax.Symbol(":"), syntax.Recurse("ty", 0),
			syntax.Symbol(","), syntax.Recurse("rule", 0),
		}},
		{Prec: 30, Descr: []syntax.ParserDescr{syntax.Recurse("rule", 31), syntax.Symbol("=>"), syntax.Recurse("rule", 30)}},
	}

	tbl["applyArg"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{syntax.Ident_()}},
		{Descr: []syntax.ParserDescr{syntax.Recurse("term", 61)}},
	}

	tbl["tactic"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{syntax.Symbol("assum")}},
		{Descr: []syntax.ParserDescr{syntax.Symbol("intro"), syntax.Many1(syntax.Ident_())}},
		{Descr: []syntax.ParserDescr{syntax.Symbol("apply"), syntax.Ident_(), syntax.Many(syntax.Recurse("applyArg", 0))}},
		{Descr: []syntax.ParserDescr{
			syntax.Symbol("have"), syntax.Ident_(), syntax.Symbol(":"), syntax.Recurse("rule", 0),
		}},
	}

	tbl["notation"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{syntax.Str_()}},
		{Descr: []syntax.ParserDescr{syntax.Recurse("ty", 0), syntax.Symbol(":"), syntax.Num_()}},
	}

	tbl["command"] = []syntax.Rule{
		{Descr: []syntax.ParserDescr{
			syntax.Symbol("notation"), syntax.Symbol(":"), syntax.Num_(), syntax.Many1(syntax.Recurse("notation", 0)),
			syntax.Symbol(":"), syntax.Recurse("ty", 0), syntax.Symbol(":="), syntax.Ident_(),
		}},
		{Descr: []syntax.ParserDescr{
			syntax.Symbol("axiom"), syntax.Ident_(), syntax.Symbol(":"), syntax.Recurse("rule", 0),
		}},
		{Descr: []syntax.ParserDescr{
			syntax.Symbol("prove"), syntax.Ident_(), syntax.Symbol(":"), syntax.Recurse("rule", 0),
			syntax.Symbol("by"), syntax.Many(syntax.Recurse("tactic", 0)),
		}},
	}

	return tbl
}
