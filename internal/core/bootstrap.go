package core

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/minihol/minihol/internal/config"
)

// ApplyPrelude extends s with the notations and axioms of p by rendering
// each declaration back into command source text and feeding it through Run,
// so a bootstrap file is elaborated by exactly the same path as a script's
// own `notation`/`axiom` commands. p.Types is documentation only: minihol's
// base types (kernel.Base) never require declaration before use.
func ApplyPrelude(s State, p *config.Prelude, logger *slog.Logger) (State, error) {
	if p == nil {
		return s, nil
	}
	var src strings.Builder
	for _, n := range p.Notations {
		src.WriteString(renderNotation(n))
		src.WriteString("\n")
	}
	for _, a := range p.Axioms {
		fmt.Fprintf(&src, "axiom %s : %s\n", a.Name, a.Source)
	}

	next, msg := Run(s, src.String(), logger)
	if msg != "all good" {
		return s, fmt.Errorf("bootstrap prelude: %s", msg)
	}
	return next, nil
}

func renderNotation(n config.NotationSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "notation : %d", n.Prec)
	for _, d := range n.Descrs {
		if d.Atom != "" {
			fmt.Fprintf(&b, " %s", strconv.Quote(d.Atom))
		} else {
			fmt.Fprintf(&b, " %s : %d", d.Ty, d.Prec)
		}
	}
	fmt.Fprintf(&b, " : %s := %s", n.BaseTy, n.Name)
	return b.String()
}
