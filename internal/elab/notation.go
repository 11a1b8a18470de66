package elab

import (
	"github.com/minihol/minihol/internal/notation"
	"github.com/minihol/minihol/internal/syntax"
)

// NotationDescrs elaborates the `notation+` child list of a `notation`
// command: each element is either a bare string (a literal keyword) or
// `ty : num` (a term slot and the precedence it recurses at).
func NotationDescrs(stxs []syntax.Syntax) ([]notation.Descr, error) {
	descrs := make([]notation.Descr, len(stxs))
	for i, stx := range stxs {
		if stx.Kind != syntax.KindNode {
			return nil, errf("malformed notation element %v", stx)
		}
		if len(stx.Args) == 1 && stx.Args[0].Kind == syntax.KindStr {
			descrs[i] = notation.AtomDescr(stx.Args[0].Text)
			continue
		}
		if len(stx.Args) != 3 {
			return nil, errf("malformed notation element %v", stx)
		}
		ty, err := Ty(stx.Args[0])
		if err != nil {
			return nil, err
		}
		num := stx.Args[2]
		if num.Kind != syntax.KindNum {
			return nil, errf("expected precedence number in notation element %v", stx)
		}
		descrs[i] = notation.TermDescr(ty, num.Num)
	}
	return descrs, nil
}
