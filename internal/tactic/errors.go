// Package tactic implements the incremental proof engine: an open-goal
// proof state and the assumption/intro/apply/have tactics that act on it.
package tactic

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/minihol/minihol/internal/kernel"
)

// Error is the typed tactic-error taxonomy. Tactics never catch these; they
// surface to the command driver as-is.
type Error interface {
	error
	Message() string
}

// NoGoalsError is raised when a tactic runs against an empty goal list.
type NoGoalsError struct{}

func (NoGoalsError) Error() string   { return "no goals" }
func (NoGoalsError) Message() string { return "no goals remain to apply a tactic to" }

// AssumptionError is raised when `assumption` finds no matching hypothesis.
type AssumptionError struct {
	Target kernel.Rule
}

func (e AssumptionError) Error() string { return e.Message() }
func (e AssumptionError) Message() string {
	return fmt.Sprintf("no hypothesis proves %s", kernel.PrintRule(e.Target))
}

// IntroError is raised when `intro` targets a rule that is neither an
// implication nor a universal.
type IntroError struct {
	Target kernel.Rule
}

func (e IntroError) Error() string { return e.Message() }
func (e IntroError) Message() string {
	return fmt.Sprintf("cannot intro: goal %s is not an implication or a universal", kernel.PrintRule(e.Target))
}

// UnknownIdError is raised when `apply` references a name that is neither a
// hypothesis, a free variable, a constant, nor an axiom in the relevant
// position.
type UnknownIdError struct {
	Name string
}

func (e UnknownIdError) Error() string   { return e.Message() }
func (e UnknownIdError) Message() string { return fmt.Sprintf("unknown identifier: %s", e.Name) }

// NotDefEqError is raised when two rules that `apply` requires to match are
// not definitionally equal.
type NotDefEqError struct {
	Lhs, Rhs kernel.Rule
}

func (e NotDefEqError) Error() string { return e.Message() }
func (e NotDefEqError) Message() string {
	return fmt.Sprintf("not definitionally equal: %s vs %s", kernel.PrintRule(e.Lhs), kernel.PrintRule(e.Rhs))
}

// TypeMismatchError is raised when a term argument to `apply` does not have
// the expected type.
type TypeMismatchError struct {
	Term          kernel.Term
	Have, Expected kernel.Ty
}

func (e TypeMismatchError) Error() string { return e.Message() }
func (e TypeMismatchError) Message() string {
	return fmt.Sprintf("term %s has type %s, expected %s", kernel.PrintTerm(e.Term), e.Have, e.Expected)
}

// ApplyExcessArgumentError is raised when `apply` is given more arguments
// than the resolved rule can consume.
type ApplyExcessArgumentError struct{}

func (ApplyExcessArgumentError) Error() string   { return "excess argument to apply" }
func (ApplyExcessArgumentError) Message() string { return "apply given more arguments than the rule accepts" }

// NotApplicableError is raised when `apply` is given a term argument
// against a rule that is not a universal.
type NotApplicableError struct {
	Target kernel.Rule
}

func (e NotApplicableError) Error() string { return e.Message() }
func (e NotApplicableError) Message() string {
	return fmt.Sprintf("cannot apply a term argument to %s", kernel.PrintRule(e.Target))
}

// UnsolvedGoalsError is raised by the command driver when a `prove` script
// runs out of tactics with goals still open.
type UnsolvedGoalsError struct {
	Goals []Goal
}

func (e UnsolvedGoalsError) Error() string { return e.Message() }
func (e UnsolvedGoalsError) Message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d unsolved goal(s):\n", len(e.Goals))
	for i, g := range e.Goals {
		fmt.Fprintf(&b, "  %s goal: %s\n", humanize.Ordinal(i+1), kernel.PrintRule(g.Target))
		for _, fv := range g.FCtx {
			fmt.Fprintf(&b, "    free %s : %s\n", fv.Name, fv.S)
		}
		for _, h := range g.Ctx {
			fmt.Fprintf(&b, "    hyp %s : %s\n", h.Name, kernel.PrintRule(h.R))
		}
	}
	return b.String()
}
