// Package core implements the global environment and command driver: a
// persistent State (grammar, trie, notations, constants, axioms) and
// the function that threads it through a script's commands one at a time.
package core

import (
	"github.com/google/uuid"

	"github.com/minihol/minihol/internal/config"
	"github.com/minihol/minihol/internal/elab"
	"github.com/minihol/minihol/internal/kernel"
	"github.com/minihol/minihol/internal/notation"
	"github.com/minihol/minihol/internal/syntax"
	"github.com/minihol/minihol/internal/trie"
)

// State is the persistent global environment: the grammar table and
// separator trie the parser reads, the notations and constants the
// elaborator resolves identifiers against, the axioms available to
// `apply`, and the shared metavariable context. SessionID is ambient
// bookkeeping only, never consulted by any kernel or tactic algorithm; it
// is surfaced in Run's debug log and the --debug CLI banner.
type State struct {
	Parsers   syntax.Table
	Trie      *trie.Trie
	Notations []notation.Notation
	Constants map[string]kernel.Ty
	Axioms    map[string]kernel.Rule
	// Theorems records the checked proof object behind every accepted
	// `prove` command, keyed by theorem name. The CLI does not print it.
	Theorems map[string]kernel.Proof
	MCtx     kernel.MCtx

	SessionID uuid.UUID
}

// New returns the default bootstrap environment: the fixed command/rule/
// term/ty/tactic/applyArg/notation grammar, no user constants or axioms yet
// declared.
func New() State {
	id, err := uuid.NewRandom()
	if err != nil {
		// uuid.NewRandom only fails if the system CSPRNG is unreadable; at
		// that point the process has bigger problems than a duplicate id.
		id = uuid.Nil
	}
	return State{
		Parsers:   defaultGrammar(),
		Trie:      trie.Empty.InsertAll(config.DefaultSeparators),
		Constants: map[string]kernel.Ty{},
		Axioms:    map[string]kernel.Rule{},
		Theorems:  map[string]kernel.Proof{},
		MCtx:      kernel.NewMCtx(),
		SessionID: id,
	}
}

// scope builds the elaborator Scope for top-level term/rule elaboration:
// no bound or free variables yet, just the registered notations.
func (s State) scope() elab.Scope {
	return elab.Scope{Notations: s.Notations}
}
