package core

import (
	"io"
	"log/slog"

	"github.com/minihol/minihol/internal/lexer"
	"github.com/minihol/minihol/internal/parser"
)

// discardLogger is used whenever Run is called with a nil logger, so
// elabCommand's Debug calls never need a nil check of their own.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Run is the command driver: it iterates `command` parses over text,
// elaborating each into an updated State, and returns the final State
// alongside a single status message ("all good" on success, or the first
// failure reason otherwise).
func Run(s State, text string, logger *slog.Logger) (State, string) {
	if logger == nil {
		logger = discardLogger()
	}
	logger.Debug("run", "session", s.SessionID)
	stream := lexer.New(text)

	for {
		if stream.AtEnd() {
			return s, "all good"
		}

		stx, next, failure := parser.Parse(s.Parsers, s.Trie, "command", 0, stream)
		if failure != nil {
			if failure.Fatal || !stream.AtEnd() {
				logger.Debug("parse failed", "reason", failure.Reason, "fatal", failure.Fatal)
				return s, failure.Reason
			}
			return s, "all good"
		}

		ns, err := elabCommand(s, stx, logger)
		if err != nil {
			logger.Debug("elaboration failed", "error", err.Error())
			return s, errMessage(err)
		}
		s = ns
		stream = next
	}
}

// errMessage renders a driver-surfaced error: tactic.Error implementations
// carry a user-facing Message() distinct from Error() (which mirrors it for
// the error interface but Message() is what gets shown to the end user).
func errMessage(err error) string {
	if te, ok := err.(tacticError); ok {
		return te.Message()
	}
	return err.Error()
}

type tacticError interface {
	Message() string
}
