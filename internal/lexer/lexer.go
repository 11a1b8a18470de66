// Package lexer implements the immutable token stream: a cursor over
// source text that, together with a separator trie, produces the next
// token without mutating any shared state.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/minihol/minihol/internal/token"
	"github.com/minihol/minihol/internal/trie"
)

// Stream is an immutable (text, index) pair. Peek and Next never mutate the
// receiver; Next returns a new Stream positioned past the token Peek would
// return for the same trie.
type Stream struct {
	text  string
	index int
}

// New returns a stream positioned at the start of text.
func New(text string) Stream {
	return Stream{text: text, index: 0}
}

// Index returns the current byte offset into the source text.
func (s Stream) Index() int {
	return s.index
}

// AtEnd reports whether the stream (after skipping whitespace) has no more
// input, independent of any trie.
func (s Stream) AtEnd() bool {
	return skipSpace(s.text, s.index) >= len(s.text)
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, w := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += w
	}
	return i
}

// Peek returns the next token under t's separator trie, or the zero Token
// (Valid() == false) at end of input.
func (s Stream) Peek(t *trie.Trie) token.Token {
	i := skipSpace(s.text, s.index)
	if i >= len(s.text) {
		return token.Token{}
	}

	ch := s.text[i]

	// Rule 2: string literal.
	if ch == '"' {
		j := i + 1
		for j < len(s.text) {
			if s.text[j] == '\\' {
				// An escape unconditionally consumes the next byte, decoded
				// later by the parser's str descriptor.
				if j+1 < len(s.text) {
					j += 2
				} else {
					j++
				}
				continue
			}
			if s.text[j] == '"' {
				j++
				return token.Token{Kind: token.Str, Text: s.text[i:j], Pos: i}
			}
			j++
		}
		// Unterminated: return what was read; decoding fails later.
		return token.Token{Kind: token.Str, Text: s.text[i:j], Pos: i}
	}

	// Rule 3: numeric literal.
	if isDigit(ch) {
		j := i
		for j < len(s.text) && isDigit(s.text[j]) {
			j++
		}
		return token.Token{Kind: token.Num, Text: s.text[i:j], Pos: i}
	}

	// Rule 4: longest separator match.
	if n := t.MatchLongest(s.text, i); n > 0 {
		return token.Token{Kind: token.Separator, Text: s.text[i : i+n], Pos: i}
	}

	// Rule 5: identifier — runs until whitespace or a position where the
	// trie would start matching a separator.
	j := i
	for j < len(s.text) {
		r, w := utf8.DecodeRuneInString(s.text[j:])
		if unicode.IsSpace(r) {
			break
		}
		if t.MatchLongest(s.text, j) > 0 {
			break
		}
		j += w
	}
	if j == i {
		// Never stall: a position that matches neither whitespace nor the
		// trie at i always yields at least one rune of identifier.
		_, w := utf8.DecodeRuneInString(s.text[i:])
		j = i + w
	}
	return token.Token{Kind: token.Ident, Text: s.text[i:j], Pos: i}
}

// Next returns the stream advanced past the token Peek(t) would return. If
// the stream is at end of input, Next returns s unchanged.
func (s Stream) Next(t *trie.Trie) Stream {
	tok := s.Peek(t)
	if !tok.Valid() {
		return s
	}
	return Stream{text: s.text, index: tok.Pos + len(tok.Text)}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// UnterminatedString reports whether raw (a token.Str token's Text, as
// produced by Peek) reached end of input without a closing quote. It
// rescans raw with the same escape rule Peek uses, so a literal whose last
// byte is an escaped quote counts as unterminated.
func UnterminatedString(raw string) bool {
	if len(raw) < 2 {
		return true
	}
	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			return i != len(raw)-1
		}
	}
	return true
}

// DecodeString decodes a raw string-literal token (including its
// surrounding quotes, as produced by Peek) per the standard backslash
// escapes: \n \t \r \" \\, and any other backslash passes its next byte
// through unchanged. Callers (the parser's str descriptor) treat an
// unterminated literal as a fatal parse error before calling this.
func DecodeString(raw string) string {
	inner := raw
	if strings.HasPrefix(inner, "\"") {
		inner = inner[1:]
	}
	if strings.HasSuffix(inner, "\"") {
		inner = inner[:len(inner)-1]
	}
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] != '\\' || i+1 >= len(inner) {
			b.WriteByte(inner[i])
			continue
		}
		i++
		switch inner[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(inner[i])
		}
	}
	return b.String()
}
