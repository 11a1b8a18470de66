package lexer

import (
	"testing"

	"github.com/minihol/minihol/internal/token"
	"github.com/minihol/minihol/internal/trie"
)

var testTrie = trie.Empty.InsertAll([]string{"(", ")", "->", "\\", ":", ",", "!!", "=>", ":=", "assum"})

func TestPeekKinds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind token.Kind
		wantText string
	}{
		{"ident", "foo", token.Ident, "foo"},
		{"number", "42", token.Num, "42"},
		{"string", `"hi"`, token.Str, `"hi"`},
		{"separator arrow", "->", token.Separator, "->"},
		{"separator longest match over colon", ":=x", token.Separator, ":="},
		{"separator keyword", "assum x", token.Separator, "assum"},
		{"ident stops at separator", "foo->bar", token.Ident, "foo"},
		{"empty input", "", token.Invalid, ""},
		{"whitespace only", "   ", token.Invalid, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.text)
			got := s.Peek(testTrie)
			if got.Kind != tt.wantKind {
				t.Errorf("Peek(%q).Kind = %v, want %v", tt.text, got.Kind, tt.wantKind)
			}
			if got.Valid() && got.Text != tt.wantText {
				t.Errorf("Peek(%q).Text = %q, want %q", tt.text, got.Text, tt.wantText)
			}
		})
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	s := New("foo bar")
	first := s.Peek(testTrie)
	second := s.Peek(testTrie)
	if first != second {
		t.Errorf("Peek is not idempotent: %v != %v", first, second)
	}
}

func TestNextAdvancesPastWhitespace(t *testing.T) {
	s := New("  foo   bar")
	s = s.Next(testTrie)
	tok := s.Peek(testTrie)
	if tok.Text != "bar" {
		t.Errorf("Peek after Next = %q, want %q", tok.Text, "bar")
	}
}

func TestNextAtEndIsNoop(t *testing.T) {
	s := New("")
	next := s.Next(testTrie)
	if next != s {
		t.Errorf("Next at end of input should return the stream unchanged")
	}
}

func TestAtEnd(t *testing.T) {
	if !New("   ").AtEnd() {
		t.Errorf("whitespace-only stream should be at end")
	}
	if New("x").AtEnd() {
		t.Errorf("non-empty stream should not be at end")
	}
}

func TestUnterminatedString(t *testing.T) {
	s := New(`"abc`)
	tok := s.Peek(testTrie)
	if !UnterminatedString(tok.Text) {
		t.Errorf("expected %q to be reported unterminated", tok.Text)
	}
	s2 := New(`"abc"`)
	tok2 := s2.Peek(testTrie)
	if UnterminatedString(tok2.Text) {
		t.Errorf("expected %q to be reported terminated", tok2.Text)
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `"abc"`, "abc"},
		{"newline escape", `"a\nb"`, "a\nb"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"trailing backslash at input end", `"a\`, "a\\"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeString(tt.raw); got != tt.want {
				t.Errorf("DecodeString(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
