// Package trie implements the separator trie used by the lexer to recognize
// multi-character operators and keywords by longest match.
package trie

// Trie is an immutable trie over runes. Each node marks whether the path
// reaching it spells a complete inserted word. Insert never mutates the
// receiver; it returns a new root sharing untouched subtries with the old
// one, so a Trie can be extended at runtime (e.g. by a new notation) without
// invalidating trie values other parts of the program still hold.
type Trie struct {
	children map[rune]*Trie
	end      bool
}

// Empty is the trie with no words inserted.
var Empty = &Trie{}

// Insert returns a new trie containing word in addition to everything t
// already contains. Inserting the empty string is a no-op.
func (t *Trie) Insert(word string) *Trie {
	if word == "" {
		return t
	}
	if t == nil {
		t = Empty
	}
	runes := []rune(word)
	return t.insert(runes)
}

func (t *Trie) insert(runes []rune) *Trie {
	next := &Trie{children: make(map[rune]*Trie, len(t.children)+1), end: t.end}
	for r, child := range t.children {
		next.children[r] = child
	}
	if len(runes) == 0 {
		next.end = true
		return next
	}
	r := runes[0]
	child := next.children[r]
	if child == nil {
		child = Empty
	}
	next.children[r] = child.insert(runes[1:])
	return next
}

// InsertAll inserts every word in words, in order, returning the resulting
// trie. The result is independent of the order words are given in.
func (t *Trie) InsertAll(words []string) *Trie {
	for _, w := range words {
		t = t.Insert(w)
	}
	return t
}

// Has reports whether word was inserted into t (as a complete word, not
// merely as a prefix of some longer inserted word).
func (t *Trie) Has(word string) bool {
	if t == nil {
		return false
	}
	node := t
	for _, r := range word {
		if node.children == nil {
			return false
		}
		child, ok := node.children[r]
		if !ok {
			return false
		}
		node = child
	}
	return node.end
}

// MatchLongest walks text starting at byte offset start, following the
// longest path through t that stays marked as a word, and returns the byte
// length of the longest such prefix of text[start:]. It returns 0 if no
// inserted word prefixes text[start:].
func (t *Trie) MatchLongest(text string, start int) int {
	if t == nil {
		return 0
	}
	node := t
	best := 0
	pos := start
	runes := []rune(text[start:])
	for _, r := range runes {
		if node.children == nil {
			break
		}
		child, ok := node.children[r]
		if !ok {
			break
		}
		node = child
		pos += len(string(r))
		if node.end {
			best = pos - start
		}
	}
	return best
}
