package datastructures

import "sort"

// Trie is a set of strings organized by shared prefixes. It supports exact
// membership tests and prefix queries (autocomplete). The zero value is not
// usable; create instances with NewTrie.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[rune]*trieNode

	// terminal marks the end of an inserted word
	terminal bool

	// count is the number of inserted words in this subtree
	count int
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// NewTrie creates a trie containing the given words.
func NewTrie(words ...string) *Trie {
	t := &Trie{root: newTrieNode()}
	for _, word := range words {
		t.Insert(word)
	}
	return t
}

// Insert adds a word to the trie. Inserting a word that is already present
// is a no-op.
func (t *Trie) Insert(word string) {
	if t.Contains(word) {
		return
	}
	node := t.root
	node.count++
	for _, r := range word {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
		node.count++
	}
	node.terminal = true
	t.size++
}

// Contains reports whether the exact word was inserted.
func (t *Trie) Contains(word string) bool {
	node := t.walk(word)
	return node != nil && node.terminal
}

// CountPrefix returns the number of inserted words starting with prefix.
func (t *Trie) CountPrefix(prefix string) int {
	node := t.walk(prefix)
	if node == nil {
		return 0
	}
	return node.count
}

// WithPrefix returns all inserted words starting with prefix, sorted.
func (t *Trie) WithPrefix(prefix string) []string {
	node := t.walk(prefix)
	if node == nil {
		return nil
	}
	var words []string
	collectWords(node, prefix, &words)
	sort.Strings(words)
	return words
}

// Len returns the number of words in the trie.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) walk(word string) *trieNode {
	node := t.root
	for _, r := range word {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

func collectWords(node *trieNode, prefix string, words *[]string) {
	if node.terminal {
		*words = append(*words, prefix)
	}
	for r, child := range node.children {
		collectWords(child, prefix+string(r), words)
	}
}
