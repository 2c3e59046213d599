package datastructures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malywonsz/mpu/pkg/datastructures"
)

func TestTrieInsertAndContains(t *testing.T) {
	trie := datastructures.NewTrie("dog", "door", "cat")

	assert.True(t, trie.Contains("dog"))
	assert.True(t, trie.Contains("door"))
	assert.False(t, trie.Contains("do"), "prefixes of inserted words are not members")
	assert.False(t, trie.Contains("doors"))
	assert.Equal(t, 3, trie.Len())

	trie.Insert("dog")
	assert.Equal(t, 3, trie.Len(), "duplicate insert is a no-op")
}

func TestTriePrefixQueries(t *testing.T) {
	trie := datastructures.NewTrie("dog", "door", "do", "cat")

	assert.Equal(t, 3, trie.CountPrefix("do"))
	assert.Equal(t, 1, trie.CountPrefix("c"))
	assert.Equal(t, 0, trie.CountPrefix("x"))
	assert.Equal(t, 4, trie.CountPrefix(""))

	assert.Equal(t, []string{"do", "dog", "door"}, trie.WithPrefix("do"))
	assert.Equal(t, []string{"cat", "do", "dog", "door"}, trie.WithPrefix(""))
	assert.Nil(t, trie.WithPrefix("zebra"))
}

func TestTrieEmptyWord(t *testing.T) {
	trie := datastructures.NewTrie()
	trie.Insert("")

	assert.True(t, trie.Contains(""))
	assert.Equal(t, 1, trie.Len())
	assert.Equal(t, []string{""}, trie.WithPrefix(""))
}

func TestTrieUnicode(t *testing.T) {
	trie := datastructures.NewTrie("größe", "grün")

	assert.True(t, trie.Contains("größe"))
	assert.Equal(t, 2, trie.CountPrefix("gr"))
	assert.Equal(t, []string{"größe", "grün"}, trie.WithPrefix("gr"))
}
