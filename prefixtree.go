package prefixtree

import (
	"errors"
)

var (
	ErrNoMoreWords = errors.New("There are no more words in the tree")
)

type (
	tree struct {
		size int
		root *trieNode
	}

	// one position in the character-path space of all stored words.
	// children are exclusively owned, parents hold the only reference.
	trieNode struct {
		children map[rune]*trieNode
		terminal bool
	}

	Callback func(word string) bool

	iteratorLevel struct {
		node     *trieNode
		keys     []rune
		childIdx int
		word     string
	}

	iterator struct {
		tree     *tree
		nextWord string
		hasNext  bool
		depth    []*iteratorLevel
	}
)

func newNode() *trieNode {
	return &trieNode{
		children: make(map[rune]*trieNode),
	}
}
