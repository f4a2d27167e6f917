package prefixtree

import (
	"sort"
)

func (n *trieNode) child(r rune) *trieNode {
	return n.children[r]
}

func (n *trieNode) addChild(r rune) *trieNode {
	child := n.children[r]
	if child == nil {
		child = newNode()
		n.children[r] = child
	}
	return child
}

func (n *trieNode) isLeaf() bool {
	return len(n.children) == 0
}

// descend follows s character by character, nil if the path breaks off.
func (n *trieNode) descend(s string) *trieNode {
	node := n
	for _, r := range s {
		node = node.child(r)
		if node == nil {
			return nil
		}
	}
	return node
}

// sortedKeys imposes the enumeration order; map iteration order is not
// stable across runs.
func (n *trieNode) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for r := range n.children {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// collect gathers words under n in lexicographic order, stopping once
// limit words are found when limit > 0. The stack holds children in
// reverse key order so pre-order pops come out sorted.
func (n *trieNode) collect(prefix string, limit int) []string {
	type frame struct {
		node *trieNode
		word string
	}

	words := make([]string, 0)
	stack := []frame{{n, prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.terminal {
			words = append(words, f.word)
			if limit > 0 && len(words) >= limit {
				break
			}
		}

		keys := f.node.sortedKeys()
		for i := len(keys) - 1; i >= 0; i-- {
			r := keys[i]
			stack = append(stack, frame{f.node.children[r], f.word + string(r)})
		}
	}
	return words
}

// countTerminals scans the whole subtree, order irrelevant.
func (n *trieNode) countTerminals() int {
	count := 0
	stack := []*trieNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.terminal {
			count++
		}
		for _, child := range node.children {
			stack = append(stack, child)
		}
	}
	return count
}
