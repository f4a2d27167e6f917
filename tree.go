package prefixtree

func (t *tree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree) IsEmpty() bool {
	return t.Size() == 0
}

// Insert adds word to the tree, true if it was not stored before.
// Inserting the empty word marks the root terminal.
func (t *tree) Insert(word string) bool {
	node := t.root
	for _, r := range word {
		node = node.addChild(r)
	}
	if node.terminal {
		return false
	}
	node.terminal = true
	t.size++
	return true
}

// Search reports whether word is stored as a complete word. A path that
// exists only as a prefix of longer words does not match.
func (t *tree) Search(word string) bool {
	node := t.root.descend(word)
	return node != nil && node.terminal
}

func (t *tree) StartsWith(prefix string) bool {
	return t.root.descend(prefix) != nil
}

// WordsWithPrefix returns stored words beginning with prefix in
// lexicographic order. limit <= 0 collects all matches. An absent
// prefix yields an empty slice, not an error.
func (t *tree) WordsWithPrefix(prefix string, limit int) []string {
	node := t.root.descend(prefix)
	if node == nil {
		return []string{}
	}
	return node.collect(prefix, limit)
}

// Delete removes word, false without mutation when it is not stored as a
// complete word. Nodes left childless and non-terminal are pruned bottom
// up along the recorded path; an explicit path slice keeps very long
// words off the call stack. The root itself is never pruned.
func (t *tree) Delete(word string) bool {
	type step struct {
		r      rune
		parent *trieNode
	}

	path := make([]step, 0, len(word))
	node := t.root
	for _, r := range word {
		child := node.child(r)
		if child == nil {
			return false
		}
		path = append(path, step{r, node})
		node = child
	}
	if !node.terminal {
		return false
	}

	node.terminal = false
	t.size--

	for i := len(path) - 1; i >= 0; i-- {
		if node.terminal || !node.isLeaf() {
			break
		}
		delete(path[i].parent.children, path[i].r)
		node = path[i].parent
	}
	return true
}

// CountPrefix counts stored words beginning with prefix. Always a full
// subtree scan, the count is not cached on the nodes.
func (t *tree) CountPrefix(prefix string) int {
	node := t.root.descend(prefix)
	if node == nil {
		return 0
	}
	return node.countTerminals()
}

// ForEach calls callback for every stored word in lexicographic order
// until it returns false.
func (t *tree) ForEach(callback Callback) {
	for it := t.Iterator(); it.HasNext(); {
		word, err := it.Next()
		if err != nil || !callback(word) {
			return
		}
	}
}

func (t *tree) Iterator() Iterator {
	it := &iterator{
		tree:  t,
		depth: []*iteratorLevel{{node: t.root, keys: t.root.sortedKeys()}},
	}
	if t.root.terminal {
		it.nextWord = ""
		it.hasNext = true
	} else {
		it.advance()
	}
	return it
}

func (it *iterator) HasNext() bool {
	return it != nil && it.hasNext
}

func (it *iterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoMoreWords
	}
	word := it.nextWord
	it.advance()
	return word, nil
}

// advance walks the depth stack to the next terminal node. Each level
// remembers which child to resume from, so the walk never revisits a
// subtree.
func (it *iterator) advance() {
	for len(it.depth) > 0 {
		level := it.depth[len(it.depth)-1]
		if level.childIdx >= len(level.keys) {
			it.depth = it.depth[:len(it.depth)-1]
			continue
		}

		r := level.keys[level.childIdx]
		level.childIdx++

		child := level.node.children[r]
		next := &iteratorLevel{
			node: child,
			keys: child.sortedKeys(),
			word: level.word + string(r),
		}
		it.depth = append(it.depth, next)

		if child.terminal {
			it.nextWord = next.word
			it.hasNext = true
			return
		}
	}
	it.nextWord = ""
	it.hasNext = false
}
