package prefixtree

type Tree interface {
	Insert(word string) bool
	Search(word string) bool
	StartsWith(prefix string) bool
	WordsWithPrefix(prefix string, limit int) []string
	Delete(word string) bool
	CountPrefix(prefix string) int
	Size() int
	IsEmpty() bool
	ForEach(callback Callback)
	Iterator() Iterator
}

type Iterator interface {
	HasNext() bool
	Next() (string, error)
}

func New() Tree {
	return &tree{root: newNode()}
}
