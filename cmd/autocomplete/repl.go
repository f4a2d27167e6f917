package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/e11jah/prefixtree"
)

const helpText = `Commands:
  help
  stats
  search <word>
  prefix <prefix> [limit]
  add <word>
  delete <word>
  compare <prefix> [limit]
  quit`

type repl struct {
	tree   prefixtree.Tree
	limit  int // default result limit for prefix and compare
	in     io.Reader
	out    io.Writer
	logger zerolog.Logger
}

func newRepl(tree prefixtree.Tree, limit int, in io.Reader, out io.Writer, logger zerolog.Logger) *repl {
	return &repl{
		tree:   tree,
		limit:  limit,
		in:     in,
		out:    out,
		logger: logger,
	}
}

func (r *repl) run() {
	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			fmt.Fprintln(r.out, "Bye.")
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if !r.dispatch(cmd, args) {
			fmt.Fprintln(r.out, "Bye.")
			return
		}
	}
}

// dispatch runs one command, false means the session is over.
func (r *repl) dispatch(cmd string, args []string) bool {
	r.logger.Debug().Str("cmd", cmd).Strs("args", args).Msg("dispatch")

	switch cmd {
	case "quit", "exit", "q":
		return false

	case "help":
		r.printHelp()

	case "stats":
		fmt.Fprintf(r.out, "Words stored in trie: %d\n", r.tree.Size())

	case "search":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "Usage: search <word>")
			break
		}
		if r.tree.Search(strings.ToLower(args[0])) {
			fmt.Fprintln(r.out, "YES")
		} else {
			fmt.Fprintln(r.out, "NO")
		}

	case "prefix":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "Usage: prefix <prefix> [limit]")
			break
		}
		matches := r.tree.WordsWithPrefix(strings.ToLower(args[0]), r.parseLimit(args))
		if len(matches) == 0 {
			fmt.Fprintln(r.out, "(no matches)")
			break
		}
		for _, w := range matches {
			fmt.Fprintln(r.out, " ", w)
		}

	case "add":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "Usage: add <word>")
			break
		}
		word := strings.ToLower(args[0])
		if r.tree.Insert(word) {
			fmt.Fprintf(r.out, "Added %q.\n", word)
		} else {
			fmt.Fprintf(r.out, "%q was already present.\n", word)
		}

	case "delete":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "Usage: delete <word>")
			break
		}
		word := strings.ToLower(args[0])
		if r.tree.Delete(word) {
			fmt.Fprintf(r.out, "Deleted %q.\n", word)
		} else {
			fmt.Fprintf(r.out, "%q not found.\n", word)
		}

	case "compare":
		if len(args) == 0 {
			fmt.Fprintln(r.out, "Usage: compare <prefix> [limit]")
			break
		}
		r.compare(strings.ToLower(args[0]), r.parseLimit(args))

	default:
		fmt.Fprintln(r.out, "Unknown command. Type 'help'.")
	}
	return true
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, helpText)
}

func (r *repl) parseLimit(args []string) int {
	if len(args) < 2 {
		return r.limit
	}
	limit, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(r.out, "Limit must be an integer; using default = %d.\n", r.limit)
		return r.limit
	}
	return limit
}

// compare times a naive linear scan over the materialized word list
// against the tree's prefix traversal and reports both.
func (r *repl) compare(prefix string, limit int) {
	allWords := r.allWords()

	start := time.Now()
	linearMatches := make([]string, 0)
	for _, w := range allWords {
		if strings.HasPrefix(w, prefix) {
			linearMatches = append(linearMatches, w)
		}
	}
	tLinear := time.Since(start)

	start = time.Now()
	trieMatches := r.tree.WordsWithPrefix(prefix, 0)
	tTrie := time.Since(start)

	fmt.Fprintf(r.out, "Linear search found %d matches in %.1f µs\n",
		len(linearMatches), float64(tLinear.Nanoseconds())/1e3)
	fmt.Fprintf(r.out, "Trie search found   %d matches in %.1f µs\n",
		len(trieMatches), float64(tTrie.Nanoseconds())/1e3)

	if limit <= 0 || limit > len(trieMatches) {
		limit = len(trieMatches)
	}
	fmt.Fprintf(r.out, "First %d trie matches:\n", limit)
	for _, w := range trieMatches[:limit] {
		fmt.Fprintln(r.out, " ", w)
	}
}

func (r *repl) allWords() []string {
	words := make([]string, 0, r.tree.Size())
	for it := r.tree.Iterator(); it.HasNext(); {
		w, err := it.Next()
		if err != nil {
			break
		}
		words = append(words, w)
	}
	return words
}
