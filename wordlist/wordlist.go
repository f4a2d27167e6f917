package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// Load reads one word per line, trimming whitespace and lowercasing.
// Blank lines are skipped. The caller decides whether a missing file is
// fatal; an empty tree is an acceptable fallback state.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Fallback is the built-in sample set used when no word file is
// available.
func Fallback() []string {
	return []string{
		"app", "apple", "apples", "application", "applied", "apply",
		"applet", "apt",
		"banana", "band", "bandit", "bandwidth",
		"bat", "batch", "bath",
		"cat", "catch", "cater",
		"dog", "dove", "doom",
	}
}
