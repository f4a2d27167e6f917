package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/e11jah/prefixtree"
	"github.com/e11jah/prefixtree/config"
	"github.com/e11jah/prefixtree/wordlist"
)

var (
	configFile = "./config.yaml"
	wordsFile  = ""
	verbose    = false
)

func parseArgs() {
	flag.StringVar(&configFile, "config-file", configFile, "config file")
	flag.StringVar(&wordsFile, "words-file", wordsFile, "word list file, overrides the config")
	flag.BoolVar(&verbose, "verbose", verbose, "verbose")

	flag.Parse()
}

func newLogger(fname string, level string) (zerolog.Logger, error) {
	w := io.Writer(os.Stderr)
	if fname != "" {
		fd, err := os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Logger{}, err
		}
		w = fd
	}
	logger := zerolog.New(w).With().Timestamp().Logger()

	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(logLevel)
	return logger, nil
}

func main() {
	parseArgs()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}
	if wordsFile != "" {
		cfg.WordsFile = wordsFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[+] failed to init logger: %v\n", err)
		os.Exit(1)
	}

	tree := prefixtree.New()
	source := filepath.Base(cfg.WordsFile)
	words, err := wordlist.Load(cfg.WordsFile)
	if err != nil {
		// non-fatal, the demo still works on the built-in set
		logger.Warn().Err(err).Str("words_file", cfg.WordsFile).
			Msg("failed to load word list, using built-in fallback")
		words = wordlist.Fallback()
		source = "built-in list"
	}
	for _, w := range words {
		tree.Insert(w)
	}
	logger.Debug().Int("words", tree.Size()).Str("source", source).Msg("tree built")

	fmt.Printf("Loaded %d words (source: %s)\n", tree.Size(), source)
	fmt.Println("Trie Autocomplete Demo")

	r := newRepl(tree, cfg.PrefixLimit, os.Stdin, os.Stdout, logger)
	r.printHelp()
	r.run()
}
