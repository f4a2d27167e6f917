package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultWordsFile   = "data/words.txt"
	defaultPrefixLimit = 10
	defaultLogLevel    = "info"
)

type Config struct {
	WordsFile   string `yaml:"words-file"`   // word list loaded at startup, one word per line
	PrefixLimit int    `yaml:"prefix-limit"` // default limit for prefix and compare output
	LogLevel    string `yaml:"log-level"`
	LogFile     string `yaml:"log-file"` // empty means stderr
}

func Default() *Config {
	return &Config{
		WordsFile:   defaultWordsFile,
		PrefixLimit: defaultPrefixLimit,
		LogLevel:    defaultLogLevel,
		LogFile:     "",
	}
}

// Load reads a yaml config file. A missing file is not an error, the
// defaults apply as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}
	if cfg.WordsFile == "" {
		cfg.WordsFile = defaultWordsFile
	}
	if cfg.PrefixLimit <= 0 {
		cfg.PrefixLimit = defaultPrefixLimit
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}

// Write dumps cfg to a yaml file, used to seed a fresh config.
func Write(cfg *Config, path string) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}
