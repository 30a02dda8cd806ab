// internal/config/config.go
//
// Runtime configuration for the Hangman binary.
//
// Sources, later ones winning:
//   1. Built-in defaults (10 lives, words of at least 4 letters, full-screen UI).
//   2. A TOML file: $HANGMAN_CONFIG, or ./hangman.toml when present.
//   3. Environment variables (a .env file is loaded by main beforehand):
//        HANGMAN_LIVES, HANGMAN_MIN_WORD_SIZE, HANGMAN_RUNNER, HANGMAN_TICK_MS,
//        WORDS_FILE, LOG_LEVEL, LOG_FILE
//   4. Positional arguments: hangman [lives] [min-word-size]

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Runner names.
const (
	RunnerTUI     = "tui"
	RunnerConsole = "console"
)

const defaultFile = "hangman.toml"

// Config holds everything main needs to start a session.
type Config struct {
	Lives       int    `toml:"lives"`
	MinWordSize int    `toml:"min_word_size"`
	Runner      string `toml:"runner"`
	TickMillis  int    `toml:"tick_ms"`
	WordsFile   string `toml:"words_file"`
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lives:       10,
		MinWordSize: 4,
		Runner:      RunnerTUI,
		TickMillis:  250,
		LogLevel:    "info",
	}
}

// Load layers defaults, the optional TOML file and the environment, then validates.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("HANGMAN_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
	} else if explicit {
		return cfg, fmt.Errorf("config: %w", err)
	}

	var err error
	if cfg.Lives, err = envInt("HANGMAN_LIVES", cfg.Lives); err != nil {
		return cfg, err
	}
	if cfg.MinWordSize, err = envInt("HANGMAN_MIN_WORD_SIZE", cfg.MinWordSize); err != nil {
		return cfg, err
	}
	if cfg.TickMillis, err = envInt("HANGMAN_TICK_MS", cfg.TickMillis); err != nil {
		return cfg, err
	}
	cfg.Runner = getEnv("HANGMAN_RUNNER", cfg.Runner)
	cfg.WordsFile = getEnv("WORDS_FILE", cfg.WordsFile)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	return cfg, cfg.Validate()
}

// ApplyArgs overrides lives and minimum word size from positional arguments.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) > 2 {
		return errors.New("usage: hangman [lives] [min-word-size]")
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("config: lives %q: %w", args[0], err)
		}
		c.Lives = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("config: min word size %q: %w", args[1], err)
		}
		c.MinWordSize = n
	}
	return c.Validate()
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Lives < 1:
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Lives)
	case c.MinWordSize < 1:
		return fmt.Errorf("config: min word size must be at least 1, got %d", c.MinWordSize)
	case c.Runner != RunnerTUI && c.Runner != RunnerConsole:
		return fmt.Errorf("config: unknown runner %q (want %q or %q)", c.Runner, RunnerTUI, RunnerConsole)
	case c.TickMillis < 10:
		return fmt.Errorf("config: tick must be at least 10ms, got %dms", c.TickMillis)
	}
	return nil
}

// TickRate is the interval between synthetic tick events in the full-screen UI.
func (c Config) TickRate() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q: %w", k, v, err)
	}
	return n, nil
}
