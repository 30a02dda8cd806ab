package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/tui"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// runMain loads configuration, plays the configured runner and returns the exit code.
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "hangman: failed to load configuration:", err)
		return 1
	}
	if err := cfg.ApplyArgs(args); err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, "usage: hangman [lives] [min-word-size]")
		return 2
	}

	closeLog, err := setupLogging(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "hangman: failed to open log file:", err)
		return 1
	}
	defer closeLog()

	src, err := words.Open(cfg.WordsFile)
	if err != nil {
		return fail(cfg, stderr, "failed to load word list", err)
	}
	log.Info().Int("words", src.Len()).Str("runner", cfg.Runner).
		Int("lives", cfg.Lives).Int("min_word_size", cfg.MinWordSize).Msg("starting hangman")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, cfg, src, stdin, stdout); err != nil {
		return fail(cfg, stderr, "hangman exited", err)
	}
	return 0
}

// fail reports a fatal error exactly once and returns the exit code. The
// console runner's logger already writes to stderr; in every other setup the
// logger is silent or writes to a file, so the error is printed there too.
func fail(cfg config.Config, stderr io.Writer, msg string, err error) int {
	log.Error().Err(err).Msg(msg)
	if !logsToStderr(cfg) {
		fmt.Fprintf(stderr, "hangman: %s: %v\n", msg, err)
	}
	return 1
}

func logsToStderr(cfg config.Config) bool {
	return cfg.LogFile == "" && cfg.Runner == config.RunnerConsole
}

func run(ctx context.Context, cfg config.Config, src words.Source, stdin io.Reader, stdout io.Writer) error {
	switch cfg.Runner {
	case config.RunnerConsole:
		return console.New(stdin, stdout, src, cfg.Lives, cfg.MinWordSize).Run(ctx)
	default:
		return tui.Run(ctx, tui.Options{
			Lives:       cfg.Lives,
			MinWordSize: cfg.MinWordSize,
			TickRate:    cfg.TickRate(),
		}, src)
	}
}

// setupLogging points the global logger at LOG_FILE when set. Without one the
// full-screen UI logs nowhere, since it owns the terminal, and the console
// runner logs to stderr.
func setupLogging(cfg config.Config, stderr io.Writer) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return func() {}, fmt.Errorf("log file: %w", err)
		}
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
		return func() { _ = f.Close() }, nil
	case logsToStderr(cfg):
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	default:
		log.Logger = zerolog.Nop()
	}
	return func() {}, nil
}
