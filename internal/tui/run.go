package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/words"
)

// Options configures a TUI session.
type Options struct {
	Lives       int
	MinWordSize int
	TickRate    time.Duration
}

// Run plays Hangman full-screen on the controlling terminal until the player quits.
func Run(ctx context.Context, opts Options, src words.Source) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return run(ctx, screen, opts, src)
}

func run(ctx context.Context, screen tcell.Screen, opts Options, src words.Source) error {
	app, err := NewApp(src, opts.Lives, opts.MinWordSize)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	term := NewTerminal(screen, opts.TickRate)
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Exit()

	log.Info().Int("lives", opts.Lives).Int("min_word_size", opts.MinWordSize).Msg("tui session started")
	err = term.Run(ctx, app)
	tally := app.Tally()
	log.Info().Int("played", tally.Played).Int("won", tally.Won).Int("lost", tally.Lost).Msg("tui session ended")
	return err
}
