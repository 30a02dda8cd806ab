// Package tui runs Hangman as a full-screen terminal application.
//
// The pieces follow a single loop: Render draws the App, the EventSource
// delivers one Event, Update applies it to the App, repeat until the App asks
// to quit. Update is the only place App state changes; Render only reads it.
package tui

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
	"github.com/robalobadob/hangman/internal/words"
)

// View is the screen currently shown. It is one of InProgress or Complete.
type View interface {
	isView()
}

// InProgress is shown while the current round accepts guesses.
type InProgress struct{}

// Complete is shown once the round is won or lost, with the play-again choice.
type Complete struct {
	Selected Choice
}

func (InProgress) isView() {}
func (Complete) isView()   {}

// Choice is the answer highlighted in the play-again dialog.
type Choice int

const (
	Yes Choice = iota
	No
)

// Toggle returns the other choice.
func (c Choice) Toggle() Choice {
	if c == Yes {
		return No
	}
	return Yes
}

// GuessResult is the outcome of the most recent guess attempt, kept for feedback.
type GuessResult struct {
	Input   string
	Outcome game.Outcome // set when Err is nil
	Err     error
}

// App is the whole UI state. It is owned by the run loop.
type App struct {
	view  View
	game  *game.Game
	last  *GuessResult
	tally stats.Tally
	quit  bool
	err   error

	src         words.Source
	lives       int
	minWordSize int
}

// NewApp starts the first round. It fails when src has no word long enough.
func NewApp(src words.Source, lives, minWordSize int) (*App, error) {
	a := &App{src: src, lives: lives, minWordSize: minWordSize}
	if err := a.startGame(); err != nil {
		return nil, err
	}
	return a, nil
}

// startGame replaces the current round with a fresh one.
func (a *App) startGame() error {
	g, err := game.Start(a.src, a.lives, a.minWordSize)
	if err != nil {
		return err
	}
	a.game = g
	a.view = InProgress{}
	a.last = nil
	log.Info().Str("game", g.ID).Int("letters", len(g.Letters())).Int("lives", a.lives).Msg("round started")
	log.Debug().Str("game", g.ID).Strs("word", g.Letters()).Msg("secret word")
	return nil
}

// makeGuess forwards input to the engine and completes the round when it ends.
func (a *App) makeGuess(input string) {
	outcome, err := a.game.MakeGuess(input)
	a.last = &GuessResult{Input: input, Outcome: outcome, Err: err}
	if err != nil {
		log.Debug().Str("game", a.game.ID).Str("input", input).Err(err).Msg("guess rejected")
		return
	}
	log.Debug().Str("game", a.game.ID).Str("input", input).Str("outcome", string(outcome)).Msg("guess applied")

	if status := a.game.Status(); status.Complete() {
		a.tally.Record(status)
		a.view = Complete{Selected: Yes}
		log.Info().Str("game", a.game.ID).Str("status", string(status)).
			Int("played", a.tally.Played).Int("won", a.tally.Won).Int("lost", a.tally.Lost).
			Msg("round complete")
	}
}

func (a *App) quitApp() { a.quit = true }

// ShouldQuit reports whether the run loop should stop.
func (a *App) ShouldQuit() bool { return a.quit }

// Err returns the error that forced the app to quit, if any.
func (a *App) Err() error { return a.err }

// View returns the screen currently shown.
func (a *App) View() View { return a.view }

// Game returns the current round. Callers must not mutate it.
func (a *App) Game() *game.Game { return a.game }

// LastGuess returns the most recent guess attempt, or nil.
func (a *App) LastGuess() *GuessResult { return a.last }

// Tally returns the running counts of finished rounds.
func (a *App) Tally() stats.Tally { return a.tally }
