// internal/game/engine.go
//
// Core game engine for a single Hangman round.
// Responsibilities:
//   - Create rounds from an injected word source (or a fixed word, for tests).
//   - Validate and apply letter guesses.
//   - Track lives and state transitions: in_progress → won/lost.
//
// Notes:
//   - Validation order is fixed: completion, then format, then duplicates.
//   - A Game is owned by a single caller and is not safe for concurrent use.
package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// Game holds the state of one round.
type Game struct {
	ID      string // Round identifier, used to correlate log lines.
	word    string
	guesses []Guess
	lives   int
	status  Status
}

// New constructs a round for a fixed word. The word is uppercased.
// A round with no lives left starts out lost.
func New(word string, lives int) *Game {
	if lives < 0 {
		lives = 0
	}
	g := &Game{
		ID:    uuid.NewString(),
		word:  strings.ToUpper(word),
		lives: lives,
	}
	g.updateStatus()
	return g
}

// Start draws a word of at least minWordSize letters from src and constructs a round.
func Start(src words.Source, lives, minWordSize int) (*Game, error) {
	if lives < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrNoLives, lives)
	}
	w, err := src.RandomWord(minWordSize)
	if err != nil {
		return nil, fmt.Errorf("game: pick word: %w", err)
	}
	return New(w, lives), nil
}

// MakeGuess validates and applies a guess.
//
// Validation rules, in order:
//   - Game must still be in progress (ErrGameComplete).
//   - Guess must be exactly one character (ErrEmpty / ErrTooLong).
//   - That character must be an ASCII letter (ErrInvalid).
//   - The letter must not have been guessed before (ErrAlreadyGuessed).
//
// A rejected guess leaves the game untouched.
func (g *Game) MakeGuess(input string) (Outcome, error) {
	guess := strings.ToUpper(input)

	if g.status != StatusInProgress {
		return "", ErrGameComplete
	}
	if err := validate(guess); err != nil {
		return "", err
	}
	if g.isGuessed(guess) {
		return "", ErrAlreadyGuessed
	}

	outcome := Incorrect
	if strings.Contains(g.word, guess) {
		outcome = Correct
	}
	g.record(guess, outcome)
	return outcome, nil
}

// record appends an accepted guess and recomputes the status.
// Reaching it on a finished round means a caller skipped MakeGuess's checks.
func (g *Game) record(letter string, outcome Outcome) {
	if g.status.Complete() {
		panic(fmt.Sprintf("game: guess %q recorded on a %s round", letter, g.status))
	}
	g.guesses = append(g.guesses, Guess{Letter: letter, Outcome: outcome})
	if outcome == Incorrect && g.lives > 0 {
		g.lives--
	}
	g.updateStatus()
}

func (g *Game) updateStatus() {
	switch {
	case g.unknownLetters() == 0:
		g.status = StatusWon
	case g.lives == 0:
		g.status = StatusLost
	default:
		g.status = StatusInProgress
	}
}

// Status reports the current state of the round.
func (g *Game) Status() Status { return g.status }

// LivesRemaining reports how many incorrect guesses are still tolerated.
func (g *Game) LivesRemaining() int { return g.lives }

// Guesses returns a copy of the guess history in the order the guesses were made.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// GuessedLetters returns just the letters of the guess history, in order.
func (g *Game) GuessedLetters() []string {
	out := make([]string, len(g.guesses))
	for i, gs := range g.guesses {
		out[i] = gs.Letter
	}
	return out
}

// Letters returns the secret word split into single-letter strings.
func (g *Game) Letters() []string {
	return strings.Split(g.word, "")
}

// BlankedOutLetters returns the word with every unguessed letter replaced by Placeholder.
func (g *Game) BlankedOutLetters() []string {
	letters := g.Letters()
	for i, l := range letters {
		if !g.isGuessed(l) {
			letters[i] = Placeholder
		}
	}
	return letters
}

func (g *Game) isGuessed(letter string) bool {
	for _, gs := range g.guesses {
		if gs.Letter == letter {
			return true
		}
	}
	return false
}

func (g *Game) unknownLetters() int {
	n := 0
	for _, l := range g.Letters() {
		if !g.isGuessed(l) {
			n++
		}
	}
	return n
}

// validate checks the shape of an already-uppercased guess.
func validate(guess string) error {
	switch n := utf8.RuneCountInString(guess); {
	case n == 0:
		return ErrEmpty
	case n > 1:
		return ErrTooLong
	}
	if r := guess[0]; r < 'A' || r > 'Z' {
		return ErrInvalid
	}
	return nil
}
