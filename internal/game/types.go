// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Status:  coarse state of a round (in progress / won / lost).
//   - Outcome: result of a single accepted guess (correct / incorrect).
//   - Guess:   one entry of the ordered guess history.
//   - The sentinel errors returned for rejected guesses.

package game

import "errors"

// Status represents the state of a round.
// Possible values:
//   - "in_progress": guesses are still accepted.
//   - "won":  every letter of the word has been guessed.
//   - "lost": lives ran out before the word was guessed.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Complete reports whether the round has ended, either way.
func (s Status) Complete() bool { return s == StatusWon || s == StatusLost }

// Outcome is the evaluation of an accepted guess.
type Outcome string

const (
	Correct   Outcome = "correct"
	Incorrect Outcome = "incorrect"
)

// Guess is a single accepted guess: an uppercase letter and whether it was in the word.
type Guess struct {
	Letter  string
	Outcome Outcome
}

// Placeholder stands in for letters that have not been guessed yet.
const Placeholder = "_"

// Rejected guesses. None of them change the game state.
var (
	ErrEmpty          = errors.New("guess is empty")
	ErrTooLong        = errors.New("guess is longer than one letter")
	ErrInvalid        = errors.New("guess is not a letter")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrGameComplete   = errors.New("game is complete")
)

// ErrNoLives is returned by Start when asked for a round without lives.
var ErrNoLives = errors.New("game: lives must be at least 1")
