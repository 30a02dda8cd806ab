// internal/console/console.go
//
// Line-oriented Hangman runner for plain terminals, pipes and scripts.
//
// Responsibilities:
//   - Print the banner, the round state and per-guess feedback to an io.Writer.
//   - Read one guess per line from an io.Reader.
//   - Keep running tallies and ask whether to play again after each round.
//
// Styling comes from a lipgloss renderer bound to the output writer, so
// anything that is not a terminal receives plain text.
//
// Session end:
//   • "n" at the play-again prompt, end of input, or a cancelled context.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
	"github.com/robalobadob/hangman/internal/words"
)

// errEndOfInput ends the session when the reader is exhausted.
var errEndOfInput = errors.New("console: end of input")

var banner = []string{
	"===============================================",
	" _   _                                         ",
	"| | | | __ _ _ __   __ _ _ __ ___   __ _ _ __  ",
	"| |_| |/ _` | '_ \\ / _` | '_ ` _ \\ / _` | '_ \\ ",
	"|  _  | (_| | | | | (_| | | | | | | (_| | | | |",
	"|_| |_|\\__,_|_| |_|\\__, |_| |_| |_|\\__,_|_| |_|",
	"                   |___/                       ",
	"===============================================",
}

type styles struct {
	banner, bold, dim     lipgloss.Style
	good, warn, bad       lipgloss.Style
	wonBanner, lostBanner lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		bold:       r.NewStyle().Bold(true),
		dim:        r.NewStyle().Faint(true).Italic(true),
		good:       r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:       r.NewStyle().Foreground(lipgloss.Color("3")),
		bad:        r.NewStyle().Foreground(lipgloss.Color("1")),
		wonBanner:  r.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("15")),
		lostBanner: r.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15")),
	}
}

// Runner plays rounds over a reader/writer pair until the player stops.
type Runner struct {
	in    io.Reader
	out   io.Writer
	st    styles
	lines chan string
	tally stats.Tally

	src         words.Source
	lives       int
	minWordSize int
}

func New(in io.Reader, out io.Writer, src words.Source, lives, minWordSize int) *Runner {
	return &Runner{
		in:          in,
		out:         out,
		st:          newStyles(lipgloss.NewRenderer(out)),
		src:         src,
		lives:       lives,
		minWordSize: minWordSize,
	}
}

// Tally returns the counts of the rounds finished so far.
func (r *Runner) Tally() stats.Tally { return r.tally }

// Run plays until the player declines another round, input ends or ctx is cancelled.
// Only a failing word source is reported as an error.
func (r *Runner) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	r.lines = make(chan string)
	go r.scan(done)

	r.printIntro()
	for {
		g, err := game.Start(r.src, r.lives, r.minWordSize)
		if err != nil {
			return fmt.Errorf("start game: %w", err)
		}
		log.Info().Str("game", g.ID).Int("letters", len(g.Letters())).Int("lives", r.lives).Msg("round started")

		err = r.playRound(ctx, g)
		if err == nil {
			var again bool
			again, err = r.promptForNewGame(ctx)
			if err == nil && !again {
				log.Info().Str("tally", r.tally.String()).Msg("console session ended")
				return nil
			}
		}
		if err != nil {
			return r.stopped(err)
		}
	}
}

// stopped turns end-of-input and cancellation into a clean exit.
func (r *Runner) stopped(err error) error {
	if errors.Is(err, errEndOfInput) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		r.println()
		log.Info().Err(err).Str("tally", r.tally.String()).Msg("console session ended")
		return nil
	}
	return err
}

func (r *Runner) playRound(ctx context.Context, g *game.Game) error {
	for g.Status() == game.StatusInProgress {
		r.println("The word for you to guess is:")
		r.println()
		r.println("    " + r.st.bold.Render(strings.Join(g.BlankedOutLetters(), " ")))
		r.println()
		r.println("You have " + r.formatLives(g.LivesRemaining()) + " lives remaining.")
		r.println()
		r.println(r.st.bold.Render("Please guess a letter, and make it a good one!"))
		r.println()
		r.printPreviousGuesses(g)
		r.println()

		guess, err := r.readLine(ctx)
		if err != nil {
			return err
		}
		r.println()

		outcome, err := g.MakeGuess(guess)
		r.printGuessResult(guess, outcome, err)
		log.Debug().Str("game", g.ID).Str("input", guess).Err(err).Msg("guess")
	}

	r.tally.Record(g.Status())
	log.Info().Str("game", g.ID).Str("status", string(g.Status())).Str("tally", r.tally.String()).Msg("round complete")
	r.printComplete(g)
	return nil
}

func (r *Runner) printIntro() {
	r.println("Welcome to")
	r.println()
	for _, line := range banner {
		r.println(r.st.banner.Render(line))
	}
	r.println()
}

// formatLives colors the count: red at 3 or fewer, yellow at 6 or fewer, green above.
func (r *Runner) formatLives(lives int) string {
	n := fmt.Sprint(lives)
	switch {
	case lives <= 3:
		return r.st.bad.Bold(true).Render(n)
	case lives <= 6:
		return r.st.warn.Bold(true).Render(n)
	default:
		return r.st.good.Bold(true).Render(n)
	}
}

func (r *Runner) printPreviousGuesses(g *game.Game) {
	guesses := g.Guesses()
	if len(guesses) == 0 {
		r.println(r.st.dim.Render("No previous guesses."))
		return
	}
	parts := make([]string, len(guesses))
	for i, gs := range guesses {
		mark := r.st.good.Render("✓")
		if gs.Outcome == game.Incorrect {
			mark = r.st.bad.Render("✗")
		}
		parts[i] = gs.Letter + " " + mark
	}
	r.println("Previous guesses: " + strings.Join(parts, ", "))
}

func (r *Runner) printGuessResult(guess string, outcome game.Outcome, err error) {
	letter := strings.ToUpper(guess)
	switch {
	case err == nil && outcome == game.Correct:
		r.println(r.st.good.Render(fmt.Sprintf("✓ Awesome! %q is in the word! Nice job!", letter)))
	case err == nil:
		r.println(r.st.bad.Render(fmt.Sprintf("✗ Sorry! %q is not in the word!", letter)))
	case errors.Is(err, game.ErrEmpty):
		r.println(r.st.bad.Render("✗ Your guess was empty!"))
	case errors.Is(err, game.ErrTooLong):
		r.println(r.st.bad.Render("✗ You entered more than one character! That's cheating!"))
	case errors.Is(err, game.ErrInvalid):
		r.println(r.st.bad.Render(fmt.Sprintf("✗ You entered an invalid character! I don't know what to do with %q.", guess)))
	case errors.Is(err, game.ErrAlreadyGuessed):
		r.println(r.st.warn.Render(fmt.Sprintf("You've already guessed %q!", letter)))
	case errors.Is(err, game.ErrGameComplete):
		panic("console: guess made on a complete game")
	default:
		panic(fmt.Sprintf("console: unexpected guess error: %v", err))
	}
	r.println()
}

func (r *Runner) printComplete(g *game.Game) {
	word := "    " + r.st.bold.Render(strings.Join(g.Letters(), " "))
	switch g.Status() {
	case game.StatusWon:
		left := g.LivesRemaining()
		noun := "guesses"
		if left == 1 {
			noun = "guess"
		}
		r.println(r.st.wonBanner.Render(fmt.Sprintf("Well done! You guessed the word with %d %s remaining!", left, noun)))
		r.println()
		r.println(word)
	case game.StatusLost:
		r.println(r.st.lostBanner.Render("Oh no! You ran out of lives! I'll tell you what it was though:"))
		r.println()
		r.println("    " + r.st.bold.Render(strings.Join(g.BlankedOutLetters(), " ")))
		r.println()
		r.println(word)
	default:
		panic(fmt.Sprintf("console: round ended with status %q", g.Status()))
	}
	r.println()
	r.println(r.st.dim.Render(r.tally.String()))
	r.println()
}

// promptForNewGame asks until the answer is y or n.
func (r *Runner) promptForNewGame(ctx context.Context) (bool, error) {
	for {
		r.println("Would you like to play again? " + r.st.dim.Render("(y/n)"))
		r.println()
		answer, err := r.readLine(ctx)
		if err != nil {
			return false, err
		}
		r.println()

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

// scan feeds input lines to readLine; the channel closes at end of input.
func (r *Runner) scan(done <-chan struct{}) {
	defer close(r.lines)
	sc := bufio.NewScanner(r.in)
	for sc.Scan() {
		select {
		case r.lines <- strings.TrimRight(sc.Text(), "\r"):
		case <-done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Msg("reading input")
	}
}

func (r *Runner) readLine(ctx context.Context) (string, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			return "", errEndOfInput
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *Runner) println(a ...any) {
	fmt.Fprintln(r.out, a...)
}
