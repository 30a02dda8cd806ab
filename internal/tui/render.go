package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/game"
)

// Render draws the whole app onto s. It reads app and never changes it.
// The caller shows the frame.
func Render(s tcell.Screen, app *App) {
	w, h := s.Size()
	area := Rect{W: w, H: h}
	fill(s, area, styleBase)

	rows := Split(area, Vertical, Length(3), Min(0), Length(1))
	header, main, footer := rows[0], rows[1], rows[2]

	renderHeader(s, header, app)
	renderMain(s, main, app)

	switch v := app.View().(type) {
	case InProgress:
		drawLine(s, footer, footer.Y, AlignCenter, controlSpans(
			[2]string{"Esc/Ctrl-C", "Exit"},
			[2]string{"A-Z", "Guess"},
		)...)
	case Complete:
		renderComplete(s, main, app, v)
		drawLine(s, footer, footer.Y, AlignCenter, controlSpans(
			[2]string{"Esc/Ctrl-C", "Exit"},
			[2]string{"←/→", "Move"},
			[2]string{"Enter", "Select"},
		)...)
	default:
		panic(fmt.Sprintf("tui: unhandled view %T", v))
	}
}

func renderHeader(s tcell.Screen, r Rect, app *App) {
	in := drawBlock(s, r, "Hangman", styleBorder, styleTitle)
	drawLine(s, in, in.Y, AlignCenter, Span{app.Tally().String(), styleMuted})
}

func renderMain(s tcell.Screen, r Rect, app *App) {
	cols := Split(r, Horizontal, Percentage(50), Min(0))
	left := Split(cols[0], Vertical, Length(5), Min(0))
	right := Split(cols[1], Vertical, Length(4), Min(0))

	renderWord(s, left[0], app)
	renderAvailable(s, left[1], app.Game())
	renderLives(s, right[0], app.Game(), app.lives)
	renderGuesses(s, right[1], app.Game())
}

func renderWord(s tcell.Screen, r Rect, app *App) {
	in := drawBlock(s, r, "Word", styleBorder, styleTitle)
	word := strings.Join(app.Game().BlankedOutLetters(), " ")
	drawLines(s, in, AlignCenter,
		[]Span{{word, styleTitle}},
		nil,
		feedback(app.LastGuess()),
	)
}

// feedback describes the most recent guess attempt in one line.
func feedback(r *GuessResult) []Span {
	if r == nil {
		return []Span{{"Type a letter to guess", styleMuted}}
	}
	letter := strings.ToUpper(r.Input)
	switch {
	case r.Err == nil && r.Outcome == game.Correct:
		return []Span{{"✓ " + letter + " is in the word", styleGood}}
	case r.Err == nil:
		return []Span{{"✗ " + letter + " is not in the word", styleBad}}
	case errors.Is(r.Err, game.ErrAlreadyGuessed):
		return []Span{{letter + " was already guessed", styleWarn}}
	case errors.Is(r.Err, game.ErrInvalid):
		return []Span{{fmt.Sprintf("%q is not a letter", r.Input), styleWarn}}
	default:
		return []Span{{r.Err.Error(), styleWarn}}
	}
}

func renderAvailable(s tcell.Screen, r Rect, g *game.Game) {
	in := drawBlock(s, r, "Available letters", styleBorder, styleTitle)
	guessed := make(map[string]bool)
	for _, l := range g.GuessedLetters() {
		guessed[l] = true
	}
	var items [][]Span
	for c := 'A'; c <= 'Z'; c++ {
		if !guessed[string(c)] {
			items = append(items, []Span{{string(c), styleBase}})
		}
	}
	drawLines(s, in, AlignLeft, flow(in.W, 1, items...)...)
}

// livesStyle colors the remaining lives: red at 3 or fewer, yellow at 6 or fewer.
func livesStyle(lives int) tcell.Style {
	switch {
	case lives <= 3:
		return styleBad
	case lives <= 6:
		return styleWarn
	default:
		return styleGood
	}
}

func renderLives(s tcell.Screen, r Rect, g *game.Game, total int) {
	in := drawBlock(s, r, "Lives", styleBorder, styleTitle)
	left := g.LivesRemaining()
	style := livesStyle(left)
	hearts := strings.Repeat("♥", left) + strings.Repeat("·", max(total-left, 0))
	drawLines(s, in, AlignLeft,
		[]Span{{hearts, style}},
		[]Span{{fmt.Sprintf("%d of %d left", left, total), style}},
	)
}

func renderGuesses(s tcell.Screen, r Rect, g *game.Game) {
	in := drawBlock(s, r, "Guesses", styleBorder, styleTitle)
	var items [][]Span
	for _, gs := range g.Guesses() {
		if gs.Outcome == game.Correct {
			items = append(items, []Span{{gs.Letter + " ✓", styleGood}})
		} else {
			items = append(items, []Span{{gs.Letter + " ✗", styleBad}})
		}
	}
	if len(items) == 0 {
		drawLine(s, in, in.Y, AlignLeft, Span{"No guesses yet", styleMuted})
		return
	}
	drawLines(s, in, AlignLeft, flow(in.W, 2, items...)...)
}
