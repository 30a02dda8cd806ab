package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/game"
)

const (
	dialogWidth  = 50
	dialogHeight = 9
)

// renderComplete draws the play-again dialog centered over r.
func renderComplete(s tcell.Screen, r Rect, app *App, v Complete) {
	title, color := "You Lost...", tcell.ColorRed
	if app.Game().Status() == game.StatusWon {
		title, color = "You Won!", tcell.ColorGreen
	}
	accent := tcell.StyleDefault.Foreground(color)

	box := Centered(r, dialogWidth, dialogHeight)
	fill(s, box, styleBase)
	in := drawBlock(s, box, title, accent, accent.Bold(true))

	word := strings.Join(app.Game().Letters(), " ")
	drawLines(s, in, AlignCenter,
		[]Span{{word, styleTitle}},
		nil,
		[]Span{{"Would you like to play again?", styleBase}},
		nil,
		choiceSpans(v.Selected, color),
	)
}

func choiceSpans(selected Choice, color tcell.Color) []Span {
	button := func(label string, c Choice) Span {
		if c == selected {
			return Span{" " + label + " ", tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack)}
		}
		return Span{" " + label + " ", tcell.StyleDefault.Foreground(color)}
	}
	return []Span{button("Yes", Yes), {"    ", styleBase}, button("No", No)}
}
