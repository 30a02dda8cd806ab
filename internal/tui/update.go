package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// Update applies one event to the app. It is the only place app state changes.
func Update(app *App, ev Event) {
	switch e := ev.(type) {
	case Key:
		updateKey(app, e)
	case Tick, Mouse, Resize:
		// Nothing to do; they keep the loop redrawing.
	default:
		panic(fmt.Sprintf("tui: unhandled event %T", ev))
	}
}

func updateKey(app *App, k Key) {
	if handleQuitKeys(app, k) {
		return
	}

	switch v := app.view.(type) {
	case InProgress:
		if k.Code == tcell.KeyRune {
			app.makeGuess(string(k.Rune))
		}
	case Complete:
		switch k.Code {
		case tcell.KeyLeft, tcell.KeyRight:
			app.view = Complete{Selected: v.Selected.Toggle()}
		case tcell.KeyEnter:
			if v.Selected == No {
				app.quitApp()
				return
			}
			if err := app.startGame(); err != nil {
				log.Error().Err(err).Msg("start new round")
				app.err = err
				app.quitApp()
			}
		}
	default:
		panic(fmt.Sprintf("tui: unhandled view %T", v))
	}
}

// handleQuitKeys quits on Esc or Ctrl+C and reports whether the key was consumed.
func handleQuitKeys(app *App, k Key) bool {
	switch {
	case k.Code == tcell.KeyEscape, k.Code == tcell.KeyCtrlC:
	case k.Code == tcell.KeyRune && (k.Rune == 'c' || k.Rune == 'C') && k.Mod&tcell.ModCtrl != 0:
	default:
		return false
	}
	app.quitApp()
	return true
}
