package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// Terminal owns the screen for the lifetime of a session: it enters the
// alternate screen in raw mode, feeds events, and restores everything on Exit.
type Terminal struct {
	screen   tcell.Screen
	tickRate time.Duration
	events   *EventSource

	initialized bool
	restoreOnce sync.Once
}

func NewTerminal(screen tcell.Screen, tickRate time.Duration) *Terminal {
	return &Terminal{screen: screen, tickRate: tickRate}
}

// Init takes over the terminal and starts the event source.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	t.initialized = true
	t.screen.EnableMouse()
	t.screen.HideCursor()
	t.screen.Clear()
	t.events = newEventSource(t.screen, t.tickRate, t.restore)
	log.Debug().Dur("tick", t.tickRate).Msg("terminal initialized")
	return nil
}

// Draw renders app and shows the frame.
func (t *Terminal) Draw(app *App) {
	Render(t.screen, app)
	t.screen.Show()
}

// Next blocks for the next event.
func (t *Terminal) Next(ctx context.Context) (Event, error) {
	return t.events.Next(ctx)
}

// Exit stops the event source and restores the terminal. Safe to call more than once.
func (t *Terminal) Exit() {
	if t.events != nil {
		t.events.Close()
	}
	t.restore()
}

// restore leaves the alternate screen exactly once, also when called from a panicking goroutine.
func (t *Terminal) restore() {
	if !t.initialized {
		return
	}
	t.restoreOnce.Do(func() {
		t.screen.DisableMouse()
		t.screen.Fini()
		log.Debug().Msg("terminal restored")
	})
}

// Run draws, waits for one event and applies it until the app quits.
// Cancelling ctx ends the loop without an error.
func (t *Terminal) Run(ctx context.Context, app *App) error {
	for !app.ShouldQuit() {
		t.Draw(app)

		ev, err := t.Next(ctx)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				log.Info().Err(err).Msg("session interrupted")
				return nil
			}
			return fmt.Errorf("next event: %w", err)
		}
		if _, ok := ev.(Resize); ok {
			t.screen.Sync()
		}
		Update(app, ev)
	}
	return app.Err()
}
