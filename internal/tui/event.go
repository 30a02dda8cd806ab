package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Event is one input to Update: Tick, Key, Mouse or Resize.
type Event interface {
	isEvent()
}

// Tick is emitted when no input arrived during a whole tick interval.
type Tick struct {
	At time.Time
}

// Key is a key press. Rune is only meaningful when Code is tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Mouse is a mouse movement or button change.
type Mouse struct {
	X, Y    int
	Buttons tcell.ButtonMask
}

// Resize reports the new terminal size in cells.
type Resize struct {
	Width, Height int
}

func (Tick) isEvent()   {}
func (Key) isEvent()    {}
func (Mouse) isEvent()  {}
func (Resize) isEvent() {}

// ErrClosed is returned by Next once the source has been closed.
var ErrClosed = errors.New("tui: event source closed")

// Poller is the input side of a terminal; tcell.Screen satisfies it.
// PollEvent blocks and returns nil once the terminal is finalized.
type Poller interface {
	PollEvent() tcell.Event
}

// EventSource merges terminal input with a fixed-interval tick into one ordered stream.
//
// One goroutine blocks on the Poller; another forwards its events and emits a
// Tick whenever a full interval passes without input. Events are handed over
// one at a time on an unbuffered channel, so nothing is batched or reordered.
type EventSource struct {
	out       chan Event
	done      chan struct{}
	closeOnce sync.Once
	onPanic   func()
}

// NewEventSource starts polling p and ticking every tickRate.
func NewEventSource(p Poller, tickRate time.Duration) *EventSource {
	return newEventSource(p, tickRate, nil)
}

// newEventSource is NewEventSource with a hook run before a panic in either
// goroutine is re-raised; the runtime uses it to restore the terminal.
func newEventSource(p Poller, tickRate time.Duration, onPanic func()) *EventSource {
	es := &EventSource{
		out:     make(chan Event),
		done:    make(chan struct{}),
		onPanic: onPanic,
	}
	input := make(chan tcell.Event)
	go es.poll(p, input)
	go es.merge(input, tickRate)
	return es
}

func (es *EventSource) poll(p Poller, input chan<- tcell.Event) {
	defer es.guard()
	for {
		ev := p.PollEvent()
		if ev == nil {
			return
		}
		select {
		case input <- ev:
		case <-es.done:
			return
		}
	}
}

func (es *EventSource) merge(input <-chan tcell.Event, tickRate time.Duration) {
	defer es.guard()
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	for {
		var ev Event
		select {
		case <-es.done:
			return
		case raw := <-input:
			ev = convert(raw)
			if ev == nil {
				continue
			}
			ticker.Reset(tickRate)
			// Drop a tick that fired before the reset.
			select {
			case <-ticker.C:
			default:
			}
		case t := <-ticker.C:
			ev = Tick{At: t}
		}

		select {
		case es.out <- ev:
		case <-es.done:
			return
		}
	}
}

func (es *EventSource) guard() {
	if r := recover(); r != nil {
		if es.onPanic != nil {
			es.onPanic()
		}
		panic(r)
	}
}

// Next blocks until exactly one event is available.
func (es *EventSource) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-es.out:
		return ev, nil
	case <-es.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close stops the source. A goroutine still blocked in PollEvent exits when
// the terminal is finalized.
func (es *EventSource) Close() {
	es.closeOnce.Do(func() { close(es.done) })
}

// convert maps tcell events to Events; anything else (paste, focus, interrupts) is dropped.
func convert(raw tcell.Event) Event {
	switch e := raw.(type) {
	case *tcell.EventKey:
		return Key{Code: e.Key(), Rune: e.Rune(), Mod: e.Modifiers()}
	case *tcell.EventMouse:
		x, y := e.Position()
		return Mouse{X: x, Y: y, Buttons: e.Buttons()}
	case *tcell.EventResize:
		w, h := e.Size()
		return Resize{Width: w, Height: h}
	}
	return nil
}
