package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/hangman/internal/game"
)

// sequence hands out its words in order, then fails.
type sequence struct {
	words []string
	calls int
}

func (s *sequence) RandomWord(int) (string, error) {
	if s.calls >= len(s.words) {
		return "", errors.New("sequence exhausted")
	}
	w := s.words[s.calls]
	s.calls++
	return w, nil
}

func newTestApp(t *testing.T, lives int, words ...string) *App {
	t.Helper()
	app, err := NewApp(&sequence{words: words}, lives, 1)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app
}

func runeKey(r rune) Key { return Key{Code: tcell.KeyRune, Rune: r} }

func typeLetters(app *App, letters string) {
	for _, r := range letters {
		Update(app, runeKey(r))
	}
}

func word(app *App) string { return strings.Join(app.Game().Letters(), "") }

func TestQuitKeys(t *testing.T) {
	keys := []Key{
		{Code: tcell.KeyEscape},
		{Code: tcell.KeyCtrlC, Rune: 3, Mod: tcell.ModCtrl},
		{Code: tcell.KeyRune, Rune: 'c', Mod: tcell.ModCtrl},
	}
	for _, k := range keys {
		app := newTestApp(t, 10, "test")
		Update(app, k)
		if !app.ShouldQuit() {
			t.Errorf("key %+v did not quit", k)
		}
		if len(app.Game().Guesses()) != 0 {
			t.Errorf("key %+v was also treated as a guess", k)
		}
	}
}

func TestQuitKeysWorkInCompleteView(t *testing.T) {
	app := newTestApp(t, 1, "test")
	Update(app, runeKey('a'))
	if _, ok := app.View().(Complete); !ok {
		t.Fatalf("view = %T", app.View())
	}

	Update(app, Key{Code: tcell.KeyEscape})
	if !app.ShouldQuit() {
		t.Error("Esc did not quit from the complete view")
	}
}

func TestRuneKeysAreGuesses(t *testing.T) {
	app := newTestApp(t, 10, "test")

	Update(app, runeKey('t'))
	if g := app.Game().Guesses(); len(g) != 1 || g[0].Letter != "T" {
		t.Fatalf("guesses = %v", g)
	}
	if r := app.LastGuess(); r == nil || r.Err != nil || r.Outcome != game.Correct {
		t.Errorf("last = %+v", r)
	}

	Update(app, runeKey('1'))
	if r := app.LastGuess(); r == nil || !errors.Is(r.Err, game.ErrInvalid) {
		t.Errorf("last = %+v, want ErrInvalid", r)
	}

	Update(app, runeKey('T'))
	if r := app.LastGuess(); r == nil || !errors.Is(r.Err, game.ErrAlreadyGuessed) {
		t.Errorf("last = %+v, want ErrAlreadyGuessed", r)
	}
	if len(app.Game().Guesses()) != 1 {
		t.Errorf("guesses = %v", app.Game().Guesses())
	}
}

func TestNonRuneKeysIgnoredInProgress(t *testing.T) {
	app := newTestApp(t, 10, "test")
	for _, k := range []tcell.Key{tcell.KeyLeft, tcell.KeyRight, tcell.KeyEnter, tcell.KeyTab} {
		Update(app, Key{Code: k})
	}
	if _, ok := app.View().(InProgress); !ok {
		t.Errorf("view = %T", app.View())
	}
	if len(app.Game().Guesses()) != 0 || app.LastGuess() != nil {
		t.Errorf("guesses = %v last = %+v", app.Game().Guesses(), app.LastGuess())
	}
}

func TestWinMovesToComplete(t *testing.T) {
	app := newTestApp(t, 10, "win")
	typeLetters(app, "win")

	v, ok := app.View().(Complete)
	if !ok {
		t.Fatalf("view = %T", app.View())
	}
	if v.Selected != Yes {
		t.Errorf("selected = %v, want Yes", v.Selected)
	}
	if tl := app.Tally(); tl.Played != 1 || tl.Won != 1 || tl.Lost != 0 {
		t.Errorf("tally = %+v", tl)
	}
}

func TestLossMovesToComplete(t *testing.T) {
	app := newTestApp(t, 2, "test")
	typeLetters(app, "ab")

	if _, ok := app.View().(Complete); !ok {
		t.Fatalf("view = %T", app.View())
	}
	if tl := app.Tally(); tl.Played != 1 || tl.Won != 0 || tl.Lost != 1 {
		t.Errorf("tally = %+v", tl)
	}
	// Further letters are swallowed by the dialog.
	Update(app, runeKey('t'))
	if len(app.Game().Guesses()) != 2 {
		t.Errorf("guesses = %v", app.Game().Guesses())
	}
}

func TestToggleChoice(t *testing.T) {
	app := newTestApp(t, 1, "test")
	Update(app, runeKey('a'))

	want := []Choice{No, Yes, No}
	keys := []tcell.Key{tcell.KeyLeft, tcell.KeyRight, tcell.KeyRight}
	for i, k := range keys {
		Update(app, Key{Code: k})
		v := app.View().(Complete)
		if v.Selected != want[i] {
			t.Errorf("after key %d selected = %v, want %v", i, v.Selected, want[i])
		}
	}
}

func TestEnterOnNoQuits(t *testing.T) {
	app := newTestApp(t, 1, "test")
	Update(app, runeKey('a'))
	Update(app, Key{Code: tcell.KeyRight})
	Update(app, Key{Code: tcell.KeyEnter})

	if !app.ShouldQuit() {
		t.Error("Enter on No did not quit")
	}
	if app.Err() != nil {
		t.Errorf("err = %v", app.Err())
	}
}

func TestEnterOnYesStartsNewRound(t *testing.T) {
	app := newTestApp(t, 1, "test", "other")
	first := app.Game()
	Update(app, runeKey('a'))
	Update(app, Key{Code: tcell.KeyEnter})

	if app.ShouldQuit() {
		t.Fatal("Enter on Yes quit")
	}
	if _, ok := app.View().(InProgress); !ok {
		t.Fatalf("view = %T", app.View())
	}
	if app.Game() == first || word(app) != "OTHER" {
		t.Errorf("word = %q, want a fresh round of OTHER", word(app))
	}
	if len(app.Game().Guesses()) != 0 || app.LastGuess() != nil {
		t.Errorf("new round carried state: guesses = %v last = %+v", app.Game().Guesses(), app.LastGuess())
	}
	if tl := app.Tally(); tl.Played != 1 {
		t.Errorf("tally = %+v", tl)
	}
}

func TestNewRoundFailureQuits(t *testing.T) {
	app := newTestApp(t, 1, "test")
	Update(app, runeKey('a'))
	Update(app, Key{Code: tcell.KeyEnter})

	if !app.ShouldQuit() {
		t.Error("failed new round did not quit")
	}
	if app.Err() == nil {
		t.Error("Err = nil")
	}
}

func TestPassiveEventsChangeNothing(t *testing.T) {
	app := newTestApp(t, 10, "test")
	Update(app, runeKey('e'))
	before := fmt.Sprintf("%+v %+v %v", app.View(), app.LastGuess(), app.Game().Guesses())

	Update(app, Tick{})
	Update(app, Mouse{X: 3, Y: 4, Buttons: tcell.Button1})
	Update(app, Resize{Width: 10, Height: 5})

	after := fmt.Sprintf("%+v %+v %v", app.View(), app.LastGuess(), app.Game().Guesses())
	if before != after || app.ShouldQuit() {
		t.Errorf("state changed: %s -> %s", before, after)
	}
}

func TestNewAppFailsWithoutWords(t *testing.T) {
	if _, err := NewApp(&sequence{}, 10, 4); err == nil {
		t.Error("NewApp succeeded with an empty source")
	}
}
