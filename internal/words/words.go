// internal/words/words.go
//
// Provides the word source for the game engine.
//
// Responsibilities:
//   - Load the candidate word list from a configured file (WORDS_FILE) or fall back
//     to the list embedded in the assets package.
//   - Normalize entries (trimmed, uppercase, A–Z only) once, at load time.
//   - Supply uniformly random words of a minimum length through the Source interface.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   (one word per line, "#" comments ignored)
//
// Constraints:
//   • Lists are immutable after construction.
//   • The default list is loaded once (sync.Once).

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/hangman/assets"
)

// ErrNoCandidates is returned when no word satisfies the requested minimum length.
var ErrNoCandidates = errors.New("words: no candidate word is long enough")

// Source supplies secret words to the game engine.
// Implementations must return uppercase words made only of the letters A–Z.
type Source interface {
	RandomWord(minLength int) (string, error)
}

// List is an immutable, normalized word list.
type List struct {
	words []string
}

var (
	defaultOnce sync.Once
	defaultList *List
	defaultErr  error
)

// NewList normalizes raw entries into a List.
// Entries are trimmed and uppercased; anything that is not purely A–Z is dropped.
func NewList(raw []string) *List {
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return &List{words: out}
}

// Parse reads one word per line from r. Blank lines and "#" comments are skipped.
func Parse(r io.Reader) (*List, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw = append(raw, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewList(raw), nil
}

// Load reads a word list file.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return l, nil
}

// Default returns the embedded word list, loading it on first use.
func Default() (*List, error) {
	defaultOnce.Do(func() {
		raw, err := assets.WordList()
		if err != nil {
			defaultErr = fmt.Errorf("words: embedded list: %w", err)
			return
		}
		defaultList = NewList(raw)
		if defaultList.Len() == 0 {
			defaultErr = errors.New("words: embedded list is empty")
		}
	})
	return defaultList, defaultErr
}

// Open returns the list stored at path, or the embedded default when path is empty.
func Open(path string) (*List, error) {
	if path != "" {
		return Load(path)
	}
	return Default()
}

// Len reports how many words the list holds.
func (l *List) Len() int { return len(l.words) }

// Candidates returns the words with at least minLength letters, in list order.
func (l *List) Candidates(minLength int) []string {
	var out []string
	for _, w := range l.words {
		if len(w) >= minLength {
			out = append(out, w)
		}
	}
	return out
}

// RandomWord returns a uniformly random candidate of at least minLength letters.
func (l *List) RandomWord(minLength int) (string, error) {
	cands := l.Candidates(minLength)
	if len(cands) == 0 {
		return "", fmt.Errorf("%w (minimum %d of %d words)", ErrNoCandidates, minLength, l.Len())
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(cands))))
	if err != nil {
		return "", fmt.Errorf("words: random index: %w", err)
	}
	return cands[n.Int64()], nil
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
