package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewListNormalizes(t *testing.T) {
	l := NewList([]string{" apple ", "Banana", "it's", "naïve", "", "CHERRY", "x2"})

	got := l.Candidates(0)
	want := []string{"APPLE", "BANANA", "CHERRY"}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidates[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidatesMinimumLength(t *testing.T) {
	l := NewList([]string{"a", "ab", "abc", "abcd"})

	tests := []struct {
		min  int
		want int
	}{
		{0, 4},
		{1, 4},
		{3, 2},
		{4, 1},
		{5, 0},
	}
	for _, tt := range tests {
		if got := len(l.Candidates(tt.min)); got != tt.want {
			t.Errorf("Candidates(%d) = %d words, want %d", tt.min, got, tt.want)
		}
	}
}

func TestRandomWordHonorsMinimum(t *testing.T) {
	l := NewList([]string{"cat", "horse", "dog", "zebra"})

	for i := 0; i < 50; i++ {
		w, err := l.RandomWord(4)
		if err != nil {
			t.Fatalf("RandomWord: %v", err)
		}
		if w != "HORSE" && w != "ZEBRA" {
			t.Fatalf("RandomWord(4) = %q", w)
		}
	}
}

func TestRandomWordNoCandidates(t *testing.T) {
	l := NewList([]string{"cat"})

	_, err := l.RandomWord(10)
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("err = %v, want ErrNoCandidates", err)
	}
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	in := "# header\n\nword\n  # indented comment\nother\r\n"
	l, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}

func TestDefaultListIsUsable(t *testing.T) {
	l, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	w, err := l.RandomWord(4)
	if err != nil {
		t.Fatalf("RandomWord: %v", err)
	}
	if len(w) < 4 || strings.ToUpper(w) != w {
		t.Errorf("RandomWord(4) = %q", w)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("gopher\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	w, err := l.RandomWord(1)
	if err != nil || w != "GOPHER" {
		t.Errorf("RandomWord = %q, %v", w, err)
	}

	def, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	if want, _ := Default(); def != want {
		t.Error("Open(\"\") did not return the embedded list")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	_, err := Load(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load err = %v, want ErrNotExist", err)
	}
	if n := strings.Count(err.Error(), path); n != 1 {
		t.Errorf("error names the path %d times: %v", n, err)
	}
}
