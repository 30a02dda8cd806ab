// Package stats keeps the per-process running tallies of finished rounds.
// Tallies live only as long as the process; nothing is written to disk.
package stats

import (
	"fmt"

	"github.com/robalobadob/hangman/internal/game"
)

// Tally counts finished rounds. Counters only ever go up.
type Tally struct {
	Played int
	Won    int
	Lost   int
}

// Record counts a finished round. In-progress statuses are ignored.
func (t *Tally) Record(s game.Status) {
	switch s {
	case game.StatusWon:
		t.Played++
		t.Won++
	case game.StatusLost:
		t.Played++
		t.Lost++
	}
}

func (t Tally) String() string {
	return fmt.Sprintf("Played %d · Won %d · Lost %d", t.Played, t.Won, t.Lost)
}
