package session

import (
	"expvar"
	"sync"
	"time"

	"twentyone/internal/game"
	"twentyone/internal/game/viewmodel"
)

var (
	metricRoundsTotal   = expvar.NewInt("rounds_total")
	metricOutcomesTotal = expvar.NewMap("round_outcomes_total")
)

// Scoreboard tallies finished rounds. The session writes to it and the stats
// server reads it, so it is the one piece of shared state.
type Scoreboard struct {
	mu       sync.RWMutex
	outcomes map[game.Outcome]int
	rounds   int
	recent   []viewmodel.RoundView
	keep     int
}

type Snapshot struct {
	Rounds       int            `json:"rounds"`
	PlayerWins   int            `json:"player_wins"`
	PlayerLosses int            `json:"player_losses"`
	Draws        int            `json:"draws"`
	Outcomes     map[string]int `json:"outcomes"`
}

func NewScoreboard(keep int) *Scoreboard {
	if keep < 0 {
		keep = 0
	}
	return &Scoreboard{outcomes: make(map[game.Outcome]int, len(game.Outcomes)), keep: keep}
}

func (b *Scoreboard) Record(res game.Result, finishedAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rounds++
	b.outcomes[res.Outcome]++
	if b.keep > 0 {
		b.recent = append(b.recent, viewmodel.BuildRoundView(res, finishedAt))
		if len(b.recent) > b.keep {
			b.recent = append(b.recent[:0:0], b.recent[len(b.recent)-b.keep:]...)
		}
	}
	metricRoundsTotal.Add(1)
	metricOutcomesTotal.Add(string(res.Outcome), 1)
}

func (b *Scoreboard) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := Snapshot{Rounds: b.rounds, Outcomes: make(map[string]int, len(game.Outcomes))}
	for _, o := range game.Outcomes {
		n := b.outcomes[o]
		s.Outcomes[string(o)] = n
		switch {
		case o.PlayerWon():
			s.PlayerWins += n
		case o.DealerWon():
			s.PlayerLosses += n
		default:
			s.Draws += n
		}
	}
	return s
}

// Recent returns up to limit of the latest rounds, newest first.
func (b *Scoreboard) Recent(limit int) []viewmodel.RoundView {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if limit <= 0 || limit > len(b.recent) {
		limit = len(b.recent)
	}
	out := make([]viewmodel.RoundView, 0, limit)
	for i := len(b.recent) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, b.recent[i])
	}
	return out
}
