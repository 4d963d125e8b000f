package session

import (
	"context"
	"fmt"
	"time"

	"twentyone/internal/game"

	"github.com/rs/zerolog/log"
)

const playAgainPrompt = "Would you like to play again?"

// Session repeats rounds until the replayer declines or ctx is cancelled.
// Each round gets a freshly built and shuffled deck.
type Session struct {
	Shuffler game.Shuffler
	Decider  game.Decider
	Replayer game.Replayer
	Display  game.Display
	Board    *Scoreboard

	NewID func() string
	Now   func() time.Time
}

func New(shuffler game.Shuffler, decider game.Decider, replayer game.Replayer, display game.Display, board *Scoreboard) *Session {
	return &Session{
		Shuffler: shuffler,
		Decider:  decider,
		Replayer: replayer,
		Display:  display,
		Board:    board,
		NewID:    NewRoundID,
		Now:      time.Now,
	}
}

func (s *Session) PlayRound() (game.Result, error) {
	deck := game.NewDeck()
	deck.Shuffle(s.Shuffler)

	id := s.NewID()
	res, err := game.NewRound(id, deck, s.Decider, s.Display).Play()
	if err != nil {
		return game.Result{}, fmt.Errorf("round %s: %w", id, err)
	}
	if s.Board != nil {
		s.Board.Record(res, s.Now())
	}
	log.Info().
		Str("round_id", id).
		Str("outcome", string(res.Outcome)).
		Int("player_total", res.PlayerTotal).
		Int("dealer_total", res.DealerTotal).
		Strs("player_cards", game.Codes(res.PlayerCards)).
		Strs("dealer_cards", game.Codes(res.DealerCards)).
		Msg("round finished")
	return res, nil
}

// Run plays rounds until the player stops. It returns ctx.Err() when
// cancelled between rounds and any round error unchanged.
func (s *Session) Run(ctx context.Context) error {
	log.Info().Msg("session started")
	defer log.Info().Msg("session ended")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.PlayRound(); err != nil {
			return err
		}
		if !s.Replayer.RequestYesNo(playAgainPrompt) {
			return nil
		}
	}
}
