package display

import (
	"twentyone/internal/game"

	"github.com/rs/zerolog"
)

// LogSink writes each event as a structured debug line.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Send(ev game.Event) error {
	e := s.Logger.Debug().
		Str("round_id", ev.RoundID).
		Str("event", string(ev.Type))
	switch ev.Type {
	case game.EventCardDealt:
		e = e.Str("owner", string(ev.Owner)).Str("card", ev.Card.Code()).Int("total", ev.Total).Bool("opening", ev.Opening)
	case game.EventBust, game.EventSticks:
		e = e.Str("owner", string(ev.Owner)).Int("total", ev.Total)
	case game.EventRoundResult:
		e = e.Str("outcome", string(ev.Outcome)).Int("player_total", ev.Total).Int("dealer_total", ev.DealerTotal)
	}
	e.Msg("round event")
	return nil
}
