package display

import (
	"errors"
	"fmt"
	"time"

	"twentyone/internal/game"

	"github.com/rs/zerolog/log"
)

var errMuted = errors.New("sink_muted")

// Fanout delivers every event to each matching target in order. It
// implements game.Display: a target that errors or panics is logged and
// counted, and the round carries on.
type Fanout struct {
	cfg     Config
	targets []Target
	breaker map[string]breakerState
	now     func() time.Time
}

func NewFanout(cfg Config, targets ...Target) *Fanout {
	return &Fanout{
		cfg:     cfg,
		targets: targets,
		breaker: make(map[string]breakerState, len(targets)),
		now:     time.Now,
	}
}

func (f *Fanout) Display(ev game.Event) {
	metricEventsTotal.Add(1)
	for _, target := range matchTargets(f.targets, ev) {
		now := f.now()
		if err := f.beforeSend(target.Name, now); err != nil {
			metricMutedDroppedTotal.Add(1)
			continue
		}
		if err := send(target.Sink, ev); err != nil {
			metricFailedTotal.Add(1)
			f.afterFailure(target.Name, now)
			log.Warn().Err(err).
				Str("target", target.Name).
				Str("round_id", ev.RoundID).
				Str("event", string(ev.Type)).
				Msg("display target failed")
			continue
		}
		metricSentTotal.Add(1)
		f.afterSuccess(target.Name)
	}
}

func send(s Sink, ev game.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			metricPanicTotal.Add(1)
			err = fmt.Errorf("display sink panic: %v", r)
		}
	}()
	return s.Send(ev)
}

func (f *Fanout) beforeSend(name string, now time.Time) error {
	state := f.breaker[name]
	if !state.mutedUntil.IsZero() && now.Before(state.mutedUntil) {
		return errMuted
	}
	return nil
}

func (f *Fanout) afterFailure(name string, now time.Time) {
	if f.cfg.FailureThreshold <= 0 {
		return
	}
	state := f.breaker[name]
	state.consecutiveFailures++
	if state.consecutiveFailures >= f.cfg.FailureThreshold {
		state.mutedUntil = now.Add(f.cfg.MuteFor)
		state.consecutiveFailures = 0
		log.Warn().Str("target", name).Dur("mute_for", f.cfg.MuteFor).Msg("display target muted")
	}
	f.breaker[name] = state
}

func (f *Fanout) afterSuccess(name string) {
	f.breaker[name] = breakerState{}
}
