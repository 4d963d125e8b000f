package display

import (
	"time"

	"twentyone/internal/game"
)

// Sink is one destination for round events. Unlike game.Display it may fail;
// Fanout absorbs the failure.
type Sink interface {
	Send(ev game.Event) error
}

type SinkFunc func(ev game.Event) error

func (f SinkFunc) Send(ev game.Event) error {
	return f(ev)
}

// Target is a named sink with an optional event-type allowlist. An empty
// allowlist accepts every event.
type Target struct {
	Name           string
	Sink           Sink
	EventAllowlist []game.EventType
}

type Config struct {
	// FailureThreshold consecutive failures mute a target for MuteFor.
	// Zero disables muting.
	FailureThreshold int
	MuteFor          time.Duration
}

type breakerState struct {
	consecutiveFailures int
	mutedUntil          time.Time
}
