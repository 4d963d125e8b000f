package game

type EventType string

const (
	EventCardDealt   EventType = "card_dealt"
	EventBust        EventType = "bust"
	EventSticks      EventType = "sticks"
	EventRoundResult EventType = "round_result"
)

// Event is a state transition reported to the Display. Which fields are set
// depends on Type:
//
//	card_dealt    Owner, Card, Total, Opening
//	bust          Owner, Total
//	sticks        Owner, Total
//	round_result  Outcome, Total (player) and DealerTotal
type Event struct {
	RoundID     string
	Type        EventType
	Owner       Owner
	Card        Card
	Total       int
	DealerTotal int
	Opening     bool
	Outcome     Outcome
}

// Display receives round events. It has no error return: a failing display
// must never stop a round.
type Display interface {
	Display(ev Event)
}

// Decider answers the player's hit-or-stand question. Implementations keep
// asking until they have a valid answer.
type Decider interface {
	RequestHitOrStand(view TurnView) Decision
}

// Replayer answers yes/no questions for the session loop.
type Replayer interface {
	RequestYesNo(prompt string) bool
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(ev Event)

func (f DisplayFunc) Display(ev Event) {
	f(ev)
}

// DeciderFunc adapts a plain function to Decider.
type DeciderFunc func(view TurnView) Decision

func (f DeciderFunc) RequestHitOrStand(view TurnView) Decision {
	return f(view)
}
