package game

type Owner string

const (
	OwnerPlayer Owner = "player"
	OwnerDealer Owner = "dealer"
)

type Decision string

const (
	DecisionHit   Decision = "hit"
	DecisionStand Decision = "stand"
)

type Outcome string

const (
	OutcomePlayerBust Outcome = "player_bust"
	OutcomeDealerBust Outcome = "dealer_bust"
	OutcomePlayerWin  Outcome = "player_win"
	OutcomeDealerWin  Outcome = "dealer_win"
	OutcomeDraw       Outcome = "draw"
)

// Outcomes lists every verdict a round can end with.
var Outcomes = [...]Outcome{OutcomePlayerBust, OutcomeDealerBust, OutcomePlayerWin, OutcomeDealerWin, OutcomeDraw}

func (o Outcome) Valid() bool {
	switch o {
	case OutcomePlayerBust, OutcomeDealerBust, OutcomePlayerWin, OutcomeDealerWin, OutcomeDraw:
		return true
	default:
		return false
	}
}

// PlayerWon reports whether the verdict goes to the player.
func (o Outcome) PlayerWon() bool {
	return o == OutcomePlayerWin || o == OutcomeDealerBust
}

// DealerWon reports whether the verdict goes to the dealer.
func (o Outcome) DealerWon() bool {
	return o == OutcomeDealerWin || o == OutcomePlayerBust
}

// TurnView is what the player gets to see when asked to hit or stand.
type TurnView struct {
	PlayerTotal  int
	SoftAces     int
	DealerUpCard Card
}

// Result is the settled state of one round.
type Result struct {
	RoundID     string
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	PlayerCards []Card
	DealerCards []Card
}
