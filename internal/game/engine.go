package game

import "fmt"

// Round plays one hand of blackjack between a player and the dealer. It owns
// its Deck and both Hands for its whole lifetime and is not safe for
// concurrent use.
type Round struct {
	ID      string
	Deck    *Deck
	Player  Hand
	Dealer  Hand
	decider Decider
	display Display
	upCard  Card
}

func NewRound(id string, deck *Deck, decider Decider, display Display) *Round {
	if display == nil {
		display = DisplayFunc(func(Event) {})
	}
	return &Round{ID: id, Deck: deck, decider: decider, display: display}
}

// Play runs the round to its verdict. The only error is ErrDeckExhausted,
// which cannot happen with a fresh deck under these rules.
func (r *Round) Play() (Result, error) {
	up, err := r.Dealer.Draw(r.Deck)
	if err != nil {
		return Result{}, fmt.Errorf("deal dealer up-card: %w", err)
	}
	r.upCard = up
	r.emit(Event{Type: EventCardDealt, Owner: OwnerDealer, Card: up, Total: r.Dealer.Total(), Opening: true})

	for i := 0; i < 2; i++ {
		c, err := r.Player.Draw(r.Deck)
		if err != nil {
			return Result{}, fmt.Errorf("deal player opening card: %w", err)
		}
		r.Player.ResolveSoftness()
		r.emit(Event{Type: EventCardDealt, Owner: OwnerPlayer, Card: c, Total: r.Player.Total(), Opening: true})
	}

	bust, err := r.playerTurn()
	if err != nil {
		return Result{}, err
	}
	if bust {
		return r.finish(OutcomePlayerBust), nil
	}

	bust, err = r.dealerTurn()
	if err != nil {
		return Result{}, err
	}
	if bust {
		return r.finish(OutcomeDealerBust), nil
	}
	return r.finish(Verdict(r.Player.Total(), r.Dealer.Total())), nil
}

// Verdict compares two standing totals.
func Verdict(player, dealer int) Outcome {
	switch {
	case player > dealer:
		return OutcomePlayerWin
	case dealer > player:
		return OutcomeDealerWin
	default:
		return OutcomeDraw
	}
}

func (r *Round) playerTurn() (bool, error) {
	for {
		if r.Player.IsBust() {
			r.emit(Event{Type: EventBust, Owner: OwnerPlayer, Total: r.Player.Total()})
			return true, nil
		}
		view := TurnView{PlayerTotal: r.Player.Total(), SoftAces: r.Player.SoftAces(), DealerUpCard: r.upCard}
		switch d := r.decider.RequestHitOrStand(view); d {
		case DecisionHit:
			c, err := r.Player.Draw(r.Deck)
			if err != nil {
				return false, fmt.Errorf("player hit: %w", err)
			}
			r.Player.ResolveSoftness()
			r.emit(Event{Type: EventCardDealt, Owner: OwnerPlayer, Card: c, Total: r.Player.Total()})
		case DecisionStand:
			r.emit(Event{Type: EventSticks, Owner: OwnerPlayer, Total: r.Player.Total()})
			return false, nil
		default:
			panic(fmt.Sprintf("game: decider returned unknown decision %q", d))
		}
	}
}

func (r *Round) dealerTurn() (bool, error) {
	for r.Dealer.Total() < DealerStickScore {
		c, err := r.Dealer.Draw(r.Deck)
		if err != nil {
			return false, fmt.Errorf("dealer draw: %w", err)
		}
		r.Dealer.ResolveSoftness()
		r.emit(Event{Type: EventCardDealt, Owner: OwnerDealer, Card: c, Total: r.Dealer.Total()})
	}
	if r.Dealer.IsBust() {
		r.emit(Event{Type: EventBust, Owner: OwnerDealer, Total: r.Dealer.Total()})
		return true, nil
	}
	r.emit(Event{Type: EventSticks, Owner: OwnerDealer, Total: r.Dealer.Total()})
	return false, nil
}

func (r *Round) finish(o Outcome) Result {
	r.emit(Event{Type: EventRoundResult, Outcome: o, Total: r.Player.Total(), DealerTotal: r.Dealer.Total()})
	return Result{
		RoundID:     r.ID,
		Outcome:     o,
		PlayerTotal: r.Player.Total(),
		DealerTotal: r.Dealer.Total(),
		PlayerCards: r.Player.Cards(),
		DealerCards: r.Dealer.Cards(),
	}
}

func (r *Round) emit(ev Event) {
	ev.RoundID = r.ID
	r.display.Display(ev)
}
