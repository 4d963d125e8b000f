package game

import "testing"

// stackShuffler moves the given cards to the top of a canonical deck, in
// order, leaving the rest where they were.
type stackShuffler struct {
	top []Card
}

func (s stackShuffler) Shuffle(n int, swap func(i, j int)) {
	order := make([]int, n)
	pos := make([]int, n)
	for i := range order {
		order[i] = i
		pos[i] = i
	}
	for i, c := range s.top {
		want := c.ordinal()
		j := pos[want]
		swap(i, j)
		order[i], order[j] = order[j], order[i]
		pos[order[i]] = i
		pos[order[j]] = j
	}
}

func stackedDeck(t *testing.T, top ...Card) *Deck {
	t.Helper()
	d := NewDeck()
	d.Shuffle(stackShuffler{top: top})
	return d
}

// scriptedDecider answers from a fixed list and stands once it runs out.
type scriptedDecider struct {
	answers []Decision
	asked   []TurnView
}

func (s *scriptedDecider) RequestHitOrStand(view TurnView) Decision {
	s.asked = append(s.asked, view)
	if len(s.answers) == 0 {
		return DecisionStand
	}
	d := s.answers[0]
	s.answers = s.answers[1:]
	return d
}

type recordingDisplay struct {
	events []Event
}

func (r *recordingDisplay) Display(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recordingDisplay) ofType(t EventType) []Event {
	out := []Event{}
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func card(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}
