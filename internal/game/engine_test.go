package game

import (
	"errors"
	"testing"
)

func TestRoundDealerSticksOnTwentyAndWins(t *testing.T) {
	// dealer up, player, player, then dealer draws
	d := stackedDeck(t,
		card(Six, Spades),
		card(Ten, Clubs), card(Seven, Hearts),
		card(Five, Diamonds), card(Nine, Hearts),
	)
	decider := &scriptedDecider{answers: []Decision{DecisionStand}}
	disp := &recordingDisplay{}

	res, err := NewRound("r1", d, decider, disp).Play()
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Outcome != OutcomeDealerWin {
		t.Fatalf("Outcome = %s, want %s", res.Outcome, OutcomeDealerWin)
	}
	if res.PlayerTotal != 17 || res.DealerTotal != 20 {
		t.Fatalf("totals = %d/%d, want 17/20", res.PlayerTotal, res.DealerTotal)
	}

	dealt := disp.ofType(EventCardDealt)
	if len(dealt) != 5 {
		t.Fatalf("card_dealt events = %d, want 5", len(dealt))
	}
	if dealt[0].Owner != OwnerDealer || !dealt[0].Opening || dealt[0].Card != card(Six, Spades) {
		t.Fatalf("first event = %+v, want dealer up-card 6 of Spades", dealt[0])
	}
	if dealt[3].Total != 11 || dealt[4].Total != 20 {
		t.Fatalf("dealer running totals = %d,%d, want 11,20", dealt[3].Total, dealt[4].Total)
	}
	sticks := disp.ofType(EventSticks)
	if len(sticks) != 2 || sticks[1].Owner != OwnerDealer || sticks[1].Total != 20 {
		t.Fatalf("sticks events = %+v, want player then dealer on 20", sticks)
	}
	last := disp.events[len(disp.events)-1]
	if last.Type != EventRoundResult || last.Outcome != OutcomeDealerWin || last.RoundID != "r1" {
		t.Fatalf("last event = %+v, want round_result dealer_win", last)
	}
}

func TestRoundNaturalTwentyOneIsStillPrompted(t *testing.T) {
	d := stackedDeck(t,
		card(Nine, Clubs),
		card(Ace, Spades), card(King, Hearts),
		card(Eight, Diamonds),
	)
	decider := &scriptedDecider{answers: []Decision{DecisionStand}}

	res, err := NewRound("r2", d, decider, nil).Play()
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if len(decider.asked) != 1 {
		t.Fatalf("player asked %d times, want 1", len(decider.asked))
	}
	view := decider.asked[0]
	if view.PlayerTotal != 21 || view.SoftAces != 1 || view.DealerUpCard != card(Nine, Clubs) {
		t.Fatalf("view = %+v, want 21 soft vs 9 of Clubs", view)
	}
	if res.PlayerTotal != 21 || res.DealerTotal != 17 {
		t.Fatalf("totals = %d/%d, want 21/17", res.PlayerTotal, res.DealerTotal)
	}
	if res.Outcome != OutcomePlayerWin {
		t.Fatalf("Outcome = %s, want %s", res.Outcome, OutcomePlayerWin)
	}
}

func TestRoundPlayerBustSkipsDealer(t *testing.T) {
	d := stackedDeck(t,
		card(Two, Spades),
		card(Ten, Clubs), card(Six, Hearts),
		card(Four, Diamonds), card(King, Spades),
	)
	decider := &scriptedDecider{answers: []Decision{DecisionHit, DecisionHit, DecisionHit}}
	disp := &recordingDisplay{}

	res, err := NewRound("r3", d, decider, disp).Play()
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Outcome != OutcomePlayerBust || !res.Outcome.DealerWon() {
		t.Fatalf("Outcome = %s, want %s", res.Outcome, OutcomePlayerBust)
	}
	if res.PlayerTotal != 30 {
		t.Fatalf("PlayerTotal = %d, want 30", res.PlayerTotal)
	}
	if len(decider.asked) != 2 {
		t.Fatalf("player asked %d times, want 2", len(decider.asked))
	}
	if len(res.DealerCards) != 1 || res.DealerTotal != 2 {
		t.Fatalf("dealer played: cards=%v total=%d", res.DealerCards, res.DealerTotal)
	}
	busts := disp.ofType(EventBust)
	if len(busts) != 1 || busts[0].Owner != OwnerPlayer {
		t.Fatalf("bust events = %+v, want one player bust", busts)
	}
	for _, ev := range disp.events {
		if ev.Owner == OwnerDealer && ev.Type != EventCardDealt {
			t.Fatalf("dealer event after player bust: %+v", ev)
		}
	}
}

func TestRoundDealerBust(t *testing.T) {
	d := stackedDeck(t,
		card(Six, Spades),
		card(Ten, Clubs), card(Eight, Hearts),
		card(Jack, Diamonds), card(Nine, Clubs),
	)
	disp := &recordingDisplay{}
	res, err := NewRound("r4", d, &scriptedDecider{}, disp).Play()
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Outcome != OutcomeDealerBust || !res.Outcome.PlayerWon() {
		t.Fatalf("Outcome = %s, want %s", res.Outcome, OutcomeDealerBust)
	}
	if res.DealerTotal != 25 {
		t.Fatalf("DealerTotal = %d, want 25", res.DealerTotal)
	}
	busts := disp.ofType(EventBust)
	if len(busts) != 1 || busts[0].Owner != OwnerDealer {
		t.Fatalf("bust events = %+v, want one dealer bust", busts)
	}
}

func TestRoundDealerResolvesSoftAceBeforeBust(t *testing.T) {
	// dealer: A, 5 (16 soft), K -> 26 -> 16, 4 -> 20
	d := stackedDeck(t,
		card(Ace, Spades),
		card(Ten, Clubs), card(Nine, Hearts),
		card(Five, Diamonds), card(King, Clubs), card(Four, Hearts),
	)
	res, err := NewRound("r5", d, &scriptedDecider{}, nil).Play()
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.DealerTotal != 20 || res.Outcome != OutcomeDealerWin {
		t.Fatalf("dealer total=%d outcome=%s, want 20 dealer_win", res.DealerTotal, res.Outcome)
	}
}

func TestRoundDraw(t *testing.T) {
	d := stackedDeck(t,
		card(Ten, Spades),
		card(Ten, Clubs), card(Eight, Hearts),
		card(Eight, Diamonds),
	)
	res, err := NewRound("r6", d, &scriptedDecider{}, nil).Play()
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if res.Outcome != OutcomeDraw {
		t.Fatalf("Outcome = %s, want %s", res.Outcome, OutcomeDraw)
	}
}

func TestRoundExhaustedDeckReturnsError(t *testing.T) {
	d := NewDeck()
	for i := 0; i < DeckSize-1; i++ {
		_, _ = d.Deal()
	}
	_, err := NewRound("r7", d, &scriptedDecider{}, nil).Play()
	if !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("err = %v, want ErrDeckExhausted", err)
	}
}

func TestRoundUnknownDecisionPanics(t *testing.T) {
	d := stackedDeck(t, card(Two, Spades), card(Three, Clubs), card(Four, Hearts))
	bad := DeciderFunc(func(TurnView) Decision { return "double" })
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown decision")
		}
	}()
	_, _ = NewRound("r8", d, bad, nil).Play()
}

func TestRoundOutcomeAlwaysValid(t *testing.T) {
	rnd := NewRand(11)
	coin := DeciderFunc(func(TurnView) Decision {
		if rnd.Intn(2) == 0 {
			return DecisionHit
		}
		return DecisionStand
	})
	for i := 0; i < 1000; i++ {
		d := NewDeck()
		d.Shuffle(rnd)
		res, err := NewRound("rand", d, coin, nil).Play()
		if err != nil {
			t.Fatalf("round %d: %v", i, err)
		}
		if !res.Outcome.Valid() {
			t.Fatalf("round %d: invalid outcome %q", i, res.Outcome)
		}
		if res.Outcome == OutcomePlayerBust && res.PlayerTotal <= MaxScore {
			t.Fatalf("round %d: player_bust with total %d", i, res.PlayerTotal)
		}
		if res.Outcome != OutcomePlayerBust && res.DealerTotal < DealerStickScore {
			t.Fatalf("round %d: dealer stopped at %d", i, res.DealerTotal)
		}
	}
}

func TestVerdict(t *testing.T) {
	cases := []struct {
		player, dealer int
		want           Outcome
	}{
		{20, 18, OutcomePlayerWin},
		{17, 20, OutcomeDealerWin},
		{19, 19, OutcomeDraw},
	}
	for _, tc := range cases {
		if got := Verdict(tc.player, tc.dealer); got != tc.want {
			t.Fatalf("Verdict(%d, %d) = %s, want %s", tc.player, tc.dealer, got, tc.want)
		}
	}
}
