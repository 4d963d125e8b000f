package game

import "testing"

func TestRankValues(t *testing.T) {
	cases := map[Rank]int{
		Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8, Nine: 9, Ten: 10,
		Jack: 10, Queen: 10, King: 10, Ace: 11,
	}
	for r, want := range cases {
		if got := r.Value(); got != want {
			t.Fatalf("%s.Value() = %d, want %d", r, got, want)
		}
	}
}

func TestCardNames(t *testing.T) {
	cases := []struct {
		c    Card
		name string
		code string
	}{
		{card(Ten, Clubs), "10 of Clubs", "Tc"},
		{card(Seven, Hearts), "7 of Hearts", "7h"},
		{card(Ace, Spades), "Ace of Spades", "As"},
		{card(Queen, Diamonds), "Queen of Diamonds", "Qd"},
	}
	for _, tc := range cases {
		if got := tc.c.String(); got != tc.name {
			t.Fatalf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.c.Code(); got != tc.code {
			t.Fatalf("Code() = %q, want %q", got, tc.code)
		}
	}
}

func TestUnknownRankPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown rank")
		}
	}()
	_ = Rank(1).Value()
}

func TestOrdinalsCoverDeck(t *testing.T) {
	seen := map[int]bool{}
	for _, s := range Suits {
		for _, r := range Ranks {
			o := card(r, s).ordinal()
			if o < 0 || o >= DeckSize || seen[o] {
				t.Fatalf("bad ordinal %d for %s", o, card(r, s))
			}
			seen[o] = true
		}
	}
}
