package game

import "fmt"

type Suit int

type Rank int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

const (
	suitCount = 4
	rankCount = 13
	DeckSize  = suitCount * rankCount
)

// Suits and Ranks list every value in canonical deck order.
var (
	Suits = [suitCount]Suit{Clubs, Diamonds, Hearts, Spades}
	Ranks = [rankCount]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Value is the blackjack point value of the rank. Aces count as 11 here;
// Hand demotes them to 1 when needed.
func (r Rank) Value() int {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return int(r)
	case Jack, Queen, King:
		return 10
	case Ace:
		return 11
	default:
		panic(fmt.Sprintf("game: unknown rank %d", int(r)))
	}
}

func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return fmt.Sprintf("%d", int(r))
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		panic(fmt.Sprintf("game: unknown rank %d", int(r)))
	}
}

func (r Rank) code() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return fmt.Sprintf("%d", int(r))
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		panic(fmt.Sprintf("game: unknown rank %d", int(r)))
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		panic(fmt.Sprintf("game: unknown suit %d", int(s)))
	}
}

func (s Suit) code() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		panic(fmt.Sprintf("game: unknown suit %d", int(s)))
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

// String names the card the way the table announces it, e.g. "10 of Clubs".
func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Code is the compact two-letter form used in logs, e.g. "Tc" or "As".
func (c Card) Code() string {
	return c.Rank.code() + c.Suit.code()
}

func (c Card) Value() int {
	return c.Rank.Value()
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// ordinal is the card's position in a freshly built deck.
func (c Card) ordinal() int {
	return int(c.Suit)*rankCount + int(c.Rank-Two)
}

// Codes renders a card slice in compact form.
func Codes(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Code())
	}
	return out
}
