package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var ErrDeckExhausted = errors.New("deck_exhausted")

// Shuffler is the random source a Deck shuffles with. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type Deck struct {
	cards [DeckSize]Card
	next  int
	dealt [DeckSize]bool
}

// NewDeck builds the 52 cards in canonical order: every rank of Clubs, then
// Diamonds, Hearts and Spades.
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for _, s := range Suits {
		for _, r := range Ranks {
			d.cards[i] = Card{Rank: r, Suit: s}
			i++
		}
	}
	return d
}

// NewRand returns a generator for Shuffle. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (d *Deck) Shuffle(s Shuffler) {
	s.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.next = 0
	d.dealt = [DeckSize]bool{}
}

func (d *Deck) Deal() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	c := d.cards[d.next]
	d.next++
	if d.dealt[c.ordinal()] {
		panic(fmt.Sprintf("game: %s dealt twice since last shuffle", c))
	}
	d.dealt[c.ordinal()] = true
	return c, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
