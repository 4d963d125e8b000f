package game

import "fmt"

const (
	MaxScore         = 21
	DealerStickScore = 17

	aceDemotion = 10
)

// Hand keeps one side's running total. Aces enter as 11 and are tracked in
// softAces until they are demoted to 1.
type Hand struct {
	total    int
	softAces int
	cards    []Card
}

// Draw deals the next card from d into the hand and returns it.
func (h *Hand) Draw(d *Deck) (Card, error) {
	c, err := d.Deal()
	if err != nil {
		return Card{}, err
	}
	h.total += c.Value()
	if c.IsAce() {
		h.softAces++
	}
	h.cards = append(h.cards, c)
	return c, nil
}

// ResolveSoftness demotes soft aces while the hand is over MaxScore.
func (h *Hand) ResolveSoftness() {
	for h.total > MaxScore && h.softAces > 0 {
		h.total -= aceDemotion
		h.softAces--
	}
	if h.softAces < 0 {
		panic(fmt.Sprintf("game: negative soft ace count %d", h.softAces))
	}
}

func (h *Hand) IsBust() bool {
	return h.total > MaxScore
}

func (h *Hand) Total() int {
	return h.total
}

func (h *Hand) SoftAces() int {
	return h.softAces
}

func (h *Hand) IsSoft() bool {
	return h.softAces > 0
}

// Cards returns a copy of the cards drawn so far.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}
