package console

import (
	"fmt"
	"io"

	"twentyone/internal/game"
	"twentyone/internal/session"

	"github.com/pterm/pterm"
)

// Printer narrates round events on the terminal. It is a display.Sink, so a
// failed write is reported to the fan-out rather than to the round.
type Printer struct {
	out   io.Writer
	color bool

	roundID      string
	openingCards int
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) Send(ev game.Event) error {
	if ev.RoundID != p.roundID {
		p.roundID = ev.RoundID
		p.openingCards = 0
	}
	line := p.format(ev)
	if line == "" {
		return nil
	}
	_, err := io.WriteString(p.out, line)
	return err
}

func (p *Printer) format(ev game.Event) string {
	switch ev.Type {
	case game.EventCardDealt:
		return p.formatCard(ev)
	case game.EventBust:
		if ev.Owner == game.OwnerPlayer {
			return p.paint(pterm.LightRed, "You're bust!") + "\n"
		}
		return p.paint(pterm.Green, "The dealer is bust!") + "\n"
	case game.EventSticks:
		if ev.Owner == game.OwnerPlayer {
			return fmt.Sprintf("You stick on %d\n\n", ev.Total)
		}
		return fmt.Sprintf("The dealer sticks on %d\n", ev.Total)
	case game.EventRoundResult:
		return p.formatResult(ev.Outcome) + "\n"
	default:
		return ""
	}
}

func (p *Printer) formatCard(ev game.Event) string {
	name := p.cardName(ev.Card)
	switch {
	case ev.Owner == game.OwnerDealer && ev.Opening:
		return fmt.Sprintf("The dealer is showing the %s\n\n", name)
	case ev.Owner == game.OwnerDealer:
		return fmt.Sprintf("The dealer drew the %s and now has %d\n", name, ev.Total)
	case ev.Opening:
		p.openingCards++
		if p.openingCards == 1 {
			return fmt.Sprintf("Your first card is the %s\n", name)
		}
		return fmt.Sprintf("Your second card is the %s\nYou have: %d\n", name, ev.Total)
	default:
		return fmt.Sprintf("You drew the %s and now have %d\n", name, ev.Total)
	}
}

func (p *Printer) formatResult(o game.Outcome) string {
	switch {
	case o.PlayerWon():
		return p.paint(pterm.Green, "You win!")
	case o.DealerWon():
		return p.paint(pterm.LightRed, "You lose!")
	default:
		return p.paint(pterm.Yellow, "It's a draw!")
	}
}

func (p *Printer) cardName(c game.Card) string {
	if c.Suit == game.Hearts || c.Suit == game.Diamonds {
		return p.paint(pterm.LightRed, c.String())
	}
	return p.paint(pterm.Cyan, c.String())
}

func (p *Printer) paint(fn func(a ...interface{}) string, s string) string {
	if !p.color {
		return s
	}
	return fn(s)
}

// Summary prints the end-of-session tally.
func (p *Printer) Summary(s session.Snapshot) error {
	_, err := fmt.Fprintf(p.out, "Rounds: %d  Won: %d  Lost: %d  Drawn: %d\n", s.Rounds, s.PlayerWins, s.PlayerLosses, s.Draws)
	return err
}
