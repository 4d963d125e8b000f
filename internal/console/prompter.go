package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"twentyone/internal/game"

	"github.com/rs/zerolog/log"
)

const hitOrStickPrompt = "(h) to hit, or (s) to stick: "

// Prompter asks the human at the terminal. Unrecognised answers are asked
// again; end of input counts as "stick" and "no" so a closed stdin ends the
// session instead of spinning.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) RequestHitOrStand(_ game.TurnView) game.Decision {
	for {
		fmt.Fprint(p.out, hitOrStickPrompt)
		answer, ok := p.readAnswer()
		if !ok {
			return game.DecisionStand
		}
		switch answer {
		case "h", "hit":
			return game.DecisionHit
		case "s", "stick", "stand":
			return game.DecisionStand
		}
	}
}

func (p *Prompter) RequestYesNo(prompt string) bool {
	for {
		fmt.Fprintf(p.out, "%s\n(y) for yes or (n) for no: ", prompt)
		answer, ok := p.readAnswer()
		if !ok {
			return false
		}
		switch answer {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

func (p *Prompter) readAnswer() (string, bool) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil && !errors.Is(err, io.EOF) {
			log.Warn().Err(err).Msg("read answer failed")
		}
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), true
}
