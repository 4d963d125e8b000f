// Package bot plays the player's side without a human, for simulation runs.
package bot

import (
	"math/rand"

	"twentyone/internal/config"
	"twentyone/internal/game"
)

type Bot struct {
	strategy string
	standOn  int
	rounds   int
	played   int
	rnd      *rand.Rand
}

func New(cfg config.BotConfig, rnd *rand.Rand) *Bot {
	standOn := cfg.StandOn
	if standOn <= 0 {
		standOn = game.DealerStickScore
	}
	return &Bot{strategy: cfg.Strategy, standOn: standOn, rounds: cfg.Rounds, rnd: rnd}
}

func (b *Bot) RequestHitOrStand(view game.TurnView) game.Decision {
	return decide(b.strategy, b.standOn, b.rnd, view)
}

// RequestYesNo says yes to another round until the configured number of
// rounds has been played.
func (b *Bot) RequestYesNo(_ string) bool {
	b.played++
	return b.played < b.rounds
}

func (b *Bot) Played() int {
	return b.played
}

func decide(strategy string, standOn int, rnd *rand.Rand, view game.TurnView) game.Decision {
	if strategy == config.BotStrategyRandom {
		if rnd.Intn(2) == 0 {
			return game.DecisionHit
		}
		return game.DecisionStand
	}
	if view.PlayerTotal < standOn {
		return game.DecisionHit
	}
	return game.DecisionStand
}
