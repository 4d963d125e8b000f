package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

var (
	ErrInvalidBotStrategy = errors.New("invalid_bot_strategy")
	ErrInvalidBotRounds   = errors.New("invalid_bot_rounds")
)

const (
	BotStrategyThreshold = "threshold"
	BotStrategyRandom    = "random"
)

type BotConfig struct {
	Enabled  bool   `env:"BOT_ENABLED" envDefault:"false"`
	Rounds   int    `env:"BOT_ROUNDS" envDefault:"100"`
	Strategy string `env:"BOT_STRATEGY" envDefault:"threshold"`
	StandOn  int    `env:"BOT_STAND_ON" envDefault:"17"`
	Quiet    bool   `env:"BOT_QUIET" envDefault:"true"`
}

func LoadBot() (BotConfig, error) {
	var cfg BotConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c BotConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Rounds < 1 {
		return ErrInvalidBotRounds
	}
	switch c.Strategy {
	case BotStrategyThreshold, BotStrategyRandom:
		return nil
	default:
		return ErrInvalidBotStrategy
	}
}
