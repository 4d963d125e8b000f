package config

import "github.com/caarlos0/env/v11"

type GameConfig struct {
	// Seed 0 shuffles from the clock.
	Seed    int64 `env:"GAME_SEED" envDefault:"0"`
	Color   bool  `env:"GAME_COLOR" envDefault:"true"`
	History int   `env:"GAME_HISTORY" envDefault:"50"`
}

func LoadGame() (GameConfig, error) {
	var cfg GameConfig
	err := env.Parse(&cfg)
	return cfg, err
}
