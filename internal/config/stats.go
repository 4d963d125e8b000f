package config

import "github.com/caarlos0/env/v11"

// StatsConfig controls the read-only scoreboard server. An empty address
// leaves it off.
type StatsConfig struct {
	HTTPAddr string `env:"STATS_HTTP_ADDR"`
}

func LoadStats() (StatsConfig, error) {
	var cfg StatsConfig
	err := env.Parse(&cfg)
	return cfg, err
}

func (c StatsConfig) Enabled() bool {
	return c.HTTPAddr != ""
}
