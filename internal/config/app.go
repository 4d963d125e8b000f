package config

type AppConfig struct {
	Log   LogConfig
	Game  GameConfig
	Bot   BotConfig
	Stats StatsConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	gameCfg, err := LoadGame()
	if err != nil {
		return AppConfig{}, err
	}
	botCfg, err := LoadBot()
	if err != nil {
		return AppConfig{}, err
	}
	statsCfg, err := LoadStats()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Log:   logCfg,
		Game:  gameCfg,
		Bot:   botCfg,
		Stats: statsCfg,
	}, nil
}
