package viewmodel

import (
	"time"

	"twentyone/internal/game"
)

type HandView struct {
	Cards []string `json:"cards"`
	Total int      `json:"total"`
	Bust  bool     `json:"bust"`
}

type RoundView struct {
	RoundID    string   `json:"round_id"`
	Outcome    string   `json:"outcome"`
	PlayerWon  bool     `json:"player_won"`
	Player     HandView `json:"player"`
	Dealer     HandView `json:"dealer"`
	FinishedAt string   `json:"finished_at"`
}

func BuildRoundView(res game.Result, finishedAt time.Time) RoundView {
	return RoundView{
		RoundID:   res.RoundID,
		Outcome:   string(res.Outcome),
		PlayerWon: res.Outcome.PlayerWon(),
		Player: HandView{
			Cards: game.Codes(res.PlayerCards),
			Total: res.PlayerTotal,
			Bust:  res.PlayerTotal > game.MaxScore,
		},
		Dealer: HandView{
			Cards: game.Codes(res.DealerCards),
			Total: res.DealerTotal,
			Bust:  res.DealerTotal > game.MaxScore,
		},
		FinishedAt: finishedAt.UTC().Format(time.RFC3339),
	}
}
