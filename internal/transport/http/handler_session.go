package httptransport

import (
	"net/http"

	"twentyone/internal/game/viewmodel"
	"twentyone/internal/session"
)

type SessionHandlers struct {
	board *session.Scoreboard
}

func NewSessionHandlers(board *session.Scoreboard) *SessionHandlers {
	return &SessionHandlers{board: board}
}

func (h *SessionHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	}
}

func (h *SessionHandlers) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		metricSessionQueryTotal.Add(1)
		writeJSON(w, h.board.Snapshot())
	}
}

func (h *SessionHandlers) Rounds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricRoundsQueryTotal.Add(1)
		limit, ok := parseLimit(r)
		if !ok {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_limit")
			return
		}
		writeJSON(w, struct {
			Items []viewmodel.RoundView `json:"items"`
		}{Items: h.board.Recent(limit)})
	}
}
