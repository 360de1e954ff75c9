// apps/go-solver/internal/httpserver/routes_daily.go
//
// HTTP routes for the daily challenge.
//   - POST /daily/solve       → every strategy plays today's answer (once per date)
//   - GET  /daily/leaderboard → strategies ranked for today (or ?date=YYYY-MM-DD)
//
// The answer is chosen deterministically from date + salt, so every instance
// sharing a salt plays the same word.

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
)

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/solve", s.handleDailySolve)
		r.Get("/leaderboard", s.handleDailyLeaderboard)
	})
}

type dailySolveRes struct {
	Date    string         `json:"date"`
	Fresh   bool           `json:"fresh"`
	Results []daily.Result `json:"results"`
}

// handleDailySolve plays today's challenge, or returns the stored runs if it
// was already played.
func (s *Server) handleDailySolve(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	results, fresh, err := s.daily.Solve(r.Context(), now)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dailySolveRes{Date: daily.DateKey(now), Fresh: fresh, Results: results})
}

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleDailyLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleDailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now())
	} else if _, err := daily.ParseDateKey(date); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := s.daily.Store.Leaderboard(r.Context(), date, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
