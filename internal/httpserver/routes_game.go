// apps/go-solver/internal/httpserver/routes_game.go
//
// Simulated puzzles for driving a solver session by hand:
//   - POST /game/new   → start a puzzle (random or fixed answer)
//   - POST /game/guess → score a guess; the response carries the marks pattern
//     and the equivalent rules, ready to post to /solver/guess.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
)

type gameSession struct {
	mu sync.Mutex
	g  *game.Game
}

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleGameNew)
		r.Post("/guess", s.handleGameGuess)
	})
}

type gameNewReq struct {
	Answer string `json:"answer"`
}

type gameNewRes struct {
	GameID     string `json:"gameId"`
	Rows       int    `json:"rows"`
	WordLength int    `json:"wordLength"`
}

func (s *Server) handleGameNew(w http.ResponseWriter, r *http.Request) {
	var req gameNewReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	answer := strings.TrimSpace(req.Answer)
	if answer != "" && len(answer) != s.lists.WordLength() {
		writeError(w, http.StatusBadRequest, game.ErrInvalidGuess.Error())
		return
	}

	g := game.New(s.lists, answer, s.cfg.MaxGuesses)
	if err := s.games.Save(r.Context(), g.ID, &gameSession{g: g}); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordSession(w, r, g.ID, "game", 0)
	writeJSON(w, http.StatusOK, gameNewRes{GameID: g.ID, Rows: g.Rows, WordLength: g.Cols})
}

type gameGuessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type gameGuessRes struct {
	Marks   []game.Mark  `json:"marks"`
	Pattern string       `json:"pattern"`
	State   string       `json:"state"`
	Result  []rules.Rule `json:"result"`
	Answer  string       `json:"answer,omitempty"`
}

func (s *Server) handleGameGuess(w http.ResponseWriter, r *http.Request) {
	var req gameGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.games.Get(r.Context(), req.GameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	g := sess.g
	marks, state, err := g.ApplyGuess(req.Guess)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, game.ErrGameFinished) {
			status = http.StatusConflict
		}
		writeError(w, status, err.Error())
		return
	}
	result, err := game.Feedback(g.Guesses[len(g.Guesses)-1], marks)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	res := gameGuessRes{Marks: marks, Pattern: game.Pattern(marks), State: state, Result: result}
	if g.Finished {
		res.Answer = g.Answer
	}
	s.updateSession(r, g.ID, len(g.Guesses), 0, state)
	writeJSON(w, http.StatusOK, res)
}
