// apps/go-solver/internal/httpserver/routes_solver.go
//
// HTTP routes for interactive solver sessions:
//   - POST /solver/new              → new session over the default or a custom dictionary
//   - POST /solver/guess            → feed back one guess (rules or a mark pattern)
//   - GET  /solver/{id}             → session state
//   - GET  /solver/{id}/suggestions → every strategy's best next word
//
// A session's solver is not safe for concurrent use, so each session carries
// its own mutex.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/rules"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/strategy"
	"github.com/robalobadob/wordle/apps/go-solver/internal/users"
)

// maxListedWords caps the words returned by GET /solver/{id}.
const maxListedWords = 50

type solverSession struct {
	mu      sync.Mutex
	ID      string
	Solver  *solver.Solver
	Guesses []strategy.Guess
}

func (s *Server) mountSolver(r chi.Router) {
	r.Route("/solver", func(r chi.Router) {
		r.Post("/new", s.handleSolverNew)
		r.Post("/guess", s.handleSolverGuess)
		r.Get("/{id}", s.handleSolverGet)
		r.Get("/{id}/suggestions", s.handleSolverSuggestions)
	})
}

type solverNewReq struct {
	Words []string `json:"words"`
}

type solverNewRes struct {
	SessionID  string `json:"sessionId"`
	Candidates int    `json:"candidates"`
}

func (s *Server) handleSolverNew(w http.ResponseWriter, r *http.Request) {
	var req solverNewReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_json")
			return
		}
	}
	set, err := s.lists.LoadDictionary(r.Context(), req.Words)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if !set.HasSolution() {
		writeError(w, http.StatusBadRequest, "no words of length "+strconv.Itoa(s.lists.WordLength()))
		return
	}

	sess := &solverSession{ID: users.GenID(), Solver: solver.New(set, s.solverOptions())}
	if err := s.sessions.Save(r.Context(), sess.ID, sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	s.recordSession(w, r, sess.ID, "solver", set.Len())
	writeJSON(w, http.StatusOK, solverNewRes{SessionID: sess.ID, Candidates: set.Len()})
}

type solverGuessReq struct {
	SessionID string       `json:"sessionId"`
	Word      string       `json:"word"`
	Result    []rules.Rule `json:"result"`
	Marks     string       `json:"marks"` // e.g. "GY..." when result is omitted
}

type solverGuessRes struct {
	Candidates  int          `json:"candidates"`
	Solved      bool         `json:"solved"`
	HasSolution bool         `json:"hasSolution"`
	Result      []rules.Rule `json:"result"`
	Answer      string       `json:"answer,omitempty"`
}

func (s *Server) handleSolverGuess(w http.ResponseWriter, r *http.Request) {
	var req solverGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	word := strings.ToUpper(strings.TrimSpace(req.Word))
	result := req.Result
	if len(result) == 0 && req.Marks != "" {
		marks, err := game.ParseMarks(req.Marks)
		if err == nil {
			result, err = game.Feedback(word, marks)
		}
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	g := strategy.Guess{Word: word, Result: result}
	if err := sess.Solver.WithPreviousGuess(g); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	sess.Guesses = append(sess.Guesses, g)

	set := sess.Solver.Candidates()
	res := solverGuessRes{
		Candidates:  set.Len(),
		Solved:      sess.Solver.IsSolved(),
		HasSolution: sess.Solver.HasSolution(),
		Result:      result,
	}
	status := "playing"
	switch {
	case res.Solved:
		res.Answer = set.Words()[0]
		status = "solved"
	case !res.HasSolution:
		status = "exhausted"
	}
	s.updateSession(r, sess.ID, len(sess.Guesses), set.Len(), status)
	writeJSON(w, http.StatusOK, res)
}

type solverView struct {
	SessionID       string           `json:"sessionId"`
	Candidates      int              `json:"candidates"`
	WordLength      int              `json:"wordLength"`
	Alphabet        string           `json:"alphabet"`
	PossibleLetters []string         `json:"possibleLetters"`
	Words           []string         `json:"words"`
	Guesses         []strategy.Guess `json:"guesses"`
	LetterRules     []rules.Rule     `json:"letterRules"`
	Solved          bool             `json:"solved"`
	HasSolution     bool             `json:"hasSolution"`
}

func (s *Server) handleSolverGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	set := sess.Solver.Candidates()
	list := set.Words()
	if len(list) > maxListedWords {
		list = list[:maxListedWords]
	}
	writeJSON(w, http.StatusOK, solverView{
		SessionID:       sess.ID,
		Candidates:      set.Len(),
		WordLength:      set.WordLength(),
		Alphabet:        set.Alphabet(),
		PossibleLetters: set.PossibleLetters(),
		Words:           list,
		Guesses:         append([]strategy.Guess{}, sess.Guesses...),
		LetterRules:     set.LetterRules(),
		Solved:          sess.Solver.IsSolved(),
		HasSolution:     sess.Solver.HasSolution(),
	})
}

func (s *Server) handleSolverSuggestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	next, err := sess.Solver.GuessNextWord()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*solverSession, bool) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return sess, true
}
