// apps/go-solver/internal/httpserver/server.go
//
// HTTP server wiring for the solver service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver sessions (optional auth): /solver/*.
//   - Simulated puzzles (optional auth): /game/*.
//   - Daily challenge: /daily/*.
//   - Auth + per-user endpoints: /auth/*, /stats/me, /sessions/mine.
//
// Notes:
//   - Sessions live in memory; a row per session in solver_sessions keeps history.
//   - Optional auth decorates requests with user context when a valid token is present;
//     routes still run for guests, who are tracked by an anonymous cookie.

package httpserver

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/users"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// Server bundles router, in-memory session stores, and DB handle.
type Server struct {
	r        *chi.Mux
	cfg      config.Config
	lists    *words.Lists
	db       *sql.DB
	users    *users.Repo
	sessions *store.Memory[solverSession]
	games    *store.Memory[gameSession]
	daily    *daily.Challenge
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, lists *words.Lists, db *sql.DB) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		cfg:      cfg,
		lists:    lists,
		db:       db,
		users:    users.NewRepo(db),
		sessions: store.NewMemory[solverSession](),
		games:    store.NewMemory[gameSession](),
		now:      time.Now,
	}
	s.daily = &daily.Challenge{
		Store:      daily.NewStore(db),
		Lists:      lists,
		Salt:       cfg.DailySalt,
		MaxGuesses: cfg.MaxGuesses,
		Options:    s.solverOptions(),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(cfg.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle-solver",
			"endpoints": []string{
				"/health", "POST /solver/new", "POST /solver/guess", "GET /solver/{id}",
				"GET /solver/{id}/suggestions", "POST /game/new", "POST /game/guess",
				"POST /daily/solve", "GET /daily/leaderboard", "/auth/*",
			},
			"strategies": solver.StrategyNames(),
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{
			"answers":        a,
			"allowed":        g,
			"wordLength":     s.lists.WordLength(),
			"solverSessions": s.sessions.Len(),
			"games":          s.games.Len(),
		})
	})

	optional := s.r.With(s.withOptionalAuth())
	s.mountSolver(optional)
	s.mountGame(optional)
	s.mountDaily(optional)
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

func (s *Server) solverOptions() solver.Options {
	return solver.Options{NormalizeLetterFrequency: s.cfg.NormalizeLetterFrequency}
}

// ---------------------------- session rows ---------------------------------

// ownerOf returns the user ID, or the anonymous cookie ID for guests.
func (s *Server) ownerOf(w http.ResponseWriter, r *http.Request) (userID, anonID string) {
	if me := currentUser(r); me != nil {
		return me.ID, ""
	}
	return "", s.ensureAnonID(w, r)
}

// recordSession inserts the history row for a new session (best effort).
func (s *Server) recordSession(w http.ResponseWriter, r *http.Request, id, kind string, candidates int) {
	userID, anonID := s.ownerOf(w, r)
	_, err := s.db.ExecContext(r.Context(),
		`INSERT INTO solver_sessions (id, kind, user_id, anonymous_id, started_at, status, candidates)
		VALUES (?,?,?,?,?,?,?)`,
		id, kind, nullable(userID), nullable(anonID), s.now().UTC().Format(time.RFC3339), "playing", candidates)
	if err != nil {
		log.Warn().Err(err).Str("session", id).Msg("insert session row")
		return
	}
	if userID != "" {
		if err := s.users.BumpStarted(r.Context(), userID); err != nil {
			log.Warn().Err(err).Str("user", userID).Msg("bump started")
		}
	}
}

// updateSession records progress; a finished status also stamps finished_at
// and, for a solved session owned by a user, bumps their solved count.
func (s *Server) updateSession(r *http.Request, id string, guesses, candidates int, status string) {
	ctx := r.Context()
	var finished any
	if status != "playing" {
		finished = s.now().UTC().Format(time.RFC3339)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE solver_sessions SET guesses=?, candidates=?, status=?, finished_at=COALESCE(finished_at, ?)
		WHERE id=? AND status='playing'`,
		guesses, candidates, status, finished, id)
	if err != nil {
		log.Warn().Err(err).Str("session", id).Msg("update session row")
		return
	}
	if n, _ := res.RowsAffected(); n == 1 && (status == "solved" || status == "won") {
		if me := currentUser(r); me != nil {
			if err := s.users.BumpSolved(ctx, me.ID); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump solved")
			}
		}
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
