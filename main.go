// apps/go-solver/main.go
//
// Entry point for the solver HTTP service.
//   - Loads .env (if present) and environment configuration.
//   - Configures zerolog, loads word lists, opens and migrates SQLite.
//   - Serves until SIGINT/SIGTERM, then shuts down gracefully.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.SetupLogging(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := words.Init(ctx, words.Options{
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
		WordLength:  cfg.WordLength,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	db, err := database.OpenAndMigrate(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()

	srv := httpserver.New(cfg, words.Default(), db)
	log.Info().Str("port", cfg.Port).Msg("starting go-solver")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
	}
}
