// apps/go-solver/cmd/bench/main.go
//
// Command bench plays every answer with every strategy and prints a summary
// table: solved count, best/worst/average turns, "not in N" and a histogram.
//
// Usage:
//
//	bench [-strategies a,b] [-limit 6] [-n 0] [-workers 0] [-save] [-verbose]
//
// Configuration (word lists, DB path, log level) comes from the same
// environment variables as the server; flags override where both exist.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/TwiN/go-color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/bench"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/database"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("bench failed")
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var (
		strategies = flag.String("strategies", "", "comma-separated strategy names (default: all)")
		limit      = flag.Int("limit", cfg.MaxGuesses, "turn limit for the \"not in N\" count")
		sample     = flag.Int("n", 0, "play only the first n answers (0 = all)")
		workers    = flag.Int("workers", 0, "concurrent games (0 = GOMAXPROCS)")
		save       = flag.Bool("save", false, "store the summary in the database")
		verbose    = flag.Bool("verbose", false, "print every game's coloured guesses")
		asJSON     = flag.Bool("json", false, "print the report as JSON")
		normalize  = flag.Bool("normalize", cfg.NormalizeLetterFrequency, "normalise letter frequency scores")
		logLevel   = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()
	config.SetupLogging(*logLevel, "console", os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lists, err := words.Load(ctx, words.Options{
		AnswersFile: cfg.AnswersFile,
		AllowedFile: cfg.AllowedFile,
		WordLength:  cfg.WordLength,
	})
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	answers := lists.Answers()
	if *sample > 0 && *sample < len(answers) {
		answers = answers[:*sample]
	}

	bc := bench.Config{
		Dictionary: lists.Dictionary(),
		Answers:    answers,
		Limit:      *limit,
		Workers:    *workers,
		Options:    solver.Options{NormalizeLetterFrequency: *normalize},
	}
	if *strategies != "" {
		for _, name := range strings.Split(*strategies, ",") {
			bc.Strategies = append(bc.Strategies, strings.TrimSpace(name))
		}
	}

	bar := progressbar.Default(int64(bc.Games()), "solving")
	var mu sync.Mutex
	bc.OnGame = func(o solver.Outcome) {
		_ = bar.Add(1)
		if *verbose {
			mu.Lock()
			printGame(o)
			mu.Unlock()
		}
	}

	rep, err := bench.Run(ctx, bc)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		printReport(rep)
	}

	if !*save {
		return nil
	}
	if err := saveReport(ctx, cfg.DBPath, rep); err != nil {
		return err
	}
	log.Info().Str("runId", rep.RunID).Str("db", cfg.DBPath).Msg("report saved")
	return nil
}

// saveReport stores rep in the database at path, closing it before returning.
func saveReport(ctx context.Context, path string, rep *bench.Report) error {
	db, err := database.OpenAndMigrate(ctx, path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := bench.Save(ctx, db, rep); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func printGame(o solver.Outcome) {
	status := color.Ize(color.Green, "solved")
	if !o.Solved {
		status = color.Ize(color.Red, "failed")
	}
	tiles := make([]string, len(o.Guesses))
	for i, g := range o.Guesses {
		marks, err := game.ParseMarks(o.Marks[i])
		if err != nil {
			tiles[i] = g
			continue
		}
		tiles[i] = game.Render(g, marks)
	}
	fmt.Printf("\n%-22s %s %s  %s\n", o.Strategy, o.Answer, status, strings.Join(tiles, " "))
}

func printReport(rep *bench.Report) {
	fmt.Printf("\nrun %s  %d strategies  limit %d  %s\n\n", rep.RunID, len(rep.Metrics), rep.Limit, rep.Elapsed.Round(1e6))
	fmt.Printf("%-22s %-7s %7s %5s %5s %7s %9s\n", "strategy", "opening", "solved", "best", "worst", "avg", "not in N")
	for _, m := range rep.Metrics {
		fmt.Printf("%-22s %-7s %3d/%-3d %5d %5d %7.3f %9d\n",
			m.Strategy, m.Opening, m.Solved, m.Games, m.Best, m.Worst, m.Average, m.NotInN)
	}
	for _, m := range rep.Metrics {
		fmt.Printf("\n%s\n", color.Ize(color.Bold, m.Strategy))
		for _, k := range m.HistKeys() {
			n := m.Hist[k]
			bar := strings.Repeat("#", (n*40+m.Games-1)/max(m.Games, 1))
			c := color.Green
			if k > rep.Limit {
				c = color.Yellow
			}
			fmt.Printf("  %2d %5d %s\n", k, n, color.Ize(c, bar))
		}
		if len(m.Hardest) > 0 {
			fmt.Printf("  hardest: %s\n", strings.Join(m.Hardest, " "))
		}
	}
}
