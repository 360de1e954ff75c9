// apps/go-solver/internal/config/config.go
//
// Typed configuration read from the environment.
// main calls godotenv.Load first, so a local .env file feeds the same keys.
//
// Environment variables (defaults in parentheses):
//   PORT (5176), LOG_LEVEL (info), LOG_FORMAT (json | console),
//   DB_PATH (./data/solver.db), WORD_LENGTH (5),
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE, DAILY_SALT (local_dev_salt),
//   JWT_SECRET (dev_secret_change_me), JWT_EXPIRES_DAYS (14),
//   COOKIE_NAME (solver_token), CLIENT_ORIGIN (http://localhost:5173),
//   NODE_ENV, MAX_GUESSES (6), LETTER_FREQUENCY_NORMALIZE (false).
//   The WORDS_* sources may be file paths or http(s) URLs.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the full process configuration.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	DBPath string

	WordLength  int
	AnswersFile string
	AllowedFile string

	DailySalt  string
	MaxGuesses int

	NormalizeLetterFrequency bool

	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool
}

// Load reads the environment. Malformed numbers and booleans are errors.
func Load() (Config, error) {
	c := Config{
		Port:         getEnv("PORT", "5176"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
		DBPath:       getEnv("DB_PATH", "./data/solver.db"),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:   getEnv("COOKIE_NAME", "solver_token"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:   os.Getenv("NODE_ENV") == "production",
	}

	var err error
	if c.WordLength, err = getInt("WORD_LENGTH", 5); err != nil {
		return c, err
	}
	if c.MaxGuesses, err = getInt("MAX_GUESSES", 6); err != nil {
		return c, err
	}
	if c.JWTExpiresDays, err = getInt("JWT_EXPIRES_DAYS", 14); err != nil {
		return c, err
	}
	if c.NormalizeLetterFrequency, err = getBool("LETTER_FREQUENCY_NORMALIZE", false); err != nil {
		return c, err
	}
	if c.WordLength <= 0 {
		return c, fmt.Errorf("config: WORD_LENGTH must be positive, got %d", c.WordLength)
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}
