// apps/go-solver/internal/config/logging.go
//
// Global zerolog setup shared by the server and the bench CLI.

package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging applies level and format to the global logger.
// An unknown level keeps the current global level.
func SetupLogging(level, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
		return
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
