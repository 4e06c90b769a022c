// Package logging initializes the global zerolog logger used by every
// package. Output goes to stderr through a console writer so stdout stays
// free for the progress line.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/snapfix/snapfix/internal/term"
)

// Init configures the global logger. The level comes from SNAPFIX_LOG_LEVEL
// (debug, info, warn, error; default info); verbose forces debug. Colors
// follow the resolved terminal state, so call term.Configure first.
func Init(verbose bool) {
	switch os.Getenv("SNAPFIX_LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    !term.Enabled(),
	})
}
