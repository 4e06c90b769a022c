// Package display renders batch progress on the terminal: an in-place
// progress line on a TTY, plain log lines otherwise, warnings and errors
// through the structured logger either way.
package display

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/snapfix/snapfix/internal/progress"
	"github.com/snapfix/snapfix/internal/term"
)

// Consume polls the feed on the given cadence and renders every event
// until the terminal done event arrives. It returns that event's summary
// text. Must run on the consumer side only; the worker keeps publishing.
func Consume(feed *progress.Feed, interval time.Duration) string {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tty := term.IsTerminal(os.Stdout)
	lineOpen := false

	clearLine := func() {
		if lineOpen {
			fmt.Fprint(os.Stdout, "\r\033[2K")
			lineOpen = false
		}
	}

	for range ticker.C {
		for {
			ev, ok := feed.Poll()
			if !ok {
				break
			}
			switch ev.Kind {
			case progress.KindProgress:
				if tty {
					fmt.Fprintf(os.Stdout, "\r\033[2K%s", renderProgress(ev))
					lineOpen = true
				} else {
					log.Info().Msg(renderProgress(ev))
				}
			case progress.KindWarn:
				clearLine()
				log.Warn().Msg(ev.Text)
			case progress.KindError:
				clearLine()
				log.Error().Msg(ev.Text)
			case progress.KindDone:
				clearLine()
				fmt.Fprintln(os.Stdout, ev.Text)
				return ev.Text
			}
		}
	}
	return ""
}

func renderProgress(ev progress.Event) string {
	if ev.ETA.IsZero() {
		return ev.Text
	}
	return ev.Text + "  " + FormatETA(time.Until(ev.ETA))
}
