package pipeline

import (
	"fmt"
	"os"
	"strings"
)

// Class is the terminal classification of one processed item.
type Class int

const (
	// ClassSuccess means an output file was produced.
	ClassSuccess Class = iota
	// ClassFailure means the transcoder exited non-zero; the batch continues.
	ClassFailure
	// ClassSkipped means the item could not be attempted (bad pair, bad
	// probe, timeout); the batch continues.
	ClassSkipped
)

// Outcome records how one item ended. Reason is empty for successes.
type Outcome struct {
	Item   string
	Class  Class
	Reason string
}

// WriteSkipReport writes the human-readable report of items that produced
// no (or questionable) output, in processing order.
func WriteSkipReport(path string, outcomes []Outcome) error {
	var b strings.Builder
	b.WriteString("Skipped ZIP files and reasons:\n")
	for _, o := range outcomes {
		fmt.Fprintf(&b, "- %s (%s)\n", o.Item, o.Reason)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
