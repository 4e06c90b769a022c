// Package timestamp derives the authoritative UTC creation instant for an
// output asset from multiple best-effort candidate sources, and rewrites
// filesystem timestamps on the finished file.
//
// Candidate gathering never returns errors: a source that cannot be read is
// simply absent. Archived items take the minimum of all candidates; the
// standalone path uses max(mtime, ctime) as a single last-resort candidate.
// That asymmetry is deliberate.
package timestamp

import (
	"os"
	"time"
)

// Oldest returns the minimum of the gathered candidates in UTC, or the
// current UTC instant when the candidate set is empty.
func Oldest(candidates []time.Time) time.Time {
	if len(candidates) == 0 {
		return time.Now().UTC()
	}
	min := candidates[0]
	for _, c := range candidates[1:] {
		if c.Before(min) {
			min = c
		}
	}
	return min.UTC()
}

// FileTimes returns the file's modification and status-change times as
// separate candidates. The status-change time is only available on
// platforms that expose it; elsewhere just the mtime is returned.
func FileTimes(path string) []time.Time {
	fi, err := os.Stat(path)
	if err != nil {
		return nil
	}
	times := []time.Time{fi.ModTime().UTC()}
	if ct, ok := statCtime(fi); ok {
		times = append(times, ct.UTC())
	}
	return times
}

// FallbackFileTime returns max(mtime, ctime) for the standalone-asset path.
// Unlike the archived path this is a single fallback candidate, not a set.
func FallbackFileTime(path string) (time.Time, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	t := fi.ModTime()
	if ct, ok := statCtime(fi); ok && ct.After(t) {
		t = ct
	}
	return t.UTC(), true
}
