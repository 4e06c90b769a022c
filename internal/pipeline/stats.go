package pipeline

import "time"

// minItemDuration floors recorded per-item durations so a burst of
// near-instant skips cannot collapse the ETA to zero.
const minItemDuration = 10 * time.Millisecond

// RunStats accumulates batch counters and per-item durations for ETA
// estimation. Counters refer to archives; the standalone sweep is not
// counted.
type RunStats struct {
	Total     int
	Done      int
	Succeeded int
	Failed    int
	Skipped   int

	StartedAt time.Time
	Durations []time.Duration
}

// Record classifies one finished item into the counters and stores its
// duration.
func (s *RunStats) Record(class Class, d time.Duration) {
	switch class {
	case ClassSuccess:
		s.Succeeded++
	case ClassFailure:
		s.Failed++
	case ClassSkipped:
		s.Skipped++
	}
	s.Done++
	if d < minItemDuration {
		d = minItemDuration
	}
	s.Durations = append(s.Durations, d)
}

// EstimateFinish projects the batch completion instant from the average
// per-item duration so far. The second return is false until at least one
// item has finished.
func (s *RunStats) EstimateFinish() (time.Time, bool) {
	if len(s.Durations) == 0 {
		return time.Time{}, false
	}
	var sum time.Duration
	for _, d := range s.Durations {
		sum += d
	}
	avg := sum / time.Duration(len(s.Durations))
	remaining := s.Total - s.Done
	if remaining < 0 {
		remaining = 0
	}
	return s.StartedAt.Add(sum + avg*time.Duration(remaining)), true
}
