// Package progress carries events from the batch worker to the
// presentation layer over a single-producer, single-consumer FIFO feed.
// The worker never blocks on the consumer; the consumer polls without
// blocking the worker.
package progress

import "time"

// Kind classifies an event.
type Kind int

const (
	// KindProgress updates the done/total counters, status text, and ETA.
	KindProgress Kind = iota
	// KindWarn is a non-fatal message; the batch continues.
	KindWarn
	// KindError is a fatal message (e.g. nothing to process).
	KindError
	// KindDone carries the final summary text. Always the last event.
	KindDone
)

// Event is one discrete message. ETA is the zero time when unknown.
type Event struct {
	Kind  Kind
	Done  int
	Total int
	Text  string
	ETA   time.Time
}

// feedBuffer comfortably holds a full batch of per-item events; overflow
// only happens when the consumer has stalled, in which case stale events
// are the right thing to shed.
const feedBuffer = 256

// Feed is the ordered event queue between the worker (producer) and the
// presentation layer (consumer). Exactly one of each.
type Feed struct {
	ch chan Event
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{ch: make(chan Event, feedBuffer)}
}

// Publish enqueues ev without ever blocking the producer: when the buffer
// is full, the oldest queued event is dropped to make room. The newest
// event therefore always lands, so a terminal KindDone cannot be lost.
func (f *Feed) Publish(ev Event) {
	for {
		select {
		case f.ch <- ev:
			return
		default:
			select {
			case <-f.ch:
			default:
			}
		}
	}
}

// Poll receives the next event without blocking. The second return is
// false when the feed is currently empty.
func (f *Feed) Poll() (Event, bool) {
	select {
	case ev := <-f.ch:
		return ev, true
	default:
		return Event{}, false
	}
}
