package progress

import (
	"fmt"
	"testing"
)

func TestFeed_FIFOOrder(t *testing.T) {
	f := NewFeed()
	for i := 0; i < 10; i++ {
		f.Publish(Event{Kind: KindProgress, Done: i, Total: 10})
	}

	for i := 0; i < 10; i++ {
		ev, ok := f.Poll()
		if !ok {
			t.Fatalf("event %d missing", i)
		}
		if ev.Done != i {
			t.Errorf("event %d out of order: got Done=%d", i, ev.Done)
		}
	}
	if _, ok := f.Poll(); ok {
		t.Error("feed should be drained")
	}
}

func TestFeed_PollEmpty(t *testing.T) {
	f := NewFeed()
	if _, ok := f.Poll(); ok {
		t.Error("empty feed should report no event")
	}
}

func TestFeed_PublishNeverBlocksAndKeepsNewest(t *testing.T) {
	f := NewFeed()

	// Overflow the buffer with progress noise, then publish the terminal
	// summary. Publish must not block and the done event must survive.
	for i := 0; i < feedBuffer*3; i++ {
		f.Publish(Event{Kind: KindProgress, Done: i, Text: fmt.Sprintf("item %d", i)})
	}
	f.Publish(Event{Kind: KindDone, Text: "summary"})

	var last Event
	n := 0
	for {
		ev, ok := f.Poll()
		if !ok {
			break
		}
		last = ev
		n++
	}
	if n == 0 || n > feedBuffer {
		t.Errorf("drained %d events, want 1..%d", n, feedBuffer)
	}
	if last.Kind != KindDone || last.Text != "summary" {
		t.Errorf("last event: got %+v, want the done summary", last)
	}
}
