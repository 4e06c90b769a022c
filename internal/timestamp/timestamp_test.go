package timestamp

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOldest_ReturnsMinimum(t *testing.T) {
	t1 := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	got := Oldest([]time.Time{t1, t2, t3})
	if !got.Equal(t3) {
		t.Errorf("got %v, want %v", got, t3)
	}
}

func TestOldest_SingleCandidate(t *testing.T) {
	t1 := time.Date(2019, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := Oldest([]time.Time{t1}); !got.Equal(t1) {
		t.Errorf("got %v, want %v", got, t1)
	}
}

func TestOldest_EmptyDefaultsToNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	got := Oldest(nil)
	after := time.Now().UTC().Add(time.Second)
	if got.Before(before) || got.After(after) {
		t.Errorf("got %v, want roughly now", got)
	}
	if got.Location() != time.UTC {
		t.Errorf("got location %v, want UTC", got.Location())
	}
}

func TestParseTag(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2021-05-01T12:00:00Z", time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC), true},
		{"2021-05-01T12:00:00.000000Z", time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC), true},
		// Space separator is normalized to T.
		{"2021-05-01 12:00:00", time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC), true},
		// Naive timestamps are treated as UTC.
		{"2021-05-01T12:00:00", time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC), true},
		// Explicit offsets are honored and converted to UTC.
		{"2021-05-01T14:00:00+02:00", time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"2021-13-45T99:00:00Z", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseTag(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseTag(%q): ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseTag(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFileTimes_IncludesModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.mp4")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2020, 7, 15, 8, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, want, want); err != nil {
		t.Fatal(err)
	}

	times := FileTimes(path)
	if len(times) == 0 {
		t.Fatal("no candidates gathered")
	}
	if d := times[0].Sub(want); d > time.Second || d < -time.Second {
		t.Errorf("mtime candidate: got %v, want %v", times[0], want)
	}
}

func TestFileTimes_MissingFile(t *testing.T) {
	if times := FileTimes(filepath.Join(t.TempDir(), "nope")); times != nil {
		t.Errorf("got %v, want nil for missing file", times)
	}
}

func TestFallbackFileTime_MissingFile(t *testing.T) {
	if _, ok := FallbackFileTime(filepath.Join(t.TempDir(), "nope")); ok {
		t.Error("expected not-ok for missing file")
	}
}

func TestWriteFileTimes_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}

	want := time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := WriteFileTimes(path, want, want, want); err != nil {
		t.Fatalf("WriteFileTimes: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// One-second resolution is the contract; some filesystems truncate.
	if d := fi.ModTime().UTC().Sub(want); d > time.Second || d < -time.Second {
		t.Errorf("mtime after write: got %v, want %v (±1s)", fi.ModTime().UTC(), want)
	}
}

func TestEmbeddedImageDate_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.jpg")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := EmbeddedImageDate(path); ok {
		t.Error("expected not-ok for non-image data")
	}
	if _, ok := EmbeddedImageDate(filepath.Join(t.TempDir(), "missing.jpg")); ok {
		t.Error("expected not-ok for missing file")
	}
}
