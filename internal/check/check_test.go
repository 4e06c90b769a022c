package check

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/snapfix/snapfix/internal/config"
)

func TestLocate_RootCandidate(t *testing.T) {
	root := t.TempDir()
	// A name that cannot exist on PATH, planted next to the archives.
	name := "snapfix-test-binary"
	p := filepath.Join(root, name+exeSuffix())
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := locate(name, root); got != p {
		t.Errorf("locate = %q, want %q", got, p)
	}
}

func TestLocate_BundledBinDir(t *testing.T) {
	root := t.TempDir()
	name := "snapfix-test-binary"
	dir := filepath.Join(root, "ffmpeg", "bin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, name+exeSuffix())
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := locate(name, root); got != p {
		t.Errorf("locate = %q, want %q", got, p)
	}
}

func TestLocate_NotFound(t *testing.T) {
	if got := locate("snapfix-test-binary", t.TempDir()); got != "" {
		t.Errorf("locate = %q, want empty", got)
	}
}

func TestCheckDeps_MissingBinaries(t *testing.T) {
	cfg := config.DefaultConfig()

	err := CheckDeps(&cfg)
	if !errors.Is(err, ErrFfmpegNotFound) {
		t.Errorf("got %v, want ErrFfmpegNotFound", err)
	}

	cfg.FFmpegPath = "/bin/true" // stands in for a working ffmpeg
	err = CheckDeps(&cfg)
	if !errors.Is(err, ErrFfprobeNotFound) {
		t.Errorf("got %v, want ErrFfprobeNotFound", err)
	}
}
