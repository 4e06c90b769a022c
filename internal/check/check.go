// Package check resolves the external ffmpeg/ffprobe binaries and validates
// them once before the pipeline starts; the pipeline itself never looks
// binaries up.
package check

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"

	"github.com/snapfix/snapfix/internal/config"
)

// Sentinel errors returned by CheckDeps when a required binary is missing
// or unusable.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found (PATH or input folder)")
	ErrFfprobeNotFound = errors.New("ffprobe not found (PATH or input folder)")
)

// Locate fills in any unset binary path on cfg: PATH lookup first, then
// portable-bundle locations relative to the input root (a bare binary next
// to the archives, an ffmpeg/bin/ tree, or a bin/ folder).
func Locate(cfg *config.Config) {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = locate("ffmpeg", cfg.RootDir)
	}
	if cfg.FFprobePath == "" {
		cfg.FFprobePath = locate("ffprobe", cfg.RootDir)
	}
}

// CheckDeps verifies that both resolved binaries exist and respond to
// -version. Returns a sentinel error on the first failure.
func CheckDeps(cfg *config.Config) error {
	if cfg.FFmpegPath == "" || !runSilent(cfg.FFmpegPath, "-version") {
		return ErrFfmpegNotFound
	}
	if cfg.FFprobePath == "" || !runSilent(cfg.FFprobePath, "-version") {
		return ErrFfprobeNotFound
	}
	log.Debug().Str("ffmpeg", cfg.FFmpegPath).Str("ffprobe", cfg.FFprobePath).
		Msg("External binaries resolved")
	return nil
}

// locate returns the first usable path for the named binary, or "".
func locate(name, root string) string {
	if p, err := exec.LookPath(name); err == nil {
		return p
	}

	bin := name + exeSuffix()
	candidates := []string{
		filepath.Join(root, bin),
		filepath.Join(root, "ffmpeg", "bin", bin),
		filepath.Join(root, "bin", bin),
	}
	for _, c := range candidates {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			return c
		}
	}
	return ""
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// runSilent runs a command and reports whether it exits with status 0.
// All output is discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
