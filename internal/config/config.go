// Package config holds runtime configuration: defaults, environment
// overrides, and validation. Values are populated from CLI flags and the
// environment in cmd; external binary paths are resolved once at startup
// (see the check package) and injected here, never looked up ad hoc.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// --- Enum types for validated string fields ---

// FitMode is the overlay scaling policy relative to the main frame.
type FitMode string

const (
	FitCover   FitMode = "cover"   // Fill the frame, center-crop the excess (default).
	FitContain FitMode = "contain" // Fit inside the frame, transparent padding.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Output directory and skip report names, fixed relative to the input root.
const (
	OutputDirName  = "Snapchat memories fixed"
	SkipReportName = "skipped_report.txt"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then mutated by flag binding and [ApplyEnv] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// RootDir is the input folder containing .zip archives and optional
	// standalone media files (positional arg or --root).
	RootDir string

	// Paths to the external transcoding and probing binaries. Resolved
	// once at startup; empty means not found.
	FFmpegPath  string
	FFprobePath string

	// TimeoutSec is the hard wall-clock limit for a single ffmpeg
	// invocation. Default: 180. A timed-out item is skipped, never retried.
	TimeoutSec int

	// Fit selects cover (fill + crop) or contain (fit + pad). Default: cover.
	Fit FitMode

	// Behavior flags.
	DryRun  bool
	Verbose bool

	// Display.
	Color        ColorMode
	PollInterval time.Duration // Progress feed polling cadence. Default: 200ms.
}

// DefaultConfig returns a Config with the stock defaults.
func DefaultConfig() Config {
	return Config{
		TimeoutSec:   180,
		Fit:          FitCover,
		Color:        ColorAuto,
		PollInterval: 200 * time.Millisecond,
	}
}

// ApplyEnv overlays environment variables onto cfg. Called after flag
// binding so flags win over the environment.
//
//	SNAPFIX_FFMPEG / SNAPFIX_FFPROBE  binary paths
//	SNAPFIX_TIMEOUT_SEC               per-invocation timeout
//	SNAPFIX_FIT                       cover | contain
func ApplyEnv(cfg *Config) {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = os.Getenv("SNAPFIX_FFMPEG")
	}
	if cfg.FFprobePath == "" {
		cfg.FFprobePath = os.Getenv("SNAPFIX_FFPROBE")
	}
	if v := os.Getenv("SNAPFIX_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutSec = n
		}
	}
	if v := os.Getenv("SNAPFIX_FIT"); v != "" {
		cfg.Fit = FitMode(v)
	}
}

// Validate checks enum fields and numeric ranges. Path existence is checked
// separately in cmd after resolution.
func (c *Config) Validate() error {
	if c.RootDir == "" {
		return errors.New("input root folder is required")
	}
	switch c.Fit {
	case FitCover, FitContain:
	default:
		return fmt.Errorf("invalid fit mode %q (want cover or contain)", c.Fit)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
	}
	if c.TimeoutSec <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSec)
	}
	if c.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	return nil
}

// Timeout returns the per-invocation limit as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}
