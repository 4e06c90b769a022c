// Command snapfix repairs exported Snapchat memories in batch: it pairs
// each archive's main asset with its overlay, composites them with ffmpeg,
// and restores the original capture timestamps on the output files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/snapfix/snapfix/internal/check"
	"github.com/snapfix/snapfix/internal/config"
	"github.com/snapfix/snapfix/internal/display"
	"github.com/snapfix/snapfix/internal/logging"
	"github.com/snapfix/snapfix/internal/pipeline"
	"github.com/snapfix/snapfix/internal/progress"
	"github.com/snapfix/snapfix/internal/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var fit, color string

	cmd := &cobra.Command{
		Use:   "snapfix [folder]",
		Short: "Re-attach overlays and restore timestamps on exported Snapchat memories",
		Long: `Snapfix processes a folder of exported memories: each .zip archive holding
a -main video/photo and its -overlay image is composited back into a single
file, loose media files are carried over, and every output gets its original
capture timestamp restored. Results land in "` + config.OutputDirName + `"
inside the input folder, together with a report of anything skipped.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env if present; flags and real env still win.
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.RootDir = args[0]
			}
			cfg.Fit = config.FitMode(fit)
			cfg.Color = config.ColorMode(color)
			config.ApplyEnv(&cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			term.Configure(cfg.Color)
			logging.Init(cfg.Verbose)

			if fi, err := os.Stat(cfg.RootDir); err != nil || !fi.IsDir() {
				return fmt.Errorf("input folder %q is not a directory", cfg.RootDir)
			}

			check.Locate(&cfg)
			if err := check.CheckDeps(&cfg); err != nil {
				return err
			}

			display.PrintBanner()

			// Ctrl-C / SIGTERM cancels between items; an in-flight ffmpeg
			// invocation still runs to completion or timeout.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			feed := progress.NewFeed()
			statsCh := make(chan pipeline.RunStats, 1)
			go func() { statsCh <- pipeline.Run(ctx, &cfg, feed) }()

			display.Consume(feed, cfg.PollInterval)
			stats := <-statsCh

			if stats.Failed > 0 {
				return fmt.Errorf("%d of %d archives failed", stats.Failed, stats.Total)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.RootDir, "root", "", "input folder (alternative to the positional argument)")
	f.StringVar(&cfg.FFmpegPath, "ffmpeg", "", "path to the ffmpeg binary (default: auto-detect)")
	f.StringVar(&cfg.FFprobePath, "ffprobe", "", "path to the ffprobe binary (default: auto-detect)")
	f.IntVar(&cfg.TimeoutSec, "timeout", cfg.TimeoutSec, "per-file ffmpeg timeout in seconds")
	f.StringVar(&fit, "fit", string(cfg.Fit), "overlay fit mode: cover or contain")
	f.StringVar(&color, "color", string(cfg.Color), "color output: auto, always, or never")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "plan everything but do not transcode or copy")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
