// Package pipeline is the batch controller: it discovers archives in the
// input root, drives each through pairing, extraction, probing, overlay
// compositing, and timestamp rewriting, sweeps loose media files, and
// writes the skip report. Progress is reported over the feed; the batch
// never stops because one item failed.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/snapfix/snapfix/internal/config"
	"github.com/snapfix/snapfix/internal/ffmpeg"
	"github.com/snapfix/snapfix/internal/naming"
	"github.com/snapfix/snapfix/internal/progress"
)

// summaryTimeLayout is the day-month-year stamp in the finish summary.
const summaryTimeLayout = "02-01-2006, 15:04"

// Run executes one full batch over cfg.RootDir, publishing events to feed.
// The final event is always KindDone. Cancellation is honored between
// items only; an in-flight transcode always runs to completion or timeout.
func Run(ctx context.Context, cfg *config.Config, feed *progress.Feed) RunStats {
	stats := RunStats{StartedAt: time.Now()}

	outDir := filepath.Join(cfg.RootDir, config.OutputDirName)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		feed.Publish(progress.Event{Kind: progress.KindError,
			Text: fmt.Sprintf("Cannot create output folder: %v", err)})
		feed.Publish(progress.Event{Kind: progress.KindDone, Text: "Finished (nothing to do)."})
		return stats
	}

	zips, err := DiscoverArchives(cfg.RootDir)
	if err != nil {
		feed.Publish(progress.Event{Kind: progress.KindError, Text: err.Error()})
		feed.Publish(progress.Event{Kind: progress.KindDone, Text: "Finished (nothing to do)."})
		return stats
	}
	if len(zips) == 0 {
		feed.Publish(progress.Event{Kind: progress.KindError, Text: "No .zip files found."})
		feed.Publish(progress.Event{Kind: progress.KindDone, Text: "Finished (nothing to do)."})
		return stats
	}

	stats.Total = len(zips)
	run := &ffmpeg.Runner{Timeout: cfg.Timeout()}
	resolver := naming.NewCollisionResolver()
	var reported []Outcome

	for _, zp := range zips {
		if ctx.Err() != nil {
			feed.Publish(progress.Event{Kind: progress.KindDone,
				Done: stats.Done, Total: stats.Total,
				Text: fmt.Sprintf("Canceled. Completed %d/%d files.", stats.Done, stats.Total)})
			return stats
		}

		item := filepath.Base(zp)
		feed.Publish(progress.Event{
			Kind: progress.KindProgress,
			Done: stats.Done, Total: stats.Total,
			Text: fmt.Sprintf("Processing: %s (%d/%d)", item, stats.Done+1, stats.Total),
		})

		start := time.Now()
		out := processArchive(cfg, run, resolver, zp, outDir)
		stats.Record(out.Class, time.Since(start))

		switch out.Class {
		case ClassFailure:
			reported = append(reported, out)
			feed.Publish(progress.Event{Kind: progress.KindWarn,
				Text: fmt.Sprintf("FFmpeg failed: %s", item)})
			log.Warn().Str("archive", item).Str("reason", out.Reason).Msg("Transcode failed")
		case ClassSkipped:
			reported = append(reported, out)
			log.Info().Str("archive", item).Str("reason", out.Reason).Msg("Archive skipped")
		}

		eta, _ := stats.EstimateFinish()
		feed.Publish(progress.Event{
			Kind: progress.KindProgress,
			Done: stats.Done, Total: stats.Total,
			Text: fmt.Sprintf("Done: %d/%d • OK: %d • Failed: %d • Skipped: %d",
				stats.Done, stats.Total, stats.Succeeded, stats.Failed, stats.Skipped),
			ETA: eta,
		})
	}

	sweepStandalone(ctx, cfg, run, resolver, outDir)

	if len(reported) > 0 && !cfg.DryRun {
		reportPath := filepath.Join(outDir, config.SkipReportName)
		if err := WriteSkipReport(reportPath, reported); err != nil {
			log.Warn().Err(err).Msg("Could not write skip report")
		}
	}

	feed.Publish(progress.Event{
		Kind: progress.KindDone,
		Done: stats.Done, Total: stats.Total,
		Text: fmt.Sprintf("Finished %s. ZIPs processed: %d, OK: %d, Failed: %d, Skipped: %d. Output: %s",
			time.Now().Format(summaryTimeLayout),
			stats.Total, stats.Succeeded, stats.Failed, stats.Skipped, outDir),
	})
	return stats
}
