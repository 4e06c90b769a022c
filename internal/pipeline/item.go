package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/snapfix/snapfix/internal/archive"
	"github.com/snapfix/snapfix/internal/config"
	"github.com/snapfix/snapfix/internal/ffmpeg"
	"github.com/snapfix/snapfix/internal/geometry"
	"github.com/snapfix/snapfix/internal/naming"
	"github.com/snapfix/snapfix/internal/overlay"
	"github.com/snapfix/snapfix/internal/probe"
	"github.com/snapfix/snapfix/internal/timestamp"
)

// processArchive runs one archive through the full per-item state machine
// and returns its terminal classification. Every failure mode is contained
// here; nothing an archive does can abort the batch, and nothing aborts an
// item once it has started.
func processArchive(cfg *config.Config, run *ffmpeg.Runner, resolver *naming.CollisionResolver, zipPath, outDir string) Outcome {
	item := filepath.Base(zipPath)

	a, err := archive.Open(zipPath)
	if err != nil {
		log.Debug().Err(err).Str("archive", item).Msg("Unreadable archive")
		return Outcome{Item: item, Class: ClassSkipped, Reason: "cannot open archive"}
	}
	defer a.Close()

	pair, err := archive.PickPair(a.Names())
	if err != nil {
		return Outcome{Item: item, Class: ClassSkipped, Reason: "missing -main/-overlay files"}
	}

	workDir := filepath.Join(os.TempDir(), "snapfix-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return Outcome{Item: item, Class: ClassSkipped, Reason: "cannot create work dir"}
	}
	defer os.RemoveAll(workDir)

	mainPath, err := a.ExtractFlat(pair.Main, workDir)
	if err != nil {
		return Outcome{Item: item, Class: ClassSkipped, Reason: extractReason(err)}
	}
	overlayPath, err := a.ExtractFlat(pair.Overlay, workDir)
	if err != nil {
		return Outcome{Item: item, Class: ClassSkipped, Reason: extractReason(err)}
	}

	desc, err := probe.Probe(cfg.FFprobePath, mainPath)
	if err != nil {
		return Outcome{Item: item, Class: ClassSkipped,
			Reason: fmt.Sprintf("cannot read main: %s", filepath.Base(mainPath))}
	}
	if !desc.Valid() {
		return Outcome{Item: item, Class: ClassSkipped, Reason: "main has invalid dimensions"}
	}

	var isVideo bool
	switch strings.ToLower(filepath.Ext(mainPath)) {
	case ".mp4":
		isVideo = true
	case ".jpg", ".jpeg":
	default:
		return Outcome{Item: item, Class: ClassSkipped, Reason: "unsupported main extension"}
	}

	prep, hasOverlay := overlay.Prepare(cfg, run, overlayPath, workDir)

	created := archiveTime(a, pair, desc, isVideo, zipPath)
	outPath := resolver.Resolve(zipPath, filepath.Join(outDir, naming.OutputName(zipPath, mainPath)))

	if cfg.DryRun {
		log.Info().Str("archive", item).Str("output", filepath.Base(outPath)).
			Bool("overlay", hasOverlay).Time("created", created).
			Msg("Dry run, skipping transcode")
		return Outcome{Item: item, Class: ClassSuccess}
	}

	switch {
	case hasOverlay:
		plan := geometry.Compute(desc.Width, desc.Height, prep.Width, prep.Height, geometry.Fit(cfg.Fit))
		graph := geometry.FilterGraph(plan)
		var res ffmpeg.Result
		if isVideo {
			res = run.Run(ffmpeg.OverlayVideoArgs(cfg.FFmpegPath, mainPath, prep.Path, outPath, graph, created))
		} else {
			res = run.Run(ffmpeg.OverlayImageArgs(cfg.FFmpegPath, mainPath, prep.Path, outPath, graph))
		}
		if out, done := classifyResult(item, outPath, res, cfg.TimeoutSec); done {
			return out
		}

	case isVideo:
		res := run.Run(ffmpeg.PassthroughArgs(cfg.FFmpegPath, mainPath, outPath, created))
		if out, done := classifyResult(item, outPath, res, cfg.TimeoutSec); done {
			return out
		}

	default: // photo without a usable overlay: a plain copy preserves quality
		if err := copyFile(mainPath, outPath); err != nil {
			return Outcome{Item: item, Class: ClassFailure,
				Reason: fmt.Sprintf("copy failed: %v", err)}
		}
	}

	if err := timestamp.WriteFileTimes(outPath, created, created, created); err != nil {
		log.Debug().Err(err).Str("output", filepath.Base(outPath)).
			Msg("Could not rewrite file times")
	}
	return Outcome{Item: item, Class: ClassSuccess}
}

// archiveTime gathers every available creation candidate for an archived
// item and picks the oldest: the container creation_time tag (videos only),
// the zip entry times of both assets, and the archive file's own times.
func archiveTime(a *archive.Archive, pair archive.Pair, desc *probe.Descriptor, isVideo bool, zipPath string) time.Time {
	var candidates []time.Time
	if isVideo {
		if t, ok := timestamp.ParseTag(desc.CreationTimeTag); ok {
			candidates = append(candidates, t)
		}
	}
	if t, ok := a.EntryTime(pair.Main); ok {
		candidates = append(candidates, t)
	}
	if t, ok := a.EntryTime(pair.Overlay); ok {
		candidates = append(candidates, t)
	}
	candidates = append(candidates, timestamp.FileTimes(zipPath)...)
	return timestamp.Oldest(candidates)
}

// classifyResult maps a transcoder result onto the item classification.
// done is false on success so the caller proceeds to the timestamp step.
func classifyResult(item, outPath string, res ffmpeg.Result, timeoutSec int) (Outcome, bool) {
	if res.TimedOut {
		// Never keep a truncated output file.
		_ = os.Remove(outPath)
		return Outcome{Item: item, Class: ClassSkipped,
			Reason: fmt.Sprintf("timeout > %ds", timeoutSec)}, true
	}
	if !res.OK() {
		return Outcome{Item: item, Class: ClassFailure, Reason: failureReason(res)}, true
	}
	return Outcome{}, false
}

// failureReason condenses a non-zero ffmpeg exit into one report line:
// the last stderr line when present, the exit error otherwise.
func failureReason(res ffmpeg.Result) string {
	lines := strings.Split(strings.TrimSpace(res.Stderr), "\n")
	if last := strings.TrimSpace(lines[len(lines)-1]); last != "" {
		return last
	}
	if res.Err != nil {
		return res.Err.Error()
	}
	return "ffmpeg exited with error"
}

func extractReason(err error) string {
	if errors.Is(err, archive.ErrDirectoryEntry) {
		return "directory paths inside ZIP"
	}
	return fmt.Sprintf("cannot extract: %v", err)
}

// sweepStandalone processes loose root-level media files after the archive
// pass: videos are remuxed with the resolved creation_time, images copied,
// and both get their filesystem timestamps rewritten. Everything here is
// best-effort; failures are logged and never affect the batch outcome.
func sweepStandalone(ctx context.Context, cfg *config.Config, run *ffmpeg.Runner, resolver *naming.CollisionResolver, outDir string) {
	for _, src := range DiscoverStandalone(cfg.RootDir) {
		if ctx.Err() != nil {
			return
		}
		base := filepath.Base(src)
		ext := strings.ToLower(filepath.Ext(src))
		created := standaloneTime(cfg, src, ext)
		dst := resolver.Resolve(src, filepath.Join(outDir, base))

		if cfg.DryRun {
			log.Info().Str("file", base).Time("created", created).
				Msg("Dry run, skipping standalone file")
			continue
		}

		if ext == ".mp4" {
			res := run.Run(ffmpeg.PassthroughArgs(cfg.FFmpegPath, src, dst, created))
			if !res.OK() {
				// Last resort: carry the file over untouched.
				_ = os.Remove(dst)
				if err := copyFile(src, dst); err != nil {
					log.Warn().Err(err).Str("file", base).Msg("Standalone video not copied")
					continue
				}
			}
		} else {
			if err := copyFile(src, dst); err != nil {
				log.Warn().Err(err).Str("file", base).Msg("Standalone image not copied")
				continue
			}
		}

		if err := timestamp.WriteFileTimes(dst, created, created, created); err != nil {
			log.Debug().Err(err).Str("file", base).Msg("Could not rewrite file times")
		}
	}
}

// standaloneTime resolves the creation instant for a loose file: the
// container tag for videos, embedded image metadata for images, then
// max(mtime, ctime), then now.
func standaloneTime(cfg *config.Config, path, ext string) time.Time {
	if ext == ".mp4" {
		if d, err := probe.Probe(cfg.FFprobePath, path); err == nil {
			if t, ok := timestamp.ParseTag(d.CreationTimeTag); ok {
				return t
			}
		}
	} else {
		if t, ok := timestamp.EmbeddedImageDate(path); ok {
			return t
		}
	}
	if t, ok := timestamp.FallbackFileTime(path); ok {
		return t
	}
	return time.Now().UTC()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
