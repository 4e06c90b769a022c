// Package overlay normalizes an overlay asset into a form the transcoder
// can composite: probe it, convert webp to a single PNG frame via the
// transcoder, and fall back to a pure-Go re-encode when neither works.
// When every path fails the caller proceeds without an overlay.
package overlay

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	// Registers the webp decoder for the normalize fallback.
	_ "golang.org/x/image/webp"

	"github.com/snapfix/snapfix/internal/config"
	"github.com/snapfix/snapfix/internal/ffmpeg"
	"github.com/snapfix/snapfix/internal/probe"
)

// Prepared is a transcoder-consumable overlay: a readable image path plus
// its pixel dimensions.
type Prepared struct {
	Path   string
	Width  int
	Height int
}

// Prepare returns a usable overlay representation, writing any converted
// form into workDir. The second return is false when the overlay is
// unusable by every path; the item then runs in passthrough mode.
func Prepare(cfg *config.Config, run *ffmpeg.Runner, overlayPath, workDir string) (Prepared, bool) {
	d, err := probe.Probe(cfg.FFprobePath, overlayPath)
	usable := err == nil && d.Valid()

	if usable && d.Codec == "webp" {
		// The compositor cannot take webp input directly; extract one
		// frame as PNG with the probed dimensions.
		converted := filepath.Join(workDir, "overlay_converted.png")
		res := run.Run(ffmpeg.SingleFrameArgs(cfg.FFmpegPath, overlayPath, converted))
		if res.OK() {
			return Prepared{Path: converted, Width: d.Width, Height: d.Height}, true
		}
		log.Debug().Str("overlay", filepath.Base(overlayPath)).
			Msg("webp frame extraction failed, trying pure-Go normalize")
		usable = false
	}

	if !usable {
		return normalize(overlayPath, workDir)
	}

	return Prepared{Path: overlayPath, Width: d.Width, Height: d.Height}, true
}

// normalize decodes the overlay in-process, forces an alpha channel, and
// re-encodes it as PNG. This is the secondary path for images the probe or
// the transcoder could not handle.
func normalize(srcPath, workDir string) (Prepared, bool) {
	f, err := os.Open(srcPath)
	if err != nil {
		return Prepared{}, false
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Debug().Err(err).Str("overlay", filepath.Base(srcPath)).
			Msg("Overlay not decodable, proceeding without it")
		return Prepared{}, false
	}

	// Clone yields NRGBA, which guarantees the alpha channel the
	// compositing filter expects.
	rgba := imaging.Clone(img)
	out := filepath.Join(workDir, "overlay_normalized.png")
	if err := imaging.Save(rgba, out); err != nil {
		return Prepared{}, false
	}

	b := rgba.Bounds()
	return Prepared{Path: out, Width: b.Dx(), Height: b.Dy()}, true
}
