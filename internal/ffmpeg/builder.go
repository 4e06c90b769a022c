// Package ffmpeg builds the argument lists for the four transcoder
// invocation shapes and executes them under a hard wall-clock timeout with
// guaranteed process-tree termination.
package ffmpeg

import "time"

// metadataTimeLayout is the creation_time value format: ISO-8601 UTC with
// an explicit Z suffix. Callers pass UTC instants.
const metadataTimeLayout = "2006-01-02T15:04:05Z"

// preamble is shared by every invocation: quiet output and unconditional
// overwrite of the output path.
func preamble(ffmpegPath string) []string {
	return []string{ffmpegPath, "-hide_banner", "-loglevel", "error", "-y"}
}

// OverlayVideoArgs composites the overlay onto a video main via the filter
// graph, stamps the resolved creation time, and re-encodes video while
// copying audio. -shortest stops at the main's duration since the overlay
// input loops forever.
func OverlayVideoArgs(ffmpegPath, mainPath, overlayPath, outPath, filterGraph string, created time.Time) []string {
	args := preamble(ffmpegPath)
	return append(args,
		"-i", mainPath,
		"-loop", "1", "-i", overlayPath,
		"-filter_complex", filterGraph,
		"-metadata", "creation_time="+created.UTC().Format(metadataTimeLayout),
		"-c:v", "libx264", "-preset", "veryfast", "-crf", "18",
		"-c:a", "copy",
		"-shortest",
		"-movflags", "+faststart",
		"-pix_fmt", "yuv420p",
		outPath,
	)
}

// OverlayImageArgs composites the overlay onto a photo main, emitting a
// single high-quality frame. Photo outputs carry no creation_time metadata;
// the filesystem timestamps are rewritten instead.
func OverlayImageArgs(ffmpegPath, mainPath, overlayPath, outPath, filterGraph string) []string {
	args := preamble(ffmpegPath)
	return append(args,
		"-i", mainPath,
		"-i", overlayPath,
		"-filter_complex", filterGraph,
		"-frames:v", "1",
		"-q:v", "2",
		outPath,
	)
}

// PassthroughArgs remuxes a video unchanged except for the creation_time
// metadata. Used when no usable overlay exists.
func PassthroughArgs(ffmpegPath, mainPath, outPath string, created time.Time) []string {
	args := preamble(ffmpegPath)
	return append(args,
		"-i", mainPath,
		"-metadata", "creation_time="+created.UTC().Format(metadataTimeLayout),
		"-c", "copy",
		"-movflags", "+faststart",
		outPath,
	)
}

// SingleFrameArgs extracts one frame from srcPath into outPath. Used to
// convert overlay formats the compositor cannot consume directly (webp)
// into PNG.
func SingleFrameArgs(ffmpegPath, srcPath, outPath string) []string {
	args := preamble(ffmpegPath)
	return append(args,
		"-i", srcPath,
		"-frames:v", "1",
		outPath,
	)
}
