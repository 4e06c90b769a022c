// Package probe provides ffprobe-based media inspection and typed result
// structures. A single JSON call per file returns the primary video stream
// shape plus the container-level creation_time tag.
package probe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Descriptor is the probed shape of a decodable asset. CreationTimeTag is
// the raw format-level creation_time string ("" when absent); parsing it
// is the timestamp package's job.
type Descriptor struct {
	Codec           string
	Width           int
	Height          int
	CreationTimeTag string
}

// Valid reports whether the descriptor carries usable pixel dimensions.
// Items with an invalid main descriptor must be skipped.
func (d *Descriptor) Valid() bool {
	return d != nil && d.Width > 0 && d.Height > 0
}

// Probe runs a single ffprobe JSON call against path using the configured
// binary and returns the parsed descriptor. Only the first video stream is
// inspected; files without one yield an error. Probing is not cancellable:
// a batch cancellation takes effect between items, never mid-item.
func Probe(ffprobePath, path string) (*Descriptor, error) {
	cmd := exec.Command(ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=codec_name,width,height:format_tags=creation_time",
		"-of", "json",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Descriptor.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Descriptor, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	if len(raw.Streams) == 0 {
		return nil, fmt.Errorf("no video stream in ffprobe output")
	}

	s := raw.Streams[0]
	return &Descriptor{
		Codec:           strings.ToLower(s.CodecName),
		Width:           s.Width,
		Height:          s.Height,
		CreationTimeTag: raw.Format.Tags["creation_time"],
	}, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Tags map[string]string `json:"tags"`
}

type ffprobeStream struct {
	CodecName string `json:"codec_name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}
