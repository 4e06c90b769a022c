// Package archive inspects per-item zip archives: pairing the tagged main
// and overlay entries, reading entry timestamps, and extracting entries
// flattened into a working directory.
package archive

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

// Recognized extensions (lowercase, with leading dot).
var (
	mainExts    = map[string]bool{".mp4": true, ".jpg": true, ".jpeg": true}
	overlayExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}
)

// Marker substrings checked case-insensitively against entry base names.
const (
	mainMarker    = "-main"
	overlayMarker = "-overlay"
)

// markerVariants are stripped from candidate stems to obtain the core key
// used to group a main with its overlay.
var markerVariants = []string{"-main", "_main", " main", "-overlay", "_overlay", " overlay"}

// ErrNoPair is returned when an archive has no main-tagged entry, no
// overlay-tagged entry, or neither. The owning item must be skipped.
var ErrNoPair = errors.New("missing -main/-overlay files")

// Pair is the resolved (main, overlay) entry names of one archive.
type Pair struct {
	Main    string
	Overlay string
}

// PickPair selects the main and overlay entries from an archive's entry
// names. Candidates are grouped by core key (stem with marker substrings
// stripped); the first group holding both wins. When no group is complete
// the first main and first overlay are paired arbitrarily, preserving
// best-effort behavior over strict failure.
func PickPair(names []string) (Pair, error) {
	var mains, overlays []string
	for _, n := range names {
		base := strings.ToLower(path.Base(n))
		ext := filepath.Ext(base)
		if strings.Contains(base, mainMarker) && mainExts[ext] {
			mains = append(mains, n)
		}
		if strings.Contains(base, overlayMarker) && overlayExts[ext] {
			overlays = append(overlays, n)
		}
	}
	if len(mains) == 0 || len(overlays) == 0 {
		return Pair{}, ErrNoPair
	}

	type group struct {
		main    string
		overlay string
	}
	byCore := make(map[string]*group)
	var order []string

	claim := func(key string) *group {
		g, ok := byCore[key]
		if !ok {
			g = &group{}
			byCore[key] = g
			order = append(order, key)
		}
		return g
	}
	for _, m := range mains {
		claim(coreStem(m)).main = m
	}
	for _, o := range overlays {
		claim(coreStem(o)).overlay = o
	}

	for _, key := range order {
		g := byCore[key]
		if g.main != "" && g.overlay != "" {
			return Pair{Main: g.main, Overlay: g.overlay}, nil
		}
	}
	return Pair{Main: mains[0], Overlay: overlays[0]}, nil
}

// coreStem lowercases the entry's base stem and strips every marker variant,
// so "clip-main.mp4" and "clip_overlay.png" share the key "clip".
func coreStem(name string) string {
	base := path.Base(name)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	for _, tag := range markerVariants {
		stem = strings.ReplaceAll(stem, tag, "")
	}
	return stem
}
