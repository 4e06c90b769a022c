// Package geometry computes the scale/crop or scale/pad transform that maps
// an overlay image onto a main asset's frame, and renders it as an ffmpeg
// filter graph. Pure computation, no I/O.
package geometry

import "math"

// Fit is the overlay scaling policy.
type Fit string

const (
	// Cover scales the overlay so it covers the entire main frame, then
	// center-crops the excess.
	Cover Fit = "cover"
	// Contain scales the overlay so it fits entirely inside the main
	// frame, with transparent padding filling the remainder.
	Contain Fit = "contain"
)

// Plan is the numeric transform derived from a main/overlay dimension pair
// and a fit mode. CanvasW/CanvasH are the main frame dimensions; OffsetX/Y
// is the crop offset (cover) or pad offset (contain).
type Plan struct {
	Mode    Fit
	ScaledW int
	ScaledH int
	OffsetX int
	OffsetY int
	CanvasW int
	CanvasH int
}

// Compute derives the transform for main dimensions (mw, mh) and overlay
// dimensions (ow, oh). Non-positive inputs are clamped up to 1 so the scale
// factors are always well-defined; scaled dimensions are rounded half away
// from zero (an exact .5 product rounds up, never to even) and floored to
// >=1, offsets floored to >=0.
func Compute(mw, mh, ow, oh int, fit Fit) Plan {
	mw = clampMin(mw, 1)
	mh = clampMin(mh, 1)
	ow = clampMin(ow, 1)
	oh = clampMin(oh, 1)

	sx := float64(mw) / float64(ow)
	sy := float64(mh) / float64(oh)

	var s float64
	if fit == Contain {
		s = math.Min(sx, sy)
	} else {
		s = math.Max(sx, sy)
	}

	sw := clampMin(int(math.Round(float64(ow)*s)), 1)
	sh := clampMin(int(math.Round(float64(oh)*s)), 1)

	p := Plan{
		Mode:    fit,
		ScaledW: sw,
		ScaledH: sh,
		CanvasW: mw,
		CanvasH: mh,
	}

	if fit == Contain {
		p.OffsetX = clampMin((mw-sw)/2, 0)
		p.OffsetY = clampMin((mh-sh)/2, 0)
	} else {
		p.OffsetX = clampMin((sw-mw)/2, 0)
		p.OffsetY = clampMin((sh-mh)/2, 0)
	}
	return p
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
