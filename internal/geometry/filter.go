package geometry

import "fmt"

// FilterGraph renders the plan as an ffmpeg -filter_complex expression.
// Input 0 is the main asset, input 1 the overlay. The overlay is scaled,
// then cropped (cover) or padded with transparency (contain), converted to
// RGBA, and composited at the origin with alpha-aware format selection.
func FilterGraph(p Plan) string {
	if p.Mode == Contain {
		return fmt.Sprintf(
			"[1:v]scale=%d:%d,format=rgba,pad=%d:%d:%d:%d:color=0x00000000[ov];[0:v][ov]overlay=0:0:format=auto",
			p.ScaledW, p.ScaledH, p.CanvasW, p.CanvasH, p.OffsetX, p.OffsetY)
	}
	return fmt.Sprintf(
		"[1:v]scale=%d:%d,crop=%d:%d:%d:%d,format=rgba[ov];[0:v][ov]overlay=0:0:format=auto",
		p.ScaledW, p.ScaledH, p.CanvasW, p.CanvasH, p.OffsetX, p.OffsetY)
}
