package geometry

import (
	"strings"
	"testing"
)

func TestCompute_CoverScalesUp(t *testing.T) {
	// 1080x1920 main, 540x540 overlay: cover scales by max(2.0, 3.556).
	p := Compute(1080, 1920, 540, 540, Cover)

	if p.ScaledW != 1920 || p.ScaledH != 1920 {
		t.Errorf("scaled: got %dx%d, want 1920x1920", p.ScaledW, p.ScaledH)
	}
	if p.OffsetX != 420 || p.OffsetY != 0 {
		t.Errorf("crop offset: got (%d,%d), want (420,0)", p.OffsetX, p.OffsetY)
	}
	if p.CanvasW != 1080 || p.CanvasH != 1920 {
		t.Errorf("canvas: got %dx%d, want 1080x1920", p.CanvasW, p.CanvasH)
	}
}

func TestCompute_ContainScalesDown(t *testing.T) {
	// 1080x1920 main, 2160x2160 overlay: contain scales by min(0.5, 0.889).
	p := Compute(1080, 1920, 2160, 2160, Contain)

	if p.ScaledW != 1080 || p.ScaledH != 1080 {
		t.Errorf("scaled: got %dx%d, want 1080x1080", p.ScaledW, p.ScaledH)
	}
	if p.OffsetX != 0 || p.OffsetY != 420 {
		t.Errorf("pad offset: got (%d,%d), want (0,420)", p.OffsetX, p.OffsetY)
	}
}

func TestCompute_CoverAlwaysCoversFrame(t *testing.T) {
	dims := []struct{ mw, mh, ow, oh int }{
		{1920, 1080, 100, 100},
		{100, 100, 1920, 1080},
		{1080, 1920, 1080, 1920},
		{640, 480, 333, 777},
		{1, 1, 9999, 3},
	}
	for _, d := range dims {
		p := Compute(d.mw, d.mh, d.ow, d.oh, Cover)
		if p.ScaledW < p.CanvasW || p.ScaledH < p.CanvasH {
			t.Errorf("cover %dx%d/%dx%d: scaled %dx%d smaller than canvas %dx%d",
				d.mw, d.mh, d.ow, d.oh, p.ScaledW, p.ScaledH, p.CanvasW, p.CanvasH)
		}
	}
}

func TestCompute_ContainAlwaysFitsFrame(t *testing.T) {
	dims := []struct{ mw, mh, ow, oh int }{
		{1920, 1080, 100, 100},
		{100, 100, 1920, 1080},
		{640, 480, 333, 777},
		{3, 9999, 1, 1},
	}
	for _, d := range dims {
		p := Compute(d.mw, d.mh, d.ow, d.oh, Contain)
		if p.ScaledW > p.CanvasW || p.ScaledH > p.CanvasH {
			t.Errorf("contain %dx%d/%dx%d: scaled %dx%d larger than canvas %dx%d",
				d.mw, d.mh, d.ow, d.oh, p.ScaledW, p.ScaledH, p.CanvasW, p.CanvasH)
		}
	}
}

func TestCompute_ClampsNonPositiveInputs(t *testing.T) {
	cases := []struct{ mw, mh, ow, oh int }{
		{0, 0, 0, 0},
		{-5, 1080, 540, 540},
		{1920, -1, 0, 540},
		{1920, 1080, -100, -100},
	}
	for _, d := range cases {
		for _, fit := range []Fit{Cover, Contain} {
			p := Compute(d.mw, d.mh, d.ow, d.oh, fit)
			if p.ScaledW < 1 || p.ScaledH < 1 {
				t.Errorf("%s %dx%d/%dx%d: scaled %dx%d, want >=1 on both axes",
					fit, d.mw, d.mh, d.ow, d.oh, p.ScaledW, p.ScaledH)
			}
			if p.OffsetX < 0 || p.OffsetY < 0 {
				t.Errorf("%s: negative offset (%d,%d)", fit, p.OffsetX, p.OffsetY)
			}
			if p.CanvasW < 1 || p.CanvasH < 1 {
				t.Errorf("%s: canvas %dx%d, want >=1", fit, p.CanvasW, p.CanvasH)
			}
		}
	}
}

func TestCompute_IdenticalDimensionsNoOffset(t *testing.T) {
	for _, fit := range []Fit{Cover, Contain} {
		p := Compute(1080, 1920, 1080, 1920, fit)
		if p.ScaledW != 1080 || p.ScaledH != 1920 {
			t.Errorf("%s: scaled %dx%d, want 1080x1920", fit, p.ScaledW, p.ScaledH)
		}
		if p.OffsetX != 0 || p.OffsetY != 0 {
			t.Errorf("%s: offset (%d,%d), want (0,0)", fit, p.OffsetX, p.OffsetY)
		}
	}
}

func TestFilterGraph_Cover(t *testing.T) {
	p := Compute(1080, 1920, 540, 540, Cover)
	got := FilterGraph(p)
	want := "[1:v]scale=1920:1920,crop=1080:1920:420:0,format=rgba[ov];[0:v][ov]overlay=0:0:format=auto"
	if got != want {
		t.Errorf("graph:\n got %s\nwant %s", got, want)
	}
}

func TestFilterGraph_Contain(t *testing.T) {
	p := Compute(1080, 1920, 2160, 2160, Contain)
	got := FilterGraph(p)
	want := "[1:v]scale=1080:1080,format=rgba,pad=1080:1920:0:420:color=0x00000000[ov];[0:v][ov]overlay=0:0:format=auto"
	if got != want {
		t.Errorf("graph:\n got %s\nwant %s", got, want)
	}
}

func TestFilterGraph_AlphaAware(t *testing.T) {
	for _, fit := range []Fit{Cover, Contain} {
		g := FilterGraph(Compute(100, 100, 50, 50, fit))
		if !strings.Contains(g, "format=rgba") {
			t.Errorf("%s graph missing rgba conversion: %s", fit, g)
		}
		if !strings.Contains(g, "overlay=0:0:format=auto") {
			t.Errorf("%s graph missing overlay stage: %s", fit, g)
		}
	}
}
