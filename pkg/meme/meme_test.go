package meme

import (
	"errors"
	"image/color"
	"testing"
)

func TestFitDownscalesToBounds(t *testing.T) {
	got, err := Fit(1600, 1200, Bounds{MaxWidth: 800, MaxHeight: 600})
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 800 || got.Height != 600 {
		t.Fatalf("unexpected canvas: %dx%d", got.Width, got.Height)
	}
	if got.Scale != 0.5 {
		t.Fatalf("unexpected scale: %v", got.Scale)
	}
}

func TestFitNeverUpscales(t *testing.T) {
	got, err := Fit(320, 200, DefaultBounds)
	if err != nil {
		t.Fatal(err)
	}
	if got.Scale != 1 || got.Width != 320 || got.Height != 200 {
		t.Fatalf("small image must keep natural size, got %+v", got)
	}
}

func TestFitStaysWithinBounds(t *testing.T) {
	bounds := Bounds{MaxWidth: 800, MaxHeight: 600}
	for w := 1; w <= 4000; w += 137 {
		for h := 1; h <= 4000; h += 151 {
			got, err := Fit(w, h, bounds)
			if err != nil {
				t.Fatalf("%dx%d: %v", w, h, err)
			}
			if got.Scale > 1 {
				t.Fatalf("%dx%d: upscaled by %v", w, h, got.Scale)
			}
			if got.Width > bounds.MaxWidth || got.Height > bounds.MaxHeight {
				t.Fatalf("%dx%d: canvas %dx%d exceeds bounds", w, h, got.Width, got.Height)
			}
		}
	}
}

func TestFitRejectsInvalidDimensions(t *testing.T) {
	cases := []struct{ w, h int }{{0, 10}, {10, 0}, {-5, 10}, {0, 0}}
	for _, c := range cases {
		if _, err := Fit(c.w, c.h, DefaultBounds); !errors.Is(err, ErrInvalidImageDimensions) {
			t.Fatalf("%dx%d: expected ErrInvalidImageDimensions, got %v", c.w, c.h, err)
		}
	}
	if _, err := Fit(10, 10, Bounds{}); !errors.Is(err, ErrInvalidImageDimensions) {
		t.Fatalf("expected zero bounds to be rejected, got %v", err)
	}
}

func TestOutlineWidthFollowsFontSize(t *testing.T) {
	cases := map[int]int{16: 2, 24: 2, 30: 3, 48: 4, 96: 8}
	for size, want := range cases {
		if got := (Style{FontSizePx: size}).OutlineWidth(); got != want {
			t.Fatalf("size %d: outline %d, want %d", size, got, want)
		}
	}
}

func TestStyleNormalizedClampsSize(t *testing.T) {
	if got := (Style{FontSizePx: 4}).Normalized().FontSizePx; got != MinFontSize {
		t.Fatalf("expected clamp to %d, got %d", MinFontSize, got)
	}
	if got := (Style{FontSizePx: 400}).Normalized().FontSizePx; got != MaxFontSize {
		t.Fatalf("expected clamp to %d, got %d", MaxFontSize, got)
	}
	if got := (Style{FontSizePx: 48, Family: FontFamily(9)}).Normalized().Family; got != FontImpact {
		t.Fatalf("unexpected family fallback: %v", got)
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	c, err := ParseHexColor("#FFD54F")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0xFF, 0xD5, 0x4F, 0xFF}) {
		t.Fatalf("unexpected color: %#v", c)
	}
	if got := (Style{Color: c}).ColorHex(); got != "#ffd54f" {
		t.Fatalf("unexpected hex: %q", got)
	}
	short, err := ParseHexColor("fff")
	if err != nil || short != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("short form: %v %#v", err, short)
	}
	if _, err := ParseHexColor("#12345"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}
}

func TestFontFamilyCycle(t *testing.T) {
	f := FontImpact
	seen := map[FontFamily]bool{}
	for i := 0; i < len(FontFamilies); i++ {
		seen[f] = true
		f = f.Next()
	}
	if f != FontImpact || len(seen) != len(FontFamilies) {
		t.Fatalf("cycle did not visit every family: %v", seen)
	}
	if got, ok := ParseFontFamily("anton"); !ok || got != FontAnton {
		t.Fatalf("unexpected parse: %v %v", got, ok)
	}
}

func TestLayerBoxUsesMeasuredFirstLine(t *testing.T) {
	style := DefaultStyle()
	layer := TextLayer{Text: "HELLO", Pos: Point{X: 20, Y: 30}}
	box, ok := layer.Box(style)
	if !ok {
		t.Fatalf("expected a box for non-empty text")
	}
	if box.H != 48 {
		t.Fatalf("box height %v, want 48", box.H)
	}
	want := MeasureLine("HELLO", style)
	if want <= 0 || box.W != want {
		t.Fatalf("box width %v, measured %v", box.W, want)
	}
	if box.X != 20 || box.Y != 30 {
		t.Fatalf("box anchored at %v,%v", box.X, box.Y)
	}

	multi := TextLayer{Text: "HELLO\nA MUCH LONGER SECOND LINE", Pos: Point{X: 20, Y: 30}}
	mbox, _ := multi.Box(style)
	if mbox != box {
		t.Fatalf("multi-line box must only cover the first line: %+v vs %+v", mbox, box)
	}
}

func TestEmptyLayerHasNoBox(t *testing.T) {
	if _, ok := (TextLayer{}).Box(DefaultStyle()); ok {
		t.Fatalf("empty layer must not have a box")
	}
}

func TestMeasureDependsOnStyle(t *testing.T) {
	small := MeasureLine("HELLO", Style{FontSizePx: 16, Family: FontImpact})
	large := MeasureLine("HELLO", Style{FontSizePx: 96, Family: FontImpact})
	if !(large > small) {
		t.Fatalf("expected larger font to measure wider: %v <= %v", large, small)
	}
	if got := MeasureLine("", DefaultStyle()); got != 0 {
		t.Fatalf("empty string measured %v", got)
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 5}
	for _, p := range []Point{{10, 10}, {30, 15}, {20, 12}} {
		if !r.Contains(p) {
			t.Fatalf("expected %v inside %+v", p, r)
		}
	}
	for _, p := range []Point{{9.9, 10}, {30.1, 12}, {20, 15.5}} {
		if r.Contains(p) {
			t.Fatalf("expected %v outside %+v", p, r)
		}
	}
}
