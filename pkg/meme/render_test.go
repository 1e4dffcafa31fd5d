package meme

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func renderFixture(bg image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, 400, 300))
	style := DefaultStyle()
	top := TextLayer{Text: "HELLO\nWORLD", Pos: Point{X: 20, Y: 20}}
	bottom := TextLayer{Text: "BOTTOM", Pos: Point{X: 20, Y: 230}}
	Render(dst, bg, style, top, bottom)
	return dst
}

func TestRenderIsIdempotent(t *testing.T) {
	bg := Sample(1)
	a := renderFixture(bg)
	b := renderFixture(bg)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("two renders of the same state differ")
	}

	// Rendering into an already-used canvas must not leave old pixels behind.
	Render(a, bg, DefaultStyle(), TextLayer{Text: "HELLO\nWORLD", Pos: Point{X: 20, Y: 20}}, TextLayer{Text: "BOTTOM", Pos: Point{X: 20, Y: 230}})
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("re-render over previous frame differs")
	}
}

func TestRenderFallbackBackground(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 50, 40))
	Render(dst, nil, DefaultStyle())
	for _, p := range []image.Point{{0, 0}, {49, 39}, {25, 20}} {
		if got := dst.RGBAAt(p.X, p.Y); got != FallbackColor {
			t.Fatalf("pixel %v = %#v, want fallback", p, got)
		}
	}
}

func TestRenderDrawsFillAndOutline(t *testing.T) {
	dst := renderFixture(nil)
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	var fill, outline int
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			switch dst.RGBAAt(x, y) {
			case white:
				fill++
			case OutlineColor:
				outline++
			}
		}
	}
	if fill == 0 {
		t.Fatalf("expected filled glyph pixels")
	}
	if outline == 0 {
		t.Fatalf("expected outline pixels")
	}
}

func TestRenderSkipsEmptyLayers(t *testing.T) {
	plain := image.NewRGBA(image.Rect(0, 0, 120, 80))
	Render(plain, nil, DefaultStyle())
	withEmpty := image.NewRGBA(image.Rect(0, 0, 120, 80))
	Render(withEmpty, nil, DefaultStyle(), TextLayer{Pos: Point{X: 10, Y: 10}}, TextLayer{})
	if !bytes.Equal(plain.Pix, withEmpty.Pix) {
		t.Fatalf("empty layers must not draw anything")
	}
}

func TestRenderDoesNotMutateLayers(t *testing.T) {
	top := TextLayer{Text: "A", Pos: Point{X: 5, Y: 6}, Dragging: true}
	before := top
	Render(image.NewRGBA(image.Rect(0, 0, 60, 60)), nil, DefaultStyle(), top)
	if top != before {
		t.Fatalf("layer changed during render: %+v", top)
	}
}

func TestRenderStretchesBackground(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	green := color.RGBA{0x00, 0xC0, 0x00, 0xFF}
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+1], src.Pix[i+3] = green.G, green.A
	}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 3))
	Render(dst, src, DefaultStyle())
	got := dst.RGBAAt(3, 2)
	if got.R > 1 || got.B > 1 || got.G < green.G-1 || got.G > green.G+1 || got.A != 0xFF {
		t.Fatalf("corner pixel %#v, want stretched background", got)
	}
}
