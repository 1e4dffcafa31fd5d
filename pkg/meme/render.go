package meme

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var (
	FallbackColor = color.RGBA{0x22, 0x22, 0x22, 0xFF}
	OutlineColor  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// Render clears dst and draws the background followed by every non-empty
// layer in argument order. bg, when present, is stretched to dst's bounds;
// the canvas is expected to already carry bg's aspect ratio (see Fit).
func Render(dst *image.RGBA, bg image.Image, style Style, layers ...TextLayer) {
	if dst == nil {
		return
	}
	b := dst.Bounds()
	draw.Draw(dst, b, image.Transparent, image.Point{}, draw.Src)
	if bg != nil && !bg.Bounds().Empty() {
		draw.CatmullRom.Scale(dst, b, bg, bg.Bounds(), draw.Over, nil)
	} else {
		draw.Draw(dst, b, image.NewUniform(FallbackColor), image.Point{}, draw.Src)
	}

	style = style.Normalized()
	fonts.withFace(style, func(face font.Face) {
		for _, l := range layers {
			if l.Empty() {
				continue
			}
			y := l.Pos.Y
			for _, line := range l.Lines() {
				drawOutlinedLine(dst, face, line, l.Pos.X, y, style)
				y += float64(style.FontSizePx)
			}
		}
	})
	logger().Debug("render", "w", b.Dx(), "h", b.Dy(), "layers", len(layers), "background", bg != nil)
}

// drawOutlinedLine draws line with its top edge at y. The outline is the
// glyph coverage dilated by half the outline width and is painted first, so
// the fill always sits on top of it.
func drawOutlinedLine(dst *image.RGBA, face font.Face, line string, x, y float64, style Style) {
	if line == "" {
		return
	}
	m := face.Metrics()
	radius := (style.OutlineWidth() + 1) / 2
	pad := radius + 2
	w := font.MeasureString(face, line).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	glyphs := image.NewAlpha(image.Rect(0, 0, w+2*pad, h+2*pad))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(pad) + m.Ascent},
	}
	d.DrawString(line)
	outline := dilate(glyphs, radius)

	origin := image.Pt(int(math.Round(x))-pad, int(math.Round(y))-pad)
	r := glyphs.Bounds().Add(origin)
	draw.DrawMask(dst, r, image.NewUniform(OutlineColor), image.Point{}, outline, image.Point{}, draw.Over)
	draw.DrawMask(dst, r, image.NewUniform(style.Color), image.Point{}, glyphs, image.Point{}, draw.Over)
}

// dilate returns a copy of src where every pixel takes the maximum coverage
// found within radius of it.
func dilate(src *image.Alpha, radius int) *image.Alpha {
	b := src.Bounds()
	out := image.NewAlpha(b)
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	var offsets []image.Point
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				offsets = append(offsets, image.Pt(dx, dy))
			}
		}
	}
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var best uint8
			for _, o := range offsets {
				sx, sy := x+o.X, y+o.Y
				if sx < 0 || sy < 0 || sx >= w || sy >= h {
					continue
				}
				if a := src.Pix[sy*src.Stride+sx]; a > best {
					best = a
					if best == 0xFF {
						break
					}
				}
			}
			out.Pix[y*out.Stride+x] = best
		}
	}
	return out
}
