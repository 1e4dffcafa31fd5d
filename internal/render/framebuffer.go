package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FrameBuffer is a plain RGBA pixel store. The editor canvas and the window
// chrome are both drawn into one.
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

// Resize reallocates the pixels when the size changes and reports whether
// it did. Contents are not preserved.
func (fb *FrameBuffer) Resize(w, h int) bool {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if w == fb.W && h == fb.H {
		return false
	}
	fb.W, fb.H = w, h
	fb.Pixels = make([]uint8, w*h*4)
	return true
}

// Image views the pixels as an *image.RGBA without copying.
func (fb *FrameBuffer) Image() *image.RGBA {
	return &image.RGBA{Pix: fb.Pixels, Stride: fb.W * 4, Rect: image.Rect(0, 0, fb.W, fb.H)}
}

// Snapshot copies the current pixels.
func (fb *FrameBuffer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	copy(img.Pix, fb.Pixels)
	return img
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	fb.FillRect(0, 0, fb.W, fb.H, c)
}

// FillRect replaces the pixels of the rect, clipped to the buffer.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	img := fb.Image()
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeRect draws a border of the given thickness inside the rect.
func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	line = max(line, 1)
	for _, edge := range []image.Rectangle{
		image.Rect(x, y, x+w, y+line),
		image.Rect(x, y+h-line, x+w, y+h),
		image.Rect(x, y, x+line, y+h),
		image.Rect(x+w-line, y, x+w, y+h),
	} {
		fb.FillRect(edge.Min.X, edge.Min.Y, edge.Dx(), edge.Dy(), c)
	}
}
