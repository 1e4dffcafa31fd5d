package meme

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	sampleWidth  = 800
	sampleHeight = 600
	SampleCount  = 3
)

// DecodeImage decodes any registered format: PNG, JPEG, GIF, BMP, TIFF and
// WebP. It also returns the format name.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, format, fmt.Errorf("%w: decoded %dx%d", ErrInvalidImageDimensions, b.Dx(), b.Dy())
	}
	return img, format, nil
}

func LoadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// EncodePNG serialises img. A nil or empty image yields ErrExportFailure.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: nothing rendered", ErrExportFailure)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: empty encoding", ErrExportFailure)
	}
	return buf.Bytes(), nil
}

// Sample returns one of the built-in sample backgrounds, numbered from 1.
// Unknown numbers fall back to the first sample.
func Sample(n int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, sampleWidth, sampleHeight))
	switch n {
	case 2:
		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x11, 0x18, 0x27, 0xFF}), image.Point{}, draw.Src)
		drawCentered(img, "Sample 2", Style{FontSizePx: 48, Family: FontRoboto, Color: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}})
	case 3:
		from := color.RGBA{0xF9, 0x73, 0x16, 0xFF}
		to := color.RGBA{0xF4, 0x3F, 0x5E, 0xFF}
		for x := 0; x < sampleWidth; x++ {
			t := float64(x) / float64(sampleWidth-1)
			c := color.RGBA{lerp(from.R, to.R, t), lerp(from.G, to.G, t), lerp(from.B, to.B, t), 0xFF}
			for y := 0; y < sampleHeight; y++ {
				img.SetRGBA(x, y, c)
			}
		}
	default:
		draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x4A, 0x90, 0xE2, 0xFF}), image.Point{}, draw.Src)
		fillCircle(img, sampleWidth/2, sampleHeight/2, 120, color.RGBA{0xFF, 0xD5, 0x4F, 0xFF})
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func drawCentered(img *image.RGBA, s string, style Style) {
	fonts.withFace(style, func(face font.Face) {
		m := face.Metrics()
		w := font.MeasureString(face, s)
		b := img.Bounds()
		x := fixed.I(b.Dx()/2) - w/2
		y := fixed.I(b.Dy()/2) - (m.Ascent+m.Descent)/2 + m.Ascent
		d := font.Drawer{Dst: img, Src: image.NewUniform(style.Color), Face: face, Dot: fixed.Point26_6{X: x, Y: y}}
		d.DrawString(s)
	})
}
