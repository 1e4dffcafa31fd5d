// Package meme is the compositing core of memeforge: it fits source images
// to a bounded canvas, models the two text layers, measures and renders
// outlined text deterministically, and talks to the remote rendering
// service.
package meme

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

const (
	MinFontSize     = 16
	MaxFontSize     = 96
	DefaultFontSize = 48

	PreviewFilename = "meme-preview.png"
	ResultFilename  = "meme.png"
)

var (
	ErrInvalidImageDimensions = errors.New("meme: invalid image dimensions")
	ErrExportFailure          = errors.New("meme: export failed")
	ErrRemoteRejected         = errors.New("meme: remote rejected request")
	ErrTransportFailure       = errors.New("meme: transport failure")
	ErrInvalidColor           = errors.New("meme: invalid color")
)

// RemoteError reports a non-2xx answer from the rendering service. Only the
// status code is kept; the body is not interpreted.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("meme: remote rejected request: HTTP %d", e.StatusCode)
}

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteRejected }

// TransportError wraps a network-level failure while talking to the
// rendering service.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "meme: transport failure: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error        { return e.Err }
func (e *TransportError) Is(target error) bool { return target == ErrTransportFailure }

// Bounds caps the canvas footprint a source image is fitted into.
type Bounds struct {
	MaxWidth  int
	MaxHeight int
}

var DefaultBounds = Bounds{MaxWidth: 800, MaxHeight: 600}

type FitResult struct {
	Scale  float64
	Width  int
	Height int
}

// Fit computes the display scale for a srcW x srcH image so that it fits b
// while keeping its aspect ratio. Images smaller than b are never enlarged.
func Fit(srcW, srcH int, b Bounds) (FitResult, error) {
	if srcW <= 0 || srcH <= 0 {
		return FitResult{}, fmt.Errorf("%w: source %dx%d", ErrInvalidImageDimensions, srcW, srcH)
	}
	if b.MaxWidth <= 0 || b.MaxHeight <= 0 {
		return FitResult{}, fmt.Errorf("%w: bounds %dx%d", ErrInvalidImageDimensions, b.MaxWidth, b.MaxHeight)
	}
	scale := math.Min(float64(b.MaxWidth)/float64(srcW), float64(b.MaxHeight)/float64(srcH))
	if scale > 1 {
		scale = 1
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return FitResult{}, fmt.Errorf("%w: scale %v", ErrInvalidImageDimensions, scale)
	}
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	// Extreme aspect ratios can round one side away entirely.
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	logger().Debug("fit image", "src_w", srcW, "src_h", srcH, "scale", scale, "w", w, "h", h)
	return FitResult{Scale: scale, Width: w, Height: h}, nil
}

type FontFamily uint8

const (
	FontImpact FontFamily = iota
	FontAnton
	FontRoboto
)

var FontFamilies = []FontFamily{FontImpact, FontAnton, FontRoboto}

func (f FontFamily) String() string {
	switch f {
	case FontImpact:
		return "Impact"
	case FontAnton:
		return "Anton"
	case FontRoboto:
		return "Roboto"
	}
	return "FontFamily(" + strconv.Itoa(int(f)) + ")"
}

func (f FontFamily) Valid() bool { return f <= FontRoboto }

// Next cycles through FontFamilies.
func (f FontFamily) Next() FontFamily {
	if !f.Valid() {
		return FontImpact
	}
	return FontFamilies[(int(f)+1)%len(FontFamilies)]
}

func ParseFontFamily(name string) (FontFamily, bool) {
	for _, f := range FontFamilies {
		if strings.EqualFold(f.String(), strings.TrimSpace(name)) {
			return f, true
		}
	}
	return FontImpact, false
}

// Style holds the text settings shared by both layers.
type Style struct {
	FontSizePx int
	Family     FontFamily
	Color      color.RGBA
}

func DefaultStyle() Style {
	return Style{FontSizePx: DefaultFontSize, Family: FontImpact, Color: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}}
}

func ClampFontSize(px int) int {
	if px < MinFontSize {
		return MinFontSize
	}
	if px > MaxFontSize {
		return MaxFontSize
	}
	return px
}

func (s Style) Normalized() Style {
	s.FontSizePx = ClampFontSize(s.FontSizePx)
	if !s.Family.Valid() {
		s.Family = FontImpact
	}
	return s
}

// OutlineWidth is derived from the font size so legibility scales with it.
func (s Style) OutlineWidth() int {
	w := int(math.Round(float64(s.FontSizePx) / 12))
	if w < 2 {
		return 2
	}
	return w
}

func (s Style) ColorHex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.Color.R, s.Color.G, s.Color.B)
}

// ParseHexColor accepts #rgb and #rrggbb, with or without the leading '#'.
func ParseHexColor(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}
	if len(raw) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains is inclusive on every edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// TextLayer is one positioned block of user text. Pos is the top-left
// anchor of the block in canvas space.
type TextLayer struct {
	Text     string
	Pos      Point
	Dragging bool
}

func (l TextLayer) Empty() bool { return l.Text == "" }

func (l TextLayer) Lines() []string {
	if l.Text == "" {
		return nil
	}
	return strings.Split(l.Text, "\n")
}

func (l TextLayer) FirstLine() string {
	line, _, _ := strings.Cut(l.Text, "\n")
	return line
}

// Box returns the hit box of the layer: the first line's measured width and
// a single line's height. Empty layers have no box.
func (l TextLayer) Box(style Style) (Rect, bool) {
	if l.Empty() {
		return Rect{}, false
	}
	style = style.Normalized()
	return Rect{
		X: l.Pos.X,
		Y: l.Pos.Y,
		W: MeasureLine(l.FirstLine(), style),
		H: float64(style.FontSizePx),
	}, true
}
