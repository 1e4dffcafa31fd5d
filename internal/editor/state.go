package editor

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"memeforge/internal/render"
	"memeforge/pkg/meme"
)

type LayerID int

const (
	LayerNone LayerID = iota
	LayerTop
	LayerBottom
)

func (id LayerID) String() string {
	switch id {
	case LayerTop:
		return "top"
	case LayerBottom:
		return "bottom"
	}
	return "none"
}

const (
	// DragOffset keeps the grabbed point slightly inside the text block
	// instead of exactly under the pointer.
	DragOffset  = 10
	ResetMargin = 20
)

// Blank source the canvas is fitted to before any image is loaded.
var blankSource = image.Pt(600, 400)

// Start-up positions, used until the first image load or reset.
var (
	initialTop    = meme.Point{X: 50, Y: 60}
	initialBottom = meme.Point{X: 50, Y: 320}
)

type Canvas struct {
	Width      int
	Height     int
	Scale      float64
	Background image.Image
}

// Session is the single editing session: the canvas, both text layers, the
// style and the drag state machine. Grabbed() == LayerNone is the idle
// state; anything else is dragging(layer).
type Session struct {
	Canvas Canvas
	Top    meme.TextLayer
	Bottom meme.TextLayer
	Style  meme.Style
	Bounds meme.Bounds

	// Origin is where the canvas sits on screen; pointer events arrive in
	// screen space and are shifted by it.
	Origin image.Point

	frame   *render.FrameBuffer
	grabbed LayerID
	version uint64
}

func NewSession(bounds meme.Bounds) *Session {
	if bounds.MaxWidth <= 0 || bounds.MaxHeight <= 0 {
		bounds = meme.DefaultBounds
	}
	s := &Session{Style: meme.DefaultStyle(), Bounds: bounds, frame: render.NewFrameBuffer(1, 1)}
	if err := s.applyFit(blankSource.X, blankSource.Y, nil); err != nil {
		// Only reachable with broken bounds, which were replaced above.
		panic(err)
	}
	s.Top.Pos, s.Bottom.Pos = initialTop, initialBottom
	s.Render()
	return s
}

// LoadImage fits img to the canvas bounds, makes it the background, resets
// the layer positions and redraws. On error nothing changes.
func (s *Session) LoadImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: no image", meme.ErrInvalidImageDimensions)
	}
	b := img.Bounds()
	return s.applyFit(b.Dx(), b.Dy(), img)
}

func (s *Session) applyFit(w, h int, bg image.Image) error {
	fit, err := meme.Fit(w, h, s.Bounds)
	if err != nil {
		return err
	}
	s.Canvas = Canvas{Width: fit.Width, Height: fit.Height, Scale: fit.Scale, Background: bg}
	s.frame.Resize(fit.Width, fit.Height)
	s.release()
	s.ResetPositions()
	return nil
}

func (s *Session) HasBackground() bool { return s.Canvas.Background != nil }

func (s *Session) Layer(id LayerID) meme.TextLayer {
	if l := s.layer(id); l != nil {
		return *l
	}
	return meme.TextLayer{}
}

func (s *Session) layer(id LayerID) *meme.TextLayer {
	switch id {
	case LayerTop:
		return &s.Top
	case LayerBottom:
		return &s.Bottom
	}
	return nil
}

func (s *Session) SetText(id LayerID, text string) {
	l := s.layer(id)
	if l == nil {
		return
	}
	l.Text = strings.ReplaceAll(text, "\r\n", "\n")
	if l.Text == "" && s.grabbed == id {
		s.release()
	}
	s.Render()
}

// SetFontSize clamps px to the allowed range. The bottom layer is anchored
// to the font size, so positions are reset as well.
func (s *Session) SetFontSize(px int) {
	s.Style.FontSizePx = meme.ClampFontSize(px)
	s.ResetPositions()
}

func (s *Session) SetFontFamily(f meme.FontFamily) {
	s.Style.Family = f
	s.Style = s.Style.Normalized()
	s.Render()
}

func (s *Session) SetColor(c color.RGBA) {
	c.A = 0xFF
	s.Style.Color = c
	s.Render()
}

// ResetPositions puts the top layer near the canvas origin and the bottom
// layer one line above the bottom edge.
func (s *Session) ResetPositions() {
	size := float64(meme.ClampFontSize(s.Style.FontSizePx))
	s.Top.Pos = meme.Point{X: ResetMargin, Y: ResetMargin}
	s.Bottom.Pos = meme.Point{X: ResetMargin, Y: float64(s.Canvas.Height) - size - ResetMargin}
	s.Render()
}

// ToCanvas converts a screen point to canvas space.
func (s *Session) ToCanvas(p image.Point) meme.Point {
	return meme.Point{X: float64(p.X - s.Origin.X), Y: float64(p.Y - s.Origin.Y)}
}

// LayerBox returns the hit box of a layer in canvas space.
func (s *Session) LayerBox(id LayerID) (meme.Rect, bool) {
	l := s.layer(id)
	if l == nil {
		return meme.Rect{}, false
	}
	return l.Box(s.Style)
}

// HitTest returns the first layer, top before bottom, whose box contains p.
func (s *Session) HitTest(p meme.Point) LayerID {
	for _, id := range []LayerID{LayerTop, LayerBottom} {
		if box, ok := s.LayerBox(id); ok && box.Contains(p) {
			return id
		}
	}
	return LayerNone
}

func (s *Session) Grabbed() LayerID { return s.grabbed }

// PointerDown grabs the layer under p, or goes idle when nothing is hit.
// A down while already dragging means the matching up was lost; the old
// grab is dropped first.
func (s *Session) PointerDown(p image.Point) LayerID {
	s.release()
	c := s.ToCanvas(p)
	id := s.HitTest(c)
	meme.Logger().Debug("hit test", "x", c.X, "y", c.Y, "layer", id.String())
	if l := s.layer(id); l != nil {
		l.Dragging = true
		s.grabbed = id
	}
	return id
}

// PointerMove repositions the grabbed layer and redraws. It reports whether
// anything moved.
func (s *Session) PointerMove(p image.Point) bool {
	l := s.layer(s.grabbed)
	if l == nil {
		return false
	}
	c := s.ToCanvas(p)
	l.Pos = meme.Point{X: c.X - DragOffset, Y: c.Y - DragOffset}
	s.Render()
	return true
}

// PointerUp always returns to idle, wherever the pointer is.
func (s *Session) PointerUp() {
	s.release()
}

func (s *Session) release() {
	if l := s.layer(s.grabbed); l != nil {
		l.Dragging = false
	}
	s.grabbed = LayerNone
}

// Render redraws the canvas from the current state.
func (s *Session) Render() {
	meme.Render(s.frame.Image(), s.Canvas.Background, s.Style, s.Top, s.Bottom)
	s.version++
}

// Version increases with every completed render.
func (s *Session) Version() uint64 { return s.version }

// View shares the canvas pixels; it is only valid until the next render.
func (s *Session) View() *image.RGBA { return s.frame.Image() }

// Frame copies the last completed render without drawing again.
func (s *Session) Frame() *image.RGBA { return s.frame.Snapshot() }
