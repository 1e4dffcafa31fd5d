package ui

import (
	"image"

	"memeforge/internal/render"
)

type Layout struct {
	SidebarX  int
	SidebarW  int
	StatusH   int
	StatusBar int
	Margin    int
	RowH      int
	ViewX     int
	ViewY     int
	ViewW     int
	ViewH     int
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	sidebarW := dp(theme.SidebarWidthDp)
	statusH := dp(theme.StatusHeightDp)
	margin := dp(theme.MarginDp)
	if sidebarW > w/2 {
		sidebarW = w / 2
	}

	viewX := sidebarW + margin
	viewY := margin
	viewW := w - viewX - margin
	viewH := h - statusH - margin*2
	if viewW < 0 {
		viewW = 0
	}
	if viewH < 0 {
		viewH = 0
	}

	return Layout{
		SidebarX:  0,
		SidebarW:  sidebarW,
		StatusH:   statusH,
		StatusBar: h - statusH,
		Margin:    margin,
		RowH:      dp(theme.RowHeightDp),
		ViewX:     viewX,
		ViewY:     viewY,
		ViewW:     viewW,
		ViewH:     viewH,
	}
}

// CanvasOrigin centres a canvas of the given size in the viewport. A canvas
// larger than the viewport is pinned to its top-left corner.
func (l Layout) CanvasOrigin(canvasW, canvasH int) image.Point {
	x := l.ViewX + (l.ViewW-canvasW)/2
	y := l.ViewY + (l.ViewH-canvasH)/2
	if x < l.ViewX {
		x = l.ViewX
	}
	if y < l.ViewY {
		y = l.ViewY
	}
	return image.Pt(x, y)
}

// DrawShell paints the window chrome around the canvas: sidebar, viewport
// and status bar, plus the canvas drop shadow.
func DrawShell(fb *render.FrameBuffer, theme Theme, scale float32, canvas image.Rectangle) Layout {
	layout := ComputeLayout(fb.W, fb.H, theme, scale)

	fb.Clear(theme.AppBackground)

	fb.FillRect(layout.SidebarX, 0, layout.SidebarW, layout.StatusBar, theme.Sidebar)
	fb.StrokeRect(layout.SidebarX, 0, layout.SidebarW, layout.StatusBar, 1, theme.Border)

	fb.FillRect(layout.ViewX, layout.ViewY, layout.ViewW, layout.ViewH, theme.Viewport)
	fb.StrokeRect(layout.ViewX, layout.ViewY, layout.ViewW, layout.ViewH, 1, theme.Border)

	if !canvas.Empty() {
		fb.FillRect(canvas.Min.X+3, canvas.Min.Y+3, canvas.Dx(), canvas.Dy(), theme.Shadow)
	}

	// Accent line at top of sidebar as visual anchor.
	accentH := int(3 * scale)
	if accentH < 1 {
		accentH = 1
	}
	fb.FillRect(layout.SidebarX, 0, layout.SidebarW, accentH, theme.Accent)

	fb.FillRect(0, layout.StatusBar, fb.W, layout.StatusH, theme.StatusBar)
	fb.StrokeRect(0, layout.StatusBar, fb.W, layout.StatusH, 1, theme.Border)

	return layout
}
