package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"memeforge/internal/config"
	"memeforge/internal/editor"
	"memeforge/internal/export"
	"memeforge/internal/platform"
	"memeforge/internal/render"
	"memeforge/internal/ui"
	"memeforge/pkg/meme"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
	imgclip "golang.design/x/clipboard"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && y >= r.y && x < r.x+r.w && y < r.y+r.h
}

type actionButton struct {
	id       string
	label    string
	r        rect
	disabled bool
}

type colorSwatch struct {
	value color.RGBA
	r     rect
}

type label struct {
	text string
	x    int
	y    int
}

type field int

const (
	fieldNone field = iota
	fieldTop
	fieldBottom
)

const fontStep = 4

var windowConfig = platform.WindowConfig{
	Title:       "memeforge",
	WidthPx:     1280,
	HeightPx:    800,
	MinWidthPx:  1000,
	MinHeightPx: 700,
}

type App struct {
	cfg     config.Config
	theme   ui.Theme
	session *editor.Session
	export  *export.Controller
	events  platform.Queue
	ctx     context.Context

	frameBuffer   *render.FrameBuffer
	chrome        *ebiten.Image
	canvasImg     *ebiten.Image
	canvasVersion uint64
	resultImg     *ebiten.Image
	resultFor     *export.Result

	fonts     fontBank
	layout    ui.Layout
	buttons   []actionButton
	swatches  []colorSwatch
	palette   []color.RGBA
	labels    []label
	topRect   rect
	botRect   rect
	canvas    rect
	result    rect
	focus     field
	status    string
	frameTick uint64

	lastCursor   image.Point
	imageClipOK  bool
	imageClipErr error
	imageClipSet bool

	screenW int
	screenH int
}

func New(cfg config.Config) *App {
	a := &App{
		cfg:         cfg,
		theme:       ui.DefaultTheme(),
		session:     editor.NewSession(cfg.Bounds),
		export:      export.NewController(meme.NewClient(cfg.APIBase, cfg.Timeout)),
		ctx:         context.Background(),
		fonts:       newFontBank(),
		frameBuffer: render.NewFrameBuffer(windowConfig.WidthPx, windowConfig.HeightPx),
		buttons:     make([]actionButton, 0, 16),
		swatches:    make([]colorSwatch, 0, 8),
		labels:      make([]label, 0, 8),
		palette: []color.RGBA{
			{0xFF, 0xFF, 0xFF, 0xFF}, {0x00, 0x00, 0x00, 0xFF}, {0xFF, 0xD5, 0x4F, 0xFF}, {0xF4, 0x3F, 0x5E, 0xFF},
			{0x4A, 0x90, 0xE2, 0xFF}, {0x11, 0x7A, 0x37, 0xFF}, {0xF9, 0x73, 0x16, 0xFF}, {0x7A, 0x2D, 0xB8, 0xFF},
		},
		status:  "Pick an image or a sample to start",
		screenW: windowConfig.WidthPx,
		screenH: windowConfig.HeightPx,
	}
	if cfg.ImagePath != "" {
		if err := a.loadImageFile(cfg.ImagePath); err != nil {
			a.status = "Open failed: " + err.Error()
		}
	}
	a.relayout()
	return a
}

func (a *App) Run() error {
	ebiten.SetWindowTitle(windowConfig.Title)
	ebiten.SetWindowSize(windowConfig.WidthPx, windowConfig.HeightPx)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(windowConfig.MinWidthPx, windowConfig.MinHeightPx, -1, -1)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.frameTick++
	if a.export.Poll() {
		a.status = a.export.Status
	}
	a.relayout()
	a.collectInput()
	for _, ev := range a.events.Drain() {
		if ev.Type == platform.EventClose {
			return ebiten.Termination
		}
		a.handleEvent(ev)
	}
	return nil
}

// collectInput translates this frame's ebiten input into platform events.
func (a *App) collectInput() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.events.Push(platform.Event{Type: platform.EventPointerDown, X: x, Y: y})
	}
	if cur := image.Pt(x, y); cur != a.lastCursor {
		a.lastCursor = cur
		a.events.Push(platform.Event{Type: platform.EventPointerMove, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.events.Push(platform.Event{Type: platform.EventPointerUp, X: x, Y: y})
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.events.Push(platform.Event{Type: platform.EventClose})
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		a.events.Push(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyPaste})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.events.Push(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyBackspace})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		a.events.Push(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEnter})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.events.Push(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEscape})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.events.Push(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyTab})
	}
	if ctrl {
		return
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x20 || !utf8.ValidRune(r) {
			continue
		}
		a.events.Push(platform.Event{Type: platform.EventTextInput, Rune: r})
	}
}

func (a *App) handleEvent(ev platform.Event) {
	switch ev.Type {
	case platform.EventPointerDown:
		a.handleClick(ev.X, ev.Y)
	case platform.EventPointerMove:
		a.session.PointerMove(ev.Point())
	case platform.EventPointerUp:
		a.session.PointerUp()
	case platform.EventKeyDown:
		a.handleKey(ev.Key)
	case platform.EventTextInput:
		a.editFocused(func(s string) string { return s + string(ev.Rune) })
	}
}

func (a *App) handleClick(x, y int) {
	for _, btn := range a.buttons {
		if btn.r.contains(x, y) {
			if !btn.disabled {
				a.invokeAction(btn.id)
			}
			return
		}
	}
	for _, sw := range a.swatches {
		if sw.r.contains(x, y) {
			a.session.SetColor(sw.value)
			a.status = "Text color " + (meme.Style{Color: sw.value}).ColorHex()
			return
		}
	}
	switch {
	case a.topRect.contains(x, y):
		a.focus = fieldTop
		return
	case a.botRect.contains(x, y):
		a.focus = fieldBottom
		return
	}
	a.focus = fieldNone
	if a.canvas.contains(x, y) {
		if id := a.session.PointerDown(image.Pt(x, y)); id != editor.LayerNone {
			a.status = "Dragging " + id.String() + " text"
		}
	}
}

func (a *App) handleKey(k platform.Key) {
	switch k {
	case platform.KeyEscape:
		a.focus = fieldNone
	case platform.KeyTab:
		switch a.focus {
		case fieldTop:
			a.focus = fieldBottom
		default:
			a.focus = fieldTop
		}
	case platform.KeyBackspace:
		a.editFocused(func(s string) string {
			if s == "" {
				return s
			}
			_, size := utf8.DecodeLastRuneInString(s)
			if size <= 0 {
				size = 1
			}
			return s[:len(s)-size]
		})
	case platform.KeyEnter:
		a.editFocused(func(s string) string { return s + "\n" })
	case platform.KeyPaste:
		if a.focus == fieldNone {
			return
		}
		paste, err := clipboard.ReadAll()
		if err != nil {
			a.status = "Paste failed: " + err.Error()
			return
		}
		a.editFocused(func(s string) string { return s + paste })
	}
}

func (a *App) editFocused(edit func(string) string) {
	var id editor.LayerID
	switch a.focus {
	case fieldTop:
		id = editor.LayerTop
	case fieldBottom:
		id = editor.LayerBottom
	default:
		return
	}
	a.session.SetText(id, edit(a.session.Layer(id).Text))
}

func (a *App) invokeAction(id string) {
	switch id {
	case "open":
		if err := a.openImageDialog(); err != nil {
			a.status = "Open failed: " + err.Error()
		}
	case "sample_1", "sample_2", "sample_3":
		n := int(id[len(id)-1] - '0')
		if err := a.session.LoadImage(meme.Sample(n)); err != nil {
			a.status = "Sample failed: " + err.Error()
			return
		}
		a.status = fmt.Sprintf("Sample %d loaded", n)
	case "font_family":
		a.session.SetFontFamily(a.session.Style.Family.Next())
		a.status = "Font " + a.session.Style.Family.String()
	case "font_down":
		a.session.SetFontSize(a.session.Style.FontSizePx - fontStep)
		a.status = fmt.Sprintf("Font size %dpx", a.session.Style.FontSizePx)
	case "font_up":
		a.session.SetFontSize(a.session.Style.FontSizePx + fontStep)
		a.status = fmt.Sprintf("Font size %dpx", a.session.Style.FontSizePx)
	case "reset":
		a.session.ResetPositions()
		a.status = "Positions reset"
	case "save_preview":
		if err := a.savePreviewDialog(); err != nil {
			a.status = "Save failed: " + err.Error()
		}
	case "copy_preview":
		if err := a.copyPreview(); err != nil {
			a.status = "Copy failed: " + err.Error()
		}
	case "create":
		if a.export.Submit(a.ctx, a.session.Frame(), a.session.Top, a.session.Bottom, a.session.Style) {
			a.resultImg, a.resultFor = nil, nil
		}
		a.status = a.export.Status
	case "save_result":
		if err := a.saveResultDialog(); err != nil {
			a.status = "Save failed: " + err.Error()
		}
	case "copy_api":
		if err := clipboard.WriteAll(a.cfg.APIBase); err != nil {
			a.status = "Copy failed: " + err.Error()
			return
		}
		a.status = "Copied " + a.cfg.APIBase
	}
}

func (a *App) loadImageFile(path string) error {
	img, err := meme.LoadImageFile(path)
	if err != nil {
		return err
	}
	if err := a.session.LoadImage(img); err != nil {
		return err
	}
	a.status = fmt.Sprintf("Opened %s (%dx%d, scale %.0f%%)", filepath.Base(path), a.session.Canvas.Width, a.session.Canvas.Height, a.session.Canvas.Scale*100)
	return nil
}

func (a *App) openImageDialog() error {
	path, err := dialog.File().Title("Open image").Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "webp", "tif", "tiff").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New("no file selected")
	}
	return a.loadImageFile(filepath.Clean(path))
}

func (a *App) savePreviewDialog() error {
	path, err := dialog.File().Title("Save preview").Filter("PNG image", "png").SetStartFile(meme.PreviewFilename).Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := a.export.ExportLocal(a.session.Frame(), withPNGExt(path)); err != nil {
		return err
	}
	a.status = a.export.Status
	return nil
}

func (a *App) saveResultDialog() error {
	path, err := dialog.File().Title("Save meme").Filter("PNG image", "png").SetStartFile(meme.ResultFilename).Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := a.export.SaveResult(withPNGExt(path)); err != nil {
		return err
	}
	a.status = a.export.Status
	return nil
}

func (a *App) copyPreview() error {
	if !a.imageClipSet {
		a.imageClipSet = true
		a.imageClipErr = imgclip.Init()
		a.imageClipOK = a.imageClipErr == nil
	}
	if !a.imageClipOK {
		return fmt.Errorf("image clipboard unavailable: %w", a.imageClipErr)
	}
	data, err := meme.EncodePNG(a.session.Frame())
	if err != nil {
		return err
	}
	imgclip.Write(imgclip.FmtImage, data)
	a.status = "Preview copied to clipboard"
	return nil
}

func withPNGExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}

// relayout recomputes every hit rect for the current window size. It runs
// in Update so pointer events are always tested against fresh geometry.
func (a *App) relayout() {
	a.layout = ui.ComputeLayout(a.screenW, a.screenH, a.theme, 1)
	origin := a.layout.CanvasOrigin(a.session.Canvas.Width, a.session.Canvas.Height)
	a.session.Origin = origin
	a.canvas = rect{x: origin.X, y: origin.Y, w: a.session.Canvas.Width, h: a.session.Canvas.Height}
	a.layoutSidebar()
}

func (a *App) layoutSidebar() {
	a.buttons = a.buttons[:0]
	a.swatches = a.swatches[:0]
	a.labels = a.labels[:0]

	l := a.layout
	m := l.Margin
	x := l.SidebarX + m
	w := l.SidebarW - 2*m
	rowH := l.RowH
	gap := 6
	y := m

	row := func(ids, labels []string, disabled map[string]bool) {
		n := len(ids)
		bw := (w - gap*(n-1)) / n
		for i := range ids {
			r := rect{x: x + i*(bw+gap), y: y, w: bw, h: rowH}
			a.buttons = append(a.buttons, actionButton{id: ids[i], label: labels[i], r: r, disabled: disabled[ids[i]]})
		}
		y += rowH + gap
	}
	caption := func(s string) {
		a.labels = append(a.labels, label{text: s, x: x, y: y + rowH*2/3})
		y += rowH * 3 / 4
	}

	row([]string{"open"}, []string{"Open image..."}, nil)
	row([]string{"sample_1", "sample_2", "sample_3"}, []string{"Sample 1", "Sample 2", "Sample 3"}, nil)

	caption("Top text")
	a.topRect = rect{x: x, y: y, w: w, h: rowH * 2}
	y += rowH*2 + gap
	caption("Bottom text")
	a.botRect = rect{x: x, y: y, w: w, h: rowH * 2}
	y += rowH*2 + gap

	style := a.session.Style
	row([]string{"font_family", "font_down", "font_up"}, []string{"Font: " + style.Family.String(), "A-", "A+"}, nil)
	a.labels = append(a.labels, label{text: fmt.Sprintf("%dpx (%d-%d)", style.FontSizePx, meme.MinFontSize, meme.MaxFontSize), x: x, y: y + rowH*2/3})
	y += rowH*3/4 + gap/2

	size := (w - gap*(len(a.palette)-1)) / len(a.palette)
	for i, c := range a.palette {
		a.swatches = append(a.swatches, colorSwatch{value: c, r: rect{x: x + i*(size+gap), y: y, w: size, h: size}})
	}
	y += size + gap

	busy := a.export.Busy()
	noResult := a.export.Result == nil
	row([]string{"reset", "copy_api"}, []string{"Reset positions", "Copy API URL"}, nil)
	row([]string{"save_preview", "copy_preview"}, []string{"Save preview...", "Copy preview"}, nil)
	row([]string{"create"}, []string{"Create on server"}, map[string]bool{"create": busy})
	row([]string{"save_result"}, []string{"Save result..."}, map[string]bool{"save_result": noResult || busy})

	a.result = rect{x: x, y: y, w: w, h: l.StatusBar - m - y}
	if a.result.h < 0 {
		a.result.h = 0
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if a.frameBuffer.Resize(w, h) || a.chrome == nil {
		a.chrome = ebiten.NewImage(w, h)
	}

	canvasBounds := image.Rect(a.canvas.x, a.canvas.y, a.canvas.x+a.canvas.w, a.canvas.y+a.canvas.h)
	ui.DrawShell(a.frameBuffer, a.theme, 1, canvasBounds)
	a.drawSidebar()
	a.chrome.WritePixels(a.frameBuffer.Pixels)
	screen.DrawImage(a.chrome, nil)

	a.drawCanvas(screen)
	a.drawGrabOutline(screen)
	a.drawResult(screen)

	face := a.fonts.face(11)
	a.drawLabels(screen, face)
	a.drawFields(screen, face)

	statusFace := a.fonts.face(10)
	text.Draw(screen, a.status, statusFace, 12, h-10, color.RGBA{R: 42, G: 56, B: 80, A: 255})
	apiLabel := "API " + a.cfg.APIBase
	text.Draw(screen, apiLabel, statusFace, w-12-measureString(statusFace, apiLabel), h-10, color.RGBA{R: 96, G: 108, B: 128, A: 255})
}

func (a *App) drawSidebar() {
	mx, my := ebiten.CursorPosition()
	for _, btn := range a.buttons {
		bg := a.theme.Button
		switch {
		case btn.disabled:
			bg = a.theme.ButtonDisabled
		case btn.r.contains(mx, my):
			bg = a.theme.ButtonHover
		}
		a.frameBuffer.FillRect(btn.r.x, btn.r.y, btn.r.w, btn.r.h, bg)
		a.frameBuffer.StrokeRect(btn.r.x, btn.r.y, btn.r.w, btn.r.h, 1, a.theme.Border)
	}
	for _, f := range []struct {
		r       rect
		focused bool
	}{{a.topRect, a.focus == fieldTop}, {a.botRect, a.focus == fieldBottom}} {
		bg := a.theme.Field
		border := a.theme.Border
		if f.focused {
			bg = a.theme.FieldFocus
			border = a.theme.Accent
		}
		a.frameBuffer.FillRect(f.r.x, f.r.y, f.r.w, f.r.h, bg)
		a.frameBuffer.StrokeRect(f.r.x, f.r.y, f.r.w, f.r.h, 1, border)
	}
	for _, sw := range a.swatches {
		a.frameBuffer.FillRect(sw.r.x, sw.r.y, sw.r.w, sw.r.h, sw.value)
		line := 1
		if sw.value == a.session.Style.Color {
			line = 3
		}
		a.frameBuffer.StrokeRect(sw.r.x, sw.r.y, sw.r.w, sw.r.h, line, a.theme.Accent)
	}
	if a.result.h > 0 {
		a.frameBuffer.StrokeRect(a.result.x, a.result.y, a.result.w, a.result.h, 1, a.theme.Border)
	}
}

func (a *App) drawCanvas(screen *ebiten.Image) {
	view := a.session.View()
	b := view.Bounds()
	if a.canvasImg == nil || a.canvasImg.Bounds().Dx() != b.Dx() || a.canvasImg.Bounds().Dy() != b.Dy() {
		a.canvasImg = ebiten.NewImage(b.Dx(), b.Dy())
		a.canvasVersion = 0
	}
	if v := a.session.Version(); v != a.canvasVersion {
		a.canvasImg.WritePixels(view.Pix)
		a.canvasVersion = v
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(a.canvas.x), float64(a.canvas.y))
	screen.DrawImage(a.canvasImg, op)
}

// drawGrabOutline marks the grabbed layer on screen only; the canvas pixels
// stay untouched so exports match the render.
func (a *App) drawGrabOutline(screen *ebiten.Image) {
	box, ok := a.session.LayerBox(a.session.Grabbed())
	if !ok {
		return
	}
	x0 := float64(a.canvas.x) + box.X
	y0 := float64(a.canvas.y) + box.Y
	x1, y1 := x0+box.W, y0+box.H
	c := a.theme.GrabOutline
	ebitenutil.DrawLine(screen, x0, y0, x1, y0, c)
	ebitenutil.DrawLine(screen, x0, y1, x1, y1, c)
	ebitenutil.DrawLine(screen, x0, y0, x0, y1, c)
	ebitenutil.DrawLine(screen, x1, y0, x1, y1, c)
}

func (a *App) drawResult(screen *ebiten.Image) {
	res := a.export.Result
	if res == nil || res.Image == nil || a.result.w <= 8 || a.result.h <= 8 {
		return
	}
	if a.resultFor != res || a.resultImg == nil {
		a.resultImg = ebiten.NewImageFromImage(thumbnail(res.Image, a.result.w-8, a.result.h-8))
		a.resultFor = res
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(a.result.x+4), float64(a.result.y+4))
	screen.DrawImage(a.resultImg, op)
}

// thumbnail scales src down to fit maxW x maxH using the same fit rule as
// the canvas.
func thumbnail(src image.Image, maxW, maxH int) image.Image {
	sb := src.Bounds()
	fit, err := meme.Fit(sb.Dx(), sb.Dy(), meme.Bounds{MaxWidth: maxW, MaxHeight: maxH})
	if err != nil {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fit.Width, fit.Height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

func (a *App) drawLabels(screen *ebiten.Image, face font.Face) {
	ascent := face.Metrics().Ascent.Round()
	descent := face.Metrics().Descent.Round()
	textHeight := ascent + descent
	for _, btn := range a.buttons {
		labelColor := a.theme.Label
		if btn.disabled {
			labelColor = color.RGBA{R: 150, G: 156, B: 166, A: 255}
		}
		tw := measureString(face, btn.label)
		x := btn.r.x + (btn.r.w-tw)/2
		baseline := btn.r.y + (btn.r.h+textHeight)/2 - descent
		text.Draw(screen, btn.label, face, x, baseline, labelColor)
	}
	for _, l := range a.labels {
		text.Draw(screen, l.text, face, l.x, l.y, a.theme.Label)
	}
	if a.export.Busy() {
		text.Draw(screen, "Rendering on server...", face, a.result.x+6, a.result.y+textHeight+4, a.theme.Label)
	}
}

func (a *App) drawFields(screen *ebiten.Image, face font.Face) {
	lineH := face.Metrics().Height.Round()
	for _, f := range []struct {
		r  rect
		id editor.LayerID
		fo field
	}{{a.topRect, editor.LayerTop, fieldTop}, {a.botRect, editor.LayerBottom, fieldBottom}} {
		lines := strings.Split(a.session.Layer(f.id).Text, "\n")
		if a.focus == f.fo && (a.frameTick/30)%2 == 0 {
			lines[len(lines)-1] += "|"
		}
		// Show the tail when the text is taller than the field.
		maxLines := (f.r.h - 6) / lineH
		if maxLines < 1 {
			maxLines = 1
		}
		if len(lines) > maxLines {
			lines = lines[len(lines)-maxLines:]
		}
		y := f.r.y + 4 + face.Metrics().Ascent.Round()
		for _, line := range lines {
			text.Draw(screen, line, face, f.r.x+6, y, a.theme.Label)
			y += lineH
		}
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < windowConfig.MinWidthPx {
		outsideWidth = windowConfig.MinWidthPx
	}
	if outsideHeight < windowConfig.MinHeightPx {
		outsideHeight = windowConfig.MinHeightPx
	}
	a.screenW = outsideWidth
	a.screenH = outsideHeight
	return outsideWidth, outsideHeight
}
