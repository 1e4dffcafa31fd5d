package meme

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type faceKey struct {
	family FontFamily
	size   int
}

// fontBank parses the embedded fonts once and caches one face per
// (family, size). Faces are not safe for concurrent use, so every caller
// holds mu while a face is in use.
type fontBank struct {
	once  sync.Once
	mu    sync.Mutex
	fonts map[FontFamily]*opentype.Font
	cache map[faceKey]font.Face
}

var fonts fontBank

func familyTTF(f FontFamily) []byte {
	switch f {
	case FontAnton:
		return gomedium.TTF
	case FontRoboto:
		return goregular.TTF
	default:
		return gobold.TTF
	}
}

func (b *fontBank) load() {
	b.fonts = make(map[FontFamily]*opentype.Font, len(FontFamilies))
	b.cache = map[faceKey]font.Face{}
	for _, f := range FontFamilies {
		parsed, err := opentype.Parse(familyTTF(f))
		if err != nil {
			logger().Warn("parse font failed", "family", f.String(), "err", err)
			continue
		}
		b.fonts[f] = parsed
	}
}

// face must be called with b.mu held.
func (b *fontBank) face(style Style) font.Face {
	b.once.Do(b.load)
	style = style.Normalized()
	key := faceKey{family: style.Family, size: style.FontSizePx}
	if f, ok := b.cache[key]; ok {
		return f
	}
	base := b.fonts[style.Family]
	if base == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(base, &opentype.FaceOptions{Size: float64(style.FontSizePx), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger().Warn("create face failed", "family", style.Family.String(), "size", style.FontSizePx, "err", err)
		return basicfont.Face7x13
	}
	logger().Debug("loaded face", "family", style.Family.String(), "size", style.FontSizePx)
	b.cache[key] = f
	return f
}

func (b *fontBank) withFace(style Style, fn func(font.Face)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b.face(style))
}

// MeasureLine returns the advance width in pixels of a single line of text
// set in style. It depends only on its arguments.
func MeasureLine(text string, style Style) float64 {
	if text == "" {
		return 0
	}
	var adv fixed.Int26_6
	fonts.withFace(style, func(face font.Face) {
		adv = font.MeasureString(face, text)
	})
	return float64(adv) / 64
}
