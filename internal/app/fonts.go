package app

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
)

type fontBank struct {
	regular *opentype.Font
	cache   map[int]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[int]font.Face{}}
	f, err := opentype.Parse(gomedium.TTF)
	if err != nil {
		return bank
	}
	bank.regular = f
	return bank
}

// face returns a cached UI face for the given point size.
func (b *fontBank) face(size int) font.Face {
	if f, ok := b.cache[size]; ok {
		return f
	}
	if b.regular == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(b.regular, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[size] = face
	return face
}

// measureString returns the pixel width of s, rounded from 26.6 fixed point.
func measureString(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	px := (int(font.MeasureString(face, s)) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}
