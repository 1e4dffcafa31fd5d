package ui

import "image/color"

type Theme struct {
	AppBackground  color.RGBA
	Sidebar        color.RGBA
	Viewport       color.RGBA
	Border         color.RGBA
	StatusBar      color.RGBA
	Accent         color.RGBA
	Shadow         color.RGBA
	Field          color.RGBA
	FieldFocus     color.RGBA
	Button         color.RGBA
	ButtonHover    color.RGBA
	ButtonDisabled color.RGBA
	Label          color.RGBA
	GrabOutline    color.RGBA
	SidebarWidthDp int
	StatusHeightDp int
	MarginDp       int
	RowHeightDp    int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground:  color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		Sidebar:        color.RGBA{0xF7, 0xF9, 0xFC, 0xFF},
		Viewport:       color.RGBA{0xE2, 0xE7, 0xEF, 0xFF},
		Border:         color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		StatusBar:      color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		Accent:         color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		Shadow:         color.RGBA{0xC8, 0xCF, 0xDB, 0xFF},
		Field:          color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		FieldFocus:     color.RGBA{0xE8, 0xF0, 0xFD, 0xFF},
		Button:         color.RGBA{0xF1, 0xF5, 0xFB, 0xFF},
		ButtonHover:    color.RGBA{0xDF, 0xEC, 0xFC, 0xFF},
		ButtonDisabled: color.RGBA{0xE4, 0xE7, 0xEB, 0xFF},
		Label:          color.RGBA{0x2C, 0x3A, 0x52, 0xFF},
		GrabOutline:    color.RGBA{0x2B, 0x8A, 0xF0, 0xFF},
		SidebarWidthDp: 300,
		StatusHeightDp: 28,
		MarginDp:       16,
		RowHeightDp:    30,
	}
}
