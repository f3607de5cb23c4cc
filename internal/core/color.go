package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility; the window host maps
// the same values to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette maps each Color to the RGBA used by pixel hosts. ColorDefault is
// the dark panel tone.
var palette = [...]color.RGBA{
	ColorDefault:       {R: 24, G: 26, B: 36, A: 230},
	ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 255, G: 140, B: 0, A: 255},
	ColorGray:          {R: 118, G: 118, B: 118, A: 255},
}

// ToRGBA returns the pixel color for c. Unknown values map to ColorDefault.
func (c Color) ToRGBA() color.RGBA {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}
