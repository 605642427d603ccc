package text

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultDPI treats one point as one pixel.
const DefaultDPI = 72

// NewFace parses TrueType data and returns a face of the given point size.
func NewFace(ttf []byte, size, dpi float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %.1f", size)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}

// GoMono returns the embedded Go Mono face at size.
func GoMono(size float64) (font.Face, error) {
	return NewFace(gomono.TTF, size, DefaultDPI)
}

// Basic returns the 7x13 bitmap face, useful where no TrueType font is
// available.
func Basic() font.Face {
	return basicfont.Face7x13
}
