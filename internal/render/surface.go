// Package render draws dialog box frames onto pluggable surfaces.
package render

import (
	"image"
	"image/color"

	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/style"
)

// DefaultIndicatorGlyph marks that another page follows.
const DefaultIndicatorGlyph = ">"

// Surface is a render target.
type Surface interface {
	FillRect(r layout.Rect, c color.Color)
	// DrawText draws text with its first line's top-left corner at origin.
	// Lines are separated by "\n".
	DrawText(text string, origin layout.Point, c color.Color)
}

// ImageSurface is a Surface that can also draw images.
type ImageSurface interface {
	Surface
	DrawImage(img image.Image, origin layout.Point)
}

// Frame is everything needed to draw one dialog box frame.
type Frame struct {
	Geometry       layout.Geometry
	Style          style.Style
	Text           string
	Indicator      bool
	IndicatorGlyph string
	IndicatorImage image.Image
	CharWidth      float64
	CharHeight     float64
}

// Draw issues the draw ops of f: the top, right, bottom and left border
// bars, the background, the page text and, when visible, the indicator.
// An empty page draws no text.
func Draw(s Surface, f Frame) {
	for _, r := range f.Geometry.Borders() {
		s.FillRect(r, f.Style.Border)
	}
	s.FillRect(f.Geometry.Fill(), f.Style.Fill)

	if f.Text != "" {
		s.DrawText(f.Text, f.Geometry.TextOrigin(), f.Style.Text)
	}

	if !f.Indicator {
		return
	}
	if is, ok := s.(ImageSurface); ok && f.IndicatorImage != nil {
		b := f.IndicatorImage.Bounds()
		is.DrawImage(f.IndicatorImage, f.Geometry.IndicatorOrigin(float64(b.Dx()), float64(b.Dy())))
		return
	}
	glyph := f.IndicatorGlyph
	if glyph == "" {
		glyph = DefaultIndicatorGlyph
	}
	s.DrawText(glyph, f.Geometry.IndicatorOrigin(f.CharWidth, f.CharHeight), f.Style.Indicator)
}
