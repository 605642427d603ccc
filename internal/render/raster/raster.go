// Package raster draws dialog frames into images with gg and saves them as
// PNG snapshots.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/render"
	"github.com/gompdf/gomdialog/internal/text"
)

var _ = render.ImageSurface((*Surface)(nil))

// Surface is an in-memory image surface.
type Surface struct {
	dc         *gg.Context
	face       font.Face
	lineHeight float64
	ascent     float64
}

// NewSurface creates a transparent width x height surface drawing text with
// face. A nil face selects the 7x13 bitmap face.
func NewSurface(width, height int, face font.Face) *Surface {
	if face == nil {
		face = text.Basic()
	}
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	_, lh := text.NewFaceMetrics(face).MeasureCharacter(text.WidestRune)
	return &Surface{
		dc:         dc,
		face:       face,
		lineHeight: lh,
		ascent:     text.Ascent(face),
	}
}

// Metrics returns the metrics of the surface's face.
func (s *Surface) Metrics() text.Metrics {
	return text.NewFaceMetrics(s.face)
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) FillRect(r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.Fill()
}

func (s *Surface) DrawText(str string, origin layout.Point, c color.Color) {
	s.dc.SetColor(c)
	for i, line := range strings.Split(str, "\n") {
		s.dc.DrawString(line, origin.X, origin.Y+s.ascent+float64(i)*s.lineHeight)
	}
}

func (s *Surface) DrawImage(img image.Image, origin layout.Point) {
	s.dc.DrawImage(img, int(math.Round(origin.X)), int(math.Round(origin.Y)))
}

// Image returns the surface contents.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// EncodePNG writes the surface as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
