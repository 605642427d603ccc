// Package ebiten draws dialog frames onto an ebiten screen.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/render"
	gtext "github.com/gompdf/gomdialog/internal/text"
)

var _ = render.ImageSurface((*Surface)(nil))

// Surface draws onto the ebiten image set with SetTarget, normally the
// screen passed to Game.Draw.
type Surface struct {
	dst        *ebiten.Image
	face       *text.GoXFace
	metrics    gtext.FaceMetrics
	lineHeight float64

	src    image.Image
	srcImg *ebiten.Image
}

// NewSurface creates a surface drawing text with face.
func NewSurface(face font.Face) *Surface {
	if face == nil {
		face = gtext.Basic()
	}
	m := gtext.NewFaceMetrics(face)
	_, lh := m.MeasureCharacter(gtext.WidestRune)
	return &Surface{
		face:       text.NewGoXFace(face),
		metrics:    m,
		lineHeight: lh,
	}
}

// Metrics returns the metrics of the surface's face.
func (s *Surface) Metrics() gtext.Metrics {
	return s.metrics
}

// SetTarget sets the image subsequent ops draw onto.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) FillRect(r layout.Rect, c color.Color) {
	if s.dst == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *Surface) DrawText(str string, origin layout.Point, c color.Color) {
	if s.dst == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = s.lineHeight
	text.Draw(s.dst, str, s.face, op)
}

func (s *Surface) DrawImage(img image.Image, origin layout.Point) {
	if s.dst == nil {
		return
	}
	if s.srcImg == nil || s.src != img {
		if s.srcImg != nil {
			s.srcImg.Deallocate()
		}
		s.src = img
		s.srcImg = ebiten.NewImageFromImage(img)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	s.dst.DrawImage(s.srcImg, op)
}
