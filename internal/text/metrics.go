package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// WidestRune is measured to size a character cell. W is the widest letter
// in almost every font.
const WidestRune = 'W'

// Metrics measures characters of the font a dialog box is drawn with.
// Line and page budgets assume every character is as wide as WidestRune.
type Metrics interface {
	MeasureCharacter(r rune) (width, height float64)
}

// CharacterSize returns the cell size used for wrapping.
func CharacterSize(m Metrics) (width, height float64) {
	if m == nil {
		return 0, 0
	}
	return m.MeasureCharacter(WidestRune)
}

// FixedMetrics is a monospaced cell of constant size.
type FixedMetrics struct {
	Width  float64
	Height float64
}

func (m FixedMetrics) MeasureCharacter(rune) (float64, float64) {
	return m.Width, m.Height
}

// FaceMetrics measures characters with a font.Face: the glyph advance for
// width and the face's line height for height.
type FaceMetrics struct {
	Face font.Face
}

// NewFaceMetrics wraps face.
func NewFaceMetrics(face font.Face) FaceMetrics {
	return FaceMetrics{Face: face}
}

func (m FaceMetrics) MeasureCharacter(r rune) (float64, float64) {
	if m.Face == nil {
		return 0, 0
	}
	adv, ok := m.Face.GlyphAdvance(r)
	if !ok {
		adv = font.MeasureString(m.Face, string(r))
	}
	return toFloat(adv), toFloat(m.Face.Metrics().Height)
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) float64 {
	if face == nil {
		return 0
	}
	return toFloat(face.Metrics().Ascent)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
