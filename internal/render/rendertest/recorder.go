// Package rendertest provides surfaces that record draw ops for tests.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/render"
)

var (
	_ = render.Surface((*Recorder)(nil))
	_ = render.ImageSurface((*ImageRecorder)(nil))
)

// Recorder is a Surface that records each op as a string.
type Recorder struct {
	ops []string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) FillRect(rect layout.Rect, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %s %s", rectString(rect), ColorString(c)))
}

func (r *Recorder) DrawText(text string, origin layout.Point, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("text %q at %s %s", text, pointString(origin), ColorString(c)))
}

// DrawOps returns the recorded ops.
func (r *Recorder) DrawOps() []string { return r.ops }

// Clear forgets the recorded ops.
func (r *Recorder) Clear() { r.ops = nil }

// ImageRecorder is a Recorder that also supports images.
type ImageRecorder struct {
	Recorder
}

// NewImageRecorder returns an empty ImageRecorder.
func NewImageRecorder() *ImageRecorder {
	return &ImageRecorder{}
}

func (r *ImageRecorder) DrawImage(img image.Image, origin layout.Point) {
	b := img.Bounds()
	r.ops = append(r.ops, fmt.Sprintf("image %dx%d at %s", b.Dx(), b.Dy(), pointString(origin)))
}

// ColorString formats c as #rrggbbaa in non-premultiplied form.
func ColorString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func rectString(r layout.Rect) string {
	return fmt.Sprintf("%g,%g %gx%g", r.X, r.Y, r.Width, r.Height)
}

func pointString(p layout.Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
