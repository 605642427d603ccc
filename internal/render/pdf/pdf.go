// Package pdf writes dialog box frames to a storyboard PDF, one frame per
// page.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/logger"
	"github.com/gompdf/gomdialog/internal/render"
)

// Renderer handles rendering to PDF
type Renderer struct {
	// FontSize is the Courier size in points; one point is one pixel.
	FontSize float64
	log      *logger.Logger
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// Width and Height are the page size, normally the viewport.
	Width  float64
	Height float64
	// Background fills each page before the frame is drawn.
	Background color.Color
}

// NewRenderer creates a new PDF renderer
func NewRenderer(log *logger.Logger) *Renderer {
	if log == nil {
		log = logger.Discard()
	}
	return &Renderer{FontSize: 14, log: log}
}

// Metrics returns the metrics frames must be laid out with.
func (r *Renderer) Metrics() CourierMetrics {
	return CourierMetrics{Size: r.FontSize}
}

// Render writes frames to w.
func (r *Renderer) Render(frames []render.Frame, w io.Writer, options RenderOptions) error {
	if options.Width <= 0 || options.Height <= 0 {
		return fmt.Errorf("invalid page size %.0fx%.0f", options.Width, options.Height)
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: options.Width, Ht: options.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	pdf.SetFont("Courier", "", r.FontSize)

	s := &surface{
		pdf:        pdf,
		size:       r.FontSize,
		translate:  pdf.UnicodeTranslatorFromDescriptor(""),
		lineHeight: r.FontSize * courierLineHeight,
	}

	r.log.Debug("rendering %d frames", len(frames))
	for i, frame := range frames {
		pdf.AddPage()
		if options.Background != nil {
			s.FillRect(layout.Rect{Width: options.Width, Height: options.Height}, options.Background)
		}
		render.Draw(s, frame)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to render frame %d: %w", i, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// RenderFile writes frames to a PDF file, creating its directory.
func (r *Renderer) RenderFile(frames []render.Frame, outputPath string, options RenderOptions) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := r.Render(frames, f, options); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// surface draws onto the current page of a PDF.
type surface struct {
	pdf        *fpdf.Fpdf
	size       float64
	lineHeight float64
	translate  func(string) string
	images     int
}

var _ = render.ImageSurface((*surface)(nil))

func (s *surface) FillRect(r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	n := toNRGBA(c)
	if n.A == 0 {
		return
	}
	s.pdf.SetAlpha(float64(n.A)/255, "Normal")
	s.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	s.pdf.Rect(r.X, r.Y, r.Width, r.Height, "F")
	s.pdf.SetAlpha(1, "Normal")
}

// DrawText places each line on its baseline. Courier's ascent is about
// 0.8 of its size.
func (s *surface) DrawText(text string, origin layout.Point, c color.Color) {
	n := toNRGBA(c)
	s.pdf.SetAlpha(float64(n.A)/255, "Normal")
	s.pdf.SetTextColor(int(n.R), int(n.G), int(n.B))
	for i, line := range strings.Split(text, "\n") {
		s.pdf.Text(origin.X, origin.Y+s.size*0.8+float64(i)*s.lineHeight, s.translate(line))
	}
	s.pdf.SetAlpha(1, "Normal")
}

func (s *surface) DrawImage(img image.Image, origin layout.Point) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.pdf.SetError(fmt.Errorf("failed to encode indicator image: %w", err))
		return
	}
	s.images++
	name := fmt.Sprintf("indicator-%d", s.images)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opts, &buf)

	b := img.Bounds()
	s.pdf.ImageOptions(name, origin.X, origin.Y, float64(b.Dx()), float64(b.Dy()), false, opts, 0, "")
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
