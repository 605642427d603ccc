package api

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"

	"github.com/gompdf/gomdialog/internal/logger"
	"github.com/gompdf/gomdialog/internal/parser/css"
	"github.com/gompdf/gomdialog/internal/parser/html"
	"github.com/gompdf/gomdialog/internal/render"
	"github.com/gompdf/gomdialog/internal/render/icon"
	"github.com/gompdf/gomdialog/internal/render/pdf"
	"github.com/gompdf/gomdialog/internal/render/raster"
	"github.com/gompdf/gomdialog/internal/res"
	"github.com/gompdf/gomdialog/internal/style"
	"github.com/gompdf/gomdialog/internal/text"
)

// Storyboard is a sequence of dialogs exported page by page, one image or
// PDF page per dialog page.
type Storyboard struct {
	options Options
	base    []Option
	entries []entry
	log     *logger.Logger
}

type entry struct {
	text string
	opts []Option
}

// NewStoryboard creates an empty storyboard. opts apply to every dialog.
func NewStoryboard(opts ...Option) *Storyboard {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Storyboard{
		options: options,
		base:    opts,
		log:     logger.ForDebug(options.Debug, options.LogOutput),
	}
}

// Add appends a dialog. opts apply on top of the storyboard's options.
func (s *Storyboard) Add(text string, opts ...Option) {
	s.entries = append(s.entries, entry{text: text, opts: opts})
}

// Len returns the number of dialogs.
func (s *Storyboard) Len() int {
	return len(s.entries)
}

// Frames lays every dialog out with m and returns their pages as frames.
func (s *Storyboard) Frames(m Metrics) ([]Frame, error) {
	var frames []Frame
	for i, e := range s.entries {
		opts := append(append([]Option(nil), s.base...), e.opts...)
		box := New(m, opts...)
		if err := box.SetText(e.text); err != nil {
			return nil, fmt.Errorf("failed to lay out dialog %d: %w", i+1, err)
		}
		frames = append(frames, box.Frames()...)
	}
	return frames, nil
}

// WritePDF writes the storyboard as a PDF set in Courier at fontSize.
func (s *Storyboard) WritePDF(w io.Writer, fontSize float64) error {
	r := pdf.NewRenderer(s.log)
	if fontSize > 0 {
		r.FontSize = fontSize
	}
	frames, err := s.Frames(r.Metrics())
	if err != nil {
		return err
	}
	return r.Render(frames, w, s.renderOptions())
}

// WritePDFFile writes the storyboard to a PDF file.
func (s *Storyboard) WritePDFFile(path string, fontSize float64) error {
	r := pdf.NewRenderer(s.log)
	if fontSize > 0 {
		r.FontSize = fontSize
	}
	frames, err := s.Frames(r.Metrics())
	if err != nil {
		return err
	}
	return r.RenderFile(frames, path, s.renderOptions())
}

func (s *Storyboard) renderOptions() pdf.RenderOptions {
	return pdf.RenderOptions{
		Title:      s.options.Title,
		Author:     s.options.Author,
		Subject:    s.options.Subject,
		Creator:    "gomdialog",
		Producer:   "gomdialog",
		Width:      s.options.ViewportWidth,
		Height:     s.options.ViewportHeight,
		Background: s.options.Background,
	}
}

// WritePNGs writes one PNG per page into dir, named 001.png, 002.png and
// so on, drawing text with face (nil selects a bitmap face). It returns
// the written paths.
func (s *Storyboard) WritePNGs(dir string, face font.Face) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	w := int(s.options.ViewportWidth)
	h := int(s.options.ViewportHeight)
	frames, err := s.Frames(raster.NewSurface(1, 1, face).Metrics())
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(frames))
	for i, f := range frames {
		surface := raster.NewSurface(w, h, face)
		if s.options.Background != nil {
			surface.Clear(s.options.Background)
		}
		render.Draw(surface, f)

		path := filepath.Join(dir, fmt.Sprintf("%03d.png", i+1))
		if err := surface.SavePNG(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	s.log.Debug("wrote %d snapshots to %s", len(paths), dir)
	return paths, nil
}

// Assets loads scripts, fonts and indicator images, resolving relative
// names against base and the resource paths.
type Assets struct {
	loader *res.Loader
}

// NewAssets creates an asset loader for the given options.
func NewAssets(base string, options Options) *Assets {
	l := res.NewLoader(base, logger.ForDebug(options.Debug, options.LogOutput))
	for _, p := range options.ResourcePaths {
		l.AddSearchPath(p)
	}
	return &Assets{loader: l}
}

// LoadScript reads a dialog script into a storyboard. HTML scripts give
// one dialog per <dialog> element, styled by linked stylesheets, then
// <style> blocks, then style attributes; a speaker is prefixed to the text. Any other text
// becomes a single dialog.
func (a *Assets) LoadScript(ctx context.Context, url string, opts ...Option) (*Storyboard, error) {
	asset, err := a.loader.LoadScript(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load script: %w", err)
	}

	sb := NewStoryboard(opts...)
	if asset.Kind != res.KindScript {
		sb.Add(asset.String())
		return sb, nil
	}

	script, err := html.NewParser().Parse(asset.Reader())
	if err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if script.Title != "" && sb.options.Title == "" {
		sb.options.Title = script.Title
	}

	styles := style.NewEngine(sb.options.Style)
	parser := css.NewParser()
	blocks := make([]string, 0, len(script.StyleLinks)+len(script.Styles))
	for _, href := range script.StyleLinks {
		sheet, err := a.loader.LoadStyle(ctx, href)
		if err != nil {
			return nil, fmt.Errorf("failed to load stylesheet: %w", err)
		}
		blocks = append(blocks, sheet.String())
	}
	blocks = append(blocks, script.Styles...)
	for _, block := range blocks {
		sheet, err := parser.ParseString(block)
		if err != nil {
			return nil, fmt.Errorf("failed to parse style: %w", err)
		}
		styles.AddStylesheet(sheet)
	}

	for _, d := range script.Dialogs {
		body := d.Text
		if d.Speaker != "" {
			body = d.Speaker + ": " + body
		}
		if strings.TrimSpace(body) == "" {
			continue
		}
		sb.Add(body, WithStyle(styles.Compute(d.ID, d.Style)))
	}
	sb.log.Debug("script %s: %d dialogs", url, sb.Len())
	return sb, nil
}

// LoadFace loads a TrueType font at size points.
func (a *Assets) LoadFace(ctx context.Context, url string, size float64) (font.Face, error) {
	asset, err := a.loader.LoadFont(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return text.NewFace(asset.Data, size, text.DefaultDPI)
}

// LoadIndicator loads an indicator image. SVG icons are rasterized to
// size x size pixels.
func (a *Assets) LoadIndicator(ctx context.Context, url string, size int) (image.Image, error) {
	asset, err := a.loader.LoadImage(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load indicator: %w", err)
	}
	return icon.Decode(asset.Data, asset.MimeType, size)
}
