package api

import (
	"image"
	"image/color"
	"io"

	"github.com/gompdf/gomdialog/internal/dialog"
	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/style"
)

// Options represents configuration options for a dialog box
type Options struct {
	// Viewport the box is laid out in
	ViewportWidth  float64
	ViewportHeight float64

	// Box size. Zero derives the size from the viewport.
	Width  float64
	Height float64

	// Box position, used when AutoPosition is false
	X float64
	Y float64
	// AutoPosition centres the box horizontally, BottomGap above the
	// bottom of the viewport
	AutoPosition bool
	BottomGap    float64

	// Margin is the padding around the text, half on each side
	Margin float64

	// Visual style
	Style          style.Style
	IndicatorGlyph string
	IndicatorImage image.Image
	// Background clears storyboard pages and demo screens
	Background color.Color

	// Clock drives the blink timer
	Clock dialog.Clock

	// Logging
	Debug     bool
	LogOutput io.Writer

	// Resource paths searched for fonts, icons and scripts
	ResourcePaths []string

	// Storyboard metadata
	Title   string
	Author  string
	Subject string
}

// Option is a function that modifies Options
type Option func(*Options)

// CornflowerBlue is the default background.
var CornflowerBlue = color.NRGBA{R: 100, G: 149, B: 237, A: 255}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// The demo window size
		ViewportWidth:  800,
		ViewportHeight: 480,

		AutoPosition: true,
		BottomGap:    layout.DefaultBottomGap,
		Margin:       layout.DefaultMargin,

		Style:          style.Default(),
		IndicatorGlyph: ">",
		Background:     CornflowerBlue,

		Clock: dialog.SystemClock{},
	}
}

// WithViewport sets the viewport size
func WithViewport(width, height float64) Option {
	return func(o *Options) {
		o.ViewportWidth = width
		o.ViewportHeight = height
	}
}

// WithSize sets the box size
func WithSize(width, height float64) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithPosition places the box at x, y and turns off automatic placement
func WithPosition(x, y float64) Option {
	return func(o *Options) {
		o.X = x
		o.Y = y
		o.AutoPosition = false
	}
}

// WithMargin sets the text margin
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithBorderWidth sets the border thickness
func WithBorderWidth(width float64) Option {
	return func(o *Options) {
		o.Style.BorderWidth = width
	}
}

// WithFillColor sets the background colour of the box
func WithFillColor(c color.Color) Option {
	return func(o *Options) {
		o.Style.Fill = toNRGBA(c)
	}
}

// WithBorderColor sets the border colour
func WithBorderColor(c color.Color) Option {
	return func(o *Options) {
		o.Style.Border = toNRGBA(c)
	}
}

// WithTextColor sets the text colour
func WithTextColor(c color.Color) Option {
	return func(o *Options) {
		o.Style.Text = toNRGBA(c)
	}
}

// WithIndicatorColor sets the colour of the next-page glyph
func WithIndicatorColor(c color.Color) Option {
	return func(o *Options) {
		o.Style.Indicator = toNRGBA(c)
	}
}

// WithIndicatorGlyph sets the next-page glyph
func WithIndicatorGlyph(glyph string) Option {
	return func(o *Options) {
		o.IndicatorGlyph = glyph
	}
}

// WithIndicatorImage draws img instead of the glyph on surfaces that
// support images
func WithIndicatorImage(img image.Image) Option {
	return func(o *Options) {
		o.IndicatorImage = img
	}
}

// WithStyle replaces the whole visual style
func WithStyle(s style.Style) Option {
	return func(o *Options) {
		o.Style = s
	}
}

// WithBackground sets the colour storyboard pages are cleared to
func WithBackground(c color.Color) Option {
	return func(o *Options) {
		o.Background = c
	}
}

// WithClock sets the blink clock
func WithClock(c dialog.Clock) Option {
	return func(o *Options) {
		o.Clock = c
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogOutput sets where debug output goes
func WithLogOutput(w io.Writer) Option {
	return func(o *Options) {
		o.LogOutput = w
	}
}

// WithResourcePath adds a path to search for resources
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the storyboard title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the storyboard author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the storyboard subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

func (o Options) geometry() layout.Geometry {
	dw, dh := layout.DefaultSize(o.ViewportWidth, o.ViewportHeight)
	w, h := o.Width, o.Height
	if w <= 0 {
		w = dw
	}
	if h <= 0 {
		h = dh
	}

	pos := layout.Point{X: o.X, Y: o.Y}
	if o.AutoPosition {
		pos = layout.DefaultPosition(o.ViewportWidth, o.ViewportHeight, w, h, o.BottomGap)
	}

	return layout.Geometry{
		Position:    pos,
		Width:       w,
		Height:      h,
		BorderWidth: o.Style.BorderWidth,
		Margin:      o.Margin,
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
