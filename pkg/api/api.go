package api

import (
	"fmt"
	"time"

	"github.com/gompdf/gomdialog/internal/dialog"
	"github.com/gompdf/gomdialog/internal/input"
	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/logger"
	"github.com/gompdf/gomdialog/internal/pagination"
	"github.com/gompdf/gomdialog/internal/render"
	"github.com/gompdf/gomdialog/internal/style"
	"github.com/gompdf/gomdialog/internal/text"
)

type (
	// Metrics measures characters of the font the box is drawn with.
	Metrics = text.Metrics
	// FixedMetrics is a constant character cell.
	FixedMetrics = text.FixedMetrics
	// Clock is the blink time source.
	Clock = dialog.Clock
	// Style is the visual style of a box.
	Style = style.Style
	// Source supplies confirm and skip presses.
	Source = input.Source
	// Surface is a render target.
	Surface = render.Surface
	// Frame is one drawable state of a box.
	Frame = render.Frame
	// Geometry is the placement of a box.
	Geometry = layout.Geometry
	// Point is a position on a surface.
	Point = layout.Point
	// Capacity is the text budget of a box.
	Capacity = pagination.Capacity
	// Transition is the outcome of input.
	Transition = dialog.Transition
)

const (
	TransitionNone     = dialog.TransitionNone
	TransitionNextPage = dialog.TransitionNextPage
	TransitionFinished = dialog.TransitionFinished
	TransitionSkipped  = dialog.TransitionSkipped
)

var (
	ErrBoxTooSmall    = pagination.ErrBoxTooSmall
	ErrInvalidMetrics = pagination.ErrInvalidMetrics
)

// DialogBox is a paged text box driven by confirm and skip input. It is not
// safe for concurrent use; hosts call Update and Draw from their frame loop.
type DialogBox struct {
	options  Options
	metrics  Metrics
	engine   *pagination.Engine
	state    *dialog.State
	text     string
	pages    []string
	geometry layout.Geometry
	log      *logger.Logger
}

// New creates an inactive dialog box with default options
func New(metrics Metrics, opts ...Option) *DialogBox {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return NewWithOptions(metrics, options)
}

// NewWithOptions creates an inactive dialog box with the specified options
func NewWithOptions(metrics Metrics, options Options) *DialogBox {
	if options.Clock == nil {
		options.Clock = dialog.SystemClock{}
	}
	return &DialogBox{
		options:  options,
		metrics:  metrics,
		engine:   pagination.NewEngine(),
		state:    dialog.NewState(options.Clock),
		geometry: options.geometry(),
		log:      logger.ForDebug(options.Debug, options.LogOutput),
	}
}

// Options returns the current options.
func (d *DialogBox) Options() Options {
	return d.options
}

// Show replaces the text, paginates it and opens the box on its first
// page with the blink timer restarted. When the text cannot be laid out
// the box is left closed and the error returned.
func (d *DialogBox) Show(text string) error {
	d.text = text
	if err := d.repaginate(); err != nil {
		d.state.Hide()
		return err
	}
	d.state.Show(len(d.pages))
	d.log.Debug("show: %d pages", len(d.pages))
	return nil
}

// Initialize shows the current text again from the first page.
func (d *DialogBox) Initialize() error {
	return d.Show(d.text)
}

// Hide closes the box. Pages are kept.
func (d *DialogBox) Hide() {
	d.state.Hide()
}

// Advance moves to the next page, closing the box after the last one.
func (d *DialogBox) Advance() Transition {
	return d.logged(d.state.Advance())
}

// Skip closes the box regardless of the page.
func (d *DialogBox) Skip() Transition {
	return d.logged(d.state.Skip())
}

// Update feeds one frame of input to the box.
func (d *DialogBox) Update(in Source) Transition {
	return d.logged(d.state.Update(in))
}

func (d *DialogBox) logged(t Transition) Transition {
	if t != TransitionNone {
		d.log.Debug("%s: page %d of %d", t, d.state.Page()+1, d.state.PageCount())
	}
	return t
}

// Text returns the source text.
func (d *DialogBox) Text() string {
	return d.text
}

// SetText replaces the text without reopening the box. An active box stays
// on its page, clamped to the new page count.
func (d *DialogBox) SetText(text string) error {
	d.text = text
	return d.relayout()
}

// Active reports whether the box is showing.
func (d *DialogBox) Active() bool {
	return d.state.Active()
}

// CurrentPage returns the index of the page being shown.
func (d *DialogBox) CurrentPage() int {
	return d.state.Page()
}

// PageCount returns the number of pages.
func (d *DialogBox) PageCount() int {
	return len(d.pages)
}

// Pages returns a copy of the pages.
func (d *DialogBox) Pages() []string {
	return append([]string(nil), d.pages...)
}

// IsLastPage reports whether the current page is the final one.
func (d *DialogBox) IsLastPage() bool {
	return d.state.IsLastPage()
}

// IndicatorVisible reports whether the next-page indicator is lit.
func (d *DialogBox) IndicatorVisible() bool {
	return d.state.IndicatorVisible()
}

// Elapsed returns the time since the blink timer was reset.
func (d *DialogBox) Elapsed() time.Duration {
	return d.state.Elapsed()
}

// Geometry returns the current placement of the box.
func (d *DialogBox) Geometry() Geometry {
	return d.geometry
}

// Position returns the top-left corner of the box.
func (d *DialogBox) Position() Point {
	return d.geometry.Position
}

// SetPosition moves the box and turns off automatic placement.
func (d *DialogBox) SetPosition(x, y float64) {
	WithPosition(x, y)(&d.options)
	d.geometry = d.options.geometry()
}

// Size returns the box size.
func (d *DialogBox) Size() (width, height float64) {
	return d.geometry.Width, d.geometry.Height
}

// SetSize resizes the box and repaginates.
func (d *DialogBox) SetSize(width, height float64) error {
	WithSize(width, height)(&d.options)
	return d.relayout()
}

// SetViewport changes the viewport the default size and position derive
// from and repaginates.
func (d *DialogBox) SetViewport(width, height float64) error {
	WithViewport(width, height)(&d.options)
	return d.relayout()
}

// SetMetrics switches fonts and repaginates.
func (d *DialogBox) SetMetrics(m Metrics) error {
	d.metrics = m
	return d.relayout()
}

// Style returns the visual style.
func (d *DialogBox) Style() Style {
	return d.options.Style
}

// SetStyle replaces the visual style.
func (d *DialogBox) SetStyle(s Style) {
	d.options.Style = s
	d.geometry = d.options.geometry()
}

// Capacity returns how many characters fit on a line and how many lines
// fit on a page.
func (d *DialogBox) Capacity() (Capacity, error) {
	d.configureEngine()
	return d.engine.Capacity()
}

// Frame returns what Draw would draw, and false when the box is closed.
func (d *DialogBox) Frame() (Frame, bool) {
	if !d.state.Active() {
		return Frame{}, false
	}
	return d.frame(d.state.Page(), d.state.IndicatorVisible()), true
}

// Frames returns one frame per page with the indicator lit, for
// storyboards.
func (d *DialogBox) Frames() []Frame {
	frames := make([]Frame, 0, len(d.pages))
	for i := range d.pages {
		frames = append(frames, d.frame(i, true))
	}
	return frames
}

// Draw draws the current frame onto s. A closed box draws nothing.
func (d *DialogBox) Draw(s Surface) {
	if f, ok := d.Frame(); ok {
		render.Draw(s, f)
	}
}

func (d *DialogBox) frame(page int, indicator bool) Frame {
	cw, ch := text.CharacterSize(d.metrics)
	f := Frame{
		Geometry:       d.geometry,
		Style:          d.options.Style,
		Indicator:      indicator,
		IndicatorGlyph: d.options.IndicatorGlyph,
		IndicatorImage: d.options.IndicatorImage,
		CharWidth:      cw,
		CharHeight:     ch,
	}
	if page >= 0 && page < len(d.pages) {
		f.Text = d.pages[page]
	}
	return f
}

// relayout recomputes geometry and pages after a change. A failure closes
// the box.
func (d *DialogBox) relayout() error {
	d.geometry = d.options.geometry()
	if err := d.repaginate(); err != nil {
		d.state.Hide()
		return err
	}
	return nil
}

func (d *DialogBox) configureEngine() {
	cw, ch := text.CharacterSize(d.metrics)
	d.engine.SetOptions(pagination.Options{
		Width:      d.geometry.Width,
		Height:     d.geometry.Height,
		Margin:     d.geometry.Margin,
		CharWidth:  cw,
		CharHeight: ch,
	})
}

func (d *DialogBox) repaginate() error {
	d.configureEngine()
	pages, err := d.engine.Paginate(d.text)
	if err != nil {
		d.pages = nil
		d.state.SetPageCount(0)
		return fmt.Errorf("failed to paginate: %w", err)
	}
	d.pages = pages
	d.state.SetPageCount(len(pages))
	return nil
}
