package pagination

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBoxTooSmall is returned when the box cannot hold a single character
	// or a single line of text.
	ErrBoxTooSmall = errors.New("dialog box too small for font")
	// ErrInvalidMetrics is returned when the character size is not positive.
	ErrInvalidMetrics = errors.New("invalid character metrics")
)

// Options represents options for the pagination engine
type Options struct {
	Width      float64
	Height     float64
	Margin     float64
	CharWidth  float64
	CharHeight float64
}

// Capacity is the text budget of a dialog box.
type Capacity struct {
	CharsPerLine int
	LinesPerPage int
}

// Engine derives line and page budgets from box geometry and font metrics
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			Width:      400, // Half of an 800x480 viewport
			Height:     96,  // A fifth of it
			Margin:     24,
			CharWidth:  8,
			CharHeight: 16,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.options
}

// Capacity computes how many characters fit on a line and how many lines
// fit on a page. One line of height is reserved for the indicator.
func (e *Engine) Capacity() (Capacity, error) {
	o := e.options
	if o.CharWidth <= 0 || o.CharHeight <= 0 {
		return Capacity{}, fmt.Errorf("%w: character size %.2fx%.2f", ErrInvalidMetrics, o.CharWidth, o.CharHeight)
	}

	c := Capacity{
		CharsPerLine: int(math.Floor((o.Width - o.Margin) / o.CharWidth)),
		LinesPerPage: int(math.Floor((o.Height-o.Margin)/o.CharHeight)) - 1,
	}
	if c.CharsPerLine < 1 || c.LinesPerPage < 1 {
		return c, fmt.Errorf("%w: %.0fx%.0f box holds %d chars x %d lines",
			ErrBoxTooSmall, o.Width, o.Height, c.CharsPerLine, c.LinesPerPage)
	}
	return c, nil
}

// Paginate breaks text into pages sized for the configured box
func (e *Engine) Paginate(text string) ([]string, error) {
	c, err := e.Capacity()
	if err != nil {
		return nil, err
	}
	return Paginate(text, c.CharsPerLine, c.LinesPerPage), nil
}
