package layout

import "math"

const (
	// DefaultMargin is the padding around the text, split evenly between
	// the opposite edges of the box.
	DefaultMargin = 24.0
	// DefaultBottomGap separates the box from the bottom of the viewport.
	DefaultBottomGap = 30.0
	// IndicatorInset pulls the indicator in from the right edge.
	IndicatorInset = 4.0
)

// Point is a position in surface coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate just past the rectangle.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate just past the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Geometry is the placement of a dialog box on its surface.
type Geometry struct {
	Position    Point
	Width       float64
	Height      float64
	BorderWidth float64
	Margin      float64
}

// DefaultSize returns half the viewport width by a fifth of its height,
// truncated to whole pixels.
func DefaultSize(viewportWidth, viewportHeight float64) (width, height float64) {
	return math.Trunc(viewportWidth * 0.5), math.Trunc(viewportHeight * 0.2)
}

// DefaultPosition centres a box horizontally and lifts it gap above the
// bottom of the viewport.
func DefaultPosition(viewportWidth, viewportHeight, width, height, gap float64) Point {
	return Point{
		X: viewportWidth/2 - width/2,
		Y: viewportHeight - height - gap,
	}
}

// DefaultGeometry lays a box out on a viewport the default way.
func DefaultGeometry(viewportWidth, viewportHeight float64) Geometry {
	w, h := DefaultSize(viewportWidth, viewportHeight)
	return Geometry{
		Position:    DefaultPosition(viewportWidth, viewportHeight, w, h, DefaultBottomGap),
		Width:       w,
		Height:      h,
		BorderWidth: 2,
		Margin:      DefaultMargin,
	}
}

// Fill returns the background rectangle of the box.
func (g Geometry) Fill() Rect {
	return Rect{X: g.Position.X, Y: g.Position.Y, Width: g.Width, Height: g.Height}
}

// Borders returns the top, right, bottom and left border bars. The top and
// bottom bars run past the sides by the border width so they cover the
// corners.
func (g Geometry) Borders() [4]Rect {
	f := g.Fill()
	bw := g.BorderWidth
	return [4]Rect{
		{X: f.X - bw, Y: f.Y - bw, Width: f.Width + bw*2, Height: bw},
		{X: f.Right(), Y: f.Y, Width: bw, Height: f.Height},
		{X: f.X - bw, Y: f.Bottom(), Width: f.Width + bw*2, Height: bw},
		{X: f.X - bw, Y: f.Y, Width: bw, Height: f.Height},
	}
}

// Outer returns the rectangle covered by the box including its border.
func (g Geometry) Outer() Rect {
	f := g.Fill()
	bw := g.BorderWidth
	return Rect{X: f.X - bw, Y: f.Y - bw, Width: f.Width + bw*2, Height: f.Height + bw*2}
}

// TextOrigin returns the top-left corner of the page text.
func (g Geometry) TextOrigin() Point {
	return Point{X: g.Position.X + g.Margin/2, Y: g.Position.Y + g.Margin/2}
}

// IndicatorOrigin returns the top-left corner of the next-page indicator
// for a character cell of the given size.
func (g Geometry) IndicatorOrigin(charWidth, charHeight float64) Point {
	f := g.Fill()
	return Point{
		X: f.Right() - charWidth - IndicatorInset,
		Y: f.Bottom() - charHeight,
	}
}
