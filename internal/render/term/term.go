// Package term draws dialog frames onto a grid of terminal cells and
// renders the grid with lipgloss.
package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gompdf/gomdialog/internal/layout"
	"github.com/gompdf/gomdialog/internal/render"
	"github.com/gompdf/gomdialog/internal/text"
)

// Cell size in surface pixels. Frames for a terminal are laid out on a
// viewport of Cols*CellWidth by Rows*CellHeight.
const (
	CellWidth  = 8
	CellHeight = 16
)

var _ = render.Surface((*Surface)(nil))

type cell struct {
	r  rune
	fg color.NRGBA
	bg color.NRGBA
	// cont marks the second column of a wide rune.
	cont bool
}

// Surface is a grid of terminal cells.
type Surface struct {
	cols, rows int
	cells      []cell
	base       color.NRGBA
}

// NewSurface creates a cols x rows surface cleared to base.
func NewSurface(cols, rows int, base color.Color) *Surface {
	s := &Surface{cols: max(cols, 0), rows: max(rows, 0)}
	s.cells = make([]cell, s.cols*s.rows)
	s.Clear(base)
	return s
}

// Metrics returns the cell size as font metrics.
func Metrics() text.Metrics {
	return text.FixedMetrics{Width: CellWidth, Height: CellHeight}
}

// Viewport returns the pixel size of a cols x rows terminal.
func Viewport(cols, rows int) (width, height float64) {
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// Size returns the grid size.
func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

// Clear resets every cell to a blank of colour c.
func (s *Surface) Clear(c color.Color) {
	s.base = toNRGBA(c)
	s.base.A = 255
	for i := range s.cells {
		s.cells[i] = cell{r: ' ', fg: s.base, bg: s.base}
	}
}

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

// FillRect blends c into the background of every cell the rectangle
// touches.
func (s *Surface) FillRect(r layout.Rect, c color.Color) {
	if r.Empty() {
		return
	}
	src := toNRGBA(c)
	c0 := int(math.Floor(r.X / CellWidth))
	r0 := int(math.Floor(r.Y / CellHeight))
	c1 := int(math.Ceil(r.Right()/CellWidth)) - 1
	r1 := int(math.Ceil(r.Bottom()/CellHeight)) - 1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if cl := s.at(col, row); cl != nil {
				cl.bg = blend(cl.bg, src)
				if cl.r == ' ' {
					cl.fg = cl.bg
				}
			}
		}
	}
}

// DrawText writes text into cells starting at the cell containing origin.
// Wide runes take two cells.
func (s *Surface) DrawText(str string, origin layout.Point, c color.Color) {
	fg := toNRGBA(c)
	col0 := int(math.Round(origin.X / CellWidth))
	row := int(math.Round(origin.Y / CellHeight))
	for _, line := range strings.Split(str, "\n") {
		col := col0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if cl := s.at(col, row); cl != nil {
				cl.r = r
				cl.fg = blend(cl.bg, fg)
				cl.cont = false
			}
			if w == 2 {
				if cl := s.at(col+1, row); cl != nil {
					cl.r = 0
					cl.cont = true
				}
			}
			col += w
		}
		row++
	}
}

// Plain returns the grid's characters without colour.
func (s *Surface) Plain() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.cols; col++ {
			if cl := s.at(col, row); !cl.cont {
				b.WriteRune(cl.r)
			}
		}
	}
	return b.String()
}

// Render returns the grid with colours, grouping runs of cells that share
// a style.
func (s *Surface) Render() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runStyle *cell
		flush := func() {
			if runStyle == nil || run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(runStyle.fg))).
				Background(lipgloss.Color(hex(runStyle.bg)))
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < s.cols; col++ {
			cl := s.at(col, row)
			if cl.cont {
				continue
			}
			if runStyle == nil || runStyle.fg != cl.fg || runStyle.bg != cl.bg {
				flush()
				runStyle = cl
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}

// blend composites src over an opaque dst.
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
