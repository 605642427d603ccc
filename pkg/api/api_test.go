package api

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gompdf/gomdialog/internal/dialog"
	"github.com/gompdf/gomdialog/internal/input"
	"github.com/gompdf/gomdialog/internal/render/rendertest"
	"github.com/google/go-cmp/cmp"
)

var cell = FixedMetrics{Width: 8, Height: 16}

func newTestBox(t *testing.T, opts ...Option) (*DialogBox, *dialog.ManualClock) {
	t.Helper()
	clock := dialog.NewManualClock(time.Unix(0, 0))
	return New(cell, append([]Option{WithClock(clock)}, opts...)...), clock
}

// words returns n copies of a seven letter word.
func words(n int) string {
	return strings.TrimSpace(strings.Repeat("abcdefg ", n))
}

func TestAdvance(t *testing.T) {
	box, clock := newTestBox(t)
	if err := box.Show("one\ntwo\nthree"); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if !box.Active() || box.CurrentPage() != 0 || box.PageCount() != 3 {
		t.Fatalf("after Show: active=%v page=%d count=%d", box.Active(), box.CurrentPage(), box.PageCount())
	}

	clock.Advance(700 * time.Millisecond)
	if got := box.Elapsed(); got != 700*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 700ms", got)
	}

	if got := box.Advance(); got != TransitionNextPage {
		t.Errorf("Advance() = %v, want next-page", got)
	}
	if box.CurrentPage() != 1 || box.Elapsed() != 0 {
		t.Errorf("after Advance: page=%d elapsed=%v, want 1 and 0", box.CurrentPage(), box.Elapsed())
	}

	box.Advance()
	if !box.IsLastPage() {
		t.Fatal("expected the last page")
	}
	if got := box.Advance(); got != TransitionFinished {
		t.Errorf("Advance() on last page = %v, want finished", got)
	}
	if box.Active() {
		t.Error("box still active after the last page")
	}
	if got := box.Advance(); got != TransitionNone {
		t.Errorf("Advance() while inactive = %v, want none", got)
	}
	if got := box.PageCount(); got != 3 {
		t.Errorf("pages lost on hide: got %d", got)
	}
}

func TestIndicatorBlink(t *testing.T) {
	box, clock := newTestBox(t)
	if err := box.Show("first\nlast"); err != nil {
		t.Fatalf("Show: %v", err)
	}

	steps := []struct {
		step time.Duration
		want bool
	}{
		{0, true},
		{499 * time.Millisecond, true},
		{1 * time.Millisecond, false},
		{499 * time.Millisecond, false},
		{1 * time.Millisecond, true},
		{500 * time.Millisecond, false},
	}
	for i, s := range steps {
		clock.Advance(s.step)
		if got := box.IndicatorVisible(); got != s.want {
			t.Errorf("step %d (elapsed %v): IndicatorVisible() = %v, want %v", i, box.Elapsed(), got, s.want)
		}
	}

	box.Advance()
	for i := 0; i < 4; i++ {
		clock.Advance(250 * time.Millisecond)
		if !box.IndicatorVisible() {
			t.Errorf("indicator off on the last page at %v", box.Elapsed())
		}
	}

	box.Hide()
	if box.IndicatorVisible() {
		t.Error("indicator visible on a hidden box")
	}
}

func TestShowIsIdempotent(t *testing.T) {
	box, clock := newTestBox(t)
	text := words(60)

	if err := box.Show(text); err != nil {
		t.Fatalf("Show: %v", err)
	}
	first := box.Pages()
	box.Advance()
	clock.Advance(time.Second)

	if err := box.Show(text); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if diff := cmp.Diff(first, box.Pages()); diff != "" {
		t.Errorf("pages changed (-first +second):\n%s", diff)
	}
	if box.CurrentPage() != 0 || box.Elapsed() != 0 {
		t.Errorf("page=%d elapsed=%v, want 0 and 0", box.CurrentPage(), box.Elapsed())
	}
}

func TestInitialize(t *testing.T) {
	box, _ := newTestBox(t)
	if err := box.Show("a\nb"); err != nil {
		t.Fatalf("Show: %v", err)
	}
	box.Skip()
	if box.Active() {
		t.Fatal("box active after Skip")
	}
	if err := box.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !box.Active() || box.CurrentPage() != 0 || box.Text() != "a\nb" {
		t.Errorf("Initialize did not reopen on the first page")
	}
}

func TestUpdate(t *testing.T) {
	box, _ := newTestBox(t)
	if err := box.Show("a\nb\nc"); err != nil {
		t.Fatalf("Show: %v", err)
	}

	var latch input.Latch
	latch.Press(input.ActionConfirm)
	latch.Press(input.ActionSkip)
	if got := box.Update(&latch); got != TransitionNextPage {
		t.Errorf("Update() = %v, want next-page", got)
	}
	if got := box.Update(&latch); got != TransitionNone {
		t.Errorf("Update() with no new presses = %v, want none", got)
	}

	latch.Press(input.ActionSkip)
	if got := box.Update(&latch); got != TransitionSkipped {
		t.Errorf("Update() = %v, want skipped", got)
	}
	if got := box.Skip(); got != TransitionNone {
		t.Errorf("Skip() while inactive = %v, want none", got)
	}
}

func TestDraw(t *testing.T) {
	box, _ := newTestBox(t)
	rec := rendertest.NewRecorder()

	box.Draw(rec)
	if ops := rec.DrawOps(); len(ops) != 0 {
		t.Errorf("inactive box drew %v", ops)
	}

	if err := box.Show("Hello\nBye"); err != nil {
		t.Fatalf("Show: %v", err)
	}
	box.Draw(rec)
	want := []string{
		"fill 198,352 404x2 #000000ff",
		"fill 600,354 2x96 #000000ff",
		"fill 198,450 404x2 #000000ff",
		"fill 198,354 2x96 #000000ff",
		"fill 200,354 400x96 #ffffff80",
		`text "Hello" at 212,366 #000000ff`,
		`text ">" at 588,434 #ff0000ff`,
	}
	if diff := cmp.Diff(want, rec.DrawOps()); diff != "" {
		t.Errorf("draw ops mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyText(t *testing.T) {
	box, _ := newTestBox(t)
	if err := box.Show(" \n\n "); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if !box.Active() || box.PageCount() != 0 {
		t.Fatalf("active=%v pages=%d, want active with no pages", box.Active(), box.PageCount())
	}

	rec := rendertest.NewRecorder()
	box.Draw(rec)
	for _, op := range rec.DrawOps() {
		if strings.HasPrefix(op, `text "" `) {
			t.Errorf("drew empty text: %s", op)
		}
	}
	if got := len(rec.DrawOps()); got != 6 {
		t.Errorf("got %d ops, want borders, background and indicator: %v", got, rec.DrawOps())
	}

	if got := box.Advance(); got != TransitionFinished {
		t.Errorf("Advance() = %v, want finished", got)
	}
}

func TestBoxTooSmall(t *testing.T) {
	box, _ := newTestBox(t, WithSize(20, 20))
	err := box.Show("hi")
	if !errors.Is(err, ErrBoxTooSmall) {
		t.Fatalf("Show() error = %v, want ErrBoxTooSmall", err)
	}
	if box.Active() {
		t.Error("box active after a failed Show")
	}

	if err := New(nil).Show("hi"); !errors.Is(err, ErrInvalidMetrics) {
		t.Errorf("Show() with nil metrics error = %v, want ErrInvalidMetrics", err)
	}
}

func TestResizeClampsPage(t *testing.T) {
	box, _ := newTestBox(t)
	if err := box.Show(words(60)); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if got := box.PageCount(); got != 4 {
		t.Fatalf("PageCount() = %d, want 4", got)
	}
	for box.CurrentPage() < 3 {
		box.Advance()
	}

	if err := box.SetSize(800, 400); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if box.PageCount() != 1 || box.CurrentPage() != 0 || !box.Active() {
		t.Errorf("after SetSize: pages=%d page=%d active=%v", box.PageCount(), box.CurrentPage(), box.Active())
	}

	if err := box.SetSize(10, 10); err == nil {
		t.Error("SetSize(10, 10) succeeded")
	}
	if box.Active() {
		t.Error("box active after a failed resize")
	}
}

func TestGeometry(t *testing.T) {
	box, _ := newTestBox(t)
	if got := box.Position(); got != (Point{X: 200, Y: 354}) {
		t.Errorf("Position() = %v, want {200 354}", got)
	}

	if err := box.SetViewport(1024, 768); err != nil {
		t.Fatalf("SetViewport: %v", err)
	}
	w, h := box.Size()
	if w != 512 || h != 153 {
		t.Errorf("Size() = %vx%v, want 512x153", w, h)
	}
	if got := box.Position(); got != (Point{X: 256, Y: 585}) {
		t.Errorf("Position() = %v, want {256 585}", got)
	}

	box.SetPosition(5, 6)
	if got := box.Position(); got != (Point{X: 5, Y: 6}) {
		t.Errorf("Position() = %v, want {5 6}", got)
	}

	c, err := box.Capacity()
	if err != nil {
		t.Fatalf("Capacity: %v", err)
	}
	if c != (Capacity{CharsPerLine: 61, LinesPerPage: 7}) {
		t.Errorf("Capacity() = %+v, want 61x7", c)
	}
}

func TestFrames(t *testing.T) {
	box, _ := newTestBox(t, WithIndicatorGlyph("v"))
	if err := box.SetText("a\nb"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if box.Active() {
		t.Error("SetText opened the box")
	}

	frames := box.Frames()
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	for i, f := range frames {
		if !f.Indicator || f.IndicatorGlyph != "v" || f.CharWidth != 8 {
			t.Errorf("frame %d = %+v", i, f)
		}
	}
	if frames[1].Text != "b" {
		t.Errorf("second frame text = %q, want %q", frames[1].Text, "b")
	}
}
