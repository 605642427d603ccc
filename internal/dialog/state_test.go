package dialog

import (
	"testing"
	"time"

	"github.com/gompdf/gomdialog/internal/input"
)

func newTestState(t *testing.T) (*State, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewState(clock), clock
}

func TestShowResets(t *testing.T) {
	s, clock := newTestState(t)
	s.Show(3)
	clock.Advance(700 * time.Millisecond)
	s.Advance()

	clock.Advance(300 * time.Millisecond)
	s.Show(3)
	if !s.Active() {
		t.Fatalf("expected active after Show")
	}
	if s.Page() != 0 {
		t.Errorf("Page() = %d after Show, want 0", s.Page())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v after Show, want 0", s.Elapsed())
	}
}

func TestAdvance(t *testing.T) {
	s, clock := newTestState(t)
	s.Show(2)

	clock.Advance(1200 * time.Millisecond)
	if got := s.Advance(); got != TransitionNextPage {
		t.Fatalf("Advance on first page = %v, want %v", got, TransitionNextPage)
	}
	if s.Page() != 1 {
		t.Errorf("Page() = %d, want 1", s.Page())
	}
	if s.Elapsed() != 0 {
		t.Errorf("blink timer not reset, Elapsed() = %v", s.Elapsed())
	}

	if got := s.Advance(); got != TransitionFinished {
		t.Fatalf("Advance on last page = %v, want %v", got, TransitionFinished)
	}
	if s.Active() {
		t.Errorf("expected inactive after the last page")
	}
	clock.Advance(time.Second)
	if s.Elapsed() != 0 {
		t.Errorf("timer must be stopped while inactive, Elapsed() = %v", s.Elapsed())
	}
}

func TestSkipAndHide(t *testing.T) {
	s, _ := newTestState(t)
	s.Show(5)
	if got := s.Skip(); got != TransitionSkipped {
		t.Errorf("Skip() = %v, want %v", got, TransitionSkipped)
	}
	if s.Active() {
		t.Errorf("expected inactive after Skip")
	}

	s.Show(5)
	s.Hide()
	if s.Active() {
		t.Errorf("expected inactive after Hide")
	}
}

func TestInactiveIgnoresInput(t *testing.T) {
	s, _ := newTestState(t)
	if got := s.Advance(); got != TransitionNone {
		t.Errorf("Advance while inactive = %v, want %v", got, TransitionNone)
	}
	if got := s.Skip(); got != TransitionNone {
		t.Errorf("Skip while inactive = %v, want %v", got, TransitionNone)
	}
	if s.Active() || s.Page() != 0 {
		t.Errorf("inactive state changed: active=%v page=%d", s.Active(), s.Page())
	}
	if s.IndicatorVisible() {
		t.Errorf("indicator visible while inactive")
	}
}

func TestUpdateAppliesOneTransition(t *testing.T) {
	s, _ := newTestState(t)
	s.Show(3)

	var l input.Latch
	l.Press(input.ActionConfirm)
	l.Press(input.ActionSkip)
	if got := s.Update(&l); got != TransitionNextPage {
		t.Fatalf("Update = %v, want %v", got, TransitionNextPage)
	}
	if !s.Active() || s.Page() != 1 {
		t.Fatalf("expected active on page 1, got active=%v page=%d", s.Active(), s.Page())
	}

	// Both presses were consumed by the previous frame.
	if got := s.Update(&l); got != TransitionNone {
		t.Errorf("second Update = %v, want %v", got, TransitionNone)
	}

	l.Press(input.ActionSkip)
	if got := s.Update(&l); got != TransitionSkipped {
		t.Errorf("Update with skip = %v, want %v", got, TransitionSkipped)
	}

	l.Press(input.ActionConfirm)
	if got := s.Update(&l); got != TransitionNone {
		t.Errorf("Update while inactive = %v, want %v", got, TransitionNone)
	}
	if l.ConfirmPressed() {
		t.Errorf("inactive Update must still consume the press")
	}
}

func TestIndicatorVisible(t *testing.T) {
	s, clock := newTestState(t)
	s.Show(2)

	steps := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{499 * time.Millisecond, true},
		{500 * time.Millisecond, false},
		{999 * time.Millisecond, false},
		{1000 * time.Millisecond, true},
		{1600 * time.Millisecond, false},
	}
	var now time.Duration
	for _, step := range steps {
		clock.Advance(step.at - now)
		now = step.at
		if got := s.IndicatorVisible(); got != step.want {
			t.Errorf("at %v: IndicatorVisible() = %v, want %v", step.at, got, step.want)
		}
	}

	s.Advance()
	for i := 0; i < 4; i++ {
		if !s.IndicatorVisible() {
			t.Errorf("indicator must stay lit on the last page (elapsed %v)", s.Elapsed())
		}
		clock.Advance(250 * time.Millisecond)
	}
}

func TestSetPageCountClamps(t *testing.T) {
	s, _ := newTestState(t)
	s.Show(4)
	s.Advance()
	s.Advance()
	s.Advance()
	if s.Page() != 3 {
		t.Fatalf("Page() = %d, want 3", s.Page())
	}
	s.SetPageCount(2)
	if s.Page() != 1 {
		t.Errorf("Page() = %d after shrinking to 2 pages, want 1", s.Page())
	}
	s.SetPageCount(0)
	if s.Page() != 0 || !s.IsLastPage() {
		t.Errorf("empty state: page=%d last=%v", s.Page(), s.IsLastPage())
	}
}

func TestTickClock(t *testing.T) {
	c := NewTickClock(60)
	start := c.Now()
	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if got := c.Now().Sub(start); got < 999*time.Millisecond || got > time.Second {
		t.Errorf("60 ticks at 60 TPS = %v, want about 1s", got)
	}
}
