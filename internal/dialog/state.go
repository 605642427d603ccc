// Package dialog holds the page navigation state machine of a dialog box.
//
// A State is either inactive or active on a page. Showing resets it to the
// first page and restarts the blink timer; advancing moves to the next page
// or closes the box after the last one; skipping closes it at once. Input
// arriving while the box is inactive is ignored.
package dialog

import (
	"time"

	"github.com/gompdf/gomdialog/internal/input"
)

// Transition is the outcome of feeding input to a State.
type Transition int

const (
	// TransitionNone means nothing changed.
	TransitionNone Transition = iota
	// TransitionNextPage means the box moved to the following page.
	TransitionNextPage
	// TransitionFinished means the box closed after its last page.
	TransitionFinished
	// TransitionSkipped means the box was closed before its last page.
	TransitionSkipped
)

func (t Transition) String() string {
	switch t {
	case TransitionNextPage:
		return "next-page"
	case TransitionFinished:
		return "finished"
	case TransitionSkipped:
		return "skipped"
	default:
		return "none"
	}
}

// State tracks whether a dialog box is showing, which page it is on and
// when its blink timer was last reset.
type State struct {
	clock   Clock
	active  bool
	page    int
	pages   int
	resetAt time.Time
}

// NewState returns an inactive state reading time from clock.
func NewState(clock Clock) *State {
	if clock == nil {
		clock = SystemClock{}
	}
	return &State{clock: clock}
}

// Show activates the state on the first of pageCount pages and starts a
// fresh blink timer. It never resumes an earlier session.
func (s *State) Show(pageCount int) {
	s.active = true
	s.page = 0
	s.SetPageCount(pageCount)
	s.resetAt = s.clock.Now()
}

// Hide deactivates the state and stops the blink timer.
func (s *State) Hide() {
	s.active = false
	s.resetAt = time.Time{}
}

// Advance moves to the next page, or closes the box on the last page.
func (s *State) Advance() Transition {
	if !s.active {
		return TransitionNone
	}
	if s.IsLastPage() {
		s.Hide()
		return TransitionFinished
	}
	s.page++
	s.resetAt = s.clock.Now()
	return TransitionNextPage
}

// Skip closes the box regardless of the current page.
func (s *State) Skip() Transition {
	if !s.active {
		return TransitionNone
	}
	s.Hide()
	return TransitionSkipped
}

// Update consumes one frame of input and applies at most one transition.
// Confirm wins when both buttons were pressed on the same frame.
func (s *State) Update(in input.Source) Transition {
	if in == nil {
		return TransitionNone
	}

	confirm := in.ConfirmPressed()
	skip := in.SkipPressed()

	switch {
	case !s.active:
		return TransitionNone
	case confirm:
		return s.Advance()
	case skip:
		return s.Skip()
	}
	return TransitionNone
}

// SetPageCount updates the number of pages after repagination, keeping the
// current page in range.
func (s *State) SetPageCount(n int) {
	if n < 0 {
		n = 0
	}
	s.pages = n
	if s.page > n-1 {
		s.page = max(n-1, 0)
	}
}

// Active reports whether the box is showing.
func (s *State) Active() bool { return s.active }

// Page returns the current page index.
func (s *State) Page() int { return s.page }

// PageCount returns the number of pages.
func (s *State) PageCount() int { return s.pages }

// IsLastPage reports whether the current page is the final one. A state
// with no pages is on its last page.
func (s *State) IsLastPage() bool {
	return s.page >= s.pages-1
}

// Elapsed returns the time since the blink timer was last reset, or zero
// when the box is inactive.
func (s *State) Elapsed() time.Duration {
	if !s.active {
		return 0
	}
	return s.clock.Now().Sub(s.resetAt)
}

// IndicatorVisible reports whether the next-page indicator should be drawn.
// It blinks on every page but the last, where it stays lit.
func (s *State) IndicatorVisible() bool {
	if !s.active {
		return false
	}
	return Blink(s.Elapsed()) || s.IsLastPage()
}
