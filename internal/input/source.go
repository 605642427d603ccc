// Package input turns key and button state into the edge-triggered
// confirm and skip events a dialog box consumes.
package input

// Source reports edge-triggered dialog input for the current frame. Each
// query is true only on the frame the button went from released to pressed.
type Source interface {
	ConfirmPressed() bool
	SkipPressed() bool
}

// Edge detects the released-to-pressed transition of a level signal.
type Edge struct {
	down bool
}

// Update records the current level and reports whether it just went down.
func (e *Edge) Update(down bool) bool {
	pressed := down && !e.down
	e.down = down
	return pressed
}

// Polled adapts continuous key state to a Source. Call Poll once per
// frame before the dialog box reads it.
type Polled struct {
	Confirm func() bool
	Skip    func() bool

	confirm        Edge
	skip           Edge
	confirmPressed bool
	skipPressed    bool
}

// Poll samples both buttons and latches this frame's edges.
func (p *Polled) Poll() {
	p.confirmPressed = p.confirm.Update(level(p.Confirm))
	p.skipPressed = p.skip.Update(level(p.Skip))
}

func (p *Polled) ConfirmPressed() bool { return p.confirmPressed }
func (p *Polled) SkipPressed() bool    { return p.skipPressed }

func level(f func() bool) bool {
	return f != nil && f()
}

// Action is a discrete dialog input.
type Action int

const (
	ActionConfirm Action = iota
	ActionSkip
)

// Latch is a Source fed by discrete key events, as delivered by terminal
// and event-driven hosts. A press is reported once and then cleared.
type Latch struct {
	confirm bool
	skip    bool
}

// Press records an action for the next frame.
func (l *Latch) Press(a Action) {
	switch a {
	case ActionConfirm:
		l.confirm = true
	case ActionSkip:
		l.skip = true
	}
}

func (l *Latch) ConfirmPressed() bool {
	pressed := l.confirm
	l.confirm = false
	return pressed
}

func (l *Latch) SkipPressed() bool {
	pressed := l.skip
	l.skip = false
	return pressed
}
