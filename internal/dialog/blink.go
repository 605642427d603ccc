package dialog

import "time"

const (
	// BlinkPeriod is one full on/off cycle of the next-page indicator.
	BlinkPeriod = time.Second
	// BlinkOn is how long the indicator is lit at the start of each cycle.
	BlinkOn = 500 * time.Millisecond
)

// Blink reports whether the indicator is lit after elapsed time.
func Blink(elapsed time.Duration) bool {
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed%BlinkPeriod < BlinkOn
}
