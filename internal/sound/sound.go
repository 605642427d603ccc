// Package sound synthesizes the short cues a dialog box plays on page
// turns and plays them through the system audio device.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gompdf/gomdialog/internal/dialog"
)

// PCM format of every cue: signed 16-bit little-endian mono.
const (
	SampleRate     = 24000
	ChannelCount   = 1
	bytesPerSample = 2
)

const amplitude = 0.3 * math.MaxInt16

// Blip returns a sine tone of freq Hz lasting d that fades out linearly.
func Blip(freq float64, d time.Duration) []byte {
	n := int(float64(SampleRate) * d.Seconds())
	if n <= 0 || freq <= 0 {
		return nil
	}
	pcm := make([]byte, n*bytesPerSample)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := amplitude * env * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
		binary.LittleEndian.PutUint16(pcm[i*bytesPerSample:], uint16(int16(v)))
	}
	return pcm
}

// Cue returns the sound for a transition, or nil when there is none.
func Cue(t dialog.Transition) []byte {
	switch t {
	case dialog.TransitionNextPage:
		return Blip(880, 60*time.Millisecond)
	case dialog.TransitionFinished:
		return Blip(660, 120*time.Millisecond)
	case dialog.TransitionSkipped:
		return Blip(330, 90*time.Millisecond)
	}
	return nil
}
