package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gompdf/gomdialog/internal/dialog"
)

func sample(pcm []byte, i int) int16 {
	return int16(binary.LittleEndian.Uint16(pcm[i*bytesPerSample:]))
}

func TestBlip(t *testing.T) {
	pcm := Blip(440, 100*time.Millisecond)
	if got, want := len(pcm), SampleRate/10*bytesPerSample; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	if s := sample(pcm, 0); s != 0 {
		t.Errorf("first sample = %d, want 0", s)
	}

	n := len(pcm) / bytesPerSample
	peak := 0.0
	for i := 0; i < n; i++ {
		peak = math.Max(peak, math.Abs(float64(sample(pcm, i))))
	}
	if peak > amplitude || peak < amplitude/2 {
		t.Errorf("peak = %v, want between %v and %v", peak, amplitude/2, amplitude)
	}

	tail := 0.0
	for i := n - 20; i < n; i++ {
		tail = math.Max(tail, math.Abs(float64(sample(pcm, i))))
	}
	if tail > amplitude/100 {
		t.Errorf("tail peak = %v, want the tone faded out", tail)
	}
}

func TestBlipDegenerate(t *testing.T) {
	if pcm := Blip(440, 0); pcm != nil {
		t.Errorf("zero duration: got %d bytes", len(pcm))
	}
	if pcm := Blip(0, time.Second); pcm != nil {
		t.Errorf("zero frequency: got %d bytes", len(pcm))
	}
}

func TestCue(t *testing.T) {
	if Cue(dialog.TransitionNone) != nil {
		t.Error("TransitionNone has a cue")
	}
	for _, tr := range []dialog.Transition{
		dialog.TransitionNextPage,
		dialog.TransitionFinished,
		dialog.TransitionSkipped,
	} {
		if len(Cue(tr)) == 0 {
			t.Errorf("%s: no cue", tr)
		}
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(Blip(440, 10*time.Millisecond))
}
