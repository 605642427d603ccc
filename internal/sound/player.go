package sound

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/gompdf/gomdialog/internal/logger"
)

// Player plays cues on the system audio device. A nil *Player is silent.
type Player struct {
	ctx *oto.Context
	log *logger.Logger

	mu     sync.Mutex
	active *oto.Player
}

// NewPlayer opens the audio device. It returns an error when no device is
// available. Only one Player may exist per process.
func NewPlayer(log *logger.Logger) (*Player, error) {
	if log == nil {
		log = logger.Discard()
	}
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("audio player initialized (rate=%d, channels=%d)", SampleRate, ChannelCount)
	return &Player{ctx: ctx, log: log}, nil
}

// Play starts pcm and returns at once, cutting off any cue still playing.
func (p *Player) Play(pcm []byte) {
	if p == nil || len(pcm) == 0 {
		return
	}
	player := p.ctx.NewPlayer(bytes.NewReader(pcm))

	p.mu.Lock()
	if p.active != nil {
		p.active.Pause()
	}
	p.active = player
	p.mu.Unlock()

	player.Play()
	go p.wait(player)
}

func (p *Player) wait(player *oto.Player) {
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	p.mu.Lock()
	if p.active == player {
		p.active = nil
	}
	p.mu.Unlock()

	if err := player.Close(); err != nil {
		p.log.Warn("audio player: %v", err)
	}
}
