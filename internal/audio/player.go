package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// speakerBuffer is the output latency; short enough that a cue lands on its tick
const speakerBuffer = 50 * time.Millisecond

// Player sends cues to the system speaker.
// A nil *Player is valid and plays nothing.
type Player struct {
	rate   beep.SampleRate
	volume float64
}

// NewPlayer initializes the speaker. It fails when no audio device is available.
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	return &Player{
		rate:   rate,
		volume: core.ClampF(cfg.Volume, 0, 1),
	}, nil
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	if s := Streamer(c, p.rate, p.volume); s != nil {
		speaker.Play(s)
	}
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}
