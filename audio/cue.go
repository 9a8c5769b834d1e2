package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/folio/parameter"
)

const sampleRate = beep.SampleRate(parameter.CueSampleRate)

// CuePlayer plays the spawn whoosh through the system speaker
// Safe to call before Initialize or after Cleanup, playback is then a no-op
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffer      *beep.Buffer
	initialized bool
	last        time.Time

	muted  atomic.Bool
	played atomic.Int64
}

// NewCuePlayer creates a cue player with the whoosh pre-rendered
func NewCuePlayer() *CuePlayer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(NewWhooshGenerator(sampleRate))
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		buffer: buf,
	}
}

// Initialize opens the speaker
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.CueSpeakerBuffer)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences pending cues
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play starts one whoosh, dropped when muted or too close to the previous one
func (p *CuePlayer) Play() {
	if p.muted.Load() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	now := time.Now()
	if now.Sub(p.last) < parameter.CueMinGap {
		return
	}
	p.last = now

	speaker.Lock()
	p.mixer.Add(p.buffer.Streamer(0, p.buffer.Len()))
	speaker.Unlock()
	p.played.Add(1)
}

// ToggleMute flips the mute state and returns the new state
func (p *CuePlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets the mute state
func (p *CuePlayer) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// IsMuted reports the mute state
func (p *CuePlayer) IsMuted() bool {
	return p.muted.Load()
}

// Played returns the number of cues started
func (p *CuePlayer) Played() int64 {
	return p.played.Load()
}

// Samples returns the length of the pre-rendered cue
func (p *CuePlayer) Samples() int {
	return p.buffer.Len()
}
