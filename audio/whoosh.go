package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/folio/parameter"
)

// WhooshGenerator synthesizes a short descending sweep with filtered noise
// Finite: Stream reports exhaustion after the configured length
type WhooshGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
	seed    uint32
	lowpass float64
}

// NewWhooshGenerator creates a whoosh generator
func NewWhooshGenerator(sr beep.SampleRate) *WhooshGenerator {
	return &WhooshGenerator{
		sr:      sr,
		samples: sr.N(parameter.CueDuration),
		seed:    0x9e3779b9,
	}
}

func (g *WhooshGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		p := float64(g.pos) / float64(g.samples)

		// Exponential glide from start to end frequency
		freq := parameter.CueFreqStart * math.Pow(parameter.CueFreqEnd/parameter.CueFreqStart, p)
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		tone := math.Sin(g.phase)

		// xorshift noise, one-pole lowpass for air
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		g.lowpass += 0.08 * (noise - g.lowpass)

		sample := parameter.CueVolume * envelope(p) * ((1-parameter.CueNoiseMix)*tone + parameter.CueNoiseMix*g.lowpass*4)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhooshGenerator) Err() error {
	return nil
}

// envelope is a linear attack into a squared release over progress p
func envelope(p float64) float64 {
	a := parameter.CueAttackFraction
	if p < a {
		return p / a
	}
	r := 1 - (p-a)/(1-a)
	return r * r
}
