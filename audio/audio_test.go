package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/parameter"
)

func TestWhooshFiniteAndBounded(t *testing.T) {
	g := NewWhooshGenerator(sampleRate)
	want := sampleRate.N(parameter.CueDuration)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := g.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("Sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestWhooshEnvelopeEdges(t *testing.T) {
	if envelope(0) != 0 {
		t.Errorf("Expected silent start, got %v", envelope(0))
	}
	if envelope(parameter.CueAttackFraction) != 1 {
		t.Errorf("Expected peak after attack, got %v", envelope(parameter.CueAttackFraction))
	}
	if envelope(1) != 0 {
		t.Errorf("Expected silent end, got %v", envelope(1))
	}
}

// TestCuePlayerGracefulDegradation verifies playback without a speaker is a no-op
func TestCuePlayerGracefulDegradation(t *testing.T) {
	p := NewCuePlayer()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue operations panicked without initialization: %v", r)
		}
	}()

	p.Play()
	p.Cleanup()
	if p.Played() != 0 {
		t.Errorf("Expected no cues played, got %d", p.Played())
	}
	if p.Samples() != beep.SampleRate(parameter.CueSampleRate).N(parameter.CueDuration) {
		t.Errorf("Expected pre-rendered cue, got %d samples", p.Samples())
	}
}

func TestCuePlayerMute(t *testing.T) {
	p := NewCuePlayer()
	if p.IsMuted() {
		t.Fatal("Expected unmuted by default")
	}
	if !p.ToggleMute() || !p.IsMuted() {
		t.Error("Expected muted after toggle")
	}
	p.SetMuted(false)
	if p.IsMuted() {
		t.Error("Expected unmuted after SetMuted(false)")
	}
}

func TestServiceDisabledByConfig(t *testing.T) {
	cfg := config.Default()
	s := NewService()
	if err := s.Init(&cfg); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if !s.IsDisabled() || s.Player() != nil {
		t.Error("Expected disabled service without player")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
