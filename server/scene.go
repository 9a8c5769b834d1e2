package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/layout"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/portfolio"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/service"
	"github.com/lixenwraith/folio/status"
	"github.com/lixenwraith/folio/system"
)

// Scene hosts the animation core headless and streams frames to viewers
// The page counts as visible while at least one viewer reports itself visible
type Scene struct {
	clock engine.Clock

	loop  *engine.Loop
	world *system.World
	ctrl  *system.Controller
	home  *layout.Home

	mu      sync.Mutex
	viewers map[*Viewer]struct{}
	shown   int

	done    chan struct{}
	stopped atomic.Bool

	statViewers    *atomic.Int64
	statDropped    *atomic.Int64
	statEncode     *status.Gauge
	statEncodePeak *status.Gauge
}

// Viewer is one stream subscriber
type Viewer struct {
	s       *Scene
	frames  chan []byte
	visible bool // guarded by s.mu
}

// NewScene creates the scene service on clock, nil uses wall time
func NewScene(clock engine.Clock) *Scene {
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &Scene{
		clock:   clock,
		viewers: make(map[*Viewer]struct{}),
		done:    make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Scene) Name() string {
	return "scene"
}

// Dependencies implements service.Service
func (s *Scene) Dependencies() []string {
	return nil
}

// Init implements service.Service
// Reads *config.Config and *status.Registry from args, defaults otherwise
func (s *Scene) Init(args ...any) error {
	cfg, ok := service.Arg[*config.Config](args)
	if !ok {
		def := config.Default()
		cfg = &def
	}
	reg, ok := service.Arg[*status.Registry](args)
	if !ok {
		reg = status.NewRegistry()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = s.clock.Now().UnixNano()
	}
	vp := scene.Viewport{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}

	s.loop = engine.NewLoop(s.clock, time.Second/time.Duration(cfg.FrameRate))
	s.world = system.NewWorld(s.loop.Scheduler(), &scene.NopSurface{}, portfolio.Pool(cfg.Categories), reg, rand.New(rand.NewSource(seed)))
	s.world.Viewport = vp
	s.home = layout.NewHome(vp, s.loop.Interval())
	s.ctrl = system.NewController(s.world, s.home)

	s.loop.Scheduler().OnFrame(func(time.Time) { s.home.Step() })
	s.loop.AfterFrame = s.broadcast

	s.statViewers = reg.Ints.Get("stream.viewers")
	s.statDropped = reg.Ints.Get("stream.dropped")
	s.statEncode = reg.Floats.Get("stream.encode_ms")
	s.statEncodePeak = reg.Floats.Get("stream.encode_peak_ms")
	return nil
}

// Start implements service.Service
func (s *Scene) Start() error {
	s.loop.Start()
	s.loop.Do(func() {
		s.ctrl.Start()
		s.syncVisibility()
	})
	return nil
}

// Stop implements service.Service
// Releases every shape and halts the loop, safe to call more than once
func (s *Scene) Stop() error {
	if s.loop == nil || !s.stopped.CompareAndSwap(false, true) {
		return nil
	}
	teardown := func() {
		n := s.ctrl.Teardown()
		log.Printf("scene: teardown released %d shapes", n)
	}
	if s.loop.Running() {
		s.loop.Do(teardown)
	} else {
		teardown()
	}
	s.loop.Stop()
	close(s.done)
	return nil
}

// Done is closed once the scene has stopped
func (s *Scene) Done() <-chan struct{} {
	return s.done
}

// Snapshot captures the current frame on the loop goroutine
// Returns false if the loop is not running
func (s *Scene) Snapshot() (Frame, bool) {
	var f Frame
	if s.loop == nil || !s.loop.Running() {
		return f, false
	}
	ok := s.loop.Do(func() {
		f = BuildFrame(s.loop.Scheduler().Now(), s.world.Shapes.Snapshot(), s.home)
	})
	return f, ok
}

// Join registers a visible viewer
func (s *Scene) Join() *Viewer {
	v := &Viewer{s: s, frames: make(chan []byte, parameter.StreamBuffer), visible: true}
	s.mu.Lock()
	s.viewers[v] = struct{}{}
	s.shown++
	n := len(s.viewers)
	s.mu.Unlock()

	s.statViewers.Store(int64(n))
	s.requestSync()
	return v
}

// SetViewport resizes the shared layout and the spawn area
func (s *Scene) SetViewport(vp scene.Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	s.loop.Post(func() {
		s.ctrl.Resize(vp)
		s.home.Resize(vp)
	})
}

// ScrollTo moves the shared page scroll position
func (s *Scene) ScrollTo(y float64) {
	s.loop.Post(func() { s.home.ScrollTo(y) })
}

// Frames delivers encoded frames, slow readers miss frames rather than stall the loop
func (v *Viewer) Frames() <-chan []byte {
	return v.frames
}

// SetVisible reports the viewer's page visibility
func (v *Viewer) SetVisible(visible bool) {
	s := v.s
	s.mu.Lock()
	if _, ok := s.viewers[v]; !ok || v.visible == visible {
		s.mu.Unlock()
		return
	}
	v.visible = visible
	if visible {
		s.shown++
	} else {
		s.shown--
	}
	s.mu.Unlock()
	s.requestSync()
}

// Leave unregisters the viewer, idempotent
func (v *Viewer) Leave() {
	s := v.s
	s.mu.Lock()
	if _, ok := s.viewers[v]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.viewers, v)
	if v.visible {
		s.shown--
	}
	n := len(s.viewers)
	s.mu.Unlock()

	s.statViewers.Store(int64(n))
	s.requestSync()
}

// requestSync asks the loop to reconcile controller visibility with the viewer set
// The posted task reads the latest state, so posts from racing viewers may arrive in any order
func (s *Scene) requestSync() {
	if s.loop != nil {
		s.loop.Post(s.syncVisibility)
	}
}

func (s *Scene) syncVisibility() {
	s.mu.Lock()
	want := s.shown > 0
	s.mu.Unlock()
	if s.ctrl.Visible() != want {
		s.ctrl.SetVisible(want)
	}
}

// broadcast runs after every frame on the loop goroutine
func (s *Scene) broadcast(now time.Time) {
	s.mu.Lock()
	if len(s.viewers) == 0 {
		s.mu.Unlock()
		return
	}
	targets := make([]*Viewer, 0, len(s.viewers))
	for v := range s.viewers {
		targets = append(targets, v)
	}
	s.mu.Unlock()

	start := time.Now()
	data, err := json.Marshal(BuildFrame(now, s.world.Shapes.Snapshot(), s.home))
	if err != nil {
		log.Printf("scene: encode frame: %v", err)
		return
	}
	ms := float64(time.Since(start)) / float64(time.Millisecond)
	s.statEncodePeak.Peak(ms)
	s.statEncode.Observe(ms, parameter.StreamEncodeSmoothing)
	for _, v := range targets {
		select {
		case v.frames <- data:
		default:
			s.statDropped.Add(1)
		}
	}
}
