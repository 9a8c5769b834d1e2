package system

import (
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/scene"
	"github.com/lixenwraith/folio/status"
)

// ReleaseReason records which path released a shape
type ReleaseReason uint8

const (
	ReleaseCompleted ReleaseReason = iota
	ReleaseHardCap
	ReleaseTeardown
)

func (r ReleaseReason) String() string {
	switch r {
	case ReleaseCompleted:
		return "completed"
	case ReleaseHardCap:
		return "hardcap"
	case ReleaseTeardown:
		return "teardown"
	}
	return "unknown"
}

// Cue is a fire-and-forget feedback sound
type Cue interface {
	Play()
}

// World is the state shared by the animation systems
// Owned by the loop goroutine, nothing here is safe for concurrent use
type World struct {
	Sched    *engine.Scheduler
	Shapes   *scene.Registry
	Surface  scene.Surface
	Pool     scene.ImagePool
	Rng      *rand.Rand
	Status   *status.Registry
	Viewport scene.Viewport

	// Loader resolves shape images, nil leaves image resolution to the surface
	Loader scene.ImageLoader

	// Post runs fn on the goroutine that owns the world
	// When set, images decode on their own goroutine and attach through it
	Post func(fn func()) bool

	// Cue plays on every spawn when set
	Cue Cue

	nextID uint64

	statSpawned     *atomic.Int64
	statReleased    *atomic.Int64
	statActive      *atomic.Int64
	statCompleted   *atomic.Int64
	statHardCap     *atomic.Int64
	statPlaceholder *atomic.Int64
}

// NewWorld creates a world with an empty shape registry
func NewWorld(sched *engine.Scheduler, surface scene.Surface, pool scene.ImagePool, reg *status.Registry, rng *rand.Rand) *World {
	if surface == nil {
		surface = &scene.NopSurface{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &World{
		Sched:   sched,
		Shapes:  scene.NewRegistry(),
		Surface: surface,
		Pool:    pool,
		Rng:     rng,
		Status:  reg,
	}

	w.statSpawned = reg.Ints.Get("shapes.spawned")
	w.statReleased = reg.Ints.Get("shapes.released")
	w.statActive = reg.Ints.Get("shapes.active")
	w.statCompleted = reg.Ints.Get("shapes.completed")
	w.statHardCap = reg.Ints.Get("shapes.hardcap")
	w.statPlaceholder = reg.Ints.Get("shapes.placeholder")
	return w
}

// Release is the single cleanup path for a shape
// The released flag is checked and set first, so racing completion, hard cap and teardown
// destroy the renderable and leave the registry exactly once
func (w *World) Release(s *scene.Shape, reason ReleaseReason) bool {
	if s == nil || !s.Release() {
		return false
	}

	w.Surface.Destroy(s.Handle)
	if _, ok := w.Shapes.Remove(s.ID); !ok {
		log.Printf("release: shape %d missing from registry (%s)", s.ID, reason)
	}

	w.statReleased.Add(1)
	w.statActive.Store(int64(w.Shapes.Len()))
	switch reason {
	case ReleaseCompleted:
		w.statCompleted.Add(1)
	case ReleaseHardCap:
		w.statHardCap.Add(1)
	}
	return true
}

// ReleaseAll releases every active shape, iterating a snapshot
func (w *World) ReleaseAll(reason ReleaseReason) int {
	n := 0
	for _, s := range w.Shapes.Snapshot() {
		if w.Release(s, reason) {
			n++
		}
	}
	return n
}

// uniform returns a duration drawn from [lo, hi)
func (w *World) uniform(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(w.Rng.Int63n(int64(hi-lo)))
}

// between returns a float drawn from [lo, lo+span)
func (w *World) between(lo, span float64) float64 {
	return lo + w.Rng.Float64()*span
}
