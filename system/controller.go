package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
)

// Controller starts and stops the repeating spawn and nudge tasks with page visibility
type Controller struct {
	w       *World
	spawner *Spawner
	nudger  *Nudger

	spawnTimer *engine.Timer
	nudgeTimer *engine.Timer
	initial    []*engine.Timer

	started bool
	visible bool

	statVisible *atomic.Bool
}

// NewController wires a spawner, animator and nudger over w
func NewController(w *World, elements ElementSource) *Controller {
	return &Controller{
		w:           w,
		spawner:     NewSpawner(w, NewAnimator(w)),
		nudger:      NewNudger(w, elements),
		statVisible: w.Status.Bools.Get("scene.visible"),
	}
}

// Spawner returns the controller's spawner
func (c *Controller) Spawner() *Spawner {
	return c.spawner
}

// Nudger returns the controller's nudger
func (c *Controller) Nudger() *Nudger {
	return c.nudger
}

// Visible reports whether the repeating tasks are running
func (c *Controller) Visible() bool {
	return c.visible
}

// Start begins the repeating tasks and schedules the staggered initial spawns
// Calling Start again is a no-op until Teardown
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.startIntervals()

	for i := 0; i < parameter.InitialShapeCount; i++ {
		c.initial = append(c.initial, c.w.Sched.After(time.Duration(i)*parameter.InitialShapeStagger, func(now time.Time) {
			c.spawner.Spawn(now)
		}))
	}
}

// SetVisible stops the repeating tasks when hidden and restarts them with a fresh cadence when shown
// Shapes already on screen keep animating either way
func (c *Controller) SetVisible(visible bool) {
	if !c.started {
		return
	}
	c.stopIntervals()
	if visible {
		c.startIntervals()
	}
	log.Printf("controller: visible=%v active=%d", visible, c.w.Shapes.Len())
}

// Resize updates the viewport used by later spawns
func (c *Controller) Resize(vp scene.Viewport) {
	c.w.Viewport = vp
}

// Teardown cancels every pending task and releases all active shapes
// Returns the number of shapes released
func (c *Controller) Teardown() int {
	c.stopIntervals()
	for _, t := range c.initial {
		t.Cancel()
	}
	c.initial = nil
	c.started = false
	return c.w.ReleaseAll(ReleaseTeardown)
}

func (c *Controller) startIntervals() {
	c.spawnTimer = c.w.Sched.Every(c.spawner.Interval(), func(now time.Time) {
		c.spawner.Spawn(now)
	})
	c.nudgeTimer = c.w.Sched.Every(parameter.NudgeTickInterval, c.nudger.Tick)
	c.visible = true
	c.statVisible.Store(true)
}

func (c *Controller) stopIntervals() {
	c.spawnTimer.Cancel()
	c.nudgeTimer.Cancel()
	c.spawnTimer, c.nudgeTimer = nil, nil
	c.visible = false
	c.statVisible.Store(false)
}
