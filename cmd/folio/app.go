package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/asset"
	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/layout"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/portfolio"
	"github.com/lixenwraith/folio/render"
	"github.com/lixenwraith/folio/status"
	"github.com/lixenwraith/folio/system"
)

// app ties the terminal to one scene
// Everything except event decoding runs on the loop goroutine via post
type app struct {
	screen   tcell.Screen
	loop     *engine.Loop
	world    *system.World
	ctrl     *system.Controller
	home     *layout.Home
	renderer *render.Renderer
	player   *audio.CuePlayer

	post func(fn func())
}

func newApp(screen tcell.Screen, cfg *config.Config, reg *status.Registry, player *audio.CuePlayer) *app {
	grid := render.DefaultGrid
	cols, rows := screen.Size()
	vp := grid.Viewport(cols, rows)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	loop := engine.NewLoop(engine.NewTimeProvider(), time.Second/time.Duration(cfg.FrameRate))
	surface := render.NewTerminalSurface(grid)
	loader := asset.NewDiskLoader(cfg.PublicDir, cfg.ImageCache)

	world := system.NewWorld(loop.Scheduler(), surface, portfolio.Pool(cfg.Categories), reg, rand.New(rand.NewSource(seed)))
	world.Viewport = vp
	world.Loader = loader
	world.Post = loop.Post
	if player != nil {
		world.Cue = player
	}

	home := layout.NewHome(vp, loop.Interval())
	a := &app{
		screen:   screen,
		loop:     loop,
		world:    world,
		ctrl:     system.NewController(world, home),
		home:     home,
		renderer: render.NewRenderer(screen, grid, surface, home, loader),
		player:   player,
	}
	a.post = func(fn func()) { loop.Post(fn) }

	loop.Scheduler().OnFrame(func(time.Time) { home.Step() })
	loop.AfterFrame = a.renderer.Frame
	return a
}

// run blocks until the user quits or the screen closes
func (a *app) run() {
	a.loop.Start()
	a.loop.Do(a.ctrl.Start)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	engine.Go(func() { a.screen.ChannelEvents(events, quit) })

	for ev := range events {
		if !a.handle(ev) {
			break
		}
	}
	close(quit)

	a.loop.Do(func() {
		n := a.ctrl.Teardown()
		log.Printf("folio: released %d shapes on exit", n)
	})
	a.loop.Stop()
}

// handle reacts to one terminal event, false quits
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		vp := a.renderer.Viewport()
		a.post(func() {
			a.ctrl.Resize(vp)
			a.home.Resize(vp)
		})

	case *tcell.EventFocus:
		visible := ev.Focused
		a.post(func() { a.ctrl.SetVisible(visible) })

	case *tcell.EventMouse:
		switch {
		case ev.Buttons()&tcell.WheelUp != 0:
			a.scrollBy(-parameter.ScrollLineStep)
		case ev.Buttons()&tcell.WheelDown != 0:
			a.scrollBy(parameter.ScrollLineStep)
		}

	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.scrollBy(-parameter.ScrollLineStep)
	case tcell.KeyDown:
		a.scrollBy(parameter.ScrollLineStep)
	case tcell.KeyPgUp:
		a.scrollPage(-1)
	case tcell.KeyPgDn:
		a.scrollPage(1)
	case tcell.KeyHome:
		a.post(func() { a.home.ScrollTo(0) })
	case tcell.KeyEnd:
		a.post(func() { a.home.ScrollTo(a.home.MaxScroll()) })
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			a.scrollBy(-parameter.ScrollLineStep)
		case 'j':
			a.scrollBy(parameter.ScrollLineStep)
		case ' ':
			a.scrollPage(1)
		case 'g':
			a.post(func() { a.home.ScrollTo(0) })
		case 'G':
			a.post(func() { a.home.ScrollTo(a.home.MaxScroll()) })
		case 'm':
			if a.player != nil {
				log.Printf("folio: muted=%v", a.player.ToggleMute())
			}
		}
	}
	return true
}

func (a *app) scrollBy(dy float64) {
	a.post(func() { a.home.ScrollBy(dy) })
}

func (a *app) scrollPage(dir float64) {
	a.post(func() { a.home.ScrollBy(dir * a.home.Viewport().Height * parameter.ScrollPageFraction) })
}
