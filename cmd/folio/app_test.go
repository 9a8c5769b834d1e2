package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/status"
)

// newTestApp builds an app on a simulation screen with posts applied inline
func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 1
	cfg.PublicDir = t.TempDir()
	a := newApp(screen, &cfg, status.NewRegistry(), nil)
	a.post = func(fn func()) { fn() }
	return a
}

func settle(a *app) {
	for i := 0; i < 1000 && a.home.Step(); i++ {
	}
}

func TestHandleQuitKeys(t *testing.T) {
	a := newTestApp(t)
	quits := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	}
	for _, ev := range quits {
		if a.handle(ev) {
			t.Errorf("Expected %s to quit", ev.Name())
		}
	}
	if !a.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("Expected unbound key to keep running")
	}
}

func TestHandleScrollKeys(t *testing.T) {
	a := newTestApp(t)

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone))
	settle(a)
	if a.home.Scroll() != a.home.MaxScroll() {
		t.Errorf("Expected scroll at bottom %v, got %v", a.home.MaxScroll(), a.home.Scroll())
	}

	a.handle(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	settle(a)
	if a.home.Scroll() >= a.home.MaxScroll() {
		t.Errorf("Expected scroll above bottom, got %v", a.home.Scroll())
	}

	a.handle(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	settle(a)
	if a.home.Scroll() != 0 {
		t.Errorf("Expected scroll at top, got %v", a.home.Scroll())
	}
}

func TestHandleFocusDrivesVisibility(t *testing.T) {
	a := newTestApp(t)
	a.ctrl.Start()

	a.handle(tcell.NewEventFocus(false))
	if a.ctrl.Visible() {
		t.Error("Expected hidden after focus loss")
	}
	a.handle(tcell.NewEventFocus(true))
	if !a.ctrl.Visible() {
		t.Error("Expected visible after focus gain")
	}
	a.ctrl.Teardown()
}

func TestHandleResizeUpdatesViewport(t *testing.T) {
	a := newTestApp(t)
	a.screen.(tcell.SimulationScreen).SetSize(60, 20)
	a.handle(tcell.NewEventResize(60, 20))

	vp := a.home.Viewport()
	if vp.Width != 60*8 || vp.Height != 20*16 {
		t.Errorf("Expected 480x320 viewport, got %vx%v", vp.Width, vp.Height)
	}
	if a.world.Viewport != vp {
		t.Errorf("Expected spawn viewport %v, got %v", vp, a.world.Viewport)
	}
}
