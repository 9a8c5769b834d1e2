package system

import (
	"log"
	"time"

	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/parameter"
	"github.com/lixenwraith/folio/scene"
)

// Spawner creates shapes with randomized geometry, image and motion
type Spawner struct {
	w        *World
	animator *Animator
}

// NewSpawner creates a spawner that hands new shapes to animator
func NewSpawner(w *World, animator *Animator) *Spawner {
	return &Spawner{w: w, animator: animator}
}

// Interval rolls a spawn cadence for the current viewport
func (sp *Spawner) Interval() time.Duration {
	if sp.w.Viewport.Mobile() {
		return sp.w.uniform(parameter.SpawnIntervalMobileMin, parameter.SpawnIntervalMobileMax)
	}
	return sp.w.uniform(parameter.SpawnIntervalDesktopMin, parameter.SpawnIntervalDesktopMax)
}

// Spawn creates one shape, registers it, starts its motion and arms its hard cap
// Returns nil if the surface refused the shape
func (sp *Spawner) Spawn(now time.Time) *scene.Shape {
	w := sp.w
	mobile := w.Viewport.Mobile()

	sizeBase, sizeVar := parameter.ShapeSizeDesktopBase, parameter.ShapeSizeDesktopVariation
	lineBase, lineVar := parameter.OutlineDesktopBase, parameter.OutlineDesktopVariation
	if mobile {
		sizeBase, sizeVar = parameter.ShapeSizeMobileBase, parameter.ShapeSizeMobileVariation
		lineBase, lineVar = parameter.OutlineMobileBase, parameter.OutlineMobileVariation
	}

	kind := scene.Catalog[w.Rng.Intn(len(scene.Catalog))]
	geom := scene.NewGeometry(kind, w.between(sizeBase, sizeVar))

	w.nextID++
	s := &scene.Shape{
		ID:           w.nextID,
		Geometry:     geom,
		OutlineWidth: w.between(lineBase, lineVar),
		Outline:      parameter.OutlinePalette[w.Rng.Intn(len(parameter.OutlinePalette))],
		Source:       w.Pool.Pick(w.Rng),
		SpawnedAt:    now,
	}

	top := w.Rng.Float64() * (w.Viewport.Height - geom.Extent())
	s.Origin.X = -parameter.OffscreenMargin
	s.Origin.Y = max(0, top)

	async := w.Loader != nil && w.Post != nil
	if !async {
		sp.loadImage(s)
	}

	handle, err := w.Surface.Create(scene.ShapeSpec{
		ID:           s.ID,
		Geometry:     s.Geometry,
		OutlineWidth: s.OutlineWidth,
		Outline:      s.Outline,
		Source:       s.Source,
		Image:        s.Image,
		Placeholder:  s.Placeholder,
		Origin:       s.Origin,
		Opacity:      parameter.ShapeOpacity,
	})
	if err != nil {
		log.Printf("spawn: surface create failed for shape %d: %v", s.ID, err)
		return nil
	}
	s.Handle = handle
	w.Shapes.Insert(s)
	if async {
		sp.loadAsync(s)
	}

	sp.animator.Start(s, now)
	s.Attach(w.Sched.After(parameter.ShapeHardCap, func(time.Time) {
		w.Release(s, ReleaseHardCap)
	}))

	if w.Cue != nil {
		w.Cue.Play()
	}

	w.statSpawned.Add(1)
	w.statActive.Store(int64(w.Shapes.Len()))
	return s
}

// loadImage resolves the shape's source, substituting the placeholder on failure
func (sp *Spawner) loadImage(s *scene.Shape) {
	w := sp.w
	if w.Loader == nil {
		return
	}
	img, err := w.Loader.Load(s.Source)
	if err != nil {
		sp.usePlaceholder(s, err)
		return
	}
	s.Image = img
}

// loadAsync decodes the shape's image off the loop and attaches it on the loop
// A shape released before its image arrives drops the result
func (sp *Spawner) loadAsync(s *scene.Shape) {
	w := sp.w
	loader, post, src := w.Loader, w.Post, s.Source
	engine.Go(func() {
		img, err := loader.Load(src)
		post(func() {
			if s.Released() {
				return
			}
			if err != nil {
				sp.usePlaceholder(s, err)
			} else {
				s.Image = img
			}
			w.Surface.SetImage(s.Handle, s.Image, s.Placeholder)
		})
	})
}

func (sp *Spawner) usePlaceholder(s *scene.Shape, err error) {
	log.Printf("spawn: image %q failed to load, using placeholder: %v", s.Source, err)
	s.Placeholder = true
	s.Image = scene.Placeholder(int(s.Geometry.Width), int(s.Geometry.Height))
	sp.w.statPlaceholder.Add(1)
}
