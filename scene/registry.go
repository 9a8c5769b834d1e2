package scene

// Registry holds the active shapes in insertion order
// Mutated only by spawn (Insert) and release (Remove); readers take a Snapshot
type Registry struct {
	shapes map[uint64]*Shape
	order  []uint64

	inserted uint64
	removed  uint64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{shapes: make(map[uint64]*Shape)}
}

// Insert adds s, returns false if its ID is already present
func (r *Registry) Insert(s *Shape) bool {
	if _, ok := r.shapes[s.ID]; ok {
		return false
	}
	r.shapes[s.ID] = s
	r.order = append(r.order, s.ID)
	r.inserted++
	return true
}

// Remove deletes the shape with id, returns false if it was not present
func (r *Registry) Remove(id uint64) (*Shape, bool) {
	s, ok := r.shapes[id]
	if !ok {
		return nil, false
	}
	delete(r.shapes, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.removed++
	return s, true
}

// Get returns the shape with id
func (r *Registry) Get(id uint64) (*Shape, bool) {
	s, ok := r.shapes[id]
	return s, ok
}

// Len returns the number of active shapes
func (r *Registry) Len() int {
	return len(r.shapes)
}

// Snapshot returns the active shapes in insertion order
// The slice is a copy, safe to hold while shapes are removed
func (r *Registry) Snapshot() []*Shape {
	out := make([]*Shape, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.shapes[id])
	}
	return out
}

// Inserted returns the number of shapes ever inserted
func (r *Registry) Inserted() uint64 {
	return r.inserted
}

// Removed returns the number of shapes ever removed
func (r *Registry) Removed() uint64 {
	return r.removed
}
