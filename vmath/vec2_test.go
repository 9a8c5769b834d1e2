package vmath

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", V(1, 1), V(1, 1), 0},
		{"3-4-5", V(0, 0), V(3, 4), 5},
		{"negative", V(-3, 0), V(0, -4), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBearingPolarRoundTrip(t *testing.T) {
	from := V(10, 10)
	to := V(13, 14)

	theta := Bearing(from, to)
	got := from.Add(Polar(theta, Distance(from, to)))

	if math.Abs(got.X-to.X) > 1e-9 || math.Abs(got.Y-to.Y) > 1e-9 {
		t.Errorf("Expected %v, got %v", to, got)
	}
}

func TestRectCenterAndTranslate(t *testing.T) {
	r := R(10, 20, 100, 50)
	if c := r.Center(); c != V(60, 45) {
		t.Errorf("Expected center (60,45), got %v", c)
	}

	moved := r.Translate(V(5, -5))
	if moved.Center() != V(65, 40) {
		t.Errorf("Expected translated center (65,40), got %v", moved.Center())
	}
	if moved.W != r.W || moved.H != r.H {
		t.Error("Translate must preserve size")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := R(0, 0, 10, 10)
	if !a.Overlaps(R(10, 10, 5, 5)) {
		t.Error("Expected touching rects to overlap")
	}
	if a.Overlaps(R(11, 0, 5, 5)) {
		t.Error("Expected disjoint rects not to overlap")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned value outside range")
	}
}
