package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func nearVec(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", Vec2{}, Vec2{}},
		{"axis", V(0, -3), V(0, -1)},
		{"diagonal", V(1, 1), V(1/math.Sqrt2, 1/math.Sqrt2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Fatalf("Normalized(%v) produced NaN", tt.in)
			}
			if !nearVec(got, tt.want) {
				t.Errorf("Normalized(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	a, b := V(3, 4), V(1, -2)
	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.MulScalar(2); got != V(6, 8) {
		t.Errorf("MulScalar = %v", got)
	}
	if a.Magnitude() != 5 || LenSq(a) != 25 {
		t.Errorf("Magnitude/LenSq = %v/%v", a.Magnitude(), LenSq(a))
	}
	if DistSq(a, b) != 40 {
		t.Errorf("DistSq = %v", DistSq(a, b))
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		p    Vec2
		want bool
	}{
		{V(0, 0), true},
		{V(9.999, 9.999), true},
		{V(10, 5), false},
		{V(5, 10), false},
		{V(-0.001, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectOverlapsStrict(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"shared right edge", NewRect(10, 0, 10, 10), false},
		{"shared bottom edge", NewRect(0, 10, 10, 10), false},
		{"shared corner", NewRect(10, 10, 5, 5), false},
		{"one unit overlap", NewRect(9, 0, 10, 10), true},
		{"contained", NewRect(2, 2, 1, 1), true},
		{"apart", NewRect(30, 30, 1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClampAndCenter(t *testing.T) {
	r := RectFromCenter(V(500, 100), 200, 200)
	if r.Min != V(400, 0) {
		t.Fatalf("RectFromCenter min = %v", r.Min)
	}
	if r.Center() != V(500, 100) {
		t.Errorf("Center = %v", r.Center())
	}
	if got := r.Clamp(V(700, 50)); got != V(600, 50) {
		t.Errorf("Clamp outside = %v", got)
	}
	if got := r.Clamp(V(450, 50)); got != V(450, 50) {
		t.Errorf("Clamp inside = %v", got)
	}
}

func TestCircleContainsStrict(t *testing.T) {
	c := Circle{Center: V(0, 0), R: 5}
	if c.Contains(V(5, 0)) {
		t.Error("boundary point should be outside")
	}
	if !c.Contains(V(4.999, 0)) {
		t.Error("inner point should be inside")
	}
	if got := c.Bounds(); got != NewRect(-5, -5, 10, 10) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestAffineComposition(t *testing.T) {
	m := Identity().
		Then(Translation(V(-100, -100))).
		Then(Scaling(2, 2)).
		Then(Translation(V(640, 360)))

	if got := m.Apply(V(100, 100)); got != V(640, 360) {
		t.Errorf("pivot maps to %v", got)
	}
	if got := m.Apply(V(110, 100)); got != V(660, 360) {
		t.Errorf("offset point maps to %v", got)
	}
	if got := m.ApplyVector(V(1, 1)); got != V(2, 2) {
		t.Errorf("ApplyVector = %v", got)
	}
}

func TestAffineRotation(t *testing.T) {
	r := Rotation(math.Pi / 2)
	if got := r.Apply(V(1, 0)); !nearVec(got, V(0, 1)) {
		t.Errorf("rotate (1,0) = %v, want (0,1)", got)
	}
}

func TestAffineInvert(t *testing.T) {
	m := Translation(V(-30, 12)).
		Then(Rotation(0.7)).
		Then(Scaling(1.5, 1.5)).
		Then(Translation(V(640, 360)))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible")
	}
	for _, p := range []Vec2{V(0, 0), V(30, -12), V(1000, -250)} {
		if got := inv.Apply(m.Apply(p)); !nearVec(got, p) {
			t.Errorf("round trip %v -> %v", p, got)
		}
	}
	if !nearVec(m.Mul(inv).Apply(V(7, 9)), V(7, 9)) {
		t.Error("m * inv is not identity")
	}

	if _, ok := Scaling(0, 1).Invert(); ok {
		t.Error("singular matrix reported invertible")
	}
}
