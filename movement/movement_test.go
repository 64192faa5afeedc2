package movement

import (
	"math"
	"testing"

	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/geom"
)

type recorder struct {
	calls []geom.Vec2
}

func (r *recorder) Recenter(p geom.Vec2) {
	r.calls = append(r.calls, p)
}

func TestDirection(t *testing.T) {
	d := math.Sqrt2 / 2
	tests := []struct {
		name string
		in   Intent
		want geom.Vec2
	}{
		{"none", Intent{}, geom.V(0, 0)},
		{"right", Intent{Right: true}, geom.V(1, 0)},
		{"up", Intent{Up: true}, geom.V(0, -1)},
		{"opposite cancel", Intent{Left: true, Right: true}, geom.V(0, 0)},
		{"all four", Intent{true, true, true, true}, geom.V(0, 0)},
		{"down right", Intent{Down: true, Right: true}, geom.V(d, d)},
		{"up left", Intent{Up: true, Left: true}, geom.V(-d, -d)},
		{"three keys", Intent{Up: true, Left: true, Right: true}, geom.V(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Direction()
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
			if math.IsNaN(got.X) || math.IsNaN(got.Y) {
				t.Errorf("Direction() produced NaN")
			}
		})
	}
}

func TestStepDiagonalSpeed(t *testing.T) {
	m := Mover{Position: geom.V(300, 300), Speed: 300}
	delta := m.Step(Intent{Down: true, Right: true}, 0.5, nil)
	if math.Abs(delta.Magnitude()-150) > 1e-9 {
		t.Errorf("diagonal step length = %v, want 150", delta.Magnitude())
	}
	if math.Abs(m.Position.X-(300+150/math.Sqrt2)) > 1e-9 {
		t.Errorf("position = %v", m.Position)
	}
}

func TestStepAlwaysRecenters(t *testing.T) {
	tests := []struct {
		name string
		in   Intent
		dt   float64
		want geom.Vec2
	}{
		{"moving", Intent{Left: true}, 0.1, geom.V(270, 300)},
		{"stationary", Intent{}, 0.1, geom.V(300, 300)},
		{"negative dt", Intent{Left: true}, -1, geom.V(300, 300)},
		{"NaN dt", Intent{Left: true}, math.NaN(), geom.V(300, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mover{Position: geom.V(300, 300), Speed: 300}
			var r recorder
			m.Step(tt.in, tt.dt, &r)
			if len(r.calls) != 1 {
				t.Fatalf("Recenter called %d times", len(r.calls))
			}
			if math.Abs(r.calls[0].X-tt.want.X) > 1e-9 || math.Abs(r.calls[0].Y-tt.want.Y) > 1e-9 {
				t.Errorf("recentered on %v, want %v", r.calls[0], tt.want)
			}
			if r.calls[0] != m.Position {
				t.Errorf("anchor %v differs from position %v", r.calls[0], m.Position)
			}
		})
	}
}

func TestStepMovesCollider(t *testing.T) {
	hitbox, err := collision.NewRect(geom.V(0, 0), 80, 30)
	if err != nil {
		t.Fatal(err)
	}
	hitbox.SetExtraOffset(0, 25)
	m := Mover{Position: geom.V(300, 300), Speed: 300}

	m.Step(Intent{}, 1.0/60, hitbox)
	if got := hitbox.Rect(); got != geom.NewRect(260, 310, 80, 30) {
		t.Fatalf("hitbox after first tick = %+v", got)
	}

	m.Position = geom.V(0, 0)
	m.Step(Intent{}, 1.0/60, hitbox)
	if got := hitbox.Rect().Min; got != geom.V(-40, 10) {
		t.Errorf("hitbox did not follow a teleport: %v", got)
	}
}

func TestStepWithEmptyColliderSlot(t *testing.T) {
	// A collider component that was never filled holds a nil pointer.
	var hitbox *collision.Collider
	m := Mover{Position: geom.V(300, 300), Speed: 300}

	m.Step(Intent{Right: true}, 0.5, hitbox)
	if m.Position != geom.V(450, 300) {
		t.Errorf("Position = %v", m.Position)
	}
}
