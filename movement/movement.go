// Package movement turns directional intent into per-tick displacement.
package movement

import (
	"math"

	"github.com/automoto/hitbox-sandbox/geom"
)

// Intent is the set of directions held during a tick.
type Intent struct {
	Up, Down, Left, Right bool
}

// Direction combines the held directions into a unit vector. Opposite keys
// cancel and no keys yields the zero vector.
func (in Intent) Direction() geom.Vec2 {
	var d geom.Vec2
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d.Normalized()
}

// Anchor is anything that follows the mover's position, usually its collider.
type Anchor interface {
	Recenter(anchor geom.Vec2)
}

// Mover is a position moved at a fixed Speed in units per second.
type Mover struct {
	Position geom.Vec2
	Speed    float64
}

// Step advances the mover by dt seconds and recenters anchor on the new
// position. The anchor is recentered even when the mover stands still so it
// never lags behind a position set elsewhere. anchor may be nil, and a
// collider anchor may be a nil pointer.
func (m *Mover) Step(in Intent, dt float64, anchor Anchor) geom.Vec2 {
	if !(dt > 0) || math.IsInf(dt, 1) {
		dt = 0
	}
	delta := in.Direction().MulScalar(m.Speed * dt)
	m.Position = m.Position.Add(delta)
	if anchor != nil {
		anchor.Recenter(m.Position)
	}
	return delta
}
