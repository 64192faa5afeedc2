// Package geom holds the 2D value types shared by collision, camera and canvas code.
// Nothing here allocates or depends on the renderer.
package geom

import "github.com/yohamta/donburi/features/math"

// Vec2 is used both as a position and as a displacement.
type Vec2 = math.Vec2

func V(x, y float64) Vec2 {
	return math.NewVec2(x, y)
}

// LenSq is the squared length. Prefer it over Magnitude for comparisons.
func LenSq(v Vec2) float64 {
	return v.Dot(&v)
}

func DistSq(a, b Vec2) float64 {
	return LenSq(a.Sub(b))
}
