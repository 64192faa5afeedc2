// Package scenedata reads scene layouts from Tiled TMX files. It has no
// dependencies on ebitengine, donburi, or resolv: pure data only.
package scenedata

import "github.com/automoto/hitbox-sandbox/geom"

// Shape selects the collider variant built for a zone.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

func (s Shape) String() string {
	if s == ShapeCircle {
		return "circle"
	}
	return "rect"
}

// Scene is the layout of one TMX file in world pixels.
type Scene struct {
	Name   string
	Width  int
	Height int
	Spawn  geom.Vec2
	Zones  []Zone
}

// Zone is a trigger area. Center is the object's middle; circles use R,
// rects use W and H.
type Zone struct {
	Name   string
	Label  string // HUD text, defaults to Name
	Shape  Shape
	Center geom.Vec2
	W, H   float64
	R      float64
}
