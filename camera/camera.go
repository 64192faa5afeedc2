// Package camera holds the view state of the scene and turns it into the
// affine matrix used to draw world space onto the logical canvas.
package camera

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	ErrInvalidZoom   = errors.New("camera: zoom must be positive")
	ErrNotInvertible = errors.New("camera: transform is not invertible")
)

// Camera maps world coordinates to screen coordinates. Position is the world
// point shown at Origin, the screen pivot for rotation and zoom.
type Camera struct {
	Position geom.Vec2
	Rotation float64
	Origin   geom.Vec2

	zoom  float64
	tween *gween.Tween
}

func New(origin geom.Vec2) *Camera {
	return &Camera{Origin: origin, zoom: 1}
}

func (c *Camera) Zoom() float64 { return c.zoom }

// SetZoom sets the zoom factor and cancels a running zoom animation.
func (c *Camera) SetZoom(z float64) error {
	if !(z > 0) || math.IsInf(z, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, z)
	}
	c.zoom = z
	c.tween = nil
	return nil
}

func (c *Camera) SetRotation(radians float64) {
	c.Rotation = radians
}

func (c *Camera) Rotate(delta float64) {
	c.Rotation += delta
}

func (c *Camera) SetOrigin(origin geom.Vec2) {
	c.Origin = origin
}

// Transform composes translate(-Position), rotate(Rotation), scale(Zoom) and
// translate(Origin), in that order.
func (c *Camera) Transform() geom.Affine {
	return geom.Identity().
		Then(geom.Translation(c.Position.MulScalar(-1))).
		Then(geom.Rotation(c.Rotation)).
		Then(geom.Scaling(c.zoom, c.zoom)).
		Then(geom.Translation(c.Origin))
}

func (c *Camera) InverseTransform() (geom.Affine, error) {
	inv, ok := c.Transform().Invert()
	if !ok {
		return geom.Affine{}, ErrNotInvertible
	}
	return inv, nil
}

func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return c.Transform().Apply(p)
}

func (c *Camera) ScreenToWorld(p geom.Vec2) (geom.Vec2, error) {
	inv, err := c.InverseTransform()
	if err != nil {
		return geom.Vec2{}, err
	}
	return inv.Apply(p), nil
}

// Follow moves Position toward target. A smoothing of 1 snaps to the target;
// smaller values close that fraction of the gap per call.
func (c *Camera) Follow(target geom.Vec2, smoothing float64) {
	smoothing = math.Max(0, math.Min(1, smoothing))
	c.Position = c.Position.Add(target.Sub(c.Position).MulScalar(smoothing))
}

// ZoomTo animates the zoom toward target over the given number of seconds.
// A non-positive duration applies the zoom at once.
func (c *Camera) ZoomTo(target, seconds float64) error {
	if !(target > 0) || math.IsInf(target, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidZoom, target)
	}
	if !(seconds > 0) {
		return c.SetZoom(target)
	}
	c.tween = gween.New(float32(c.zoom), float32(target), float32(seconds), ease.OutQuad)
	return nil
}

// Zooming reports whether a ZoomTo animation is still running.
func (c *Camera) Zooming() bool {
	return c.tween != nil
}

// Update advances the zoom animation by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.tween == nil || !(dt > 0) {
		return
	}
	z, done := c.tween.Update(float32(dt))
	if z > 0 {
		c.zoom = float64(z)
	}
	if done {
		c.tween = nil
	}
}

// VisibleBounds returns the world-space box covering the screen rectangle
// [0, 2*Origin], which is the whole screen while Origin is its center.
func (c *Camera) VisibleBounds() (geom.Rect, error) {
	inv, err := c.InverseTransform()
	if err != nil {
		return geom.Rect{}, err
	}
	w, h := 2*c.Origin.X, 2*c.Origin.Y
	corners := [4]geom.Vec2{
		inv.Apply(geom.V(0, 0)),
		inv.Apply(geom.V(w, 0)),
		inv.Apply(geom.V(0, h)),
		inv.Apply(geom.V(w, h)),
	}
	out := geom.NewRect(corners[0].X, corners[0].Y, 0, 0)
	for _, p := range corners[1:] {
		out = out.Union(geom.NewRect(p.X, p.Y, 0, 0))
	}
	return out, nil
}
