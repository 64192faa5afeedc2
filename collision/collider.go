// Package collision implements the hitbox shapes bound to entities.
//
// A Collider is a closed sum over {circle, axis-aligned rect}. All pairwise
// logic lives in one switch in Intersects so adding a shape touches a single
// dispatch site. Every test excludes boundaries: touching shapes do not
// collide and boundary points are not contained.
package collision

import (
	"errors"
	"fmt"

	"github.com/automoto/hitbox-sandbox/geom"
)

var (
	// ErrUnsupportedShape means a dispatch met a shape combination it does not know.
	// It is a programming error, not a runtime condition.
	ErrUnsupportedShape = errors.New("collision: unsupported shape")
	ErrNegativeSize     = errors.New("collision: negative size")
)

// Kind tags the active variant of a Collider. The zero Kind is no shape.
type Kind uint8

const (
	KindNone Kind = iota
	KindCircle
	KindRect
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

type Collider struct {
	kind   Kind
	circle geom.Circle
	rect   geom.Rect
	// extra is added to the rect corner on every Recenter so the hitbox can
	// sit away from the entity's nominal position.
	extra geom.Vec2
}

func NewCircle(center geom.Vec2, radius float64) (*Collider, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius %v", ErrNegativeSize, radius)
	}
	return &Collider{
		kind:   KindCircle,
		circle: geom.Circle{Center: center, R: radius},
	}, nil
}

// NewRect creates a rect collider of size w x h centered on center.
func NewRect(center geom.Vec2, w, h float64) (*Collider, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrNegativeSize, w, h)
	}
	return &Collider{
		kind: KindRect,
		rect: geom.RectFromCenter(center, w, h),
	}, nil
}

// Kind is KindNone for a nil collider.
func (c *Collider) Kind() Kind {
	if c == nil {
		return KindNone
	}
	return c.kind
}

func (c *Collider) Circle() geom.Circle {
	if c == nil {
		return geom.Circle{}
	}
	return c.circle
}

func (c *Collider) Rect() geom.Rect {
	if c == nil {
		return geom.Rect{}
	}
	return c.rect
}

func (c *Collider) ExtraOffset() geom.Vec2 {
	if c == nil {
		return geom.Vec2{}
	}
	return c.extra
}

// SetExtraOffset sets the offset applied by the next Recenter. Circles ignore it.
func (c *Collider) SetExtraOffset(dx, dy float64) {
	if c.Kind() != KindRect {
		return
	}
	c.extra = geom.Vec2{X: dx, Y: dy}
}

// Recenter moves the shape to anchor. It must run after every change of the
// owner's position and before the collider is queried in the same tick.
// A nil collider has nothing to move.
func (c *Collider) Recenter(anchor geom.Vec2) {
	if c == nil {
		return
	}
	switch c.kind {
	case KindCircle:
		c.circle.Center = anchor
	case KindRect:
		c.rect.Min = anchor.Sub(c.rect.HalfExtent()).Add(c.extra)
	}
}

// Bounds is the axis-aligned box around the current shape.
func (c *Collider) Bounds() geom.Rect {
	switch c.Kind() {
	case KindCircle:
		return c.circle.Bounds()
	case KindRect:
		return c.rect
	default:
		return geom.Rect{}
	}
}

// Center is the circle center or the rect midpoint.
func (c *Collider) Center() geom.Vec2 {
	switch c.Kind() {
	case KindCircle:
		return c.circle.Center
	case KindRect:
		return c.rect.Center()
	default:
		return geom.Vec2{}
	}
}

func (c *Collider) ContainsPoint(p geom.Vec2) (bool, error) {
	switch c.Kind() {
	case KindCircle:
		return c.circle.Contains(p), nil
	case KindRect:
		return c.rect.Contains(p), nil
	default:
		return false, fmt.Errorf("%w: contains on %s", ErrUnsupportedShape, c.Kind())
	}
}

// Intersects reports whether c and other overlap. The result does not depend on argument order.
func (c *Collider) Intersects(other *Collider) (bool, error) {
	if c == nil || other == nil {
		return false, fmt.Errorf("%w: %s vs %s", ErrUnsupportedShape, c.Kind(), other.Kind())
	}
	switch {
	case c.kind == KindCircle && other.kind == KindCircle:
		return circlesOverlap(c.circle, other.circle), nil
	case c.kind == KindCircle && other.kind == KindRect:
		return circleRectOverlap(c.circle, other.rect), nil
	case c.kind == KindRect && other.kind == KindCircle:
		return circleRectOverlap(other.circle, c.rect), nil
	case c.kind == KindRect && other.kind == KindRect:
		return c.rect.Overlaps(other.rect), nil
	default:
		return false, fmt.Errorf("%w: %s vs %s", ErrUnsupportedShape, c.kind, other.kind)
	}
}

func circlesOverlap(a, b geom.Circle) bool {
	sum := a.R + b.R
	return geom.DistSq(a.Center, b.Center) < sum*sum
}

// circleRectOverlap tests the circle against the closest point of the rect.
func circleRectOverlap(c geom.Circle, r geom.Rect) bool {
	closest := r.Clamp(c.Center)
	return geom.DistSq(c.Center, closest) < c.R*c.R
}
