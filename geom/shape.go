package geom

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and size.
//
// Point containment is half-open ([Left, Right) x [Top, Bottom)) and
// rect/rect overlap is strict, so rectangles that only share an edge
// do not overlap.
type Rect struct {
	Min  Vec2
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Vec2{X: x, Y: y}, W: w, H: h}
}

// RectFromCenter builds a rect of the given size centered on c.
func RectFromCenter(c Vec2, w, h float64) Rect {
	return Rect{Min: Vec2{X: c.X - w/2, Y: c.Y - h/2}, W: w, H: h}
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Right() float64  { return r.Min.X + r.W }
func (r Rect) Bottom() float64 { return r.Min.Y + r.H }

func (r Rect) Max() Vec2 {
	return Vec2{X: r.Right(), Y: r.Bottom()}
}

func (r Rect) HalfExtent() Vec2 {
	return Vec2{X: r.W / 2, Y: r.H / 2}
}

func (r Rect) Center() Vec2 {
	return r.Min.Add(r.HalfExtent())
}

func (r Rect) Translate(d Vec2) Rect {
	r.Min = r.Min.Add(d)
	return r
}

func (r Rect) Contains(p Vec2) bool {
	return r.Left() <= p.X && p.X < r.Right() &&
		r.Top() <= p.Y && p.Y < r.Bottom()
}

// Overlaps reports whether the two rectangles share a region of non-zero extent on both axes.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Clamp returns the point of r (edges included) closest to p.
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: clamp(p.X, r.Left(), r.Right()),
		Y: clamp(p.Y, r.Top(), r.Bottom()),
	}
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.Left(), o.Left())
	minY := math.Min(r.Top(), o.Top())
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Bottom(), o.Bottom())
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Circle is a center point and a radius. Containment is strict: boundary points are outside.
type Circle struct {
	Center Vec2
	R      float64
}

func (c Circle) Contains(p Vec2) bool {
	return DistSq(c.Center, p) < c.R*c.R
}

// Bounds is the axis-aligned box enclosing the circle.
func (c Circle) Bounds() Rect {
	return NewRect(c.Center.X-c.R, c.Center.Y-c.R, 2*c.R, 2*c.R)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
