// Package canvas fits a fixed logical resolution into a window of any size,
// keeping the aspect ratio and centering the result with letterbox bars.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/automoto/hitbox-sandbox/geom"
)

var (
	ErrInvalidDimensions = errors.New("canvas: dimensions must be positive")
	ErrNoPhysicalSize    = errors.New("canvas: physical size not set")
)

// Scaler tracks the logical canvas size and the physical surface it is
// presented on. The destination rect is recomputed on every accepted change.
type Scaler struct {
	logicalW, logicalH   int
	physicalW, physicalH int

	scale float64
	dest  image.Rectangle
}

func NewScaler(logicalW, logicalH int) (*Scaler, error) {
	if logicalW <= 0 || logicalH <= 0 {
		return nil, fmt.Errorf("%w: logical %dx%d", ErrInvalidDimensions, logicalW, logicalH)
	}
	return &Scaler{logicalW: logicalW, logicalH: logicalH}, nil
}

// SetPhysicalSize records the surface size. A rejected size leaves the
// previous state untouched.
func (s *Scaler) SetPhysicalSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: physical %dx%d", ErrInvalidDimensions, w, h)
	}
	if w == s.physicalW && h == s.physicalH {
		return nil
	}
	s.physicalW, s.physicalH = w, h
	s.recompute()
	return nil
}

func (s *Scaler) recompute() {
	lw, lh := float64(s.logicalW), float64(s.logicalH)
	s.scale = math.Min(float64(s.physicalW)/lw, float64(s.physicalH)/lh)
	destW := int(math.Round(lw * s.scale))
	destH := int(math.Round(lh * s.scale))
	x := (s.physicalW - destW) / 2
	y := (s.physicalH - destH) / 2
	s.dest = image.Rect(x, y, x+destW, y+destH)
}

func (s *Scaler) hasPhysical() bool {
	return s.physicalW > 0 && s.physicalH > 0
}

// DestinationRect is where the logical canvas lands on the physical surface.
func (s *Scaler) DestinationRect() (image.Rectangle, error) {
	if !s.hasPhysical() {
		return image.Rectangle{}, ErrNoPhysicalSize
	}
	return s.dest, nil
}

// Scale is the uniform logical-to-physical factor, 0 before a physical size is set.
func (s *Scaler) Scale() float64 {
	return s.scale
}

func (s *Scaler) LogicalSize() (int, int) {
	return s.logicalW, s.logicalH
}

func (s *Scaler) PhysicalSize() (int, int) {
	return s.physicalW, s.physicalH
}

// PresentTransform maps logical pixels onto the destination rect. The
// factors come from the rounded rect size so the blit fills it exactly.
func (s *Scaler) PresentTransform() geom.Affine {
	if !s.hasPhysical() {
		return geom.Identity()
	}
	sx := float64(s.dest.Dx()) / float64(s.logicalW)
	sy := float64(s.dest.Dy()) / float64(s.logicalH)
	return geom.Scaling(sx, sy).Then(geom.Translation(geom.V(float64(s.dest.Min.X), float64(s.dest.Min.Y))))
}

// PhysicalToLogical maps a point on the physical surface to canvas pixels.
// ok is false for points in the letterbox bars or before a physical size is set.
func (s *Scaler) PhysicalToLogical(p geom.Vec2) (geom.Vec2, bool) {
	if !s.hasPhysical() {
		return geom.Vec2{}, false
	}
	inv, ok := s.PresentTransform().Invert()
	if !ok {
		return geom.Vec2{}, false
	}
	l := inv.Apply(p)
	bounds := geom.NewRect(0, 0, float64(s.logicalW), float64(s.logicalH))
	if !bounds.Contains(l) {
		return geom.Vec2{}, false
	}
	return l, true
}
