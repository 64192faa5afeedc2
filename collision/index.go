package collision

import (
	"fmt"
	"math"

	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/solarlune/resolv"
)

// Index is a broad phase over a resolv.Space. It only narrows the set of
// colliders worth testing; Intersects always makes the final call.
//
// Registered boxes are padded by one unit on every side because resolv maps
// bounds to cells with an inclusive -1 on the far edge, which would drop
// sub-unit overlaps across a cell border.
type Index struct {
	space   *resolv.Space
	bounds  geom.Rect
	objects map[*Collider]*resolv.Object
	order   []*Collider
}

const indexPad = 1.0

func NewIndex(width, height, cellSize int) (*Index, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("collision: invalid index size %dx%d cell %d", width, height, cellSize)
	}
	// resolv only builds whole cells, so round the space up to cover a
	// trailing partial cell; bounds keeps the real size.
	cols := (width + cellSize - 1) / cellSize
	rows := (height + cellSize - 1) / cellSize
	return &Index{
		space:   resolv.NewSpace(cols*cellSize, rows*cellSize, cellSize, cellSize),
		bounds:  geom.NewRect(0, 0, float64(width), float64(height)),
		objects: make(map[*Collider]*resolv.Object),
	}, nil
}

// Insert registers c with the given resolv tags. Inserting twice only retags.
func (ix *Index) Insert(c *Collider, tags ...string) {
	if obj, ok := ix.objects[c]; ok {
		obj.AddTags(tags...)
		return
	}
	b := padded(c.Bounds())
	obj := resolv.NewObject(b.Min.X, b.Min.Y, b.W, b.H, tags...)
	obj.Data = c
	ix.space.Add(obj)
	ix.objects[c] = obj
	ix.order = append(ix.order, c)
}

func (ix *Index) Remove(c *Collider) {
	obj, ok := ix.objects[c]
	if !ok {
		return
	}
	ix.space.Remove(obj)
	delete(ix.objects, c)
	for i, o := range ix.order {
		if o == c {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
}

func (ix *Index) Len() int {
	return len(ix.order)
}

// Boxes returns the padded boxes registered with the space, in insertion order.
func (ix *Index) Boxes() []geom.Rect {
	out := make([]geom.Rect, 0, len(ix.order))
	for _, c := range ix.order {
		o := ix.objects[c]
		out = append(out, geom.NewRect(o.X, o.Y, o.W, o.H))
	}
	return out
}

// Sync moves c's cell registration to its current shape. Call it after Recenter.
func (ix *Index) Sync(c *Collider) {
	obj, ok := ix.objects[c]
	if !ok {
		return
	}
	b := padded(c.Bounds())
	obj.X, obj.Y, obj.W, obj.H = b.Min.X, b.Min.Y, b.W, b.H
	obj.Update()
}

// Candidates returns colliders sharing a cell with c, filtered by tags.
// c must be registered.
func (ix *Index) Candidates(c *Collider, tags ...string) []*Collider {
	obj, ok := ix.objects[c]
	if !ok {
		return nil
	}
	if !ix.inside(c.Bounds()) {
		return ix.filter(c, tags)
	}
	check := obj.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	out := make([]*Collider, 0, len(check.Objects))
	seen := make(map[*Collider]bool, len(check.Objects))
	for _, o := range check.Objects {
		other, ok := o.Data.(*Collider)
		if !ok || other == c || seen[other] {
			continue
		}
		seen[other] = true
		out = append(out, other)
	}
	return out
}

// Overlapping returns every registered collider that intersects c.
// An unsupported pair aborts the query with its error.
func (ix *Index) Overlapping(c *Collider, tags ...string) ([]*Collider, error) {
	var hits []*Collider
	for _, other := range ix.Candidates(c, tags...) {
		ok, err := c.Intersects(other)
		if err != nil {
			return nil, err
		}
		if ok {
			hits = append(hits, other)
		}
	}
	return hits, nil
}

// At returns the registered colliders containing p.
func (ix *Index) At(p geom.Vec2, tags ...string) ([]*Collider, error) {
	var candidates []*Collider
	if ix.bounds.Contains(p) {
		probe := resolv.NewObject(p.X-indexPad, p.Y-indexPad, 2*indexPad, 2*indexPad)
		ix.space.Add(probe)
		defer ix.space.Remove(probe)
		if check := probe.Check(0, 0, tags...); check != nil {
			for _, o := range check.Objects {
				if other, ok := o.Data.(*Collider); ok {
					candidates = append(candidates, other)
				}
			}
		}
	} else {
		candidates = ix.filter(nil, tags)
	}

	var hits []*Collider
	seen := make(map[*Collider]bool, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		ok, err := c.ContainsPoint(p)
		if err != nil {
			return nil, err
		}
		if ok {
			hits = append(hits, c)
		}
	}
	return hits, nil
}

func (ix *Index) inside(r geom.Rect) bool {
	p := padded(r)
	return ix.bounds.Contains(p.Min) && p.Right() <= ix.bounds.Right() && p.Bottom() <= ix.bounds.Bottom()
}

// filter is the linear fallback for shapes the space does not fully cover.
func (ix *Index) filter(skip *Collider, tags []string) []*Collider {
	var out []*Collider
	for _, other := range ix.order {
		if other == skip {
			continue
		}
		if len(tags) > 0 && !ix.objects[other].HasTags(tags...) {
			continue
		}
		out = append(out, other)
	}
	return out
}

func padded(r geom.Rect) geom.Rect {
	return geom.NewRect(
		math.Floor(r.Min.X)-indexPad,
		math.Floor(r.Min.Y)-indexPad,
		math.Ceil(r.W)+2*indexPad+1,
		math.Ceil(r.H)+2*indexPad+1,
	)
}
