package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	indexBoxColor = color.RGBA{R: 0, G: 200, B: 255, A: 160}
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawColliders overlays every hitbox in world space. Zones are green while
// a player overlaps them and red otherwise.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry).View
	view := cam.Transform()
	zoom := cam.Zoom()

	tags.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		trigger := components.Trigger.Get(e)
		clr := cfg.Render.ZoneIdle
		if trigger.Overlapping {
			clr = cfg.Render.ZoneOverlap
		}
		fillCollider(screen, components.Collider.Get(e).Collider, view, zoom, clr)
		if trigger.Picked {
			strokeCollider(screen, components.Collider.Get(e).Collider, view, zoom, cfg.Yellow)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		fillCollider(screen, components.Collider.Get(e).Collider, view, zoom, cfg.Render.PlayerHitbox)
	})

	if settings.DebugIndex {
		if index := getIndex(ecs); index != nil {
			for _, box := range index.Boxes() {
				var path vector.Path
				quadPath(&path, box, view)
				strokePath(screen, &path, indexBoxColor)
			}
		}
	}
}

func fillCollider(dst *ebiten.Image, c *collision.Collider, view geom.Affine, zoom float64, clr color.RGBA) {
	var path vector.Path
	if !colliderPath(&path, c, view, zoom) {
		return
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

func strokeCollider(dst *ebiten.Image, c *collision.Collider, view geom.Affine, zoom float64, clr color.RGBA) {
	var path vector.Path
	if !colliderPath(&path, c, view, zoom) {
		return
	}
	strokePath(dst, &path, clr)
}

func strokePath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: 2})
	drawVertices(dst, vs, is, clr)
}

// colliderPath traces c in screen space. Rects stay quads under rotation.
func colliderPath(path *vector.Path, c *collision.Collider, view geom.Affine, zoom float64) bool {
	switch c.Kind() {
	case collision.KindCircle:
		circle := c.Circle()
		center := view.Apply(circle.Center)
		path.Arc(float32(center.X), float32(center.Y), float32(circle.R*zoom), 0, 2*math.Pi, vector.Clockwise)
		path.Close()
	case collision.KindRect:
		quadPath(path, c.Rect(), view)
	default:
		return false
	}
	return true
}

func quadPath(path *vector.Path, r geom.Rect, view geom.Affine) {
	corners := [4]geom.Vec2{
		r.Min,
		geom.V(r.Right(), r.Top()),
		r.Max(),
		geom.V(r.Left(), r.Bottom()),
	}
	for i, p := range corners {
		s := view.Apply(p)
		if i == 0 {
			path.MoveTo(float32(s.X), float32(s.Y))
		} else {
			path.LineTo(float32(s.X), float32(s.Y))
		}
	}
	path.Close()
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}
