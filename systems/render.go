package systems

import (
	"github.com/automoto/hitbox-sandbox/assets/images"
	"github.com/automoto/hitbox-sandbox/components"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// GeoM converts an affine map into ebiten's matrix.
func GeoM(m geom.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

// DrawScene renders the scene background and every sprite through the camera.
func DrawScene(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	cam := components.Camera.Get(cameraEntry).View
	view := GeoM(cam.Transform())

	if sceneEntry, ok := components.Scene.First(ecs.World); ok {
		if bg := components.Scene.Get(sceneEntry).Background; bg != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Concat(view)
			screen.DrawImage(bg, drawOp)
		}
	}

	// Culling falls back to drawing everything when the view cannot be inverted.
	visible, cullErr := cam.VisibleBounds()

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || !e.HasComponent(components.Mover) {
			return
		}
		pos := components.Mover.Get(e).Position
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()

		if cullErr == nil {
			box := geom.NewRect(pos.X-sprite.PivotX, pos.Y-sprite.PivotY, float64(w), float64(h))
			if !visible.Overlaps(box) {
				return
			}
		}

		var g ebiten.GeoM
		g.Translate(-sprite.PivotX, -sprite.PivotY)
		if e.HasComponent(components.Player) && components.Player.Get(e).Facing < 0 {
			g.Scale(-1, 1)
		}
		g.Translate(pos.X, pos.Y)
		g.Concat(view)

		if sprite.Tint.A > 0 && images.TintShader != nil {
			shaderOp.GeoM = g
			shaderOp.Images[0] = sprite.Image
			shaderOp.Uniforms = map[string]any{
				"TintColor": []float32{
					float32(sprite.Tint.R) / 255,
					float32(sprite.Tint.G) / 255,
					float32(sprite.Tint.B) / 255,
					float32(sprite.Tint.A) / 255,
				},
			}
			screen.DrawRectShader(w, h, images.TintShader, shaderOp)
			shaderOp.Images[0] = nil
			return
		}

		drawOp.GeoM = g
		drawOp.ColorScale.Reset()
		screen.DrawImage(sprite.Image, drawOp)
	})
}
