package systems

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/fonts"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// hudLine is one row of the HUD. Numeric readouts use the monospaced face so
// the digits do not jitter while values change.
type hudLine struct {
	text string
	face fonts.FontName
}

// hudReadout is the state the HUD reports, gathered from the world each frame.
type hudReadout struct {
	circle     *geom.Circle // First circle zone, nil when the scene has none
	hitbox     geom.Rect
	zoom       float64
	rotation   float64 // Radians
	hasCamera  bool
	zones      []string
	pointer    geom.Vec2
	pointerOK  bool
	lastPicked string
}

func hudLines(r hudReadout) []hudLine {
	var lines []hudLine
	if r.circle != nil {
		lines = append(lines, hudLine{fmt.Sprintf("Distance to circle: %.1f", r.circle.Center.Distance(r.hitbox.Min)), fonts.Mono})
	}
	lines = append(lines, hudLine{fmt.Sprintf("Hitbox left: %.1f", r.hitbox.Left()), fonts.Mono})

	if r.hasCamera {
		deg := math.Mod(r.rotation*180/math.Pi, 360)
		lines = append(lines, hudLine{fmt.Sprintf("Zoom: %.2f  Rotation: %.0f°", r.zoom, deg), fonts.Mono})
	}

	zones := "none"
	if len(r.zones) > 0 {
		zones = strings.Join(r.zones, ", ")
	}
	lines = append(lines, hudLine{"Zones: " + zones, fonts.HUD})

	if r.pointerOK {
		lines = append(lines, hudLine{fmt.Sprintf("Pointer: %.0f, %.0f", r.pointer.X, r.pointer.Y), fonts.Mono})
	}
	if r.lastPicked != "" {
		lines = append(lines, hudLine{"Picked: " + r.lastPicked, fonts.HUD})
	}
	return lines
}

// DrawHUD prints the readouts in screen space, top-left, with a key help line
// along the bottom edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	r := hudReadout{
		hitbox: components.Collider.Get(playerEntry).Collider.Rect(),
		zones:  components.Player.Get(playerEntry).Zones,
	}
	if circle, ok := firstCircleZone(ecs); ok {
		r.circle = &circle
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		view := components.Camera.Get(cameraEntry).View
		r.hasCamera, r.zoom, r.rotation = true, view.Zoom(), view.Rotation
	}
	if sceneEntry, ok := components.Scene.First(ecs.World); ok {
		scene := components.Scene.Get(sceneEntry)
		r.pointer, r.pointerOK = scene.PointerWorld, scene.PointerOK
		r.lastPicked = scene.LastPick
	}

	x := int(cfg.Render.HUDMargin)
	y := int(cfg.Render.HUDMargin + cfg.Render.HUDFontSize)
	for _, line := range hudLines(r) {
		drawShadowed(screen, line.text, line.face.Get(), x, y)
		y += int(cfg.Render.HUDLineHeight)
	}

	drawShadowed(screen, helpLine(), fonts.Small.Get(), x, cfg.C.Height-int(cfg.Render.HUDMargin))
}

func drawShadowed(screen *ebiten.Image, s string, face font.Face, x, y int) {
	text.Draw(screen, s, face, x+1, y+1, cfg.Render.HUDShadow) //nolint:staticcheck
	text.Draw(screen, s, face, x, y, cfg.Render.HUDText)       //nolint:staticcheck
}

func firstCircleZone(ecs *ecs.ECS) (geom.Circle, bool) {
	var (
		found geom.Circle
		ok    bool
	)
	tags.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collider.Get(e).Collider
		if !ok && c.Kind() == collision.KindCircle {
			found, ok = c.Circle(), true
		}
	})
	return found, ok
}

// helpLine lists the first bound key of each action.
func helpLine() string {
	key := func(id cfg.ActionID) string {
		if names := cfg.Input.Bindings[id]; len(names) > 0 {
			return names[0]
		}
		return "-"
	}
	return fmt.Sprintf("%s%s%s%s move  %s/%s zoom  %s/%s rotate  %s reset  %s debug  %s fullscreen  %s quit",
		key(cfg.ActionMoveUp), key(cfg.ActionMoveLeft), key(cfg.ActionMoveDown), key(cfg.ActionMoveRight),
		key(cfg.ActionZoomIn), key(cfg.ActionZoomOut),
		key(cfg.ActionRotateLeft), key(cfg.ActionRotateRight),
		key(cfg.ActionResetCamera), key(cfg.ActionToggleDebug),
		key(cfg.ActionToggleFullscreen), key(cfg.ActionExit))
}
