package factory

import (
	"github.com/automoto/hitbox-sandbox/archetypes"
	"github.com/automoto/hitbox-sandbox/camera"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera pivots on the center of the logical canvas and starts on target.
func CreateCamera(ecs *ecs.ECS, target geom.Vec2) *donburi.Entry {
	view := camera.New(geom.V(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2))
	view.Position = target

	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, &components.CameraData{
		View:       view,
		TargetZoom: view.Zoom(),
	})
	return entry
}
