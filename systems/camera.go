package systems

import (
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player and applies the zoom, rotate and reset actions.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	dt := tickSeconds()

	if playerEntry, ok := tags.Player.First(e.World); ok {
		cam.View.Follow(components.Mover.Get(playerEntry).Position, cfg.Camera.FollowSmoothing)
	}

	step := 0.0
	if GetAction(input, cfg.ActionZoomIn).JustPressed {
		step += cfg.Camera.ZoomStep
	}
	if GetAction(input, cfg.ActionZoomOut).JustPressed {
		step -= cfg.Camera.ZoomStep
	}
	if step != 0 {
		target := clampZoom(cam.TargetZoom + step)
		if target != cam.TargetZoom {
			if err := cam.View.ZoomTo(target, cfg.Camera.ZoomSeconds); err != nil {
				log.Error("Zoom rejected", "target", target, "error", err)
			} else {
				cam.TargetZoom = target
			}
		}
	}

	if GetAction(input, cfg.ActionRotateLeft).Pressed {
		cam.View.Rotate(-cfg.Camera.RotateSpeed * dt)
	}
	if GetAction(input, cfg.ActionRotateRight).Pressed {
		cam.View.Rotate(cfg.Camera.RotateSpeed * dt)
	}

	if GetAction(input, cfg.ActionResetCamera).JustPressed {
		_ = cam.View.SetZoom(1)
		cam.View.SetRotation(0)
		cam.TargetZoom = 1
	}

	cam.View.Update(dt)
}

func clampZoom(z float64) float64 {
	return min(max(z, cfg.Camera.MinZoom), cfg.Camera.MaxZoom)
}
