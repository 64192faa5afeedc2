package components

import (
	"github.com/automoto/hitbox-sandbox/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View       *camera.Camera
	TargetZoom float64 // Where the running zoom tween ends
}

var Camera = donburi.NewComponentType[CameraData]()
