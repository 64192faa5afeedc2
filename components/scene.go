package components

import (
	"github.com/automoto/hitbox-sandbox/canvas"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/automoto/hitbox-sandbox/scenedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SceneData struct {
	Layout     *scenedata.Scene
	Background *ebiten.Image
	Scaler     *canvas.Scaler

	PointerWorld geom.Vec2 // Cursor in world space, valid when PointerOK
	PointerOK    bool
	LastPick     string
}

var Scene = donburi.NewComponentType[SceneData]()
