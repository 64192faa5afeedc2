package components

import (
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawn  geom.Vec2
	Facing float64 // -1 left, 1 right
	Moving bool
	Zones  []string // Labels of the zones currently overlapped
}

var Player = donburi.NewComponentType[PlayerData]()
