package components

import (
	"github.com/automoto/hitbox-sandbox/movement"
	"github.com/yohamta/donburi"
)

var Mover = donburi.NewComponentType[movement.Mover]()
