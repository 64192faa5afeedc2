package components

import (
	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/yohamta/donburi"
)

// ColliderData is the one hitbox an entity owns.
type ColliderData struct {
	*collision.Collider
}

var Collider = donburi.NewComponentType[ColliderData]()

// IndexData is the scene-wide broad phase, held by a singleton entity.
type IndexData struct {
	*collision.Index
}

var Index = donburi.NewComponentType[IndexData]()
