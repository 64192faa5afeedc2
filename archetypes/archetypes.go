package archetypes

import (
	"github.com/automoto/hitbox-sandbox/components"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Mover,
		components.Collider,
		components.Sprite,
		components.Animation,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
		components.Collider,
	)
	Index = newArchetype(
		components.Index,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Scene = newArchetype(
		components.Scene,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
