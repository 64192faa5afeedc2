package factory

import (
	"github.com/automoto/hitbox-sandbox/archetypes"
	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	"github.com/automoto/hitbox-sandbox/scenedata"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTrigger spawns a static zone from scene data and registers it with the index.
func CreateTrigger(ecs *ecs.ECS, index *collision.Index, zone scenedata.Zone) (*donburi.Entry, error) {
	var (
		shape    *collision.Collider
		err      error
		shapeTag string
	)
	switch zone.Shape {
	case scenedata.ShapeCircle:
		shape, err = collision.NewCircle(zone.Center, zone.R)
		shapeTag = tags.ResolvCircle
	default:
		shape, err = collision.NewRect(zone.Center, zone.W, zone.H)
		shapeTag = tags.ResolvRect
	}
	if err != nil {
		return nil, err
	}

	trigger := archetypes.Trigger.Spawn(ecs)
	components.Trigger.SetValue(trigger, components.TriggerData{
		Name:  zone.Name,
		Label: zone.Label,
	})
	components.Collider.SetValue(trigger, components.ColliderData{Collider: shape})

	index.Insert(shape, tags.ResolvTrigger, shapeTag)
	return trigger, nil
}
