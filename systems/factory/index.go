package factory

import (
	"github.com/automoto/hitbox-sandbox/archetypes"
	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateIndex(ecs *ecs.ECS, width, height, cellSize int) (*donburi.Entry, error) {
	index, err := collision.NewIndex(width, height, cellSize)
	if err != nil {
		return nil, err
	}
	entry := archetypes.Index.Spawn(ecs)
	components.Index.SetValue(entry, components.IndexData{Index: index})
	return entry, nil
}
