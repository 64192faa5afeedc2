package systems

import (
	"math"

	"github.com/automoto/hitbox-sandbox/components"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement steps every player and resyncs its hitbox with the index.
// Overlap queries in later systems see the post-move shapes.
func UpdateMovement(e *ecs.ECS) {
	input := getOrCreateInput(e)
	index := getIndex(e)
	dt := tickSeconds()

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		mover := components.Mover.Get(entry)
		hitbox := components.Collider.Get(entry)
		player := components.Player.Get(entry)

		delta := mover.Step(input.Intent, dt, hitbox.Collider)
		if index != nil {
			index.Sync(hitbox.Collider)
		}

		player.Moving = !delta.IsZero()
		if delta.X != 0 {
			player.Facing = math.Copysign(1, delta.X)
		}
	})
}

func getIndex(e *ecs.ECS) *components.IndexData {
	entry, ok := components.Index.First(e.World)
	if !ok {
		return nil
	}
	return components.Index.Get(entry)
}
