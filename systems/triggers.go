package systems

import (
	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers queries every player hitbox against the trigger zones and
// records enter/exit transitions. Must run after UpdateMovement.
func UpdateTriggers(e *ecs.ECS) {
	index := getIndex(e)
	if index == nil {
		return
	}

	hitsByPlayer := make(map[*donburi.Entry][]*collision.Collider)
	hit := make(map[*collision.Collider]bool)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		hitbox := components.Collider.Get(entry)
		found, err := index.Overlapping(hitbox.Collider, tags.ResolvTrigger)
		if err != nil {
			log.Error("Overlap query failed", "error", err)
			return
		}
		hitsByPlayer[entry] = found
		for _, c := range found {
			hit[c] = true
		}
	})

	labels := make(map[*collision.Collider]string)
	tags.Trigger.Each(e.World, func(entry *donburi.Entry) {
		trigger := components.Trigger.Get(entry)
		shape := components.Collider.Get(entry).Collider
		labels[shape] = trigger.Label

		now := hit[shape]
		switch {
		case now && !trigger.Overlapping:
			trigger.Enters++
			log.Info("Entered zone", "zone", trigger.Name, "times", trigger.Enters)
		case !now && trigger.Overlapping:
			log.Info("Left zone", "zone", trigger.Name)
		}
		trigger.Overlapping = now
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.Zones = player.Zones[:0]
		for _, c := range hitsByPlayer[entry] {
			player.Zones = append(player.Zones, labels[c])
		}

		if entry.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(entry)
			if len(player.Zones) > 0 {
				sprite.Tint = cfg.Render.PlayerTint
			} else {
				sprite.Tint.A = 0
			}
		}
	})
}
