package systems

import (
	"github.com/automoto/hitbox-sandbox/components"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation plays the walk cycle while the player moves and rests on
// the first frame otherwise.
func UpdateAnimation(e *ecs.ECS) {
	dt := tickSeconds()
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		anim := components.Animation.Get(entry)
		if anim.CurrentAnimation == nil {
			return
		}

		if player.Moving {
			anim.CurrentAnimation.Update(dt)
		} else if anim.CurrentAnimation.Frame() != anim.CurrentAnimation.First {
			anim.CurrentAnimation.Restart()
		}

		if img := anim.FrameImage(); img != nil {
			components.Sprite.Get(entry).Image = img
		}
	})
}
