package factory

import (
	"github.com/automoto/hitbox-sandbox/archetypes"
	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/automoto/hitbox-sandbox/movement"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, index *collision.Index, spawn geom.Vec2) (*donburi.Entry, error) {
	hitbox, err := collision.NewRect(spawn, cfg.Player.HitboxWidth, cfg.Player.HitboxHeight)
	if err != nil {
		return nil, err
	}
	hitbox.SetExtraOffset(cfg.Player.HitboxOffsetX, cfg.Player.HitboxOffsetY)
	hitbox.Recenter(spawn)

	animData, err := GenerateAnimations()
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Spawn:  spawn,
		Facing: 1,
	})
	components.Mover.SetValue(player, movement.Mover{
		Position: spawn,
		Speed:    cfg.Player.Speed,
	})
	components.Collider.SetValue(player, components.ColliderData{Collider: hitbox})
	components.Animation.Set(player, animData)
	components.Sprite.SetValue(player, components.SpriteData{
		Image:  animData.FrameImage(),
		PivotX: float64(cfg.Player.FrameWidth) / 2,
		PivotY: float64(cfg.Player.FrameHeight) / 2,
	})

	index.Insert(hitbox, tags.ResolvPlayer, tags.ResolvRect)
	return player, nil
}
