package factory

import (
	"fmt"

	"github.com/automoto/hitbox-sandbox/assets/animations"
	"github.com/automoto/hitbox-sandbox/assets/images"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds the player's walk cycle over a procedurally drawn
// sprite sheet and pre-slices every frame.
func GenerateAnimations() (*components.AnimationData, error) {
	p := cfg.Player
	walk, err := animations.NewAnimation(0, p.WalkFrames-1, p.WalkFPS)
	if err != nil {
		return nil, fmt.Errorf("player walk animation: %w", err)
	}

	animData := &components.AnimationData{
		CurrentAnimation: walk,
		SpriteSheet:      images.PlayerSheet(p.FrameWidth, p.FrameHeight, p.WalkFrames),
		CachedFrames:     make(map[int]*ebiten.Image, p.WalkFrames),
		FrameWidth:       p.FrameWidth,
		FrameHeight:      p.FrameHeight,
	}

	// Pre-calculate frames
	for i := walk.First; i <= walk.Last; i++ {
		walk.SetFrame(i)
		animData.FrameImage()
	}
	walk.Restart()
	return animData, nil
}
