package components

import (
	"github.com/automoto/hitbox-sandbox/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData picks the sprite frame; the Sprite component draws it.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	SpriteSheet      *ebiten.Image
	CachedFrames     map[int]*ebiten.Image // Sub-images keyed by sheet index
	FrameWidth       int
	FrameHeight      int
}

// FrameImage returns the current frame, slicing and caching it on first use.
func (a *AnimationData) FrameImage() *ebiten.Image {
	if a.CurrentAnimation == nil || a.SpriteSheet == nil {
		return nil
	}
	frame := a.CurrentAnimation.Frame()
	if img, ok := a.CachedFrames[frame]; ok {
		return img
	}
	if a.CachedFrames == nil {
		a.CachedFrames = make(map[int]*ebiten.Image)
	}
	src := a.CurrentAnimation.SourceRect(a.FrameWidth, a.FrameHeight)
	img := a.SpriteSheet.SubImage(src).(*ebiten.Image)
	a.CachedFrames[frame] = img
	return img
}

var Animation = donburi.NewComponentType[AnimationData]()
