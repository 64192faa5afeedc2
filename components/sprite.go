package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Image  *ebiten.Image
	PivotX float64
	PivotY float64
	Tint   color.RGBA // Zero alpha draws untinted
}

var Sprite = donburi.NewComponentType[SpriteData]()
