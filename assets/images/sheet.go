// Package images builds the ebiten images the scene draws: the player sheet,
// the rendered scene background and the tint shader.
package images

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	bodyColor    = color.RGBA{R: 235, G: 190, B: 90, A: 255}
	outlineColor = color.RGBA{R: 40, G: 30, B: 20, A: 255}
	legColor     = color.RGBA{R: 70, G: 90, B: 150, A: 255}
	eyeColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// PlayerSheet draws a walk cycle as a horizontal strip of frames, each
// frameW x frameH, facing right. Frame 0 doubles as the idle pose.
func PlayerSheet(frameW, frameH, frames int) *ebiten.Image {
	sheet := ebiten.NewImage(frameW*frames, frameH)
	w, h := float32(frameW), float32(frameH)
	for i := 0; i < frames; i++ {
		ox := float32(i) * w

		// Legs swing in opposite phase.
		swing := float32(0)
		switch i % 4 {
		case 1:
			swing = w * 0.08
		case 3:
			swing = -w * 0.08
		}
		legW, legH := w*0.16, h*0.28
		vector.FillRect(sheet, ox+w*0.3+swing, h-legH, legW, legH, legColor, false)
		vector.FillRect(sheet, ox+w*0.54-swing, h-legH, legW, legH, legColor, false)

		// Body and head.
		bodyTop := h * 0.3
		vector.FillRect(sheet, ox+w*0.25, bodyTop, w*0.5, h-legH-bodyTop, bodyColor, false)
		vector.StrokeRect(sheet, ox+w*0.25, bodyTop, w*0.5, h-legH-bodyTop, 2, outlineColor, false)
		headR := w * 0.2
		vector.DrawFilledCircle(sheet, ox+w/2, bodyTop-headR*0.6, headR, bodyColor, true) //nolint:staticcheck
		vector.StrokeCircle(sheet, ox+w/2, bodyTop-headR*0.6, headR, 2, outlineColor, true)
		vector.DrawFilledCircle(sheet, ox+w/2+headR*0.45, bodyTop-headR*0.75, headR*0.18, eyeColor, true) //nolint:staticcheck
	}
	return sheet
}
