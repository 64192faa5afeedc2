package images

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// SceneBackground renders the tile layers of a TMX file that carry the
// "render" property. A scene without renderable layers yields a flat image
// filled with fallback.
func SceneBackground(fsys fs.FS, tmxPath string, fallback color.Color) (*ebiten.Image, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	bg := ebiten.NewImage(sceneMap.Width*sceneMap.TileWidth, sceneMap.Height*sceneMap.TileHeight)
	bg.Fill(fallback)
	if len(sceneMap.Tilesets) == 0 {
		return bg, nil
	}

	renderer, err := render.NewRendererWithFileSystem(sceneMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", tmxPath, err)
	}

	op := &ebiten.DrawImageOptions{}
	for i, layer := range sceneMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Warn("Could not render layer", "layer", layer.Name, "error", err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op.ColorScale.Reset()
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		bg.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}
	return bg, nil
}
