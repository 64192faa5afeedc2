package images

import (
	"fmt"

	"github.com/automoto/hitbox-sandbox/assets"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// TintShader colorizes the player sprite while it stands in a zone
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := assets.TintShaderSource()
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile tint shader: %w", err)
	}
	return nil
}
