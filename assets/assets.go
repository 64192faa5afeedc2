// Package assets embeds the scene files and shader sources. It does not
// import ebiten so the data can be loaded headless.
package assets

import "embed"

// DefaultScene is the scene loaded when no --scene flag is given.
const DefaultScene = "scenes/sandbox.tmx"

var (
	//go:embed all:scenes
	SceneFS embed.FS

	//go:embed shaders/*.kage
	shaderFS embed.FS
)

// TintShaderSource returns the Kage source of the sprite tint shader.
func TintShaderSource() ([]byte, error) {
	return shaderFS.ReadFile("shaders/tint.kage")
}
