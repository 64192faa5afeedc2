package config

import "image/color"

// Config holds the logical canvas resolution. Everything is drawn at this
// size and letterboxed into the window.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig contains the initial window setup
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 `yaml:"speed"` // pixels per second

	// Hitbox, centered on the player position and shifted by the offset
	HitboxWidth   float64 `yaml:"hitboxWidth"`
	HitboxHeight  float64 `yaml:"hitboxHeight"`
	HitboxOffsetX float64 `yaml:"hitboxOffsetX"`
	HitboxOffsetY float64 `yaml:"hitboxOffsetY"`

	// Sprite sheet
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
	WalkFrames  int `yaml:"walkFrames"`
	WalkFPS     int `yaml:"walkFPS"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows player (0.0-1.0)
	ZoomStep        float64 `yaml:"zoomStep"`        // Added or removed per zoom action
	MinZoom         float64 `yaml:"minZoom"`
	MaxZoom         float64 `yaml:"maxZoom"`
	ZoomSeconds     float64 `yaml:"zoomSeconds"` // Duration of the zoom tween
	RotateSpeed     float64 `yaml:"rotateSpeed"` // Radians per second while a rotate key is held
}

// RenderConfig contains colors and HUD layout
type RenderConfig struct {
	Background   color.RGBA `yaml:"background"`
	Letterbox    color.RGBA `yaml:"letterbox"`
	ZoneIdle     color.RGBA `yaml:"zoneIdle"`
	ZoneOverlap  color.RGBA `yaml:"zoneOverlap"`
	PlayerHitbox color.RGBA `yaml:"playerHitbox"`
	PlayerTint   color.RGBA `yaml:"playerTint"` // Applied to the sprite while inside a zone
	HUDText      color.RGBA `yaml:"hudText"`
	HUDShadow    color.RGBA `yaml:"hudShadow"`

	HUDFontSize   float64 `yaml:"hudFontSize"`
	HUDMargin     float64 `yaml:"hudMargin"`
	HUDLineHeight float64 `yaml:"hudLineHeight"`
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Colliders bool `yaml:"colliders"` // Draw hitboxes and trigger zones
	Index     bool `yaml:"index"`     // Draw the broad-phase cells
}

// SceneConfig selects the scene file and how it is indexed
type SceneConfig struct {
	Path     string `yaml:"path"` // Empty loads the embedded default
	CellSize int    `yaml:"cellSize"`
}

// Global configuration instances
var C *Config
var Window WindowConfig
var Player PlayerConfig
var Camera CameraConfig
var Render RenderConfig
var Debug DebugConfig
var Scene SceneConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	TranslRed    = color.RGBA{R: 255, G: 0, B: 0, A: 128}
	TranslGreen  = color.RGBA{R: 0, G: 255, B: 0, A: 128}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Slate        = color.RGBA{R: 38, G: 46, B: 56, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Window = WindowConfig{
		Title:  "Hitbox Sandbox",
		Width:  1280,
		Height: 720,
	}

	// Player Config
	Player = PlayerConfig{
		Speed: 300,

		HitboxWidth:   80,
		HitboxHeight:  30,
		HitboxOffsetX: 0,
		HitboxOffsetY: 25, // Hitbox sits at the feet

		FrameWidth:  64,
		FrameHeight: 96,
		WalkFrames:  4,
		WalkFPS:     8,
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing: 1.0, // Locked to the player
		ZoomStep:        0.25,
		MinZoom:         0.5,
		MaxZoom:         3.0,
		ZoomSeconds:     0.2,
		RotateSpeed:     1.5,
	}

	Render = RenderConfig{
		Background:   Slate,
		Letterbox:    Black,
		ZoneIdle:     TranslRed,
		ZoneOverlap:  TranslGreen,
		PlayerHitbox: TranslRed,
		PlayerTint:   color.RGBA{R: 120, G: 255, B: 120, A: 90},
		HUDText:      White,
		HUDShadow:    BlackOverlay,

		HUDFontSize:   18,
		HUDMargin:     10,
		HUDLineHeight: 20,
	}

	Debug = DebugConfig{
		Colliders: true,
	}

	Scene = SceneConfig{
		CellSize: 32,
	}
}
