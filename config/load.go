package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// file mirrors the globals for YAML decoding. Keys missing from the file
// keep their current values.
type file struct {
	Canvas Config       `yaml:"canvas"`
	Window WindowConfig `yaml:"window"`
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
	Render RenderConfig `yaml:"render"`
	Debug  DebugConfig  `yaml:"debug"`
	Scene  SceneConfig  `yaml:"scene"`
	Input  InputConfig  `yaml:"input"`
}

// Load overlays the YAML file at path onto the current configuration. On any
// error the configuration is left unchanged.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the current configuration.
func Apply(data []byte) error {
	f := file{
		Canvas: *C,
		Window: Window,
		Player: Player,
		Camera: Camera,
		Render: Render,
		Debug:  Debug,
		Scene:  Scene,
		Input:  InputConfig{Bindings: maps.Clone(Input.Bindings)},
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	*C = f.Canvas
	Window = f.Window
	Player = f.Player
	Camera = f.Camera
	Render = f.Render
	Debug = f.Debug
	Scene = f.Scene
	Input = f.Input
	return nil
}

func (f *file) validate() error {
	var errs []error
	if f.Canvas.Width <= 0 || f.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", f.Canvas.Width, f.Canvas.Height))
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height))
	}
	if f.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed %v is negative", f.Player.Speed))
	}
	if f.Player.HitboxWidth < 0 || f.Player.HitboxHeight < 0 {
		errs = append(errs, fmt.Errorf("player hitbox %vx%v is negative", f.Player.HitboxWidth, f.Player.HitboxHeight))
	}
	if f.Player.FrameWidth <= 0 || f.Player.FrameHeight <= 0 || f.Player.WalkFrames <= 0 || f.Player.WalkFPS <= 0 {
		errs = append(errs, errors.New("player sprite frames and fps must be positive"))
	}
	if f.Camera.FollowSmoothing < 0 || f.Camera.FollowSmoothing > 1 {
		errs = append(errs, fmt.Errorf("camera followSmoothing %v outside [0,1]", f.Camera.FollowSmoothing))
	}
	if f.Camera.MinZoom <= 0 || f.Camera.MaxZoom < f.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera zoom range [%v,%v] is invalid", f.Camera.MinZoom, f.Camera.MaxZoom))
	}
	if f.Camera.ZoomStep <= 0 {
		errs = append(errs, fmt.Errorf("camera zoomStep %v must be positive", f.Camera.ZoomStep))
	}
	if f.Scene.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("scene cellSize %d must be positive", f.Scene.CellSize))
	}
	for action, keys := range f.Input.Bindings {
		for _, k := range keys {
			if k == "" {
				errs = append(errs, fmt.Errorf("empty key name bound to %s", action))
			}
		}
	}
	return errors.Join(errs...)
}
