package systems

import (
	"encoding/json"

	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug        bool    `json:"debug"`
	Fullscreen   bool    `json:"fullscreen"`
	WindowWidth  int     `json:"windowWidth"`
	WindowHeight int     `json:"windowHeight"`
	Zoom         float64 `json:"zoom"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// restoredZoom is picked up by the first camera after startup.
var restoredZoom float64

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "hitbox_sandbox",
	})
	if err != nil {
		log.Warn("Could not initialize persistence", "error", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. Missing settings are not an error.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Warn("Could not load settings", "error", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("Could not parse saved settings", "error", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("Could not serialize settings", "error", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn("Could not save settings", "error", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the runtime toggles, window size and camera zoom.
func SaveCurrentSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	w, h := ebiten.WindowSize()
	saved := &SavedSettings{
		Debug:        settings.Debug,
		Fullscreen:   settings.Fullscreen,
		WindowWidth:  w,
		WindowHeight: h,
		Zoom:         1,
	}
	if entry, ok := components.Camera.First(e.World); ok {
		saved.Zoom = components.Camera.Get(entry).TargetZoom
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before the window opens.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.Colliders = saved.Debug
	cfg.Window.Fullscreen = saved.Fullscreen
	if !saved.Fullscreen && saved.WindowWidth > 0 && saved.WindowHeight > 0 {
		cfg.Window.Width = saved.WindowWidth
		cfg.Window.Height = saved.WindowHeight
	}
	restoredZoom = saved.Zoom
}

// RestoreView applies the saved zoom to the scene camera, once.
func RestoreView(e *ecs.ECS) {
	if restoredZoom == 0 {
		return
	}
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)
	zoom := clampZoom(restoredZoom)
	if err := cam.View.SetZoom(zoom); err != nil {
		log.Warn("Ignoring saved zoom", "zoom", restoredZoom, "error", err)
	} else {
		cam.TargetZoom = zoom
	}
	restoredZoom = 0
}
