package systems

import (
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the configuration on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Colliders,
			DebugIndex: cfg.Debug.Index,
			Fullscreen: cfg.Window.Fullscreen,
		})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug overlay, fullscreen and exit actions.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		log.Debug("Debug overlay toggled", "on", settings.Debug)
		SaveCurrentSettings(e)
	}

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		SaveCurrentSettings(e)
	}

	if GetAction(input, cfg.ActionExit).JustPressed {
		settings.Quit = true
	}
}

// ExitRequested reports whether the exit action fired.
func ExitRequested(e *ecs.ECS) bool {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return false
	}
	return components.Settings.Get(entry).Quit
}

// tickSeconds is the fixed update step.
func tickSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}
