package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime toggles that outlive a single frame.
type SettingsData struct {
	Debug      bool
	DebugIndex bool
	Fullscreen bool
	Quit       bool
}

var Settings = donburi.NewComponentType[SettingsData]()
