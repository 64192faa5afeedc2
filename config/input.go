package config

import (
	"fmt"
	"strings"
)

// ActionID represents a logical scene action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionZoomIn
	ActionZoomOut
	ActionRotateLeft
	ActionRotateRight
	ActionResetCamera
	ActionToggleDebug
	ActionToggleFullscreen
	ActionExit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:             "none",
	ActionMoveUp:           "moveUp",
	ActionMoveDown:         "moveDown",
	ActionMoveLeft:         "moveLeft",
	ActionMoveRight:        "moveRight",
	ActionZoomIn:           "zoomIn",
	ActionZoomOut:          "zoomOut",
	ActionRotateLeft:       "rotateLeft",
	ActionRotateRight:      "rotateRight",
	ActionResetCamera:      "resetCamera",
	ActionToggleDebug:      "toggleDebug",
	ActionToggleFullscreen: "toggleFullscreen",
	ActionExit:             "exit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

func (a ActionID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText lets YAML files key bindings by action name.
func (a *ActionID) UnmarshalText(text []byte) error {
	name := string(text)
	for id, n := range actionNames {
		if strings.EqualFold(n, name) && ActionID(id) != ActionNone {
			*a = ActionID(id)
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", name)
}

// InputConfig maps actions to key names. Names follow ebiten.Key.String,
// compared case-insensitively; resolving them to keys is left to the input system.
type InputConfig struct {
	Bindings map[ActionID][]string `yaml:"bindings"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionMoveUp:           {"W", "ArrowUp"},
			ActionMoveDown:         {"S", "ArrowDown"},
			ActionMoveLeft:         {"A", "ArrowLeft"},
			ActionMoveRight:        {"D", "ArrowRight"},
			ActionZoomIn:           {"E", "Equal"},
			ActionZoomOut:          {"Q", "Minus"},
			ActionRotateLeft:       {"Z"},
			ActionRotateRight:      {"C"},
			ActionResetCamera:      {"R"},
			ActionToggleDebug:      {"F1"},
			ActionToggleFullscreen: {"F11"},
			ActionExit:             {"Escape"},
		},
	}
}
