package components

import (
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/automoto/hitbox-sandbox/movement"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Intent   movement.Intent

	Cursor  geom.Vec2 // Window pixels
	Clicked bool      // Left button went down this frame
}

var Input = donburi.NewComponentType[InputData]()
