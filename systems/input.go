package systems

import (
	"strings"

	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/automoto/hitbox-sandbox/movement"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// boundKeys caches the resolved bindings. Bindings are fixed once the game runs.
var boundKeys map[cfg.ActionID][]ebiten.Key

// keysByName maps lower-cased ebiten key names to keys.
var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ResolveKeys turns configured key names into ebiten keys. Unknown names are
// returned separately so the caller can report them.
func ResolveKeys(names []string) (keys []ebiten.Key, unknown []string) {
	for _, name := range names {
		if k, ok := keysByName[strings.ToLower(name)]; ok {
			keys = append(keys, k)
		} else {
			unknown = append(unknown, name)
		}
	}
	return keys, unknown
}

func resolveBindings() map[cfg.ActionID][]ebiten.Key {
	out := make(map[cfg.ActionID][]ebiten.Key, len(cfg.Input.Bindings))
	for action, names := range cfg.Input.Bindings {
		keys, unknown := ResolveKeys(names)
		if len(unknown) > 0 {
			log.Warn("Ignoring unknown key names", "action", action, "keys", unknown)
		}
		out[action] = keys
	}
	return out
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if boundKeys == nil {
		boundKeys = resolveBindings()
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range boundKeys {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.Intent = movement.Intent{
		Up:    input.Current[cfg.ActionMoveUp],
		Down:  input.Current[cfg.ActionMoveDown],
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
	}

	x, y := ebiten.CursorPosition()
	input.Cursor = geom.V(float64(x), float64(y))
	input.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
