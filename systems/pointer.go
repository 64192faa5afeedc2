package systems

import (
	"strings"

	"github.com/automoto/hitbox-sandbox/collision"
	"github.com/automoto/hitbox-sandbox/components"
	"github.com/automoto/hitbox-sandbox/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer maps the cursor from window pixels to world space and picks
// the zones under it on click. Cursors over the letterbox bars map to nothing.
func UpdatePointer(e *ecs.ECS) {
	sceneEntry, ok := components.Scene.First(e.World)
	if !ok {
		return
	}
	scene := components.Scene.Get(sceneEntry)
	input := getOrCreateInput(e)
	scene.PointerOK = false

	logical, ok := scene.Scaler.PhysicalToLogical(input.Cursor)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	world, err := components.Camera.Get(cameraEntry).View.ScreenToWorld(logical)
	if err != nil {
		log.Warn("Cannot map pointer to world", "error", err)
		return
	}
	scene.PointerWorld, scene.PointerOK = world, true

	if !input.Clicked {
		return
	}
	index := getIndex(e)
	if index == nil {
		return
	}
	picked, err := index.At(world, tags.ResolvTrigger)
	if err != nil {
		log.Error("Pick failed", "error", err)
		return
	}

	under := make(map[*collision.Collider]bool, len(picked))
	for _, c := range picked {
		under[c] = true
	}
	var names []string
	tags.Trigger.Each(e.World, func(entry *donburi.Entry) {
		trigger := components.Trigger.Get(entry)
		trigger.Picked = under[components.Collider.Get(entry).Collider]
		if trigger.Picked {
			names = append(names, trigger.Label)
		}
	})
	scene.LastPick = strings.Join(names, ", ")
	log.Debug("Pointer click", "x", world.X, "y", world.Y, "zones", names)
}
