package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/hitbox-sandbox/archetypes"
	"github.com/automoto/hitbox-sandbox/assets/images"
	"github.com/automoto/hitbox-sandbox/canvas"
	"github.com/automoto/hitbox-sandbox/components"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/scenedata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene loads the layout at path from fsys, renders its background and
// spawns the index, triggers, player and camera it describes.
func CreateScene(ecs *ecs.ECS, fsys fs.FS, path string, scaler *canvas.Scaler) (*donburi.Entry, error) {
	layout, err := scenedata.Load(fsys, path)
	if err != nil {
		return nil, err
	}
	background, err := images.SceneBackground(fsys, path, cfg.Render.Background)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Scene.Spawn(ecs)
	components.Scene.Set(entry, &components.SceneData{
		Layout:     layout,
		Background: background,
		Scaler:     scaler,
	})

	indexEntry, err := CreateIndex(ecs, layout.Width, layout.Height, cfg.Scene.CellSize)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", layout.Name, err)
	}
	index := components.Index.Get(indexEntry).Index

	for _, zone := range layout.Zones {
		if _, err := CreateTrigger(ecs, index, zone); err != nil {
			return nil, fmt.Errorf("zone %s: %w", zone.Name, err)
		}
	}
	if _, err := CreatePlayer(ecs, index, layout.Spawn); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	CreateCamera(ecs, layout.Spawn)

	log.Info("Scene loaded", "scene", layout.Name, "size", fmt.Sprintf("%dx%d", layout.Width, layout.Height), "zones", len(layout.Zones))
	return entry, nil
}
