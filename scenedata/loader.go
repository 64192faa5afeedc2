package scenedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/hitbox-sandbox/geom"
	"github.com/lafriks/go-tiled"
)

var ErrNoSpawn = errors.New("scenedata: no player spawn")

const (
	groupSpawn    = "PlayerSpawn"
	groupTriggers = "Triggers"
)

// Load parses a TMX file into a Scene. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS for a scene on disk.
func Load(fsys fs.FS, tmxPath string) (*Scene, error) {
	sceneMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  sceneMap.Width * sceneMap.TileWidth,
		Height: sceneMap.Height * sceneMap.TileHeight,
	}

	spawned := false
	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case groupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			// Point objects have no size, so the center is the point itself.
			o := og.Objects[0]
			scene.Spawn = geom.V(o.X+o.Width/2, o.Y+o.Height/2)
			spawned = true
		case groupTriggers:
			for _, o := range og.Objects {
				scene.Zones = append(scene.Zones, zoneFrom(o))
			}
		}
	}
	if !spawned {
		return nil, fmt.Errorf("%s: %w (object group %q missing or empty)", tmxPath, ErrNoSpawn, groupSpawn)
	}

	return scene, nil
}

func zoneFrom(o *tiled.Object) Zone {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX files use type=
	}
	z := Zone{
		Name:   o.Name,
		Label:  o.Properties.GetString("label"),
		Center: geom.V(o.X+o.Width/2, o.Y+o.Height/2),
		W:      o.Width,
		H:      o.Height,
	}
	if z.Label == "" {
		z.Label = z.Name
	}
	if class == "circle" || len(o.Ellipses) > 0 {
		z.Shape = ShapeCircle
		z.R = o.Width / 2
	}
	return z
}

// LoadAll loads every .tmx file in dir and returns them keyed by name, plus
// the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Scene, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	scenes := make(map[string]*Scene, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		s, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		scenes[s.Name] = s
		names = append(names, s.Name)
	}

	sort.Strings(names)
	return scenes, names, nil
}
