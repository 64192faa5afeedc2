package scenes

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/hitbox-sandbox/archetypes"
	"github.com/automoto/hitbox-sandbox/canvas"
	cfg "github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/systems"
	"github.com/automoto/hitbox-sandbox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs one scene layout. The world is drawn at the logical
// resolution into an offscreen canvas, which is then letterboxed into the window.
type SandboxScene struct {
	ecs    *ecs.ECS
	fsys   fs.FS
	path   string
	scaler *canvas.Scaler
	canvas *ebiten.Image
	once   sync.Once
	err    error
}

var presentOp = &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}

func NewSandboxScene(fsys fs.FS, path string, scaler *canvas.Scaler) *SandboxScene {
	return &SandboxScene{fsys: fsys, path: path, scaler: scaler}
}

// Update advances one tick. It returns ebiten.Termination once exit is requested.
func (s *SandboxScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.ecs.Update()

	if systems.ExitRequested(s.ecs) {
		systems.SaveCurrentSettings(s.ecs)
		return ebiten.Termination
	}
	return nil
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Render.Letterbox)
	if s.ecs == nil || s.canvas == nil {
		return
	}

	s.canvas.Fill(cfg.Render.Background)
	s.ecs.DrawLayer(archetypes.LayerWorld, s.canvas)
	s.ecs.DrawLayer(archetypes.LayerHUD, s.canvas)

	presentOp.GeoM = systems.GeoM(s.scaler.PresentTransform())
	screen.DrawImage(s.canvas, presentOp)
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateCamera)
	// Overlap queries must see every collider after this tick's recentering.
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateAnimation)

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawScene)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawColliders)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)

	if _, err := factory.CreateScene(ecs, s.fsys, s.path, s.scaler); err != nil {
		s.err = fmt.Errorf("load scene %s: %w", s.path, err)
		return
	}
	systems.GetOrCreateSettings(ecs)
	systems.RestoreView(ecs)

	s.canvas = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	s.ecs = ecs
}
