// hitbox-sandbox is a small top-down scene for poking at hitboxes: a player
// walks around, trigger zones light up on overlap, and the camera can pan,
// zoom and rotate while the window letterboxes the fixed canvas.
//
// Usage:
//
//	hitbox-sandbox [--config path] [--scene path] [--debug] [--log-level level]
//	hitbox-sandbox scenes [dir]   - List scene files and their zones
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/hitbox-sandbox/assets"
	"github.com/automoto/hitbox-sandbox/assets/images"
	"github.com/automoto/hitbox-sandbox/canvas"
	"github.com/automoto/hitbox-sandbox/config"
	"github.com/automoto/hitbox-sandbox/fonts"
	"github.com/automoto/hitbox-sandbox/scenes"
	"github.com/automoto/hitbox-sandbox/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagScene    string
	flagDebug    bool
	flagLogLevel string
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scaler *canvas.Scaler
	scene  Scene
}

func NewGame(fsys fs.FS, path string) (*Game, error) {
	scaler, err := canvas.NewScaler(config.C.Width, config.C.Height)
	if err != nil {
		return nil, err
	}
	return &Game{
		scaler: scaler,
		scene:  scenes.NewSandboxScene(fsys, path, scaler),
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the screen at window size; the scene letterboxes its canvas into it.
func (g *Game) Layout(width, height int) (int, int) {
	if err := g.scaler.SetPhysicalSize(width, height); err != nil {
		log.Debug("Ignoring window size", "width", width, "height", height, "error", err)
	}
	return width, height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "hitbox-sandbox",
	Short:         "Walk a player through trigger zones and inspect the hitboxes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetPrefix("sandbox")
		log.SetReportTimestamp(true)

		if flagConfig != "" {
			if err := config.Load(flagConfig); err != nil {
				return err
			}
			log.Info("Config loaded", "path", flagConfig)
		}
		return nil
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML file overlaid on the default configuration")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagScene, "scene", "", "TMX scene file (default: the embedded sandbox)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the collider overlay on")

	rootCmd.AddCommand(scenesCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("Settings will not be saved", "error", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if flagDebug {
		config.Debug.Colliders = true
	}

	if err := fonts.LoadDefaults(config.Render.HUDFontSize); err != nil {
		return err
	}
	if err := images.LoadShaders(); err != nil {
		return err
	}

	scenePath := flagScene
	if scenePath == "" {
		scenePath = config.Scene.Path
	}
	fsys, path := sceneSource(scenePath)
	game, err := NewGame(fsys, path)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Window.Fullscreen)

	return ebiten.RunGame(game)
}

// sceneSource picks the filesystem a scene is read from: the embedded scenes
// when path is empty, otherwise the directory holding path.
func sceneSource(path string) (fs.FS, string) {
	if path == "" {
		return assets.SceneFS, assets.DefaultScene
	}
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}
