package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/hitbox-sandbox/assets"
	"github.com/automoto/hitbox-sandbox/scenedata"
	"github.com/spf13/cobra"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes [dir]",
	Short: "List scene files with their spawn point and trigger zones",
	Long: `Lists every .tmx scene in dir, or the embedded scenes when no dir is
given, without opening a window.

Examples:
  hitbox-sandbox scenes
  hitbox-sandbox scenes ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var fsys fs.FS = assets.SceneFS
		dir := "scenes"
		if len(args) == 1 {
			fsys, dir = os.DirFS(args[0]), "."
		}

		loaded, names, err := scenedata.LoadAll(fsys, dir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			s := loaded[name]
			fmt.Fprintf(out, "%s  %dx%d  spawn (%.0f, %.0f)\n", name, s.Width, s.Height, s.Spawn.X, s.Spawn.Y)
			for _, z := range s.Zones {
				switch z.Shape {
				case scenedata.ShapeCircle:
					fmt.Fprintf(out, "  %-12s %-6s center (%.0f, %.0f) r %.0f\n", z.Label, z.Shape, z.Center.X, z.Center.Y, z.R)
				default:
					fmt.Fprintf(out, "  %-12s %-6s center (%.0f, %.0f) %.0fx%.0f\n", z.Label, z.Shape, z.Center.X, z.Center.Y, z.W, z.H)
				}
			}
		}
		return nil
	},
}
