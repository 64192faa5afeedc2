package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// snapshot restores the globals after a test mutates them.
func snapshot(t *testing.T) {
	t.Helper()
	c, w, p, cam, r, d, s, in := *C, Window, Player, Camera, Render, Debug, Scene, Input
	t.Cleanup(func() {
		*C, Window, Player, Camera, Render, Debug, Scene, Input = c, w, p, cam, r, d, s, in
	})
}

func TestDefaults(t *testing.T) {
	if C.Width != 1280 || C.Height != 720 {
		t.Errorf("canvas = %dx%d", C.Width, C.Height)
	}
	if Player.Speed != 300 || Player.HitboxWidth != 80 || Player.HitboxHeight != 30 || Player.HitboxOffsetY != 25 {
		t.Errorf("player = %+v", Player)
	}
	if Camera.FollowSmoothing != 1 {
		t.Errorf("camera should track the player exactly by default, got %v", Camera.FollowSmoothing)
	}
	if err := (&file{Canvas: *C, Window: Window, Player: Player, Camera: Camera, Render: Render, Debug: Debug, Scene: Scene, Input: Input}).validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
	for a := ActionMoveUp; a < ActionCount; a++ {
		if len(Input.Bindings[a]) == 0 {
			t.Errorf("%s has no default binding", a)
		}
	}
}

func TestApplyOverlay(t *testing.T) {
	snapshot(t)
	err := Apply([]byte(`
canvas:
  width: 640
player:
  speed: 120
render:
  zoneOverlap: {r: 0, g: 0, b: 255, a: 200}
input:
  bindings:
    moveUp: [I]
`))
	if err != nil {
		t.Fatal(err)
	}
	if C.Width != 640 || C.Height != 720 {
		t.Errorf("canvas = %dx%d, height should be kept", C.Width, C.Height)
	}
	if Player.Speed != 120 || Player.HitboxWidth != 80 {
		t.Errorf("player = %+v", Player)
	}
	if Render.ZoneOverlap.B != 255 || Render.ZoneOverlap.A != 200 {
		t.Errorf("zoneOverlap = %+v", Render.ZoneOverlap)
	}
	if got := Input.Bindings[ActionMoveUp]; len(got) != 1 || got[0] != "I" {
		t.Errorf("moveUp = %v", got)
	}
	if got := Input.Bindings[ActionMoveDown]; len(got) != 2 {
		t.Errorf("unlisted binding was dropped: %v", got)
	}
}

func TestApplyRejectsAndKeepsState(t *testing.T) {
	snapshot(t)
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero canvas", "canvas: {width: 0}", "canvas size"},
		{"zoom range", "camera: {minZoom: 2, maxZoom: 1}", "zoom range"},
		{"smoothing", "camera: {followSmoothing: 1.5}", "followSmoothing"},
		{"unknown field", "player: {jumpSpeed: 3}", "jumpSpeed"},
		{"unknown action", "input: {bindings: {fly: [F]}}", "unknown action"},
		{"empty key", "input: {bindings: {exit: ['']}}", "empty key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Apply([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
			if C.Width != 1280 || Camera.MinZoom != 0.5 || Camera.FollowSmoothing != 1 {
				t.Errorf("rejected config leaked into globals")
			}
			if got := Input.Bindings[ActionExit]; len(got) != 1 || got[0] != "Escape" {
				t.Errorf("rejected bindings leaked: %v", got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	snapshot(t)
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	if err := os.WriteFile(path, []byte("debug:\n  colliders: false\nscene:\n  cellSize: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if Debug.Colliders || Scene.CellSize != 64 {
		t.Errorf("debug=%+v scene=%+v", Debug, Scene)
	}

	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	snapshot(t)
	if err := Apply(nil); err != nil {
		t.Fatal(err)
	}
	if C.Width != 1280 {
		t.Errorf("canvas width = %d", C.Width)
	}
}

func TestActionIDText(t *testing.T) {
	var a ActionID
	if err := a.UnmarshalText([]byte("ToggleDebug")); err != nil || a != ActionToggleDebug {
		t.Errorf("UnmarshalText = %v, %v", a, err)
	}
	if err := a.UnmarshalText([]byte("none")); err == nil {
		t.Error("none should not be bindable")
	}
	if ActionID(99).String() != "action(99)" {
		t.Errorf("out of range String = %q", ActionID(99).String())
	}
}
