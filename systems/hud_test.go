package systems

import (
	"strings"
	"testing"

	"github.com/automoto/hitbox-sandbox/fonts"
	"github.com/automoto/hitbox-sandbox/geom"
)

func TestHUDLines(t *testing.T) {
	pond := geom.Circle{Center: geom.V(300, 300), R: 20}
	r := hudReadout{
		circle:     &pond,
		hitbox:     geom.NewRect(260, 310, 80, 30),
		zoom:       1.5,
		hasCamera:  true,
		zones:      []string{"Pond"},
		pointer:    geom.V(12, 34),
		pointerOK:  true,
		lastPicked: "Gate",
	}

	tests := []struct {
		prefix string
		face   fonts.FontName
	}{
		{"Distance to circle: 41.2", fonts.Mono},
		{"Hitbox left: 260.0", fonts.Mono},
		{"Zoom: 1.50", fonts.Mono},
		{"Zones: Pond", fonts.HUD},
		{"Pointer: 12, 34", fonts.Mono},
		{"Picked: Gate", fonts.HUD},
	}
	lines := hudLines(r)
	if len(lines) != len(tests) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(tests), lines)
	}
	for i, tt := range tests {
		if !strings.HasPrefix(lines[i].text, tt.prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i].text, tt.prefix)
		}
		if lines[i].face != tt.face {
			t.Errorf("line %d face = %s, want %s", i, lines[i].face, tt.face)
		}
	}
}

func TestHUDLinesMinimal(t *testing.T) {
	lines := hudLines(hudReadout{hitbox: geom.NewRect(-40, 10, 80, 30)})
	want := []string{"Hitbox left: -40.0", "Zones: none"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v", lines)
	}
	for i, w := range want {
		if lines[i].text != w {
			t.Errorf("line %d = %q, want %q", i, lines[i].text, w)
		}
	}
}
