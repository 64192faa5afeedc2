package fonts

import (
	"testing"

	"golang.org/x/image/font"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(18); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{HUD, Small, Mono} {
		face := name.Get()
		if face.Metrics().Height <= 0 {
			t.Errorf("%s has no height", name)
		}
	}
	if hud, small := font.MeasureString(HUD.Get(), "left: 260"), font.MeasureString(Small.Get(), "left: 260"); small >= hud {
		t.Errorf("small face (%v) should be narrower than hud (%v)", small, hud)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FontName("missing").Get()
}
