package animations

import (
	"errors"
	"image"
	"testing"
)

// step is one tick at 10 fps with a little slack so the strict timer fires.
const step = 0.1 + 1e-6

func TestNewAnimationRejectsFPS(t *testing.T) {
	if _, err := NewAnimation(0, 3, 0); !errors.Is(err, ErrInvalidFPS) {
		t.Errorf("err = %v", err)
	}
	if _, err := NewAnimation(3, 1, 10); err == nil {
		t.Error("expected error for inverted range")
	}
}

func TestUpdateLoops(t *testing.T) {
	a, err := NewAnimation(0, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 0, 1}
	for i, w := range want {
		a.Update(step)
		if a.Frame() != w {
			t.Fatalf("tick %d: frame %d, want %d", i, a.Frame(), w)
		}
	}
	if !a.Looped || a.Finished() {
		t.Errorf("Looped=%v Finished=%v", a.Looped, a.Finished())
	}
}

func TestUpdateAtMostOneFramePerCall(t *testing.T) {
	a, err := NewAnimation(0, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0.35)
	if a.Frame() != 1 {
		t.Fatalf("frame = %d after a long tick", a.Frame())
	}
	a.Update(0)
	if a.Frame() != 2 {
		t.Errorf("carried time should advance another frame, got %d", a.Frame())
	}
}

func TestUpdateWaitsForFrameTime(t *testing.T) {
	a, err := NewAnimation(0, 3, 10)
	if err != nil {
		t.Fatal(err)
	}
	a.Update(0.05)
	a.Update(0.05)
	if a.Frame() != 0 {
		t.Errorf("frame advanced before the timer exceeded its period: %d", a.Frame())
	}
	a.Update(0.01)
	if a.Frame() != 1 {
		t.Errorf("frame = %d", a.Frame())
	}
}

func TestUpdateOnceStopsAtEnd(t *testing.T) {
	a, err := NewAnimation(0, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		a.UpdateOnce(step)
	}
	if a.Frame() != 2 || !a.Finished() {
		t.Errorf("frame=%d finished=%v", a.Frame(), a.Finished())
	}

	a.Restart()
	if a.Frame() != 0 || a.Finished() {
		t.Errorf("after restart frame=%d finished=%v", a.Frame(), a.Finished())
	}
}

func TestNotLoopingFinishes(t *testing.T) {
	a, err := NewAnimation(4, 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	a.Looping = false
	a.Update(step)
	a.Update(step)
	if a.Frame() != 5 || !a.Finished() {
		t.Errorf("frame=%d finished=%v", a.Frame(), a.Finished())
	}
}

func TestReverse(t *testing.T) {
	a, err := NewAnimation(0, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	a.Reverse()
	want := []int{2, 1, 0, 2}
	for i, w := range want {
		a.Update(step)
		if a.Frame() != w {
			t.Fatalf("tick %d: frame %d, want %d", i, a.Frame(), w)
		}
	}

	a.Restart()
	if a.Frame() != 2 {
		t.Errorf("reversed restart frame = %d", a.Frame())
	}
}

func TestSetFrameAndSourceRect(t *testing.T) {
	a, err := NewAnimation(0, 3, 8)
	if err != nil {
		t.Fatal(err)
	}
	a.SetFrame(2)
	if got := a.SourceRect(32, 48); got != image.Rect(64, 0, 96, 48) {
		t.Errorf("SourceRect = %v", got)
	}
	a.SetFrame(9)
	if a.Frame() != 3 {
		t.Errorf("SetFrame did not clamp: %d", a.Frame())
	}
}
