package animations

import (
	"errors"
	"fmt"
	"image"
)

var ErrInvalidFPS = errors.New("animations: fps must be positive")

// Animation walks the frames First..Last of a horizontal sprite strip on a
// fixed timer. It only selects a frame; drawing belongs to the sprite.
type Animation struct {
	First    int
	Last     int
	Looping  bool
	Reversed bool
	Looped   bool // set once the animation wraps around

	frameTime float64 // seconds per frame
	elapsed   float64
	frame     int
	finished  bool
}

func NewAnimation(first, last, fps int) (*Animation, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFPS, fps)
	}
	if last < first {
		return nil, fmt.Errorf("animations: last frame %d before first %d", last, first)
	}
	return &Animation{
		First:     first,
		Last:      last,
		Looping:   true,
		frameTime: 1 / float64(fps),
		frame:     first,
	}, nil
}

// Update advances the timer by dt seconds and moves at most one frame,
// wrapping around while Looping is set.
func (a *Animation) Update(dt float64) {
	a.advance(dt, a.Looping)
}

// UpdateOnce is Update without wrapping: the animation stops on its final
// frame and reports Finished.
func (a *Animation) UpdateOnce(dt float64) {
	a.advance(dt, false)
}

func (a *Animation) advance(dt float64, loop bool) {
	if dt > 0 {
		a.elapsed += dt
	}
	if a.elapsed <= a.frameTime {
		return
	}
	a.elapsed -= a.frameTime

	next, end, wrap := a.frame+1, a.Last, a.First
	if a.Reversed {
		next, end, wrap = a.frame-1, a.First, a.Last
	}
	switch {
	case a.frame != end:
		a.frame = next
	case loop:
		a.frame = wrap
		a.Looped = true
	default:
		a.finished = true
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to frame, clamped to First..Last.
func (a *Animation) SetFrame(frame int) {
	a.frame = max(a.First, min(a.Last, frame))
}

// Reverse flips the playback direction.
func (a *Animation) Reverse() {
	a.Reversed = !a.Reversed
}

func (a *Animation) Finished() bool {
	return a.finished
}

// Restart rewinds to the starting frame for the current direction.
func (a *Animation) Restart() {
	a.frame = a.First
	if a.Reversed {
		a.frame = a.Last
	}
	a.elapsed = 0
	a.finished = false
	a.Looped = false
}

// SourceRect is the current frame's rectangle in a strip of frameW x frameH cells.
func (a *Animation) SourceRect(frameW, frameH int) image.Rectangle {
	x := a.frame * frameW
	return image.Rect(x, 0, x+frameW, frameH)
}
