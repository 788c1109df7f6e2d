// Package sprite models sprite sheets and time-driven frame animation.
package sprite

import (
	"image"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Sheet is a decoded sprite sheet image. It is shared read-only between every
// sprite and animation cut from it.
type Sheet struct {
	Name  string
	Image image.Image
}

// Sprite is a region of a sheet.
type Sprite struct {
	Sheet  *Sheet
	Region core.Rect
}

// Size returns the width and height of the sprite region.
func (s Sprite) Size() (float64, float64) {
	return s.Region.W, s.Region.H
}

// Descr describes how to cut a sheet into a grid of frames.
type Descr struct {
	Path       string  `yaml:"path"`
	FrameW     int     `yaml:"frame_w"`
	FrameH     int     `yaml:"frame_h"`
	FramesWide int     `yaml:"frames_wide"`
	FramesHigh int     `yaml:"frames_high"`
	Total      int     `yaml:"total"`
	Rest       int     `yaml:"rest"`
	FPS        float64 `yaml:"fps"`
}

// Animated plays a list of frames at a fixed rate.
//
// It is a value type: assigning an Animated copies the playback state, which is
// how factories stamp out independent animations from a template. The frame
// slice is never written in place, so copies may share it.
//
// When rest > 0, playback runs through the frames once and then loops only over
// the trailing rest frames.
type Animated struct {
	sheet   *Sheet
	frames  []core.Rect
	fps     float64
	current float64
	rest    int
	resting bool
}

// NewAnimated creates an animation over frames of sheet.
// rest is clamped to [0, len(frames)].
func NewAnimated(sheet *Sheet, frames []core.Rect, fps float64, rest int) Animated {
	if rest < 0 {
		rest = 0
	}
	if rest > len(frames) {
		rest = len(frames)
	}
	return Animated{
		sheet:  sheet,
		frames: frames,
		fps:    fps,
		rest:   rest,
	}
}

// Advance moves the playback clock forward by dt seconds.
func (a *Animated) Advance(dt float64) {
	a.current += dt
	if a.rest > 0 && !a.resting && a.current*a.fps >= float64(len(a.frames)-a.rest) {
		a.frames = a.frames[len(a.frames)-a.rest:]
		a.resting = true
	}
}

// Index returns the current frame index. It is derived from the accumulated
// time on every call, so SetFPS takes effect immediately.
func (a Animated) Index() int {
	n := len(a.frames)
	if n == 0 {
		return 0
	}
	idx := int(math.Floor(a.current*a.fps)) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// SetFPS changes the playback rate.
func (a *Animated) SetFPS(fps float64) {
	a.fps = fps
}

// FPS returns the playback rate.
func (a Animated) FPS() float64 {
	return a.fps
}

// Current returns the frame to draw now.
func (a Animated) Current() Sprite {
	if len(a.frames) == 0 {
		return Sprite{Sheet: a.sheet}
	}
	return Sprite{Sheet: a.sheet, Region: a.frames[a.Index()]}
}

// Size returns the dimensions of the current frame.
func (a Animated) Size() (float64, float64) {
	return a.Current().Size()
}

// CurrentTime returns the seconds accumulated since the animation started.
func (a Animated) CurrentTime() float64 {
	return a.current
}

// Frames returns the number of frames in the active cycle.
func (a Animated) Frames() int {
	return len(a.frames)
}

// Resting reports whether the animation switched to its rest frames.
func (a Animated) Resting() bool {
	return a.resting
}

// Duration returns the time one pass over the full frame list takes.
func (a Animated) Duration() float64 {
	if a.fps <= 0 {
		return math.Inf(1)
	}
	return float64(len(a.frames)) / a.fps
}
