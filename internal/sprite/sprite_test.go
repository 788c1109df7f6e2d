package sprite

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func grid(n int) []core.Rect {
	frames := make([]core.Rect, n)
	for i := range frames {
		frames[i] = core.NewRect(float64(i*16), 0, 16, 16)
	}
	return frames
}

func TestAnimatedIndex(t *testing.T) {
	tests := []struct {
		name     string
		frames   int
		fps      float64
		elapsed  float64
		expected int
	}{
		{"start", 4, 10, 0, 0},
		{"mid first frame", 4, 10, 0.05, 0},
		{"second frame", 4, 10, 0.125, 1},
		{"wraps", 4, 10, 0.5, 1},
		{"many cycles", 17, 16, 3.0, 48 % 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnimated(nil, grid(tc.frames), tc.fps, 0)
			a.Advance(tc.elapsed)
			if got := a.Index(); got != tc.expected {
				t.Errorf("Index() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestAnimatedAdvanceAssociative(t *testing.T) {
	// Dyadic steps so the float sums are exact.
	split := NewAnimated(nil, grid(16), 13, 4)
	split.Advance(0.25)
	split.Advance(0.125)

	whole := NewAnimated(nil, grid(16), 13, 4)
	whole.Advance(0.375)

	if split.Index() != whole.Index() {
		t.Errorf("Index() differs: split %d, whole %d", split.Index(), whole.Index())
	}
	if split.Resting() != whole.Resting() {
		t.Errorf("Resting() differs: split %v, whole %v", split.Resting(), whole.Resting())
	}
	if split.Current() != whole.Current() {
		t.Errorf("Current() differs: split %+v, whole %+v", split.Current(), whole.Current())
	}
}

func TestAnimatedRestTransition(t *testing.T) {
	frames := grid(16)
	a := NewAnimated(nil, frames, 10, 4)

	a.Advance(1.1)
	if a.Resting() {
		t.Fatal("should not rest before 12 frames played")
	}
	if a.Frames() != 16 {
		t.Errorf("Frames() = %d before rest, expected 16", a.Frames())
	}

	a.Advance(0.1)
	if !a.Resting() {
		t.Fatal("should rest once 12 frames played")
	}
	if a.Frames() != 4 {
		t.Errorf("Frames() = %d after rest, expected 4", a.Frames())
	}

	for i := 0; i < 50; i++ {
		a.Advance(0.07)
		region := a.Current().Region
		if region.X < frames[12].X {
			t.Fatalf("step %d: frame %+v is not a rest frame", i, region)
		}
	}
}

func TestAnimatedCopyIsIndependent(t *testing.T) {
	template := NewAnimated(nil, grid(16), 10, 4)

	a := template
	a.Advance(2)

	if template.CurrentTime() != 0 {
		t.Error("advancing a copy should not touch the template")
	}
	if template.Frames() != 16 {
		t.Error("rest transition of a copy should not touch the template")
	}
}

func TestAnimatedSetFPS(t *testing.T) {
	a := NewAnimated(nil, grid(8), 10, 0)
	a.Advance(0.25)
	if a.Index() != 2 {
		t.Fatalf("Index() = %d, expected 2", a.Index())
	}

	a.SetFPS(20)
	if a.Index() != 5 {
		t.Errorf("Index() after SetFPS = %d, expected 5", a.Index())
	}
}

func TestAnimatedSize(t *testing.T) {
	frames := []core.Rect{core.NewRect(0, 0, 16, 20), core.NewRect(16, 0, 16, 20)}
	a := NewAnimated(nil, frames, 1, 0)

	w, h := a.Size()
	if w != 16 || h != 20 {
		t.Errorf("Size() = (%v, %v), expected (16, 20)", w, h)
	}
}

func TestAnimatedDuration(t *testing.T) {
	a := NewAnimated(nil, grid(17), 16, 0)
	if got := a.Duration(); got != 17.0/16.0 {
		t.Errorf("Duration() = %v, expected %v", got, 17.0/16.0)
	}
}

func TestAnimatedEmpty(t *testing.T) {
	a := NewAnimated(nil, nil, 10, 3)
	a.Advance(1)
	if a.Index() != 0 {
		t.Errorf("Index() = %d, expected 0", a.Index())
	}
}
