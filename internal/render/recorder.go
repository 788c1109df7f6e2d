package render

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCopy
	OpFill
	OpText
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind   OpKind
	Sprite sprite.Sprite
	Dst    core.Rect
	Color  core.RGB
	Text   string
}

// Recorder is a Renderer that draws nothing and remembers the calls of the
// current frame. Used for headless runs and tests.
type Recorder struct {
	Width, Height float64

	// Ops holds the calls made since the last Clear.
	Ops []Op
	// Frames counts Present calls.
	Frames int
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Clear(c core.RGB) {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear, Color: c})
}

func (r *Recorder) Copy(s sprite.Sprite, dst core.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpCopy, Sprite: s, Dst: dst})
}

func (r *Recorder) FillRect(c core.RGB, dst core.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c, Dst: dst})
}

func (r *Recorder) DrawText(x, y float64, text string, fg core.RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Dst: core.NewRect(x, y, 0, 0), Color: fg, Text: text})
}

func (r *Recorder) OutputSize() (float64, float64) {
	return r.Width, r.Height
}

func (r *Recorder) Present() {
	r.Frames++
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the text of every recorded DrawText call.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			texts = append(texts, op.Text)
		}
	}
	return texts
}
