package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// ErrNoView is returned when a view switches to nothing.
var ErrNoView = errors.New("engine: switch to nil view")

// Loop owns the active view and runs one frame at a time.
type Loop struct {
	ctx    *view.Context
	source core.EventSource
	active view.View

	frames   uint64
	switches int
	done     bool
}

// NewLoop creates a loop starting at first. ctx.Input is created if nil.
func NewLoop(ctx *view.Context, source core.EventSource, first view.View) *Loop {
	if ctx.Input == nil {
		ctx.Input = &core.Input{}
	}
	return &Loop{
		ctx:    ctx,
		source: source,
		active: first,
	}
}

// Frame polls input, renders the active view and applies its action.
// The frame is presented only when the view continues.
func (l *Loop) Frame(elapsed float64) (bool, error) {
	if l.done {
		return true, nil
	}

	l.ctx.Input.Poll(l.source)
	if l.ctx.Input.Now.Quit {
		l.done = true
		return true, nil
	}

	l.frames++
	action, err := l.active.Render(l.ctx, elapsed)
	if err != nil {
		l.done = true
		return true, fmt.Errorf("engine: frame %d: %w", l.frames, err)
	}

	switch action.Kind {
	case view.ActionQuit:
		l.done = true
		return true, nil
	case view.ActionSwitch:
		if action.Next == nil {
			l.done = true
			return true, ErrNoView
		}
		l.active = action.Next
		l.switches++
		if l.ctx.Logger != nil {
			l.ctx.Logger.Debug("view switched", "view", fmt.Sprintf("%T", action.Next), "frame", l.frames)
		}
	default:
		l.ctx.Renderer.Present()
	}

	return false, nil
}

// Active returns the current view.
func (l *Loop) Active() view.View {
	return l.active
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Switches returns how many times the active view changed.
func (l *Loop) Switches() int {
	return l.switches
}

// Done reports whether the loop has terminated.
func (l *Loop) Done() bool {
	return l.done
}
