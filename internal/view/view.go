// Package view defines the interchangeable full-screen modes of the game
// (menu, gameplay, high scores) and the context they render with.
// Views contain no terminal code; the platform feeds them input and presents
// what they draw.
package view

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/logging"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// View is one full-screen game mode.
//
// Render is called once per accepted frame with the seconds elapsed since the
// previous frame. Input has already been polled. The returned Action tells the
// loop whether to keep this view, replace it or stop. A non-nil error aborts
// the loop.
type View interface {
	Render(ctx *Context, elapsed float64) (Action, error)
}

// ActionKind identifies what the loop does after a frame.
type ActionKind int

const (
	ActionContinue ActionKind = iota
	ActionQuit
	ActionSwitch
)

// Action is the result of rendering a frame.
type Action struct {
	Kind ActionKind
	Next View // set for ActionSwitch
}

// Continue keeps the current view active.
func Continue() Action {
	return Action{Kind: ActionContinue}
}

// Quit stops the loop.
func Quit() Action {
	return Action{Kind: ActionQuit}
}

// SwitchTo replaces the current view with next.
func SwitchTo(next View) Action {
	return Action{Kind: ActionSwitch, Next: next}
}

// Context holds the collaborators a view may use. It belongs to a single
// session and is only touched from that session's frame goroutine.
type Context struct {
	Input    *core.Input
	Renderer render.Renderer
	Assets   *assets.Loader
	Audio    audio.Player
	Config   *config.Config
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Rand     *rand.Rand

	// Store records finished runs. May be nil.
	Store *storage.Store
	// PlayerName is recorded with scores.
	PlayerName string
	// SessionID identifies the terminal or SSH session in logs.
	SessionID string
}

// Bounds returns the renderer's logical area.
func (c *Context) Bounds() core.Rect {
	w, h := c.Renderer.OutputSize()
	return core.NewRect(0, 0, w, h)
}

// Log returns the context's logger, or one that discards everything.
func (c *Context) Log() *log.Logger {
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c.Logger
}

// Sound plays a named effect. Empty names and a missing player are ignored.
func (c *Context) Sound(name string) {
	if c.Audio == nil || name == "" {
		return
	}
	c.Audio.Play(name)
}
