// Package menu implements the main menu view.
package menu

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// ID is the registry ID of the main menu.
const ID = "menu"

// IDs of the views the menu leads to.
const (
	GameID   = "game"
	ScoresID = "scores"
)

const (
	labelH      = 40.0
	boxW        = 360.0
	borderWidth = 3.0
	marginH     = 10.0
)

var (
	borderColor = core.RGB{R: 70, G: 15, B: 70}
	boxColor    = core.RGB{R: 140, G: 30, B: 140}
	idleColor   = core.RGB{R: 220, G: 220, B: 220}
)

func init() {
	registry.Register(ID, "Main Menu", New)
}

type item struct {
	label string
	pick  func(ctx *view.Context, bg *view.Backgrounds) (view.Action, error)
}

func switchTo(id string) func(*view.Context, *view.Backgrounds) (view.Action, error) {
	return func(ctx *view.Context, bg *view.Backgrounds) (view.Action, error) {
		return registry.Switch(id, ctx, bg)
	}
}

// View is the main menu: a boxed list of entries over the scrolling
// background.
type View struct {
	items    []item
	selected int
	bg       *view.Backgrounds
}

// New creates the menu. Without carried backgrounds it loads fresh ones.
func New(ctx *view.Context, carried *view.Backgrounds) (view.View, error) {
	bg := carried
	if bg == nil {
		var err error
		if bg, err = view.LoadBackgrounds(ctx); err != nil {
			return nil, err
		}
	}

	return &View{
		items: []item{
			{label: "New Game", pick: switchTo(GameID)},
			{label: "High Scores", pick: switchTo(ScoresID)},
			{label: "Quit", pick: func(*view.Context, *view.Backgrounds) (view.Action, error) {
				return view.Quit(), nil
			}},
		},
		bg: bg,
	}, nil
}

// Selected returns the index of the highlighted entry.
func (v *View) Selected() int {
	return v.selected
}

// Render handles navigation and draws the menu.
func (v *View) Render(ctx *view.Context, elapsed float64) (view.Action, error) {
	in := ctx.Input
	if in.Now.Quit || in.Pressed(core.KeyEscape) {
		return view.Quit(), nil
	}

	if in.Pressed(core.KeySpace) || in.Pressed(core.KeyEnter) {
		return v.items[v.selected].pick(ctx, v.bg)
	}

	if in.Pressed(core.KeyUp) {
		v.selected--
		if v.selected < 0 {
			v.selected = len(v.items) - 1
		}
	}
	if in.Pressed(core.KeyDown) {
		v.selected++
		if v.selected >= len(v.items) {
			v.selected = 0
		}
	}

	r := ctx.Renderer
	r.Clear(core.ColorBlack)
	v.bg.Render(r, elapsed)

	winW, winH := r.OutputSize()
	boxH := float64(len(v.items)) * labelH

	r.FillRect(borderColor, core.NewRect(
		(winW-boxW)/2-borderWidth,
		(winH-boxH)/2-marginH-borderWidth,
		boxW+borderWidth*2,
		boxH*1.5+borderWidth*2+marginH*2,
	))
	r.FillRect(boxColor, core.NewRect(
		(winW-boxW)/2,
		(winH-boxH)/2-marginH,
		boxW,
		boxH*1.5+marginH*2,
	))

	for i, it := range v.items {
		y := (winH-boxH+labelH)/2 + labelH*float64(i)
		if i == v.selected {
			view.DrawCentered(r, y, "> "+it.label+" <", core.ColorWhite)
		} else {
			view.DrawCentered(r, y, it.label, idleColor)
		}
	}

	return view.Continue(), nil
}
