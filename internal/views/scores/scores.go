// Package scores implements the high score table view.
package scores

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// ID is the registry ID of the high score view.
const ID = "scores"

// MenuID is where the view returns to.
const MenuID = "menu"

// Limit is the number of rows shown.
const Limit = 10

var tableColor = core.RGB{R: 20, G: 20, B: 40}

func init() {
	registry.Register(ID, "High Scores", New)
}

// View lists the best runs. The table is read once when the view opens.
type View struct {
	bg      *view.Backgrounds
	entries []storage.ScoreEntry
	message string
}

// New reads the table. A missing or failing store leaves a message instead.
func New(ctx *view.Context, carried *view.Backgrounds) (view.View, error) {
	bg := carried
	if bg == nil {
		var err error
		if bg, err = view.LoadBackgrounds(ctx); err != nil {
			return nil, err
		}
	}

	v := &View{bg: bg}
	switch {
	case ctx.Store == nil:
		v.message = "Scores are not being recorded"
	default:
		entries, err := ctx.Store.TopScores(Limit)
		if err != nil {
			ctx.Log().Warn("could not read scores", "error", err)
			v.message = "Could not read scores"
			break
		}
		v.entries = entries
		if len(entries) == 0 {
			v.message = "No scores recorded yet"
		}
	}
	return v, nil
}

// Entries returns the rows shown.
func (v *View) Entries() []storage.ScoreEntry {
	return v.entries
}

// Render draws the table. Escape, Enter or Space go back to the menu.
func (v *View) Render(ctx *view.Context, elapsed float64) (view.Action, error) {
	in := ctx.Input
	if in.Now.Quit {
		return view.Quit(), nil
	}
	if in.Pressed(core.KeyEscape) || in.Pressed(core.KeyEnter) || in.Pressed(core.KeySpace) {
		return registry.Switch(MenuID, ctx, v.bg)
	}

	r := ctx.Renderer
	r.Clear(core.ColorBlack)
	v.bg.Render(r, elapsed)

	w, h := r.OutputSize()
	_, ch := view.CellSize(r)
	r.FillRect(tableColor, core.NewRect(w/8, ch, w*3/4, h-ch*2))

	y := ch * 2
	view.DrawCentered(r, y, "HIGH SCORES", core.ColorYellow)
	y += ch * 2

	if v.message != "" {
		view.DrawCentered(r, y, v.message, core.ColorGray)
	} else {
		view.DrawCentered(r, y, Row("#", "PLAYER", "SCORE", "KILLS", "DATE"), core.ColorGray)
		y += ch * 1.5
		for i, e := range v.entries {
			view.DrawCentered(r, y, Format(i+1, e), core.ColorWhite)
			y += ch * 1.5
		}
	}

	view.DrawCentered(r, h-ch*3, "Esc: back", core.ColorGray)
	return view.Continue(), nil
}

// Row lays out one line of the table.
func Row(rank, player, score, kills, date string) string {
	return fmt.Sprintf("%-3s %-12s %7s %5s  %-10s", rank, player, score, kills, date)
}

// Format renders an entry as a table row.
func Format(rank int, e storage.ScoreEntry) string {
	player := e.Player
	if player == "" {
		player = "-"
	}
	if len(player) > 12 {
		player = player[:12]
	}
	date := "-"
	if !e.CreatedAt.IsZero() {
		date = e.CreatedAt.Format("2006-01-02")
	}
	return Row(fmt.Sprintf("%d.", rank), player, fmt.Sprint(e.Score), fmt.Sprint(e.Kills), date)
}
