// Package game implements the gameplay view: one run from launch to the
// destruction of the player's ship.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/entity"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// ID is the registry ID of the gameplay view.
const ID = "game"

// MenuID is where Escape leads.
const MenuID = "menu"

var overlayColor = core.RGB{R: 20, G: 20, B: 40}

func init() {
	registry.Register(ID, "New Game", New)
}

// View is a single run.
type View struct {
	bg         *view.Backgrounds
	world      *entity.World
	difficulty *config.DifficultyManager

	runID     string
	score     int
	kills     int
	seconds   float64
	highScore int

	over  bool
	saved bool
}

// New starts a run. Without carried backgrounds it loads fresh ones.
func New(ctx *view.Context, carried *view.Backgrounds) (view.View, error) {
	bg := carried
	if bg == nil {
		var err error
		if bg, err = view.LoadBackgrounds(ctx); err != nil {
			return nil, err
		}
	}

	rng := ctx.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(ctx.Runtime.Seed))
	}

	world, err := newWorld(ctx, rng)
	if err != nil {
		return nil, err
	}

	v := &View{
		bg:         bg,
		world:      world,
		difficulty: config.NewDifficultyManager(ctx.Config.Difficulty),
		runID:      uuid.NewString(),
	}

	if ctx.Store != nil {
		if hs, err := ctx.Store.HighScore(); err == nil {
			v.highScore = hs
		} else {
			ctx.Log().Warn("could not read high score", "error", err)
		}
	}

	ctx.Log().Info("run started", "run", v.runID, "session", ctx.SessionID)
	return v, nil
}

// Score returns the points earned so far.
func (v *View) Score() int {
	return v.score
}

// Kills returns how many enemies were destroyed.
func (v *View) Kills() int {
	return v.kills
}

// Over reports whether the player's ship was destroyed.
func (v *View) Over() bool {
	return v.over
}

// Render runs one frame of gameplay and draws it.
func (v *View) Render(ctx *view.Context, elapsed float64) (view.Action, error) {
	in := ctx.Input
	if in.Now.Quit {
		return view.Quit(), nil
	}
	if in.Pressed(core.KeyEscape) {
		return registry.Switch(MenuID, ctx, v.bg)
	}
	if v.over && in.Pressed(core.KeyEnter) {
		return registry.Switch(ID, ctx, v.bg)
	}

	if err := v.update(ctx, elapsed); err != nil {
		return view.Action{}, err
	}

	v.draw(ctx, elapsed)
	return view.Continue(), nil
}

func (v *View) update(ctx *view.Context, elapsed float64) error {
	env := entity.Env{Bounds: ctx.Bounds()}
	cfg := ctx.Config

	if !v.over {
		v.seconds += elapsed
	}
	if sp := v.world.Spawner(); sp != nil {
		sp.Chance = v.difficulty.SpawnChance(cfg.Enemies.SpawnChance, v.score, v.seconds)
		sp.Speed = v.difficulty.Speed(v.score, v.seconds)
	}

	cmd := entity.Commands{Fire: !v.over && ctx.Input.Pressed(core.KeySpace)}
	report := v.world.Step(elapsed, env, cmd)

	if report.Fired > 0 {
		ctx.Sound(cfg.Sounds.Fire)
	}
	if report.Kills > 0 {
		ctx.Sound(cfg.Sounds.Explosion)
	}

	if v.over {
		return nil
	}

	v.score += report.Points
	v.kills += report.Kills

	if !v.world.PlayerAlive {
		v.gameOver(ctx)
		return nil
	}

	return v.world.Player.Update(elapsed, ctx.Input, env.Bounds)
}

func (v *View) gameOver(ctx *view.Context) {
	v.over = true
	// The wreck is gone; enemies and explosions keep moving behind the overlay.
	v.world.Player = nil

	ctx.Log().Info("player destroyed",
		"run", v.runID,
		"score", v.score,
		"kills", v.kills,
		"seconds", fmt.Sprintf("%.1f", v.seconds),
	)
	v.save(ctx)
}

// save records the run once. Failures are logged and the game continues.
func (v *View) save(ctx *view.Context) {
	if v.saved || v.score <= 0 || ctx.Store == nil {
		return
	}
	v.saved = true

	_, err := ctx.Store.SaveScore(storage.ScoreEntry{
		RunID:    v.runID,
		Player:   ctx.PlayerName,
		Score:    v.score,
		Kills:    v.kills,
		Duration: int(v.seconds),
	})
	if err != nil {
		ctx.Log().Warn("could not save score", "run", v.runID, "error", err)
		return
	}
	if v.score > v.highScore {
		v.highScore = v.score
	}
	ctx.Log().Info("score saved", "run", v.runID, "score", v.score)
}

func (v *View) draw(ctx *view.Context, elapsed float64) {
	r := ctx.Renderer
	r.Clear(core.ColorBlack)
	v.bg.Render(r, elapsed)
	v.world.Render(r)
	v.drawHUD(ctx)

	if v.over {
		v.drawGameOver(ctx)
	}
}

func (v *View) drawHUD(ctx *view.Context) {
	r := ctx.Renderer
	w, _ := r.OutputSize()
	cw, ch := view.CellSize(r)

	r.DrawText(cw, ch/2, fmt.Sprintf("SCORE %d", v.score), core.ColorWhite)

	hi := fmt.Sprintf("HI %d", max(v.highScore, v.score))
	r.DrawText(w-view.TextWidth(r, hi)-cw, ch/2, hi, core.ColorYellow)

	if v.world.Player != nil {
		_, h := r.OutputSize()
		r.DrawText(cw, h-ch*1.5, "GUN "+v.world.Player.Cannon().Kind.String(), core.ColorGray)
	}
}

func (v *View) drawGameOver(ctx *view.Context) {
	r := ctx.Renderer
	w, h := r.OutputSize()
	_, ch := view.CellSize(r)

	boxH := ch * 7
	r.FillRect(overlayColor, core.NewRect(w/4, (h-boxH)/2, w/2, boxH))

	y := (h-boxH)/2 + ch
	view.DrawCentered(r, y, "GAME OVER", core.ColorRed)
	view.DrawCentered(r, y+ch*2, fmt.Sprintf("Score %d  Kills %d", v.score, v.kills), core.ColorWhite)
	view.DrawCentered(r, y+ch*4, "Enter: play again  Esc: menu", core.ColorGray)
}
