package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/render"
)

// Commands are the player's requests for one frame.
type Commands struct {
	// Fire launches the active cannon. Callers pass the key's press edge, so
	// holding the key fires once.
	Fire bool
}

// StepReport summarizes what happened during one Step.
type StepReport struct {
	Kills     int // enemies destroyed by bullets or by ramming the player
	Points    int
	Fired     int // bullets launched
	Spawned   int // enemies admitted
	PlayerHit bool
}

// World owns every entity population of a run.
type World struct {
	Player     *Player
	Bullets    []Bullet
	Enemies    []Enemy
	Explosions []Explosion

	// PlayerAlive is cleared the first time an enemy touches the player.
	PlayerAlive bool

	explosions ExplosionFactory
	spawner    *Spawner
	rng        *rand.Rand
}

// NewWorld creates a world around player. spawner may be nil to disable
// random enemies.
func NewWorld(player *Player, explosions ExplosionFactory, spawner *Spawner, rng *rand.Rand) *World {
	return &World{
		Player:      player,
		PlayerAlive: true,
		explosions:  explosions,
		spawner:     spawner,
		rng:         rng,
	}
}

// Spawner returns the world's enemy spawner, or nil.
func (w *World) Spawner() *Spawner {
	return w.spawner
}

// Step runs one frame of the entity protocol, strictly in this order:
//
//  1. every bullet, enemy and explosion updates; those that left the screen
//     or outlived their lifetime are dropped
//  2. each enemy is tested against the live bullets; the first overlapping
//     bullet kills it and is spent
//  3. enemies still alive that overlap the player kill the player
//  4. dead enemies are removed and replaced by explosions at their center
//  5. new enemies are rolled and the cannon fires if requested
//
// Deaths never feed back into the same frame's collision checks.
// The player is not moved here.
func (w *World) Step(dt float64, env Env, cmd Commands) StepReport {
	var report StepReport

	bullets := w.Bullets[:0:0]
	for _, b := range w.Bullets {
		if next, ok := b.Update(dt, env); ok {
			bullets = append(bullets, next)
		}
	}

	enemies := w.Enemies[:0:0]
	for _, e := range w.Enemies {
		if next, ok := e.Update(dt, env); ok {
			enemies = append(enemies, next)
		}
	}

	explosions := w.Explosions[:0:0]
	for _, x := range w.Explosions {
		if next, ok := x.Update(dt); ok {
			explosions = append(explosions, next)
		}
	}

	spent := make([]bool, len(bullets))
	survivors := enemies[:0:0]
	for _, e := range enemies {
		hitbox := e.Hitbox()
		dead := false

		// Ties go to the earliest bullet in population order.
		for i, b := range bullets {
			if !spent[i] && hitbox.Overlaps(b.Hitbox()) {
				spent[i] = true
				dead = true
				break
			}
		}

		// A shot enemy still hits the player it overlaps.
		if w.Player != nil && hitbox.Overlaps(w.Player.Hitbox()) {
			dead = true
			w.PlayerAlive = false
			report.PlayerHit = true
		}

		if dead {
			report.Kills++
			report.Points += e.Points()
			explosions = append(explosions, w.explosions.AtCenter(hitbox.Center()))
			continue
		}
		survivors = append(survivors, e)
	}

	live := bullets[:0:0]
	for i, b := range bullets {
		if !spent[i] {
			live = append(live, b)
		}
	}

	if w.spawner != nil && w.rng != nil {
		if e, ok := w.spawner.Roll(w.rng, env.Bounds); ok {
			survivors = append(survivors, e)
			report.Spawned++
		}
	}

	if cmd.Fire && w.Player != nil {
		fired := w.Player.Fire()
		live = append(live, fired...)
		report.Fired = len(fired)
	}

	w.Bullets = live
	w.Enemies = survivors
	w.Explosions = explosions
	return report
}

// Render draws enemies, then bullets, then explosions, then the player.
func (w *World) Render(r render.Renderer) {
	for _, e := range w.Enemies {
		e.Render(r)
	}
	for _, b := range w.Bullets {
		b.Render(r)
	}
	for _, x := range w.Explosions {
		x.Render(r)
	}
	if w.Player != nil {
		w.Player.Render(r)
	}
}
