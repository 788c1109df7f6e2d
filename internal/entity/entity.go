// Package entity implements the game objects of a shooter run: the player,
// bullets, enemies and explosions, and the per-frame protocol that updates,
// collides and culls them.
package entity

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
)

var (
	// ErrInvalidHitbox is returned when an entity would be built with a
	// negative or non-finite size.
	ErrInvalidHitbox = errors.New("entity: invalid hitbox")

	// ErrPlayerTooLarge is returned when the player does not fit its movable region.
	ErrPlayerTooLarge = errors.New("entity: player larger than movable region")
)

// Env is what entities may read about the world while updating.
type Env struct {
	// Bounds is the visible area. Entities that leave it are dropped.
	Bounds core.Rect
}

// Bullet is a projectile fired by the player.
// Update consumes the bullet and returns its next state, or false once it is gone.
type Bullet interface {
	Update(dt float64, env Env) (Bullet, bool)
	Render(r render.Renderer)
	Hitbox() core.Rect
}

// Enemy is a hostile entity that can be shot down.
type Enemy interface {
	Update(dt float64, env Env) (Enemy, bool)
	Render(r render.Renderer)
	Hitbox() core.Rect
	// Points is the score awarded for destroying the enemy.
	Points() int
}

func checkSize(what string, w, h float64) error {
	if !core.WithSize(w, h).Valid() {
		return fmt.Errorf("%w: %s %vx%v", ErrInvalidHitbox, what, w, h)
	}
	return nil
}
