package entity

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// Explosion plays its animation once and disappears.
type Explosion struct {
	anim       sprite.Animated
	rect       core.Rect
	aliveSince float64
	duration   float64
}

// Update advances the animation and reports whether it is still playing.
func (e Explosion) Update(dt float64) (Explosion, bool) {
	e.aliveSince += dt
	e.anim.Advance(dt)
	return e, e.aliveSince < e.duration
}

func (e Explosion) Render(r render.Renderer) {
	r.Copy(e.anim.Current(), e.rect)
}

// Hitbox returns the area the explosion covers. Explosions never collide.
func (e Explosion) Hitbox() core.Rect {
	return e.rect
}

// ExplosionFactory creates explosions from a template animation.
type ExplosionFactory struct {
	template sprite.Animated
	side     float64
}

// NewExplosionFactory returns a factory for square explosions of the given side.
// An explosion lasts exactly one pass over the template's frames.
func NewExplosionFactory(template sprite.Animated, side float64) (ExplosionFactory, error) {
	if err := checkSize("explosion", side, side); err != nil {
		return ExplosionFactory{}, err
	}
	return ExplosionFactory{template: template, side: side}, nil
}

// AtCenter creates an explosion centered at (x, y).
func (f ExplosionFactory) AtCenter(x, y float64) Explosion {
	return Explosion{
		anim:     f.template,
		rect:     core.WithSize(f.side, f.side).CenterAt(x, y),
		duration: f.template.Duration(),
	}
}
