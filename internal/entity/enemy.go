package entity

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// EnemyFactory creates enemies at random positions inside bounds.
// speed scales the enemy's motion; 1 is the configured pace.
type EnemyFactory interface {
	Spawn(rng *rand.Rand, bounds core.Rect, speed float64) Enemy
}

// InvaderParams configures invaders.
type InvaderParams struct {
	W, H       float64
	MinFPS     float64
	MaxFPS     float64
	Amplitude  float64 // vertical bob, units
	AngularVel float64 // bob rate, radians per second
	Lifetime   float64 // seconds on screen
	OriginY    float64 // fraction of the bounds height for the bob center
	Points     int
}

// Invader hovers in place bobbing up and down, then leaves after its lifetime.
// Its animation plays the arrival frames once and then loops the rest frames.
type Invader struct {
	anim       sprite.Animated
	w, h       float64
	posX       float64
	originY    float64
	amplitude  float64
	angularVel float64
	lifetime   float64
	points     int
}

func (e Invader) Update(dt float64, _ Env) (Enemy, bool) {
	e.anim.Advance(dt)
	return e, e.anim.CurrentTime() < e.lifetime
}

func (e Invader) Render(r render.Renderer) {
	r.Copy(e.anim.Current(), e.Hitbox())
}

func (e Invader) Hitbox() core.Rect {
	dy := e.amplitude * math.Sin(e.angularVel*e.anim.CurrentTime())
	return core.NewRect(e.posX, e.originY+dy, e.w, e.h)
}

func (e Invader) Points() int {
	return e.points
}

// InvaderFactory stamps out invaders from a template animation.
type InvaderFactory struct {
	template sprite.Animated
	params   InvaderParams
}

// NewInvaderFactory validates params and returns a factory.
func NewInvaderFactory(template sprite.Animated, params InvaderParams) (InvaderFactory, error) {
	if err := checkSize("invader", params.W, params.H); err != nil {
		return InvaderFactory{}, err
	}
	return InvaderFactory{template: template, params: params}, nil
}

// Spawn places an invader at a random column. Speed scales its frame rate.
func (f InvaderFactory) Spawn(rng *rand.Rand, bounds core.Rect, speed float64) Enemy {
	p := f.params
	anim := f.template
	anim.SetFPS((p.MinFPS + rng.Float64()*(p.MaxFPS-p.MinFPS)) * speed)

	return Invader{
		anim:       anim,
		w:          p.W,
		h:          p.H,
		posX:       bounds.X + rng.Float64()*math.Max(0, bounds.W-p.W),
		originY:    bounds.Y + bounds.H*p.OriginY - p.H/2,
		amplitude:  p.Amplitude,
		angularVel: p.AngularVel,
		lifetime:   p.Lifetime,
		points:     p.Points,
	}
}

// AsteroidParams configures asteroids.
type AsteroidParams struct {
	Side       float64
	MinSpeed   float64
	MaxSpeed   float64
	Amplitude  float64 // sideways drift, units
	AngularVel float64 // drift rate, radians per second
	FPS        float64
	Points     int
}

// Asteroid falls from the top of the screen, drifting from side to side.
type Asteroid struct {
	anim       sprite.Animated
	side       float64
	vel        float64
	posX       float64
	originY    float64
	amplitude  float64
	angularVel float64
	points     int
}

func (a Asteroid) Update(dt float64, env Env) (Enemy, bool) {
	a.anim.Advance(dt)
	return a, env.Bounds.Overlaps(a.Hitbox())
}

func (a Asteroid) Render(r render.Renderer) {
	r.Copy(a.anim.Current(), a.Hitbox())
}

func (a Asteroid) Hitbox() core.Rect {
	t := a.anim.CurrentTime()
	dx := a.amplitude * math.Sin(a.angularVel*t)
	return core.NewRect(a.posX+dx, a.originY+a.vel*t, a.side, a.side)
}

func (a Asteroid) Points() int {
	return a.points
}

// AsteroidFactory stamps out asteroids from a template animation.
type AsteroidFactory struct {
	template sprite.Animated
	params   AsteroidParams
}

// NewAsteroidFactory validates params and returns a factory.
func NewAsteroidFactory(template sprite.Animated, params AsteroidParams) (AsteroidFactory, error) {
	if err := checkSize("asteroid", params.Side, params.Side); err != nil {
		return AsteroidFactory{}, err
	}
	template.SetFPS(params.FPS)
	return AsteroidFactory{template: template, params: params}, nil
}

// Spawn places an asteroid half above the top edge at a random column.
func (f AsteroidFactory) Spawn(rng *rand.Rand, bounds core.Rect, speed float64) Enemy {
	p := f.params
	amp := p.Amplitude
	x := bounds.X + amp + rng.Float64()*math.Max(0, bounds.W-p.Side-2*amp)

	return Asteroid{
		anim:       f.template,
		side:       p.Side,
		vel:        (p.MinSpeed + rng.Float64()*(p.MaxSpeed-p.MinSpeed)) * speed,
		posX:       x,
		originY:    bounds.Y - p.Side/2,
		amplitude:  amp,
		angularVel: p.AngularVel,
		points:     p.Points,
	}
}
