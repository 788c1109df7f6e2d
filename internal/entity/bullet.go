package entity

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
)

// BulletColor is the fill color of every bullet.
var BulletColor = core.RGB{R: 230, G: 230, B: 30}

// Ballistics holds the parameters shared by every bullet kind.
type Ballistics struct {
	W, H      float64
	Speed     float64 // straight and sine bullets, units per second
	SlowSpeed float64 // divergent bullets
}

// DefaultBallistics returns the stock bullet parameters.
func DefaultBallistics() Ballistics {
	return Ballistics{W: 4, H: 8, Speed: 600, SlowSpeed: 300}
}

// Validate checks the bullet size.
func (b Ballistics) Validate() error {
	return checkSize("bullet", b.W, b.H)
}

// RectBullet travels straight up.
type RectBullet struct {
	rect  core.Rect
	speed float64
}

func (b RectBullet) Update(dt float64, env Env) (Bullet, bool) {
	b.rect.Y -= b.speed * dt
	return b, env.Bounds.Overlaps(b.rect)
}

func (b RectBullet) Render(r render.Renderer) {
	r.FillRect(BulletColor, b.rect)
}

func (b RectBullet) Hitbox() core.Rect {
	return b.rect
}

// SineBullet travels up while swaying around its launch column.
type SineBullet struct {
	posX, originY float64
	w, h          float64
	speed         float64
	amplitude     float64
	angularVel    float64
	totalTime     float64
}

func (b SineBullet) Update(dt float64, env Env) (Bullet, bool) {
	b.totalTime += dt
	b.originY -= b.speed * dt
	return b, env.Bounds.Overlaps(b.Hitbox())
}

func (b SineBullet) Render(r render.Renderer) {
	r.FillRect(BulletColor, b.Hitbox())
}

func (b SineBullet) Hitbox() core.Rect {
	dx := b.amplitude * math.Sin(b.angularVel*b.totalTime)
	return core.NewRect(b.posX+dx, b.originY, b.w, b.h)
}

// DivergentBullet drifts sideways along a cubic curve while rising slowly.
// a scales the drift, b stretches it in time.
type DivergentBullet struct {
	posX, originY float64
	w, h          float64
	speed         float64
	a, b          float64
	totalTime     float64
}

func (d DivergentBullet) Update(dt float64, env Env) (Bullet, bool) {
	d.totalTime += dt
	d.originY -= d.speed * dt
	return d, env.Bounds.Overlaps(d.Hitbox())
}

func (d DivergentBullet) Render(r render.Renderer) {
	r.FillRect(BulletColor, d.Hitbox())
}

func (d DivergentBullet) Hitbox() core.Rect {
	t := d.totalTime / d.b
	dx := d.a * (t*t*t - t*t)
	return core.NewRect(d.posX+dx, d.originY, d.w, d.h)
}

// CannonKind selects the bullet a cannon fires.
type CannonKind int

const (
	CannonRect CannonKind = iota
	CannonSine
	CannonDivergent
)

// String returns the name shown in the HUD.
func (k CannonKind) String() string {
	switch k {
	case CannonRect:
		return "straight"
	case CannonSine:
		return "sine"
	case CannonDivergent:
		return "divergent"
	default:
		return "unknown"
	}
}

// Cannon is a weapon configuration. Only the fields of its Kind are used.
type Cannon struct {
	Kind CannonKind

	// Sine
	Amplitude  float64
	AngularVel float64

	// Divergent
	A, B float64
}

// DefaultCannons returns the three stock weapons bound to keys 1, 2 and 3.
func DefaultCannons() [3]Cannon {
	return [3]Cannon{
		{Kind: CannonRect},
		{Kind: CannonSine, Amplitude: 10, AngularVel: 15},
		{Kind: CannonDivergent, A: 100, B: 1.2},
	}
}

// Fire launches the cannon's bullets from the muzzle at (x, y). The bullet is
// centered on x with its top edge at y.
func (c Cannon) Fire(x, y float64, bal Ballistics) []Bullet {
	left := x - bal.W/2
	switch c.Kind {
	case CannonSine:
		return []Bullet{SineBullet{
			posX: left, originY: y, w: bal.W, h: bal.H,
			speed: bal.Speed, amplitude: c.Amplitude, angularVel: c.AngularVel,
		}}
	case CannonDivergent:
		b := c.B
		if b == 0 {
			b = 1
		}
		return []Bullet{DivergentBullet{
			posX: left, originY: y, w: bal.W, h: bal.H,
			speed: bal.SlowSpeed, a: -c.A, b: b,
		}}
	default:
		return []Bullet{RectBullet{
			rect:  core.NewRect(left, y, bal.W, bal.H),
			speed: bal.Speed,
		}}
	}
}
