package entity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// ShipFrame is a pose of the player's ship. Frames are laid out row by row in
// the sheet: tilt (up, mid, down) by thrust (normal, fast, slow).
type ShipFrame int

const (
	UpNorm ShipFrame = iota
	UpFast
	UpSlow
	MidNorm
	MidFast
	MidSlow
	DownNorm
	DownFast
	DownSlow

	shipFrames
)

// ShipFrames is the number of sprites a ship sheet must provide.
const ShipFrames = int(shipFrames)

// PlayerParams configures the player's ship.
type PlayerParams struct {
	W, H  float64
	Speed float64 // units per second
	// Band is the fraction of the screen height, measured from the bottom,
	// the ship may move in.
	Band       float64
	Cannons    [3]Cannon
	Ballistics Ballistics
}

// Player is the ship controlled by the keyboard.
type Player struct {
	rect    core.Rect
	sprites []sprite.Sprite
	frame   ShipFrame
	cannon  Cannon
	params  PlayerParams
}

// NewPlayer places the ship at the bottom center of bounds.
// sprites must hold ShipFrames poses, or be empty to draw a plain box.
func NewPlayer(sprites []sprite.Sprite, p PlayerParams, bounds core.Rect) (*Player, error) {
	if err := checkSize("player", p.W, p.H); err != nil {
		return nil, err
	}
	if err := p.Ballistics.Validate(); err != nil {
		return nil, err
	}
	if len(sprites) != 0 && len(sprites) != ShipFrames {
		return nil, fmt.Errorf("entity: player needs %d sprites, got %d", ShipFrames, len(sprites))
	}

	pl := &Player{
		sprites: sprites,
		frame:   MidNorm,
		cannon:  p.Cannons[0],
		params:  p,
	}
	start := core.NewRect(bounds.X+(bounds.W-p.W)/2, bounds.Bottom()-p.H, p.W, p.H)
	rect, ok := start.MoveInside(pl.MovableRegion(bounds))
	if !ok {
		return nil, fmt.Errorf("%w: %vx%v ship, %+v region", ErrPlayerTooLarge, p.W, p.H, pl.MovableRegion(bounds))
	}
	pl.rect = rect
	return pl, nil
}

// MovableRegion returns the part of bounds the ship is confined to.
func (p *Player) MovableRegion(bounds core.Rect) core.Rect {
	h := bounds.H * p.params.Band
	return core.NewRect(bounds.X, bounds.Bottom()-h, bounds.W, h)
}

// Hitbox returns the ship's rectangle.
func (p *Player) Hitbox() core.Rect {
	return p.rect
}

// Frame returns the pose selected by the last Update.
func (p *Player) Frame() ShipFrame {
	return p.frame
}

// Cannon returns the active weapon.
func (p *Player) Cannon() Cannon {
	return p.cannon
}

// Fire launches bullets from the middle of the ship's nose.
func (p *Player) Fire() []Bullet {
	x, _ := p.rect.Center()
	return p.cannon.Fire(x, p.rect.Y, p.params.Ballistics)
}

// Update switches weapons, moves the ship and picks its pose.
// It fails only when the ship cannot fit the movable region of bounds.
func (p *Player) Update(dt float64, in *core.Input, bounds core.Rect) error {
	for i, k := range []core.Key{core.Key1, core.Key2, core.Key3} {
		if in.Pressed(k) {
			p.cannon = p.params.Cannons[i]
		}
	}

	up, down := in.Held(core.KeyUp), in.Held(core.KeyDown)
	left, right := in.Held(core.KeyLeft), in.Held(core.KeyRight)

	moved := p.params.Speed * dt
	if (up != down) && (left != right) {
		moved /= math.Sqrt2
	}

	var dx, dy float64
	switch {
	case left && !right:
		dx = -moved
	case right && !left:
		dx = moved
	}
	switch {
	case up && !down:
		dy = -moved
	case down && !up:
		dy = moved
	}

	rect, ok := p.rect.Translate(dx, dy).MoveInside(p.MovableRegion(bounds))
	if !ok {
		return fmt.Errorf("%w: %vx%v ship, %+v region", ErrPlayerTooLarge, p.rect.W, p.rect.H, p.MovableRegion(bounds))
	}
	p.rect = rect
	p.frame = shipFrame(dx, dy)
	return nil
}

func shipFrame(dx, dy float64) ShipFrame {
	row := MidNorm
	switch {
	case dy < 0:
		row = UpNorm
	case dy > 0:
		row = DownNorm
	}
	switch {
	case dx > 0:
		return row + 1
	case dx < 0:
		return row + 2
	}
	return row
}

func (p *Player) Render(r render.Renderer) {
	if len(p.sprites) == 0 {
		r.FillRect(core.ColorCyan, p.rect)
		return
	}
	r.Copy(p.sprites[p.frame], p.rect)
}
