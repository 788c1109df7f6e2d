package view

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// Background is a tiled image scrolling downwards.
// Its position depends only on time and the image size, so it looks the same
// at every window size.
type Background struct {
	Sprite sprite.Sprite
	// Vel is the scroll speed in image units per second.
	Vel float64

	pos float64
}

// Render advances the scroll by elapsed seconds and draws enough tiles,
// scaled to the window width, to cover the window.
func (b *Background) Render(r render.Renderer, elapsed float64) {
	sw, sh := b.Sprite.Size()
	if sw <= 0 || sh <= 0 {
		return
	}

	b.pos = math.Mod(b.pos+b.Vel*elapsed, sh)

	winW, winH := r.OutputSize()
	scale := winW / sw
	tileW, tileH := sw*scale, sh*scale

	for y := b.pos*scale - tileH; y < winH; y += tileH {
		r.Copy(b.Sprite, rectAt(0, y, tileW, tileH))
	}
}

// Pos returns the scroll offset in image units.
func (b *Background) Pos() float64 {
	return b.pos
}

// Backgrounds is the state carried between views so scrolling continues
// seamlessly across menu and gameplay.
type Backgrounds struct {
	Back Background
}

// Render draws every layer.
func (s *Backgrounds) Render(r render.Renderer, elapsed float64) {
	s.Back.Render(r, elapsed)
}

// LoadBackgrounds builds the backgrounds described by the context's config.
func LoadBackgrounds(ctx *Context) (*Backgrounds, error) {
	cfg := ctx.Config.Background
	s, err := ctx.Assets.Still(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("view: background: %w", err)
	}
	return &Backgrounds{Back: Background{Sprite: s, Vel: cfg.Velocity}}, nil
}
