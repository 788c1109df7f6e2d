package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/entity"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// Enemy kinds in the spawn table.
const (
	KindInvader  = "invader"
	KindAsteroid = "asteroid"
)

// ballistics converts the bullet section of cfg.
func ballistics(cfg config.BulletsConfig) entity.Ballistics {
	return entity.Ballistics{
		W:         cfg.Width,
		H:         cfg.Height,
		Speed:     cfg.Speed,
		SlowSpeed: cfg.SlowSpeed,
	}
}

// cannons returns the weapons bound to keys 1, 2 and 3.
func cannons(cfg config.BulletsConfig) [3]entity.Cannon {
	return [3]entity.Cannon{
		{Kind: entity.CannonRect},
		{Kind: entity.CannonSine, Amplitude: cfg.Sine.Amplitude, AngularVel: cfg.Sine.AngularVel},
		{Kind: entity.CannonDivergent, A: cfg.Divergent.A, B: cfg.Divergent.B},
	}
}

// newWorld loads every sprite a run needs and places the player.
func newWorld(ctx *view.Context, rng *rand.Rand) (*entity.World, error) {
	cfg := ctx.Config
	bounds := ctx.Bounds()

	ship, err := ctx.Assets.Sprites(cfg.Player.Sheet)
	if err != nil {
		return nil, fmt.Errorf("game: player: %w", err)
	}
	player, err := entity.NewPlayer(ship, entity.PlayerParams{
		W:          cfg.Player.Width,
		H:          cfg.Player.Height,
		Speed:      cfg.Player.Speed,
		Band:       cfg.Player.Band,
		Cannons:    cannons(cfg.Bullets),
		Ballistics: ballistics(cfg.Bullets),
	}, bounds)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	inv := cfg.Enemies.Invader
	invAnim, err := ctx.Assets.Animated(inv.Sheet)
	if err != nil {
		return nil, fmt.Errorf("game: invader: %w", err)
	}
	invaders, err := entity.NewInvaderFactory(invAnim, entity.InvaderParams{
		W:          inv.Width,
		H:          inv.Height,
		MinFPS:     inv.MinFPS,
		MaxFPS:     inv.MaxFPS,
		Amplitude:  inv.Amplitude,
		AngularVel: inv.AngularVel,
		Lifetime:   inv.Lifetime,
		OriginY:    inv.OriginY,
		Points:     inv.Points,
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	ast := cfg.Enemies.Asteroid
	astAnim, err := ctx.Assets.Animated(ast.Sheet)
	if err != nil {
		return nil, fmt.Errorf("game: asteroid: %w", err)
	}
	asteroids, err := entity.NewAsteroidFactory(astAnim, entity.AsteroidParams{
		Side:       ast.Side,
		MinSpeed:   ast.MinSpeed,
		MaxSpeed:   ast.MaxSpeed,
		Amplitude:  ast.Amplitude,
		AngularVel: ast.AngularVel,
		FPS:        ast.Sheet.FPS,
		Points:     ast.Points,
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	expAnim, err := ctx.Assets.Animated(cfg.Explosion.Sheet)
	if err != nil {
		return nil, fmt.Errorf("game: explosion: %w", err)
	}
	explosions, err := entity.NewExplosionFactory(expAnim, cfg.Explosion.Side)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	spawner := entity.NewSpawner(cfg.Enemies.SpawnChance,
		entity.SpawnEntry{Name: KindInvader, Weight: inv.Weight, Factory: invaders},
		entity.SpawnEntry{Name: KindAsteroid, Weight: ast.Weight, Factory: asteroids},
	)

	return entity.NewWorld(player, explosions, spawner, rng), nil
}
