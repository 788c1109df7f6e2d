package entity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

// dummy is an enemy that never moves.
type dummy struct {
	rect   core.Rect
	points int
}

func (d dummy) Update(float64, Env) (Enemy, bool) { return d, true }
func (d dummy) Render(r render.Renderer)           { r.FillRect(core.ColorRed, d.rect) }
func (d dummy) Hitbox() core.Rect                  { return d.rect }
func (d dummy) Points() int                        { return d.points }

// still is a bullet that never moves.
type still struct {
	rect core.Rect
}

func (s still) Update(float64, Env) (Bullet, bool) { return s, true }
func (s still) Render(r render.Renderer)           { r.FillRect(BulletColor, s.rect) }
func (s still) Hitbox() core.Rect                  { return s.rect }

func testExplosions(t *testing.T) ExplosionFactory {
	t.Helper()
	frames := make([]core.Rect, 17)
	for i := range frames {
		frames[i] = core.NewRect(float64(i%5)*16, float64(i/5)*16, 16, 16)
	}
	f, err := NewExplosionFactory(sprite.NewAnimated(nil, frames, 16, 0), 96)
	if err != nil {
		t.Fatalf("NewExplosionFactory() error: %v", err)
	}
	return f
}

func testPlayerAt(r core.Rect) *Player {
	return &Player{
		rect:   r,
		frame:  MidNorm,
		cannon: DefaultCannons()[0],
		params: PlayerParams{
			W: r.W, H: r.H, Speed: 360, Band: 0.3,
			Cannons: DefaultCannons(), Ballistics: DefaultBallistics(),
		},
	}
}

var testEnv = Env{Bounds: core.NewRect(0, 0, 640, 384)}

func TestWorldBulletKillsEnemy(t *testing.T) {
	w := NewWorld(testPlayerAt(core.NewRect(300, 330, 43, 39)), testExplosions(t), nil, nil)
	w.Enemies = []Enemy{dummy{rect: core.NewRect(100, 100, 20, 20), points: 10}}
	w.Bullets = []Bullet{RectBullet{rect: core.NewRect(105, 105, 4, 8), speed: 600}}

	report := w.Step(1.0/60.0, testEnv, Commands{})

	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, expected 0", len(w.Enemies))
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, expected 0", len(w.Bullets))
	}
	if len(w.Explosions) != 1 {
		t.Fatalf("explosions = %d, expected 1", len(w.Explosions))
	}
	cx, cy := w.Explosions[0].Hitbox().Center()
	if cx != 110 || cy != 110 {
		t.Errorf("explosion centered at (%v, %v), expected (110, 110)", cx, cy)
	}
	if report.Kills != 1 || report.Points != 10 {
		t.Errorf("report = %+v, expected 1 kill for 10 points", report)
	}
	if !w.PlayerAlive {
		t.Error("player should still be alive")
	}
}

func TestWorldEnemyHitsPlayer(t *testing.T) {
	w := NewWorld(testPlayerAt(core.NewRect(50, 50, 43, 39)), testExplosions(t), nil, nil)
	w.Enemies = []Enemy{dummy{rect: core.NewRect(60, 60, 20, 20)}}

	report := w.Step(1.0/60.0, testEnv, Commands{})

	if len(w.Enemies) != 0 {
		t.Errorf("enemies = %d, expected 0", len(w.Enemies))
	}
	if len(w.Explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(w.Explosions))
	}
	if w.PlayerAlive {
		t.Error("player-alive flag should be false")
	}
	if !report.PlayerHit {
		t.Error("report should mark the player hit")
	}
	if w.Player == nil {
		t.Error("the player entity itself should not be removed")
	}
}

func TestWorldFirstBulletWins(t *testing.T) {
	w := NewWorld(nil, testExplosions(t), nil, nil)
	w.Enemies = []Enemy{
		dummy{rect: core.NewRect(0, 0, 50, 50)},
		dummy{rect: core.NewRect(10, 10, 50, 50)},
	}
	w.Bullets = []Bullet{
		still{rect: core.NewRect(20, 20, 4, 8)},
		still{rect: core.NewRect(30, 30, 4, 8)},
		still{rect: core.NewRect(400, 300, 4, 8)},
	}

	report := w.Step(0, testEnv, Commands{})

	if report.Kills != 2 {
		t.Errorf("Kills = %d, expected 2", report.Kills)
	}
	if len(w.Bullets) != 1 || w.Bullets[0].Hitbox().X != 400 {
		t.Errorf("only the untouched bullet should survive, got %+v", w.Bullets)
	}
}

func TestWorldOneBulletOneKill(t *testing.T) {
	w := NewWorld(nil, testExplosions(t), nil, nil)
	w.Enemies = []Enemy{
		dummy{rect: core.NewRect(0, 0, 50, 50)},
		dummy{rect: core.NewRect(10, 10, 50, 50)},
	}
	w.Bullets = []Bullet{still{rect: core.NewRect(20, 20, 4, 8)}}

	report := w.Step(0, testEnv, Commands{})

	if report.Kills != 1 {
		t.Errorf("Kills = %d, expected 1", report.Kills)
	}
	if len(w.Enemies) != 1 || w.Enemies[0].Hitbox().X != 10 {
		t.Errorf("the second enemy should survive, got %+v", w.Enemies)
	}
}

func TestWorldShotEnemyStillHitsPlayer(t *testing.T) {
	w := NewWorld(testPlayerAt(core.NewRect(0, 0, 43, 39)), testExplosions(t), nil, nil)
	w.Enemies = []Enemy{dummy{rect: core.NewRect(10, 10, 20, 20), points: 5}}
	w.Bullets = []Bullet{still{rect: core.NewRect(12, 12, 4, 8)}}

	report := w.Step(0, testEnv, Commands{})

	if !report.PlayerHit || w.PlayerAlive {
		t.Error("an enemy shot this frame should still kill the player it overlaps")
	}
	if report.Kills != 1 || report.Points != 5 {
		t.Errorf("Kills = %d, Points = %d, expected the enemy counted once", report.Kills, report.Points)
	}
	if len(w.Bullets) != 0 {
		t.Errorf("bullets = %d, the shot should be spent", len(w.Bullets))
	}
	if len(w.Explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(w.Explosions))
	}
}

func TestWorldCullsBeforeCollision(t *testing.T) {
	w := NewWorld(nil, testExplosions(t), nil, nil)
	// The bullet leaves the screen this frame; the enemy sits where it was.
	w.Enemies = []Enemy{dummy{rect: core.NewRect(100, -40, 20, 20)}}
	w.Bullets = []Bullet{RectBullet{rect: core.NewRect(105, 30, 4, 8), speed: 600}}

	w.Step(0.1, testEnv, Commands{})

	if len(w.Enemies) != 1 {
		t.Error("culled bullets should not collide")
	}
	if len(w.Bullets) != 0 {
		t.Error("bullet should have been culled")
	}
}

func TestWorldFire(t *testing.T) {
	w := NewWorld(testPlayerAt(core.NewRect(300, 330, 43, 39)), testExplosions(t), nil, nil)

	report := w.Step(1.0/60.0, testEnv, Commands{Fire: true})
	if report.Fired != 1 || len(w.Bullets) != 1 {
		t.Fatalf("Fired = %d, bullets = %d, expected 1", report.Fired, len(w.Bullets))
	}

	b := w.Bullets[0].Hitbox()
	if b.X != 321.5-2 || b.Y != 330 {
		t.Errorf("bullet at (%v, %v), expected centered on the nose", b.X, b.Y)
	}

	w.Step(1.0/60.0, testEnv, Commands{})
	if len(w.Bullets) != 1 {
		t.Errorf("bullets = %d, no new bullet without a fire command", len(w.Bullets))
	}
}

func TestWorldExplosionsExpire(t *testing.T) {
	w := NewWorld(nil, testExplosions(t), nil, nil)
	w.Explosions = []Explosion{w.explosions.AtCenter(100, 100)}

	w.Step(1.0, testEnv, Commands{})
	if len(w.Explosions) != 1 {
		t.Fatal("explosion should still play after 1s")
	}
	w.Step(0.0625, testEnv, Commands{})
	if len(w.Explosions) != 0 {
		t.Error("explosion should be gone after 17/16 s")
	}
}

func TestWorldSpawns(t *testing.T) {
	spawner := NewSpawner(1, SpawnEntry{Name: "dummy", Weight: 1, Factory: dummyFactory{}})
	w := NewWorld(nil, testExplosions(t), spawner, rand.New(rand.NewSource(1)))

	report := w.Step(1.0/60.0, testEnv, Commands{})
	if report.Spawned != 1 || len(w.Enemies) != 1 {
		t.Errorf("Spawned = %d, enemies = %d, expected 1", report.Spawned, len(w.Enemies))
	}
}

func TestWorldRender(t *testing.T) {
	w := NewWorld(testPlayerAt(core.NewRect(300, 330, 43, 39)), testExplosions(t), nil, nil)
	w.Enemies = []Enemy{dummy{rect: core.NewRect(0, 0, 10, 10)}}
	w.Bullets = []Bullet{still{rect: core.NewRect(50, 50, 4, 8)}}
	w.Explosions = []Explosion{w.explosions.AtCenter(200, 200)}

	rec := render.NewRecorder(640, 384)
	rec.Clear(core.ColorBlack)
	w.Render(rec)

	// enemy + bullet + player box are fills, the explosion is a sprite copy
	if rec.Count(render.OpFill) != 3 || rec.Count(render.OpCopy) != 1 {
		t.Errorf("unexpected ops: %+v", rec.Ops)
	}
}

type dummyFactory struct{}

func (dummyFactory) Spawn(_ *rand.Rand, bounds core.Rect, _ float64) Enemy {
	return dummy{rect: core.NewRect(bounds.X, bounds.Y, 10, 10)}
}
