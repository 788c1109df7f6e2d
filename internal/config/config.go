// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

import "github.com/vovakirdan/tui-shooter/internal/sprite"

// Config contains all tunable parameters of the game.
// Sizes and positions are in logical units, speeds in units per second.
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletsConfig    `yaml:"bullets"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Background BackgroundConfig `yaml:"background"`
	Sounds     SoundsConfig     `yaml:"sounds"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DisplayConfig defines the logical screen and frame rate.
type DisplayConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PlayerConfig defines the player's ship.
type PlayerConfig struct {
	Sheet  sprite.Descr `yaml:"sheet"`
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Speed  float64      `yaml:"speed"`
	Band   float64      `yaml:"band"` // fraction of the screen height, from the bottom
}

// BulletsConfig defines bullet sizes, speeds and the three cannons.
type BulletsConfig struct {
	Width     float64         `yaml:"width"`
	Height    float64         `yaml:"height"`
	Speed     float64         `yaml:"speed"`
	SlowSpeed float64         `yaml:"slow_speed"`
	Sine      SineCannon      `yaml:"sine"`
	Divergent DivergentCannon `yaml:"divergent"`
}

// SineCannon defines the swaying bullet.
type SineCannon struct {
	Amplitude  float64 `yaml:"amplitude"`
	AngularVel float64 `yaml:"angular_vel"`
}

// DivergentCannon defines the cubic-curve bullet.
type DivergentCannon struct {
	A float64 `yaml:"a"` // drift scale
	B float64 `yaml:"b"` // time stretch
}

// EnemiesConfig defines spawning and every enemy kind.
type EnemiesConfig struct {
	SpawnChance float64        `yaml:"spawn_chance"` // per frame
	Invader     InvaderConfig  `yaml:"invader"`
	Asteroid    AsteroidConfig `yaml:"asteroid"`
}

// InvaderConfig defines the hovering enemy.
type InvaderConfig struct {
	Sheet      sprite.Descr `yaml:"sheet"`
	Weight     int          `yaml:"weight"`
	Width      float64      `yaml:"width"`
	Height     float64      `yaml:"height"`
	MinFPS     float64      `yaml:"min_fps"`
	MaxFPS     float64      `yaml:"max_fps"`
	Amplitude  float64      `yaml:"amplitude"`
	AngularVel float64      `yaml:"angular_vel"`
	Lifetime   float64      `yaml:"lifetime"`
	OriginY    float64      `yaml:"origin_y"` // fraction of the screen height
	Points     int          `yaml:"points"`
}

// AsteroidConfig defines the falling enemy.
type AsteroidConfig struct {
	Sheet      sprite.Descr `yaml:"sheet"`
	Weight     int          `yaml:"weight"`
	Side       float64      `yaml:"side"`
	MinSpeed   float64      `yaml:"min_speed"`
	MaxSpeed   float64      `yaml:"max_speed"`
	Amplitude  float64      `yaml:"amplitude"`
	AngularVel float64      `yaml:"angular_vel"`
	Points     int          `yaml:"points"`
}

// ExplosionConfig defines the death animation.
type ExplosionConfig struct {
	Sheet sprite.Descr `yaml:"sheet"`
	Side  float64      `yaml:"side"`
}

// BackgroundConfig defines the scrolling backdrop.
type BackgroundConfig struct {
	Path     string  `yaml:"path"`
	Velocity float64 `yaml:"velocity"` // image pixels per second
}

// SoundsConfig names the effect files. Empty names disable a sound.
type SoundsConfig struct {
	Fire      string  `yaml:"fire"`
	Explosion string  `yaml:"explosion"`
	Volume    float64 `yaml:"volume"` // linear, 1 = unchanged
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to enemy speed at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // added to spawn chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
	}
}
