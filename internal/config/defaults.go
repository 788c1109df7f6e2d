package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-shooter/internal/sprite"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Default returns the default shooter configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Width:  640,
			Height: 384,
			FPS:    60,
		},
		Player: PlayerConfig{
			Sheet: sprite.Descr{
				Path: "player.png", FrameW: 16, FrameH: 16, FramesWide: 3, FramesHigh: 3,
			},
			Width:  43,
			Height: 39,
			Speed:  360,
			Band:   0.3,
		},
		Bullets: BulletsConfig{
			Width:     4,
			Height:    8,
			Speed:     600,
			SlowSpeed: 300,
			Sine:      SineCannon{Amplitude: 10, AngularVel: 15},
			Divergent: DivergentCannon{A: 100, B: 1.2},
		},
		Enemies: EnemiesConfig{
			SpawnChance: 0.01,
			Invader: InvaderConfig{
				Sheet: sprite.Descr{
					Path: "invader.png", FrameW: 16, FrameH: 20, FramesWide: 4, FramesHigh: 4,
					Total: 16, Rest: 4, FPS: 1,
				},
				Weight:     1,
				Width:      64,
				Height:     80,
				MinFPS:     10,
				MaxFPS:     30,
				Amplitude:  15,
				AngularVel: 10,
				Lifetime:   8,
				OriginY:    0.35,
				Points:     50,
			},
			Asteroid: AsteroidConfig{
				Sheet: sprite.Descr{
					Path: "asteroid.png", FrameW: 16, FrameH: 16, FramesWide: 4, FramesHigh: 2,
					Total: 8, FPS: 12,
				},
				Weight:     2,
				Side:       48,
				MinSpeed:   60,
				MaxSpeed:   140,
				Amplitude:  20,
				AngularVel: 2,
				Points:     10,
			},
		},
		Explosion: ExplosionConfig{
			Sheet: sprite.Descr{
				Path: "explosion.png", FrameW: 16, FrameH: 16, FramesWide: 5, FramesHigh: 4,
				Total: 17, FPS: 16,
			},
			Side: 64,
		},
		Background: BackgroundConfig{
			Path:     "background.png",
			Velocity: 20,
		},
		Sounds: SoundsConfig{
			Fire:      "fire.wav",
			Explosion: "explosion.wav",
			Volume:    1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
