package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file in config directories.
const FileName = "shooter.yaml"

// Load loads the shooter configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Files are decoded over Default(), so they only need the keys they change.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.SpawnChance *= 0.6
		cfg.Player.Speed *= 1.15
	case DifficultyHard:
		cfg.Enemies.SpawnChance *= 1.5
	}
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Display.Width > 0 && c.Display.Height > 0,
		"display size must be positive, got %vx%v", c.Display.Width, c.Display.Height)
	check(c.Display.FPS > 0, "display.fps must be positive, got %d", c.Display.FPS)

	p := c.Player
	check(p.Width > 0 && p.Height > 0, "player size must be positive, got %vx%v", p.Width, p.Height)
	check(p.Band > 0 && p.Band <= 1, "player.band must be in (0, 1], got %v", p.Band)
	check(p.Width <= c.Display.Width && p.Height <= c.Display.Height*p.Band,
		"player %vx%v does not fit its movable band %vx%v",
		p.Width, p.Height, c.Display.Width, c.Display.Height*p.Band)
	check(p.Speed >= 0, "player.speed must not be negative, got %v", p.Speed)
	check(p.Sheet.Path != "", "player.sheet.path is required")

	b := c.Bullets
	check(b.Width > 0 && b.Height > 0, "bullet size must be positive, got %vx%v", b.Width, b.Height)
	check(b.Divergent.B != 0, "bullets.divergent.b must not be zero")

	e := c.Enemies
	check(e.SpawnChance >= 0 && e.SpawnChance <= 1, "enemies.spawn_chance must be in [0, 1], got %v", e.SpawnChance)
	check(e.Invader.Weight >= 0 && e.Asteroid.Weight >= 0, "enemy weights must not be negative")
	check(e.Invader.Width >= 0 && e.Invader.Height >= 0, "invader size must not be negative")
	check(e.Invader.MinFPS <= e.Invader.MaxFPS, "invader min_fps %v exceeds max_fps %v", e.Invader.MinFPS, e.Invader.MaxFPS)
	check(e.Invader.Lifetime > 0, "invader.lifetime must be positive, got %v", e.Invader.Lifetime)
	check(e.Asteroid.Side >= 0, "asteroid.side must not be negative")
	check(e.Asteroid.MinSpeed <= e.Asteroid.MaxSpeed, "asteroid min_speed %v exceeds max_speed %v", e.Asteroid.MinSpeed, e.Asteroid.MaxSpeed)
	if e.Invader.Weight > 0 {
		check(e.Invader.Sheet.Path != "", "enemies.invader.sheet.path is required")
	}
	if e.Asteroid.Weight > 0 {
		check(e.Asteroid.Sheet.Path != "", "enemies.asteroid.sheet.path is required")
	}

	check(c.Explosion.Side > 0, "explosion.side must be positive, got %v", c.Explosion.Side)
	check(c.Explosion.Sheet.FPS > 0, "explosion.sheet.fps must be positive, got %v", c.Explosion.Sheet.FPS)
	check(c.Explosion.Sheet.Path != "", "explosion.sheet.path is required")
	check(c.Background.Path != "", "background.path is required")
	check(c.Sounds.Volume >= 0, "sounds.volume must not be negative, got %v", c.Sounds.Volume)

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		check(false, "difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type)
	}

	return errors.Join(errs...)
}
