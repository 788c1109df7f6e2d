package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  speed: 500\nenemies:\n  spawn_chance: 0.05\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Player.Speed != 500 {
		t.Errorf("Player.Speed = %v, expected 500", cfg.Player.Speed)
	}
	if cfg.Enemies.SpawnChance != 0.05 {
		t.Errorf("Enemies.SpawnChance = %v, expected 0.05", cfg.Enemies.SpawnChance)
	}
	// untouched keys keep their defaults
	if cfg.Player.Width != 43 || cfg.Explosion.Sheet.Total != 17 {
		t.Errorf("defaults lost: player width %v, explosion frames %d", cfg.Player.Width, cfg.Explosion.Sheet.Total)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  band: 0.01\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for a band smaller than the ship")
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Display.FPS = 0
	cfg.Enemies.SpawnChance = 2
	cfg.Difficulty.Progression.Type = "random"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"display.fps", "spawn_chance", "progression.type"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %s", msg, want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		chance  float64
	}{
		{DifficultyEasy, true, 0.0, 0.006},
		{DifficultyNormal, true, 0.3, 0.01},
		{DifficultyHard, true, 0.7, 0.015},
		{DifficultyFixed, false, 0.0, 0.01},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if diff := cfg.Enemies.SpawnChance - tc.chance; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("SpawnChance = %v, expected %v", cfg.Enemies.SpawnChance, tc.chance)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
