package entity

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SpawnEntry is one kind of enemy in a spawner's table.
type SpawnEntry struct {
	Name    string
	Weight  int
	Factory EnemyFactory
}

// Spawner decides each frame whether a new enemy appears and which kind.
// Population size is not bounded here.
type Spawner struct {
	// Chance is the probability that a frame spawns an enemy.
	Chance float64
	// Speed scales the motion of new enemies.
	Speed float64

	entries []SpawnEntry
	total   int
}

// NewSpawner creates a spawner. Entries with a non-positive weight never spawn.
func NewSpawner(chance float64, entries ...SpawnEntry) *Spawner {
	s := &Spawner{Chance: chance, Speed: 1}
	for _, e := range entries {
		if e.Weight <= 0 || e.Factory == nil {
			continue
		}
		s.entries = append(s.entries, e)
		s.total += e.Weight
	}
	return s
}

// Roll returns a new enemy if this frame's spawn check succeeds.
func (s *Spawner) Roll(rng *rand.Rand, bounds core.Rect) (Enemy, bool) {
	if s.total == 0 || rng.Float64() >= s.Chance {
		return nil, false
	}

	pick := rng.Intn(s.total)
	for _, e := range s.entries {
		if pick < e.Weight {
			return e.Factory.Spawn(rng, bounds, s.Speed), true
		}
		pick -= e.Weight
	}
	return nil, false
}
