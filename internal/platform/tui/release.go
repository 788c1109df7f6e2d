package tui

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A key is
// considered released once its repeats stop arriving.
const (
	// DefaultInitialHold covers the pause before the terminal starts repeating.
	DefaultInitialHold = 600 * time.Millisecond
	// DefaultRepeatHold covers the gap between two repeats.
	DefaultRepeatHold = 100 * time.Millisecond
)

type hold struct {
	last     time.Time
	repeated bool
	muted    bool
}

// ReleaseTracker synthesizes key releases from the timing of key presses.
//
// A terminal cannot tell a second tap from an auto-repeat: pressing a key
// again before its hold lapses counts as holding it, so the second tap
// produces no new press.
type ReleaseTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Key]*hold
}

// NewReleaseTracker creates a tracker. Non-positive durations use the defaults.
func NewReleaseTracker(initial, repeat time.Duration) *ReleaseTracker {
	if initial <= 0 {
		initial = DefaultInitialHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &ReleaseTracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Key]*hold),
	}
}

// Down records a press or repeat of k at now.
// It returns false when the event must not reach the game: k was released
// by Reset and is still repeating.
func (t *ReleaseTracker) Down(k core.Key, now time.Time) bool {
	if h, ok := t.held[k]; ok {
		h.last = now
		h.repeated = true
		return !h.muted
	}
	t.held[k] = &hold{last: now}
	return true
}

// Expire returns, in key order, the keys whose hold lapsed by now and
// forgets them. Keys already released by Reset are forgotten silently.
func (t *ReleaseTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	for k, h := range t.held {
		timeout := t.initial
		if h.repeated {
			timeout = t.repeat
		}
		if now.Sub(h.last) > timeout {
			if !h.muted {
				released = append(released, k)
			}
			delete(t.held, k)
		}
	}
	sort.Slice(released, func(i, j int) bool { return released[i] < released[j] })
	return released
}

// Reset releases every held key and returns them in key order. Repeats of
// those keys are swallowed until their hold lapses.
func (t *ReleaseTracker) Reset() []core.Key {
	var keys []core.Key
	for k, h := range t.held {
		if h.muted {
			continue
		}
		h.muted = true
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
