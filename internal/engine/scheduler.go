// Package engine runs the frame loop: it paces frames to a target rate and
// hands each accepted frame to the active view.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Clock abstracts wall time so pacing can be tested.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Scheduler accepts a frame only once at least one interval has passed since
// the previous accepted frame. It also counts frames over a rolling second.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	logger   *log.Logger

	started    bool
	last       time.Time
	lastSecond time.Time
	frames     int
	fps        int
}

// NewScheduler creates a scheduler targeting tickRate frames per second.
// The interval is rounded down to whole milliseconds.
func NewScheduler(clock Clock, tickRate int, logger *log.Logger) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := (time.Second / time.Duration(tickRate)).Truncate(time.Millisecond)
	return NewSchedulerInterval(clock, interval, logger)
}

// NewSchedulerInterval creates a scheduler with an explicit minimum interval.
func NewSchedulerInterval(clock Clock, interval time.Duration, logger *log.Logger) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Scheduler{
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Interval returns the minimum time between accepted frames.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start marks now as the previous accepted frame.
func (s *Scheduler) Start(now time.Time) {
	s.started = true
	s.last = now
	s.lastSecond = now
	s.frames = 0
}

// Advance measures the time since the last accepted frame.
// Below the interval it returns the remaining wait and ok=false. Otherwise
// the frame is accepted and elapsed is the measured delta in seconds.
func (s *Scheduler) Advance(now time.Time) (elapsed float64, wait time.Duration, ok bool) {
	if !s.started {
		s.Start(now)
		return 0, s.interval, false
	}

	dt := now.Sub(s.last)
	if dt < s.interval {
		return 0, s.interval - dt, false
	}

	s.last = now
	s.frames++

	if now.Sub(s.lastSecond) > time.Second {
		s.fps = s.frames
		s.frames = 0
		s.lastSecond = now
		if s.logger != nil {
			s.logger.Debug("frame rate", "fps", s.fps)
		}
	}

	return dt.Seconds(), 0, true
}

// FPS returns the frame count of the last completed one-second window.
func (s *Scheduler) FPS() int {
	return s.fps
}

// FrameFunc processes one accepted frame. Returning done stops the loop.
type FrameFunc func(elapsed float64) (done bool, err error)

// Run paces frames until frame reports done, returns an error, or ctx is
// cancelled. Between frames it sleeps on the clock.
func (s *Scheduler) Run(ctx context.Context, frame FrameFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		elapsed, wait, ok := s.Advance(s.clock.Now())
		if !ok {
			s.clock.Sleep(wait)
			continue
		}

		done, err := frame(elapsed)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
