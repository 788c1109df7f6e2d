package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
	"github.com/vovakirdan/tui-shooter/internal/logging"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/view"
	"github.com/vovakirdan/tui-shooter/internal/views/game"
)

var flagFrames int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a headless game and report throughput",
	Long: `Plays a scripted run without a terminal: the ship sweeps up and down
and fires in bursts. Frames are paced on a simulated clock, so the run is
reproducible with --seed and finishes as fast as the machine allows.

Examples:
  shooter bench
  shooter bench --frames 10000 --seed 42 --difficulty hard`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
}

// simClock advances only when slept on.
type simClock struct {
	now time.Time
}

func (c *simClock) Now() time.Time        { return c.now }
func (c *simClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// script feeds the pilot's input for frame n.
func script(q *core.EventQueue, n int) {
	switch n % 120 {
	case 0:
		q.Push(core.Event{Kind: core.EventKeyUp, Key: core.KeyDown})
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyUp})
	case 60:
		q.Push(core.Event{Kind: core.EventKeyUp, Key: core.KeyUp})
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyDown})
	}
	// Fire is edge triggered, so tap it.
	switch n % 8 {
	case 0:
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeySpace})
	case 1:
		q.Push(core.Event{Kind: core.EventKeyUp, Key: core.KeySpace})
	}
	if n%600 == 300 {
		q.Push(core.Event{Kind: core.EventKeyDown, Key: core.Key1 + core.Key(n/600%3)})
		q.Push(core.Event{Kind: core.EventKeyUp, Key: core.Key1 + core.Key(n/600%3)})
	}
}

func runBench(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = cfg.Display.FPS
	}

	recorder := render.NewRecorder(cfg.Display.Width, cfg.Display.Height)
	queue := &core.EventQueue{}
	ctx := &view.Context{
		Input:    &core.Input{},
		Renderer: recorder,
		Assets:   assets.NewLoader(flagAssets),
		Audio:    audio.Nop{},
		Config:   &cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Display.Width,
			ScreenH:  cfg.Display.Height,
			TickRate: tickRate,
			Seed:     seed,
		},
		Logger:    logging.Discard(),
		Rand:      rand.New(rand.NewSource(seed)),
		SessionID: "bench",
	}

	first, err := registry.Create(game.ID, ctx, nil)
	if err != nil {
		fatalf("%v", err)
	}
	run := first.(*game.View)

	loop := engine.NewLoop(ctx, queue, first)
	clock := &simClock{now: time.Unix(0, 0)}
	scheduler := engine.NewScheduler(clock, tickRate, nil)

	frames := 0
	start := time.Now()
	err = scheduler.Run(context.Background(), func(elapsed float64) (bool, error) {
		script(queue, frames)
		done, err := loop.Frame(elapsed)
		frames++
		return done || frames >= flagFrames || run.Over(), err
	})
	wall := time.Since(start)
	if err != nil {
		fatalf("%v", err)
	}

	simulated := time.Duration(frames) * scheduler.Interval()
	fmt.Printf("Frames:     %d (%s of play at %d fps)\n", frames, simulated.Round(time.Millisecond), tickRate)
	fmt.Printf("Wall time:  %s (%.0f frames/s)\n", wall.Round(time.Millisecond), float64(frames)/wall.Seconds())
	fmt.Printf("Presented:  %d frames\n", recorder.Frames)
	fmt.Printf("Last frame: %d sprites, %d fills, %d texts\n",
		recorder.Count(render.OpCopy), recorder.Count(render.OpFill), recorder.Count(render.OpText))
	fmt.Printf("Score:      %d (%d kills)\n", run.Score(), run.Kills())
	if run.Over() {
		fmt.Println("The ship was destroyed.")
	}
}
