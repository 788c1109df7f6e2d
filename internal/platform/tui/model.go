package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
	"github.com/vovakirdan/tui-shooter/internal/logging"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/storage"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// helpHeight is the number of terminal rows under the playfield.
const helpHeight = 1

// Options configure one game session.
type Options struct {
	Config *config.Config
	Assets *assets.Loader
	Audio  audio.Player
	Store  *storage.Store // may be nil
	Logger *log.Logger

	// FirstView is the registry ID of the initial view.
	FirstView string
	// TickRate overrides Config.Display.FPS when positive.
	TickRate int
	// Seed for enemy spawning. Zero picks one from the clock.
	Seed int64

	// Cols and Rows are the terminal size at startup.
	Cols, Rows int
	// Renderer styles the output. Nil uses the default lipgloss renderer.
	Renderer *lipgloss.Renderer

	PlayerName string
	SessionID  string
}

// Session owns everything a running game needs: canvas, input queue,
// scheduler and view loop. It is driven by a single goroutine.
type Session struct {
	ctx       *view.Context
	canvas    *render.Canvas
	queue     *core.EventQueue
	loop      *engine.Loop
	scheduler *engine.Scheduler
	releases  *ReleaseTracker
	keys      KeyMap
	help      help.Model
	screen    *ScreenRenderer
	helpStyle lipgloss.Style

	err  error
	done bool
}

// NewSession builds a session and its first view.
func NewSession(opts Options) (*Session, error) {
	if opts.Config == nil {
		cfg := config.Default()
		opts.Config = &cfg
	}
	if opts.Assets == nil {
		opts.Assets = assets.NewLoader("")
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.FirstView == "" {
		opts.FirstView = "menu"
	}
	if opts.TickRate <= 0 {
		opts.TickRate = opts.Config.Display.FPS
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	cols, rows := max(opts.Cols, 1), max(opts.Rows-helpHeight, 1)

	cfg := opts.Config
	canvas := render.NewCanvas(cfg.Display.Width, cfg.Display.Height, cols, rows)
	queue := &core.EventQueue{}

	ctx := &view.Context{
		Input:    &core.Input{},
		Renderer: canvas,
		Assets:   opts.Assets,
		Audio:    opts.Audio,
		Config:   cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  cfg.Display.Width,
			ScreenH:  cfg.Display.Height,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
		Logger:     opts.Logger,
		Rand:       rand.New(rand.NewSource(opts.Seed)),
		Store:      opts.Store,
		PlayerName: opts.PlayerName,
		SessionID:  opts.SessionID,
	}

	first, err := registry.Create(opts.FirstView, ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	screen := NewScreenRenderer(opts.Renderer)
	h := help.New()
	h.Width = cols

	return &Session{
		ctx:       ctx,
		canvas:    canvas,
		queue:     queue,
		loop:      engine.NewLoop(ctx, queue, first),
		scheduler: engine.NewScheduler(engine.SystemClock{}, opts.TickRate, opts.Logger),
		releases:  NewReleaseTracker(DefaultInitialHold, DefaultRepeatHold),
		keys:      DefaultKeyMap(),
		help:      h,
		screen:    screen,
		helpStyle: screen.renderer.NewStyle().Foreground(lipgloss.Color("241")),
	}, nil
}

// Key queues a key message received at now.
func (s *Session) Key(msg tea.KeyMsg, now time.Time) {
	if s.keys.IsQuit(msg) {
		s.queue.Push(core.Event{Kind: core.EventQuit})
		return
	}
	k, ok := s.keys.Map(msg)
	if !ok || !s.releases.Down(k, now) {
		return
	}
	s.queue.Push(core.Event{Kind: core.EventKeyDown, Key: k})
}

// releaseAll lets go of every held key.
func (s *Session) releaseAll() {
	for _, k := range s.releases.Reset() {
		s.queue.Push(core.Event{Kind: core.EventKeyUp, Key: k})
	}
}

// Resize adapts the canvas to a new terminal size.
func (s *Session) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows-helpHeight, 1)
	s.canvas.Resize(cols, rows)
	s.help.Width = cols
	s.releaseAll()
	s.queue.Push(core.Event{Kind: core.EventResize, Width: cols, Height: rows})
}

// Tick releases lapsed keys and runs a frame if one is due.
// It returns how long to wait before the next tick, and whether the session
// has ended.
func (s *Session) Tick(now time.Time) (time.Duration, bool) {
	if s.done {
		return 0, true
	}

	for _, k := range s.releases.Expire(now) {
		s.queue.Push(core.Event{Kind: core.EventKeyUp, Key: k})
	}

	elapsed, wait, ok := s.scheduler.Advance(now)
	if !ok {
		return wait, false
	}

	switches := s.loop.Switches()
	done, err := s.loop.Frame(elapsed)
	if err != nil {
		s.err = err
		s.ctx.Log().Error("frame failed", "session", s.ctx.SessionID, "error", err)
	}
	if done {
		s.done = true
		s.ctx.Log().Info("session ended",
			"session", s.ctx.SessionID,
			"frames", s.loop.Frames(),
			"fps", s.scheduler.FPS(),
		)
		return 0, true
	}
	// Keys held into a new view start released there.
	if s.loop.Switches() != switches {
		s.releaseAll()
	}
	return s.scheduler.Interval(), false
}

// Err returns the error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Done reports whether the session has ended.
func (s *Session) Done() bool {
	return s.done
}

// View renders the last presented frame and the help line.
func (s *Session) View() string {
	return s.screen.Render(s.canvas.Front()) + "\n" + s.helpStyle.Render(s.help.View(s.keys))
}

// Model is the Bubble Tea model around a Session.
type Model struct {
	session *Session
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s *Session) Model {
	return Model{session: s}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.scheduler.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.session.Key(msg, time.Now())
		return m, nil

	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		wait, done := m.session.Tick(time.Time(msg))
		if done {
			return m, tea.Quit
		}
		return m, tickCmd(wait)
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.session.Done() {
		return ""
	}
	return m.session.View()
}

// Run starts the Bubble Tea program for a new session and blocks until it
// ends.
func Run(opts Options) error {
	s, err := NewSession(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return s.Err()
}
