package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"w", runes("w"), core.KeyUp, true},
		{"s", runes("s"), core.KeyDown, true},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"d", runes("d"), core.KeyRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, true},
		{"gun 2", runes("2"), core.Key2, true},
		{"unused", runes("x"), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := keys.Map(tc.msg)
			if ok != tc.ok || got != tc.want {
				t.Errorf("Map() = %v, %v, expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}

	if !keys.IsQuit(runes("q")) || !keys.IsQuit(tea.KeyMsg{Type: tea.KeyCtrlC}) {
		t.Error("q and ctrl+c should quit")
	}
	if keys.IsQuit(runes("w")) {
		t.Error("w should not quit")
	}
}

func TestReleaseTrackerInitialHold(t *testing.T) {
	tr := NewReleaseTracker(0, 0)
	t0 := time.Unix(100, 0)

	if !tr.Down(core.KeyUp, t0) {
		t.Error("first press should be delivered")
	}
	if got := tr.Expire(t0.Add(DefaultInitialHold)); len(got) != 0 {
		t.Errorf("Expire() at exactly the hold = %v, expected nothing", got)
	}
	got := tr.Expire(t0.Add(DefaultInitialHold + time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyUp {
		t.Errorf("Expire() = %v, expected [Up]", got)
	}
	if got := tr.Expire(t0.Add(time.Hour)); len(got) != 0 {
		t.Errorf("expired key should be forgotten, got %v", got)
	}
}

func TestReleaseTrackerRepeatHold(t *testing.T) {
	tr := NewReleaseTracker(0, 0)
	t0 := time.Unix(100, 0)

	tr.Down(core.KeyLeft, t0)
	if !tr.Down(core.KeyLeft, t0.Add(500*time.Millisecond)) {
		t.Error("repeats of a held key should be delivered")
	}
	tr.Down(core.KeyRight, t0.Add(500*time.Millisecond))

	got := tr.Expire(t0.Add(650 * time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyLeft {
		t.Errorf("Expire() = %v, expected only the repeating key", got)
	}
	got = tr.Expire(t0.Add(1101 * time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyRight {
		t.Errorf("Expire() = %v, Right should lapse after its initial hold", got)
	}
}

func TestReleaseTrackerReset(t *testing.T) {
	tr := NewReleaseTracker(0, 0)
	t0 := time.Unix(0, 0)
	tr.Down(core.KeyEnter, t0)
	tr.Down(core.KeyUp, t0)

	got := tr.Reset()
	if len(got) != 2 || got[0] != core.KeyUp || got[1] != core.KeyEnter {
		t.Errorf("Reset() = %v, expected [Up Enter]", got)
	}
	if again := tr.Reset(); len(again) != 0 {
		t.Errorf("second Reset() = %v, expected nothing", again)
	}

	// Repeats of a released key are swallowed until the hold lapses.
	if tr.Down(core.KeyEnter, t0.Add(50*time.Millisecond)) {
		t.Error("repeat after Reset() should be swallowed")
	}
	if got := tr.Expire(t0.Add(time.Second)); len(got) != 0 {
		t.Errorf("Expire() = %v, released keys must not be released twice", got)
	}
	if !tr.Down(core.KeyEnter, t0.Add(2*time.Second)) {
		t.Error("a new press after the hold lapsed should be delivered")
	}
}

func TestScreenRendererGlyphs(t *testing.T) {
	sr := NewScreenRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(3, 2)
	s.SetText(1, 0, 'A', core.RGB{R: 255, G: 255, B: 255})

	out := sr.Render(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "▀A▀" {
		t.Errorf("line 0 = %q, expected %q", lines[0], "▀A▀")
	}
	if lines[1] != "▀▀▀" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "▀▀▀")
	}
	if len(sr.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(sr.styles))
	}
}

func TestCellGlyph(t *testing.T) {
	red := core.RGB{R: 255}
	blue := core.RGB{B: 255}

	r, p := cellGlyph(core.Cell{Top: red, Bottom: blue})
	if r != upperHalf || p.fg != red || p.bg != blue {
		t.Errorf("pixel cell = %q %+v", r, p)
	}

	r, p = cellGlyph(core.Cell{Top: blue, Rune: 'x', Fg: red})
	if r != 'x' || p.fg != red || p.bg != blue {
		t.Errorf("text cell = %q %+v", r, p)
	}
}

// probe records the input it sees and quits on Escape.
type probe struct {
	frames   int
	pressed  int
	released int
}

func (p *probe) Render(ctx *view.Context, _ float64) (view.Action, error) {
	p.frames++
	if ctx.Input.Pressed(core.KeySpace) {
		p.pressed++
	}
	if ctx.Input.Released(core.KeySpace) {
		p.released++
	}
	if ctx.Input.Pressed(core.KeyEscape) {
		return view.Quit(), nil
	}
	ctx.Renderer.Clear(core.RGB{})
	return view.Continue(), nil
}

var lastProbe *probe

// switcher hands over to a probe on Enter.
type switcher struct{}

func (switcher) Render(ctx *view.Context, _ float64) (view.Action, error) {
	if ctx.Input.Pressed(core.KeyEnter) {
		lastProbe = &probe{}
		return view.SwitchTo(lastProbe), nil
	}
	return view.Continue(), nil
}

func init() {
	registry.Register("zz-tui-switcher", "Switcher", func(*view.Context, *view.Backgrounds) (view.View, error) {
		return switcher{}, nil
	})
	registry.Register("zz-tui-probe", "Probe", func(*view.Context, *view.Backgrounds) (view.View, error) {
		lastProbe = &probe{}
		return lastProbe, nil
	})
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(Options{
		FirstView: "zz-tui-probe",
		TickRate:  50,
		Seed:      1,
		Cols:      40,
		Rows:      13,
		Renderer:  lipgloss.NewRenderer(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return s
}

func TestSessionTick(t *testing.T) {
	s := newTestSession(t)
	p := lastProbe
	t0 := time.Unix(1000, 0)

	wait, done := s.Tick(t0)
	if done || wait != 20*time.Millisecond {
		t.Fatalf("first Tick() = %v, %v, expected 20ms, false", wait, done)
	}
	if p.frames != 0 {
		t.Fatalf("first tick should only start the clock, got %d frames", p.frames)
	}

	s.Key(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, t0)
	// too early
	if wait, _ := s.Tick(t0.Add(5 * time.Millisecond)); wait != 15*time.Millisecond {
		t.Errorf("early Tick() wait = %v, expected 15ms", wait)
	}

	s.Tick(t0.Add(20 * time.Millisecond))
	if p.frames != 1 || p.pressed != 1 {
		t.Errorf("after press: frames %d pressed %d", p.frames, p.pressed)
	}

	// Auto-repeat does not press again.
	s.Key(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, t0.Add(30*time.Millisecond))
	s.Tick(t0.Add(40 * time.Millisecond))
	if p.pressed != 1 {
		t.Errorf("repeat pressed again: %d", p.pressed)
	}

	s.Tick(t0.Add(200 * time.Millisecond))
	if p.released != 1 {
		t.Errorf("released = %d, expected a synthesized release", p.released)
	}

	s.Key(tea.KeyMsg{Type: tea.KeyEsc}, t0.Add(210*time.Millisecond))
	if _, done := s.Tick(t0.Add(220 * time.Millisecond)); !done {
		t.Error("Escape should end the session")
	}
	if !s.Done() || s.Err() != nil {
		t.Errorf("Done() = %v, Err() = %v", s.Done(), s.Err())
	}
}

func TestSessionSecondTapWithinHold(t *testing.T) {
	s := newTestSession(t)
	p := lastProbe
	t0 := time.Unix(0, 0)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	s.Tick(t0)

	s.Key(space, t0)
	s.Tick(t0.Add(20 * time.Millisecond))
	// A terminal cannot tell this tap from an auto-repeat.
	s.Key(space, t0.Add(300*time.Millisecond))
	s.Tick(t0.Add(320 * time.Millisecond))
	if p.pressed != 1 {
		t.Errorf("pressed = %d, a tap inside the initial hold counts as holding", p.pressed)
	}

	// Once the hold lapses the key is released and a tap presses again.
	s.Tick(t0.Add(420 * time.Millisecond))
	if p.released != 1 {
		t.Fatalf("released = %d, expected 1", p.released)
	}
	s.Key(space, t0.Add(430*time.Millisecond))
	s.Tick(t0.Add(440 * time.Millisecond))
	if p.pressed != 2 {
		t.Errorf("pressed = %d, expected a second press", p.pressed)
	}
}

func TestSessionQuitKey(t *testing.T) {
	s := newTestSession(t)
	t0 := time.Unix(0, 0)
	s.Tick(t0)

	s.Key(runes("q"), t0)
	if _, done := s.Tick(t0.Add(20 * time.Millisecond)); !done {
		t.Error("q should end the session")
	}
	if lastProbe.frames != 0 {
		t.Errorf("quit frame should not render, got %d frames", lastProbe.frames)
	}
}

func TestSessionSwitchReleasesKeys(t *testing.T) {
	s, err := NewSession(Options{
		FirstView: "zz-tui-switcher",
		TickRate:  50,
		Cols:      40,
		Rows:      13,
		Renderer:  lipgloss.NewRenderer(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	t0 := time.Unix(0, 0)
	s.Tick(t0)

	s.Key(tea.KeyMsg{Type: tea.KeyUp}, t0)
	s.Key(tea.KeyMsg{Type: tea.KeyEnter}, t0)
	s.Tick(t0.Add(20 * time.Millisecond))
	if s.loop.Switches() != 1 {
		t.Fatalf("Switches() = %d, expected 1", s.loop.Switches())
	}
	if s.queue.Len() != 2 {
		t.Errorf("queued %d events, expected releases for Up and Enter", s.queue.Len())
	}

	// The terminal keeps repeating Up; the new view must not see it.
	s.Key(tea.KeyMsg{Type: tea.KeyUp}, t0.Add(30*time.Millisecond))
	s.Tick(t0.Add(40 * time.Millisecond))
	if s.ctx.Input.Held(core.KeyUp) || s.ctx.Input.Held(core.KeyEnter) {
		t.Error("keys held across the switch should be released")
	}
	if lastProbe.pressed != 0 || lastProbe.frames != 1 {
		t.Errorf("new view saw frames %d pressed %d", lastProbe.frames, lastProbe.pressed)
	}
}

func TestSessionResize(t *testing.T) {
	s := newTestSession(t)
	s.Resize(60, 21)

	front := s.canvas.Front()
	if front.Width() != 60 || front.Height() != 20 {
		t.Errorf("canvas = %dx%d, expected 60x20", front.Width(), front.Height())
	}
	if s.queue.Len() != 1 {
		t.Errorf("queued %d events, expected the resize", s.queue.Len())
	}
}

func TestNewSessionUnknownView(t *testing.T) {
	_, err := NewSession(Options{FirstView: "zz-missing"})
	if err == nil {
		t.Error("expected error for an unknown first view")
	}
}

func TestScoreRows(t *testing.T) {
	rows := ScoreRows([]storage.ScoreEntry{
		{Player: "ann", Score: 120, Kills: 5, Duration: 75},
		{Score: 40},
	})
	if len(rows) != 2 {
		t.Fatalf("ScoreRows() returned %d rows", len(rows))
	}
	want := []string{"#1", "ann", "120", "5", "1:15", ""}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], w)
		}
	}
	if rows[1][1] != "-" {
		t.Errorf("anonymous player = %q, expected -", rows[1][1])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if m.Filter() != "All" {
		t.Errorf("Filter() = %q, expected All", m.Filter())
	}
	if !strings.Contains(m.View(), "not being recorded") {
		t.Error("View() should explain that scores are not recorded")
	}
}

func TestScoreboardFilters(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(storage.ScoreEntry{RunID: "1", Player: "ann", Score: 10})
	store.SaveScore(storage.ScoreEntry{RunID: "2", Player: "bob", Score: 30})
	store.SaveScore(storage.ScoreEntry{RunID: "3", Player: "ann", Score: 20})

	m := NewScoreboardModel(store, 60, 30)
	if len(m.Scores()) != 3 {
		t.Fatalf("All shows %d runs, expected 3", len(m.Scores()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Filter() != "ann" || len(m.Scores()) != 2 {
		t.Errorf("after tab: filter %q with %d runs", m.Filter(), len(m.Scores()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Filter() != "bob" || len(m.Scores()) != 1 {
		t.Errorf("after wrapping back: filter %q with %d runs", m.Filter(), len(m.Scores()))
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back and quit the program")
	}
}
