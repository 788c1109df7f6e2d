package menu

import (
	"image"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/render"
	"github.com/vovakirdan/tui-shooter/internal/sprite"
	"github.com/vovakirdan/tui-shooter/internal/view"
)

// target stands in for the views the menu opens.
type target struct {
	id      string
	carried *view.Backgrounds
}

func (t *target) Render(*view.Context, float64) (view.Action, error) {
	return view.Continue(), nil
}

func init() {
	for _, id := range []string{GameID, ScoresID} {
		registry.Register(id, id, func(_ *view.Context, carried *view.Backgrounds) (view.View, error) {
			return &target{id: id, carried: carried}, nil
		})
	}
}

func testBackgrounds() *view.Backgrounds {
	sheet := &sprite.Sheet{Name: "bg", Image: image.NewRGBA(image.Rect(0, 0, 64, 64))}
	return &view.Backgrounds{Back: view.Background{
		Sprite: sprite.Sprite{Sheet: sheet, Region: core.NewRect(0, 0, 64, 64)},
		Vel:    20,
	}}
}

type harness struct {
	ctx   *view.Context
	queue *core.EventQueue
	rec   *render.Recorder
	menu  *View
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	rec := render.NewRecorder(640, 384)
	ctx := &view.Context{Input: &core.Input{}, Renderer: rec}
	v, err := New(ctx, testBackgrounds())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return &harness{ctx: ctx, queue: &core.EventQueue{}, rec: rec, menu: v.(*View)}
}

// tap presses and releases k, rendering one frame for each.
func (h *harness) tap(t *testing.T, k core.Key) view.Action {
	t.Helper()
	h.queue.Push(core.Event{Kind: core.EventKeyDown, Key: k})
	action := h.frame(t)
	h.queue.Push(core.Event{Kind: core.EventKeyUp, Key: k})
	h.frame(t)
	return action
}

func (h *harness) frame(t *testing.T) view.Action {
	t.Helper()
	h.ctx.Input.Poll(h.queue)
	action, err := h.menu.Render(h.ctx, 0.016)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return action
}

func TestMenuNavigationWraps(t *testing.T) {
	tests := []struct {
		name string
		keys []core.Key
		want int
	}{
		{"start", nil, 0},
		{"down", []core.Key{core.KeyDown}, 1},
		{"up wraps to last", []core.Key{core.KeyUp}, 2},
		{"down wraps to first", []core.Key{core.KeyDown, core.KeyDown, core.KeyDown}, 0},
		{"down then up", []core.Key{core.KeyDown, core.KeyUp}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			for _, k := range tc.keys {
				h.tap(t, k)
			}
			if h.menu.Selected() != tc.want {
				t.Errorf("Selected() = %d, expected %d", h.menu.Selected(), tc.want)
			}
		})
	}
}

func TestMenuHeldKeyMovesOnce(t *testing.T) {
	h := newHarness(t)
	h.queue.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyDown})
	h.frame(t)
	// auto-repeat while held
	h.queue.Push(core.Event{Kind: core.EventKeyDown, Key: core.KeyDown})
	h.frame(t)
	h.frame(t)

	if h.menu.Selected() != 1 {
		t.Errorf("Selected() = %d, expected 1", h.menu.Selected())
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name   string
		moves  int
		key    core.Key
		kind   view.ActionKind
		target string
	}{
		{"new game with enter", 0, core.KeyEnter, view.ActionSwitch, GameID},
		{"new game with space", 0, core.KeySpace, view.ActionSwitch, GameID},
		{"high scores", 1, core.KeyEnter, view.ActionSwitch, ScoresID},
		{"quit", 2, core.KeyEnter, view.ActionQuit, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			for range tc.moves {
				h.tap(t, core.KeyDown)
			}
			action := h.tap(t, tc.key)
			if action.Kind != tc.kind {
				t.Fatalf("action kind = %v, expected %v", action.Kind, tc.kind)
			}
			if tc.target == "" {
				return
			}
			next, ok := action.Next.(*target)
			if !ok || next.id != tc.target {
				t.Fatalf("switched to %#v, expected %s", action.Next, tc.target)
			}
			if next.carried != h.menu.bg {
				t.Error("backgrounds were not carried to the next view")
			}
		})
	}
}

func TestMenuEscapeQuits(t *testing.T) {
	h := newHarness(t)
	if a := h.tap(t, core.KeyEscape); a.Kind != view.ActionQuit {
		t.Errorf("Escape action = %v, expected quit", a.Kind)
	}
}

func TestMenuQuitEvent(t *testing.T) {
	h := newHarness(t)
	h.queue.Push(core.Event{Kind: core.EventQuit})
	if a := h.frame(t); a.Kind != view.ActionQuit {
		t.Errorf("quit event action = %v", a.Kind)
	}
}

func TestMenuDraws(t *testing.T) {
	h := newHarness(t)
	h.tap(t, core.KeyDown)

	if h.rec.Count(render.OpFill) != 2 {
		t.Errorf("fills = %d, expected border and box", h.rec.Count(render.OpFill))
	}
	texts := h.rec.Texts()
	want := []string{"New Game", "> High Scores <", "Quit"}
	if len(texts) != len(want) {
		t.Fatalf("texts = %q", texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text[%d] = %q, expected %q", i, texts[i], want[i])
		}
	}
	if h.rec.Count(render.OpCopy) == 0 {
		t.Error("background not drawn")
	}
}
