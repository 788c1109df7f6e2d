package core

import "testing"

// scripted returns one batch of events per poll.
type scripted struct {
	frames [][]Event
}

func (s *scripted) PollEvents() []Event {
	if len(s.frames) == 0 {
		return nil
	}
	next := s.frames[0]
	s.frames = s.frames[1:]
	return next
}

func TestInputSingleKeyDown(t *testing.T) {
	src := &scripted{frames: [][]Event{
		{{Kind: EventKeyDown, Key: KeySpace}},
	}}

	var in Input
	in.Poll(src)

	if !in.Pressed(KeySpace) {
		t.Error("Space should be pressed on the first frame")
	}
	if !in.Held(KeySpace) {
		t.Error("Space should be held on the first frame")
	}

	for i := 0; i < 5; i++ {
		in.Poll(src)
		if in.Pressed(KeySpace) {
			t.Errorf("frame %d: Space should not be pressed again", i+2)
		}
		if !in.Held(KeySpace) {
			t.Errorf("frame %d: Space should still be held", i+2)
		}
	}
}

func TestInputRepeatDownHasNoEdge(t *testing.T) {
	src := &scripted{frames: [][]Event{
		{{Kind: EventKeyDown, Key: KeyLeft}},
		{{Kind: EventKeyDown, Key: KeyLeft}, {Kind: EventKeyDown, Key: KeyLeft}},
	}}

	var in Input
	in.Poll(src)
	in.Poll(src)

	if in.Now.Edge(KeyLeft) != EdgeNone {
		t.Errorf("Edge(Left) = %v, expected EdgeNone for auto-repeat", in.Now.Edge(KeyLeft))
	}
	if !in.Held(KeyLeft) {
		t.Error("Left should still be held")
	}
}

func TestInputRelease(t *testing.T) {
	src := &scripted{frames: [][]Event{
		{{Kind: EventKeyDown, Key: KeyUp}},
		{{Kind: EventKeyUp, Key: KeyUp}},
		{},
	}}

	var in Input
	in.Poll(src)
	in.Poll(src)

	if !in.Released(KeyUp) {
		t.Error("Up should be released on the second frame")
	}
	if in.Held(KeyUp) {
		t.Error("Up should not be held after release")
	}

	in.Poll(src)
	if in.Released(KeyUp) {
		t.Error("release edge should last one frame")
	}
}

func TestInputDownUpSameFrame(t *testing.T) {
	src := &scripted{frames: [][]Event{
		{{Kind: EventKeyDown, Key: Key2}, {Kind: EventKeyUp, Key: Key2}},
	}}

	var in Input
	in.Poll(src)

	if in.Held(Key2) {
		t.Error("key should not be held after down+up in one frame")
	}
	if !in.Released(Key2) {
		t.Error("the later event should win the edge")
	}
}

func TestInputResizeAndQuit(t *testing.T) {
	src := &scripted{frames: [][]Event{
		{{Kind: EventResize, Width: 120, Height: 40}, {Kind: EventQuit}},
		{},
	}}

	var in Input
	in.Poll(src)

	w, h, ok := in.Now.Resize()
	if !ok || w != 120 || h != 40 {
		t.Errorf("Resize() = (%d, %d, %v), expected (120, 40, true)", w, h, ok)
	}
	if !in.Now.Quit {
		t.Error("Quit should be set")
	}

	in.Poll(src)
	if _, _, ok := in.Now.Resize(); ok {
		t.Error("resize should last one frame")
	}
	if in.Now.Quit {
		t.Error("quit should last one frame")
	}
}

func TestInputIgnoresUnknownKeys(t *testing.T) {
	src := &scripted{frames: [][]Event{
		{{Kind: EventKeyDown, Key: KeyCount}, {Kind: EventKeyDown, Key: Key(-3)}},
	}}

	var in Input
	in.Poll(src)

	if in.Held(KeyCount) || in.Pressed(Key(-3)) {
		t.Error("unknown keys should be ignored")
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	q.Push(Event{Kind: EventKeyDown, Key: KeyEnter})
	q.Push(Event{Kind: EventKeyUp, Key: KeyEnter})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	events := q.PollEvents()
	if len(events) != 2 || events[0].Key != KeyEnter {
		t.Errorf("PollEvents() = %+v", events)
	}
	if len(q.PollEvents()) != 0 {
		t.Error("queue should be empty after poll")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{KeyEscape, "Escape"},
		{KeySpace, "Space"},
		{Key3, "3"},
		{KeyCount, "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.key.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.key, got, tc.expected)
		}
	}
}
