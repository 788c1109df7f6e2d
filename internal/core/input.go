package core

// Key is a key the game understands, abstracted from physical key codes.
// The set is fixed; platforms map their own key events onto it.
type Key int

const (
	KeyEscape Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	Key1
	Key2
	Key3

	// KeyCount is the number of tracked keys. Not a key itself.
	KeyCount
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the tracked keys.
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

// EventKind identifies a raw platform event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventResize
	EventQuit
)

// Event is a raw event delivered by the platform.
// Key is set for key events, Width and Height for resize events.
type Event struct {
	Kind   EventKind
	Key    Key
	Width  int
	Height int
}

// EventSource yields the events that arrived since the last call.
type EventSource interface {
	PollEvents() []Event
}

// EventQueue is an EventSource fed by the platform layer.
// It is not safe for concurrent use: push and poll from the goroutine that
// owns the frame.
type EventQueue struct {
	pending []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.pending = append(q.pending, e)
}

// PollEvents returns all queued events and empties the queue.
func (q *EventQueue) PollEvents() []Event {
	events := q.pending
	q.pending = nil
	return events
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.pending)
}

// Edge is the per-frame transition of a key.
type Edge int8

const (
	EdgeNone     Edge = iota // no transition this frame
	EdgePressed              // went down this frame
	EdgeReleased             // went up this frame
)

// Immediate holds what happened during the most recent poll only.
type Immediate struct {
	edges  [KeyCount]Edge
	resize *[2]int

	// Quit is set when the platform asked to close during this poll.
	Quit bool
}

// Edge returns the transition of k during the last poll.
func (im Immediate) Edge(k Key) Edge {
	if !k.Valid() {
		return EdgeNone
	}
	return im.edges[k]
}

// Resize returns the new window size if a resize arrived during the last poll.
func (im Immediate) Resize() (width, height int, ok bool) {
	if im.resize == nil {
		return 0, 0, false
	}
	return im.resize[0], im.resize[1], true
}

// Input tracks held keys across frames and key transitions within a frame.
type Input struct {
	held [KeyCount]bool

	// Now is rebuilt on every Poll.
	Now Immediate
}

// Poll drains src and updates the tracker. It must be called exactly once per
// frame, before the frame reads any input.
//
// A key-down for a key that is already held produces no edge, so terminal
// auto-repeat never retriggers edge actions. Key-up always records a release.
func (in *Input) Poll(src EventSource) {
	in.Now = Immediate{}

	for _, e := range src.PollEvents() {
		switch e.Kind {
		case EventKeyDown:
			if !e.Key.Valid() {
				continue
			}
			if !in.held[e.Key] {
				in.Now.edges[e.Key] = EdgePressed
				in.held[e.Key] = true
			}
		case EventKeyUp:
			if !e.Key.Valid() {
				continue
			}
			in.Now.edges[e.Key] = EdgeReleased
			in.held[e.Key] = false
		case EventResize:
			in.Now.resize = &[2]int{e.Width, e.Height}
		case EventQuit:
			in.Now.Quit = true
		}
	}
}

// Held reports whether k is currently down.
func (in *Input) Held(k Key) bool {
	if !k.Valid() {
		return false
	}
	return in.held[k]
}

// Pressed reports whether k went down during the last poll.
func (in *Input) Pressed(k Key) bool {
	return in.Now.Edge(k) == EdgePressed
}

// Released reports whether k went up during the last poll.
func (in *Input) Released(k Key) bool {
	return in.Now.Edge(k) == EdgeReleased
}
