package platform

import "image"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventKeyDown
	EventTextInput
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventKeyDown:
		return "key-down"
	case EventTextInput:
		return "text-input"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	}
	return "unknown"
}

type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyTab
	KeyPaste
)

// Event is one discrete input, in screen pixels for pointer events.
type Event struct {
	Type EventType
	X    int
	Y    int
	Rune rune
	Key  Key
}

func (e Event) Point() image.Point { return image.Pt(e.X, e.Y) }

// Queue collects events during one frame. Pointer moves are coalesced: only
// the latest position between two other events is kept.
type Queue struct {
	events []Event
}

func (q *Queue) Push(e Event) {
	if e.Type == EventPointerMove && len(q.events) > 0 {
		last := &q.events[len(q.events)-1]
		if last.Type == EventPointerMove {
			*last = e
			return
		}
	}
	q.events = append(q.events, e)
}

// Drain returns the queued events and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
