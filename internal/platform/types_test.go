package platform

import "testing"

func TestQueueCoalescesPointerMoves(t *testing.T) {
	var q Queue
	q.Push(Event{Type: EventPointerDown, X: 1, Y: 1})
	q.Push(Event{Type: EventPointerMove, X: 2, Y: 2})
	q.Push(Event{Type: EventPointerMove, X: 3, Y: 3})
	q.Push(Event{Type: EventPointerUp, X: 3, Y: 3})
	q.Push(Event{Type: EventPointerMove, X: 4, Y: 4})

	got := q.Drain()
	if len(got) != 4 {
		t.Fatalf("expected 4 events, got %d: %v", len(got), got)
	}
	if got[1].Type != EventPointerMove || got[1].X != 3 {
		t.Fatalf("expected latest move to win, got %+v", got[1])
	}
	if got[2].Type != EventPointerUp {
		t.Fatalf("moves must not be merged across other events: %+v", got[2])
	}
	if len(q.Drain()) != 0 {
		t.Fatalf("drain must empty the queue")
	}
}
