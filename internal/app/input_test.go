package app

import (
	"testing"

	"lifeboard/internal/core"
)

func drain(q *core.EventQueue) []core.Event {
	var out []core.Event
	for {
		ev, ok := q.PollEvent()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestPointerTrackerGesture(t *testing.T) {
	var q core.EventQueue
	p := NewPointerTracker(core.ButtonPrimary)

	p.Sample(&q, PointerSample{X: 5, Y: 5})
	if q.Len() != 0 {
		t.Fatal("hover without a press must not emit events")
	}

	p.Sample(&q, PointerSample{X: 5, Y: 5, JustPressed: true})
	p.Sample(&q, PointerSample{X: 5, Y: 5})
	p.Sample(&q, PointerSample{X: 25, Y: 5})
	p.Sample(&q, PointerSample{X: 25, Y: 15, JustReleased: true})
	p.Sample(&q, PointerSample{X: 40, Y: 40})

	want := []core.Event{
		core.PointerDown{Button: core.ButtonPrimary, X: 5, Y: 5},
		core.PointerMove{X: 25, Y: 5},
		core.PointerMove{X: 25, Y: 15},
		core.PointerUp{Button: core.ButtonPrimary},
	}
	got := drain(&q)
	if len(got) != len(want) {
		t.Fatalf("events = %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if p.Down() {
		t.Fatal("button must be up after release")
	}
}

func TestPointerTrackerIgnoresStrayRelease(t *testing.T) {
	var q core.EventQueue
	p := NewPointerTracker(core.ButtonSecondary)
	p.Sample(&q, PointerSample{JustReleased: true})
	if q.Len() != 0 {
		t.Fatal("release without a press must not emit events")
	}
}

func TestPointerTrackerClickInOneFrame(t *testing.T) {
	var q core.EventQueue
	p := NewPointerTracker(core.ButtonPrimary)
	p.Sample(&q, PointerSample{X: 1, Y: 2, JustPressed: true, JustReleased: true})
	got := drain(&q)
	if len(got) != 2 {
		t.Fatalf("events = %#v", got)
	}
	if _, ok := got[1].(core.PointerUp); !ok {
		t.Fatalf("second event = %#v, want PointerUp", got[1])
	}
}
