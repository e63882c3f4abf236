package skipset

import "testing"

func TestArenaReusesReleasedSlots(t *testing.T) {
	a := newArena[string](4)
	if got := len(a.get(headID).next); got != 4 {
		t.Fatalf("expected head with 4 links, got %d", got)
	}

	x := a.acquire("x", 3)
	y := a.acquire("y", 1)
	if a.live() != 2 {
		t.Fatalf("expected 2 live slots, got %d", a.live())
	}

	a.release(x)
	if a.live() != 1 {
		t.Fatalf("expected 1 live slot after release, got %d", a.live())
	}
	if got := a.get(x).value; got != "" {
		t.Fatalf("expected released slot to drop its value, got %q", got)
	}

	z := a.acquire("z", 2)
	if z != x {
		t.Fatalf("expected released slot %d to be reused, got %d", x, z)
	}
	nd := a.get(z)
	if nd.value != "z" || len(nd.next) != 2 {
		t.Fatalf("expected reused slot to hold z with height 2, got %q with height %d", nd.value, len(nd.next))
	}
	for level, next := range nd.next {
		if next != nilNode {
			t.Fatalf("expected reused slot to start unlinked, level %d points to %d", level, next)
		}
	}

	grown := a.acquire("w", 5)
	if grown == y || grown == z {
		t.Fatalf("expected a fresh slot, got %d", grown)
	}
}

func TestArenaIgnoresHeadAndNilRelease(t *testing.T) {
	a := newArena[int](2)
	a.release(headID)
	a.release(nilNode)
	if len(a.free) != 0 {
		t.Fatalf("expected no free slots, got %d", len(a.free))
	}
	if a.live() != 0 {
		t.Fatalf("expected no live slots, got %d", a.live())
	}
}

func TestRemovedNodesReturnToArena(t *testing.T) {
	s := newIntSet(t, []int{1, 2, 3, 4})
	slots := len(s.nodes.nodes)

	for _, v := range []int{2, 3} {
		if _, err := s.Remove(v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, v := range []int{7, 8} {
		if _, err := s.Add(v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := len(s.nodes.nodes); got != slots {
		t.Fatalf("expected arena to stay at %d slots, got %d", slots, got)
	}
	assertStructure(t, s)
}
