package skipset

import "testing"

// assertStructure checks the skip list invariants: strictly ascending level
// 0 holding every element, level nesting, link array sizes and arena
// accounting.
func assertStructure[T any](t *testing.T, s *SkipListSet[T]) {
	t.Helper()

	head := s.nodes.get(headID)
	if len(head.next) != s.maxHeight {
		t.Fatalf("expected head to have %d links, got %d", s.maxHeight, len(head.next))
	}

	levels := make([][]nodeID, s.maxHeight)
	for level := range levels {
		for id := s.neighborAt(headID, level); id != nilNode; id = s.neighborAt(id, level) {
			nd := s.nodes.get(id)
			if len(nd.next) < 1 || len(nd.next) > s.maxHeight {
				t.Fatalf("node %d has height %d outside [1, %d]", id, len(nd.next), s.maxHeight)
			}
			if level >= len(nd.next) {
				t.Fatalf("node %d linked at level %d but has height %d", id, level, len(nd.next))
			}
			levels[level] = append(levels[level], id)
		}
	}

	bottom := levels[0]
	if len(bottom) != s.size {
		t.Fatalf("expected level 0 to hold %d nodes, got %d", s.size, len(bottom))
	}
	if live := s.nodes.live(); live != s.size {
		t.Fatalf("expected %d live arena slots, got %d", s.size, live)
	}
	for i := 1; i < len(bottom); i++ {
		if s.compare(s.valueOf(bottom[i-1]), s.valueOf(bottom[i])) >= 0 {
			t.Fatalf("level 0 out of order at position %d: %v then %v",
				i, s.valueOf(bottom[i-1]), s.valueOf(bottom[i]))
		}
	}

	for level := 1; level < len(levels); level++ {
		lower := levels[level-1]
		j := 0
		for _, id := range levels[level] {
			for j < len(lower) && lower[j] != id {
				j++
			}
			if j == len(lower) {
				t.Fatalf("node %d at level %d missing from level %d", id, level, level-1)
			}
		}
	}
}
