package skipset

// counters track structural events over the lifetime of a set.
type counters struct {
	grows      int64
	rebalances int64
}

// Stats is a snapshot of a set's shape.
type Stats struct {
	// Len is the number of elements.
	Len int
	// MaxHeight is the current level bound.
	MaxHeight int
	// LevelCounts[i] is the number of elements linked at level i.
	LevelCounts []int
	// Grows counts how many times the level bound was raised. Clear does
	// not reset it.
	Grows int64
	// Rebalances counts calls to Rebalance.
	Rebalances int64
	// SearchSteps is the total number of moves the leveled walk makes to
	// locate every element once.
	SearchSteps int
}

// AvgSearchSteps is the mean number of walk moves per element.
func (st Stats) AvgSearchSteps() float64 {
	if st.Len == 0 {
		return 0
	}
	return float64(st.SearchSteps) / float64(st.Len)
}

// Stats walks the whole structure and reports its shape. It costs
// O(n log n).
func (s *SkipListSet[T]) Stats() Stats {
	st := Stats{
		Len:         s.size,
		MaxHeight:   s.maxHeight,
		LevelCounts: make([]int, s.maxHeight),
		Grows:       s.stats.grows,
		Rebalances:  s.stats.rebalances,
	}

	for level := 0; level < s.maxHeight; level++ {
		for id := s.neighborAt(headID, level); id != nilNode; id = s.neighborAt(id, level) {
			st.LevelCounts[level]++
		}
	}

	for v := range s.All() {
		s.descend(v, &st.SearchSteps)
	}
	return st
}
