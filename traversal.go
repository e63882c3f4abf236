package skipset

// neighborAt returns the node linked from id at level. Levels outside
// [0, maxHeight-1] or beyond the node's own height yield nilNode.
func (s *SkipListSet[T]) neighborAt(id nodeID, level int) nodeID {
	if id == nilNode || level < 0 || level > s.maxHeight-1 {
		return nilNode
	}
	nd := s.nodes.get(id)
	if level >= len(nd.next) {
		return nilNode
	}
	return nd.next[level]
}

func (s *SkipListSet[T]) valueOf(id nodeID) T {
	return s.nodes.get(id).value
}

// locate returns the predecessor of target at each level and whether the
// level-0 successor of preds[0] equals target.
func (s *SkipListSet[T]) locate(target T) (preds []nodeID, found bool) {
	return s.descend(target, nil)
}

// descend is the leveled walk behind locate. It starts at the head on the
// top level and moves right while the next value is less than target, then
// drops a level keeping the current node. When steps is non-nil it counts
// every rightward move and every level drop.
func (s *SkipListSet[T]) descend(target T, steps *int) (preds []nodeID, found bool) {
	preds = make([]nodeID, s.maxHeight)

	x := headID
	for level := s.maxHeight - 1; level >= 0; level-- {
		for {
			next := s.neighborAt(x, level)
			if next == nilNode || s.compare(s.valueOf(next), target) >= 0 {
				break
			}
			x = next
			if steps != nil {
				*steps++
			}
		}
		preds[level] = x
		if steps != nil {
			*steps++
		}
		if locateHook != nil {
			locateHook(level, x)
		}
	}

	candidate := s.neighborAt(preds[0], 0)
	found = candidate != nilNode && s.compare(s.valueOf(candidate), target) == 0
	return preds, found
}

// lastNode returns the node at the end of the level-0 chain, or headID when
// the set is empty. Upper levels are used as express lanes.
func (s *SkipListSet[T]) lastNode() nodeID {
	x := headID
	for level := s.maxHeight - 1; level >= 0; level-- {
		for next := s.neighborAt(x, level); next != nilNode; next = s.neighborAt(x, level) {
			x = next
		}
	}
	return x
}
