package skipset

import "github.com/sirupsen/logrus"

// insert splices x into the structure unless an equal element is present.
// It reports whether the set changed.
func (s *SkipListSet[T]) insert(x T) bool {
	preds, found := s.locate(x)
	if found {
		return false
	}

	height := s.rng.randomHeight(s.maxHeight)
	if s.grow() {
		// The new top level is empty, so its predecessor is the head.
		preds = append(preds, headID)
	}

	id := s.nodes.acquire(x, height)
	for level := 0; level < height; level++ {
		pred := s.nodes.get(preds[level])
		s.nodes.get(id).next[level] = pred.next[level]
		pred.next[level] = id
	}

	s.size++
	return true
}

// unlink removes x from every level it participates in and releases its
// slot. It reports whether the set changed.
func (s *SkipListSet[T]) unlink(x T) bool {
	preds, found := s.locate(x)
	if !found {
		return false
	}

	target := s.neighborAt(preds[0], 0)
	links := s.nodes.get(target).next
	for level := len(links) - 1; level >= 0; level-- {
		pred := s.nodes.get(preds[level])
		if pred.next[level] == target {
			pred.next[level] = links[level]
		}
	}

	s.nodes.release(target)
	s.size--
	return true
}

// grow raises the level bound by one when size has reached 2^maxHeight+1.
// It runs before each insertion and never on removal.
func (s *SkipListSet[T]) grow() bool {
	if s.maxHeight >= MaxLevel || s.size != (1<<s.maxHeight)+1 {
		return false
	}

	head := s.nodes.get(headID)
	head.next = append(head.next, nilNode)
	s.maxHeight++
	s.stats.grows++

	s.log.WithFields(logrus.Fields{
		"max_height": s.maxHeight,
		"size":       s.size,
	}).Debug("Raised skip list height bound.")
	return true
}
