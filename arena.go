package skipset

// arena is the contiguous backing store for a set's nodes. Slot 0 is the
// head. Released slots go to a free list and are handed out again by
// acquire, so link rewrites never touch the Go heap.
//
// Pointers returned by get are invalidated by acquire.
type arena[T any] struct {
	nodes []node[T]
	free  []nodeID
}

func newArena[T any](headHeight int) *arena[T] {
	a := &arena[T]{nodes: make([]node[T], 1, 16)}
	a.nodes[headID].next = newLinks(headHeight)
	return a
}

func (a *arena[T]) get(id nodeID) *node[T] {
	return &a.nodes[id]
}

func (a *arena[T]) acquire(value T, height int) nodeID {
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]

		nd := &a.nodes[id]
		if cap(nd.next) < height {
			nd.next = make([]nodeID, height)
		} else {
			nd.next = nd.next[:height]
		}
		for i := range nd.next {
			nd.next[i] = nilNode
		}
		nd.value = value
		return id
	}

	a.nodes = append(a.nodes, node[T]{value: value, next: newLinks(height)})
	return nodeID(len(a.nodes) - 1)
}

func (a *arena[T]) release(id nodeID) {
	if id == headID || id == nilNode {
		return
	}

	nd := &a.nodes[id]
	var zero T
	nd.value = zero
	nd.next = nd.next[:0]

	a.free = append(a.free, id)
}

// live reports the number of slots holding elements.
func (a *arena[T]) live() int {
	return len(a.nodes) - 1 - len(a.free)
}
