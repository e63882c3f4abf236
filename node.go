package skipset

// nodeID addresses a node slot in the set's arena.
type nodeID int32

const (
	nilNode nodeID = -1
	headID  nodeID = 0
)

// MaxLevel is the hard cap on the level bound. It is never reached in
// practice: the bound only grows past h once the set holds 2^h+1 elements.
const MaxLevel = 32

// node holds an element and its forward links, one per level it
// participates in. The head's value is the zero value and never compared.
type node[T any] struct {
	value T
	next  []nodeID
}

func newLinks(height int) []nodeID {
	next := make([]nodeID, height)
	for i := range next {
		next[i] = nilNode
	}
	return next
}
