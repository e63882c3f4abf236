package skipset

import "github.com/pkg/errors"

// RemovePolicy selects where an Iterator continues after Remove.
type RemovePolicy int

const (
	// ResetToHead restarts traversal from the smallest element after a
	// removal. Elements before the removed one are yielded again.
	ResetToHead RemovePolicy = iota
	// ResumeAtSuccessor continues with the element that followed the
	// removed one.
	ResumeAtSuccessor
)

// Iterator is a forward-only, one-pass cursor over a set in ascending
// order. It starts positioned before the first element. The set must only
// be modified through the iterator's own Remove while it is in use.
type Iterator[T any] struct {
	s       *SkipListSet[T]
	nodes   *arena[T]
	current nodeID
	policy  RemovePolicy
	removed bool
}

// IteratorOption configures an Iterator.
type IteratorOption func(*iteratorConfig)

type iteratorConfig struct {
	policy RemovePolicy
}

// OnRemove overrides the set's default RemovePolicy for one iterator.
func OnRemove(p RemovePolicy) IteratorOption {
	return func(c *iteratorConfig) { c.policy = p }
}

// Iterator returns a new iterator positioned before the first element.
func (s *SkipListSet[T]) Iterator(opts ...IteratorOption) *Iterator[T] {
	config := iteratorConfig{policy: s.config.removePolicy}
	for _, opt := range opts {
		opt(&config)
	}
	return &Iterator[T]{
		s:       s,
		nodes:   s.nodes,
		current: headID,
		policy:  config.policy,
	}
}

// HasNext reports whether calling Next will succeed. It reports false once
// the set has been cleared or rebalanced underneath the iterator.
func (it *Iterator[T]) HasNext() bool {
	if it == nil || it.s == nil || it.nodes != it.s.nodes {
		return false
	}
	return it.s.neighborAt(it.current, 0) != nilNode
}

// Next advances to the next element and returns it. It returns
// ErrEmptyCollection when the iteration is exhausted.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, errors.Wrap(ErrEmptyCollection, "iterator next")
	}
	it.current = it.s.neighborAt(it.current, 0)
	it.removed = false
	return it.s.valueOf(it.current), nil
}

// Remove deletes the element returned by the last call to Next. It returns
// ErrInvalidIteratorState before the first Next, after a previous Remove,
// or once the set has been cleared or rebalanced.
func (it *Iterator[T]) Remove() error {
	if it == nil || it.s == nil || it.nodes != it.s.nodes ||
		it.current == headID || it.current == nilNode || it.removed {
		return errors.Wrap(ErrInvalidIteratorState, "iterator remove")
	}

	value := it.s.valueOf(it.current)
	switch it.policy {
	case ResumeAtSuccessor:
		preds, _ := it.s.locate(value)
		it.s.unlink(value)
		it.current = preds[0]
	default:
		it.s.unlink(value)
		it.current = headID
	}
	it.removed = true
	return nil
}
