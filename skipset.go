// Package skipset implements an ordered set on top of a skip list.
//
// A SkipListSet keeps its elements in natural ascending order and offers
// expected O(log n) membership tests, insertions and removals. Elements are
// either builtin ordered types (New) or types implementing Comparer
// (NewComparable). The set is not safe for concurrent use: callers that
// share one between goroutines must serialize every call themselves.
package skipset

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SkipListSet is an ordered set without duplicates backed by a skip list.
type SkipListSet[T any] struct {
	compare   func(a, b T) int
	nullable  bool
	nodes     *arena[T]
	maxHeight int
	size      int
	rng       *rng
	config    Config
	stats     counters
	log       logrus.FieldLogger
}

// New returns an empty set of a builtin ordered type.
func New[T cmp.Ordered](opts ...Option) *SkipListSet[T] {
	return newSet[T](cmp.Compare[T], buildConfig(opts))
}

// NewComparable returns an empty set of a type that defines its own order.
func NewComparable[T Comparer[T]](opts ...Option) *SkipListSet[T] {
	return newSet[T](func(a, b T) int { return a.Compare(b) }, buildConfig(opts))
}

// From returns a set holding the elements of c.
func From[T cmp.Ordered](c Collection[T], opts ...Option) (*SkipListSet[T], error) {
	s := New[T](opts...)
	if _, err := s.AddAll(c); err != nil {
		return nil, err
	}
	return s, nil
}

func buildConfig(opts []Option) Config {
	config := NewConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

func newSet[T any](compare func(a, b T) int, config Config) *SkipListSet[T] {
	s := &SkipListSet[T]{
		compare:  compare,
		nullable: nullable[T](),
		rng:      newRNG(config.seed),
		config:   config,
		log:      config.logger,
	}
	s.reset()
	return s
}

// sibling returns an empty set with the same ordering and configuration.
func (s *SkipListSet[T]) sibling() *SkipListSet[T] {
	return newSet[T](s.compare, s.config)
}

func (s *SkipListSet[T]) reset() {
	s.maxHeight = s.config.initialHeight
	s.nodes = newArena[T](s.maxHeight)
	s.size = 0
}

func (s *SkipListSet[T]) isNull(x T) bool {
	return s.nullable && isNil(x)
}

// Len returns the number of elements in the set.
func (s *SkipListSet[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the set has no elements.
func (s *SkipListSet[T]) IsEmpty() bool {
	return s.size == 0
}

// Contains reports whether x is in the set.
func (s *SkipListSet[T]) Contains(x T) (bool, error) {
	if s.isNull(x) {
		return false, errors.Wrap(ErrNullArgument, "contains")
	}
	_, found := s.locate(x)
	return found, nil
}

// ContainsAny is Contains for callers holding an untyped value. It returns
// ErrInvalidType when x is not of the set's element type.
func (s *SkipListSet[T]) ContainsAny(x any) (bool, error) {
	if x == nil {
		return false, errors.Wrap(ErrNullArgument, "contains")
	}
	v, ok := x.(T)
	if !ok {
		return false, errors.Wrapf(ErrInvalidType, "contains %T", x)
	}
	return s.Contains(v)
}

// Add inserts x. It reports whether the set changed, i.e. false when x was
// already present.
func (s *SkipListSet[T]) Add(x T) (bool, error) {
	if s.isNull(x) {
		return false, errors.Wrap(ErrNullArgument, "add")
	}
	return s.insert(x), nil
}

// Remove deletes x. It reports whether the set changed, i.e. false when x
// was absent. The level bound is never lowered.
func (s *SkipListSet[T]) Remove(x T) (bool, error) {
	if s.isNull(x) {
		return false, errors.Wrap(ErrNullArgument, "remove")
	}
	return s.unlink(x), nil
}

// First returns the smallest element.
func (s *SkipListSet[T]) First() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmptyCollection, "first")
	}
	return s.valueOf(s.neighborAt(headID, 0)), nil
}

// Last returns the largest element.
func (s *SkipListSet[T]) Last() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmptyCollection, "last")
	}
	return s.valueOf(s.lastNode()), nil
}

// ToSlice returns the elements in ascending order.
func (s *SkipListSet[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// ToSliceInto copies the elements in ascending order into dst and returns
// it. When dst is shorter than Len a new slice of length Len is returned
// instead. When dst is longer, dst[Len()] is set to the zero value to mark
// the end of the elements.
func (s *SkipListSet[T]) ToSliceInto(dst []T) ([]T, error) {
	if dst == nil {
		return nil, errors.Wrap(ErrNullArgument, "to slice")
	}

	if len(dst) < s.size {
		dst = make([]T, s.size)
	} else if len(dst) > s.size {
		var zero T
		dst[s.size] = zero
	}

	i := 0
	for v := range s.All() {
		dst[i] = v
		i++
	}
	return dst, nil
}

// Clear removes every element and resets the level bound to its initial
// value.
func (s *SkipListSet[T]) Clear() {
	size := s.size
	s.reset()
	s.log.WithField("size", size).Debug("Cleared skip list set.")
}

// Rebalance rebuilds the structure from scratch with freshly drawn node
// heights. Membership is unchanged. It is meant for sets whose height
// distribution degenerated under a pathological insertion order.
func (s *SkipListSet[T]) Rebalance() {
	snapshot := s.ToSlice()
	s.reset()
	for _, v := range snapshot {
		s.insert(v)
	}
	s.stats.rebalances++

	s.log.WithFields(logrus.Fields{
		"max_height": s.maxHeight,
		"size":       s.size,
	}).Debug("Rebalanced skip list set.")
}

// Comparator returns nil: sets are always in natural order.
func (s *SkipListSet[T]) Comparator() Comparator[T] {
	return nil
}

// SubSet is not supported.
func (s *SkipListSet[T]) SubSet(from, to T) (*SkipListSet[T], error) {
	return nil, errors.Wrap(ErrUnsupportedOperation, "sub set")
}

// HeadSet is not supported.
func (s *SkipListSet[T]) HeadSet(to T) (*SkipListSet[T], error) {
	return nil, errors.Wrap(ErrUnsupportedOperation, "head set")
}

// TailSet is not supported.
func (s *SkipListSet[T]) TailSet(from T) (*SkipListSet[T], error) {
	return nil, errors.Wrap(ErrUnsupportedOperation, "tail set")
}

// String formats the set like a slice, e.g. [1 2 3].
func (s *SkipListSet[T]) String() string {
	return fmt.Sprint(s.ToSlice())
}
