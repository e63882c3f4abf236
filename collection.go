package skipset

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

// Collection is a finite group of elements accepted by the bulk operations.
type Collection[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// Set is a Collection with a membership test. SkipListSet implements it.
type Set[T any] interface {
	Collection[T]
	Contains(x T) (bool, error)
}

// Slice adapts a plain slice to Collection.
type Slice[T any] []T

// Len implements Collection.
func (s Slice[T]) Len() int { return len(s) }

// All implements Collection.
func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

var _ Set[int] = (*SkipListSet[int])(nil)

// All returns the elements in ascending order. The set must not be
// modified while the sequence is being consumed.
func (s *SkipListSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := s.neighborAt(headID, 0); id != nilNode; id = s.neighborAt(id, 0) {
			if !yield(s.valueOf(id)) {
				return
			}
		}
	}
}

// collect snapshots c after checking it and every element for nil, so bulk
// operations fail before mutating anything. Snapshotting also makes it safe
// to pass the set itself.
func (s *SkipListSet[T]) collect(op string, c Collection[T]) ([]T, error) {
	if nilCollection(c) {
		return nil, errors.Wrap(ErrNullArgument, op)
	}

	items := make([]T, 0, c.Len())
	for v := range c.All() {
		if s.isNull(v) {
			return nil, errors.Wrapf(ErrNullArgument, "%s: element %d", op, len(items))
		}
		items = append(items, v)
	}
	return items, nil
}

func nilCollection[T any](c Collection[T]) bool {
	if c == nil {
		return true
	}
	rv := reflect.ValueOf(c)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ContainsAll reports whether every element of c is in the set.
func (s *SkipListSet[T]) ContainsAll(c Collection[T]) (bool, error) {
	items, err := s.collect("contains all", c)
	if err != nil {
		return false, err
	}
	for _, v := range items {
		if _, found := s.locate(v); !found {
			return false, nil
		}
	}
	return true, nil
}

// AddAll inserts every element of c. It reports whether the set changed.
func (s *SkipListSet[T]) AddAll(c Collection[T]) (bool, error) {
	items, err := s.collect("add all", c)
	if err != nil {
		return false, err
	}
	changed := false
	for _, v := range items {
		if s.insert(v) {
			changed = true
		}
	}
	return changed, nil
}

// RemoveAll deletes every element of c. It reports whether the set changed.
func (s *SkipListSet[T]) RemoveAll(c Collection[T]) (bool, error) {
	items, err := s.collect("remove all", c)
	if err != nil {
		return false, err
	}
	changed := false
	for _, v := range items {
		if s.unlink(v) {
			changed = true
		}
	}
	return changed, nil
}

// RetainAll deletes every element that is not in c. It reports whether the
// set changed. Candidates are gathered in one pass over the set and removed
// in a second one.
func (s *SkipListSet[T]) RetainAll(c Collection[T]) (bool, error) {
	items, err := s.collect("retain all", c)
	if err != nil {
		return false, err
	}

	keep := s.sibling()
	for _, v := range items {
		keep.insert(v)
	}

	var drop []T
	for v := range s.All() {
		if _, found := keep.locate(v); !found {
			drop = append(drop, v)
		}
	}
	for _, v := range drop {
		s.unlink(v)
	}
	return len(drop) > 0, nil
}
