package skipset

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Hasher may be implemented by element types whose textual form differs
// between elements that Compare as equal. Equal elements must hash equal.
type Hasher interface {
	Hash() uint64
}

// Equal reports whether other is a Set of the same element type holding
// exactly the same elements. Insertion order and internal layout do not
// matter.
func (s *SkipListSet[T]) Equal(other any) bool {
	if o, ok := other.(*SkipListSet[T]); ok && o == s {
		return true
	}
	o, ok := other.(Set[T])
	if !ok || nilCollection[T](o) || o.Len() != s.Len() {
		return false
	}

	for v := range o.All() {
		if found, err := s.Contains(v); err != nil || !found {
			return false
		}
	}
	for v := range s.All() {
		if found, err := o.Contains(v); err != nil || !found {
			return false
		}
	}
	return true
}

// Hash returns the wrapping sum of the element hashes, so equal sets hash
// equal regardless of how they were built.
func (s *SkipListSet[T]) Hash() uint64 {
	var sum uint64
	for v := range s.All() {
		sum += elementHash(v)
	}
	return sum
}

func elementHash[T any](v T) uint64 {
	switch x := any(v).(type) {
	case Hasher:
		return x.Hash()
	case string:
		return xxhash.Sum64String(x)
	case float64:
		if x == 0 {
			x = 0 // fold -0 into +0
		}
		return xxhash.Sum64String(strconv.FormatFloat(x, 'g', -1, 64))
	case float32:
		if x == 0 {
			x = 0
		}
		return xxhash.Sum64String(strconv.FormatFloat(float64(x), 'g', -1, 32))
	case int:
		return xxhash.Sum64String(strconv.Itoa(x))
	case int64:
		return xxhash.Sum64String(strconv.FormatInt(x, 10))
	case uint64:
		return xxhash.Sum64String(strconv.FormatUint(x, 10))
	}
	return xxhash.Sum64String(fmt.Sprint(v))
}
