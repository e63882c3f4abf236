package skipset

import (
	"iter"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	a := newIntSet(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, WithSeed(1))
	b := newIntSet(t, []int{8, 6, 4, 2, 7, 5, 3, 1}, WithSeed(2))

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Rebalance()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqualDetectsDifferences(t *testing.T) {
	a := newIntSet(t, []int{1, 2, 3})

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(newIntSet(t, []int{1, 2})), "different size")
	assert.False(t, a.Equal(newIntSet(t, []int{1, 2, 4})), "same size, different elements")
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(Slice[int]{1, 2, 3}), "a slice is not a set")
	assert.False(t, a.Equal(New[int64]()), "different element type")

	var nilSet *SkipListSet[int]
	assert.False(t, a.Equal(nilSet))

	assert.True(t, New[int]().Equal(New[int]()))
	assert.Equal(t, uint64(0), New[int]().Hash())
}

// mapSet is a minimal Set used to check Equal against foreign
// implementations.
type mapSet map[int]struct{}

func (m mapSet) Len() int { return len(m) }

func (m mapSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := range m {
			if !yield(k) {
				return
			}
		}
	}
}

func (m mapSet) Contains(x int) (bool, error) {
	_, ok := m[x]
	return ok, nil
}

func TestEqualAgainstOtherSetImplementations(t *testing.T) {
	s := newIntSet(t, []int{3, 1, 2})

	assert.True(t, s.Equal(mapSet{1: {}, 2: {}, 3: {}}))
	assert.False(t, s.Equal(mapSet{1: {}, 2: {}, 9: {}}))
}

func TestHashFoldsSignedZero(t *testing.T) {
	neg := New[float64]()
	_, err := neg.Add(math.Copysign(0, -1))
	require.NoError(t, err)

	pos := New[float64]()
	_, err = pos.Add(0)
	require.NoError(t, err)

	assert.True(t, neg.Equal(pos))
	assert.Equal(t, neg.Hash(), pos.Hash())
}

func TestHashDependsOnMembership(t *testing.T) {
	a := newIntSet(t, []int{1, 2, 3})
	b := newIntSet(t, []int{1, 2, 4})
	assert.NotEqual(t, a.Hash(), b.Hash())

	strs := New[string]()
	_, err := strs.AddAll(Slice[string]{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, elementHash("a")+elementHash("b"), strs.Hash())
}

// label compares case-insensitively, so it supplies a Hasher that agrees
// with its order.
type label string

func (l label) Compare(other label) int {
	return strings.Compare(strings.ToLower(string(l)), strings.ToLower(string(other)))
}

func (l label) Hash() uint64 {
	return elementHash(strings.ToLower(string(l)))
}

func TestHashUsesElementHasher(t *testing.T) {
	a := NewComparable[label]()
	_, err := a.AddAll(Slice[label]{"Go", "Rust"})
	require.NoError(t, err)

	b := NewComparable[label]()
	_, err = b.AddAll(Slice[label]{"rust", "GO"})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}
