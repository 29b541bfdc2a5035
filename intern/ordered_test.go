package intern

import (
	"testing"

	"github.com/astef/bitvec"
	"github.com/astef/bitvec/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet(t *testing.T) {
	a := arena.New()
	s := NewOrderedSet(a)

	_, ok := s.Min()
	assert.False(t, ok)

	assert.True(t, s.Insert(set(a, 4, 0)))
	assert.True(t, s.Insert(set(a, 4, 1, 2, 3)))
	assert.True(t, s.Insert(set(a, 128, 64)))
	assert.True(t, s.Insert(bitvec.New(a)))
	assert.False(t, s.Insert(set(a, 900, 0)))
	assert.Equal(t, 4, s.Len())

	var order [][]int
	s.Ascend(func(v *bitvec.BitVec) bool {
		order = append(order, collect(v))
		return true
	})
	// bit-position order: the set holding the lowest differing bit sorts last
	assert.Equal(t, [][]int{nil, {64}, {1, 2, 3}, {0}}, order)

	least, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, 0, least.Count())
}

func TestOrderedSetDelete(t *testing.T) {
	a := arena.New()
	s := NewOrderedSet(a)
	s.Insert(set(a, 70, 69))
	s.Insert(set(a, 70, 1))

	assert.True(t, s.Has(set(nil, 300, 69)))
	assert.True(t, s.Delete(set(nil, 70, 69)))
	assert.False(t, s.Delete(set(nil, 70, 69)))
	assert.False(t, s.Has(set(nil, 70, 69)))
	assert.Equal(t, 1, s.Len())
}

func TestOrderedSetAscendStops(t *testing.T) {
	s := NewOrderedSet(nil)
	for i := 0; i < 10; i++ {
		s.Insert(set(nil, 10, i))
	}
	n := 0
	s.Ascend(func(*bitvec.BitVec) bool {
		n++
		return n < 3
	})
	assert.Equal(t, 3, n)
}
