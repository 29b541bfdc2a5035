package bitvec

import (
	"slices"
	"testing"

	"github.com/astef/bitvec/arena"
	"github.com/stretchr/testify/assert"
)

func TestSetBits(t *testing.T) {
	tests := map[string]struct {
		source   *BitVec
		expected []int
	}{
		"empty":           {New(nil), nil},
		"all_zero":        {vec(nil, 300), nil},
		"single":          {vec(nil, 5, 3), []int{3}},
		"word_edges":      {vec(nil, 130, 0, 63, 64, 127, 128), []int{0, 63, 64, 127, 128}},
		"skips_zero_runs": {vec(nil, 1000, 2, 999), []int{2, 999}},
		"leading_zeros":   {vec(nil, 640, 600), []int{600}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slices.Collect(tc.source.SetBits()))

			var fromIter []int
			it := tc.source.Iter()
			for i, ok := it.Next(); ok; i, ok = it.Next() {
				fromIter = append(fromIter, i)
			}
			assert.Equal(t, tc.expected, fromIter)

			// exhausted iterators stay exhausted
			_, ok := it.Next()
			assert.False(t, ok)
		})
	}
}

func TestSetBitsMatchesGet(t *testing.T) {
	v := New(arena.New())
	v.Resize(517, false)
	for i := 0; i < v.Len(); i++ {
		if i%7 == 0 || i%64 == 63 {
			v.Set(i, true)
		}
	}

	var expected []int
	for i := 0; i < v.Len(); i++ {
		if bit, _ := v.Get(i); bit {
			expected = append(expected, i)
		}
	}
	assert.Equal(t, expected, slices.Collect(v.SetBits()))
	assert.Len(t, expected, v.Count())
}

func TestSetBitsStopsEarly(t *testing.T) {
	v := vec(nil, 100, 1, 2, 3, 4)
	var seen []int
	for i := range v.SetBits() {
		seen = append(seen, i)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSetBitsRestart(t *testing.T) {
	v := vec(nil, 10, 1)
	assert.Equal(t, []int{1}, slices.Collect(v.SetBits()))

	v.Set(8, true)
	assert.Equal(t, []int{1, 8}, slices.Collect(v.SetBits()))
}
