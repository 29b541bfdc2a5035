package bitvec

import (
	"iter"
	"math/bits"
)

// SetBitsIter walks the indices of set bits in ascending order. Zero words are
// skipped whole. It must not be used after the vector is mutated; start a new
// one instead.
type SetBitsIter struct {
	words []uint64
	index int
	word  uint64
}

// Iter returns an iterator over the indices of the set bits of v.
func (v *BitVec) Iter() *SetBitsIter {
	it := &SetBitsIter{words: v.Words()}
	if len(it.words) > 0 {
		it.word = it.words[0]
	}
	return it
}

// Next returns the next set bit index. ok is false once the bits are exhausted.
func (it *SetBitsIter) Next() (index int, ok bool) {
	for it.word == 0 {
		if it.index+1 >= len(it.words) {
			it.index = len(it.words)
			return 0, false
		}
		it.index++
		it.word = it.words[it.index]
	}
	bit := bits.TrailingZeros64(it.word)
	// clear lowest set bit
	it.word &= it.word - 1
	return it.index*wordSize + bit, true
}

// SetBits returns a sequence of the indices of the set bits of v, ascending.
func (v *BitVec) SetBits() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := v.Iter()
		for {
			i, ok := it.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}
