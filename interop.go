package bitvec

import (
	"github.com/astef/bitvec/arena"
	"github.com/bits-and-blooms/bitset"
)

// ToBitSet copies v into a bits-and-blooms BitSet of the same length. Both use
// little-endian bit order within uint64 words, so the words are copied as is.
func (v *BitVec) ToBitSet() *bitset.BitSet {
	words := make([]uint64, v.inUse())
	copy(words, v.store)
	return bitset.FromWithLength(uint(v.len), words)
}

// FromBitSet copies bs into a new vector leased from a. Bits of bs stored past
// its length are dropped.
func FromBitSet(a *arena.Arena, bs *bitset.BitSet) *BitVec {
	v := New(a)
	v.Resize(int(bs.Len()), false)
	copy(v.store[:v.inUse()], bs.Words())
	v.maskTail()
	return v
}
