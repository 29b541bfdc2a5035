package bitvec

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether v and other hold the same bits. The shorter word
// sequence is treated as padded with zeros, so vectors that differ only in
// capacity, or in trailing zero bits, are equal.
func (v *BitVec) Equal(other *BitVec) bool {
	a, b := v.Words(), other.Words()
	for i := range max(len(a), len(b)) {
		if wordAt(a, i) != wordAt(b, i) {
			return false
		}
	}
	return true
}

// Compare orders vectors word by word starting at word 0. At the first word
// that differs, the vector holding the lowest differing bit is the greater one.
//
// This is bit-position order, not numeric order: {0} > {1, 2, 3} because bit 0
// is the first place the two differ and only the left side has it. Compare
// returns -1, 0 or +1 and agrees with Equal.
func (v *BitVec) Compare(other *BitVec) int {
	a, b := v.Words(), other.Words()
	for i := range max(len(a), len(b)) {
		x, y := wordAt(a, i), wordAt(b, i)
		if x == y {
			continue
		}
		if x>>bits.TrailingZeros64(x^y)&1 != 0 {
			return 1
		}
		return -1
	}
	return 0
}

// Compare is BitVec.Compare in a form usable with slices.SortFunc.
func Compare(a, b *BitVec) int {
	return a.Compare(b)
}

// Hash returns a hash of the bits with trailing zero words trimmed, so equal
// vectors hash identically whatever their capacity.
func (v *BitVec) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, w := range v.significant() {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Key returns a comparable form of the bits for use as a map key. Vectors have
// the same key exactly when they are Equal.
func (v *BitVec) Key() string {
	words := v.significant()
	b := make([]byte, 0, len(words)*8)
	for _, w := range words {
		b = binary.LittleEndian.AppendUint64(b, w)
	}
	return string(b)
}

// significant returns the in-use words up to and including the last nonzero one.
func (v *BitVec) significant() []uint64 {
	words := v.Words()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	return words[:n]
}

func wordAt(words []uint64, i int) uint64 {
	if i < len(words) {
		return words[i]
	}
	return 0
}
