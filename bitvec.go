package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/astef/bitvec/arena"
)

const wordSize = 64

// BitVec is a growable sequence of bits stored in a run of words leased from an
// arena. Only the goroutine owning the arena may use the vector.
type BitVec struct {
	arena *arena.Arena
	// len(store) is the capacity in words; bits at or past len are always zero
	store []uint64
	len   int
	// arena generation store was leased in
	gen uint64
}

// New returns an empty vector backed by a. Nothing is leased until the vector
// grows. A nil arena makes the vector allocate from the Go heap.
func New(a *arena.Arena) *BitVec {
	return &BitVec{arena: a}
}

// WithCapacity returns an empty vector with room for at least bits bits.
func WithCapacity(a *arena.Arena, bits int) *BitVec {
	if bits < 0 {
		panic(fmt.Sprintf("negative capacity %v", bits))
	}
	v := &BitVec{arena: a}
	v.store = v.lease(wordsFor(bits))
	return v
}

// Len returns the number of bits in the vector.
func (v *BitVec) Len() int {
	return v.len
}

// Cap returns the number of bits the vector can hold without leasing a new run.
func (v *BitVec) Cap() int {
	return len(v.store) * wordSize
}

// Get returns the bit at index. ok is false if index is out of range.
func (v *BitVec) Get(index int) (value bool, ok bool) {
	if index < 0 || index >= v.len {
		return false, false
	}
	w, m := getBit(index)
	return v.store[w]&m != 0, true
}

// At returns the bit at index and panics if index is out of range.
func (v *BitVec) At(index int) bool {
	checkBounds(v.len, index)
	w, m := getBit(index)
	return v.store[w]&m != 0
}

// Set assigns the bit at index. The vector must already be long enough;
// Set panics otherwise.
func (v *BitVec) Set(index int, value bool) {
	checkBounds(v.len, index)
	w, m := getBit(index)
	if value {
		v.store[w] |= m
	} else {
		v.store[w] &^= m
	}
}

// Resize changes the length to n. Bits brought into range are set to fill.
// Shrinking never gives capacity back.
func (v *BitVec) Resize(n int, fill bool) {
	if n < 0 {
		panic(fmt.Sprintf("negative length %v", n))
	}
	oldWords := v.inUse()
	newWords := wordsFor(n)

	switch {
	case n > v.len:
		v.ensureCapacity(newWords)
		if fill {
			if r := v.len % wordSize; r != 0 {
				v.store[oldWords-1] |= ^uint64(0) << r
			}
			for i := oldWords; i < newWords; i++ {
				v.store[i] = ^uint64(0)
			}
		} else {
			clear(v.store[oldWords:newWords])
		}
	case n < v.len:
		clear(v.store[newWords:oldWords])
	}

	v.len = n
	v.maskTail()
}

// Last returns the final bit. ok is false if the vector is empty.
func (v *BitVec) Last() (value bool, ok bool) {
	if v.len == 0 {
		return false, false
	}
	return v.Get(v.len - 1)
}

// Pop removes the final bit and returns it. ok is false if the vector is empty.
func (v *BitVec) Pop() (value bool, ok bool) {
	if v.len == 0 {
		return false, false
	}
	v.len--
	w, m := getBit(v.len)
	value = v.store[w]&m != 0
	v.store[w] &^= m
	if w >= v.inUse() {
		v.store[w] = 0
	}
	return value, true
}

// InsertAll ORs other into v and reports whether any bit of v went from 0 to 1.
// The length of v becomes the larger of the two lengths.
func (v *BitVec) InsertAll(other *BitVec) bool {
	ours := v.inUse()
	theirs := other.inUse()
	if theirs > len(v.store) {
		v.ensureCapacity(theirs)
	} else if theirs > ours {
		clear(v.store[ours:theirs])
	}

	dst := v.store[:theirs]
	var changed uint64
	for i, o := range other.store[:theirs] {
		s := dst[i]
		changed |= o &^ s
		dst[i] = s | o
	}

	v.len = max(v.len, other.len)
	return changed != 0
}

// Clone returns a copy of v leased from the same arena. The copy's capacity is
// exactly the words v has in use.
func (v *BitVec) Clone() *BitVec {
	n := v.inUse()
	c := &BitVec{arena: v.arena, len: v.len}
	c.store = c.lease(n)
	copy(c.store, v.store[:n])
	return c
}

// Count returns the number of set bits.
func (v *BitVec) Count() int {
	n := 0
	for _, w := range v.Words() {
		n += bits.OnesCount64(w)
	}
	return n
}

// Words returns the words in use, lowest bits first. The slice aliases the
// vector's storage and is only valid until the next mutation.
func (v *BitVec) Words() []uint64 {
	return v.store[:v.inUse()]
}

// Release hands the vector's run back to its arena and leaves the vector empty
// with no capacity. The vector may be reused afterwards. A run leased before the
// arena's last Reset is not handed back.
func (v *BitVec) Release() {
	v.free(v.store, v.inUse(), v.gen)
	v.store = nil
	v.len = 0
}

func (v *BitVec) inUse() int {
	return wordsFor(v.len)
}

// ensureCapacity makes room for at least words words, moving the in-use words
// into a run of exactly that size when the current one is too small.
func (v *BitVec) ensureCapacity(words int) {
	if words <= len(v.store) {
		return
	}
	used := v.inUse()
	old, gen := v.store, v.gen
	v.store = v.lease(words)
	copy(v.store, old[:used])
	v.free(old, used, gen)
}

// maskTail clears the bits of the last in-use word that lie past len.
func (v *BitVec) maskTail() {
	if r := v.len % wordSize; r != 0 {
		v.store[v.len/wordSize] &= uint64(1)<<r - 1
	}
}

func (v *BitVec) lease(words int) []uint64 {
	if v.arena == nil {
		if words == 0 {
			return nil
		}
		return make([]uint64, words)
	}
	v.gen = v.arena.Generation()
	return v.arena.Alloc(words)
}

// free hands run back to the arena. A run leased before the arena's last Reset
// is dropped instead: its words may already belong to another vector.
func (v *BitVec) free(run []uint64, used int, gen uint64) {
	if v.arena != nil && gen == v.arena.Generation() {
		v.arena.Free(run, used)
	}
}

func wordsFor(bits int) int {
	return (bits + wordSize - 1) / wordSize
}

func getBit(index int) (int, uint64) {
	return index / wordSize, uint64(1) << (index % wordSize)
}

func checkBounds(len int, index int) {
	if index < 0 || index >= len {
		panic(fmt.Sprintf("index out of range [%v] with length %v", index, len))
	}
}
