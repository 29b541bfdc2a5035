package bitvec

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/astef/bitvec/arena"
)

// vec builds a vector of length n with the given bits set.
func vec(a *arena.Arena, n int, set ...int) *BitVec {
	v := New(a)
	v.Resize(n, false)
	for _, i := range set {
		v.Set(i, true)
	}
	return v
}

// assertTailClear fails if any bit past Len is set anywhere in the leased run.
func assertTailClear(t *testing.T, v *BitVec) {
	t.Helper()
	for i := v.len; i < len(v.store)*wordSize; i++ {
		if v.store[i/wordSize]>>(i%wordSize)&1 != 0 {
			t.Fatalf("bit %v is set past length %v (capacity %v)", i, v.len, v.Cap())
		}
	}
}

func zeros(n int) string {
	return strings.Repeat("0", n)
}

func ones(n int) string {
	return strings.Repeat("1", n)
}

func zerosWords(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i != 0 {
			b.WriteString(" ")
		}
		b.WriteString(zeros(wordSize))
	}
	return b.String()
}

func genN() (nS int, nM int, nL int, nXL int) {
	nS, nM, nL, nXL =
		1,
		2,
		3+rand.Intn(wordSize*2),
		wordSize*2+rand.Intn(wordSize*3)
	return
}
