package bitvec

import (
	"fmt"
	"strings"
)

const maxStringedWords = 8

// String renders the vector as "[len]{bits}", bit 0 first, one space between
// words. Vectors longer than eight words show the first and last four words
// with the bits in between elided.
func (v *BitVec) String() string {
	if v.len == 0 {
		return "[0]{}"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%v]{", v.len)

	words := v.inUse()
	if words <= maxStringedWords {
		for w := 0; w < words; w++ {
			if w != 0 {
				b.WriteString(" ")
			}
			v.writeWord(&b, w)
		}
	} else {
		half := maxStringedWords / 2
		for w := 0; w < half; w++ {
			if w != 0 {
				b.WriteString(" ")
			}
			v.writeWord(&b, w)
		}
		fmt.Fprintf(&b, " <more %v bits> ", (words-maxStringedWords)*wordSize)
		for w := words - half; w < words; w++ {
			if w != words-half {
				b.WriteString(" ")
			}
			v.writeWord(&b, w)
		}
	}

	b.WriteString("}")
	return b.String()
}

func (v *BitVec) writeWord(b *strings.Builder, w int) {
	end := min(v.len, (w+1)*wordSize)
	word := v.store[w]
	for i := w * wordSize; i < end; i++ {
		if word>>(i%wordSize)&1 != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}
