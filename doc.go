/*
Growable dense bit vector whose words are leased from a word arena, built for
unioning many small, short-lived sets (lookahead sets, item-set closures).

	a := arena.New()
	v := bitvec.New(a)	// [0]{}
	v.Resize(5, false)	// [5]{00000}
	v.Set(2, true)		// [5]{00100}
	v.Pop()				// [4]{0010}
	w := bitvec.New(a)
	w.Resize(3, true)	// [3]{111}
	v.InsertAll(w)		// [4]{1110}, true
	v.InsertAll(w)		// [4]{1110}, false
	v.Release()
	w.Release()

Bits at or past Len are always zero, so equality, ordering and hashing do not
depend on how many words each vector happens to hold.
*/
package bitvec
