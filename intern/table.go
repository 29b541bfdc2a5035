package intern

import (
	"github.com/astef/bitvec"
	"github.com/astef/bitvec/arena"
)

// Table assigns a dense id, starting at 0, to each distinct set it sees.
type Table struct {
	arena   *arena.Arena
	buckets map[uint64][]int
	sets    []*bitvec.BitVec
}

// NewTable returns an empty table whose stored clones are leased from a.
func NewTable(a *arena.Arena) *Table {
	return &Table{
		arena:   a,
		buckets: make(map[uint64][]int),
	}
}

// Intern returns the id of v, adding a copy of v if no equal set is present.
// fresh reports whether the set was added by this call.
func (t *Table) Intern(v *bitvec.BitVec) (id int, fresh bool) {
	h := v.Hash()
	if id, ok := t.find(h, v); ok {
		return id, false
	}
	id = len(t.sets)
	t.sets = append(t.sets, t.copyOf(v))
	t.buckets[h] = append(t.buckets[h], id)
	return id, true
}

// Lookup returns the id of the set equal to v, if any.
func (t *Table) Lookup(v *bitvec.BitVec) (int, bool) {
	return t.find(v.Hash(), v)
}

// At returns the set with the given id. The result must not be mutated.
func (t *Table) At(id int) *bitvec.BitVec {
	return t.sets[id]
}

// Len returns the number of distinct sets.
func (t *Table) Len() int {
	return len(t.sets)
}

// Release returns every stored set to the arena and empties the table.
func (t *Table) Release() {
	for _, s := range t.sets {
		s.Release()
	}
	t.sets = nil
	clear(t.buckets)
}

func (t *Table) find(h uint64, v *bitvec.BitVec) (int, bool) {
	for _, id := range t.buckets[h] {
		if t.sets[id].Equal(v) {
			return id, true
		}
	}
	return 0, false
}

func (t *Table) copyOf(v *bitvec.BitVec) *bitvec.BitVec {
	c := bitvec.New(t.arena)
	c.InsertAll(v)
	return c
}
