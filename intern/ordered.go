package intern

import (
	"github.com/astef/bitvec"
	"github.com/astef/bitvec/arena"
	"github.com/google/btree"
)

const btreeDegree = 16

// OrderedSet holds distinct sets in bitvec.Compare order.
type OrderedSet struct {
	arena *arena.Arena
	tree  *btree.BTreeG[*bitvec.BitVec]
}

// NewOrderedSet returns an empty set whose stored clones are leased from a.
func NewOrderedSet(a *arena.Arena) *OrderedSet {
	return &OrderedSet{
		arena: a,
		tree: btree.NewG[*bitvec.BitVec](btreeDegree, func(x, y *bitvec.BitVec) bool {
			return x.Compare(y) < 0
		}),
	}
}

// Insert adds a copy of v and reports whether no equal set was present.
func (s *OrderedSet) Insert(v *bitvec.BitVec) bool {
	if s.tree.Has(v) {
		return false
	}
	c := bitvec.New(s.arena)
	c.InsertAll(v)
	s.tree.ReplaceOrInsert(c)
	return true
}

// Has reports whether a set equal to v is present.
func (s *OrderedSet) Has(v *bitvec.BitVec) bool {
	return s.tree.Has(v)
}

// Delete removes the set equal to v and reports whether it was present.
func (s *OrderedSet) Delete(v *bitvec.BitVec) bool {
	old, ok := s.tree.Delete(v)
	if ok {
		old.Release()
	}
	return ok
}

// Len returns the number of sets.
func (s *OrderedSet) Len() int {
	return s.tree.Len()
}

// Min returns the smallest set. ok is false if the set is empty.
func (s *OrderedSet) Min() (*bitvec.BitVec, bool) {
	return s.tree.Min()
}

// Ascend calls fn for each set in ascending order until fn returns false.
// The sets passed to fn must not be mutated.
func (s *OrderedSet) Ascend(fn func(*bitvec.BitVec) bool) {
	s.tree.Ascend(fn)
}
