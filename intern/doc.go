// Package intern keys bit vectors the way set-construction algorithms need
// them: Table hands out a dense id per distinct set, OrderedSet keeps distinct
// sets sorted by bitvec.Compare.
//
// Both store clones of inserted vectors, so callers may keep mutating or
// release their own copies. Neither type is safe for concurrent use.
package intern
