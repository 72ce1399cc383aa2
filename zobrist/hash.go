// Package zobrist implements the transposition-table hash (part of
// C7): a single 256-entry table of random 64-bit words, one per
// square, seeded once at process start.
//
// Grounded on original_source/inertia-core/src/solvers/astar.rs's
// zobrist_hash/roll_zobrist_hash, which hash an ActorSquares by
// XOR-ing one table entry per occupied square. XOR's commutativity
// already makes this invariant to which actor occupies which slot, so
// a single flat table (rather than the teacher's per-feature-slot
// zobrist/hash.go tables, which solve a different problem — distinct
// rack/position/turn planes for a different game) satisfies spec.md's
// "hash the sorted actor bytes" transposition-key rule for free, with
// no separate sort step needed.
package zobrist

import (
	"github.com/bluebear94/inertia/geometry"
	"lukechampine.com/frand"
)

// bignum matches the teacher's zobrist/hash.go seeding bound. NewTable
// adds one to each frand.Uint64n(bignum) draw, so every word lies in
// [1, bignum] and the hash-neutral all-zero word never occurs.
const bignum = 1<<63 - 2

// Table is a square-indexed random word table.
type Table struct {
	words [geometry.NumSquares]uint64
}

// NewTable builds a table seeded from a cryptographically random
// source, following the teacher's zobrist/hash.go seeding style
// (lukechampine.com/frand rather than math/rand).
func NewTable() *Table {
	t := &Table{}
	for i := range t.words {
		t.words[i] = frand.Uint64n(bignum) + 1
	}
	return t
}

// Hash computes the hash of a set of occupied squares (an
// ActorSquares' raw or sorted bytes — the result is identical either
// way, which is the point: it's already a valid transposition key).
func (t *Table) Hash(squares [4]geometry.Square) uint64 {
	var h uint64
	for _, s := range squares {
		h ^= t.words[s]
	}
	return h
}

// Roll incrementally updates a hash for a single actor moving from
// one square to another, without recomputing from scratch.
func (t *Table) Roll(h uint64, from, to geometry.Square) uint64 {
	return h ^ t.words[from] ^ t.words[to]
}
