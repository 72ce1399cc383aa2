// Package corpus implements the read-only pre-solved position store
// (C12): a bucketed table of (position, solution) pairs addressed by
// difficulty and ordinal, plus uniformly-random and deterministically-
// seeded ("daily puzzle") readers over it.
//
// Grounded on original_source/inertia-async-server/src/{db_utils.rs,
// difficulty_board_generator.rs} for the bucket counts and coordinate
// sampling; the on-disk SQLite file format itself is an explicit
// spec.md Non-goal, so Store here is a narrow read interface any
// concrete backing (SQLite, flat files, memory) can satisfy.
package corpus

import (
	"errors"
	"fmt"

	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// BucketCounts are the number of positions filed under each difficulty
// bucket, per spec.md §4.8.
var BucketCounts = map[solution.Difficulty]int{
	solution.Easiest: 1000,
	solution.Easy:     1000,
	solution.Medium:   1500,
	solution.Hard:      1500,
	solution.Hardest:   1000,
}

// ErrOrdinalOutOfRange means a requested ordinal is outside
// [0, BucketCounts[difficulty]).
var ErrOrdinalOutOfRange = errors.New("corpus: ordinal out of range for difficulty bucket")

// ErrNotFound means the store holds no entry at that coordinate, even
// though the ordinal was in range (a sparse or partially-built store).
var ErrNotFound = errors.New("corpus: no entry at this coordinate")

// Entry is one stored (position, solution) pair.
type Entry struct {
	Position position.Position
	Solution solution.Solution
}

// Store is a read-only lookup over the bucketed corpus table described
// in spec.md §6: columns (position blob, solution blob, difficulty,
// difficulty_ordinal).
type Store interface {
	// Get returns the entry at (difficulty, ordinal).
	Get(difficulty solution.Difficulty, ordinal int) (Entry, error)
	// Count reports how many entries this store holds for difficulty,
	// which may be less than BucketCounts[difficulty] for a partially
	// built corpus.
	Count(difficulty solution.Difficulty) int
}

// ValidateCoordinate checks ordinal against BucketCounts before a
// Store implementation attempts the actual read.
func ValidateCoordinate(difficulty solution.Difficulty, ordinal int) error {
	max, ok := BucketCounts[difficulty]
	if !ok {
		return fmt.Errorf("corpus: unknown difficulty bucket %v", difficulty)
	}
	if ordinal < 0 || ordinal >= max {
		return ErrOrdinalOutOfRange
	}
	return nil
}
