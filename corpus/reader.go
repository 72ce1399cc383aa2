package corpus

import (
	"math/rand"
	"time"

	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/bluebear94/inertia/solution"
)

// difficultyRange is the ordered, inclusive [min,max] span of
// difficulty buckets a reader may draw from — spec.md §6's Join
// message carries optional MinDifficulty/MaxDifficulty bounds that
// narrow this.
type difficultyRange struct {
	min, max solution.Difficulty
}

var allDifficulties = []solution.Difficulty{
	solution.Easiest, solution.Easy, solution.Medium, solution.Hard, solution.Hardest,
}

func (r difficultyRange) buckets() []solution.Difficulty {
	return lo.Filter(allDifficulties, func(d solution.Difficulty, _ int) bool {
		return d >= r.min && d <= r.max
	})
}

// fullRange spans every difficulty bucket.
var fullRange = difficultyRange{min: solution.Easiest, max: solution.Hardest}

// RandomReader draws a uniformly-random (difficulty, ordinal)
// coordinate from a Store on every call, grounded on
// db_utils.rs's get_random_db_position_coordinates.
type RandomReader struct {
	store Store
	span  difficultyRange
}

// NewRandomReader returns a reader over every bucket in store.
func NewRandomReader(store Store) *RandomReader {
	return &RandomReader{store: store, span: fullRange}
}

// NewBoundedRandomReader restricts draws to [min,max], matching a
// Join request's MinDifficulty/MaxDifficulty.
func NewBoundedRandomReader(store Store, min, max solution.Difficulty) *RandomReader {
	return &RandomReader{store: store, span: difficultyRange{min: min, max: max}}
}

// Next draws and fetches one entry, choosing only among the allowed
// buckets that hold at least one entry (a partially-built corpus may
// leave some empty). It returns ErrNotFound if none does.
func (r *RandomReader) Next() (Entry, error) {
	buckets := lo.Filter(r.span.buckets(), func(d solution.Difficulty, _ int) bool {
		return r.store.Count(d) > 0
	})
	if len(buckets) == 0 {
		return Entry{}, ErrNotFound
	}
	// Uniform pick of a bucket, then of an ordinal within it, matching
	// rand::thread_rng().gen::<Difficulty>() followed by gen_range.
	d := buckets[frand.Intn(len(buckets))]
	ordinal := frand.Intn(r.store.Count(d))
	return r.store.Get(d, ordinal)
}

// DailyReader deterministically reproduces the same (difficulty,
// ordinal) coordinate for every caller on the same calendar day,
// grounded on db_utils.rs's get_reproducible_random_db_position_
// coordinates(seed: usize). The fixed timezone is UTC: spec.md §4.8
// specifies "a fixed timezone" without naming one, and original_source
// seeds straight off a usize with no timezone concept at all (the
// caller is expected to derive it); UTC is the only zone-independent
// choice, recorded as an Open Question resolution in DESIGN.md.
type DailyReader struct {
	store Store
}

// NewDailyReader wraps store for deterministic daily-puzzle reads.
func NewDailyReader(store Store) *DailyReader {
	return &DailyReader{store: store}
}

// dailySeed folds a calendar date (YYYYMMDD, UTC) into a uint64 seed.
func dailySeed(day time.Time) uint64 {
	y, m, d := day.UTC().Date()
	return uint64(y)*10000 + uint64(m)*100 + uint64(d)
}

// For reports the deterministic entry for the given calendar day.
func (r *DailyReader) For(day time.Time) (Entry, error) {
	rng := rand.New(rand.NewSource(int64(dailySeed(day))))
	d := allDifficulties[rng.Intn(len(allDifficulties))]
	count := r.store.Count(d)
	if count == 0 {
		return Entry{}, ErrNotFound
	}
	ordinal := rng.Intn(count)
	return r.store.Get(d, ordinal)
}

// Today is a convenience for For(time.Now()).
func (r *DailyReader) Today() (Entry, error) {
	return r.For(time.Now())
}
