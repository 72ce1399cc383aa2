package corpus

import (
	"time"

	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// Generator adapts a RandomReader into the room package's
// PositionGenerator interface (satisfied structurally, no import of
// room needed), so a room can be backed by the pre-solved corpus
// instead of a from-scratch synthesizer. Grounded on
// difficulty_board_generator.rs's DifficultyDbBoardGenerator, with the
// SQLite pool replaced by a Store per spec.md's explicit
// out-of-scope-ness for the on-disk format.
type Generator struct {
	reader *RandomReader
}

// NewGenerator wraps reader as a PositionGenerator. Each call draws
// independently (frand's global CSPRNG has no shared mutable sequence
// state to race on), satisfying the "clones must produce independent
// sequences if randomized" rule.
func NewGenerator(reader *RandomReader) *Generator {
	return &Generator{reader: reader}
}

// GeneratePosition returns a corpus-backed position along with its
// already-known optimal solution, per spec.md §4.5's "for solved-
// position generators... the optimal Solution is stored alongside"
// rule.
func (g *Generator) GeneratePosition() (position.Position, *solution.Solution) {
	entry, err := g.reader.Next()
	if err != nil {
		// The corpus is unavailable or exhausted; there is no sensible
		// fallback board to synthesize from within this package (that
		// is generator.ClassicBoardGenerator's job), so the caller gets
		// the empty position. Callers that need a guaranteed-non-empty
		// generator should pair this with a fallback at the session
		// layer, matching difficulty_board_generator.rs's own
		// WalledBoardPosition::default() behavior on a failed fetch.
		return position.Position{}, nil
	}
	sol := entry.Solution
	return entry.Position, &sol
}

// DailyGenerator is the deterministic counterpart used by the daily-
// puzzle surface (out of scope's HTTP /daily endpoint consumes this at
// its interface only).
type DailyGenerator struct {
	reader *DailyReader
	day    time.Time
}

// NewDailyGenerator returns a generator that always produces today's
// (or, if day is non-zero, that day's) deterministic puzzle.
func NewDailyGenerator(reader *DailyReader, day time.Time) *DailyGenerator {
	return &DailyGenerator{reader: reader, day: day}
}

func (g *DailyGenerator) GeneratePosition() (position.Position, *solution.Solution) {
	day := g.day
	if day.IsZero() {
		day = time.Now()
	}
	entry, err := g.reader.For(day)
	if err != nil {
		return position.Position{}, nil
	}
	sol := entry.Solution
	return entry.Position, &sol
}

// VerifyDaily independently checks a submitted solution against the
// deterministic daily puzzle for day, without trusting whatever the
// client claims the board was — it re-derives the position from the
// reader and replays the solution itself, matching spec.md §4.8's "the
// solver can independently verify submitted daily solutions by
// decoding and replaying" requirement.
func VerifyDaily(reader *DailyReader, day time.Time, submitted solution.Solution) (position.CheckResult, error) {
	entry, err := reader.For(day)
	if err != nil {
		return position.NotSolved, err
	}
	return entry.Position.CheckSolution(submitted), nil
}
