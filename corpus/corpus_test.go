package corpus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

func samplePosition(goal geometry.Square) position.Position {
	return position.Position{
		Actors: position.ActorSquares{1, 2, 3, 4},
		Goal:   goal,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ordinal := s.Put(solution.Easy, Entry{Position: samplePosition(5), Solution: solution.Solution{{Actor: 0, Direction: geometry.Left}}})
	assert.Equal(t, 0, ordinal)
	assert.Equal(t, 1, s.Count(solution.Easy))
	assert.Equal(t, 0, s.Count(solution.Hard))

	e, err := s.Get(solution.Easy, 0)
	require.NoError(t, err)
	assert.Equal(t, geometry.Square(5), e.Position.Goal)

	_, err = s.Get(solution.Easy, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(solution.Hardest, -1)
	assert.ErrorIs(t, err, ErrOrdinalOutOfRange)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, map[solution.Difficulty]int{solution.Medium: 1})
	entry := Entry{Position: samplePosition(9), Solution: solution.Solution{{Actor: 1, Direction: geometry.Up}, {Actor: 2, Direction: geometry.Right}}}
	require.NoError(t, fs.Put(solution.Medium, 0, entry))

	got, err := fs.Get(solution.Medium, 0)
	require.NoError(t, err)
	assert.Equal(t, entry.Position.Goal, got.Position.Goal)
	assert.Equal(t, entry.Solution, got.Solution)

	_, err = fs.Get(solution.Medium, 5)
	assert.ErrorIs(t, err, ErrOrdinalOutOfRange)
}

func TestRandomReaderOnlyDrawsPopulatedBuckets(t *testing.T) {
	s := NewMemoryStore()
	s.Put(solution.Hard, Entry{Position: samplePosition(1)})

	r := NewBoundedRandomReader(s, solution.Hard, solution.Hard)
	e, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, geometry.Square(1), e.Position.Goal)
}

func TestRandomReaderReportsNotFoundWhenEmpty(t *testing.T) {
	s := NewMemoryStore()
	r := NewRandomReader(s)
	_, err := r.Next()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDailyReaderIsDeterministic(t *testing.T) {
	s := NewMemoryStore()
	for _, d := range allDifficulties {
		for i := 0; i < 10; i++ {
			s.Put(d, Entry{Position: samplePosition(geometry.Square(i))})
		}
	}

	r := NewDailyReader(s)
	day := time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC)

	e1, err := r.For(day)
	require.NoError(t, err)
	e2, err := r.For(day)
	require.NoError(t, err)
	assert.Equal(t, e1, e2, "the same calendar day must always yield the same entry")

	other, err := r.For(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	_ = other // different day is not guaranteed to differ, but must not error
}

func TestGeneratorWrapsReader(t *testing.T) {
	s := NewMemoryStore()
	s.Put(solution.Easy, Entry{Position: samplePosition(3), Solution: solution.Solution{{Actor: 0, Direction: geometry.Down}}})

	g := NewGenerator(NewBoundedRandomReader(s, solution.Easy, solution.Easy))
	pos, sol := g.GeneratePosition()
	require.NotNil(t, sol)
	assert.Equal(t, geometry.Square(3), pos.Goal)
	assert.Len(t, *sol, 1)
}

func TestVerifyDailyReplaysIndependently(t *testing.T) {
	s := NewMemoryStore()
	pos := position.Position{Actors: position.ActorSquares{16, 17, 18, 19}, Goal: 0}
	sol := solution.Solution{{Actor: 0, Direction: geometry.Up}}
	// Populate every bucket with the same entry so the test is
	// independent of which bucket the deterministic seed happens to
	// land on.
	for _, d := range allDifficulties {
		s.Put(d, Entry{Position: pos, Solution: sol})
	}

	r := NewDailyReader(s)
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := VerifyDaily(r, day, sol)
	require.NoError(t, err)
	assert.Equal(t, position.Solved, result)
}
