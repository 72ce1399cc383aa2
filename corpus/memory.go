package corpus

import "github.com/bluebear94/inertia/solution"

// MemoryStore is an in-memory Store backing, useful for tests and for
// corpus-builder-lambda's staging buffer before a batch is flushed to
// durable storage.
type MemoryStore struct {
	buckets map[solution.Difficulty][]Entry
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[solution.Difficulty][]Entry)}
}

// Put appends an entry to difficulty's bucket, returning its ordinal.
func (s *MemoryStore) Put(difficulty solution.Difficulty, e Entry) int {
	s.buckets[difficulty] = append(s.buckets[difficulty], e)
	return len(s.buckets[difficulty]) - 1
}

func (s *MemoryStore) Get(difficulty solution.Difficulty, ordinal int) (Entry, error) {
	if err := ValidateCoordinate(difficulty, ordinal); err != nil {
		return Entry{}, err
	}
	bucket := s.buckets[difficulty]
	if ordinal >= len(bucket) {
		return Entry{}, ErrNotFound
	}
	return bucket[ordinal], nil
}

func (s *MemoryStore) Count(difficulty solution.Difficulty) int {
	return len(s.buckets[difficulty])
}
