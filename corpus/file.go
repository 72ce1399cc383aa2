package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"

	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// FileStore reads corpus shards from a directory: one file per entry,
// named "<difficulty>/<ordinal>.bin", each holding the 70-byte
// compressed position immediately followed by the compressed solution
// (length-prefixed, self-delimiting per solution.Decode). The SQLite
// corpus file format itself is an explicit spec.md Non-goal; this is
// the minimal concrete shape needed to exercise C12's read path
// end-to-end without it.
type FileStore struct {
	root    string
	counts  map[solution.Difficulty]int
	retries uint
}

// NewFileStore opens a corpus rooted at dir. counts overrides
// BucketCounts for a partially-built corpus (e.g. while the lambda
// builder is still filling shards); pass nil to use BucketCounts as-is.
func NewFileStore(dir string, counts map[solution.Difficulty]int) *FileStore {
	if counts == nil {
		counts = BucketCounts
	}
	return &FileStore{root: dir, counts: counts, retries: 3}
}

func (s *FileStore) shardPath(difficulty solution.Difficulty, ordinal int) string {
	return filepath.Join(s.root, difficulty.String(), fmt.Sprintf("%d.bin", ordinal))
}

// Get reads one shard, retrying transient failures (e.g. a networked
// filesystem hiccup) with github.com/avast/retry-go, matching the
// teacher's own use of retry-go around flaky AWS I/O.
func (s *FileStore) Get(difficulty solution.Difficulty, ordinal int) (Entry, error) {
	if err := ValidateCoordinate(difficulty, ordinal); err != nil {
		return Entry{}, err
	}
	if ordinal >= s.counts[difficulty] {
		return Entry{}, ErrOrdinalOutOfRange
	}

	var data []byte
	err := retry.Do(
		func() error {
			b, readErr := os.ReadFile(s.shardPath(difficulty, ordinal))
			if readErr != nil {
				return readErr
			}
			data = b
			return nil
		},
		retry.Attempts(s.retries),
		retry.Delay(10*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("corpus: file store: %w", err)
	}

	if len(data) < position.CompressedBytes {
		return Entry{}, fmt.Errorf("corpus: file store: shard too short (%d bytes)", len(data))
	}
	pos, err := position.DecodeSlice(data[:position.CompressedBytes])
	if err != nil {
		return Entry{}, fmt.Errorf("corpus: file store: %w", err)
	}
	sol, err := solution.Decode(data[position.CompressedBytes:])
	if err != nil {
		return Entry{}, fmt.Errorf("corpus: file store: %w", err)
	}
	return Entry{Position: pos, Solution: sol}, nil
}

func (s *FileStore) Count(difficulty solution.Difficulty) int {
	return s.counts[difficulty]
}

// Put writes one shard, used by cmd/corpus-builder-lambda's batch
// writer and by tests seeding a temp corpus directory.
func (s *FileStore) Put(difficulty solution.Difficulty, ordinal int, e Entry) error {
	dir := filepath.Join(s.root, difficulty.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("corpus: file store: %w", err)
	}
	encoded := e.Position.Encode()
	data := append(encoded[:], e.Solution.Encode()...)
	if err := os.WriteFile(s.shardPath(difficulty, ordinal), data, 0o644); err != nil {
		return fmt.Errorf("corpus: file store: %w", err)
	}
	return nil
}
