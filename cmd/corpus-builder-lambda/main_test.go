package main

import (
	"testing"

	"github.com/bluebear94/inertia/corpus"
	"github.com/bluebear94/inertia/solution"
)

func TestRemainingCountsDownToZero(t *testing.T) {
	written := map[solution.Difficulty]int{solution.Easiest: corpus.BucketCounts[solution.Easiest] - 1}
	if got := remaining(written, solution.Easiest); got != 1 {
		t.Fatalf("remaining = %d, want 1", got)
	}
}

func TestAllBucketsFullRequiresEveryDifficulty(t *testing.T) {
	written := map[solution.Difficulty]int{}
	for d, count := range corpus.BucketCounts {
		written[d] = count
	}
	if !allBucketsFull(written) {
		t.Fatal("expected all buckets full once every difficulty meets its count")
	}

	written[solution.Hardest]--
	if allBucketsFull(written) {
		t.Fatal("expected not full once one bucket falls short")
	}
}
