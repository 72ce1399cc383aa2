// Package search implements the A* joint-state solver (C7): the
// bucketed priority queue, the Zobrist-keyed transposition table, and
// the search loop itself.
//
// Grounded on original_source/inertia-core/src/solvers/{queue.rs,
// astar.rs}, with transposition-table sizing inspired by the
// teacher's memory-fraction sizing of its own transposition table
// (endgame/negamax/solver.go's TTableFractionOfMem) via
// github.com/pbnjay/memory.
package search

// bucketQueue is a non-monotonic bucketed priority queue: push can
// lower the current bucket pointer (a better path to an
// already-discovered priority can arrive after the search has moved
// past it), and emptied buckets behind the pointer are shrunk to
// return memory to the allocator.
//
// This only works for heuristics where no single move can lower the
// combined priority (g+h) by more than the queue can still reach —
// the heuristic boards in package heuristic satisfy this.
type bucketQueue[T any] struct {
	buckets        [][]T
	currentBucket  int
	capacityPerBucket int
}

func newBucketQueue[T any](capacity, capacityPerBucket int) *bucketQueue[T] {
	return &bucketQueue[T]{
		buckets:           make([][]T, 0, capacity),
		capacityPerBucket: capacityPerBucket,
	}
}

func (q *bucketQueue[T]) push(value T, priority int) {
	for len(q.buckets) <= priority {
		q.buckets = append(q.buckets, make([]T, 0, q.capacityPerBucket))
	}
	if priority < q.currentBucket {
		q.currentBucket = priority
	}
	q.buckets[priority] = append(q.buckets[priority], value)
}

func (q *bucketQueue[T]) pop() (T, bool) {
	for q.currentBucket < len(q.buckets) {
		bucket := q.buckets[q.currentBucket]
		if len(bucket) > 0 {
			value := bucket[len(bucket)-1]
			q.buckets[q.currentBucket] = bucket[:len(bucket)-1]
			return value, true
		}
		q.buckets[q.currentBucket] = nil
		q.currentBucket++
	}
	var zero T
	return zero, false
}
