package search

import (
	"github.com/pbnjay/memory"

	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/heuristic"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
	"github.com/bluebear94/inertia/zobrist"
)

// defaultQueueCapacity and defaultBucketCapacity seed the bucketed
// priority queue, matching queue.rs's with_capacities(256, 1024) call
// from astar.rs's solve_position.
const (
	defaultQueueCapacity  = 256
	defaultBucketCapacity = 1024
)

// visitedFractionOfMem bounds the transposition table's initial
// bucket count the way the teacher's own transposition table sizes
// itself off total system memory (endgame/negamax/solver.go's
// TTableFractionOfMem), rather than off a fixed guess.
const visitedFractionOfMem = 1 << 16

func initialVisitedCapacity() int {
	capacity := int(memory.TotalMemory() / visitedFractionOfMem)
	if capacity < 1024 {
		return 1024
	}
	if capacity > 1<<20 {
		return 1 << 20
	}
	return capacity
}

type visitedData struct {
	parent position.ActorSquares
	depth  int
}

type queueData struct {
	actors position.ActorSquares
	depth  int
}

// Solve runs a joint-state A* search for a sequence of single-actor
// moves that brings any actor onto goal, never exploring beyond
// maxDepth moves. It reports false if no such solution exists within
// that bound.
//
// Grounded on original_source/inertia-core/src/solvers/astar.rs's
// solve/solve_position: GroupMinMovesExpensiveCrawlsBoard is the
// admissible heuristic, the goal test happens when a state is popped
// (not when it is pushed), and the transposition table is keyed by a
// Zobrist hash that is already invariant to which actor occupies which
// slot.
func Solve(mb *moveboard.MoveBoard, goal geometry.Square, actors position.ActorSquares, maxDepth int) (solution.Solution, bool) {
	if actors.Contains(goal) {
		return solution.Solution{}, true
	}

	h := heuristic.NewGroupMinMovesExpensiveCrawlsBoard(mb, goal)
	zt := zobrist.NewTable()

	visited := make(map[uint64]visitedData, initialVisitedCapacity())
	queue := newBucketQueue[queueData](defaultQueueCapacity, defaultBucketCapacity)

	startHash := zt.Hash(actors)
	visited[startHash] = visitedData{parent: actors, depth: 0}
	queue.push(queueData{actors: actors, depth: 0}, int(h.GetHeuristic(actors)))

	for {
		cur, ok := queue.pop()
		if !ok {
			return nil, false
		}

		if cur.actors.Contains(goal) {
			return reconstructSolution(zt, visited, cur.actors), true
		}
		if cur.depth >= maxDepth {
			continue
		}

		curHash := zt.Hash(cur.actors)
		moves := mb.GetAllActorMoveDestinations([4]geometry.Square(cur.actors))
		nextDepth := cur.depth + 1
		for actorIdx := 0; actorIdx < 4; actorIdx++ {
			for _, d := range geometry.Directions {
				dest := moves[actorIdx][d].Destination
				if dest == cur.actors[actorIdx] {
					continue
				}
				next := cur.actors
				next[actorIdx] = dest
				nextHash := zt.Roll(curHash, cur.actors[actorIdx], dest)

				if existing, seen := visited[nextHash]; seen && existing.depth <= nextDepth {
					continue
				}
				visited[nextHash] = visitedData{parent: cur.actors, depth: nextDepth}
				priority := nextDepth + int(h.GetHeuristic(next))
				queue.push(queueData{actors: next, depth: nextDepth}, priority)
			}
		}
	}
}

// reconstructSolution walks the visited map's parent pointers back to
// the (depth-0) start state, inferring each step's actor and direction
// from which single square changed between consecutive states.
func reconstructSolution(zt *zobrist.Table, visited map[uint64]visitedData, goalActors position.ActorSquares) solution.Solution {
	var steps solution.Solution
	cur := goalActors
	for {
		entry := visited[zt.Hash(cur)]
		if entry.depth == 0 {
			break
		}
		parent := entry.parent
		actorIdx, direction := diffMove(parent, cur)
		steps = append(steps, solution.Step{Actor: uint8(actorIdx), Direction: direction})
		cur = parent
	}
	// steps were built goal-to-start; reverse into start-to-goal order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// diffMove finds the single actor whose square changed between parent
// and cur, and the direction that change represents, using the same
// square-delta ranges as astar.rs's reconstruct_solution: a move
// always lands somewhere on the mover's row or column, so the raw
// index delta alone determines the direction.
func diffMove(parent, cur position.ActorSquares) (actorIdx int, d geometry.Direction) {
	for i := 0; i < 4; i++ {
		if parent[i] == cur[i] {
			continue
		}
		delta := int(cur[i]) - int(parent[i])
		switch {
		case delta <= -16:
			d = geometry.Up
		case delta <= -1:
			d = geometry.Left
		case delta >= 16:
			d = geometry.Down
		default:
			d = geometry.Right
		}
		return i, d
	}
	return 0, geometry.Up
}
