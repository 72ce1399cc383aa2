// Package heuristic implements the admissible heuristic boards (C6)
// the solver uses to lower-bound the remaining distance to the goal
// from any actor arrangement, each built once per wall layout by a
// wave relaxation outward from the goal.
//
// Grounded on original_source/inertia-core/src/solvers/{heuristic.rs,
// min_moves_board.rs,group_min_moves_board.rs,min_assists_board.rs,
// min_crawls_board.rs,group_min_moves_expensive_crawls_board.rs,
// combined_heuristic.rs}.
package heuristic

import (
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/position"
)

// Value is the heuristic unit: an admissible lower bound on moves
// remaining. u8 range is ample — no board needs more than ~20 moves.
type Value = uint8

const maxValue Value = 255

// Heuristic estimates the distance from an actor arrangement to the
// goal.
type Heuristic interface {
	GetHeuristic(actors position.ActorSquares) Value
	// GetHeuristicForTargetActor is a refinement hook: it must always
	// return a value >= GetHeuristic (it exists purely so a caller who
	// already knows which actor it cares about can skip scanning all
	// four). The default behavior of falling back to GetHeuristic is
	// always correct, just unoptimized.
	GetHeuristicForTargetActor(actors position.ActorSquares, actorIndex int) Value
}

func getMin(vals [4]Value) Value {
	min := maxValue
	for _, v := range vals {
		if v < min {
			min = v
		}
	}
	return min
}

func getMax(vals []Value) Value {
	max := Value(0)
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}

// getMinTwo returns the two smallest values among vals, ascending.
func getMinTwo(vals [4]Value) [2]Value {
	minTwo := [2]Value{maxValue, maxValue}
	for _, v := range vals {
		if v < minTwo[1] {
			if v < minTwo[0] {
				minTwo = [2]Value{v, minTwo[0]}
			} else {
				minTwo = [2]Value{minTwo[0], v}
			}
		}
	}
	return minTwo
}

func satAdd(a, b Value) Value {
	sum := uint16(a) + uint16(b)
	if sum > uint16(maxValue) {
		return maxValue
	}
	return Value(sum)
}

func satSub(a, b Value) Value {
	if b >= a {
		return 0
	}
	return a - b
}

func squaresOf(actors position.ActorSquares) [4]geometry.Square {
	return [4]geometry.Square(actors)
}
