package heuristic

import (
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
)

// GroupMinMovesBoard gives, for each square, the minimum number of
// moves for any single actor starting there to reach the goal, moving
// normally (no perfect-assist assumption). Admissible: no single move
// can decrease this value by more than one, so an arrangement giving
// value M is unreachable without first passing through M+1.
type GroupMinMovesBoard struct {
	squares [geometry.NumSquares]Value
}

// Get returns the precomputed value for a single square.
func (b *GroupMinMovesBoard) Get(s geometry.Square) Value {
	return b.squares[s]
}

// NewGroupMinMovesBoard builds the board by layered wave expansion
// from the goal: a frontier square expanded in direction d either
// contributes one adjacent crawl-neighbor to the next layer (if
// sliding in d moves at all), or — if d is already blocked by a wall —
// the whole opposite-direction unimpeded ray, since any square on that
// ray reaches the frontier in a single stopping move. Both cases are
// assigned the next layer's value, since either way exactly one move
// is spent reaching the frontier square.
func NewGroupMinMovesBoard(mb *moveboard.MoveBoard, goal geometry.Square) *GroupMinMovesBoard {
	b := &GroupMinMovesBoard{}
	for i := range b.squares {
		b.squares[i] = maxValue
	}

	currentValue := Value(0)
	currentSet := []geometry.Square{goal}
	for len(currentSet) > 0 {
		var nextSet []geometry.Square
		for _, s := range currentSet {
			if b.squares[s] <= currentValue {
				continue
			}
			b.squares[s] = currentValue
			for _, d := range geometry.Directions {
				if mb.GetUnimpededDestination(s, d) == s {
					nextSet = append(nextSet, mb.GetUnimpededMovementRaySquares(s, d.Opposite())...)
				} else if adj, ok := s.Adjacent(d); ok {
					nextSet = append(nextSet, adj)
				}
			}
		}
		currentValue++
		currentSet = nextSet
	}
	return b
}

// GetHeuristic implements Heuristic.
func (b *GroupMinMovesBoard) GetHeuristic(actors position.ActorSquares) Value {
	squares := squaresOf(actors)
	return getMin([4]Value{b.squares[squares[0]], b.squares[squares[1]], b.squares[squares[2]], b.squares[squares[3]]})
}

// GetHeuristicForTargetActor implements Heuristic.
func (b *GroupMinMovesBoard) GetHeuristicForTargetActor(actors position.ActorSquares, actorIndex int) Value {
	return b.GetHeuristic(actors)
}
