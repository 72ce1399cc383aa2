package heuristic

import (
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
)

// MinMovesBoard gives, for each square, the number of moves it would
// take an actor there to reach the goal if it could stop anywhere —
// i.e. with unlimited perfectly-placed assisting actors. Admissible
// because no single move can decrease it by more than one.
type MinMovesBoard struct {
	squares [geometry.NumSquares]Value
}

// Get returns the precomputed value for a single square.
func (b *MinMovesBoard) Get(s geometry.Square) Value {
	return b.squares[s]
}

// NewMinMovesBoard builds the board via a wave relaxation from the
// goal outward, along unimpeded-movement rays in every direction.
func NewMinMovesBoard(mb *moveboard.MoveBoard, goal geometry.Square) *MinMovesBoard {
	b := &MinMovesBoard{}
	for i := range b.squares {
		b.squares[i] = maxValue
	}

	type item struct {
		square geometry.Square
		value  Value
	}
	queue := []item{{goal, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if b.squares[cur.square] <= cur.value {
			continue
		}
		b.squares[cur.square] = cur.value
		for _, d := range geometry.Directions {
			for _, s := range mb.GetUnimpededMovementRaySquares(cur.square, d) {
				queue = append(queue, item{s, cur.value + 1})
			}
		}
	}
	return b
}

// GetHeuristic implements Heuristic.
func (b *MinMovesBoard) GetHeuristic(actors position.ActorSquares) Value {
	squares := squaresOf(actors)
	return getMin([4]Value{b.squares[squares[0]], b.squares[squares[1]], b.squares[squares[2]], b.squares[squares[3]]})
}

// GetHeuristicForTargetActor implements Heuristic.
func (b *MinMovesBoard) GetHeuristicForTargetActor(actors position.ActorSquares, actorIndex int) Value {
	return b.squares[actors[actorIndex]]
}
