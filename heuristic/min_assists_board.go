package heuristic

import (
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
)

// MinAssistsBoard gives, for each square, the minimum number of other
// actors that must assist (stop in its path so it isn't carried past
// a useful square) for an isolated actor there to reach the goal.
// Admissible because an assist can't happen without a move, so this
// lower-bounds the move count too.
type MinAssistsBoard struct {
	squares [geometry.NumSquares]Value
}

// Get returns the precomputed value for a single square.
func (b *MinAssistsBoard) Get(s geometry.Square) Value {
	return b.squares[s]
}

type assistQueueItem struct {
	square geometry.Square
	value  Value
}

// NewMinAssistsBoard builds the board by BFS from the goal: sliding
// into the frontier along its wall-stopped direction costs no
// additional assist (the whole opposite ray reaches it unassisted in
// one move); sliding past the frontier in any other direction needs
// exactly one assist to stop there, so the whole ray in that
// direction is charged one extra assist.
func NewMinAssistsBoard(mb *moveboard.MoveBoard, goal geometry.Square) *MinAssistsBoard {
	b := &MinAssistsBoard{}
	for i := range b.squares {
		b.squares[i] = maxValue
	}

	queue := []assistQueueItem{{goal, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if b.squares[cur.square] <= cur.value {
			continue
		}
		b.squares[cur.square] = cur.value
		for _, d := range geometry.Directions {
			if mb.GetUnimpededDestination(cur.square, d) == cur.square {
				for _, s := range mb.GetUnimpededMovementRaySquares(cur.square, d.Opposite()) {
					queue = append(queue, assistQueueItem{s, cur.value})
				}
			} else {
				for _, s := range mb.GetUnimpededMovementRaySquares(cur.square, d) {
					queue = append(queue, assistQueueItem{s, cur.value + 1})
				}
			}
		}
	}
	return b
}

// GetHeuristic implements Heuristic.
func (b *MinAssistsBoard) GetHeuristic(actors position.ActorSquares) Value {
	squares := squaresOf(actors)
	return getMin([4]Value{b.squares[squares[0]], b.squares[squares[1]], b.squares[squares[2]], b.squares[squares[3]]})
}

// GetHeuristicForTargetActor implements Heuristic.
func (b *MinAssistsBoard) GetHeuristicForTargetActor(actors position.ActorSquares, actorIndex int) Value {
	return b.squares[actors[actorIndex]]
}
