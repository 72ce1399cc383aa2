package heuristic

import (
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
)

// CombinedHeuristic sharpens GroupMinMovesBoard with the
// admissibility-strengthening refinement: when the two closest actors
// both need at least one assist, at least one of them must first
// descend to the lowest MinMovesBoard value L at which every square
// still requires an assist, which forces extra moves no single-board
// heuristic can see.
type CombinedHeuristic struct {
	minAssistsBoard        *MinAssistsBoard
	minMovesBoard          *MinMovesBoard
	groupMinMovesBoard     *GroupMinMovesBoard
	minMovesMinRequiredAssist Value
}

// getMinMovesMinRequiredAssist finds the smallest MinMovesBoard value
// L such that every square with that value requires at least one
// assist (MinAssistsBoard > 0) to reach the goal.
func getMinMovesMinRequiredAssist(minAssists *MinAssistsBoard, minMoves *MinMovesBoard) Value {
	var allRequireAssist [256]bool
	for i := range allRequireAssist {
		allRequireAssist[i] = true
	}
	for idx := 0; idx < geometry.NumSquares; idx++ {
		val := minMoves.Get(geometry.Square(idx))
		if minAssists.Get(geometry.Square(idx)) == 0 {
			allRequireAssist[val] = false
		}
	}
	for idx := 0; idx < 256; idx++ {
		if allRequireAssist[idx] {
			return Value(idx)
		}
	}
	return maxValue
}

// NewCombinedHeuristic builds all three underlying boards and derives
// the required-assist threshold used by GetHeuristic's refinement.
func NewCombinedHeuristic(mb *moveboard.MoveBoard, goal geometry.Square) *CombinedHeuristic {
	minAssists := NewMinAssistsBoard(mb, goal)
	minMoves := NewMinMovesBoard(mb, goal)
	groupMinMoves := NewGroupMinMovesBoard(mb, goal)
	return &CombinedHeuristic{
		minAssistsBoard:           minAssists,
		minMovesBoard:             minMoves,
		groupMinMovesBoard:        groupMinMoves,
		minMovesMinRequiredAssist: getMinMovesMinRequiredAssist(minAssists, minMoves),
	}
}

// GetHeuristic implements Heuristic.
func (c *CombinedHeuristic) GetHeuristic(actors position.ActorSquares) Value {
	minAssistsHeuristic := c.minAssistsBoard.GetHeuristic(actors)

	var heuristicFromForcedAssist Value
	if minAssistsHeuristic > 0 {
		squares := squaresOf(actors)
		minTwo := getMinTwo([4]Value{
			c.minMovesBoard.Get(squares[0]),
			c.minMovesBoard.Get(squares[1]),
			c.minMovesBoard.Get(squares[2]),
			c.minMovesBoard.Get(squares[3]),
		})
		if minTwo[0] <= c.minMovesMinRequiredAssist {
			heuristicFromForcedAssist = minTwo[1]
		} else {
			heuristicFromForcedAssist = minTwo[0] + minTwo[1] - c.minMovesMinRequiredAssist
		}
	}

	heuristicFromGroupMinMoves := c.groupMinMovesBoard.GetHeuristic(actors)
	return getMax([]Value{heuristicFromForcedAssist, heuristicFromGroupMinMoves})
}

// GetHeuristicForTargetActor implements Heuristic.
func (c *CombinedHeuristic) GetHeuristicForTargetActor(actors position.ActorSquares, actorIndex int) Value {
	return getMax([]Value{
		c.groupMinMovesBoard.GetHeuristic(actors),
		c.minMovesBoard.GetHeuristicForTargetActor(actors, actorIndex),
	})
}
