package search

import (
	"testing"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// emptyMoveBoard is the empty-board move oracle the original test
// suite in astar.rs runs every scenario below against.
func emptyMoveBoard() *moveboard.MoveBoard {
	return moveboard.FromWalledBoard(board.Empty())
}

func sq(i int) geometry.Square { return geometry.Square(i) }

func wantSolution(t *testing.T, got solution.Solution, ok bool, wantOK bool, want solution.Solution) {
	t.Helper()
	if ok != wantOK {
		t.Fatalf("Solve ok = %v, want %v", ok, wantOK)
	}
	if !wantOK {
		return
	}
	if len(got) != len(want) {
		t.Fatalf("Solve = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Solve = %+v, want %+v", got, want)
		}
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(0), sq(1), sq(2), sq(3)}
	got, ok := Solve(mb, sq(0), actors, 1)
	wantSolution(t, got, ok, true, solution.Solution{})
}

func TestSolveEmptySolveInOne(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(1), sq(2), sq(3), sq(4)}
	got, ok := Solve(mb, sq(0), actors, 1)
	wantSolution(t, got, ok, true, solution.Solution{{Actor: 0, Direction: geometry.Left}})
}

func TestSolveEmptySolveInOneReverse(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(4), sq(3), sq(2), sq(1)}
	got, ok := Solve(mb, sq(0), actors, 1)
	wantSolution(t, got, ok, true, solution.Solution{{Actor: 3, Direction: geometry.Left}})
}

func TestSolveEmptySolveInOneBelowMax(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(4), sq(3), sq(2), sq(1)}
	got, ok := Solve(mb, sq(0), actors, 10)
	wantSolution(t, got, ok, true, solution.Solution{{Actor: 3, Direction: geometry.Left}})
}

func TestSolveEmptyNoSolveInOne(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(17), sq(18), sq(19), sq(20)}
	_, ok := Solve(mb, sq(0), actors, 1)
	if ok {
		t.Fatalf("Solve ok = true, want false (no 1-move solution exists)")
	}
}

func TestSolveEmptySolveInTwo(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(17), sq(18), sq(19), sq(20)}
	got, ok := Solve(mb, sq(0), actors, 2)
	wantSolution(t, got, ok, true, solution.Solution{
		{Actor: 3, Direction: geometry.Up},
		{Actor: 3, Direction: geometry.Left},
	})
}

func TestSolveEmptySolveInThree(t *testing.T) {
	mb := emptyMoveBoard()
	actors := position.ActorSquares{sq(14), sq(15), sq(49), sq(255)}
	got, ok := Solve(mb, sq(17), actors, 3)
	wantSolution(t, got, ok, true, solution.Solution{
		{Actor: 0, Direction: geometry.Left},
		{Actor: 1, Direction: geometry.Left},
		{Actor: 2, Direction: geometry.Up},
	})
}

// TestSolveUnreachableGoal walls the goal in on all four sides, so no
// actor can ever cross into it regardless of search depth.
func TestSolveUnreachableGoal(t *testing.T) {
	wb := board.Empty()
	goal := sq(119) // row 7, col 7: interior, all four neighbors exist
	wb.SetWallUp(goal, true)
	wb.SetWallDown(goal, true)
	wb.SetWallLeft(goal, true)
	wb.SetWallRight(goal, true)
	mb := moveboard.FromWalledBoard(wb)
	actors := position.ActorSquares{sq(0), sq(200), sq(201), sq(202)}
	_, ok := Solve(mb, goal, actors, 6)
	if ok {
		t.Fatalf("Solve ok = true, want false (goal is walled off on every side)")
	}
}
