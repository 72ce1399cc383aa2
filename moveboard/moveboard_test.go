package moveboard

import (
	"testing"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
)

func TestUnimpededDestinationEmptyBoard(t *testing.T) {
	mb := FromWalledBoard(board.Empty())
	if got := mb.GetUnimpededDestination(geometry.SquareFromRowCol(15, 10), geometry.Up); got != geometry.SquareFromRowCol(0, 10) {
		t.Errorf("got %d want %d", got, geometry.SquareFromRowCol(0, 10))
	}
	if got := mb.GetUnimpededDestination(0, geometry.Up); got != 0 {
		t.Errorf("square 0 moving up on empty board should stay put, got %d", got)
	}
	if got := mb.GetUnimpededDestination(255, geometry.Down); got != 255 {
		t.Errorf("square 255 moving down on empty board should stay put, got %d", got)
	}
}

func TestUnimpededDestinationBlockedByWall(t *testing.T) {
	wb := board.Empty()
	// Wall between row1,col10 (26) and row2,col10 (42): blocks upward
	// movement crossing that boundary.
	wb.SetWallUp(geometry.SquareFromRowCol(2, 10), true)
	mb := FromWalledBoard(wb)
	got := mb.GetUnimpededDestination(geometry.SquareFromRowCol(15, 10), geometry.Up)
	want := geometry.SquareFromRowCol(2, 10)
	if got != want {
		t.Errorf("got %d want %d", got, want)
	}
}

func TestGetMoveDestinationBlockedByOccupant(t *testing.T) {
	mb := FromWalledBoard(board.Empty())
	occupied := geometry.BitBoardFromSquare(geometry.SquareFromRowCol(1, 10))
	got := mb.GetMoveDestination(geometry.SquareFromRowCol(15, 10), occupied, geometry.Up)
	want := geometry.SquareFromRowCol(2, 10)
	if got != want {
		t.Errorf("got %d want %d", got, want)
	}
}

func TestGetMoveDestinationAlreadyAtEdge(t *testing.T) {
	mb := FromWalledBoard(board.Empty())
	got := mb.GetMoveDestination(0, geometry.ZeroBoard, geometry.Up)
	if got != 0 {
		t.Errorf("expected to stay at square 0, got %d", got)
	}
}

func TestGetUnimpededMovementRaySquares(t *testing.T) {
	mb := FromWalledBoard(board.Empty())
	ray := mb.GetUnimpededMovementRaySquares(geometry.SquareFromRowCol(15, 0), geometry.Up)
	if len(ray) != 15 {
		t.Fatalf("expected 15 squares in ray, got %d", len(ray))
	}
	if ray[0] != geometry.SquareFromRowCol(14, 0) {
		t.Errorf("first ray square wrong: %d", ray[0])
	}
	if ray[len(ray)-1] != geometry.SquareFromRowCol(0, 0) {
		t.Errorf("last ray square wrong: %d", ray[len(ray)-1])
	}
}

func TestGetUnimpededMovementRaySquaresNoNeighbor(t *testing.T) {
	mb := FromWalledBoard(board.Empty())
	ray := mb.GetUnimpededMovementRaySquares(0, geometry.Up)
	if ray != nil {
		t.Errorf("expected nil ray at the edge, got %v", ray)
	}
}

func TestGetAllActorMoveDestinations(t *testing.T) {
	mb := FromWalledBoard(board.Empty())
	actors := [4]geometry.Square{
		geometry.SquareFromRowCol(15, 0),
		geometry.SquareFromRowCol(14, 0),
		geometry.SquareFromRowCol(0, 15),
		geometry.SquareFromRowCol(15, 15),
	}
	moves := mb.GetAllActorMoveDestinations(actors)
	// Actor 0 moving up is immediately blocked by actor 1 at row 14.
	got := moves[0][geometry.Up]
	want := geometry.SquareFromRowCol(15, 0)
	if got.Destination != want || got.Unimpeded {
		t.Errorf("actor 0 up: got %+v", got)
	}
	// Actor 1 moving up is unobstructed all the way to row 0.
	got = moves[1][geometry.Up]
	want = geometry.SquareFromRowCol(0, 0)
	if got.Destination != want || !got.Unimpeded {
		t.Errorf("actor 1 up: got %+v", got)
	}
}
