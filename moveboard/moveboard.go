// Package moveboard implements the move oracle (C3): for a fixed wall
// layout, where does an actor starting on a given square end up sliding
// in a given direction, first ignoring other actors and then accounting
// for them.
//
// Grounded on the (legible, if commented-out in the retrieved snapshot)
// iterative get_move_destination algorithm and get_unimpeded_movement_ray_squares
// usage in original_source/inertia-core/src/mechanics/movement.rs and
// .../solvers/group_min_moves_board.rs.
package moveboard

import (
	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
)

// MoveBoard precomputes, for every square and direction, the square an
// actor would come to rest on if it were the only actor on the board —
// i.e. ignoring all occupancy, only walls.
type MoveBoard struct {
	unimpeded [4][geometry.NumSquares]geometry.Square
}

// FromWalledBoard builds the oracle for a fixed wall layout.
func FromWalledBoard(wb board.WalledBoard) *MoveBoard {
	mb := &MoveBoard{}
	for _, d := range geometry.Directions {
		for s := 0; s < geometry.NumSquares; s++ {
			mb.unimpeded[d][s] = unimpededDestination(wb, geometry.Square(s), d)
		}
	}
	return mb
}

func wallBlocks(wb board.WalledBoard, s geometry.Square, d geometry.Direction) bool {
	switch d {
	case geometry.Up:
		return wb.GetWallUp(s, false)
	case geometry.Down:
		return wb.GetWallDown(s, false)
	case geometry.Left:
		return wb.GetWallLeft(s, false)
	default:
		return wb.GetWallRight(s, false)
	}
}

func unimpededDestination(wb board.WalledBoard, s geometry.Square, d geometry.Direction) geometry.Square {
	cur := s
	for {
		if wallBlocks(wb, cur, d) {
			return cur
		}
		next, ok := cur.Adjacent(d)
		if !ok {
			return cur
		}
		cur = next
	}
}

// GetUnimpededDestination returns the wall-only destination square.
func (mb *MoveBoard) GetUnimpededDestination(s geometry.Square, d geometry.Direction) geometry.Square {
	return mb.unimpeded[d][s]
}

// GetUnimpededMovementRaySquares returns every square strictly between
// s (exclusive) and its unimpeded destination in direction d
// (inclusive), in travel order. It is empty if s has no neighbor in d
// or a wall stops s from moving in d.
func (mb *MoveBoard) GetUnimpededMovementRaySquares(s geometry.Square, d geometry.Direction) []geometry.Square {
	adj, ok := s.Adjacent(d)
	if !ok {
		return nil
	}
	dest := mb.GetUnimpededDestination(s, d)
	if dest == s {
		return nil
	}
	ray := make([]geometry.Square, 0, 16)
	cur := adj
	for {
		ray = append(ray, cur)
		if cur == dest {
			break
		}
		next, ok := cur.Adjacent(d)
		if !ok {
			break
		}
		cur = next
	}
	return ray
}

// GetMoveDestination returns the square s would come to rest on,
// sliding in direction d, given the other occupied squares on the
// board (which should not include s itself).
func (mb *MoveBoard) GetMoveDestination(s geometry.Square, occupied geometry.BitBoard, d geometry.Direction) geometry.Square {
	unimpeded := mb.GetUnimpededDestination(s, d)
	if unimpeded == s {
		return s
	}
	cur := s
	for {
		next, ok := cur.Adjacent(d)
		if !ok || occupied.Test(next) {
			return cur
		}
		cur = next
		if cur == unimpeded {
			return cur
		}
	}
}

// ActorMove describes one actor's candidate move in one direction.
type ActorMove struct {
	Destination geometry.Square
	Unimpeded   bool
}

// GetAllActorMoveDestinations computes, for each of the 4 actors and
// each of the 4 directions, where that actor would land given the
// other three actors' positions as blockers.
func (mb *MoveBoard) GetAllActorMoveDestinations(actors [4]geometry.Square) [4][4]ActorMove {
	var out [4][4]ActorMove
	for i := 0; i < 4; i++ {
		var occupied geometry.BitBoard
		for j := 0; j < 4; j++ {
			if j != i {
				occupied.Set(actors[j])
			}
		}
		for _, d := range geometry.Directions {
			dest := mb.GetMoveDestination(actors[i], occupied, d)
			out[i][d] = ActorMove{
				Destination: dest,
				Unimpeded:   dest == mb.GetUnimpededDestination(actors[i], d),
			}
		}
	}
	return out
}
