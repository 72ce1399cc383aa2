// Package position implements the Position type (C4): a wall layout
// plus the four actors' squares and the goal square, its compact codec,
// and solution checking.
//
// Grounded on original_source/inertia-core/src/mechanics/{actor_squares.rs,
// walled_board_position.rs}, adjusted to spec.md's 70-byte (version-
// prefixed) compressed layout.
package position

import "github.com/bluebear94/inertia/geometry"

// ActorSquares holds the four actors' current squares, in a fixed
// "raw" order matching solution steps' actor indices.
type ActorSquares [4]geometry.Square

// AsBitBoard returns the occupancy set of all four actors.
func (a ActorSquares) AsBitBoard() geometry.BitBoard {
	var b geometry.BitBoard
	for _, s := range a {
		b.Set(s)
	}
	return b
}

// AsBytes renders the raw actor order as 4 bytes.
func (a ActorSquares) AsBytes() [4]byte {
	return [4]byte{byte(a[0]), byte(a[1]), byte(a[2]), byte(a[3])}
}

// ActorSquaresFromBytes is the inverse of AsBytes.
func ActorSquaresFromBytes(b [4]byte) ActorSquares {
	return ActorSquares{geometry.Square(b[0]), geometry.Square(b[1]), geometry.Square(b[2]), geometry.Square(b[3])}
}

// Sorted returns the four squares in ascending order, using the
// optimal 5-comparator sorting network for 4 elements — actor
// identities are interchangeable from the perspective of "has any
// actor reached the goal?", so this is used as the transposition key.
func (a ActorSquares) Sorted() [4]geometry.Square {
	s := [4]geometry.Square{a[0], a[1], a[2], a[3]}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[2] > s[3] {
		s[2], s[3] = s[3], s[2]
	}
	if s[0] > s[2] {
		s[0], s[2] = s[2], s[0]
	}
	if s[1] > s[3] {
		s[1], s[3] = s[3], s[1]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	return s
}

// Contains reports whether any actor occupies s.
func (a ActorSquares) Contains(s geometry.Square) bool {
	for _, sq := range a {
		if sq == s {
			return true
		}
	}
	return false
}
