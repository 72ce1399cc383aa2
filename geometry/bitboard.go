package geometry

import (
	"math/bits"
	"strings"
)

// BitBoard is a set of squares on the 16x16 grid, stored as four uint64
// words (LSB-first within each word, word 0 covering squares 0..63).
type BitBoard [4]uint64

// ZeroBoard is the empty set.
var ZeroBoard = BitBoard{}

// BitBoardFromSquare returns a board with only s set.
func BitBoardFromSquare(s Square) BitBoard {
	var b BitBoard
	b.Set(s)
	return b
}

// Set marks s as present.
func (b *BitBoard) Set(s Square) {
	b[s/64] |= uint64(1) << (uint(s) % 64)
}

// Clear marks s as absent.
func (b *BitBoard) Clear(s Square) {
	b[s/64] &^= uint64(1) << (uint(s) % 64)
}

// Test reports whether s is present.
func (b BitBoard) Test(s Square) bool {
	return b[s/64]&(uint64(1)<<(uint(s)%64)) != 0
}

// Union returns the bitwise OR of b and other.
func (b BitBoard) Union(other BitBoard) BitBoard {
	var out BitBoard
	for i := range out {
		out[i] = b[i] | other[i]
	}
	return out
}

// Intersect returns the bitwise AND of b and other.
func (b BitBoard) Intersect(other BitBoard) BitBoard {
	var out BitBoard
	for i := range out {
		out[i] = b[i] & other[i]
	}
	return out
}

// Complement returns the bitwise NOT of b.
func (b BitBoard) Complement() BitBoard {
	var out BitBoard
	for i := range out {
		out[i] = ^b[i]
	}
	return out
}

// IsEmpty reports whether no square is set.
func (b BitBoard) IsEmpty() bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

// FirstSet returns the lowest-indexed set square and true, or false if
// the board is empty.
func (b BitBoard) FirstSet() (Square, bool) {
	for i, word := range b {
		if word != 0 {
			return Square(i*64 + bits.TrailingZeros64(word)), true
		}
	}
	return 0, false
}

// LastSet returns the highest-indexed set square and true, or false if
// the board is empty.
func (b BitBoard) LastSet() (Square, bool) {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0 {
			return Square(i*64 + 63 - bits.LeadingZeros64(b[i])), true
		}
	}
	return 0, false
}

// String renders the board as 16 rows of 0/1 digits, low column first,
// in the spirit of the original engine's debug board dump.
func (b BitBoard) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for row := 0; row < BoardDim; row++ {
		sb.WriteByte('[')
		for col := 0; col < BoardDim; col++ {
			if col > 0 {
				sb.WriteString(", ")
			}
			if b.Test(SquareFromRowCol(row, col)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
