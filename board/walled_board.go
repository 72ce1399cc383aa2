// Package board implements the wall-occupancy grid (C2): a 16x16 board
// of vertical and horizontal wall segments, plus its compact codec.
//
// Grounded on original_source/inertia-core/src/mechanics/walled_board.rs
// (wall grid layout, accessor shape, terminal Display rendering) and
// spec.md's §6 70-byte compressed layout.
package board

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/bluebear94/inertia/geometry"
)

// wallGroup holds the 15 wall slots along one row or column. The codec
// packs each group into 16 bits, the 16th bit being unused padding to
// keep byte-packing simple.
type wallGroup = [15]bool

// WalledBoard holds every wall segment on the grid. Vertical[row][col]
// is the wall immediately to the right of col on that row (i.e. between
// col and col+1); Horizontal[col][row] is the wall immediately below
// row on that column (i.e. between row and row+1).
type WalledBoard struct {
	Vertical   [16]wallGroup
	Horizontal [16]wallGroup
}

// Empty returns a board with no interior walls.
func Empty() WalledBoard {
	return WalledBoard{}
}

func (b *WalledBoard) col(c int) *wallGroup      { return &b.Horizontal[c] }
func (b *WalledBoard) row(r int) *wallGroup      { return &b.Vertical[r] }
func (b WalledBoard) colC(c int) wallGroup       { return b.Horizontal[c] }
func (b WalledBoard) rowC(r int) wallGroup       { return b.Vertical[r] }

// SetWallUp places or removes the wall directly above s.
func (b *WalledBoard) SetWallUp(s geometry.Square, present bool) {
	row, col := s.RowCol()
	if row == 0 {
		return
	}
	b.col(col)[row-1] = present
}

// SetWallDown places or removes the wall directly below s.
func (b *WalledBoard) SetWallDown(s geometry.Square, present bool) {
	row, col := s.RowCol()
	if row == 15 {
		return
	}
	b.col(col)[row] = present
}

// SetWallLeft places or removes the wall directly to the left of s.
func (b *WalledBoard) SetWallLeft(s geometry.Square, present bool) {
	row, col := s.RowCol()
	if col == 0 {
		return
	}
	b.row(row)[col-1] = present
}

// SetWallRight places or removes the wall directly to the right of s.
func (b *WalledBoard) SetWallRight(s geometry.Square, present bool) {
	row, col := s.RowCol()
	if col == 15 {
		return
	}
	b.row(row)[col] = present
}

// GetWallUp reports whether there's a wall above s. allowEdges controls
// what's returned at the board boundary (true = treat the board edge
// itself as a wall).
func (b WalledBoard) GetWallUp(s geometry.Square, allowEdges bool) bool {
	row, col := s.RowCol()
	if row == 0 {
		return allowEdges
	}
	return b.colC(col)[row-1]
}

// GetWallDown reports whether there's a wall below s.
func (b WalledBoard) GetWallDown(s geometry.Square, allowEdges bool) bool {
	row, col := s.RowCol()
	if row == 15 {
		return allowEdges
	}
	return b.colC(col)[row]
}

// GetWallLeft reports whether there's a wall to the left of s.
func (b WalledBoard) GetWallLeft(s geometry.Square, allowEdges bool) bool {
	row, col := s.RowCol()
	if col == 0 {
		return allowEdges
	}
	return b.rowC(row)[col-1]
}

// GetWallRight reports whether there's a wall to the right of s.
func (b WalledBoard) GetWallRight(s geometry.Square, allowEdges bool) bool {
	row, col := s.RowCol()
	if col == 15 {
		return allowEdges
	}
	return b.rowC(row)[col]
}

// Walls bundles the four wall presences around a single square.
type Walls struct {
	Up, Down, Left, Right bool
}

// IsCorner reports whether exactly one of the vertical pair and exactly
// one of the horizontal pair is walled — the shape classic board
// generation uses to place "corner" wall pairs.
func (w Walls) IsCorner() bool {
	vertical := 0
	if w.Up {
		vertical++
	}
	if w.Down {
		vertical++
	}
	horizontal := 0
	if w.Left {
		horizontal++
	}
	if w.Right {
		horizontal++
	}
	return vertical == 1 && horizontal == 1
}

// WallsForSquare collects all four wall presences around s.
func (b WalledBoard) WallsForSquare(s geometry.Square, allowEdges bool) Walls {
	return Walls{
		Up:    b.GetWallUp(s, allowEdges),
		Down:  b.GetWallDown(s, allowEdges),
		Left:  b.GetWallLeft(s, allowEdges),
		Right: b.GetWallRight(s, allowEdges),
	}
}

// String renders the board as a block-character grid for terminal
// inspection, in the spirit of the original engine's Display impl.
func (b WalledBoard) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("█", 66))
	for row := 0; row < 16; row++ {
		sb.WriteByte('\n')
		sb.WriteString("██")
		for col := 0; col < 15; col++ {
			sb.WriteString("  ")
			if b.rowC(row)[col] {
				sb.WriteString("██")
			} else {
				sb.WriteString("░░")
			}
		}
		sb.WriteString("  ██")
		if row == 15 {
			continue
		}
		sb.WriteByte('\n')
		sb.WriteString("██")
		for col := 0; col < 16; col++ {
			if b.colC(col)[row] {
				sb.WriteString("██")
			} else {
				sb.WriteString("░░")
			}
			if col < 15 {
				sb.WriteString("░░")
			}
		}
		sb.WriteString("██")
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("█", 66))
	return sb.String()
}

// packGroup bit-packs a 15-element wall group, LSB-first, into 2 bytes.
func packGroup(g wallGroup) [2]byte {
	var out [2]byte
	for idx, bit := range g {
		if !bit {
			continue
		}
		out[idx/8] |= 1 << uint(idx%8)
	}
	return out
}

func unpackGroup(lo, hi byte) wallGroup {
	var g wallGroup
	for idx := 0; idx < 15; idx++ {
		var b byte
		if idx < 8 {
			b = lo
		} else {
			b = hi
		}
		if b&(1<<uint(idx%8)) != 0 {
			g[idx] = true
		}
	}
	return g
}

// EncodeWalls packs the 32+32 bytes of vertical/horizontal wall data
// used by the 70-byte compressed position layout.
func (b WalledBoard) EncodeWalls() [64]byte {
	var out [64]byte
	offset := 0
	for _, g := range b.Vertical {
		packed := packGroup(g)
		out[offset], out[offset+1] = packed[0], packed[1]
		offset += 2
	}
	for _, g := range b.Horizontal {
		packed := packGroup(g)
		out[offset], out[offset+1] = packed[0], packed[1]
		offset += 2
	}
	return out
}

// DecodeWalls is the inverse of EncodeWalls.
func DecodeWalls(data [64]byte) WalledBoard {
	var b WalledBoard
	for i := 0; i < 16; i++ {
		b.Vertical[i] = unpackGroup(data[i*2], data[i*2+1])
	}
	for i := 0; i < 16; i++ {
		b.Horizontal[i] = unpackGroup(data[32+i*2], data[32+i*2+1])
	}
	return b
}

// B64Encoding is the unpadded, URL-safe base64 alphabet the wire format
// uses for every compressed blob in this module.
var B64Encoding = base64.RawURLEncoding

// EncodeB64 renders an arbitrary compressed blob as wire text.
func EncodeB64(data []byte) string {
	return B64Encoding.EncodeToString(data)
}

// DecodeB64 parses wire text back into bytes.
func DecodeB64(s string) ([]byte, error) {
	out, err := B64Encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("board: decode base64: %w", err)
	}
	return out, nil
}
