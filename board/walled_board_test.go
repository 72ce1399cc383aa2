package board

import (
	"testing"

	"github.com/bluebear94/inertia/geometry"
)

func TestSetGetWallRoundTrip(t *testing.T) {
	b := Empty()
	s := geometry.SquareFromRowCol(5, 5)
	b.SetWallUp(s, true)
	if !b.GetWallUp(s, false) {
		t.Fatal("expected wall up")
	}
	if !b.GetWallDown(geometry.SquareFromRowCol(4, 5), false) {
		t.Fatal("wall up of (5,5) should be wall down of (4,5)")
	}

	b.SetWallRight(s, true)
	if !b.GetWallRight(s, false) {
		t.Fatal("expected wall right")
	}
	if !b.GetWallLeft(geometry.SquareFromRowCol(5, 6), false) {
		t.Fatal("wall right of (5,5) should be wall left of (5,6)")
	}
}

func TestEdgeWallsIgnoreSets(t *testing.T) {
	b := Empty()
	top := geometry.SquareFromRowCol(0, 0)
	b.SetWallUp(top, true) // no-op, row 0 has no "up"
	if b.GetWallUp(top, false) {
		t.Fatal("setting wall up of row 0 should be a no-op")
	}
	if !b.GetWallUp(top, true) {
		t.Fatal("allowEdges should report the boundary as walled")
	}
}

func TestIsCorner(t *testing.T) {
	w := Walls{Up: true, Left: true}
	if !w.IsCorner() {
		t.Fatal("expected corner shape")
	}
	w2 := Walls{Up: true, Down: true}
	if w2.IsCorner() {
		t.Fatal("opposite walls should not be a corner")
	}
}

func TestWallEncodeDecodeRoundTrip(t *testing.T) {
	b := Empty()
	b.SetWallDown(geometry.SquareFromRowCol(0, 0), true)
	b.SetWallDown(geometry.SquareFromRowCol(15, 14), true)
	b.SetWallRight(geometry.SquareFromRowCol(0, 0), true)
	b.SetWallRight(geometry.SquareFromRowCol(15, 14), true)

	encoded := b.EncodeWalls()
	decoded := DecodeWalls(encoded)
	if decoded != b {
		t.Fatalf("round trip mismatch: got %+v want %+v", decoded, b)
	}
}

func TestB64RoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 255, 0}
	encoded := EncodeB64(data)
	decoded, err := DecodeB64(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != string(data) {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, data)
	}
}
