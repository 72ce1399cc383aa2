package geometry

import "testing"

func TestSquareFromRowCol(t *testing.T) {
	cases := []struct {
		row, col int
		want     Square
	}{
		{0, 0, 0},
		{0, 15, 15},
		{1, 0, 16},
		{15, 15, 255},
		{20, 20, 255},
	}
	for _, c := range cases {
		if got := SquareFromRowCol(c.row, c.col); got != c.want {
			t.Errorf("SquareFromRowCol(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestRowColRoundTrip(t *testing.T) {
	for s := 0; s < NumSquares; s++ {
		sq := Square(s)
		row, col := sq.RowCol()
		if got := SquareFromRowCol(row, col); got != sq {
			t.Errorf("round trip failed for square %d: got %d", s, got)
		}
	}
}

func TestAdjacentEdges(t *testing.T) {
	if _, ok := Square(0).Adjacent(Up); ok {
		t.Error("square 0 should have no Up neighbor")
	}
	if _, ok := Square(0).Adjacent(Left); ok {
		t.Error("square 0 should have no Left neighbor")
	}
	if _, ok := Square(255).Adjacent(Down); ok {
		t.Error("square 255 should have no Down neighbor")
	}
	if _, ok := Square(255).Adjacent(Right); ok {
		t.Error("square 255 should have no Right neighbor")
	}
	if got, ok := Square(250).Adjacent(Up); !ok || got != 234 {
		t.Errorf("Square(250).Adjacent(Up) = %d,%v want 234,true", got, ok)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestBitBoardSetTestClear(t *testing.T) {
	var b BitBoard
	s := Square(200)
	if b.Test(s) {
		t.Fatal("expected unset bit")
	}
	b.Set(s)
	if !b.Test(s) {
		t.Fatal("expected set bit")
	}
	b.Clear(s)
	if b.Test(s) {
		t.Fatal("expected cleared bit")
	}
}

func TestBitBoardFirstLastSet(t *testing.T) {
	b := BitBoardFromSquare(Square(10)).Union(BitBoardFromSquare(Square(200)))
	first, ok := b.FirstSet()
	if !ok || first != 10 {
		t.Errorf("FirstSet() = %d,%v want 10,true", first, ok)
	}
	last, ok := b.LastSet()
	if !ok || last != 200 {
		t.Errorf("LastSet() = %d,%v want 200,true", last, ok)
	}
}

func TestBitBoardUnionIntersectComplement(t *testing.T) {
	a := BitBoardFromSquare(5)
	b := BitBoardFromSquare(9)
	u := a.Union(b)
	if !u.Test(5) || !u.Test(9) {
		t.Fatal("union missing a member")
	}
	if !u.Intersect(a).Test(5) {
		t.Fatal("intersect dropped shared member")
	}
	if u.Intersect(a).Test(9) {
		t.Fatal("intersect kept non-shared member")
	}
	if a.Complement().Test(5) {
		t.Fatal("complement kept set member")
	}
	if !a.Complement().Test(9) {
		t.Fatal("complement dropped unset member")
	}
}
