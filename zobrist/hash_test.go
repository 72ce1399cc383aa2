package zobrist

import (
	"testing"

	"github.com/bluebear94/inertia/geometry"
)

func TestHashIsPermutationInvariant(t *testing.T) {
	tbl := NewTable()
	a := [4]geometry.Square{10, 20, 30, 40}
	b := [4]geometry.Square{40, 10, 30, 20}

	if tbl.Hash(a) != tbl.Hash(b) {
		t.Fatal("hash should not depend on slot order")
	}
}

func TestHashDistinguishesDifferentSquareSets(t *testing.T) {
	tbl := NewTable()
	a := [4]geometry.Square{10, 20, 30, 40}
	b := [4]geometry.Square{10, 20, 30, 41}

	if tbl.Hash(a) == tbl.Hash(b) {
		t.Fatal("distinct square sets collided (table not seeded correctly?)")
	}
}

func TestRollMatchesRecompute(t *testing.T) {
	tbl := NewTable()
	squares := [4]geometry.Square{10, 20, 30, 40}
	h := tbl.Hash(squares)

	rolled := tbl.Roll(h, squares[1], 99)
	squares[1] = 99
	want := tbl.Hash(squares)

	if rolled != want {
		t.Fatal("rolled hash diverged from a full recompute")
	}
}

func TestRollIsSelfInverse(t *testing.T) {
	tbl := NewTable()
	h := tbl.Hash([4]geometry.Square{1, 2, 3, 4})

	moved := tbl.Roll(h, 2, 50)
	back := tbl.Roll(moved, 50, 2)

	if back != h {
		t.Fatal("moving a square away and back should restore the original hash")
	}
}

func TestNoWordIsZero(t *testing.T) {
	tbl := NewTable()
	for i, w := range tbl.words {
		if w == 0 {
			t.Fatalf("word %d is zero, which would make that square invisible to XOR hashing", i)
		}
	}
}
