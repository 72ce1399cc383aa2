package solution

import (
	"testing"

	"github.com/bluebear94/inertia/geometry"
)

func TestEncodeDecodeRoundTripEmpty(t *testing.T) {
	s := Solution{}
	decoded, err := Decode(s.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty solution, got %v", decoded)
	}
}

func TestEncodeDecodeRoundTripOne(t *testing.T) {
	s := Solution{{Actor: 1, Direction: geometry.Left}}
	decoded, err := Decode(s.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0] != s[0] {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, s)
	}
}

func TestEncodeDecodeRoundTripAll(t *testing.T) {
	var s Solution
	for actor := uint8(0); actor < 4; actor++ {
		for _, d := range geometry.Directions {
			s = append(s, Step{Actor: actor, Direction: d})
		}
	}
	decoded, err := Decode(s.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(s) {
		t.Fatalf("length mismatch: got %d want %d", len(decoded), len(s))
	}
	for i := range s {
		if decoded[i] != s[i] {
			t.Fatalf("step %d mismatch: got %v want %v", i, decoded[i], s[i])
		}
	}
}

func TestEncodeB64RoundTrip(t *testing.T) {
	s := Solution{{Actor: 2, Direction: geometry.Down}, {Actor: 0, Direction: geometry.Right}}
	decoded, err := DecodeB64(s.EncodeB64())
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[0] != s[0] || decoded[1] != s[1] {
		t.Fatalf("round trip mismatch: got %v want %v", decoded, s)
	}
}

func TestGetDifficultyBuckets(t *testing.T) {
	cases := []struct {
		name  string
		steps Solution
		want  Difficulty
	}{
		{"one step", repeatActors(1, []uint8{0}), Easiest},
		{"two steps", repeatActors(2, []uint8{0, 0}), Easiest},
		{"three steps same actor", repeatActors(3, []uint8{0, 0, 0}), Easiest},
		{"three steps mixed actors", repeatActors(3, []uint8{0, 1, 0}), Easy},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := GetDifficulty(c.steps); got != c.want {
				t.Errorf("GetDifficulty(%v) = %v, want %v", c.steps, got, c.want)
			}
		})
	}
}

func repeatActors(n int, actors []uint8) Solution {
	s := make(Solution, n)
	for i := range s {
		s[i] = Step{Actor: actors[i], Direction: geometry.Up}
	}
	return s
}

func TestDedupCount(t *testing.T) {
	cases := []struct {
		ids  []uint8
		want int
	}{
		{nil, 0},
		{[]uint8{0}, 1},
		{[]uint8{0, 0, 0}, 1},
		{[]uint8{0, 1, 0}, 3},
		{[]uint8{0, 0, 1, 1, 0}, 3},
	}
	for _, c := range cases {
		if got := dedupCount(c.ids); got != c.want {
			t.Errorf("dedupCount(%v) = %d, want %d", c.ids, got, c.want)
		}
	}
}
