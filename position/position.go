package position

import (
	"fmt"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/moveboard"
	"github.com/bluebear94/inertia/solution"
)

// CompressedVersion identifies the compressed-byte layout. Version 0
// is "naive, any actor, any goal" per spec.md — the only layout this
// module emits or accepts today.
const CompressedVersion byte = 0

// CompressedBytes is the fixed size of a compressed Position: 1
// version byte + 32 bytes vertical walls + 32 bytes horizontal walls +
// 4 actor bytes + 1 goal byte.
const CompressedBytes = 1 + 64 + 4 + 1

// Position is an immutable snapshot of a board: its walls, the actors'
// current squares, and the goal square any actor must reach.
type Position struct {
	WalledBoard board.WalledBoard
	Actors      ActorSquares
	Goal        geometry.Square
}

// IsSolved reports whether an actor already occupies the goal.
func (p Position) IsSolved() bool {
	return p.Actors.Contains(p.Goal)
}

// Encode packs the position into its 70-byte compressed form.
func (p Position) Encode() [CompressedBytes]byte {
	var out [CompressedBytes]byte
	out[0] = CompressedVersion
	walls := p.WalledBoard.EncodeWalls()
	copy(out[1:65], walls[:])
	actorBytes := p.Actors.AsBytes()
	copy(out[65:69], actorBytes[:])
	out[69] = byte(p.Goal)
	return out
}

// EncodeB64 is Encode rendered as unpadded URL-safe base64.
func (p Position) EncodeB64() string {
	encoded := p.Encode()
	return board.EncodeB64(encoded[:])
}

// Decode is the inverse of Encode.
func Decode(data [CompressedBytes]byte) (Position, error) {
	if data[0] != CompressedVersion {
		return Position{}, fmt.Errorf("position: decode: unsupported version %d", data[0])
	}
	var walls [64]byte
	copy(walls[:], data[1:65])
	var actorBytes [4]byte
	copy(actorBytes[:], data[65:69])
	return Position{
		WalledBoard: board.DecodeWalls(walls),
		Actors:      ActorSquaresFromBytes(actorBytes),
		Goal:        geometry.Square(data[69]),
	}, nil
}

// DecodeSlice decodes a position from a byte slice of exactly
// CompressedBytes length, returning an error otherwise.
func DecodeSlice(data []byte) (Position, error) {
	if len(data) != CompressedBytes {
		return Position{}, fmt.Errorf("position: decode: need %d bytes, got %d", CompressedBytes, len(data))
	}
	var arr [CompressedBytes]byte
	copy(arr[:], data)
	return Decode(arr)
}

// DecodeB64 decodes a wire-format position string.
func DecodeB64(s string) (Position, error) {
	data, err := board.DecodeB64(s)
	if err != nil {
		return Position{}, fmt.Errorf("position: %w", err)
	}
	return DecodeSlice(data)
}

// ApplySolution replays a sequence of moves and returns the actors'
// resulting squares, without mutating p.
func (p Position) ApplySolution(sol solution.Solution) ActorSquares {
	mb := moveboard.FromWalledBoard(p.WalledBoard)
	actors := p.Actors
	for _, step := range sol {
		var occupied geometry.BitBoard
		for i, s := range actors {
			if uint8(i) != step.Actor {
				occupied.Set(s)
			}
		}
		actors[step.Actor] = mb.GetMoveDestination(actors[step.Actor], occupied, step.Direction)
	}
	return actors
}

// CheckResult is the outcome of comparing a submitted solution against
// a position's goal.
type CheckResult int

const (
	// Solved means the submitted solution lands an actor on the goal.
	Solved CheckResult = iota
	// NotSolved means it replays cleanly but no actor reaches the goal.
	NotSolved
)

// CheckSolution replays sol against p and reports whether it solves
// the position. Supplemented from the original engine's
// WalledBoardPosition::is_solution; used by room's UpdateSolution
// handling and by corpus's daily-solution check.
func (p Position) CheckSolution(sol solution.Solution) CheckResult {
	final := p.ApplySolution(sol)
	if final.Contains(p.Goal) {
		return Solved
	}
	return NotSolved
}
