// Package solution implements the solution representation (C5): a
// sequence of single-actor moves, its compact nibble codec, and the
// internal-difficulty-to-bucket classification used by the corpus.
//
// Grounded on original_source/inertia-core/src/solvers/{solution.rs,
// solution_step.rs,difficulty.rs}.
package solution

import (
	"fmt"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
)

// Step is a single move: slide actor in direction.
type Step struct {
	Actor     uint8
	Direction geometry.Direction
}

// Solution is an ordered sequence of steps.
type Solution []Step

// lengthPrefixBytes is the little-endian step-count header size.
const lengthPrefixBytes = 2

// Encode packs the solution into its compact byte form: a 2-byte
// little-endian step count followed by packed nibbles, 2 steps per
// byte, low nibble first. Each nibble is actor<<2|direction.
func (s Solution) Encode() []byte {
	n := len(s)
	out := make([]byte, lengthPrefixBytes+(n+1)/2)
	out[0] = byte(n)
	out[1] = byte(n >> 8)
	for i, step := range s {
		nibble := step.Actor<<2 | uint8(step.Direction)
		byteIdx := lengthPrefixBytes + i/2
		if i%2 == 0 {
			out[byteIdx] |= nibble
		} else {
			out[byteIdx] |= nibble << 4
		}
	}
	return out
}

// EncodeB64 is Encode rendered as unpadded URL-safe base64.
func (s Solution) EncodeB64() string {
	return board.EncodeB64(s.Encode())
}

// Decode is the inverse of Encode.
func Decode(data []byte) (Solution, error) {
	if len(data) < lengthPrefixBytes {
		return nil, fmt.Errorf("solution: decode: need at least %d bytes, got %d", lengthPrefixBytes, len(data))
	}
	length := int(data[0]) | int(data[1])<<8
	steps := make(Solution, 0, length)
	body := data[lengthPrefixBytes:]
	for _, b := range body {
		if len(steps) < length {
			nibble := b & 0b1111
			steps = append(steps, Step{Actor: nibble >> 2, Direction: geometry.Direction(nibble & 0b11)})
		}
		if len(steps) < length {
			nibble := b >> 4
			steps = append(steps, Step{Actor: nibble >> 2, Direction: geometry.Direction(nibble & 0b11)})
		}
	}
	if len(steps) != length {
		return nil, fmt.Errorf("solution: decode: expected %d steps, body only encodes %d", length, len(steps))
	}
	return steps, nil
}

// DecodeB64 decodes a wire-format solution string.
func DecodeB64(s string) (Solution, error) {
	data, err := board.DecodeB64(s)
	if err != nil {
		return nil, fmt.Errorf("solution: %w", err)
	}
	return Decode(data)
}
