// Package generator implements board synthesis (C11): the classic
// quadrant-corner wall layout and goal/actor placement, plus a
// Lua-scriptable variant for user-authored board styles.
//
// Grounded on original_source/inertia-core/src/board_generators/
// classic.rs, translated square-for-square to Go; randomness uses
// lukechampine.com/frand and github.com/samber/lo per the domain-stack
// wiring in SPEC_FULL.md §2, matching the teacher's own
// zobrist/hash.go and endgame/negamax/solver.go choice of frand over
// math/rand.
package generator

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// centralSquares are the 4 squares the classic layout's 2x2 box
// occupies: (7,7), (7,8), (8,7), (8,8) — excluded from goal/actor
// placement.
var centralSquares = [4]geometry.Square{119, 120, 135, 136}

// ClassicBoardGenerator synthesizes a fresh classic-style board on
// every call: a fixed central box, one wall on each outer half-edge,
// 3-5 quadrant-corner wall pairs per quadrant, and 5 distinct
// non-central squares for the goal and four actors. It carries no
// state, so it is trivially safe to share across rooms and each call
// draws independent randomness from frand's global CSPRNG — matching
// spec.md §4.7's "generators must be cloneable and thread-shareable;
// clones must produce independent sequences if randomized" rule.
type ClassicBoardGenerator struct {
	// RequireCornerGoal enables the strict variant of spec.md §4.7's
	// last rule: the goal square must be a corner (exactly one
	// orthogonal wall pair), checked with the board edge itself
	// counted as a wall with probability 0.25 per sample.
	RequireCornerGoal bool
}

// NewClassicBoardGenerator returns the non-strict classic generator,
// matching original_source's ClassicBoardGenerator::new exactly (no
// corner requirement on the goal).
func NewClassicBoardGenerator() *ClassicBoardGenerator {
	return &ClassicBoardGenerator{}
}

// NewStrictClassicBoardGenerator returns the strict variant spec.md
// §4.7 describes, which additionally requires the goal to land on a
// corner square.
func NewStrictClassicBoardGenerator() *ClassicBoardGenerator {
	return &ClassicBoardGenerator{RequireCornerGoal: true}
}

const maxGoalRejectionAttempts = 64

// GeneratePosition implements room.PositionGenerator. A from-scratch
// synthesized board carries no known optimal solution.
func (g *ClassicBoardGenerator) GeneratePosition() (position.Position, *solution.Solution) {
	wb := board.Empty()
	addCentralBox(&wb)
	addEdgeWalls(&wb)
	addMidboardCorners(&wb)

	for attempt := 0; ; attempt++ {
		squares := sampleGoalAndActorSquares()
		goal := squares[0]
		if !g.RequireCornerGoal || isCornerGoal(wb, goal) || attempt >= maxGoalRejectionAttempts {
			return position.Position{
				WalledBoard: wb,
				Actors:      position.ActorSquares{squares[1], squares[2], squares[3], squares[4]},
				Goal:        goal,
			}, nil
		}
	}
}

// isCornerGoal implements the strict variant's corner test, treating
// the board edge as a wall with probability 0.25 per sample per
// spec.md §4.7.
func isCornerGoal(wb board.WalledBoard, goal geometry.Square) bool {
	allowEdges := frand.Intn(4) == 0
	return wb.WallsForSquare(goal, allowEdges).IsCorner()
}

// addCentralBox places the fixed 4-wall box around the middle 2x2,
// grounded on classic.rs's add_central_box. Each call is expressed in
// terms of the square the wall borders rather than raw row/col wall
// array indices.
func addCentralBox(wb *board.WalledBoard) {
	wb.SetWallDown(geometry.SquareFromRowCol(6, 7), true)
	wb.SetWallDown(geometry.SquareFromRowCol(6, 8), true)
	wb.SetWallDown(geometry.SquareFromRowCol(8, 7), true)
	wb.SetWallDown(geometry.SquareFromRowCol(8, 8), true)
	wb.SetWallRight(geometry.SquareFromRowCol(7, 6), true)
	wb.SetWallRight(geometry.SquareFromRowCol(8, 6), true)
	wb.SetWallRight(geometry.SquareFromRowCol(7, 8), true)
	wb.SetWallRight(geometry.SquareFromRowCol(8, 8), true)
}

// addEdgeWalls places one wall on each of the 8 half-edges of the
// outer perimeter (4 edges x 2 halves), each chosen uniformly from its
// 6-square interior window [1,7) or [8,14), grounded on classic.rs's
// add_edge_walls.
func addEdgeWalls(wb *board.WalledBoard) {
	for _, idx := range chooseOneFromEachHalf() {
		wb.SetWallRight(geometry.SquareFromRowCol(0, idx), true)
	}
	for _, idx := range chooseOneFromEachHalf() {
		wb.SetWallRight(geometry.SquareFromRowCol(15, idx), true)
	}
	for _, idx := range chooseOneFromEachHalf() {
		wb.SetWallDown(geometry.SquareFromRowCol(idx, 0), true)
	}
	for _, idx := range chooseOneFromEachHalf() {
		wb.SetWallDown(geometry.SquareFromRowCol(idx, 15), true)
	}
}

// chooseOneFromEachHalf picks one index uniformly from [1,7) and one
// from [8,14), matching classic.rs's paired (1..7).choose/(8..14).choose
// calls.
func chooseOneFromEachHalf() [2]int {
	return [2]int{1 + frand.Intn(6), 8 + frand.Intn(6)}
}

// quadrantBounds is the half-open [rowLo,rowHi) x [colLo,colHi) window
// a quadrant's corner placement samples from.
type quadrantBounds struct {
	rowLo, rowHi, colLo, colHi int
}

var quadrants = [4]quadrantBounds{
	{1, 8, 1, 8},   // quad 1
	{1, 8, 8, 15},  // quad 2
	{8, 15, 1, 8},  // quad 3
	{8, 15, 8, 15}, // quad 4
}

// addMidboardCorners places 3-5 corner wall pairs in each of the 4
// quadrants, in a shuffled quadrant order so earlier quadrants don't
// systematically get first pick of contested boundary squares,
// grounded on classic.rs's add_midboard_corners (quad_handlers.shuffle).
func addMidboardCorners(wb *board.WalledBoard) {
	order := []int{0, 1, 2, 3}
	frand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, qi := range order {
		q := quadrants[qi]
		numCorners := 3 + frand.Intn(3)
		addCornersInRange(wb, numCorners, q)
	}
}

// addCornersInRange implements classic.rs's add_corners_in_range: it
// repeatedly samples a candidate square from the quadrant's window,
// rejects squares with any incident wall or with no valid orientation
// in either axis, and otherwise places one vertical and one horizontal
// wall segment meeting at that square, picking uniformly between the
// two valid placements on each axis when both are available.
func addCornersInRange(wb *board.WalledBoard, numCorners int, bounds quadrantBounds) {
	type rc struct{ row, col int }
	candidates := make(map[rc]struct{})
	for row := bounds.rowLo; row < bounds.rowHi; row++ {
		for col := bounds.colLo; col < bounds.colHi; col++ {
			candidates[rc{row, col}] = struct{}{}
		}
	}

	remaining := numCorners
	for remaining > 0 && len(candidates) > 0 {
		keys := lo.Keys(candidates)
		cand := keys[frand.Intn(len(keys))]
		delete(candidates, cand)
		row, col := cand.row, cand.col

		if wb.Horizontal[col][row-1] || wb.Horizontal[col][row] ||
			wb.Vertical[row][col-1] || wb.Vertical[row][col] {
			continue
		}

		var verticalCandidates []int
		canPlaceLeft := !wb.Horizontal[col-1][row-1] && !wb.Horizontal[col-1][row] &&
			!wb.Vertical[row-1][col-1] && !wb.Vertical[row+1][col-1]
		canPlaceRight := !wb.Horizontal[col+1][row-1] && !wb.Horizontal[col+1][row] &&
			!wb.Vertical[row-1][col] && !wb.Vertical[row+1][col]
		if canPlaceLeft {
			verticalCandidates = append(verticalCandidates, col-1)
		}
		if canPlaceRight {
			verticalCandidates = append(verticalCandidates, col)
		}
		if len(verticalCandidates) == 0 {
			continue
		}

		var horizontalCandidates []int
		canPlaceUp := !wb.Vertical[row-1][col-1] && !wb.Vertical[row-1][col] &&
			!wb.Horizontal[col-1][row-1] && !wb.Horizontal[col+1][row-1]
		canPlaceDown := !wb.Vertical[row+1][col-1] && !wb.Vertical[row+1][col] &&
			!wb.Horizontal[col-1][row] && !wb.Horizontal[col+1][row]
		if canPlaceUp {
			horizontalCandidates = append(horizontalCandidates, row-1)
		}
		if canPlaceDown {
			horizontalCandidates = append(horizontalCandidates, row)
		}
		if len(horizontalCandidates) == 0 {
			continue
		}

		verticalBlock := verticalCandidates[frand.Intn(len(verticalCandidates))]
		wb.Vertical[row][verticalBlock] = true

		horizontalBlock := horizontalCandidates[frand.Intn(len(horizontalCandidates))]
		wb.Horizontal[col][horizontalBlock] = true

		remaining--
	}
}

// sampleGoalAndActorSquares draws 5 distinct squares from the 252
// non-central squares and shuffles them, so index 0 is the goal and
// 1-4 are the actors, grounded on classic.rs's
// choose_multiple_fill+shuffle.
func sampleGoalAndActorSquares() [5]geometry.Square {
	excluded := make(map[geometry.Square]struct{}, len(centralSquares))
	for _, s := range centralSquares {
		excluded[s] = struct{}{}
	}
	candidates := make([]geometry.Square, 0, geometry.NumSquares-len(centralSquares))
	for s := 0; s < geometry.NumSquares; s++ {
		sq := geometry.Square(s)
		if _, skip := excluded[sq]; skip {
			continue
		}
		candidates = append(candidates, sq)
	}
	frand.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	var out [5]geometry.Square
	copy(out[:], candidates[:5])
	return out
}
