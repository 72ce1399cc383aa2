package generator

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"lukechampine.com/frand"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// LuaGenerator runs a user-authored Lua script to pick the classic
// layout's tunable knobs — corners per quadrant and whether the goal
// must land on a corner square — then reuses the same wall-placement
// machinery as ClassicBoardGenerator. This is the Lua-scriptable board
// style variant spec.md's board generator component leaves as an
// external-collaborator concern ("random board generators of specific
// aesthetic styles" is out of scope at the engine's core, but a script
// hook for it is in scope for this engine's board generator
// component), wired on the teacher's own shell-scripting dependency
// (github.com/yuin/gopher-lua, used by the teacher's interactive
// shell) rather than introduced from nothing.
//
// The script is expected to define a global function
// `corners_per_quadrant(quadrant)` returning an integer in [3,5] and,
// optionally, a global boolean `require_corner_goal`. Any script error
// or out-of-range return falls back to the classic default of
// frand-chosen 3-5.
type LuaGenerator struct {
	script string
}

// NewLuaGenerator stores script; GeneratePosition runs it in a fresh
// VM on every call so a script with internal randomness (Lua's
// math.random, seeded independently per VM per spec.md's
// "independent sequences if randomized" rule) doesn't leak state
// across rounds.
func NewLuaGenerator(script string) *LuaGenerator {
	return &LuaGenerator{script: script}
}

func (g *LuaGenerator) GeneratePosition() (position.Position, *solution.Solution) {
	wb := board.Empty()
	addCentralBox(&wb)
	addEdgeWalls(&wb)

	cornersPerQuadrant, requireCornerGoal := g.evalScript()
	order := []int{0, 1, 2, 3}
	frand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, qi := range order {
		addCornersInRange(&wb, cornersPerQuadrant(qi), quadrants[qi])
	}

	for attempt := 0; ; attempt++ {
		squares := sampleGoalAndActorSquares()
		goal := squares[0]
		if !requireCornerGoal || isCornerGoal(wb, goal) || attempt >= maxGoalRejectionAttempts {
			return position.Position{
				WalledBoard: wb,
				Actors:      position.ActorSquares{squares[1], squares[2], squares[3], squares[4]},
				Goal:        goal,
			}, nil
		}
	}
}

// evalScript runs g.script in a fresh VM and extracts the tunables,
// falling back to the classic defaults (3-5 random corners, no corner
// requirement) on any script error.
func (g *LuaGenerator) evalScript() (cornersPerQuadrant func(quadrant int) int, requireCornerGoal bool) {
	fallback := func(int) int { return 3 + frand.Intn(3) }

	// The VM stays open on success: the returned closure calls into it.
	l := lua.NewState()
	if err := l.DoString(g.script); err != nil {
		l.Close()
		return fallback, false
	}

	requireCornerGoal = lua.LVAsBool(l.GetGlobal("require_corner_goal"))

	fn, ok := l.GetGlobal("corners_per_quadrant").(*lua.LFunction)
	if !ok {
		l.Close()
		return fallback, requireCornerGoal
	}
	return func(quadrant int) int {
		if err := l.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(quadrant)); err != nil {
			return fallback(quadrant)
		}
		ret := l.Get(-1)
		l.Pop(1)
		n, ok := ret.(lua.LNumber)
		if !ok {
			return fallback(quadrant)
		}
		v := int(n)
		if v < 3 || v > 5 {
			return fallback(quadrant)
		}
		return v
	}, requireCornerGoal
}

// Validate reports an error from running script without generating a
// board, so a caller can check a user-authored script before wiring it
// into a room.
func Validate(script string) error {
	l := lua.NewState()
	defer l.Close()
	if err := l.DoString(script); err != nil {
		return fmt.Errorf("generator: lua: %w", err)
	}
	return nil
}
