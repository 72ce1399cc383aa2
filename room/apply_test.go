package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/geometry"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// fixedGenerator always returns the same position, for deterministic
// tests — the room package itself never constructs boards.
type fixedGenerator struct {
	pos     position.Position
	optimal *solution.Solution
}

func (g fixedGenerator) GeneratePosition() (position.Position, *solution.Solution) {
	return g.pos, g.optimal
}

func emptySolveInOnePosition() position.Position {
	return position.Position{
		WalledBoard: board.Empty(),
		Actors:      position.ActorSquares{geometry.Square(1), geometry.Square(2), geometry.Square(3), geometry.Square(4)},
		Goal:        geometry.Square(0),
	}
}

// TestFullRound reproduces spec.md scenario 5.
func TestFullRound(t *testing.T) {
	gen := fixedGenerator{pos: emptySolveInOnePosition()}
	state := Initial(1, gen)

	const p1 PlayerID = 1

	res := Apply(state, Connect{PlayerID: p1, PlayerName: "alice", ReconnectKey: 42})
	require.NoError(t, res.Err)
	state = res.State

	res = Apply(state, StartRound{})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundStart, res.State.Kind)
	state = res.State

	res = Apply(state, MakeBid{PlayerID: p1, BidValue: 1})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundBidding, res.State.Kind)
	state = res.State

	res = Apply(state, FinalizeBids{})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundSolving, res.State.Kind)
	assert.Equal(t, p1, res.State.Solving.Solver)
	state = res.State

	sol := solution.Solution{{Actor: 0, Direction: geometry.Left}}
	res = Apply(state, UpdateSolution{Solution: sol})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundSummary, res.State.Kind)

	summary := res.State.Summary
	require.NotNil(t, summary.LastSolver)
	assert.Equal(t, p1, *summary.LastSolver)
	require.NotNil(t, summary.LastSolution)
	assert.Equal(t, sol, *summary.LastSolution)
	assert.Equal(t, 1, summary.Meta.PlayerInfo[p1].Score)
}

// TestTieBrokenBids reproduces spec.md scenario 6.
func TestTieBrokenBids(t *testing.T) {
	gen := fixedGenerator{pos: emptySolveInOnePosition()}
	state := Initial(1, gen)

	const p1, p2, p3 PlayerID = 1, 2, 3
	for _, p := range []PlayerID{p1, p2, p3} {
		res := Apply(state, Connect{PlayerID: p, PlayerName: PlayerName(string(rune('a' + p))), ReconnectKey: 1})
		require.NoError(t, res.Err)
		state = res.State
	}

	res := Apply(state, StartRound{})
	require.NoError(t, res.Err)
	state = res.State

	for _, p := range []PlayerID{p3, p1, p2} {
		res = Apply(state, MakeBid{PlayerID: p, BidValue: 5})
		require.NoError(t, res.Err)
		state = res.State
	}

	res = Apply(state, FinalizeBids{})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundSolving, res.State.Kind)
	assert.Equal(t, p3, res.State.Solving.Solver)
	state = res.State

	res = Apply(state, YieldSolve{PlayerID: p3})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundSolving, res.State.Kind)
	assert.Equal(t, p1, res.State.Solving.Solver)
	state = res.State

	res = Apply(state, YieldSolve{PlayerID: p1})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundSolving, res.State.Kind)
	assert.Equal(t, p2, res.State.Solving.Solver)
	state = res.State

	res = Apply(state, YieldSolve{PlayerID: p2})
	require.NoError(t, res.Err)
	require.Equal(t, StateRoundSummary, res.State.Kind)
	assert.Nil(t, res.State.Summary.LastSolver)
}

func TestConnectValidation(t *testing.T) {
	gen := fixedGenerator{pos: emptySolveInOnePosition()}
	state := Initial(1, gen)

	res := Apply(state, Connect{PlayerID: 1, PlayerName: "", ReconnectKey: 1})
	assert.ErrorIs(t, res.Err, ErrInvalidName)

	res = Apply(state, Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 1})
	require.NoError(t, res.Err)
	state = res.State

	res = Apply(state, Connect{PlayerID: 2, PlayerName: "Alice", ReconnectKey: 1})
	assert.ErrorIs(t, res.Err, ErrUsernameTaken)

	res = Apply(state, Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 99})
	assert.ErrorIs(t, res.Err, ErrBadReconnectKey)
}

func TestDisconnectClosesEmptyRoom(t *testing.T) {
	gen := fixedGenerator{pos: emptySolveInOnePosition()}
	state := Initial(1, gen)

	res := Apply(state, Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 1})
	require.NoError(t, res.Err)
	state = res.State

	res = Apply(state, HardDisconnect{PlayerID: 1})
	require.NoError(t, res.Err)
	assert.Equal(t, StateClosed, res.State.Kind)
}

func TestIncompatibleState(t *testing.T) {
	gen := fixedGenerator{pos: emptySolveInOnePosition()}
	state := Initial(1, gen)

	res := Apply(state, MakeBid{PlayerID: 1, BidValue: 3})
	assert.ErrorIs(t, res.Err, ErrIncompatibleState)
	assert.Equal(t, state, res.State)
}
