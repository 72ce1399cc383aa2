package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeBidStrictlyDecreasing(t *testing.T) {
	l := NewLedger[string]()

	require.NoError(t, l.MakeBid("p1", 10))
	assert.Equal(t, PlayerBid{Kind: KindProspective, Value: 10, Order: 0}, l.Get("p1"))

	require.NoError(t, l.MakeBid("p1", 5))
	assert.Equal(t, PlayerBid{Kind: KindProspective, Value: 5, Order: 1}, l.Get("p1"))

	err := l.MakeBid("p1", 5)
	assert.ErrorIs(t, err, ErrMakeBid)

	err = l.MakeBid("p1", 6)
	assert.ErrorIs(t, err, ErrMakeBid)
}

func TestReadyUnreadyRoundTrip(t *testing.T) {
	l := NewLedger[string]()

	require.NoError(t, l.ReadyBid("p1"))
	assert.Equal(t, KindNoneReady, l.Get("p1").Kind)
	require.NoError(t, l.UnreadyBid("p1"))
	assert.Equal(t, KindNone, l.Get("p1").Kind)

	require.NoError(t, l.MakeBid("p1", 3))
	require.NoError(t, l.ReadyBid("p1"))
	assert.Equal(t, PlayerBid{Kind: KindProspectiveReady, Value: 3, Order: 0}, l.Get("p1"))

	err := l.ReadyBid("p1")
	assert.ErrorIs(t, err, ErrReadyBid)

	require.NoError(t, l.UnreadyBid("p1"))
	assert.Equal(t, PlayerBid{Kind: KindProspective, Value: 3, Order: 0}, l.Get("p1"))
}

func TestFailIsTerminal(t *testing.T) {
	l := NewLedger[string]()
	require.NoError(t, l.MakeBid("p1", 4))
	l.Fail("p1")
	assert.Equal(t, PlayerBid{Kind: KindFailed, Value: 4}, l.Get("p1"))
	assert.False(t, l.Get("p1").IsProspective())
}

// TestGetNextSolverTieBroken reproduces spec.md scenario 6: three
// players bid the identical value in a fixed order; GetNextSolver must
// prefer the earliest bid, and after each is failed in turn the next
// earliest becomes the solver, finally returning none.
func TestGetNextSolverTieBroken(t *testing.T) {
	l := NewLedger[string]()
	require.NoError(t, l.MakeBid("p3", 5))
	require.NoError(t, l.MakeBid("p1", 5))
	require.NoError(t, l.MakeBid("p2", 5))

	solver, ok := l.GetNextSolver()
	require.True(t, ok)
	assert.Equal(t, "p3", solver)

	l.Fail("p3")
	solver, ok = l.GetNextSolver()
	require.True(t, ok)
	assert.Equal(t, "p1", solver)

	l.Fail("p1")
	solver, ok = l.GetNextSolver()
	require.True(t, ok)
	assert.Equal(t, "p2", solver)

	l.Fail("p2")
	_, ok = l.GetNextSolver()
	assert.False(t, ok)
}

func TestAllReady(t *testing.T) {
	l := NewLedger[string]()
	require.NoError(t, l.MakeBid("p1", 4))
	require.NoError(t, l.MakeBid("p2", 6))
	assert.False(t, l.AllReady())

	require.NoError(t, l.ReadyBid("p1"))
	assert.False(t, l.AllReady())

	require.NoError(t, l.ReadyBid("p2"))
	assert.True(t, l.AllReady())
}
