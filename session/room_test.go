package session

import (
	"testing"
	"time"

	"github.com/bluebear94/inertia/board"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/solution"
)

// stubGenerator returns the same fixed (solved-goal-at-actor) position
// every time, enough to exercise a room's transitions without pulling
// in the real board generator.
type stubGenerator struct{}

func (stubGenerator) GeneratePosition() (position.Position, *solution.Solution) {
	return position.Position{WalledBoard: board.Empty()}, nil
}

func newTestRoom(clock Clock) *Room {
	return newRoom(1, stubGenerator{}, clock, NewLocalBroadcaster(), nil)
}

func TestRoomApplyConnectAddsPlayerAndBroadcasts(t *testing.T) {
	r := newTestRoom(newFakeClock(time.Unix(0, 0)))
	sub, unsub := r.Subscribe()
	defer unsub()

	result := r.Apply(room.Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 42})
	if result.Err != nil {
		t.Fatalf("Connect failed: %v", result.Err)
	}
	meta, ok := result.State.Meta()
	if !ok || len(meta.PlayerInfo) != 1 {
		t.Fatalf("expected one roster entry, got %+v", meta)
	}

	select {
	case <-sub:
	default:
		t.Fatal("expected a broadcast snapshot after Connect")
	}
}

func TestRoomSchedulesBiddingCountdownOnRoundStart(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	r := newTestRoom(clock)

	r.Apply(room.Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 1})
	result := r.Apply(room.StartRound{})
	if result.State.Kind != room.StateRoundStart {
		t.Fatalf("expected RoundStart, got %s", result.State.Kind)
	}

	r.mu.Lock()
	deadline := r.countdownDeadline
	r.mu.Unlock()
	if !deadline.Equal(time.Unix(0, 0).Add(biddingCountdown)) {
		t.Fatalf("deadline = %v, want start+%v", deadline, biddingCountdown)
	}

	// Firing the countdown with no bids placed should finalize straight
	// back to RoundSummary, per applyFinalizeBidsFromStart.
	clock.fireLast()
	if got := r.State().Kind; got != room.StateRoundSummary {
		t.Fatalf("after countdown fired, state = %s, want RoundSummary", got)
	}
}

func TestRoomResetsCountdownOnFirstBid(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	r := newTestRoom(clock)

	r.Apply(room.Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 1})
	r.Apply(room.StartRound{})
	result := r.Apply(room.MakeBid{PlayerID: 1, BidValue: 5})
	if result.State.Kind != room.StateRoundBidding {
		t.Fatalf("expected RoundBidding, got %s", result.State.Kind)
	}

	r.mu.Lock()
	deadline := r.countdownDeadline
	r.mu.Unlock()
	if !deadline.Equal(time.Unix(0, 0).Add(biddingCountdownReset)) {
		t.Fatalf("deadline = %v, want start+%v", deadline, biddingCountdownReset)
	}
}

func TestRoomSchedulesSolvingCountdownOnceSolverElected(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	r := newTestRoom(clock)

	r.Apply(room.Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 1})
	r.Apply(room.StartRound{})
	r.Apply(room.MakeBid{PlayerID: 1, BidValue: 5})
	result := r.Apply(room.ReadyBid{PlayerID: 1})
	if result.State.Kind != room.StateRoundSolving {
		t.Fatalf("expected RoundSolving once the lone bidder readies, got %s", result.State.Kind)
	}

	r.mu.Lock()
	deadline := r.countdownDeadline
	solver := r.solvingFor
	r.mu.Unlock()
	if solver == nil || *solver != room.PlayerID(1) {
		t.Fatalf("solvingFor = %v, want 1", solver)
	}
	if !deadline.Equal(time.Unix(0, 0).Add(solvingCountdown)) {
		t.Fatalf("deadline = %v, want start+%v", deadline, solvingCountdown)
	}
}

func TestRoomClosesWhenLastPlayerHardDisconnects(t *testing.T) {
	r := newTestRoom(newFakeClock(time.Unix(0, 0)))
	r.Apply(room.Connect{PlayerID: 1, PlayerName: "alice", ReconnectKey: 1})

	result := r.Apply(room.HardDisconnect{PlayerID: 1})
	if result.State.Kind != room.StateClosed {
		t.Fatalf("expected Closed once the last player disconnects, got %s", result.State.Kind)
	}
}
