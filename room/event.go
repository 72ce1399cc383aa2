package room

import "github.com/bluebear94/inertia/solution"

// Event is the sealed union of every event a room can receive. Each
// concrete event type implements it with an unexported marker method,
// so only this package can add variants — the same closed-world
// assumption Apply's exhaustive (state, event) switch relies on.
type Event interface {
	isRoomEvent()
}

// Connect adds or re-admits a player to the room's roster, valid in
// every state that carries a RoomMeta.
type Connect struct {
	PlayerID     PlayerID
	PlayerName   PlayerName
	ReconnectKey ReconnectKey
}

// SoftDisconnect marks a player disconnected without forgetting their
// roster entry, so they can reconnect later with a matching key.
type SoftDisconnect struct {
	PlayerID PlayerID
}

// HardDisconnect removes a player's roster entry outright.
type HardDisconnect struct {
	PlayerID PlayerID
}

// StartRound advances RoundSummary into RoundStart by generating a
// new board.
type StartRound struct{}

// MakeBid places or updates a bid.
type MakeBid struct {
	PlayerID PlayerID
	BidValue uint16
}

// ReadyBid marks a bid ready; if every connected player is then ready,
// bidding is finalized automatically (spec.md's auto-promotion rule).
type ReadyBid struct {
	PlayerID PlayerID
}

// UnreadyBid is the inverse of ReadyBid.
type UnreadyBid struct {
	PlayerID PlayerID
}

// LockInBid promotes a bid to its ready variant without triggering the
// all-ready auto-promotion check ReadyBid performs — the distinction
// spec.md's transition table draws between the two events.
type LockInBid struct {
	PlayerID PlayerID
}

// FinalizeBids ends bidding early (by timeout or explicit request),
// electing the best prospective bid as solver if one exists.
type FinalizeBids struct{}

// UpdateSolution replaces the in-progress solution attempt.
type UpdateSolution struct {
	Solution solution.Solution
}

// YieldSolve gives up the current solve attempt, failing the current
// solver's bid and electing the next one.
type YieldSolve struct {
	PlayerID PlayerID
}

func (Connect) isRoomEvent()        {}
func (SoftDisconnect) isRoomEvent() {}
func (HardDisconnect) isRoomEvent() {}
func (StartRound) isRoomEvent()     {}
func (MakeBid) isRoomEvent()        {}
func (ReadyBid) isRoomEvent()       {}
func (UnreadyBid) isRoomEvent()     {}
func (LockInBid) isRoomEvent()      {}
func (FinalizeBids) isRoomEvent()   {}
func (UpdateSolution) isRoomEvent() {}
func (YieldSolve) isRoomEvent()     {}
