// Package wire defines the client↔server message taxonomy and its
// tagged-union JSON codec, grounded on message/from_client.rs and
// message/to_client.rs's #[serde(tag = "type", content = "content")]
// enums.
package wire

import "github.com/bluebear94/inertia/solution"

// ClientMessage is the sealed union of every message a client may send.
type ClientMessage interface {
	clientMessageType() string
}

// ExplicitPing requests an ExplicitPong, independent of any transport-
// level keepalive.
type ExplicitPing struct{}

// Rename changes the sender's display name without otherwise touching
// room membership.
type Rename struct {
	PlayerName string `json:"player_name"`
}

// Join registers (or reconnects) a player to a room. PlayerReconnectKey
// must match the key on file when PlayerID already has a roster entry.
// MinDifficulty and MaxDifficulty are optional corpus-bucket bounds
// (see corpus.NewBoundedRandomReader); session.HandleJoin does not
// read them.
type Join struct {
	PlayerName         string               `json:"player_name"`
	PlayerID           uint64               `json:"player_id"`
	PlayerReconnectKey uint64               `json:"player_reconnect_key"`
	RoomID             uint64               `json:"room_id"`
	MinDifficulty      *solution.Difficulty `json:"min_difficulty,omitempty"`
	MaxDifficulty      *solution.Difficulty `json:"max_difficulty,omitempty"`
}

// StartRound requests a transition out of RoundSummary.
type StartRound struct{}

// Bid places or updates the sender's bid for the current round.
type Bid struct {
	BidValue uint16 `json:"bid_value"`
}

// LockInBid promotes the sender's bid to ready without triggering
// all-ready auto-promotion.
type LockInBid struct{}

// ReadyBid marks the sender's bid ready, possibly ending bidding if
// every other player is also ready.
type ReadyBid struct{}

// UnreadyBid is the inverse of ReadyBid.
type UnreadyBid struct{}

// UpdateSolution submits the sender's in-progress attempt. The solver
// checks it against the board and, if it solves the board, ends the
// round.
type UpdateSolution struct {
	Solution solution.Solution `json:"solution"`
}

// GiveUpSolve yields the current solve attempt to the next bidder.
type GiveUpSolve struct{}

func (ExplicitPing) clientMessageType() string   { return "ExplicitPing" }
func (Rename) clientMessageType() string         { return "Rename" }
func (Join) clientMessageType() string           { return "Join" }
func (StartRound) clientMessageType() string     { return "StartRound" }
func (Bid) clientMessageType() string            { return "Bid" }
func (LockInBid) clientMessageType() string      { return "LockInBid" }
func (ReadyBid) clientMessageType() string       { return "ReadyBid" }
func (UnreadyBid) clientMessageType() string     { return "UnreadyBid" }
func (UpdateSolution) clientMessageType() string { return "UpdateSolution" }
func (GiveUpSolve) clientMessageType() string    { return "GiveUpSolve" }
