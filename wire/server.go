package wire

import (
	"sort"

	"github.com/bluebear94/inertia/bid"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/solution"
)

// ServerMessage is the sealed union of every message the server may
// send.
type ServerMessage interface {
	serverMessageType() string
}

// RoomUpdate carries a full-state snapshot, sent after every state
// change per spec.md §4.6/§6.
type RoomUpdate struct {
	Room RoomSnapshot `json:"room"`
}

// CountdownUpdate reports the time remaining on the room's active
// countdown, emitted whenever one is scheduled or reset.
type CountdownUpdate struct {
	ServerTimeLeftMillis int64 `json:"server_time_left_millis"`
}

// ExplicitPong answers an ExplicitPing.
type ExplicitPong struct{}

func (RoomUpdate) serverMessageType() string      { return "RoomUpdate" }
func (CountdownUpdate) serverMessageType() string { return "CountdownUpdate" }
func (ExplicitPong) serverMessageType() string    { return "ExplicitPong" }

// RoomSnapshot is the wire-facing projection of room.RoomState,
// grounded on state/room_data.rs's RoomData/RoomState. It flattens the
// roster into parallel Players/PlayerScores lists (matching the
// original's Vec<PlayerName>/Vec<PlayerScore> split) rather than
// exposing the engine's internal map, and carries the compressed board
// encoding (§6) instead of a structured one.
type RoomSnapshot struct {
	RoomID               uint64            `json:"room_id"`
	UpdatedAtEpochMillis int64             `json:"updated_at_epoch_millis"`
	Players              []PlayerName      `json:"players"`
	PlayerScores         []PlayerScore     `json:"player_scores"`
	RoundNumber          int               `json:"round_number"`
	State                RoomStateSnapshot `json:"state"`
}

// PlayerName pairs a roster id with its current display name.
type PlayerName struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// PlayerScore pairs a roster id with its round-win count.
type PlayerScore struct {
	ID    uint64 `json:"id"`
	Score int    `json:"score"`
}

// PlayerBidSnapshot is the wire view of one player's bid.rs PlayerBid:
// present only once a bid has been placed, per the original's
// Option<Bid>; Ready surfaces the ledger's ready flag, which the
// original's retrieved snapshot did not carry but spec.md's transition
// table requires clients be able to render.
type PlayerBidSnapshot struct {
	PlayerID uint64  `json:"player"`
	BidValue *uint16 `json:"bid,omitempty"`
	Ready    bool    `json:"ready"`
	Failed   bool    `json:"failed"`
}

// RoomStateSnapshot is the tagged union matching room_data.rs's
// `#[serde(tag = "type", content = "content")]` RoomState enum,
// extended with the RoundSummary content field the engine carries
// (last solver/solution) that the original's bare `RoundSummary` unit
// variant omitted.
type RoomStateSnapshot struct {
	Type    string                    `json:"type"`
	Content *RoomStateContentSnapshot `json:"content,omitempty"`
}

// RoomStateContentSnapshot holds the fields relevant to whichever
// variant Type names; fields irrelevant to that variant are left zero
// and omitted on the wire.
type RoomStateContentSnapshot struct {
	Board        string              `json:"board,omitempty"`
	PlayerBids   []PlayerBidSnapshot `json:"player_bids,omitempty"`
	Solver       *uint64             `json:"solver,omitempty"`
	Solution     []SolutionStep      `json:"solution,omitempty"`
	LastSolver   *uint64             `json:"last_solver,omitempty"`
	LastSolution []SolutionStep      `json:"last_solution,omitempty"`
}

// SolutionStep is the wire form of one solution.Step.
type SolutionStep struct {
	Actor     uint8 `json:"actor"`
	Direction uint8 `json:"direction"`
}

func solutionSteps(s solution.Solution) []SolutionStep {
	if s == nil {
		return nil
	}
	out := make([]SolutionStep, len(s))
	for i, step := range s {
		out[i] = SolutionStep{Actor: step.Actor, Direction: uint8(step.Direction)}
	}
	return out
}

func encodeBoard(p position.Position) string {
	return p.EncodeB64()
}

func bidSnapshots(ledger *room.Ledger, meta room.RoomMeta) []PlayerBidSnapshot {
	if ledger == nil {
		return nil
	}
	bids := ledger.All()
	out := make([]PlayerBidSnapshot, 0, len(meta.PlayerInfo))
	for id := range meta.PlayerInfo {
		b := bids[room.PlayerID(id)]
		snap := PlayerBidSnapshot{PlayerID: uint64(id)}
		switch b.Kind {
		case bid.KindNoneReady:
			snap.Ready = true
		case bid.KindProspective:
			v := b.Value
			snap.BidValue = &v
		case bid.KindProspectiveReady:
			v := b.Value
			snap.BidValue = &v
			snap.Ready = true
		case bid.KindFailed:
			v := b.Value
			snap.BidValue = &v
			snap.Failed = true
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// SnapshotRoomState projects a room.RoomState into its wire form.
// updatedAtEpochMillis is supplied by the caller (typically the
// session runtime, C10) rather than read from the clock here, keeping
// this package free of time-source side effects.
func SnapshotRoomState(roomID room.RoomID, state room.RoomState, updatedAtEpochMillis int64) RoomSnapshot {
	meta, _ := state.Meta()

	players := make([]PlayerName, 0, len(meta.PlayerInfo))
	scores := make([]PlayerScore, 0, len(meta.PlayerInfo))
	for id, info := range meta.PlayerInfo {
		players = append(players, PlayerName{ID: uint64(id), Name: string(info.Name)})
		scores = append(scores, PlayerScore{ID: uint64(id), Score: info.Score})
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	sort.Slice(scores, func(i, j int) bool { return scores[i].ID < scores[j].ID })

	snapshot := RoomSnapshot{
		RoomID:               uint64(roomID),
		UpdatedAtEpochMillis: updatedAtEpochMillis,
		Players:              players,
		PlayerScores:         scores,
		RoundNumber:          meta.RoundNumber,
	}

	switch state.Kind {
	case room.StateClosed:
		snapshot.State = RoomStateSnapshot{Type: "Closed"}
	case room.StateRoundSummary:
		s := state.Summary
		content := &RoomStateContentSnapshot{}
		if s.LastBoard != nil {
			content.Board = encodeBoard(*s.LastBoard)
		}
		if s.LastSolver != nil {
			v := uint64(*s.LastSolver)
			content.LastSolver = &v
		}
		if s.LastSolution != nil {
			content.LastSolution = solutionSteps(*s.LastSolution)
		}
		snapshot.State = RoomStateSnapshot{Type: "RoundSummary", Content: content}
	case room.StateRoundStart:
		s := state.Start
		snapshot.State = RoomStateSnapshot{Type: "RoundStart", Content: &RoomStateContentSnapshot{
			Board: encodeBoard(s.Board),
		}}
	case room.StateRoundBidding:
		s := state.Bidding
		snapshot.State = RoomStateSnapshot{Type: "RoundBidding", Content: &RoomStateContentSnapshot{
			Board:      encodeBoard(s.Board),
			PlayerBids: bidSnapshots(s.PlayerBids, s.Meta),
		}}
	case room.StateRoundSolving:
		s := state.Solving
		solver := uint64(s.Solver)
		snapshot.State = RoomStateSnapshot{Type: "RoundSolving", Content: &RoomStateContentSnapshot{
			Board:      encodeBoard(s.Board),
			PlayerBids: bidSnapshots(s.PlayerBids, s.Meta),
			Solver:     &solver,
			Solution:   solutionSteps(s.SolutionInProgress),
		}}
	default:
		snapshot.State = RoomStateSnapshot{Type: "Lobby"}
	}

	return snapshot
}
