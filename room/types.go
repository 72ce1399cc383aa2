// Package room implements the room state machine (C9): a pure,
// event-sourced finite-state machine governing one round's lifecycle
// (summary → start → bidding → solving → summary), bid ordering,
// solver election, scoring, and player connect/disconnect.
//
// Grounded on original_source/inertia-core/src/state/{data.rs,
// room_data.rs} for the shapes and
// original_source/inertia-core/src/state/event/*.rs for the
// transition logic, extended per spec.md §4.5 with the ReadyBid/
// UnreadyBid/LockInBid events and the auto-promotion rule that
// snapshot lacks.
package room

import (
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// PlayerID identifies a player within a room, assigned by the caller
// (the session layer) at join time.
type PlayerID uint64

// RoomID identifies a room within the session registry.
type RoomID uint64

// PlayerName is a player's chosen display name.
type PlayerName string

// ReconnectKey authenticates a reconnecting client as the same player
// that previously held a PlayerID in this room.
type ReconnectKey uint64

// PlayerInfo is one player's roster entry.
type PlayerInfo struct {
	ID            PlayerID
	Name          PlayerName
	ReconnectKey  ReconnectKey
	LastSeenRound int
	Connected     bool
	Score         int
}

// PositionGenerator produces a board for a new round. Implementations
// must be safe to call from multiple rooms concurrently and, if
// randomized, must not share sequence state across calls (the
// "generators must be cloneable and thread-shareable; clones must
// produce independent sequences if randomized" design note). A
// corpus-backed generator returns its known optimal solution alongside
// the position; a synthesized-from-scratch generator returns nil.
type PositionGenerator interface {
	GeneratePosition() (position.Position, *solution.Solution)
}

// RoomMeta is the roster and bookkeeping state carried across every
// RoomState variant except None and Closed.
type RoomMeta struct {
	RoomID      RoomID
	Generator   PositionGenerator
	PlayerInfo  map[PlayerID]PlayerInfo
	RoundNumber int
}

// anyConnected reports whether any roster entry is currently
// connected.
func (m RoomMeta) anyConnected() bool {
	for _, info := range m.PlayerInfo {
		if info.Connected {
			return true
		}
	}
	return false
}
