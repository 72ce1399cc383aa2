package room

import (
	"github.com/bluebear94/inertia/bid"
	"github.com/bluebear94/inertia/position"
	"github.com/bluebear94/inertia/solution"
)

// Ledger is the bid ledger type this package's rooms use, fixing the
// bid package's generic Ledger to this package's concrete PlayerID.
type Ledger = bid.Ledger[PlayerID]

// RoundSummary is the state between rounds: either before the first
// round (last fields nil) or after one completes.
type RoundSummary struct {
	Meta           RoomMeta
	LastBoard      *position.Position
	LastSolution   *solution.Solution
	LastSolver     *PlayerID
	LastOptimal    *solution.Solution
}

// RoundStart is the state immediately after a round's board has been
// generated, before any bid has been placed.
type RoundStart struct {
	Meta           RoomMeta
	Board          position.Position
	OptimalSolution *solution.Solution
}

// RoundBidding is the state while players are placing and readying
// bids.
type RoundBidding struct {
	Meta            RoomMeta
	Board           position.Position
	OptimalSolution *solution.Solution
	PlayerBids      *Ledger
}

// RoundSolving is the state while the elected solver attempts a
// solution.
type RoundSolving struct {
	Meta               RoomMeta
	Board              position.Position
	OptimalSolution    *solution.Solution
	PlayerBids         *Ledger
	Solver             PlayerID
	SolutionInProgress solution.Solution
}

// StateKind discriminates the RoomState tagged variant.
type StateKind uint8

const (
	// StateNone is the zero StateKind; no transition produces it.
	StateNone StateKind = iota
	// StateClosed is terminal: the room is ready for registry removal.
	StateClosed
	StateRoundSummary
	StateRoundStart
	StateRoundBidding
	StateRoundSolving
)

func (k StateKind) String() string {
	switch k {
	case StateNone:
		return "None"
	case StateClosed:
		return "Closed"
	case StateRoundSummary:
		return "RoundSummary"
	case StateRoundStart:
		return "RoundStart"
	case StateRoundBidding:
		return "RoundBidding"
	case StateRoundSolving:
		return "RoundSolving"
	default:
		return "Invalid"
	}
}

// RoomState is the room's full current state: a tagged union over the
// six variants of spec.md §3's RoomState. For the four round variants
// exactly one of the pointer fields is non-nil, matching Kind; None and
// Closed carry no pointer field.
type RoomState struct {
	Kind     StateKind
	Summary  *RoundSummary
	Start    *RoundStart
	Bidding  *RoundBidding
	Solving  *RoundSolving
}

// Initial returns the state a freshly created room starts in: an
// empty RoundSummary with no history, mirroring RoomState::initial.
func Initial(roomID RoomID, generator PositionGenerator) RoomState {
	return RoomState{
		Kind: StateRoundSummary,
		Summary: &RoundSummary{
			Meta: RoomMeta{
				RoomID:     roomID,
				Generator:  generator,
				PlayerInfo: make(map[PlayerID]PlayerInfo),
			},
		},
	}
}

// Meta returns the embedded RoomMeta for any variant that carries one,
// and false for None/Closed.
func (s RoomState) Meta() (RoomMeta, bool) {
	switch s.Kind {
	case StateRoundSummary:
		return s.Summary.Meta, true
	case StateRoundStart:
		return s.Start.Meta, true
	case StateRoundBidding:
		return s.Bidding.Meta, true
	case StateRoundSolving:
		return s.Solving.Meta, true
	default:
		return RoomMeta{}, false
	}
}

// withMeta returns a copy of s with its embedded RoomMeta replaced,
// preserving every other field of the active variant. If s carries no
// meta (None/Closed) it returns s unchanged — callers only use it after
// a successful Meta() lookup on the same state.
func (s RoomState) withMeta(meta RoomMeta) RoomState {
	switch s.Kind {
	case StateRoundSummary:
		next := *s.Summary
		next.Meta = meta
		return RoomState{Kind: StateRoundSummary, Summary: &next}
	case StateRoundStart:
		next := *s.Start
		next.Meta = meta
		return RoomState{Kind: StateRoundStart, Start: &next}
	case StateRoundBidding:
		next := *s.Bidding
		next.Meta = meta
		return RoomState{Kind: StateRoundBidding, Bidding: &next}
	case StateRoundSolving:
		next := *s.Solving
		next.Meta = meta
		return RoomState{Kind: StateRoundSolving, Solving: &next}
	default:
		return s
	}
}
