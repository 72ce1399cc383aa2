package room

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/bluebear94/inertia/bid"
	"github.com/bluebear94/inertia/position"
)

// EventResult is Apply's return value: the resulting state (always
// valid, even on error — state-machine errors are non-fatal per
// spec.md §7) and an optional error describing why the event didn't
// do what was asked.
type EventResult struct {
	State RoomState
	Err   error
}

var nameFolder = cases.Fold()

func foldName(name PlayerName) string {
	return nameFolder.String(string(name))
}

// Apply runs one event through the state machine. It is pure: it has
// no side effects beyond its return value, and applying the same
// (state, event) pair twice yields identical results (spec.md §8's
// "state machine purity" property).
func Apply(state RoomState, event Event) EventResult {
	switch ev := event.(type) {
	case Connect:
		return applyConnect(state, ev)
	case SoftDisconnect:
		return applyDisconnect(state, ev.PlayerID, false)
	case HardDisconnect:
		return applyDisconnect(state, ev.PlayerID, true)
	case StartRound:
		if state.Kind == StateRoundSummary {
			return applyStartRound(*state.Summary)
		}
	case MakeBid:
		switch state.Kind {
		case StateRoundStart:
			return applyMakeBidFromStart(*state.Start, ev)
		case StateRoundBidding:
			return applyMakeBidFromBidding(*state.Bidding, ev)
		}
	case ReadyBid:
		if state.Kind == StateRoundBidding {
			return applyReadyBid(*state.Bidding, ev)
		}
	case UnreadyBid:
		if state.Kind == StateRoundBidding {
			return applyUnreadyBid(*state.Bidding, ev)
		}
	case LockInBid:
		if state.Kind == StateRoundBidding {
			return applyLockInBid(*state.Bidding, ev)
		}
	case FinalizeBids:
		switch state.Kind {
		case StateRoundStart:
			return applyFinalizeBidsFromStart(*state.Start)
		case StateRoundBidding:
			return applyFinalizeBidsFromBidding(*state.Bidding)
		}
	case UpdateSolution:
		if state.Kind == StateRoundSolving {
			return applyUpdateSolution(*state.Solving, ev)
		}
	case YieldSolve:
		if state.Kind == StateRoundSolving {
			return applyYieldSolve(*state.Solving, ev)
		}
	}
	return EventResult{State: state, Err: fmt.Errorf("%w: state %s, event %T", ErrIncompatibleState, state.Kind, event)}
}

// applyConnect adds or re-admits a player, valid in any state with a
// RoomMeta. Grounded on connect.rs's room_meta_connect.
func applyConnect(state RoomState, ev Connect) EventResult {
	meta, ok := state.Meta()
	if !ok {
		return EventResult{State: state, Err: fmt.Errorf("%w: state %s, event Connect", ErrIncompatibleState, state.Kind)}
	}
	if ev.PlayerName == "" {
		return EventResult{State: state, Err: ErrInvalidName}
	}

	folded := foldName(ev.PlayerName)
	for id, info := range meta.PlayerInfo {
		if id != ev.PlayerID && foldName(info.Name) == folded {
			return EventResult{State: state, Err: ErrUsernameTaken}
		}
	}

	if existing, found := meta.PlayerInfo[ev.PlayerID]; found {
		if existing.ReconnectKey != ev.ReconnectKey {
			return EventResult{State: state, Err: ErrBadReconnectKey}
		}
		existing.Connected = true
		existing.Name = ev.PlayerName
		existing.LastSeenRound = meta.RoundNumber
		meta.PlayerInfo[ev.PlayerID] = existing
	} else {
		meta.PlayerInfo[ev.PlayerID] = PlayerInfo{
			ID:            ev.PlayerID,
			Name:          ev.PlayerName,
			ReconnectKey:  ev.ReconnectKey,
			LastSeenRound: meta.RoundNumber,
			Connected:     true,
		}
	}
	return EventResult{State: state.withMeta(meta)}
}

// applyDisconnect handles both SoftDisconnect and HardDisconnect,
// closing the room once no connected player remains. Grounded on
// disconnect.rs.
func applyDisconnect(state RoomState, playerID PlayerID, hard bool) EventResult {
	meta, ok := state.Meta()
	if !ok {
		eventName := "SoftDisconnect"
		if hard {
			eventName = "HardDisconnect"
		}
		return EventResult{State: state, Err: fmt.Errorf("%w: state %s, event %s", ErrIncompatibleState, state.Kind, eventName)}
	}

	if hard {
		delete(meta.PlayerInfo, playerID)
	} else if info, found := meta.PlayerInfo[playerID]; found {
		info.Connected = false
		meta.PlayerInfo[playerID] = info
	}

	if !meta.anyConnected() {
		return EventResult{State: RoomState{Kind: StateClosed}}
	}
	return EventResult{State: state.withMeta(meta)}
}

// applyStartRound generates a new board and moves RoundSummary into
// RoundStart. Grounded on start_round.rs.
func applyStartRound(state RoundSummary) EventResult {
	meta := state.Meta
	meta.RoundNumber++
	for id, info := range meta.PlayerInfo {
		info.LastSeenRound = meta.RoundNumber
		meta.PlayerInfo[id] = info
	}
	board, optimal := meta.Generator.GeneratePosition()
	return EventResult{State: RoomState{
		Kind: StateRoundStart,
		Start: &RoundStart{
			Meta:            meta,
			Board:           board,
			OptimalSolution: optimal,
		},
	}}
}

// applyMakeBidFromStart is the first bid of a round, which also
// creates the bidding ledger. Grounded on make_bid.rs's
// round_start_make_bid.
func applyMakeBidFromStart(state RoundStart, ev MakeBid) EventResult {
	ledger := bid.NewLedger[PlayerID]()
	_ = ledger.MakeBid(ev.PlayerID, ev.BidValue)
	return EventResult{State: RoomState{
		Kind: StateRoundBidding,
		Bidding: &RoundBidding{
			Meta:            state.Meta,
			Board:           state.Board,
			OptimalSolution: state.OptimalSolution,
			PlayerBids:      ledger,
		},
	}}
}

// applyMakeBidFromBidding updates the ledger with another bid, strict-
// decreasing rule and all. Grounded on make_bid.rs's
// round_bidding_make_bid.
func applyMakeBidFromBidding(state RoundBidding, ev MakeBid) EventResult {
	err := state.PlayerBids.MakeBid(ev.PlayerID, ev.BidValue)
	result := RoomState{Kind: StateRoundBidding, Bidding: &state}
	if err != nil {
		return EventResult{State: result, Err: fmt.Errorf("%w: %w", ErrMakeBid, err)}
	}
	return EventResult{State: result}
}

// applyReadyBid marks a bid ready and, if every connected player is now
// ready,
// auto-promotes out of bidding per spec.md's supplemented rule absent
// from ready_bid.rs's retrieved snapshot.
func applyReadyBid(state RoundBidding, ev ReadyBid) EventResult {
	if err := state.PlayerBids.ReadyBid(ev.PlayerID); err != nil {
		return EventResult{State: RoomState{Kind: StateRoundBidding, Bidding: &state}, Err: fmt.Errorf("%w: %w", ErrReadyBid, err)}
	}
	allReady := true
	for id, info := range state.Meta.PlayerInfo {
		kind := state.PlayerBids.Get(id).Kind
		if info.Connected && kind != bid.KindNoneReady && kind != bid.KindProspectiveReady {
			allReady = false
		}
	}
	if allReady {
		return electSolver(state)
	}
	return EventResult{State: RoomState{Kind: StateRoundBidding, Bidding: &state}}
}

// applyUnreadyBid is the inverse of applyReadyBid; unreadying never
// triggers promotion.
func applyUnreadyBid(state RoundBidding, ev UnreadyBid) EventResult {
	result := RoomState{Kind: StateRoundBidding, Bidding: &state}
	if err := state.PlayerBids.UnreadyBid(ev.PlayerID); err != nil {
		return EventResult{State: result, Err: fmt.Errorf("%w: %w", ErrUnreadyBid, err)}
	}
	return EventResult{State: result}
}

// applyLockInBid promotes a single bid to ready without checking for
// all-ready auto-promotion, the distinction spec.md's transition table
// draws against ReadyBid.
func applyLockInBid(state RoundBidding, ev LockInBid) EventResult {
	result := RoomState{Kind: StateRoundBidding, Bidding: &state}
	if err := state.PlayerBids.ReadyBid(ev.PlayerID); err != nil {
		return EventResult{State: result, Err: fmt.Errorf("%w: %v", ErrReadyBid, err)}
	}
	return EventResult{State: result}
}

// applyFinalizeBidsFromBidding ends bidding, electing a solver if any
// prospective bid remains. Grounded on finalize_bids.rs.
func applyFinalizeBidsFromBidding(state RoundBidding) EventResult {
	return electSolver(state)
}

// applyFinalizeBidsFromStart handles the case where bidding never
// began before the countdown expired: spec.md's transition table adds
// this row (the retrieved finalize_bids.rs snapshot only handles
// RoundBidding), moving straight to RoundSummary with no solver and no
// bidding history to preserve.
func applyFinalizeBidsFromStart(state RoundStart) EventResult {
	return EventResult{State: RoomState{
		Kind: StateRoundSummary,
		Summary: &RoundSummary{
			Meta:        state.Meta,
			LastBoard:   &state.Board,
			LastOptimal: state.OptimalSolution,
		},
	}}
}

// electSolver elects the lowest-(value,order) prospective bid as
// solver, or falls back to RoundSummary if none remains.
func electSolver(state RoundBidding) EventResult {
	solver, ok := state.PlayerBids.GetNextSolver()
	if !ok {
		board := state.Board
		return EventResult{State: RoomState{
			Kind: StateRoundSummary,
			Summary: &RoundSummary{
				Meta:        state.Meta,
				LastBoard:   &board,
				LastOptimal: state.OptimalSolution,
			},
		}}
	}
	return EventResult{State: RoomState{
		Kind: StateRoundSolving,
		Solving: &RoundSolving{
			Meta:            state.Meta,
			Board:           state.Board,
			OptimalSolution: state.OptimalSolution,
			PlayerBids:      state.PlayerBids,
			Solver:          solver,
		},
	}}
}

// applyUpdateSolution replaces the in-progress solution, scoring and
// ending the round if it solves the board. Grounded on
// update_solution.rs.
func applyUpdateSolution(state RoundSolving, ev UpdateSolution) EventResult {
	effectiveBid := state.PlayerBids.Get(state.Solver).EffectiveValue()
	if len(ev.Solution) > int(effectiveBid) {
		return EventResult{State: RoomState{Kind: StateRoundSolving, Solving: &state}, Err: ErrSolutionExceedsBid}
	}

	if state.Board.CheckSolution(ev.Solution) == position.Solved {
		meta := state.Meta
		info := meta.PlayerInfo[state.Solver]
		info.Score++
		meta.PlayerInfo[state.Solver] = info

		board := state.Board
		sol := ev.Solution
		solver := state.Solver
		return EventResult{State: RoomState{
			Kind: StateRoundSummary,
			Summary: &RoundSummary{
				Meta:         meta,
				LastBoard:    &board,
				LastSolution: &sol,
				LastSolver:   &solver,
				LastOptimal:  state.OptimalSolution,
			},
		}}
	}

	state.SolutionInProgress = ev.Solution
	return EventResult{State: RoomState{Kind: StateRoundSolving, Solving: &state}}
}

// applyYieldSolve fails the current solver's bid and elects the next
// one, ending the round if none remains. Grounded on yield_solve.rs.
func applyYieldSolve(state RoundSolving, ev YieldSolve) EventResult {
	result := RoomState{Kind: StateRoundSolving, Solving: &state}
	if ev.PlayerID != state.Solver {
		return EventResult{State: result, Err: ErrWrongPlayer}
	}

	state.PlayerBids.Fail(state.Solver)
	next, ok := state.PlayerBids.GetNextSolver()
	if !ok {
		board := state.Board
		return EventResult{State: RoomState{
			Kind: StateRoundSummary,
			Summary: &RoundSummary{
				Meta:        state.Meta,
				LastBoard:   &board,
				LastOptimal: state.OptimalSolution,
			},
		}}
	}
	state.Solver = next
	state.SolutionInProgress = nil
	return EventResult{State: RoomState{Kind: StateRoundSolving, Solving: &state}}
}
