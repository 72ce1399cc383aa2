package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/wire"
)

// Countdown durations per spec.md §4.6: 30s to finalize bidding from a
// fresh RoundStart, reset to 60s once a first bid moves the room into
// RoundBidding, and 60s for a solver to either solve or yield.
const (
	biddingCountdown      = 30 * time.Second
	biddingCountdownReset = 60 * time.Second
	solvingCountdown      = 60 * time.Second
)

// Room is the runtime wrapper around a room.RoomState: the state
// itself, its countdown, and the broadcaster used to publish snapshots
// after every transition. Grounded on inertia-async-server/src/
// state.rs's Room{utils, state: Mutex<RoomState>}.
type Room struct {
	id          room.RoomID
	clock       Clock
	broadcaster Broadcaster
	onClosed    func()

	mu                sync.Mutex
	state             room.RoomState
	countdown         Timer
	countdownDeadline time.Time
	previousKind      room.StateKind
	solvingFor        *room.PlayerID
}

func newRoom(id room.RoomID, generator room.PositionGenerator, clock Clock, broadcaster Broadcaster, onClosed func()) *Room {
	initial := room.Initial(id, generator)
	return &Room{
		id:           id,
		clock:        clock,
		broadcaster:  broadcaster,
		onClosed:     onClosed,
		state:        initial,
		previousKind: initial.Kind,
	}
}

// ID returns the room's identifier.
func (r *Room) ID() room.RoomID { return r.id }

// State returns a snapshot of the room's current state.
func (r *Room) State() room.RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Subscribe registers a new broadcast subscriber for this room.
func (r *Room) Subscribe() (<-chan []byte, func()) {
	return r.broadcaster.Subscribe(r.id)
}

// Apply runs ev through the room's state machine under the room's
// write lock, reschedules any countdown the new state requires, and
// broadcasts the resulting snapshot before releasing the lock —
// matching spec.md §5's "event applications hold this lock for the
// duration of one pure transition plus the broadcast send" ordering
// guarantee. If the transition closes the room, onClosed runs before
// returning.
func (r *Room) Apply(ev room.Event) room.EventResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := room.Apply(r.state, ev)
	r.state = result.State
	r.rescheduleCountdownLocked()
	r.broadcastSnapshotLocked()

	if r.state.Kind == room.StateClosed {
		r.clearCountdownLocked()
		if r.onClosed != nil {
			r.onClosed()
		}
	}
	return result
}

// rescheduleCountdownLocked implements §4.6's countdown rules: a fresh
// entry into RoundStart schedules the 30s finalize timer; a fresh
// entry into RoundBidding (the first bid) resets it to 60s; entering
// RoundSolving with a solver different from the last one scheduled
// restarts the 60s yield timer. Re-applying an event that leaves the
// room in the same variant with the same solver does not touch an
// already-running timer.
func (r *Room) rescheduleCountdownLocked() {
	entering := r.state.Kind != r.previousKind
	switch r.state.Kind {
	case room.StateRoundStart:
		if entering {
			r.replaceCountdownLocked(biddingCountdown, room.FinalizeBids{})
		}
	case room.StateRoundBidding:
		if entering {
			r.replaceCountdownLocked(biddingCountdownReset, room.FinalizeBids{})
		}
	case room.StateRoundSolving:
		solver := r.state.Solving.Solver
		if r.solvingFor == nil || *r.solvingFor != solver {
			r.replaceCountdownLocked(solvingCountdown, room.YieldSolve{PlayerID: solver})
			r.solvingFor = &solver
		}
	default:
		r.clearCountdownLocked()
	}
	if r.state.Kind != room.StateRoundSolving {
		r.solvingFor = nil
	}
	r.previousKind = r.state.Kind
}

func (r *Room) replaceCountdownLocked(d time.Duration, ev room.Event) {
	r.clearCountdownLocked()
	deadline := r.clock.Now().Add(d)
	r.countdownDeadline = deadline
	r.countdown = r.clock.AfterFunc(d, func() {
		r.Apply(ev)
	})
	r.broadcastCountdownLocked(deadline)
}

func (r *Room) clearCountdownLocked() {
	if r.countdown != nil {
		r.countdown.Stop()
		r.countdown = nil
	}
}

func (r *Room) broadcastSnapshotLocked() {
	snapshot := wire.SnapshotRoomState(r.id, r.state, r.clock.Now().UnixMilli())
	payload, err := wire.EncodeServerMessage(wire.RoomUpdate{Room: snapshot})
	if err != nil {
		log.Error().Err(err).Uint64("room", uint64(r.id)).Msg("encode-room-update-failed")
		return
	}
	if err := r.broadcaster.Publish(r.id, payload); err != nil {
		log.Warn().Err(err).Uint64("room", uint64(r.id)).Msg("broadcast-publish-failed")
	}
}

func (r *Room) broadcastCountdownLocked(deadline time.Time) {
	remaining := deadline.Sub(r.clock.Now())
	payload, err := wire.EncodeServerMessage(wire.CountdownUpdate{ServerTimeLeftMillis: remaining.Milliseconds()})
	if err != nil {
		log.Error().Err(err).Uint64("room", uint64(r.id)).Msg("encode-countdown-update-failed")
		return
	}
	if err := r.broadcaster.Publish(r.id, payload); err != nil {
		log.Warn().Err(err).Uint64("room", uint64(r.id)).Msg("broadcast-countdown-failed")
	}
}
