package room

import "errors"

// Sentinel errors surfaced by Apply, per spec.md §7. All are non-fatal:
// the returned RoomState is always valid and, except where noted,
// identical to the input state.
var (
	// ErrIncompatibleState means the (state, event) pair has no
	// transition defined; the state is returned unchanged.
	ErrIncompatibleState = errors.New("room: event is incompatible with the current state")
	// ErrInvalidName means Connect was given an empty player name.
	ErrInvalidName = errors.New("room: player name must not be empty")
	// ErrUsernameTaken means Connect's name is already bound to a
	// different player id.
	ErrUsernameTaken = errors.New("room: player name is already taken")
	// ErrBadReconnectKey means Connect's reconnect key does not match
	// the key already on file for that player id.
	ErrBadReconnectKey = errors.New("room: reconnect key does not match")
	// ErrMakeBid wraps bid.ErrMakeBid for callers that only import room.
	ErrMakeBid = errors.New("room: bid must be strictly lower than the current bid")
	// ErrReadyBid wraps bid.ErrReadyBid.
	ErrReadyBid = errors.New("room: cannot ready from the current bid state")
	// ErrUnreadyBid wraps bid.ErrUnreadyBid.
	ErrUnreadyBid = errors.New("room: cannot unready from the current bid state")
	// ErrSolutionExceedsBid means a submitted solution is longer than
	// the solver's effective bid value.
	ErrSolutionExceedsBid = errors.New("room: submitted solution exceeds the solver's bid")
	// ErrWrongPlayer means a YieldSolve event was submitted by someone
	// other than the current solver. Supplemented from
	// yield_solve.rs's YieldSolveError::WrongPlayer, which spec.md's
	// error list omits but whose validation spec.md's transition table
	// implies (only the solver role yields).
	ErrWrongPlayer = errors.New("room: only the current solver may yield")
)
