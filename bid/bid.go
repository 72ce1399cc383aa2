// Package bid implements the bid ledger and solver election (C8): per
// round, each player declares how few moves they claim they can solve
// the current board in, and the lowest strictly-improving bid, tied
// by submission order, is elected to attempt the solution.
//
// Grounded on original_source/inertia-core/src/state/data.rs's
// PlayerBid (extended per spec.md with the NoneReady/ProspectiveReady
// ready-flag variants and the order field spec.md adds on top of that
// snapshot) and the get_next_solver rule spec.md states explicitly.
package bid

import (
	"errors"

	"github.com/samber/lo"
)

// Kind discriminates the PlayerBid tagged variant.
type Kind uint8

const (
	// KindNone means no bid has been placed this round.
	KindNone Kind = iota
	// KindNoneReady means no bid, but the player has marked ready.
	KindNoneReady
	// KindProspective is an active candidate bid.
	KindProspective
	// KindProspectiveReady is a Prospective bid the player has locked in.
	KindProspectiveReady
	// KindFailed means this player attempted and yielded; terminal for
	// the round.
	KindFailed
)

// PlayerBid is a tagged union over the five bid states a player can be
// in during a single round. Value and Order are meaningful only for
// KindProspective, KindProspectiveReady, and (Value only) KindFailed.
type PlayerBid struct {
	Kind  Kind
	Value uint16
	Order uint32
}

// EffectiveValue returns the bid's value, or 0 if no bid was ever
// placed.
func (b PlayerBid) EffectiveValue() uint16 {
	switch b.Kind {
	case KindProspective, KindProspectiveReady, KindFailed:
		return b.Value
	default:
		return 0
	}
}

// ToFailed converts any bid to a terminal Failed bid carrying the same
// effective value.
func (b PlayerBid) ToFailed() PlayerBid {
	return PlayerBid{Kind: KindFailed, Value: b.EffectiveValue()}
}

// IsProspective reports whether b is an active (possibly ready)
// candidate bid.
func (b PlayerBid) IsProspective() bool {
	return b.Kind == KindProspective || b.Kind == KindProspectiveReady
}

// Errors returned by Ledger's mutating operations, per spec.md §7.
var (
	ErrMakeBid    = errors.New("bid: value must be strictly lower than the current bid, and the room must not be past bidding")
	ErrReadyBid   = errors.New("bid: ready requires a None or Prospective bid")
	ErrUnreadyBid = errors.New("bid: unready requires a NoneReady or ProspectiveReady bid")
)

// Ledger tracks every player's bid for the current round and elects
// the next solver. PlayerID is a type parameter rather than a
// concrete type defined here so that room (C9), which owns the
// concrete player identifier, can instantiate Ledger[room.PlayerID]
// without bid importing room.
type Ledger[PlayerID comparable] struct {
	bids      map[PlayerID]PlayerBid
	timestamp uint32
}

// NewLedger returns an empty ledger.
func NewLedger[PlayerID comparable]() *Ledger[PlayerID] {
	return &Ledger[PlayerID]{bids: make(map[PlayerID]PlayerBid)}
}

// Get returns p's current bid, or the zero-value KindNone bid if p has
// never bid.
func (l *Ledger[PlayerID]) Get(p PlayerID) PlayerBid {
	return l.bids[p]
}

// All returns a copy of the full bid map, safe for the caller to
// range over without racing further mutation.
func (l *Ledger[PlayerID]) All() map[PlayerID]PlayerBid {
	out := make(map[PlayerID]PlayerBid, len(l.bids))
	for p, b := range l.bids {
		out[p] = b
	}
	return out
}

// MakeBid records a new bid for p. It is accepted only if p has no
// bid yet, or p's current bid is Prospective/ProspectiveReady with a
// strictly greater value — a repeated identical bid is rejected per
// spec.md's Open Question resolution ("reject, not strictly lower").
func (l *Ledger[PlayerID]) MakeBid(p PlayerID, value uint16) error {
	current := l.bids[p]
	switch current.Kind {
	case KindNone, KindNoneReady:
	case KindProspective, KindProspectiveReady:
		if value >= current.Value {
			return ErrMakeBid
		}
	default:
		return ErrMakeBid
	}
	l.bids[p] = PlayerBid{Kind: KindProspective, Value: value, Order: l.timestamp}
	l.timestamp++
	return nil
}

// ReadyBid marks p's current bid (or lack thereof) as ready.
func (l *Ledger[PlayerID]) ReadyBid(p PlayerID) error {
	current := l.bids[p]
	switch current.Kind {
	case KindNone:
		l.bids[p] = PlayerBid{Kind: KindNoneReady}
	case KindProspective:
		l.bids[p] = PlayerBid{Kind: KindProspectiveReady, Value: current.Value, Order: current.Order}
	default:
		return ErrReadyBid
	}
	return nil
}

// UnreadyBid is the inverse of ReadyBid.
func (l *Ledger[PlayerID]) UnreadyBid(p PlayerID) error {
	current := l.bids[p]
	switch current.Kind {
	case KindNoneReady:
		l.bids[p] = PlayerBid{Kind: KindNone}
	case KindProspectiveReady:
		l.bids[p] = PlayerBid{Kind: KindProspective, Value: current.Value, Order: current.Order}
	default:
		return ErrUnreadyBid
	}
	return nil
}

// Fail converts p's current bid to Failed regardless of its ready
// state, removing p from solver-election contention for the rest of
// the round.
func (l *Ledger[PlayerID]) Fail(p PlayerID) {
	l.bids[p] = l.bids[p].ToFailed()
}

// AllReady reports whether every tracked player is in a ready state
// (NoneReady or ProspectiveReady) — the trigger for auto-promotion out
// of bidding per spec.md's supplemented auto-promotion rule.
func (l *Ledger[PlayerID]) AllReady() bool {
	for _, b := range l.bids {
		if b.Kind != KindNoneReady && b.Kind != KindProspectiveReady {
			return false
		}
	}
	return true
}

// GetNextSolver returns the player with the minimum (value, order)
// among Prospective/ProspectiveReady bids, ties broken by order — in
// practice no true ties occur, since order is a strictly increasing
// per-ledger counter. Returns false if no prospective bid remains.
func (l *Ledger[PlayerID]) GetNextSolver() (PlayerID, bool) {
	entries := lo.Entries(l.bids)
	prospective := lo.Filter(entries, func(e lo.Entry[PlayerID, PlayerBid], _ int) bool {
		return e.Value.IsProspective()
	})
	if len(prospective) == 0 {
		var zero PlayerID
		return zero, false
	}
	best := lo.MinBy(prospective, func(a, b lo.Entry[PlayerID, PlayerBid]) bool {
		if a.Value.Value != b.Value.Value {
			return a.Value.Value < b.Value.Value
		}
		return a.Value.Order < b.Value.Order
	})
	return best.Key, true
}
