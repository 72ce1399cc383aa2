package session

import "errors"

var (
	// ErrInvalidRoomID means a Join named room id 0, which join.rs
	// treats as never a valid room.
	ErrInvalidRoomID = errors.New("session: room id must not be zero")
	// ErrUnicastFull means a per-connection unicast channel had no
	// free slot; per spec.md §5 this is fatal to the connection rather
	// than something to silently drop.
	ErrUnicastFull = errors.New("session: unicast channel is full")
)
