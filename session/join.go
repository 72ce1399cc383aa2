package session

import (
	"github.com/bluebear94/inertia/room"
	"github.com/bluebear94/inertia/wire"
)

// HandleJoin validates a Join request, idempotently fetches or creates
// the target room, and admits the player via room.Apply's Connect
// handling. Grounded on join.rs's join loop: reject an empty name or a
// zero room id up front, then let Connect's existing username/
// reconnect-key checks do the rest.
func HandleJoin(registry *Registry, generator room.PositionGenerator, clock Clock, broadcaster Broadcaster, msg wire.Join) (*Room, error) {
	if msg.PlayerName == "" {
		return nil, room.ErrInvalidName
	}
	if msg.RoomID == 0 {
		return nil, ErrInvalidRoomID
	}

	rm := registry.GetOrCreate(room.RoomID(msg.RoomID), generator, clock, broadcaster)
	result := rm.Apply(room.Connect{
		PlayerID:     room.PlayerID(msg.PlayerID),
		PlayerName:   room.PlayerName(msg.PlayerName),
		ReconnectKey: room.ReconnectKey(msg.PlayerReconnectKey),
	})
	if result.Err != nil {
		return nil, result.Err
	}
	return rm, nil
}
