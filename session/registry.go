package session

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/bluebear94/inertia/room"
)

// Registry is the process-wide RoomId → Room map, guarded by a
// read-write lock per spec.md §5: lookups take a read lock, room
// creation upgrades to a write lock. Grounded on inertia-async-server/
// src/state.rs's AppState{rooms: RwLock<HashMap<RoomId, Room>>}.
type Registry struct {
	mu    sync.RWMutex
	rooms map[room.RoomID]*Room
	group singleflight.Group
}

// NewRegistry returns an empty room registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[room.RoomID]*Room)}
}

// Get returns the room for id if it already exists.
func (reg *Registry) Get(id room.RoomID) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rm, ok := reg.rooms[id]
	return rm, ok
}

// GetOrCreate returns the room for id, creating it with generator if
// absent. Creation is idempotent: concurrent callers racing to create
// the same id are coalesced by singleflight so exactly one Room is
// constructed, and a losing caller's generator is discarded — matching
// join.rs's "existing rooms ignore the new generator" rule.
func (reg *Registry) GetOrCreate(id room.RoomID, generator room.PositionGenerator, clock Clock, broadcaster Broadcaster) *Room {
	if rm, ok := reg.Get(id); ok {
		return rm
	}

	key := fmt.Sprintf("%d", uint64(id))
	v, _, _ := reg.group.Do(key, func() (any, error) {
		reg.mu.Lock()
		defer reg.mu.Unlock()
		if rm, ok := reg.rooms[id]; ok {
			return rm, nil
		}
		rm := newRoom(id, generator, clock, broadcaster, func() { reg.remove(id) })
		reg.rooms[id] = rm
		return rm, nil
	})
	return v.(*Room)
}

func (reg *Registry) remove(id room.RoomID) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, id)
}

// Len reports the number of active rooms, used by the /status HTTP
// surface spec.md §6 references as out of scope for this module but
// whose handler (cmd/inertia-server) needs some accessor to report.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
